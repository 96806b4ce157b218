package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Question is one catalog entry. Text is keyed by language tag with English
// as the fallback rendering language.
type Question struct {
	ID       string            `json:"id"`
	TextI18n map[string]string `json:"text_i18n"`
}

// Localized is a question resolved to a single display language.
type Localized struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Catalog is the ordered, read-only question list loaded once at startup.
// It is never mutated after Load, so it is shared across requests without
// locking.
type Catalog struct {
	questions []Question
	byID      map[string]Question
}

// Load reads the question catalog from a JSON file. A missing or malformed
// file is an error; callers treat that as fatal at startup.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a catalog from raw JSON.
func Parse(data []byte) (*Catalog, error) {
	var qs []Question
	if err := json.Unmarshal(data, &qs); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	c := &Catalog{questions: qs, byID: make(map[string]Question, len(qs))}
	for i, q := range qs {
		id := strings.TrimSpace(q.ID)
		if id == "" {
			return nil, fmt.Errorf("catalog entry %d has empty id", i)
		}
		if _, dup := c.byID[id]; dup {
			return nil, fmt.Errorf("catalog entry %d duplicates id %q", i, id)
		}
		c.byID[id] = q
	}
	return c, nil
}

// Len reports the number of questions.
func (c *Catalog) Len() int { return len(c.questions) }

// Questions returns the catalog entries in file order.
func (c *Catalog) Questions() []Question {
	return append([]Question(nil), c.questions...)
}

// Text looks up the display text of a question by id in the given language,
// falling back to English.
func (c *Catalog) Text(id, lang string) (string, bool) {
	q, ok := c.byID[id]
	if !ok {
		return "", false
	}
	return localize(q.TextI18n, lang), true
}

// LocalizedQuestions resolves the whole catalog to one display language,
// preserving order.
func (c *Catalog) LocalizedQuestions(lang string) []Localized {
	out := make([]Localized, 0, len(c.questions))
	for _, q := range c.questions {
		out = append(out, Localized{ID: q.ID, Text: localize(q.TextI18n, lang)})
	}
	return out
}

func localize(texts map[string]string, lang string) string {
	if t := texts[lang]; t != "" {
		return t
	}
	return texts["en"]
}
