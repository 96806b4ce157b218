package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleJSON = `[
  {"id": "q1", "text_i18n": {"en": "How satisfied are you?", "ta": "நீங்கள் எவ்வளவு திருப்தி?"}},
  {"id": "q2", "text_i18n": {"en": "Would you recommend us?"}},
  {"id": "q3", "text_i18n": {"en": "Any other comments?"}}
]`

func TestLoadPreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Questions.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	qs := c.Questions()
	if len(qs) != 3 {
		t.Fatalf("len = %d, want 3", len(qs))
	}
	for i, want := range []string{"q1", "q2", "q3"} {
		if qs[i].ID != want {
			t.Fatalf("question %d id = %q, want %q", i, qs[i].ID, want)
		}
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected error for missing catalog")
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	if _, err := Parse([]byte("{not json")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	_, err := Parse([]byte(`[{"id":"q1","text_i18n":{"en":"a"}},{"id":"q1","text_i18n":{"en":"b"}}]`))
	if err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestParseRejectsEmptyID(t *testing.T) {
	if _, err := Parse([]byte(`[{"id":" ","text_i18n":{"en":"a"}}]`)); err == nil {
		t.Fatalf("expected empty id error")
	}
}

func TestTextLocalizationAndFallback(t *testing.T) {
	c, err := Parse([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got, ok := c.Text("q1", "ta"); !ok || got != "நீங்கள் எவ்வளவு திருப்தி?" {
		t.Fatalf("ta text = (%q,%v)", got, ok)
	}
	// q2 has no tamil text, falls back to english
	if got, ok := c.Text("q2", "ta"); !ok || got != "Would you recommend us?" {
		t.Fatalf("fallback text = (%q,%v)", got, ok)
	}
	if _, ok := c.Text("missing", "en"); ok {
		t.Fatalf("expected lookup miss for unknown id")
	}
}

func TestLocalizedQuestions(t *testing.T) {
	c, err := Parse([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	loc := c.LocalizedQuestions("en")
	if len(loc) != 3 || loc[0].Text != "How satisfied are you?" {
		t.Fatalf("unexpected localized questions: %+v", loc)
	}
}
