package api

import (
	"github.com/surveyflow/surveyflow/internal/catalog"
	"github.com/surveyflow/surveyflow/internal/services"
)

type catalogAdapter struct {
	c *catalog.Catalog
}

// NewCatalogAdapter exposes a loaded catalog through the flow service's
// read-only contract.
func NewCatalogAdapter(c *catalog.Catalog) services.Catalog {
	return &catalogAdapter{c: c}
}

func (a *catalogAdapter) LocalizedQuestions(lang string) []services.QuestionView {
	qs := a.c.LocalizedQuestions(lang)
	out := make([]services.QuestionView, 0, len(qs))
	for _, q := range qs {
		out = append(out, services.QuestionView{ID: q.ID, Text: q.Text})
	}
	return out
}

func (a *catalogAdapter) Text(id, lang string) (string, bool) {
	return a.c.Text(id, lang)
}
