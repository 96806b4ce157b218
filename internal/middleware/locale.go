package middleware

import (
	"context"
	"net/http"

	"github.com/surveyflow/surveyflow/internal/utils"
)

const localeKey ctxKey = 2

// Locale extracts the locale from the lang query param or Accept-Language
// and stores it in the request context. This is ambient transport locale;
// the survey flow itself carries the respondent's explicit choice in the
// session.
func Locale(supported []string, def string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			qLang := r.URL.Query().Get("lang")
			aLang := r.Header.Get("Accept-Language")
			locale := utils.DetermineLocale(qLang, aLang, supported, def)
			ctx := context.WithValue(r.Context(), localeKey, locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LocaleFromContext retrieves the locale stored by Locale.
func LocaleFromContext(ctx context.Context) string {
	if v := ctx.Value(localeKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return "en"
}
