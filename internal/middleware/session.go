package middleware

import (
	"context"
	"net/http"

	"github.com/surveyflow/surveyflow/internal/session"
)

type ctxKey int

const sessionTokenKey ctxKey = 1

// SessionCookieName is the cookie correlating a respondent's requests with
// their in-progress survey session.
const SessionCookieName = "survey_session"

// WithSessionToken ensures each request carries an opaque session token: it
// reuses the cookie when present, otherwise mints one and sets the cookie.
// The token is only a correlation key; all session data lives server-side.
func WithSessionToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
			token = c.Value
		}
		if token == "" {
			token = session.NewToken()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookieName,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		ctx := context.WithValue(r.Context(), sessionTokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionTokenFromContext retrieves the token stored by WithSessionToken.
func SessionTokenFromContext(ctx context.Context) string {
	if v := ctx.Value(sessionTokenKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
