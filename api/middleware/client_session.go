package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/angelmondragon/modeststyle-backend/pkg/config"
	"github.com/angelmondragon/modeststyle-backend/pkg/logger"
)

const sessionHeader = "X-Client-Session"

// ClientSession ensures every request carries an anonymous session id. The id is
// read from the session cookie or the X-Client-Session header; otherwise a new
// uuid is issued as an HttpOnly cookie.
func ClientSession(cfg config.SessionConfig, secure bool, logg *logger.Logger) func(http.Handler) http.Handler {
	name := cfg.CookieName
	if name == "" {
		name = "ms_sid"
	}
	maxAge := int(cfg.MaxAge.Seconds())

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if cookie, err := r.Cookie(name); err == nil {
				id = validSessionID(cookie.Value)
			}
			if id == "" {
				id = validSessionID(r.Header.Get(sessionHeader))
			}
			if id == "" {
				id = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     name,
					Value:    id,
					Path:     "/",
					MaxAge:   maxAge,
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			w.Header().Set(sessionHeader, id)

			ctx := WithClientSession(r.Context(), id)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, id)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func validSessionID(raw string) string {
	parsed, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return parsed.String()
}
