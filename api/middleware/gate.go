package middleware

import (
	"net/http"

	"github.com/angelmondragon/modeststyle-backend/internal/access"
	"github.com/angelmondragon/modeststyle-backend/pkg/logger"
)

// Gate evaluates the access rules once per request before any handler runs.
// Gated paths without a qualifying session are redirected, never rendered.
func Gate(resolver access.SessionResolver, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var session *access.Session
			if resolver != nil {
				if s, ok := resolver.Resolve(r); ok {
					session = s
				}
			}

			decision := access.Evaluate(r.URL.Path, session)
			ctx := r.Context()
			if session != nil {
				ctx = WithAccessSession(ctx, session)
				if logg != nil {
					ctx = logg.WithUserID(ctx, session.Subject)
					ctx = logg.WithActorRole(ctx, string(session.Role))
				}
			}
			if !decision.Allowed() {
				if logg != nil {
					logg.Info(logg.WithFields(ctx, map[string]any{
						"access_class": decision.Class,
						"redirect":     decision.Redirect,
					}), "access.redirect")
				}
				http.Redirect(w, r.WithContext(ctx), decision.Redirect, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
