package middleware

import (
	"log/slog"
	"net/http"

	"github.com/rspur/sampleportal/internal/auth"
	"github.com/rspur/sampleportal/internal/user"
)

// SessionMiddleware authenticates API requests from the session cookie and
// places the resolved user in the request context. API callers get a JSON
// 401 instead of the page guard's redirect; the collapse of all failure
// variants into one outcome is the same.
func SessionMiddleware(authSvc auth.ServiceAPI, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.SessionCookieName)
			if err != nil || cookie.Value == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			u, err := authSvc.Resolve(cookie.Value)
			if err != nil {
				logger.Debug("api session rejected", "cause", err, "path", r.URL.Path)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := user.ContextWithUser(r.Context(), u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
