package middleware

import (
	"log/slog"
	"net/http"

	"github.com/ANAVHEOBA/africgo-frontend/internal/entities"
	"github.com/ANAVHEOBA/africgo-frontend/internal/session"
)

// RequireRole gates a route subtree behind a session check. A missing,
// expired or wrong-role session redirects to the login route (See
// Other, so back-navigation cannot return to the gated page) and the
// protected handler never runs.
func RequireRole(logger *slog.Logger, sessions *session.Manager, role entities.Role, loginPath string) func(next http.Handler) http.Handler {
	log := logger.With(slog.String("component", "guard"), slog.String("role", string(role)))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, err := sessions.Role(r.Context())
			if err != nil {
				log.DebugContext(r.Context(), "no usable session", slog.String("path", r.URL.Path))
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
			if got != role {
				log.DebugContext(r.Context(), "role mismatch",
					slog.String("have", string(got)),
					slog.String("path", r.URL.Path),
				)
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
