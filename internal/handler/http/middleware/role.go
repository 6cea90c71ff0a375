package middleware

import (
	"net/http"

	"github.com/Marshmallowc/hrms-backend/internal/domain/user"
	"github.com/Marshmallowc/hrms-backend/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequirePermission checks the authenticated role against the
// permission table before letting the request through.
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			if !user.HasPermission(user.Role(roleStr), permission) {
				response.Forbidden(w, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
