package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/mcube35/infranet-team1/internal/domain/user"
	"github.com/mcube35/infranet-team1/internal/handler/http/response"
)

// AdminOnly rejects before any handler data access happens.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || !user.IsAdmin(user.Role(role)) {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
