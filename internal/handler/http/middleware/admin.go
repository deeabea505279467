package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/hrledger/hr-backend-go/internal/domain/auth"
	"github.com/hrledger/hr-backend-go/internal/domain/profile"
	"github.com/hrledger/hr-backend-go/internal/handler/http/response"
)

// AdminOnly gates management routes on the role claim. Employee-role
// callers get a 403, not a 404.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(profile.RoleAdmin) {
			response.HandleError(w, profile.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
