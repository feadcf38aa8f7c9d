// Package rbac provides role-based access control middleware.
package rbac

import (
	"net/http"

	"github.com/cafedelights/api/app/models"
	"github.com/cafedelights/api/pkg/middleware"
	"github.com/cafedelights/api/pkg/response"
)

// HasRole returns middleware that allows access only to accounts holding one
// of the given roles. Requires middleware.Auth to have already run, so the
// role comes from the live account record rather than token claims.
func HasRole(roles ...models.Role) func(http.Handler) http.Handler {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			account, ok := middleware.AccountFromCtx(r.Context())
			if !ok || !allowed[account.Role] {
				response.Forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
