package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/cafedelights/api/app/models"
	"github.com/cafedelights/api/pkg/response"
)

// Authenticator resolves a bearer token to the current account record.
// Implemented by services.AuthService: token verification plus a live lookup,
// so a token for a since-removed account fails.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Account, error)
}

type accountKey struct{}

// Auth extracts the bearer credential from the Authorization header,
// authenticates it, and stores the full account record in the request
// context. Any failure — missing, malformed, expired, or unknown account —
// ends the request with a 401.
func Auth(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				response.Unauthorized(w)
				return
			}

			account, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				response.Unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), accountKey{}, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AccountFromCtx returns the authenticated account stored by Auth.
func AccountFromCtx(ctx context.Context) (*models.Account, bool) {
	account, ok := ctx.Value(accountKey{}).(*models.Account)
	return account, ok
}

// WithAccount stores an account in ctx. Exposed for handler tests that
// bypass the middleware.
func WithAccount(ctx context.Context, account *models.Account) context.Context {
	return context.WithValue(ctx, accountKey{}, account)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
