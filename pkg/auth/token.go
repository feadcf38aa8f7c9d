// Package auth provides the credential hasher and the bearer token service.
//
// Tokens are signed, self-contained JWTs: they embed the account id, email
// and role plus an absolute expiry, so no server-side session storage exists.
// Verification only checks the signature and expiry — access control re-reads
// the account from storage afterwards.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued token stays valid. There is no refresh
// mechanism: an expired token requires a fresh login.
const TokenTTL = 24 * time.Hour

var (
	// ErrTokenExpired is returned by Verify when the token's expiry has passed.
	ErrTokenExpired = errors.New("auth: token expired")
	// ErrTokenInvalid is returned by Verify for a malformed token, a bad
	// signature, or missing identity claims.
	ErrTokenInvalid = errors.New("auth: invalid token")
)

// Claims holds the typed JWT payload.
type Claims struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed bearer tokens. The signing secret
// is injected at construction from configuration, never hard-coded.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

// NewTokenService creates a TokenService signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), now: time.Now}
}

// Issue creates a signed HS256 token embedding the account's identity and
// role, valid for TokenTTL from now.
func (s *TokenService) Issue(accountID, email, role string) (string, error) {
	now := s.now()
	claims := Claims{
		AccountID: accountID,
		Email:     email,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token string and returns its claims.
// The claims are not checked against storage here; callers that need the
// current account record must load it themselves.
func (s *TokenService) Verify(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.AccountID == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
