package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cafedelights/api/app/models"
	"github.com/cafedelights/api/app/repositories"
	"github.com/cafedelights/api/pkg/auth"
)

// AuthService covers registration, login, and access control.
type AuthService struct {
	accounts AccountStore
	tokens   *auth.TokenService
}

func NewAuthService(accounts AccountStore, tokens *auth.TokenService) *AuthService {
	return &AuthService{accounts: accounts, tokens: tokens}
}

// RegisterInput is the validated registration payload.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
	Phone    string
	Address  string
}

// Register creates a customer account and logs it in. The role is always
// customer — there is no operation that creates or promotes admins. A second
// registration with the same email fails with repositories.ErrDuplicateKey.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.Account, string, error) {
	// Friendly pre-check; the unique index is what actually guarantees
	// uniqueness under concurrent registration.
	if _, err := s.accounts.FindByEmail(ctx, in.Email); err == nil {
		return nil, "", fmt.Errorf("register %s: %w", in.Email, repositories.ErrDuplicateKey)
	}

	account := &models.Account{
		ID:        uuid.NewString(),
		Email:     in.Email,
		Name:      in.Name,
		Role:      models.RoleCustomer,
		Password:  auth.HashPassword(in.Password),
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.accounts.Insert(ctx, account); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(account.ID, account.Email, string(account.Role))
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return account, token, nil
}

// Login verifies credentials and issues a fresh token. An unknown email and
// a wrong password both come back as ErrUnauthenticated — callers cannot
// probe which one it was.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Account, string, error) {
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, "", fmt.Errorf("login %s: %w", email, ErrUnauthenticated)
		}
		return nil, "", err
	}

	if !auth.CheckPassword(account.Password, password) {
		return nil, "", fmt.Errorf("login %s: %w", email, ErrUnauthenticated)
	}

	token, err := s.tokens.Issue(account.ID, account.Email, string(account.Role))
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return &account, token, nil
}

// Authenticate resolves a bearer token to the current account record. The
// token only proves identity; role and profile are read live from storage so
// a role change would take effect before the token's natural expiry. A token
// for a since-removed account fails like any other bad token.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.Account, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnauthenticated, err)
	}

	account, err := s.accounts.FindByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("account %s: %w", claims.AccountID, ErrUnauthenticated)
		}
		return nil, err
	}
	return &account, nil
}
