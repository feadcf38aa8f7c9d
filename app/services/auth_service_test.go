package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cafedelights/api/app/models"
	"github.com/cafedelights/api/app/repositories"
	"github.com/cafedelights/api/app/services"
	"github.com/cafedelights/api/pkg/auth"
)

func newAuthService() (*services.AuthService, *repositories.MemoryAccountStore) {
	accounts := repositories.NewMemoryAccountStore()
	return services.NewAuthService(accounts, auth.NewTokenService("test-secret")), accounts
}

func TestRegister(t *testing.T) {
	svc, accounts := newAuthService()
	ctx := context.Background()

	account, token, err := svc.Register(ctx, services.RegisterInput{
		Email:    "jane@example.com",
		Name:     "Jane",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, models.RoleCustomer, account.Role)
	require.NotEmpty(t, account.ID)

	stored, err := accounts.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", stored.Password, "password must not be stored in plain text")
	require.Equal(t, auth.HashPassword("secret123"), stored.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, accounts := newAuthService()
	ctx := context.Background()

	in := services.RegisterInput{Email: "jane@example.com", Name: "Jane", Password: "secret123"}
	_, _, err := svc.Register(ctx, in)
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, in)
	require.ErrorIs(t, err, repositories.ErrDuplicateKey)
	require.Equal(t, 1, accounts.Len(), "duplicate register must not create a second account")
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, services.RegisterInput{
		Email: "jane@example.com", Name: "Jane", Password: "secret123",
	})
	require.NoError(t, err)

	account, token, err := svc.Login(ctx, "jane@example.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "jane@example.com", account.Email)

	_, _, err = svc.Login(ctx, "jane@example.com", "wrong-password")
	require.ErrorIs(t, err, services.ErrUnauthenticated)

	// Unknown email fails the same way as a bad password.
	_, _, err = svc.Login(ctx, "nobody@example.com", "secret123")
	require.ErrorIs(t, err, services.ErrUnauthenticated)
}

func TestAuthenticate(t *testing.T) {
	svc, accounts := newAuthService()
	ctx := context.Background()

	registered, token, err := svc.Register(ctx, services.RegisterInput{
		Email: "jane@example.com", Name: "Jane", Password: "secret123",
	})
	require.NoError(t, err)

	account, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	require.Equal(t, registered.ID, account.ID)

	_, err = svc.Authenticate(ctx, "not-a-token")
	require.ErrorIs(t, err, services.ErrUnauthenticated)

	// A valid token for a removed account no longer authenticates.
	accounts.Delete(registered.ID)
	_, err = svc.Authenticate(ctx, token)
	require.ErrorIs(t, err, services.ErrUnauthenticated)
}
