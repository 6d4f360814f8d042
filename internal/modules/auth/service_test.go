package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luiisca/cal.com/internal/database"
	jwtsvc "github.com/luiisca/cal.com/internal/pkg/jwt"
	"github.com/luiisca/cal.com/internal/repository"
)

func setupService(t *testing.T) *Service {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	j := jwtsvc.New("test-secret", time.Hour)
	return NewService(repository.NewUserRepository(db), j)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := setupService(t)

	reg, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "pro@example.com",
		Password: "correct horse",
		Username: "pro",
		Name:     "Pro Example",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.NotZero(t, reg.User.ID)
	assert.NotEqual(t, "correct horse", reg.User.PasswordHash)

	login, err := svc.Login(context.Background(), LoginRequest{
		Email:    "pro@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email: "pro@example.com", Password: "correct horse", Username: "pro",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterRequest{
		Email: "pro@example.com", Password: "other pass", Username: "pro2",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email: "sam@example.com", Password: "correct horse", Username: "sam",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterRequest{
		Email: "sam.other@example.com", Password: "correct horse", Username: "sam",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email: "pro@example.com", Password: "correct horse", Username: "pro",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginRequest{
		Email: "pro@example.com", Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email: "ghost@example.com", Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
