package service

import (
	"testing"
	"time"

	"career_guidance_backend/internal/config"
	"career_guidance_backend/internal/repository"
	"career_guidance_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	env := newTestEnv(t)
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-key-for-unit-tests-only"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(env.DB), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	auth := newAuthService(t)

	user, err := auth.Register(RegisterRequest{
		Name:     "Dana",
		Email:    "dana@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "correct-horse", user.Password, "password must be stored hashed")

	token, loggedIn, err := auth.Login(LoginRequest{Email: "dana@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)

	claims, err := util.ParseJWT(token, "test-secret-key-for-unit-tests-only")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth := newAuthService(t)

	_, err := auth.Register(RegisterRequest{Name: "A", Email: "dup@example.com", Password: "longenough"})
	require.NoError(t, err)

	_, err = auth.Register(RegisterRequest{Name: "B", Email: "dup@example.com", Password: "longenough"})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLoginWrongPassword(t *testing.T) {
	auth := newAuthService(t)

	_, err := auth.Register(RegisterRequest{Name: "A", Email: "a@example.com", Password: "longenough"})
	require.NoError(t, err)

	_, _, err = auth.Login(LoginRequest{Email: "a@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, util.ErrUserNotFound)

	_, _, err = auth.Login(LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}
