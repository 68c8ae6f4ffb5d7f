package usecase

import (
	"context"
	"testing"

	"theater-api/internal/apperr"
	"theater-api/internal/dto/request"
	"theater-api/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:      "test-secret",
			ExpiryHours: 1,
		},
	}
}

func TestSignup(t *testing.T) {
	repo, _, _, users := testRepo()
	svc := NewAuthService(repo, testConfig(), testLogger())

	created, err := svc.Signup(context.Background(), &request.SignupRequest{
		Username: "moviegoer",
		Email:    "moviegoer@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	assert.Equal(t, "moviegoer", created.Username)
	assert.Equal(t, []string{"user"}, created.Roles, "signup grants the user role only")

	stored, err := users.FindByEmail(context.Background(), "moviegoer@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter22", stored.PasswordHash, "password is stored hashed")
	assert.True(t, utils.VerifyPassword(stored.PasswordHash, "hunter22"))
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo, _, _, _ := testRepo()
	svc := NewAuthService(repo, testConfig(), testLogger())

	req := &request.SignupRequest{
		Username: "moviegoer",
		Email:    "moviegoer@example.com",
		Password: "hunter22",
	}

	_, err := svc.Signup(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestSignupValidation(t *testing.T) {
	repo, _, _, _ := testRepo()
	svc := NewAuthService(repo, testConfig(), testLogger())

	tests := []struct {
		name string
		req  *request.SignupRequest
	}{
		{"short username", &request.SignupRequest{Username: "ab", Email: "a@example.com", Password: "hunter22"}},
		{"bad email", &request.SignupRequest{Username: "moviegoer", Email: "not-an-email", Password: "hunter22"}},
		{"short password", &request.SignupRequest{Username: "moviegoer", Email: "a@example.com", Password: "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}
}

func TestLogin(t *testing.T) {
	repo, _, _, _ := testRepo()
	config := testConfig()
	svc := NewAuthService(repo, config, testLogger())

	created, err := svc.Signup(context.Background(), &request.SignupRequest{
		Username: "moviegoer",
		Email:    "moviegoer@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	auth, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "moviegoer@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.NotEmpty(t, auth.Token)
	assert.Equal(t, created.ID, auth.User.ID)

	identity, err := utils.ParseAccessToken(config.JWT.Secret, auth.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, identity.ID.String())
	assert.Equal(t, "moviegoer", identity.Username)
	assert.Equal(t, []string{"user"}, identity.Roles)
}

func TestLoginBadCredentials(t *testing.T) {
	repo, _, _, _ := testRepo()
	svc := NewAuthService(repo, testConfig(), testLogger())

	_, err := svc.Signup(context.Background(), &request.SignupRequest{
		Username: "moviegoer",
		Email:    "moviegoer@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		req  *request.LoginRequest
	}{
		{"unknown email", &request.LoginRequest{Email: "nobody@example.com", Password: "hunter22"}},
		{"wrong password", &request.LoginRequest{Email: "moviegoer@example.com", Password: "wrong-pass"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.ErrUnauthorized)
		})
	}
}
