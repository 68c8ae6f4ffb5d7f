package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := NewAccessToken("secret", userID, "moviegoer", []string{"user", "admin"}, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := ParseAccessToken("secret", token)
	require.NoError(t, err)

	assert.Equal(t, userID, identity.ID)
	assert.Equal(t, "moviegoer", identity.Username)
	assert.Equal(t, []string{"user", "admin"}, identity.Roles)
	assert.True(t, identity.HasRole("admin"))
	assert.False(t, identity.HasRole("superuser"))
}

func TestParseAccessTokenWrongSecret(t *testing.T) {
	token, err := NewAccessToken("secret", uuid.New(), "moviegoer", []string{"user"}, time.Hour)
	require.NoError(t, err)

	_, err = ParseAccessToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseAccessTokenExpired(t *testing.T) {
	token, err := NewAccessToken("secret", uuid.New(), "moviegoer", []string{"user"}, -time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken("secret", token)
	assert.Error(t, err)
}

func TestParseAccessTokenGarbage(t *testing.T) {
	_, err := ParseAccessToken("secret", "not.a.token")
	assert.Error(t, err)
}
