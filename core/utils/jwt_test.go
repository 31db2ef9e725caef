package utils

import (
	"testing"
	"time"

	"calendar-sync-api/core/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestConfig(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := config.Init()
	require.NoError(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	initTestConfig(t)

	userID := uuid.New()
	token, err := GenerateToken(userID, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	data, err := ValidateAndParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, data.UserID)
	assert.Equal(t, "alice@example.com", data.Email)
	assert.True(t, data.Expiry.After(time.Now()))
}

func TestValidateRejectsGarbage(t *testing.T) {
	initTestConfig(t)

	_, err := ValidateAndParseToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	initTestConfig(t)

	token, err := GenerateToken(uuid.New(), "alice@example.com")
	require.NoError(t, err)

	_, err = ValidateAndParseToken(token + "x")
	assert.Error(t, err)
}
