package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	pair, err := GenerateTokenPair(userID, "pratik@example.com", true, "test-secret", 1, 24)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := ValidateToken(pair.AccessToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "pratik@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	pair, err := GenerateTokenPair(uuid.New(), "pratik@example.com", false, "test-secret", 1, 24)
	require.NoError(t, err)

	_, err = ValidateToken(pair.AccessToken, "other-secret")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("Sup3rSecret")
	require.NoError(t, err)
	assert.NotEqual(t, "Sup3rSecret", hashed)

	assert.True(t, CheckPassword(hashed, "Sup3rSecret"))
	assert.False(t, CheckPassword(hashed, "WrongPassw0rd"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("Sup3rSecret"))
	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword("alllowercase1"))
	assert.Error(t, ValidatePassword("NoNumbersHere"))
}
