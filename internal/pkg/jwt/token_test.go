package jwt

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickshawlabs/dispatch/internal/pkg/models"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "dispatch-test",
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testConfig()

	tokenString, expiresAt, err := GenerateToken("rider-1", "rider", cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := ValidateToken(tokenString, cfg.JWT.Secret)
	require.NoError(t, err)

	userID, err := UserIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, "rider-1", userID)
	assert.Equal(t, "rider", (*claims)["role"])
	assert.Equal(t, "dispatch-test", (*claims)["iss"])
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := testConfig()

	tokenString, _, err := GenerateToken("rider-1", "rider", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, "wrong-secret")
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "test-secret")
	assert.Error(t, err)
}

func TestUserIDFromClaimsMissing(t *testing.T) {
	claims := jwt.MapClaims{"role": "rider"}

	_, err := UserIDFromClaims(&claims)
	assert.Error(t, err)
}
