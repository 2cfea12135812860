package auth

import (
	"testing"

	"tetatete/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	cfg := newJWTTestConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	userID := uuid.New()
	accessToken, refreshToken, err := svc.GenerateTokens(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	token, err := svc.ValidateToken(accessToken, cfg.SecretKey.Access)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])
	assert.Equal(t, "access", claims["type"])

	token, err = svc.ValidateToken(refreshToken, cfg.SecretKey.Refresh)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok = token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "refresh", claims["type"])
}

func TestJWTService_GenerateResetToken(t *testing.T) {
	cfg := newJWTTestConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	userID := uuid.New()
	resetToken, err := svc.GenerateResetToken(userID)
	require.NoError(t, err)

	token, err := svc.ValidateToken(resetToken, cfg.SecretKey.Access)
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "reset", claims["type"])
	assert.Equal(t, userID.String(), claims["sub"])
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	cfg := newJWTTestConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, _, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(accessToken, "a completely different secret")
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	cfg := newJWTTestConfig()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	_, err = svc.ValidateToken("clearly-not-a-jwt", cfg.SecretKey.Access)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}
