package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nc-news/internal/config"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:     "0123456789abcdef0123456789abcdef",
		TokenLifetime: 24 * time.Hour,
		BcryptCost:    4,
	}
}

func TestNewTokenServiceRejectsShortSecret(t *testing.T) {
	_, err := NewTokenService(config.AuthConfig{
		JWTSecret:     "too-short",
		TokenLifetime: time.Hour,
	})
	assert.Error(t, err)
}

func TestTokenRoundTrip(t *testing.T) {
	svc, err := NewTokenService(testAuthConfig())
	require.NoError(t, err)

	token, err := svc.GenerateToken(context.Background(), "butter_bridge")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "butter_bridge", claims.Username)
}

func TestValidateTokenRejectsEmpty(t *testing.T) {
	svc, err := NewTokenService(testAuthConfig())
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc, err := NewTokenService(testAuthConfig())
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsWrongKey(t *testing.T) {
	svc, err := NewTokenService(testAuthConfig())
	require.NoError(t, err)

	other, err := NewTokenService(config.AuthConfig{
		JWTSecret:     "ffffffffffffffffffffffffffffffff",
		TokenLifetime: time.Hour,
	})
	require.NoError(t, err)

	token, err := other.GenerateToken(context.Background(), "butter_bridge")
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	impl := &hmacTokenService{
		signingKey:    []byte("0123456789abcdef0123456789abcdef"),
		tokenLifetime: time.Hour,
		timeFunc:      time.Now,
	}

	past := time.Now().Add(-48 * time.Hour)
	impl.timeFunc = func() time.Time { return past }
	token, err := impl.GenerateToken(context.Background(), "butter_bridge")
	require.NoError(t, err)

	impl.timeFunc = time.Now
	_, err = impl.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBcryptHashAndCompare(t *testing.T) {
	svc := NewBcryptService(4)

	hash, err := svc.Hash("Sup3rSecret!")
	require.NoError(t, err)
	assert.NotEqual(t, "Sup3rSecret!", hash)

	assert.NoError(t, svc.Compare(hash, "Sup3rSecret!"))
	assert.Error(t, svc.Compare(hash, "wrong-password"))
}

func TestBcryptInvalidCostFallsBack(t *testing.T) {
	svc := NewBcryptService(99)

	hash, err := svc.Hash("Sup3rSecret!")
	require.NoError(t, err)
	assert.NoError(t, svc.Compare(hash, "Sup3rSecret!"))
}
