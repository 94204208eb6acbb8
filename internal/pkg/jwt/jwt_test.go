//go:build unit

package jwt

import (
	"testing"
	"time"

	"parking-reservation/internal/domain/user"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-32-bytes-long!!!"

func TestService_RoundTrip(t *testing.T) {
	svc := NewService(testSecret, time.Hour)

	token, err := svc.GenerateToken(42, user.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, user.RoleAdmin.String(), claims.Role)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestService_ValidateToken_Rejects(t *testing.T) {
	svc := NewService(testSecret, time.Hour)

	t.Run("expired", func(t *testing.T) {
		stale := NewService(testSecret, time.Minute)
		stale.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := stale.GenerateToken(1, user.RoleUser)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("other secret", func(t *testing.T) {
		token, err := NewService("another-secret-another-secret!!!", time.Hour).GenerateToken(1, user.RoleUser)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		claims := Claims{
			UserID: 1,
			Role:   user.RoleUser.String(),
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    "someone-else",
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("non-positive user id", func(t *testing.T) {
		token, err := svc.GenerateToken(0, user.RoleUser)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
