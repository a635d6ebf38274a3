package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskboard/internal/auth"
	"taskboard/internal/store"
)

var testUser = &store.User{
	ID:       42,
	Email:    "alice@example.com",
	Name:     "Alice",
	IsActive: true,
}

func TestTokenService_GenerateAndValidate(t *testing.T) {
	ts := auth.NewTokenService([]byte("test-signing-key"), 30, "taskboard", nil)

	token, err := ts.Generate(testUser)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ts.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject())
	assert.Equal(t, int64(42), claims.UserID())
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.Expires(), 5*time.Second)
}

func TestTokenService_Generate(t *testing.T) {
	ts := auth.NewTokenService([]byte("test-signing-key"), 30, "taskboard", nil)

	t.Run("nil user", func(t *testing.T) {
		_, err := ts.Generate(nil)
		assert.Error(t, err)
	})

	t.Run("tokens carry distinct ids", func(t *testing.T) {
		first, err := ts.Generate(testUser)
		assert.NoError(t, err)
		second, err := ts.Generate(testUser)
		assert.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}

func TestTokenService_Validate(t *testing.T) {
	ts := auth.NewTokenService([]byte("test-signing-key"), 30, "taskboard", nil)

	t.Run("expired token", func(t *testing.T) {
		expired := auth.NewTokenService([]byte("test-signing-key"), -5, "taskboard", nil)

		token, err := expired.Generate(testUser)
		assert.NoError(t, err)

		_, err = ts.Validate(token)
		assert.Equal(t, auth.ErrTokenExpired, err)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other := auth.NewTokenService([]byte("some-other-key"), 30, "taskboard", nil)

		token, err := other.Generate(testUser)
		assert.NoError(t, err)

		_, err = ts.Validate(token)
		assert.Error(t, err)
		assert.NotEqual(t, auth.ErrTokenExpired, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := auth.NewTokenService([]byte("test-signing-key"), 30, "someone-else", nil)

		token, err := other.Generate(testUser)
		assert.NoError(t, err)

		_, err = ts.Validate(token)
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := ts.Validate("not.a.token")
		assert.Error(t, err)
	})
}
