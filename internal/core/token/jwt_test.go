package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"todoapi/internal/core/domain"
)

func TestNew(t *testing.T) {
	t.Run("should accept supported algorithms", func(t *testing.T) {
		for _, alg := range []string{"HS256", "HS384", "HS512"} {
			tokens, err := New("secret", alg, 30)

			assert.NoError(t, err)
			assert.NotNil(t, tokens)
		}
	})

	t.Run("should reject unsupported algorithms", func(t *testing.T) {
		tokens, err := New("secret", "RS256", 30)

		assert.Error(t, err)
		assert.Nil(t, tokens)
	})
}

func TestJWT_IssueAndVerify(t *testing.T) {
	tokens, err := New("test-secret", "HS256", 30)
	assert.NoError(t, err)

	t.Run("should round trip identity claims", func(t *testing.T) {
		signed, err := tokens.Issue("user-123", "alice@example.com")

		assert.NoError(t, err)
		assert.NotEmpty(t, signed)

		identity, err := tokens.Verify(signed)

		assert.NoError(t, err)
		assert.Equal(t, "user-123", identity.UserID)
		assert.Equal(t, "alice@example.com", identity.Email)
	})

	t.Run("should reject a token signed with another secret", func(t *testing.T) {
		other, err := New("other-secret", "HS256", 30)
		assert.NoError(t, err)

		signed, err := other.Issue("user-123", "alice@example.com")
		assert.NoError(t, err)

		_, err = tokens.Verify(signed)

		assert.Error(t, err)
		assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
	})

	t.Run("should reject an expired token", func(t *testing.T) {
		expired, err := New("test-secret", "HS256", -1)
		assert.NoError(t, err)

		signed, err := expired.Issue("user-123", "alice@example.com")
		assert.NoError(t, err)

		_, err = tokens.Verify(signed)

		assert.Error(t, err)
		assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
	})

	t.Run("should reject garbage input", func(t *testing.T) {
		_, err := tokens.Verify("not-a-token")

		assert.Error(t, err)
		assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
	})

	t.Run("should reject a token without a subject", func(t *testing.T) {
		claims := jwt.MapClaims{
			"email": "alice@example.com",
			"iat":   time.Now().Unix(),
			"exp":   time.Now().Add(time.Hour).Unix(),
		}

		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		assert.NoError(t, err)

		_, err = tokens.Verify(signed)

		assert.Error(t, err)
		assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
	})

	t.Run("should reject a token signed with a different method", func(t *testing.T) {
		claims := jwt.MapClaims{
			"sub": "user-123",
			"exp": time.Now().Add(time.Hour).Unix(),
		}

		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
		assert.NoError(t, err)

		_, err = tokens.Verify(signed)

		assert.Error(t, err)
		assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
	})
}
