package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/school-service/internal/domain"
)

func TestGenerateDecodeRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token, exp, err := tm.Generate("user-1", domain.RoleTeacher, "t@school.example.com")
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	principal, err := tm.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", principal.ID)
	assert.Equal(t, domain.RoleTeacher, principal.Role)
	assert.Equal(t, "t@school.example.com", principal.Email)

	// decoding is idempotent
	again, err := tm.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, principal, again)
}

func TestDecodeWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 60)
	verifier := NewTokenManager("secret-b", 60)

	token, _, err := issuer.Generate("user-1", domain.RoleAdmin, "a@school.example.com")
	require.NoError(t, err)

	_, err = verifier.Decode(token)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestDecodeGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	_, err := tm.Decode("not.a.token")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestDecodeExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	claims := &Claims{
		Role:  domain.RoleStudent,
		Email: "s@school.example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-2",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tm.Decode(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestDecodeWrongAlgorithm(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-3",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tm.Decode(token)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestHasSecret(t *testing.T) {
	assert.False(t, NewTokenManager("", 60).HasSecret())
	assert.True(t, NewTokenManager("x", 60).HasSecret())
}
