package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(42, "front.desk", "Receptionist")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.AdminID)
	assert.Equal(t, "front.desk", claims.Username)
	assert.Equal(t, "Receptionist", claims.Role)
}

func TestParseTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(1, "admin", "owner")
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateToken(1, "admin", "owner")
	assert.Error(t, err)
}

func TestNewReferenceCode(t *testing.T) {
	code := NewReferenceCode("RSV")

	assert.True(t, strings.HasPrefix(code, "RSV-"))
	assert.Len(t, code, 14)
	assert.Equal(t, strings.ToUpper(code), code)

	// codes are unique per call
	assert.NotEqual(t, code, NewReferenceCode("RSV"))
}
