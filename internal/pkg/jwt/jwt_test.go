package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	s := New("secret", time.Hour)

	token, err := s.GenerateToken("u-1", "u1@example.com", "Employee")
	require.NoError(t, err)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "Employee", claims.Role)
	assert.Equal(t, "u-1", claims.Subject)
}

func TestService_WrongSecret(t *testing.T) {
	token, err := New("secret", time.Hour).GenerateToken("u-1", "", "Admin")
	require.NoError(t, err)

	_, err = New("other", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestService_Expired(t *testing.T) {
	s := New("secret", -time.Minute)
	token, err := s.GenerateToken("u-1", "", "Admin")
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	assert.Error(t, err)
}
