package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionSignVerify(t *testing.T) {
	sessions := NewSessionManager("test-secret", time.Hour)

	token, err := sessions.Sign("admin@example.com", "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := sessions.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestSessionVerifyRejectsTamperedToken(t *testing.T) {
	sessions := NewSessionManager("test-secret", time.Hour)

	token, err := sessions.Sign("admin@example.com", "admin")
	assert.NoError(t, err)

	_, err = sessions.Verify(token + "x")
	assert.Error(t, err)
}

func TestSessionVerifyRejectsForeignSecret(t *testing.T) {
	sessions := NewSessionManager("test-secret", time.Hour)
	other := NewSessionManager("other-secret", time.Hour)

	token, err := other.Sign("admin@example.com", "admin")
	assert.NoError(t, err)

	_, err = sessions.Verify(token)
	assert.Error(t, err)
}

func TestSessionVerifyRejectsExpiredToken(t *testing.T) {
	sessions := NewSessionManager("test-secret", -time.Minute)

	token, err := sessions.Sign("admin@example.com", "admin")
	assert.NoError(t, err)

	_, err = sessions.Verify(token)
	assert.Error(t, err)
}
