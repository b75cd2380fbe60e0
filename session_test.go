package eamvu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	session, err := Authenticate("agent-001", "001")
	require.NoError(t, err)
	assert.Equal(t, "Ahmad Hassan", session.Agent.Name)
	assert.False(t, session.StartedAt.IsZero())
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	_, err := Authenticate("agent-001", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = Authenticate("agent-999", "001")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
