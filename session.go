package eamvu

import (
	"errors"
	"time"
)

// AgentCredentials is the static allow-list the app ships with. This is a
// local convenience gate, not an authentication system: passwords are
// matched client-side in plaintext. A production rebuild needs a real auth
// collaborator with backend-verified credentials and token issuance.
var AgentCredentials = []Agent{
	{ID: "agent-001", Name: "Ahmad Hassan", Password: "001"},
	{ID: "agent-002", Name: "Fatima Ali", Password: "002"},
	{ID: "agent-003", Name: "Muhammad Khan", Password: "003"},
	{ID: "agent-004", Name: "Aisha Sheikh", Password: "004"},
	{ID: "agent-005", Name: "Sara Ahmed", Password: "005"},
}

var ErrInvalidCredentials = errors.New("invalid agent id or password")

// Session identifies the logged-in officer for the duration of a run. The
// login flow creates one and passes it explicitly to every screen that needs
// it; there is no package-level current agent.
type Session struct {
	Agent     Agent
	StartedAt time.Time
}

// Authenticate matches id and password against the static allow-list.
func Authenticate(id, password string) (Session, error) {
	for _, agent := range AgentCredentials {
		if agent.ID == id && agent.Password == password {
			return Session{Agent: agent, StartedAt: time.Now()}, nil
		}
	}
	return Session{}, ErrInvalidCredentials
}
