package auth

import (
	"fmt"
)

// SessionStatus tags the two reachable session states.
type SessionStatus string

const (
	// StatusUnauthenticated is the initial state and the target of every
	// logout or failed restore.
	StatusUnauthenticated SessionStatus = "unauthenticated"
	// StatusAuthenticated is reachable only through a successful login or
	// restore, never as an initial state.
	StatusAuthenticated SessionStatus = "authenticated"
)

// State is the session as a value: either unauthenticated, or authenticated
// with an identity/token pair. The pair is set and cleared together; there is
// no reachable state holding a role without a credential or vice versa.
type State struct {
	status   SessionStatus
	identity Identity
	token    string
}

// UnauthenticatedState returns the empty session state.
func UnauthenticatedState() State {
	return State{status: StatusUnauthenticated}
}

// AuthenticatedState pairs an identity with a session artifact. Both halves
// are required; an incomplete pair is rejected rather than stored.
func AuthenticatedState(identity Identity, token string) (State, error) {
	if token == "" {
		return UnauthenticatedState(), ErrTokenMalformed
	}
	if !identity.Valid() {
		return UnauthenticatedState(), ErrIdentityNotFound
	}
	return State{
		status:   StatusAuthenticated,
		identity: identity,
		token:    token,
	}, nil
}

// Status returns the state tag.
func (s State) Status() SessionStatus {
	if s.status == "" {
		return StatusUnauthenticated
	}
	return s.status
}

// Authenticated reports whether the session holds a verified identity.
func (s State) Authenticated() bool {
	return s.Status() == StatusAuthenticated
}

// Identity returns the authenticated identity, ok=false when unauthenticated.
func (s State) Identity() (Identity, bool) {
	if !s.Authenticated() {
		return Identity{}, false
	}
	return s.identity, true
}

// Token returns the session artifact, ok=false when unauthenticated.
func (s State) Token() (string, bool) {
	if !s.Authenticated() {
		return "", false
	}
	return s.token, true
}

// Role returns the session's role, RoleDefault when unauthenticated.
func (s State) Role() Role {
	if !s.Authenticated() {
		return RoleDefault
	}
	return s.identity.Role
}

// IsAdmin reports whether the session holds an admin identity.
func (s State) IsAdmin() bool {
	return s.Authenticated() && s.identity.Role.IsAdmin()
}

// String renders the state for logs. The artifact itself is never printed,
// only its length.
func (s State) String() string {
	if !s.Authenticated() {
		return "session(unauthenticated)"
	}
	return fmt.Sprintf(
		"session(user=%s role=%s token_len=%d)",
		s.identity.ID,
		s.identity.Role,
		len(s.token),
	)
}
