package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the structured claims embedded in a session artifact.
type AuthClaims interface {
	Subject() string
	UserID() string
	Name() string
	Role() string
	Expires() time.Time
	IssuedAt() time.Time
}

// SessionClaims is the concrete implementation of AuthClaims
type SessionClaims struct {
	jwt.RegisteredClaims
	UID      string `json:"uid,omitempty"`
	FullName string `json:"name,omitempty"`
	UserRole string `json:"role,omitempty"`
}

// Verify interface compliance
var _ AuthClaims = (*SessionClaims)(nil)

// Subject returns the subject claim
func (c *SessionClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// UserID returns the user ID, falling back to the subject claim.
func (c *SessionClaims) UserID() string {
	if c.UID != "" {
		return c.UID
	}
	return c.Subject()
}

// Name returns the display name claim
func (c *SessionClaims) Name() string {
	return c.FullName
}

// Role returns the role claim
func (c *SessionClaims) Role() string {
	return c.UserRole
}

// Expires returns the expiration time, zero if the artifact never expires.
func (c *SessionClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time
func (c *SessionClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}

// Reconcile checks the claims against a cached identity. A role or user id
// embedded in the artifact must agree with the cached record; a stale cached
// role must not outlive a changed credential.
func (c *SessionClaims) Reconcile(identity Identity) error {
	return reconcileClaims(c, identity)
}

func reconcileClaims(claims AuthClaims, identity Identity) error {
	if claims == nil {
		return ErrTokenMalformed
	}

	if uid := claims.UserID(); uid != "" && uid != identity.ID {
		return NewRoleMismatchError(map[string]any{
			"claim":  "uid",
			"cached": identity.ID,
		})
	}

	if role := claims.Role(); role != "" && Role(role) != identity.Role {
		return NewRoleMismatchError(map[string]any{
			"claim":  "role",
			"cached": string(identity.Role),
		})
	}

	return nil
}
