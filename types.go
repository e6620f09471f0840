package auth

import (
	"context"
	"fmt"
	"time"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// IdentityProvider exchanges credentials for an identity record and a session
// artifact. Implementations are network collaborators (see provider/httpapi)
// or local verifiers (see provider/bunrepo).
type IdentityProvider interface {
	VerifyIdentity(ctx context.Context, identifier, secret string) (*Identity, string, error)
}

// CredentialStore is durable key/value persistence for the session artifact
// and the cached identity. Implementations do no parsing and no validation;
// absent keys are reported with ErrCredentialNotFound. A degraded medium may
// fail every call and the rest of the system must keep working.
type CredentialStore interface {
	Put(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
	Clear(ctx context.Context) error
}

// TokenValidator validates session artifacts and extracts claims without
// tying callers to a specific verification strategy.
type TokenValidator interface {
	Validate(raw string) (AuthClaims, error)
}

// TransportConfigurer receives the default Authorization header value applied
// to outbound requests. SessionManager is its only writer.
type TransportConfigurer interface {
	SetAuthorization(value string)
	ClearAuthorization()
}

// SessionSource is the read-only view of the session consumed by the
// authorization layer.
type SessionSource interface {
	Current() State
}

// Config holds auth options
type Config interface {
	GetAuthScheme() string
	GetTokenKey() string
	GetIdentityKey() string
	GetSigningKey() string
	GetTokenExpiration() int
	GetIssuer() string
	GetAudience() []string
	GetLoginPath() string
	GetHomePath() string
}

// Clock lets tests pin the wall clock used for expiry checks.
type Clock func() time.Time

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] AUTH "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] AUTH "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] AUTH "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] AUTH "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
