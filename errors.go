package auth

import (
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeTokenExpired   = "TOKEN_EXPIRED"
	textCodeTokenMalformed = "TOKEN_MALFORMED"
	textCodeRoleMismatch   = "ROLE_MISMATCH"
	textCodeAuthRejected   = "AUTHENTICATION_REJECTED"
	textCodeStorageDown    = "STORAGE_UNAVAILABLE"
)

// ErrTokenExpired is returned when a session artifact is syntactically valid
// but past its expiry window.
var ErrTokenExpired = goerrors.New("session token is expired", goerrors.CategoryAuth).
	WithTextCode(textCodeTokenExpired).
	WithCode(goerrors.CodeUnauthorized)

// ErrTokenMalformed is returned for absent, empty, or unparseable artifacts.
var ErrTokenMalformed = goerrors.New("session token is malformed", goerrors.CategoryAuth).
	WithTextCode(textCodeTokenMalformed).
	WithCode(goerrors.CodeUnauthorized)

// ErrRoleMismatch is returned when the role embedded in the artifact disagrees
// with the cached identity; treated like a malformed artifact, forcing re-login.
var ErrRoleMismatch = goerrors.New("token claims do not match cached identity", goerrors.CategoryAuth).
	WithTextCode(textCodeRoleMismatch).
	WithCode(goerrors.CodeUnauthorized)

// ErrAuthenticationRejected is returned when the identity provider yields no
// usable identity or artifact. It is the only failure Login surfaces.
var ErrAuthenticationRejected = goerrors.New("authentication rejected", goerrors.CategoryAuth).
	WithTextCode(textCodeAuthRejected).
	WithCode(goerrors.CodeUnauthorized)

// ErrStorageUnavailable reports a degraded persistence medium. SessionManager
// recovers it to "absent", it never crosses the manager boundary.
var ErrStorageUnavailable = goerrors.New("credential storage unavailable", goerrors.CategoryInternal).
	WithTextCode(textCodeStorageDown).
	WithCode(goerrors.CodeInternal)

// ErrCredentialNotFound is returned by CredentialStore implementations for
// absent keys.
var ErrCredentialNotFound = goerrors.New("credential not found", goerrors.CategoryNotFound).
	WithCode(goerrors.CodeNotFound)

// ErrIdentityNotFound is the error we return for non found identities
var ErrIdentityNotFound = goerrors.New("identity not found", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized)

// ErrNoEmptyString rejects empty passwords before hashing.
var ErrNoEmptyString = goerrors.New("value must not be empty", goerrors.CategoryValidation).
	WithCode(goerrors.CodeBadRequest)

// ErrMismatchedHashAndPassword is returned when a cleartext password does not
// match the stored hash.
var ErrMismatchedHashAndPassword = goerrors.New("password does not match", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized)

// The sentinels above are shared package state and must never be mutated;
// call sites that want metadata attached build a fresh error through the
// constructors below instead.

// NewRoleMismatchError returns a fresh claim/identity mismatch error
// carrying metadata.
func NewRoleMismatchError(metadata map[string]any) *goerrors.Error {
	return goerrors.New("token claims do not match cached identity", goerrors.CategoryAuth).
		WithTextCode(textCodeRoleMismatch).
		WithCode(goerrors.CodeUnauthorized).
		WithMetadata(metadata)
}

// NewAuthenticationRejectedError returns a fresh provider rejection error
// carrying metadata.
func NewAuthenticationRejectedError(metadata map[string]any) *goerrors.Error {
	return goerrors.New("authentication rejected", goerrors.CategoryAuth).
		WithTextCode(textCodeAuthRejected).
		WithCode(goerrors.CodeUnauthorized).
		WithMetadata(metadata)
}

// NewCredentialNotFoundError returns a fresh absent-key error for key.
func NewCredentialNotFoundError(key string) *goerrors.Error {
	return goerrors.New("credential not found", goerrors.CategoryNotFound).
		WithCode(goerrors.CodeNotFound).
		WithMetadata(map[string]any{"key": key})
}

// NewStorageUnavailableError returns a fresh degraded-medium error wrapping
// cause.
func NewStorageUnavailableError(cause error) *goerrors.Error {
	return goerrors.Wrap(cause, goerrors.CategoryInternal, "credential storage unavailable").
		WithTextCode(textCodeStorageDown).
		WithCode(goerrors.CodeInternal)
}

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	return hasTextCode(err, textCodeTokenExpired) ||
		strings.Contains(err.Error(), "token is expired")
}

// IsMalformedError will check for malformed or unparseable tokens
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	return hasTextCode(err, textCodeTokenMalformed) ||
		strings.Contains(err.Error(), "token is malformed") ||
		strings.Contains(err.Error(), "missing or malformed JWT")
}

// IsRoleMismatchError will check for claim/identity reconciliation failures
func IsRoleMismatchError(err error) bool {
	return hasTextCode(err, textCodeRoleMismatch)
}

// IsAuthenticationRejectedError will check for provider rejections
func IsAuthenticationRejectedError(err error) bool {
	return hasTextCode(err, textCodeAuthRejected)
}

func hasTextCode(err error, code string) bool {
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return richErr.TextCode == code
	}
	return false
}
