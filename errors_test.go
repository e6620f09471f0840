package auth_test

import (
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"

	auth "github.com/staffdesk/go-auth"
)

func TestIsTokenExpiredError(t *testing.T) {
	assert.True(t, auth.IsTokenExpiredError(auth.ErrTokenExpired))
	assert.False(t, auth.IsTokenExpiredError(auth.ErrTokenMalformed))
	assert.False(t, auth.IsTokenExpiredError(nil))
}

func TestIsMalformedError(t *testing.T) {
	assert.True(t, auth.IsMalformedError(auth.ErrTokenMalformed))
	assert.False(t, auth.IsMalformedError(auth.ErrTokenExpired))
	assert.False(t, auth.IsMalformedError(nil))
}

func TestIsRoleMismatchError(t *testing.T) {
	assert.True(t, auth.IsRoleMismatchError(auth.ErrRoleMismatch))
	assert.False(t, auth.IsRoleMismatchError(auth.ErrTokenMalformed))
	assert.False(t, auth.IsRoleMismatchError(nil))
}

func TestIsAuthenticationRejectedError(t *testing.T) {
	assert.True(t, auth.IsAuthenticationRejectedError(auth.ErrAuthenticationRejected))
	assert.False(t, auth.IsAuthenticationRejectedError(auth.ErrIdentityNotFound))
	assert.False(t, auth.IsAuthenticationRejectedError(nil))
}

func TestErrCredentialNotFound_Category(t *testing.T) {
	assert.True(t, goerrors.IsNotFound(auth.ErrCredentialNotFound))
	assert.False(t, goerrors.IsNotFound(auth.ErrStorageUnavailable))
}
