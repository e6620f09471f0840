package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	auth "github.com/staffdesk/go-auth"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, auth.RoleDefault.IsValid())
	assert.True(t, auth.RoleUser.IsValid())
	assert.True(t, auth.RoleAdmin.IsValid())
	assert.False(t, auth.Role("superuser").IsValid())
	assert.False(t, auth.Role("").IsValid())
}

func TestRole_IsAdmin(t *testing.T) {
	assert.True(t, auth.RoleAdmin.IsAdmin())
	assert.False(t, auth.RoleUser.IsAdmin())
	assert.False(t, auth.RoleDefault.IsAdmin())
}

func TestRole_IsAtLeast(t *testing.T) {
	tests := []struct {
		role     auth.Role
		min      auth.Role
		expected bool
	}{
		{auth.RoleAdmin, auth.RoleDefault, true},
		{auth.RoleAdmin, auth.RoleAdmin, true},
		{auth.RoleUser, auth.RoleAdmin, false},
		{auth.RoleUser, auth.RoleUser, true},
		{auth.RoleDefault, auth.RoleUser, false},
		{auth.Role("unknown"), auth.RoleDefault, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.role.IsAtLeast(tt.min),
			"%s at least %s", tt.role, tt.min)
	}
}

func TestParseRole(t *testing.T) {
	role, ok := auth.ParseRole("admin")
	assert.True(t, ok)
	assert.Equal(t, auth.RoleAdmin, role)

	_, ok = auth.ParseRole("root")
	assert.False(t, ok)
}

func TestGetAllRoles(t *testing.T) {
	roles := auth.GetAllRoles()
	assert.Equal(t, []auth.Role{auth.RoleDefault, auth.RoleUser, auth.RoleAdmin}, roles)
}
