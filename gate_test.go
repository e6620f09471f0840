package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	auth "github.com/staffdesk/go-auth"
)

func mustState(t *testing.T, identity auth.Identity) auth.State {
	t.Helper()
	state, err := auth.AuthenticatedState(identity, "tok123")
	assert.NoError(t, err)
	return state
}

func TestGate_Decide(t *testing.T) {
	admin := auth.Identity{ID: "e-1", Name: "Ana", Role: auth.RoleAdmin}
	user := auth.Identity{ID: "e-2", Name: "Bia", Role: auth.RoleUser}

	publicRoute := auth.RouteRequirement{Path: "/"}
	listRoute := auth.RouteRequirement{
		Path:         "/employees",
		RequiresAuth: true,
		FallbackPath: "/",
	}
	newRoute := auth.RouteRequirement{
		Path:          "/employees/new",
		RequiresAuth:  true,
		RequiresAdmin: true,
		FallbackPath:  "/employees",
	}

	gate := auth.NewGate().WithLogger(silentLogger{})

	tests := []struct {
		name         string
		requirement  auth.RouteRequirement
		state        auth.State
		wantAllowed  bool
		wantRedirect string
	}{
		{
			name:        "public route allows anonymous",
			requirement: publicRoute,
			state:       auth.UnauthenticatedState(),
			wantAllowed: true,
		},
		{
			name:        "public route allows authenticated",
			requirement: publicRoute,
			state:       mustState(t, admin),
			wantAllowed: true,
		},
		{
			name:         "protected route redirects anonymous to login",
			requirement:  listRoute,
			state:        auth.UnauthenticatedState(),
			wantRedirect: "/",
		},
		{
			name:        "protected route allows any session",
			requirement: listRoute,
			state:       mustState(t, user),
			wantAllowed: true,
		},
		{
			name:        "admin route allows admin",
			requirement: newRoute,
			state:       mustState(t, admin),
			wantAllowed: true,
		},
		{
			name:         "admin route sends signed in non admin to its fallback",
			requirement:  newRoute,
			state:        mustState(t, user),
			wantRedirect: "/employees",
		},
		{
			name:         "admin rule outranks the auth rule for anonymous",
			requirement:  newRoute,
			state:        auth.UnauthenticatedState(),
			wantRedirect: "/employees",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := gate.Decide(tt.requirement, tt.state)

			assert.Equal(t, tt.wantAllowed, decision.Allowed())
			if !tt.wantAllowed {
				redirect, ok := decision.RedirectPath()
				assert.True(t, ok)
				assert.Equal(t, tt.wantRedirect, redirect)
			}
		})
	}
}

func TestGate_ReEvaluatesOnEveryCall(t *testing.T) {
	gate := auth.NewGate().WithLogger(silentLogger{})
	route := auth.RouteRequirement{Path: "/employees", RequiresAuth: true, FallbackPath: "/"}

	denied := gate.Decide(route, auth.UnauthenticatedState())
	assert.False(t, denied.Allowed())

	state := mustState(t, auth.Identity{ID: "e-1", Role: auth.RoleUser})
	allowed := gate.Decide(route, state)
	assert.True(t, allowed.Allowed())
}

func TestDecision(t *testing.T) {
	allow := auth.Allow()
	assert.True(t, allow.Allowed())
	_, ok := allow.RedirectPath()
	assert.False(t, ok)

	deny := auth.RedirectTo("/login")
	assert.False(t, deny.Allowed())
	path, ok := deny.RedirectPath()
	assert.True(t, ok)
	assert.Equal(t, "/login", path)
}

func TestRouteRequirement_Public(t *testing.T) {
	assert.True(t, auth.RouteRequirement{Path: "/"}.Public())
	assert.False(t, auth.RouteRequirement{Path: "/employees", RequiresAuth: true}.Public())
	assert.False(t, auth.RouteRequirement{Path: "/new", RequiresAdmin: true}.Public())
}

func TestRouteTable(t *testing.T) {
	table := auth.NewRouteTable(
		auth.RouteRequirement{Path: "/"},
		auth.RouteRequirement{Path: "/employees", RequiresAuth: true, FallbackPath: "/"},
	)

	t.Run("exact match wins", func(t *testing.T) {
		req := table.Requirement("/employees")
		assert.True(t, req.RequiresAuth)
	})

	t.Run("unknown path falls back to public wildcard", func(t *testing.T) {
		req := table.Requirement("/nope")
		assert.Equal(t, auth.WildcardPath, req.Path)
		assert.True(t, req.Public())
	})

	t.Run("explicit wildcard entry replaces the default", func(t *testing.T) {
		guarded := auth.NewRouteTable(
			auth.RouteRequirement{Path: "/"},
			auth.RouteRequirement{Path: auth.WildcardPath, RequiresAuth: true, FallbackPath: "/"},
		)

		req := guarded.Requirement("/anything")
		assert.True(t, req.RequiresAuth)
		assert.Equal(t, "/", req.FallbackPath)
	})
}
