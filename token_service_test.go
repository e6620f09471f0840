package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	auth "github.com/staffdesk/go-auth"
)

func TestTokenService_GenerateValidate(t *testing.T) {
	service := auth.NewTokenService([]byte("secret-key"), 24, "staffdesk", []string{"console"}, silentLogger{})
	identity := auth.Identity{ID: "e-1", Name: "Ana", Role: auth.RoleAdmin}

	t.Run("roundtrip carries the identity claims", func(t *testing.T) {
		raw, err := service.Generate(identity)
		assert.NoError(t, err)
		assert.NotEmpty(t, raw)

		claims, err := service.Validate(raw)
		assert.NoError(t, err)
		assert.Equal(t, "e-1", claims.UserID())
		assert.Equal(t, "Ana", claims.Name())
		assert.Equal(t, "admin", claims.Role())
		assert.False(t, claims.Expires().IsZero())
	})

	t.Run("issued artifacts satisfy the local check too", func(t *testing.T) {
		raw, err := service.Generate(identity)
		assert.NoError(t, err)

		local := auth.NewLocalValidator().WithLogger(silentLogger{})
		claims, err := local.Validate(raw)
		assert.NoError(t, err)
		assert.NoError(t, claims.(*auth.SessionClaims).Reconcile(identity))
	})

	t.Run("zero expiration issues a non expiring artifact", func(t *testing.T) {
		forever := auth.NewTokenService([]byte("secret-key"), 0, "", nil, silentLogger{})
		raw, err := forever.Generate(identity)
		assert.NoError(t, err)

		claims, err := forever.Validate(raw)
		assert.NoError(t, err)
		assert.True(t, claims.Expires().IsZero())
	})

	t.Run("wrong signing key is rejected", func(t *testing.T) {
		raw, err := service.Generate(identity)
		assert.NoError(t, err)

		other := auth.NewTokenService([]byte("other-key"), 24, "staffdesk", []string{"console"}, silentLogger{})
		_, err = other.Validate(raw)
		assert.Error(t, err)
		assert.True(t, auth.IsMalformedError(err))
	})

	t.Run("wrong issuer is rejected", func(t *testing.T) {
		raw, err := service.Generate(identity)
		assert.NoError(t, err)

		strict := auth.NewTokenService([]byte("secret-key"), 24, "someone-else", []string{"console"}, silentLogger{})
		_, err = strict.Validate(raw)
		assert.Error(t, err)
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := service.Validate("nope")
		assert.True(t, auth.IsMalformedError(err))
	})
}

func TestTokenService_ExpiredArtifact(t *testing.T) {
	service := auth.NewTokenService([]byte("secret-key"), 24, "", nil, silentLogger{})

	raw, err := service.SignClaims(&auth.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "e-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		UID:      "e-1",
		UserRole: "user",
	})
	assert.NoError(t, err)

	_, err = service.Validate(raw)
	assert.True(t, auth.IsTokenExpiredError(err))
}

func TestTokenService_SignClaims(t *testing.T) {
	service := auth.NewTokenService([]byte("secret-key"), 24, "", nil, silentLogger{})

	t.Run("nil claims", func(t *testing.T) {
		_, err := service.SignClaims(nil)
		assert.Error(t, err)
	})

	t.Run("issued artifacts carry a token id", func(t *testing.T) {
		raw, err := service.Generate(auth.Identity{ID: "e-1", Role: auth.RoleUser})
		assert.NoError(t, err)

		claims, err := service.Validate(raw)
		assert.NoError(t, err)
		assert.NotEmpty(t, claims.(*auth.SessionClaims).ID)
	})
}

func TestTokenService_AudienceAnyMatch(t *testing.T) {
	// the verifier accepts an artifact carrying any one of its audiences
	issuing := auth.NewTokenService([]byte("secret-key"), 24, "staffdesk", []string{"console"}, silentLogger{})

	raw, err := issuing.Generate(auth.Identity{ID: "e-1", Role: auth.RoleUser})
	assert.NoError(t, err)

	multi := auth.NewTokenService([]byte("secret-key"), 24, "staffdesk", []string{"console", "api"}, silentLogger{})
	claims, err := multi.Validate(raw)
	assert.NoError(t, err)
	assert.Equal(t, "e-1", claims.UserID())

	disjoint := auth.NewTokenService([]byte("secret-key"), 24, "staffdesk", []string{"mobile"}, silentLogger{})
	_, err = disjoint.Validate(raw)
	assert.Error(t, err)
}
