// Package jwks implements auth.TokenValidator for RS256 artifacts verified
// against a JWK Set, for deployments where the identity provider publishes
// its signing keys instead of sharing a secret.
package jwks

import (
	"encoding/json"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	goerrors "github.com/goliatone/go-errors"

	auth "github.com/staffdesk/go-auth"
)

// Config controls how the validator fetches and checks keys.
type Config struct {
	// JWKSetURL is the endpoint publishing the key set.
	JWKSetURL string
	// RefreshInterval controls background key refresh. Zero disables it.
	RefreshInterval time.Duration
	// Issuer, when set, must match the iss claim.
	Issuer string
	// Audience, when set, must intersect the aud claim.
	Audience []string
}

// Validator verifies RS256 session artifacts against a JWK Set.
type Validator struct {
	jwks   *keyfunc.JWKS
	config Config
}

var _ auth.TokenValidator = (*Validator)(nil)

// New fetches the key set from cfg.JWKSetURL.
func New(cfg Config) (*Validator, error) {
	if cfg.JWKSetURL == "" {
		return nil, goerrors.New("jwks: key set URL is required", goerrors.CategoryBadInput)
	}

	opts := keyfunc.Options{}
	if cfg.RefreshInterval > 0 {
		opts.RefreshInterval = cfg.RefreshInterval
	}

	jwks, err := keyfunc.Get(cfg.JWKSetURL, opts)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "jwks: failed to fetch key set")
	}

	return &Validator{jwks: jwks, config: cfg}, nil
}

// NewFromJSON builds a validator from a static key set document, useful for
// tests and for environments that pin keys at deploy time.
func NewFromJSON(raw json.RawMessage, cfg Config) (*Validator, error) {
	jwks, err := keyfunc.NewJSON(raw)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryBadInput, "jwks: failed to parse key set")
	}
	return &Validator{jwks: jwks, config: cfg}, nil
}

// Validate implements auth.TokenValidator.
func (v *Validator) Validate(raw string) (auth.AuthClaims, error) {
	parserOptions := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256"}),
	}
	if v.config.Issuer != "" {
		parserOptions = append(parserOptions, jwt.WithIssuer(v.config.Issuer))
	}
	if len(v.config.Audience) > 0 {
		parserOptions = append(parserOptions, jwt.WithAudience(v.config.Audience...))
	}

	token, err := jwt.ParseWithClaims(raw, &auth.SessionClaims{}, v.jwks.Keyfunc, parserOptions...)
	if err != nil {
		if goerrors.Is(err, jwt.ErrTokenExpired) {
			return nil, auth.ErrTokenExpired
		}
		return nil, goerrors.Wrap(err, auth.ErrTokenMalformed.Category, auth.ErrTokenMalformed.Message).
			WithTextCode(auth.ErrTokenMalformed.TextCode)
	}

	claims, ok := token.Claims.(*auth.SessionClaims)
	if !ok || !token.Valid {
		return nil, auth.ErrTokenMalformed
	}

	return claims, nil
}

// Close stops background key refresh.
func (v *Validator) Close() {
	if v.jwks != nil {
		v.jwks.EndBackground()
	}
}
