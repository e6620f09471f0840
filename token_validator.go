package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	goerrors "github.com/goliatone/go-errors"
)

// TokenValidatorFunc adapts a function into a TokenValidator.
type TokenValidatorFunc func(raw string) (AuthClaims, error)

// Validate satisfies the TokenValidator interface.
func (f TokenValidatorFunc) Validate(raw string) (AuthClaims, error) {
	if f == nil {
		return nil, ErrTokenMalformed
	}
	return f(raw)
}

// LocalValidator performs the client-side optimistic artifact check: the
// token must parse as a JWT and must not be past its expiry claim, compared
// against the local wall clock. No signature verification happens here; a
// revoked-but-unexpired artifact is only caught when the identity provider
// rejects a later request.
type LocalValidator struct {
	now    Clock
	logger Logger
}

// NewLocalValidator returns a validator using the system clock.
func NewLocalValidator() *LocalValidator {
	return &LocalValidator{
		now:    time.Now,
		logger: defLogger{},
	}
}

// WithClock pins the wall clock used for expiry checks (useful for tests).
func (v *LocalValidator) WithClock(clock Clock) *LocalValidator {
	if clock != nil {
		v.now = clock
	}
	return v
}

func (v *LocalValidator) WithLogger(logger Logger) *LocalValidator {
	if logger != nil {
		v.logger = logger
	}
	return v
}

// Validate satisfies the TokenValidator interface.
func (v *LocalValidator) Validate(raw string) (AuthClaims, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrTokenMalformed
	}

	claims := &SessionClaims{}
	parser := jwt.NewParser()

	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		v.logger.Debug("LocalValidator parse failed", "error", err)
		return nil, goerrors.Wrap(err, ErrTokenMalformed.Category, ErrTokenMalformed.Message).
			WithTextCode(ErrTokenMalformed.TextCode)
	}

	// Absent expiry means a non-expiring artifact; it already passed the
	// structural check above.
	if expires := claims.Expires(); !expires.IsZero() && !v.now().Before(expires) {
		return nil, ErrTokenExpired
	}

	return claims, nil
}

// MultiTokenValidator tries validators in order until one succeeds.
// It treats a malformed-token error as "try next" and returns the last
// malformed error if all validators fail.
type MultiTokenValidator struct {
	validators []TokenValidator
}

// NewMultiTokenValidator filters nil validators and returns a composite validator.
func NewMultiTokenValidator(validators ...TokenValidator) *MultiTokenValidator {
	filtered := make([]TokenValidator, 0, len(validators))
	for _, v := range validators {
		if v != nil {
			filtered = append(filtered, v)
		}
	}
	return &MultiTokenValidator{validators: filtered}
}

// Validate satisfies the TokenValidator interface.
func (m *MultiTokenValidator) Validate(raw string) (AuthClaims, error) {
	var lastErr error
	for _, v := range m.validators {
		claims, err := v.Validate(raw)
		if err == nil {
			return claims, nil
		}
		if IsMalformedError(err) {
			lastErr = err
			continue
		}
		return nil, err
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrTokenMalformed
}
