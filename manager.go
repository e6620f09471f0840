package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

// SessionManager orchestrates login, logout, and session restoration. It owns
// the authoritative in-memory State, is the sole writer of the
// CredentialStore and of the transport's default Authorization header, and
// recovers every internal I/O failure to StatusUnauthenticated. Only Login
// surfaces errors to its caller.
//
// The original console runs these operations on a single UI thread; the Go
// rendition guards the state pair with a lock because library consumers may
// call from several goroutines. Overlapping logins keep last-write-wins
// semantics either way.
type SessionManager struct {
	mu    sync.RWMutex
	state State

	provider  IdentityProvider
	store     CredentialStore
	validator TokenValidator
	transport TransportConfigurer

	logger Logger
	sink   ActivitySink
	now    Clock

	authScheme  string
	tokenKey    string
	identityKey string
}

var _ SessionSource = (*SessionManager)(nil)

// NewSessionManager returns a manager in the unauthenticated state. A nil cfg
// falls back to DefaultConfig; a nil validator falls back to the local
// optimistic check.
func NewSessionManager(provider IdentityProvider, store CredentialStore, validator TokenValidator, cfg Config) *SessionManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if validator == nil {
		validator = NewLocalValidator()
	}
	if store == nil {
		// a missing medium behaves like an unavailable one
		store = unavailableStore{}
	}

	return &SessionManager{
		state:       UnauthenticatedState(),
		provider:    provider,
		store:       store,
		validator:   validator,
		transport:   noopTransport{},
		logger:      defLogger{},
		sink:        noopActivitySink{},
		now:         time.Now,
		authScheme:  cfg.GetAuthScheme(),
		tokenKey:    cfg.GetTokenKey(),
		identityKey: cfg.GetIdentityKey(),
	}
}

func (m *SessionManager) WithLogger(logger Logger) *SessionManager {
	if logger != nil {
		m.logger = logger
	}
	return m
}

// WithTransport connects the outbound transport whose default Authorization
// header this manager maintains.
func (m *SessionManager) WithTransport(transport TransportConfigurer) *SessionManager {
	m.transport = normalizeTransport(transport)
	return m
}

// WithActivitySink configures an ActivitySink for emitting auth events.
func (m *SessionManager) WithActivitySink(sink ActivitySink) *SessionManager {
	m.sink = normalizeActivitySink(sink)
	return m
}

// WithClock injects a custom clock (useful for tests).
func (m *SessionManager) WithClock(clock Clock) *SessionManager {
	if clock != nil {
		m.now = clock
	}
	return m
}

// Current is a pure read of the session state.
func (m *SessionManager) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Restore reconstructs the session from persisted credentials. Absent entries
// leave the state unauthenticated; invalid ones additionally clear the store.
// Restore never fails: any storage or validation error degrades to
// StatusUnauthenticated. Calling it twice without an intervening login/logout
// is a no-op on the second call.
func (m *SessionManager) Restore(ctx context.Context) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Authenticated() {
		return m.state
	}

	token, ok := m.storedValue(ctx, m.tokenKey)
	if !ok {
		m.state = UnauthenticatedState()
		return m.state
	}

	rawIdentity, ok := m.storedValue(ctx, m.identityKey)
	if !ok {
		m.state = UnauthenticatedState()
		return m.state
	}

	identity, err := DecodeIdentity(rawIdentity)
	if err != nil {
		m.logger.Warn("Restore found undecodable identity", "error", err)
		return m.rejectRestore(ctx, "identity_undecodable")
	}

	claims, err := m.validator.Validate(token)
	if err != nil {
		m.logger.Info("Restore token validation failed", "error", err)
		reason := "token_malformed"
		if IsTokenExpiredError(err) {
			reason = "token_expired"
		}
		return m.rejectRestore(ctx, reason)
	}

	if err := reconcileClaims(claims, identity); err != nil {
		m.logger.Warn("Restore claims disagree with cached identity", "error", err)
		return m.rejectRestore(ctx, "role_mismatch")
	}

	state, err := AuthenticatedState(identity, token)
	if err != nil {
		return m.rejectRestore(ctx, "identity_incomplete")
	}

	m.state = state
	m.transport.SetAuthorization(m.headerValue(token))
	m.emit(ctx, ActivityEventSessionRestored, m.actor(identity), identity.ID, nil)

	return m.state
}

// Login delegates to the identity provider and, on success, persists the
// identity/artifact pair atomically, primes the transport header, and moves
// the state to StatusAuthenticated. It returns whether the resulting state is
// authenticated; a provider response lacking a usable identity or artifact
// fails with ErrAuthenticationRejected and changes nothing.
func (m *SessionManager) Login(ctx context.Context, creds Credentials) (bool, error) {
	creds = creds.Normalized()
	if err := creds.Validate(); err != nil {
		m.logger.Debug("Login rejected invalid payload", "error", err)
		return false, err
	}

	identity, token, err := m.provider.VerifyIdentity(ctx, creds.CPF, creds.Password)
	if err != nil {
		m.logger.Error("Login verify identity error", "error", err)
		m.emit(ctx, ActivityEventLoginFailure, ActorRef{Type: "unknown"}, "", map[string]any{
			"error": err.Error(),
		})
		return false, err
	}

	if identity == nil || identity.IsZero() {
		m.logger.Error("Login identity is nil or zero value")
		m.emit(ctx, ActivityEventLoginFailure, ActorRef{Type: "unknown"}, "", map[string]any{
			"error": ErrIdentityNotFound.Error(),
		})
		return false, ErrAuthenticationRejected
	}

	if token == "" {
		m.logger.Error("Login response carried no session artifact")
		m.emit(ctx, ActivityEventLoginFailure, m.actor(*identity), identity.ID, nil)
		return false, NewAuthenticationRejectedError(map[string]any{
			"reason": "missing artifact",
		})
	}

	claims, err := m.validator.Validate(token)
	if err != nil {
		m.logger.Error("Login artifact failed validation", "error", err)
		m.emit(ctx, ActivityEventLoginFailure, m.actor(*identity), identity.ID, map[string]any{
			"error": err.Error(),
		})
		return false, err
	}

	if err := reconcileClaims(claims, *identity); err != nil {
		m.logger.Error("Login artifact claims disagree with identity", "error", err)
		m.emit(ctx, ActivityEventLoginFailure, m.actor(*identity), identity.ID, map[string]any{
			"error": err.Error(),
		})
		return false, err
	}

	state, err := AuthenticatedState(*identity, token)
	if err != nil {
		return false, ErrAuthenticationRejected
	}

	m.mu.Lock()
	m.persist(ctx, *identity, token)
	m.state = state
	m.transport.SetAuthorization(m.headerValue(token))
	m.mu.Unlock()

	m.emit(ctx, ActivityEventLoginSuccess, m.actor(*identity), identity.ID, nil)

	return true, nil
}

// Logout is unconditional: it clears the store, resets the transport header,
// and reaches StatusUnauthenticated even on a degraded medium or when already
// signed out.
func (m *SessionManager) Logout(ctx context.Context) {
	m.mu.Lock()

	userID := ""
	if identity, ok := m.state.Identity(); ok {
		userID = identity.ID
	}

	if err := m.store.Clear(ctx); err != nil {
		m.logger.Warn("Logout could not clear credential store", "error", err)
	}

	m.transport.ClearAuthorization()
	m.state = UnauthenticatedState()
	m.mu.Unlock()

	m.emit(ctx, ActivityEventLogout, ActorRef{ID: userID, Type: "user"}, userID, nil)
}

// storedValue reads a key, collapsing "absent" and "storage unavailable" into
// a single missing result.
func (m *SessionManager) storedValue(ctx context.Context, key string) (string, bool) {
	value, err := m.store.Get(ctx, key)
	if err != nil {
		if !goerrors.IsNotFound(err) {
			m.logger.Warn("credential store read failed", "key", key, "error", err)
		}
		return "", false
	}
	return value, value != ""
}

// persist writes the identity/artifact pair. Write failures are tolerated;
// the in-memory session stays valid and only survives until restart.
func (m *SessionManager) persist(ctx context.Context, identity Identity, token string) {
	encoded, err := EncodeIdentity(identity)
	if err != nil {
		m.logger.Error("failed to encode identity for persistence", "error", err)
		return
	}

	if err := m.store.Put(ctx, m.tokenKey, token); err != nil {
		m.logger.Warn("credential store write failed", "key", m.tokenKey, "error", err)
		// a stale pair from the previous session must not survive either
		if clearErr := m.store.Clear(ctx); clearErr != nil {
			m.logger.Warn("credential store rollback failed", "error", clearErr)
		}
		return
	}

	if err := m.store.Put(ctx, m.identityKey, encoded); err != nil {
		m.logger.Warn("credential store write failed", "key", m.identityKey, "error", err)
		// keep the pair atomic: a lone token must not survive
		if clearErr := m.store.Clear(ctx); clearErr != nil {
			m.logger.Warn("credential store rollback failed", "error", clearErr)
		}
	}
}

func (m *SessionManager) rejectRestore(ctx context.Context, reason string) State {
	if err := m.store.Clear(ctx); err != nil {
		m.logger.Warn("could not clear credential store after rejected restore", "error", err)
	}
	m.transport.ClearAuthorization()
	m.state = UnauthenticatedState()

	m.emit(ctx, ActivityEventRestoreRejected, ActorRef{Type: "system"}, "", map[string]any{
		"reason": reason,
	})

	return m.state
}

func (m *SessionManager) headerValue(token string) string {
	if m.authScheme == "" || strings.HasPrefix(token, m.authScheme+" ") {
		return token
	}
	return m.authScheme + " " + token
}

func (m *SessionManager) actor(identity Identity) ActorRef {
	return ActorRef{ID: identity.ID, Type: "user"}
}

func (m *SessionManager) emit(ctx context.Context, eventType ActivityEventType, actor ActorRef, userID string, metadata map[string]any) {
	event := ActivityEvent{
		EventType: eventType,
		Actor:     actor,
		UserID:    userID,
		Metadata:  metadata,
	}

	if event.Metadata == nil {
		event.Metadata = map[string]any{}
	}

	event.OccurredAt = m.now()

	if err := m.sink.Record(ctx, event); err != nil {
		m.logger.Warn("activity sink record error: %v", err)
	}
}

// unavailableStore stands in when no medium is configured; reads report
// absence and writes are accepted nowhere, so the session simply never
// survives a restart.
type unavailableStore struct{}

func (unavailableStore) Put(context.Context, string, string) error { return ErrStorageUnavailable }
func (unavailableStore) Get(context.Context, string) (string, error) {
	return "", ErrCredentialNotFound
}
func (unavailableStore) Clear(context.Context) error { return nil }
