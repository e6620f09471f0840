package auth_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	auth "github.com/staffdesk/go-auth"
)

// MockIdentityProvider implements auth.IdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) VerifyIdentity(ctx context.Context, identifier, secret string) (*auth.Identity, string, error) {
	args := m.Called(ctx, identifier, secret)
	identity, _ := args.Get(0).(*auth.Identity)
	return identity, args.String(1), args.Error(2)
}

// MockCredentialStore implements auth.CredentialStore
type MockCredentialStore struct {
	mock.Mock
}

func (m *MockCredentialStore) Put(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockCredentialStore) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCredentialStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockTokenValidator implements auth.TokenValidator
type MockTokenValidator struct {
	mock.Mock
}

func (m *MockTokenValidator) Validate(raw string) (auth.AuthClaims, error) {
	args := m.Called(raw)
	claims, _ := args.Get(0).(auth.AuthClaims)
	return claims, args.Error(1)
}

// recordingTransport captures every header the manager applies, in order.
type recordingTransport struct {
	values []string
}

func (t *recordingTransport) SetAuthorization(value string) {
	t.values = append(t.values, value)
}

func (t *recordingTransport) ClearAuthorization() {
	t.values = append(t.values, "")
}

func (t *recordingTransport) current() string {
	if len(t.values) == 0 {
		return ""
	}
	return t.values[len(t.values)-1]
}

// memStore is a map-backed store for tests that care about contents rather
// than call order.
type memStore struct {
	data    map[string]string
	putErr  error
	getErr  error
	failKey string
}

func newMemStore() *memStore {
	return &memStore{data: map[string]string{}}
}

func (s *memStore) Put(_ context.Context, key, value string) error {
	if s.putErr != nil && (s.failKey == "" || s.failKey == key) {
		return s.putErr
	}
	s.data[key] = value
	return nil
}

func (s *memStore) Get(_ context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	value, ok := s.data[key]
	if !ok {
		return "", auth.ErrCredentialNotFound
	}
	return value, nil
}

func (s *memStore) Clear(_ context.Context) error {
	s.data = map[string]string{}
	return nil
}

// collectSink gathers emitted activity events.
type collectSink struct {
	events []auth.ActivityEvent
}

func (s *collectSink) Record(_ context.Context, event auth.ActivityEvent) error {
	s.events = append(s.events, event)
	return nil
}

func (s *collectSink) types() []auth.ActivityEventType {
	out := make([]auth.ActivityEventType, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e.EventType)
	}
	return out
}

type silentLogger struct{}

func (silentLogger) Debug(string, ...any) {}
func (silentLogger) Info(string, ...any)  {}
func (silentLogger) Warn(string, ...any)  {}
func (silentLogger) Error(string, ...any) {}
