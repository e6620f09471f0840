// Package httpapi implements auth.IdentityProvider against the console's REST
// backend: one login exchange returning the identity record in the body and
// the session artifact in the Authorization response header.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	goerrors "github.com/goliatone/go-errors"

	auth "github.com/staffdesk/go-auth"
)

const defaultLoginPath = "/api/v1/users/login"

// Client talks to the identity provider endpoint. It deliberately uses a
// plain *http.Client rather than the session-managed transport: the login
// request itself must not carry a stale Authorization header.
type Client struct {
	baseURL   string
	loginPath string
	httpc     *http.Client
	logger    auth.Logger
}

var _ auth.IdentityProvider = (*Client)(nil)

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the underlying http client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		if httpc != nil {
			c.httpc = httpc
		}
	}
}

// WithLoginPath overrides the login endpoint path.
func WithLoginPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.loginPath = path
		}
	}
}

// WithLogger overrides the client logger.
func WithLogger(logger auth.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New returns a client for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   baseURL,
		loginPath: defaultLoginPath,
		httpc:     http.DefaultClient,
		logger:    noopLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

type loginRequest struct {
	CPF      string `json:"cpf"`
	Password string `json:"password"`
}

// VerifyIdentity implements auth.IdentityProvider. A response without an
// Authorization header is a hard failure even when the body looks fine.
func (c *Client) VerifyIdentity(ctx context.Context, identifier, secret string) (*auth.Identity, string, error) {
	payload, err := json.Marshal(loginRequest{CPF: identifier, Password: secret})
	if err != nil {
		return nil, "", goerrors.Wrap(err, goerrors.CategoryInternal, "failed to encode login payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.loginPath, bytes.NewReader(payload))
	if err != nil {
		return nil, "", goerrors.Wrap(err, goerrors.CategoryInternal, "failed to build login request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, "", goerrors.Wrap(err, goerrors.CategoryInternal, "identity provider unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Info("identity provider rejected login", "status", resp.StatusCode)
		return nil, "", auth.NewAuthenticationRejectedError(map[string]any{
			"status": resp.StatusCode,
		})
	}

	var identity auth.Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, "", goerrors.Wrap(err, goerrors.CategoryInternal, "failed to decode identity body")
	}

	artifact := resp.Header.Get("Authorization")
	if artifact == "" {
		c.logger.Error("identity provider response missing authorization header")
		return nil, "", auth.NewAuthenticationRejectedError(map[string]any{
			"reason": "missing authorization header",
		})
	}

	return &identity, artifact, nil
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
