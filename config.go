package auth

import (
	"github.com/caarlos0/env/v11"
	goerrors "github.com/goliatone/go-errors"
	"github.com/joho/godotenv"
)

// EnvConfig is the default Config implementation. The core never requires
// process configuration; every field has a usable default, and Load is only
// for shells that want to override them from the environment.
type EnvConfig struct {
	AuthScheme      string   `env:"AUTH_SCHEME" envDefault:"Bearer"`
	TokenKey        string   `env:"AUTH_TOKEN_KEY" envDefault:"token"`
	IdentityKey     string   `env:"AUTH_IDENTITY_KEY" envDefault:"user"`
	SigningKey      string   `env:"AUTH_SIGNING_KEY"`
	TokenExpiration int      `env:"AUTH_TOKEN_EXPIRATION" envDefault:"24"`
	Issuer          string   `env:"AUTH_ISSUER"`
	Audience        []string `env:"AUTH_AUDIENCE" envSeparator:","`
	LoginPath       string   `env:"AUTH_LOGIN_PATH" envDefault:"/"`
	HomePath        string   `env:"AUTH_HOME_PATH" envDefault:"/employees"`
}

var _ Config = (*EnvConfig)(nil)

// DefaultConfig returns a config holding only defaults.
func DefaultConfig() *EnvConfig {
	return &EnvConfig{
		AuthScheme:      "Bearer",
		TokenKey:        "token",
		IdentityKey:     "user",
		TokenExpiration: 24,
		LoginPath:       "/",
		HomePath:        "/employees",
	}
}

// LoadConfig reads configuration from the environment, first loading a .env
// file when one is present.
func LoadConfig() (*EnvConfig, error) {
	// missing .env is the normal case, not an error
	_ = godotenv.Load()

	cfg := &EnvConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryBadInput, "failed to parse auth config")
	}
	return cfg, nil
}

func (c *EnvConfig) GetAuthScheme() string   { return c.AuthScheme }
func (c *EnvConfig) GetTokenKey() string     { return c.TokenKey }
func (c *EnvConfig) GetIdentityKey() string  { return c.IdentityKey }
func (c *EnvConfig) GetSigningKey() string   { return c.SigningKey }
func (c *EnvConfig) GetTokenExpiration() int { return c.TokenExpiration }
func (c *EnvConfig) GetIssuer() string       { return c.Issuer }
func (c *EnvConfig) GetAudience() []string   { return c.Audience }
func (c *EnvConfig) GetLoginPath() string    { return c.LoginPath }
func (c *EnvConfig) GetHomePath() string     { return c.HomePath }
