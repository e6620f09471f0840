// Package bunrepo implements auth.IdentityProvider on a bun-managed employees
// table, giving demo shells and tests a complete identity provider: bcrypt
// password verification plus HS256 artifact minting.
package bunrepo

import (
	"context"
	"database/sql"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	auth "github.com/staffdesk/go-auth"
)

// Employee is the persisted record behind the console's identity provider.
type Employee struct {
	bun.BaseModel `bun:"table:employees,alias:emp"`

	ID           uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Name         string     `bun:"name,notnull" json:"name,omitempty"`
	CPF          string     `bun:"cpf,notnull,unique" json:"cpf,omitempty"`
	Role         auth.Role  `bun:"role,notnull" json:"role,omitempty"`
	BirthDate    *time.Time `bun:"birth_date,nullzero" json:"birth_date,omitempty"`
	Obs          string     `bun:"obs" json:"obs,omitempty"`
	PasswordHash string     `bun:"password_hash,notnull" json:"-"`
	CreatedAt    *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt    *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Identity projects the record into what authorization cares about.
func (e *Employee) Identity() auth.Identity {
	return auth.Identity{
		ID:   e.ID.String(),
		Name: e.Name,
		Role: e.Role,
	}
}

// TokenIssuer mints the session artifact returned alongside a verified
// identity. auth.TokenService satisfies it.
type TokenIssuer interface {
	Generate(identity auth.Identity) (string, error)
}

// Provider verifies credentials against the employees table.
type Provider struct {
	db     *bun.DB
	tokens TokenIssuer
	logger auth.Logger
}

var _ auth.IdentityProvider = (*Provider)(nil)

// New returns a provider over db minting artifacts with tokens.
func New(db *bun.DB, tokens TokenIssuer) *Provider {
	return &Provider{
		db:     db,
		tokens: tokens,
		logger: nopLogger{},
	}
}

func (p *Provider) WithLogger(logger auth.Logger) *Provider {
	if logger != nil {
		p.logger = logger
	}
	return p
}

// CreateSchema creates the employees table when missing.
func (p *Provider) CreateSchema(ctx context.Context) error {
	_, err := p.db.NewCreateTable().
		Model((*Employee)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to create employees table")
	}
	return nil
}

// RegisterEmployee hashes the password and inserts the record, assigning an
// id when absent.
func (p *Provider) RegisterEmployee(ctx context.Context, employee *Employee, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	if employee.ID == uuid.Nil {
		employee.ID = uuid.New()
	}
	employee.PasswordHash = hash

	if _, err := p.db.NewInsert().Model(employee).Exec(ctx); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to insert employee")
	}
	return nil
}

// VerifyIdentity implements auth.IdentityProvider.
func (p *Provider) VerifyIdentity(ctx context.Context, identifier, secret string) (*auth.Identity, string, error) {
	employee := &Employee{}

	err := p.db.NewSelect().
		Model(employee).
		Where("cpf = ?", identifier).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			p.logger.Info("VerifyIdentity unknown identifier")
			return nil, "", auth.ErrIdentityNotFound
		}
		return nil, "", goerrors.Wrap(err, goerrors.CategoryInternal, "failed to query employee")
	}

	if err := auth.ComparePasswordAndHash(secret, employee.PasswordHash); err != nil {
		p.logger.Info("VerifyIdentity password mismatch", "employee", employee.ID)
		return nil, "", auth.ErrAuthenticationRejected
	}

	identity := employee.Identity()

	token, err := p.tokens.Generate(identity)
	if err != nil {
		p.logger.Error("VerifyIdentity failed to mint artifact", "error", err)
		return nil, "", err
	}

	return &identity, token, nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
