package ports

import (
	"context"

	"github.com/shoplite/commerce-system/internal/core/domain"
)

// CredentialLookup is the narrow read port the authenticator needs. The user
// service backs it with Mongo; the gateway backs it with a remote call to the
// user service, so both share one authenticator implementation.
type CredentialLookup interface {
	FindByUsername(ctx context.Context, username string) (*domain.Credential, error)
}

// CredentialRepository is the full persistence port owned by the user service.
type CredentialRepository interface {
	CredentialLookup
	FindAll(ctx context.Context) ([]domain.Credential, error)
	FindByID(ctx context.Context, id int) (*domain.Credential, error)
	FindByUserID(ctx context.Context, userID int) (*domain.Credential, error)
	Create(ctx context.Context, c *domain.Credential) (*domain.Credential, error)
	Update(ctx context.Context, c *domain.Credential) (*domain.Credential, error)
	DeleteByID(ctx context.Context, id int) error
}

// AuthService authenticates callers and validates previously issued tokens.
type AuthService interface {
	// Authenticate checks a username/password pair and mints a token.
	// Unknown user and wrong password are indistinguishable to the caller.
	Authenticate(ctx context.Context, username, password string) (string, error)
	// ValidateToken reports whether a token is well-formed, correctly signed
	// and unexpired. It never consults the credential store: a disabled
	// account keeps its outstanding tokens until they expire.
	ValidateToken(token string) bool
}

// CredentialDetail is a credential composed with its locally stored user.
type CredentialDetail struct {
	domain.Credential
	User *domain.User `json:"user,omitempty"`
}

// CredentialService is the CRUD surface for credentials on the user service.
type CredentialService interface {
	FindAll(ctx context.Context) ([]CredentialDetail, error)
	FindByID(ctx context.Context, id int) (*CredentialDetail, error)
	FindByUsername(ctx context.Context, username string) (*CredentialDetail, error)
	Create(ctx context.Context, c domain.Credential, password string) (*CredentialDetail, error)
	Update(ctx context.Context, c domain.Credential) (*CredentialDetail, error)
	DeleteByID(ctx context.Context, id int) error
}
