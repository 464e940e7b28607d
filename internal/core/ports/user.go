package ports

import (
	"context"

	"github.com/shoplite/commerce-system/internal/core/domain"
)

type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) (*domain.User, error)
	DeleteByID(ctx context.Context, id int) error
}

type AddressRepository interface {
	FindAll(ctx context.Context) ([]domain.Address, error)
	FindByID(ctx context.Context, id int) (*domain.Address, error)
	Create(ctx context.Context, a *domain.Address) (*domain.Address, error)
	Update(ctx context.Context, a *domain.Address) (*domain.Address, error)
	DeleteByID(ctx context.Context, id int) error
}

type VerificationTokenRepository interface {
	FindAll(ctx context.Context) ([]domain.VerificationToken, error)
	FindByID(ctx context.Context, id int) (*domain.VerificationToken, error)
	Create(ctx context.Context, vt *domain.VerificationToken) (*domain.VerificationToken, error)
	Update(ctx context.Context, vt *domain.VerificationToken) (*domain.VerificationToken, error)
	DeleteByID(ctx context.Context, id int) error
}

// UserDetail is a user composed with its credential from the local store.
type UserDetail struct {
	domain.User
	Credential *domain.Credential `json:"credential,omitempty"`
}

type UserService interface {
	FindAll(ctx context.Context) ([]UserDetail, error)
	FindByID(ctx context.Context, id int) (*UserDetail, error)
	FindByUsername(ctx context.Context, username string) (*UserDetail, error)
	Create(ctx context.Context, u domain.User) (*UserDetail, error)
	Update(ctx context.Context, u domain.User) (*UserDetail, error)
	DeleteByID(ctx context.Context, id int) error
}

// AddressDetail is an address composed with its owning user.
type AddressDetail struct {
	domain.Address
	User *domain.User `json:"user,omitempty"`
}

type AddressService interface {
	FindAll(ctx context.Context) ([]AddressDetail, error)
	FindByID(ctx context.Context, id int) (*AddressDetail, error)
	Create(ctx context.Context, a domain.Address) (*AddressDetail, error)
	Update(ctx context.Context, a domain.Address) (*AddressDetail, error)
	DeleteByID(ctx context.Context, id int) error
}

// VerificationTokenDetail is a token composed with its credential.
type VerificationTokenDetail struct {
	domain.VerificationToken
	Credential *domain.Credential `json:"credential,omitempty"`
}

type VerificationTokenService interface {
	FindAll(ctx context.Context) ([]VerificationTokenDetail, error)
	FindByID(ctx context.Context, id int) (*VerificationTokenDetail, error)
	Create(ctx context.Context, vt domain.VerificationToken) (*VerificationTokenDetail, error)
	Update(ctx context.Context, vt domain.VerificationToken) (*VerificationTokenDetail, error)
	DeleteByID(ctx context.Context, id int) error
}
