package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shoplite/commerce-system/internal/core/domain"
	"github.com/shoplite/commerce-system/internal/core/ports"
)

// CredentialService is the CRUD surface for credentials on the user service,
// composing each credential with the user it belongs to. Passwords arrive in
// plaintext only on Create and are hashed before they reach the store.
type CredentialService struct {
	repo   ports.CredentialRepository
	users  ports.UserRepository
	policy DeletePolicy
	log    zerolog.Logger
}

func NewCredentialService(repo ports.CredentialRepository, users ports.UserRepository, policy DeletePolicy, log zerolog.Logger) *CredentialService {
	return &CredentialService{repo: repo, users: users, policy: policy, log: log}
}

func (s *CredentialService) FindAll(ctx context.Context) ([]ports.CredentialDetail, error) {
	creds, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]ports.CredentialDetail, 0, len(creds))
	for _, c := range creds {
		detail, err := s.enrich(ctx, c)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func (s *CredentialService) FindByID(ctx context.Context, id int) (*ports.CredentialDetail, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, *c)
}

func (s *CredentialService) FindByUsername(ctx context.Context, username string) (*ports.CredentialDetail, error) {
	c, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, *c)
}

func (s *CredentialService) Create(ctx context.Context, c domain.Credential, password string) (*ports.CredentialDetail, error) {
	if c.Username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	c.PasswordHash = string(hash)
	if c.Role == "" {
		c.Role = domain.RoleUser
	}

	created, err := s.repo.Create(ctx, &c)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("credential_id", created.ID).Str("username", created.Username).Msg("credential created")
	return s.enrich(ctx, *created)
}

func (s *CredentialService) Update(ctx context.Context, c domain.Credential) (*ports.CredentialDetail, error) {
	// Password changes go through Create-time hashing only; an update keeps
	// the stored hash.
	existing, err := s.repo.FindByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.PasswordHash = existing.PasswordHash

	updated, err := s.repo.Update(ctx, &c)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, *updated)
}

func (s *CredentialService) DeleteByID(ctx context.Context, id int) error {
	if s.policy == DeleteVerify {
		if _, err := s.repo.FindByID(ctx, id); err != nil {
			return err
		}
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int("credential_id", id).Msg("credential deleted")
	return nil
}

func (s *CredentialService) enrich(ctx context.Context, c domain.Credential) (*ports.CredentialDetail, error) {
	detail := &ports.CredentialDetail{Credential: c}
	if c.UserID == 0 {
		return detail, nil
	}

	user, err := s.users.FindByID(ctx, c.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return detail, nil
		}
		return nil, err
	}
	detail.User = user
	return detail, nil
}
