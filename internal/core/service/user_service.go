package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/shoplite/commerce-system/internal/core/domain"
	"github.com/shoplite/commerce-system/internal/core/ports"
)

// UserService composes users with their credential from the local store.
type UserService struct {
	repo        ports.UserRepository
	credentials ports.CredentialRepository
	policy      DeletePolicy
	log         zerolog.Logger
}

func NewUserService(repo ports.UserRepository, credentials ports.CredentialRepository, policy DeletePolicy, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, credentials: credentials, policy: policy, log: log}
}

func (s *UserService) FindAll(ctx context.Context) ([]ports.UserDetail, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]ports.UserDetail, 0, len(users))
	for _, u := range users {
		detail, err := s.enrich(ctx, u)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func (s *UserService) FindByID(ctx context.Context, id int) (*ports.UserDetail, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, *u)
}

// FindByUsername resolves the credential first, then the user it belongs to.
func (s *UserService) FindByUsername(ctx context.Context, username string) (*ports.UserDetail, error) {
	cred, err := s.credentials.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrCredentialNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	u, err := s.repo.FindByID(ctx, cred.UserID)
	if err != nil {
		return nil, err
	}
	return &ports.UserDetail{User: *u, Credential: cred}, nil
}

func (s *UserService) Create(ctx context.Context, u domain.User) (*ports.UserDetail, error) {
	created, err := s.repo.Create(ctx, &u)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("user_id", created.ID).Str("email", created.Email).Msg("user created")
	return s.enrich(ctx, *created)
}

func (s *UserService) Update(ctx context.Context, u domain.User) (*ports.UserDetail, error) {
	updated, err := s.repo.Update(ctx, &u)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, *updated)
}

func (s *UserService) DeleteByID(ctx context.Context, id int) error {
	if s.policy == DeleteVerify {
		if _, err := s.repo.FindByID(ctx, id); err != nil {
			return err
		}
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int("user_id", id).Msg("user deleted")
	return nil
}

func (s *UserService) enrich(ctx context.Context, u domain.User) (*ports.UserDetail, error) {
	detail := &ports.UserDetail{User: u}

	cred, err := s.credentials.FindByUserID(ctx, u.ID)
	if err != nil {
		if errors.Is(err, domain.ErrCredentialNotFound) {
			return detail, nil
		}
		return nil, err
	}
	detail.Credential = cred
	return detail, nil
}
