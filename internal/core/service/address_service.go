package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/shoplite/commerce-system/internal/core/domain"
	"github.com/shoplite/commerce-system/internal/core/ports"
)

// AddressService composes addresses with their owning user, read from the
// same service's user store.
type AddressService struct {
	repo   ports.AddressRepository
	users  ports.UserRepository
	policy DeletePolicy
	log    zerolog.Logger
}

func NewAddressService(repo ports.AddressRepository, users ports.UserRepository, policy DeletePolicy, log zerolog.Logger) *AddressService {
	return &AddressService{repo: repo, users: users, policy: policy, log: log}
}

func (s *AddressService) FindAll(ctx context.Context) ([]ports.AddressDetail, error) {
	addresses, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]ports.AddressDetail, 0, len(addresses))
	for _, a := range addresses {
		detail, err := s.enrich(ctx, a)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func (s *AddressService) FindByID(ctx context.Context, id int) (*ports.AddressDetail, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, *a)
}

func (s *AddressService) Create(ctx context.Context, a domain.Address) (*ports.AddressDetail, error) {
	created, err := s.repo.Create(ctx, &a)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("address_id", created.ID).Int("user_id", created.UserID).Msg("address created")
	return s.enrich(ctx, *created)
}

func (s *AddressService) Update(ctx context.Context, a domain.Address) (*ports.AddressDetail, error) {
	updated, err := s.repo.Update(ctx, &a)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, *updated)
}

func (s *AddressService) DeleteByID(ctx context.Context, id int) error {
	if s.policy == DeleteVerify {
		if _, err := s.repo.FindByID(ctx, id); err != nil {
			return err
		}
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int("address_id", id).Msg("address deleted")
	return nil
}

func (s *AddressService) enrich(ctx context.Context, a domain.Address) (*ports.AddressDetail, error) {
	detail := &ports.AddressDetail{Address: a}
	if a.UserID == 0 {
		return detail, nil
	}

	user, err := s.users.FindByID(ctx, a.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return detail, nil
		}
		return nil, err
	}
	detail.User = user
	return detail, nil
}
