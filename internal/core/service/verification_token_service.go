package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shoplite/commerce-system/internal/core/domain"
	"github.com/shoplite/commerce-system/internal/core/ports"
)

const verificationTokenTTL = 24 * time.Hour

// VerificationTokenService composes verification tokens with the credential
// they verify. The token value is minted here; callers only supply the
// credential reference.
type VerificationTokenService struct {
	repo        ports.VerificationTokenRepository
	credentials ports.CredentialRepository
	policy      DeletePolicy
	log         zerolog.Logger
}

func NewVerificationTokenService(
	repo ports.VerificationTokenRepository,
	credentials ports.CredentialRepository,
	policy DeletePolicy,
	log zerolog.Logger,
) *VerificationTokenService {
	return &VerificationTokenService{repo: repo, credentials: credentials, policy: policy, log: log}
}

func (s *VerificationTokenService) FindAll(ctx context.Context) ([]ports.VerificationTokenDetail, error) {
	tokens, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]ports.VerificationTokenDetail, 0, len(tokens))
	for _, vt := range tokens {
		detail, err := s.enrich(ctx, vt)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func (s *VerificationTokenService) FindByID(ctx context.Context, id int) (*ports.VerificationTokenDetail, error) {
	vt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, *vt)
}

func (s *VerificationTokenService) Create(ctx context.Context, vt domain.VerificationToken) (*ports.VerificationTokenDetail, error) {
	vt.Token = uuid.NewString()
	if vt.ExpireDate.IsZero() {
		vt.ExpireDate = time.Now().UTC().Add(verificationTokenTTL)
	}

	created, err := s.repo.Create(ctx, &vt)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int("verification_token_id", created.ID).Int("credential_id", created.CredentialID).Msg("verification token created")
	return s.enrich(ctx, *created)
}

func (s *VerificationTokenService) Update(ctx context.Context, vt domain.VerificationToken) (*ports.VerificationTokenDetail, error) {
	// The token value never changes after minting; carry it over from the
	// stored record.
	existing, err := s.repo.FindByID(ctx, vt.ID)
	if err != nil {
		return nil, err
	}
	vt.Token = existing.Token

	updated, err := s.repo.Update(ctx, &vt)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, *updated)
}

func (s *VerificationTokenService) DeleteByID(ctx context.Context, id int) error {
	if s.policy == DeleteVerify {
		if _, err := s.repo.FindByID(ctx, id); err != nil {
			return err
		}
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int("verification_token_id", id).Msg("verification token deleted")
	return nil
}

func (s *VerificationTokenService) enrich(ctx context.Context, vt domain.VerificationToken) (*ports.VerificationTokenDetail, error) {
	detail := &ports.VerificationTokenDetail{VerificationToken: vt}
	if vt.CredentialID == 0 {
		return detail, nil
	}

	cred, err := s.credentials.FindByID(ctx, vt.CredentialID)
	if err != nil {
		if errors.Is(err, domain.ErrCredentialNotFound) {
			return detail, nil
		}
		return nil, err
	}
	detail.Credential = cred
	return detail, nil
}
