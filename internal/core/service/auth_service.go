package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shoplite/commerce-system/internal/core/domain"
	"github.com/shoplite/commerce-system/internal/core/ports"
	"github.com/shoplite/commerce-system/internal/core/token"
)

// AuthService implements password authentication and stateless token checks.
// The same implementation runs in the gateway (credential store reached over
// the wire) and in the user service (credential store reached via Mongo).
type AuthService struct {
	store ports.CredentialLookup
	codec *token.Codec
	log   zerolog.Logger
}

func NewAuthService(store ports.CredentialLookup, codec *token.Codec, log zerolog.Logger) *AuthService {
	return &AuthService{store: store, codec: codec, log: log}
}

// Authenticate validates the pair against the credential store and mints a
// token on success. An unknown username and a wrong password both yield
// ErrInvalidCredentials so callers cannot enumerate usernames. Accounts with
// any state flag cleared fail with the distinct ErrAccountNotUsable.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	cred, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrCredentialNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	if !cred.Usable() {
		s.log.Warn().Str("username", username).Msg("authentication refused for unusable account")
		return "", domain.ErrAccountNotUsable
	}

	signed, err := s.codec.Issue(cred.Username, time.Now().UTC())
	if err != nil {
		return "", err
	}

	s.log.Info().Str("username", username).Msg("token issued")
	return signed, nil
}

// ValidateToken reports whether the token is well-formed, signed with the
// shared secret and unexpired. The credential store is deliberately not
// consulted: a disabled account's outstanding token stays valid until expiry.
func (s *AuthService) ValidateToken(raw string) bool {
	claims, err := s.codec.Parse(raw)
	if err != nil {
		return false
	}
	return !claims.Expired(time.Now().UTC())
}
