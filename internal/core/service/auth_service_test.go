package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shoplite/commerce-system/internal/core/domain"
	"github.com/shoplite/commerce-system/internal/core/token"
)

type stubCredentialStore struct {
	creds map[string]*domain.Credential
	err   error
}

func newStubCredentialStore() *stubCredentialStore {
	return &stubCredentialStore{creds: make(map[string]*domain.Credential)}
}

func (s *stubCredentialStore) FindByUsername(_ context.Context, username string) (*domain.Credential, error) {
	if s.err != nil {
		return nil, s.err
	}
	c, ok := s.creds[username]
	if !ok {
		return nil, domain.ErrCredentialNotFound
	}
	clone := *c
	return &clone, nil
}

func (s *stubCredentialStore) add(username, password string, usable bool) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.creds[username] = &domain.Credential{
		ID:                    len(s.creds) + 1,
		Username:              username,
		PasswordHash:          string(hash),
		Role:                  domain.RoleUser,
		Enabled:               usable,
		AccountNonExpired:     true,
		AccountNonLocked:      true,
		CredentialsNonExpired: true,
	}
}

func newTestAuthService(store *stubCredentialStore) *AuthService {
	codec := token.NewCodec("secret", time.Hour)
	return NewAuthService(store, codec, zerolog.Nop())
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	store := newStubCredentialStore()
	store.add("alice", "p1", true)
	svc := newTestAuthService(store)

	signed, err := svc.Authenticate(context.Background(), "alice", "p1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected token, got empty")
	}

	codec := token.NewCodec("secret", time.Hour)
	claims, err := codec.Parse(signed)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("expected subject alice, got %q", claims.Subject)
	}
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	store := newStubCredentialStore()
	store.add("bob", "goodpass", true)
	svc := newTestAuthService(store)

	if _, err := svc.Authenticate(context.Background(), "bob", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_UnknownUserIndistinguishable(t *testing.T) {
	store := newStubCredentialStore()
	store.add("bob", "goodpass", true)
	svc := newTestAuthService(store)

	_, unknownErr := svc.Authenticate(context.Background(), "ghost", "whatever")
	_, wrongErr := svc.Authenticate(context.Background(), "bob", "badpass")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if unknownErr != wrongErr {
		t.Fatalf("unknown-user and wrong-password errors must be identical: %v vs %v", unknownErr, wrongErr)
	}
}

func TestAuthService_Authenticate_AccountFlags(t *testing.T) {
	flags := []func(c *domain.Credential){
		func(c *domain.Credential) { c.Enabled = false },
		func(c *domain.Credential) { c.AccountNonExpired = false },
		func(c *domain.Credential) { c.AccountNonLocked = false },
		func(c *domain.Credential) { c.CredentialsNonExpired = false },
	}

	for i, clear := range flags {
		store := newStubCredentialStore()
		store.add("carol", "p1", true)
		clear(store.creds["carol"])
		svc := newTestAuthService(store)

		if _, err := svc.Authenticate(context.Background(), "carol", "p1"); !errors.Is(err, domain.ErrAccountNotUsable) {
			t.Fatalf("flag %d: expected ErrAccountNotUsable, got %v", i, err)
		}
	}
}

func TestAuthService_Authenticate_StoreFailurePropagates(t *testing.T) {
	store := newStubCredentialStore()
	store.err = domain.ErrRemoteLookup
	svc := newTestAuthService(store)

	if _, err := svc.Authenticate(context.Background(), "alice", "p1"); !errors.Is(err, domain.ErrRemoteLookup) {
		t.Fatalf("expected remote lookup failure to propagate, got %v", err)
	}
}

func TestAuthService_ValidateToken(t *testing.T) {
	store := newStubCredentialStore()
	store.add("alice", "p1", true)
	svc := newTestAuthService(store)

	signed, err := svc.Authenticate(context.Background(), "alice", "p1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	if !svc.ValidateToken(signed) {
		t.Fatalf("freshly issued token must validate")
	}
	if svc.ValidateToken("badtoken") {
		t.Fatalf("garbage token must not validate")
	}

	expired := token.NewCodec("secret", time.Hour)
	raw, err := expired.Issue("alice", time.Now().Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if svc.ValidateToken(raw) {
		t.Fatalf("expired token must not validate")
	}
}

// ValidateToken never touches the credential store; a token issued before an
// account was disabled stays valid until it expires.
func TestAuthService_ValidateToken_IgnoresAccountState(t *testing.T) {
	store := newStubCredentialStore()
	store.add("alice", "p1", true)
	svc := newTestAuthService(store)

	signed, err := svc.Authenticate(context.Background(), "alice", "p1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}

	store.creds["alice"].Enabled = false
	store.err = errors.New("store must not be consulted")

	if !svc.ValidateToken(signed) {
		t.Fatalf("outstanding token must stay valid after account disable")
	}
}
