package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shoplite/commerce-system/internal/core/domain"
)

func TestUserClient_FetchUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/7" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user_id":7,"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com"}`))
	}))
	defer srv.Close()

	frag, err := NewUserClient(srv.URL).FetchUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("FetchUser: %v", err)
	}
	if frag.ID != 7 || frag.FirstName != "Ada" || frag.Email != "ada@example.com" {
		t.Errorf("unexpected fragment: %+v", frag)
	}
}

func TestUserClient_FetchUser_NotFoundIsRemoteLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"user not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewUserClient(srv.URL).FetchUser(context.Background(), 99)
	if !errors.Is(err, domain.ErrRemoteLookup) {
		t.Fatalf("want ErrRemoteLookup, got %v", err)
	}
}

func TestProductClient_FetchProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/3" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"product_id":3,"product_title":"Keyboard","price_unit":49.9,"quantity":12}`))
	}))
	defer srv.Close()

	frag, err := NewProductClient(srv.URL).FetchProduct(context.Background(), 3)
	if err != nil {
		t.Fatalf("FetchProduct: %v", err)
	}
	if frag.Title != "Keyboard" || frag.PriceUnit != 49.9 {
		t.Errorf("unexpected fragment: %+v", frag)
	}
}

func TestOrderClient_FetchOrder_BadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := NewOrderClient(srv.URL).FetchOrder(context.Background(), 1)
	if !errors.Is(err, domain.ErrRemoteLookup) {
		t.Fatalf("want ErrRemoteLookup, got %v", err)
	}
}

func TestOrderClient_FetchOrder_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewOrderClient(srv.URL).FetchOrder(context.Background(), 1)
	if !errors.Is(err, domain.ErrRemoteLookup) {
		t.Fatalf("want ErrRemoteLookup, got %v", err)
	}
}

func TestCredentialClient_FindByUsername(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/credentials/username/ada" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"credential_id":1,"username":"ada","password":"$2a$10$hash","role":"ROLE_USER","enabled":true,"account_non_expired":true,"account_non_locked":true,"credentials_non_expired":true,"user_id":7}`))
	}))
	defer srv.Close()

	cred, err := NewCredentialClient(srv.URL).FindByUsername(context.Background(), "ada")
	if err != nil {
		t.Fatalf("FindByUsername: %v", err)
	}
	if cred.Username != "ada" || cred.PasswordHash != "$2a$10$hash" || !cred.Usable() {
		t.Errorf("unexpected credential: %+v", cred)
	}
}

func TestCredentialClient_FindByUsername_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"credential not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewCredentialClient(srv.URL).FindByUsername(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrCredentialNotFound) {
		t.Fatalf("want ErrCredentialNotFound, got %v", err)
	}
}

func TestCredentialClient_FindByUsername_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewCredentialClient(srv.URL).FindByUsername(context.Background(), "ada")
	if !errors.Is(err, domain.ErrRemoteLookup) {
		t.Fatalf("want ErrRemoteLookup, got %v", err)
	}
}
