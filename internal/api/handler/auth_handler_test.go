package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/commerce-system/internal/core/domain"
)

type stubAuthService struct {
	token string
	err   error
	valid bool

	gotUsername string
	gotPassword string
	gotToken    string
}

func (s *stubAuthService) Authenticate(ctx context.Context, username, password string) (string, error) {
	s.gotUsername = username
	s.gotPassword = password
	if s.err != nil {
		return "", s.err
	}
	return s.token, nil
}

func (s *stubAuthService) ValidateToken(raw string) bool {
	s.gotToken = raw
	return s.valid
}

func newAuthContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/authenticate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Authenticate_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{token: "token123"}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(e, `{"username":"alice","password":"secret"}`)
	if err := h.Authenticate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.gotUsername != "alice" || stub.gotPassword != "secret" {
		t.Fatalf("unexpected args: %s %s", stub.gotUsername, stub.gotPassword)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["jwt_token"] != "token123" || resp["username"] != "alice" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Authenticate_InvalidCredentials(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials})

	c, _ := newAuthContext(e, `{"username":"alice","password":"bad"}`)
	err := h.Authenticate(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Authenticate_AccountNotUsable(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewAuthHandler(&stubAuthService{err: domain.ErrAccountNotUsable})

	c, _ := newAuthContext(e, `{"username":"alice","password":"secret"}`)
	err := h.Authenticate(c)
	if !errors.Is(err, domain.ErrAccountNotUsable) {
		t.Fatalf("want ErrAccountNotUsable, got %v", err)
	}
}

func TestAuthHandler_Authenticate_MissingFields(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewAuthHandler(&stubAuthService{token: "never"})

	c, _ := newAuthContext(e, `{"username":"alice"}`)
	err := h.Authenticate(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("want 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Authenticate_InvalidPayload(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewAuthHandler(&stubAuthService{token: "never"})

	c, _ := newAuthContext(e, "not-json")
	err := h.Authenticate(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("want 400 HTTPError, got %v", err)
	}
}

func TestAuthHandler_ValidateToken(t *testing.T) {
	for _, tc := range []struct {
		name  string
		valid bool
		want  string
	}{
		{"valid", true, "true"},
		{"invalid", false, "false"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			stub := &stubAuthService{valid: tc.valid}
			h := NewAuthHandler(stub)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("token")
			c.SetParamValues("sometoken")

			if err := h.ValidateToken(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if got := strings.TrimSpace(rec.Body.String()); got != tc.want {
				t.Fatalf("body = %q, want %q", got, tc.want)
			}
			if stub.gotToken != "sometoken" {
				t.Fatalf("token not passed through, got %q", stub.gotToken)
			}
		})
	}
}
