package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/commerce-system/internal/core/token"
)

type stubAuthService struct {
	valid bool
}

func (s *stubAuthService) Authenticate(ctx context.Context, username, password string) (string, error) {
	return "", nil
}

func (s *stubAuthService) ValidateToken(raw string) bool {
	return s.valid
}

func TestAuth_ValidTokenForwardsUsername(t *testing.T) {
	e := echo.New()
	codec := token.NewCodec("secret", time.Hour)
	signed, err := codec.Issue("alice", time.Now().UTC())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	req.Header.Set(ForwardedUserHeader, "mallory")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(&stubAuthService{valid: true}, codec, publicPrefixes)
	handler := mw(func(c echo.Context) error {
		called = true
		if got := c.Request().Header.Get(ForwardedUserHeader); got != "alice" {
			t.Fatalf("forwarded user = %q, want alice", got)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_PublicPathSkipsCheck(t *testing.T) {
	e := echo.New()
	codec := token.NewCodec("secret", time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/api/authenticate", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(&stubAuthService{valid: false}, codec, publicPrefixes)
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("public path should reach next")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	codec := token.NewCodec("secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(&stubAuthService{valid: true}, codec, publicPrefixes)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	codec := token.NewCodec("secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(&stubAuthService{valid: true}, codec, publicPrefixes)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_RejectedToken(t *testing.T) {
	e := echo.New()
	codec := token.NewCodec("secret", time.Hour)
	signed, err := codec.Issue("alice", time.Now().UTC())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(&stubAuthService{valid: false}, codec, publicPrefixes)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
