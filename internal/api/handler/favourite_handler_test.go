package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/commerce-system/internal/core/domain"
	"github.com/shoplite/commerce-system/internal/core/ports"
)

type stubFavouriteService struct {
	detail *ports.FavouriteDetail
	err    error

	gotUserID    int
	gotProductID int
}

func (s *stubFavouriteService) FindAll(ctx context.Context) ([]ports.FavouriteDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []ports.FavouriteDetail{*s.detail}, nil
}

func (s *stubFavouriteService) FindByKey(ctx context.Context, userID, productID int) (*ports.FavouriteDetail, error) {
	s.gotUserID, s.gotProductID = userID, productID
	return s.detail, s.err
}

func (s *stubFavouriteService) Create(ctx context.Context, f domain.Favourite) (*ports.FavouriteDetail, error) {
	s.gotUserID, s.gotProductID = f.UserID, f.ProductID
	return s.detail, s.err
}

func (s *stubFavouriteService) Update(ctx context.Context, f domain.Favourite) (*ports.FavouriteDetail, error) {
	s.gotUserID, s.gotProductID = f.UserID, f.ProductID
	return s.detail, s.err
}

func (s *stubFavouriteService) DeleteByKey(ctx context.Context, userID, productID int) error {
	s.gotUserID, s.gotProductID = userID, productID
	return s.err
}

func TestFavouriteHandler_Get_ParsesCompositeKey(t *testing.T) {
	e := echo.New()
	stub := &stubFavouriteService{
		detail: &ports.FavouriteDetail{
			Favourite: domain.Favourite{UserID: 7, ProductID: 3, LikeDate: time.Now().UTC()},
			User:      &domain.UserFragment{ID: 7, FirstName: "Ada"},
			Product:   &domain.ProductFragment{ID: 3, Title: "Keyboard"},
		},
	}
	h := NewFavouriteHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId", "productId")
	c.SetParamValues("7", "3")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if stub.gotUserID != 7 || stub.gotProductID != 3 {
		t.Fatalf("key = (%d,%d), want (7,3)", stub.gotUserID, stub.gotProductID)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["first_name"] != "Ada" {
		t.Fatalf("expected user fragment, got %+v", resp)
	}
	product, ok := resp["product"].(map[string]any)
	if !ok || product["product_title"] != "Keyboard" {
		t.Fatalf("expected product fragment, got %+v", resp)
	}
}

func TestFavouriteHandler_Get_NonNumericKey(t *testing.T) {
	e := echo.New()
	h := NewFavouriteHandler(&stubFavouriteService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId", "productId")
	c.SetParamValues("seven", "3")

	err := h.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("want 400 HTTPError, got %v", err)
	}
}

func TestFavouriteHandler_Get_NotFoundPassesThrough(t *testing.T) {
	e := echo.New()
	h := NewFavouriteHandler(&stubFavouriteService{err: domain.ErrFavouriteNotFound})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("userId", "productId")
	c.SetParamValues("7", "3")

	if err := h.Get(c); !errors.Is(err, domain.ErrFavouriteNotFound) {
		t.Fatalf("want ErrFavouriteNotFound, got %v", err)
	}
}

func TestFavouriteHandler_Create(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubFavouriteService{
		detail: &ports.FavouriteDetail{
			Favourite: domain.Favourite{UserID: 7, ProductID: 3},
		},
	}
	h := NewFavouriteHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"user_id":7,"product_id":3}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if stub.gotUserID != 7 || stub.gotProductID != 3 {
		t.Fatalf("key = (%d,%d), want (7,3)", stub.gotUserID, stub.gotProductID)
	}
}

func TestFavouriteHandler_Create_MissingKey(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewFavouriteHandler(&stubFavouriteService{})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"user_id":7}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("want 400 HTTPError, got %v", err)
	}
}
