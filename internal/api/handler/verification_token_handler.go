package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/commerce-system/internal/core/domain"
	"github.com/shoplite/commerce-system/internal/core/ports"
)

// VerificationTokenHandler manages account-verification secrets. The token
// value itself is server-minted; callers only supply the credential link
// and, optionally, an expiry.
type VerificationTokenHandler struct {
	service ports.VerificationTokenService
}

func NewVerificationTokenHandler(service ports.VerificationTokenService) *VerificationTokenHandler {
	return &VerificationTokenHandler{service: service}
}

type verificationTokenRequest struct {
	ExpireDate   time.Time `json:"expire_date"`
	CredentialID int       `json:"credential_id" validate:"required"`
}

func (h *VerificationTokenHandler) List(c echo.Context) error {
	tokens, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tokens)
}

func (h *VerificationTokenHandler) Get(c echo.Context) error {
	id, err := intParam(c, "verificationTokenId")
	if err != nil {
		return err
	}
	detail, err := h.service.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *VerificationTokenHandler) Create(c echo.Context) error {
	var req verificationTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.Create(c.Request().Context(), domain.VerificationToken{
		ExpireDate:   req.ExpireDate,
		CredentialID: req.CredentialID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, detail)
}

func (h *VerificationTokenHandler) Update(c echo.Context) error {
	id, err := intParam(c, "verificationTokenId")
	if err != nil {
		return err
	}

	var req verificationTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.Update(c.Request().Context(), domain.VerificationToken{
		ID:           id,
		ExpireDate:   req.ExpireDate,
		CredentialID: req.CredentialID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *VerificationTokenHandler) Delete(c echo.Context) error {
	id, err := intParam(c, "verificationTokenId")
	if err != nil {
		return err
	}
	if err := h.service.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, true)
}
