package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/commerce-system/internal/core/domain"
	"github.com/shoplite/commerce-system/internal/core/ports"
)

// CredentialHandler exposes the credential collection of the user service.
// The username route is what the gateway's authenticator calls.
type CredentialHandler struct {
	service ports.CredentialService
}

func NewCredentialHandler(service ports.CredentialService) *CredentialHandler {
	return &CredentialHandler{service: service}
}

type credentialRequest struct {
	Username              string `json:"username" validate:"required"`
	Password              string `json:"password"`
	Role                  string `json:"role"`
	Enabled               bool   `json:"enabled"`
	AccountNonExpired     bool   `json:"account_non_expired"`
	AccountNonLocked      bool   `json:"account_non_locked"`
	CredentialsNonExpired bool   `json:"credentials_non_expired"`
	UserID                int    `json:"user_id" validate:"required"`
}

func (r credentialRequest) toDomain(id int) domain.Credential {
	return domain.Credential{
		ID:                    id,
		Username:              r.Username,
		Role:                  r.Role,
		Enabled:               r.Enabled,
		AccountNonExpired:     r.AccountNonExpired,
		AccountNonLocked:      r.AccountNonLocked,
		CredentialsNonExpired: r.CredentialsNonExpired,
		UserID:                r.UserID,
	}
}

func (h *CredentialHandler) List(c echo.Context) error {
	creds, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, creds)
}

func (h *CredentialHandler) Get(c echo.Context) error {
	id, err := intParam(c, "credentialId")
	if err != nil {
		return err
	}
	detail, err := h.service.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *CredentialHandler) GetByUsername(c echo.Context) error {
	detail, err := h.service.FindByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *CredentialHandler) Create(c echo.Context) error {
	var req credentialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required")
	}

	detail, err := h.service.Create(c.Request().Context(), req.toDomain(0), req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, detail)
}

func (h *CredentialHandler) Update(c echo.Context) error {
	id, err := intParam(c, "credentialId")
	if err != nil {
		return err
	}

	var req credentialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.Update(c.Request().Context(), req.toDomain(id))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *CredentialHandler) Delete(c echo.Context) error {
	id, err := intParam(c, "credentialId")
	if err != nil {
		return err
	}
	if err := h.service.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, true)
}
