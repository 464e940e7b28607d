package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/commerce-system/internal/api/metrics"
	"github.com/shoplite/commerce-system/internal/core/domain"
	"github.com/shoplite/commerce-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type authenticateRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authenticateResponse struct {
	Username string `json:"username"`
	Token    string `json:"jwt_token"`
}

// Authenticate checks a username/password pair and mints a bearer token.
//
// @Summary      Authenticate with username and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authenticateRequest  true  "Login credentials"
// @Success      200   {object}  authenticateResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/authenticate [post]
func (h *AuthHandler) Authenticate(c echo.Context) error {
	var req authenticateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues(authResult(err)).Inc()
		return err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authenticateResponse{Username: req.Username, Token: token})
}

// ValidateToken reports whether a previously issued token is still good.
// The answer is a bare JSON boolean; a malformed token is a false, not an
// error.
//
// @Summary      Validate a bearer token
// @Tags         auth
// @Produce      json
// @Param        token  path      string  true  "Token to validate"
// @Success      200    {boolean}  boolean
// @Router       /api/authenticate/jwt/{token} [get]
func (h *AuthHandler) ValidateToken(c echo.Context) error {
	valid := h.authService.ValidateToken(c.Param("token"))
	if valid {
		metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()
	} else {
		metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
	}
	return c.JSON(http.StatusOK, valid)
}

func authResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrAccountNotUsable):
		return "account_not_usable"
	default:
		return "error"
	}
}
