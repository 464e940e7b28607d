package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/commerce-system/internal/core/domain"
	"github.com/shoplite/commerce-system/internal/core/ports"
)

type AddressHandler struct {
	service ports.AddressService
}

func NewAddressHandler(service ports.AddressService) *AddressHandler {
	return &AddressHandler{service: service}
}

type addressRequest struct {
	FullAddress string `json:"full_address" validate:"required"`
	PostalCode  string `json:"postal_code" validate:"required"`
	City        string `json:"city" validate:"required"`
	UserID      int    `json:"user_id" validate:"required"`
}

func (r addressRequest) toDomain(id int) domain.Address {
	return domain.Address{
		ID:          id,
		FullAddress: r.FullAddress,
		PostalCode:  r.PostalCode,
		City:        r.City,
		UserID:      r.UserID,
	}
}

func (h *AddressHandler) List(c echo.Context) error {
	addresses, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, addresses)
}

func (h *AddressHandler) Get(c echo.Context) error {
	id, err := intParam(c, "addressId")
	if err != nil {
		return err
	}
	detail, err := h.service.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *AddressHandler) Create(c echo.Context) error {
	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.Create(c.Request().Context(), req.toDomain(0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, detail)
}

func (h *AddressHandler) Update(c echo.Context) error {
	id, err := intParam(c, "addressId")
	if err != nil {
		return err
	}

	var req addressRequest
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

func (h *AddressHandler) Delete(c echo.Context) error {
	id, err := intParam(c, "addressId")
	if err != nil {
		return err
	}
	if err := h.service.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, true)
}
