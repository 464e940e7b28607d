package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/commerce-system/internal/core/domain"
	"github.com/shoplite/commerce-system/internal/core/ports"
)

type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

type cartRequest struct {
	UserID int `json:"user_id"`
}

func (h *CartHandler) List(c echo.Context) error {
	carts, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, carts)
}

func (h *CartHandler) Get(c echo.Context) error {
	id, err := intParam(c, "cartId")
	if err != nil {
		return err
	}
	detail, err := h.service.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *CartHandler) Create(c echo.Context) error {
	var req cartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	detail, err := h.service.Create(c.Request().Context(), domain.Cart{UserID: req.UserID})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, detail)
}

func (h *CartHandler) Update(c echo.Context) error {
	id, err := intParam(c, "cartId")
	if err != nil {
		return err
	}

	var req cartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	detail, err := h.service.Update(c.Request().Context(), domain.Cart{ID: id, UserID: req.UserID})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *CartHandler) Delete(c echo.Context) error {
	id, err := intParam(c, "cartId")
	if err != nil {
		return err
	}
	if err := h.service.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, true)
}
