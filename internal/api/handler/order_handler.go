package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/commerce-system/internal/core/domain"
	"github.com/shoplite/commerce-system/internal/core/ports"
)

type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type orderRequest struct {
	OrderDate time.Time `json:"order_date"`
	OrderDesc string    `json:"order_desc"`
	OrderFee  float64   `json:"order_fee" validate:"gte=0"`
	CartID    int       `json:"cart_id" validate:"required"`
}

func (r orderRequest) toDomain(id int) domain.Order {
	return domain.Order{
		ID:        id,
		OrderDate: r.OrderDate,
		OrderDesc: r.OrderDesc,
		OrderFee:  r.OrderFee,
		CartID:    r.CartID,
	}
}

func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c echo.Context) error {
	id, err := intParam(c, "orderId")
	if err != nil {
		return err
	}
	detail, err := h.service.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *OrderHandler) Create(c echo.Context) error {
	var req orderRequest
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

func (h *OrderHandler) Update(c echo.Context) error {
	id, err := intParam(c, "orderId")
	if err != nil {
		return err
	}

	var req orderRequest
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

func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := intParam(c, "orderId")
	if err != nil {
		return err
	}
	if err := h.service.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, true)
}
