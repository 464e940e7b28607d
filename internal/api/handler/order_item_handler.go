package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/commerce-system/internal/core/domain"
	"github.com/shoplite/commerce-system/internal/core/ports"
)

// OrderItemHandler exposes the shipping service's order-item collection,
// addressed by the (order, product) pair.
type OrderItemHandler struct {
	service ports.OrderItemService
}

func NewOrderItemHandler(service ports.OrderItemService) *OrderItemHandler {
	return &OrderItemHandler{service: service}
}

type orderItemRequest struct {
	OrderID         int `json:"order_id" validate:"required"`
	ProductID       int `json:"product_id" validate:"required"`
	OrderedQuantity int `json:"ordered_quantity" validate:"gt=0"`
}

func (r orderItemRequest) toDomain() domain.OrderItem {
	return domain.OrderItem{
		OrderID:         r.OrderID,
		ProductID:       r.ProductID,
		OrderedQuantity: r.OrderedQuantity,
	}
}

func (h *OrderItemHandler) List(c echo.Context) error {
	items, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (h *OrderItemHandler) Get(c echo.Context) error {
	orderID, err := intParam(c, "orderId")
	if err != nil {
		return err
	}
	productID, err := intParam(c, "productId")
	if err != nil {
		return err
	}
	detail, err := h.service.FindByKey(c.Request().Context(), orderID, productID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *OrderItemHandler) Create(c echo.Context) error {
	var req orderItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, detail)
}

func (h *OrderItemHandler) Update(c echo.Context) error {
	var req orderItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.Update(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *OrderItemHandler) Delete(c echo.Context) error {
	orderID, err := intParam(c, "orderId")
	if err != nil {
		return err
	}
	productID, err := intParam(c, "productId")
	if err != nil {
		return err
	}
	if err := h.service.DeleteByKey(c.Request().Context(), orderID, productID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, true)
}
