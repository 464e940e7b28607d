package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/commerce-system/internal/core/domain"
	"github.com/shoplite/commerce-system/internal/core/ports"
)

type PaymentHandler struct {
	service ports.PaymentService
}

func NewPaymentHandler(service ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

type paymentRequest struct {
	IsPayed bool   `json:"is_payed"`
	Status  string `json:"payment_status" validate:"omitempty,oneof=not_started in_progress completed"`
	OrderID int    `json:"order_id" validate:"required"`
}

func (r paymentRequest) toDomain(id int) domain.Payment {
	status := domain.PaymentStatus(r.Status)
	if status == "" {
		status = domain.PaymentNotStarted
	}
	return domain.Payment{
		ID:      id,
		IsPayed: r.IsPayed,
		Status:  status,
		OrderID: r.OrderID,
	}
}

func (h *PaymentHandler) List(c echo.Context) error {
	payments, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) Get(c echo.Context) error {
	id, err := intParam(c, "paymentId")
	if err != nil {
		return err
	}
	detail, err := h.service.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *PaymentHandler) Create(c echo.Context) error {
	var req paymentRequest
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

func (h *PaymentHandler) Update(c echo.Context) error {
	id, err := intParam(c, "paymentId")
	if err != nil {
		return err
	}

	var req paymentRequest
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

func (h *PaymentHandler) Delete(c echo.Context) error {
	id, err := intParam(c, "paymentId")
	if err != nil {
		return err
	}
	if err := h.service.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, true)
}
