package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/commerce-system/internal/core/domain"
	"github.com/shoplite/commerce-system/internal/core/ports"
)

type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

type productRequest struct {
	Title      string  `json:"product_title" validate:"required"`
	ImageURL   string  `json:"image_url"`
	SKU        string  `json:"sku" validate:"required"`
	PriceUnit  float64 `json:"price_unit" validate:"gte=0"`
	Quantity   int     `json:"quantity" validate:"gte=0"`
	CategoryID int     `json:"category_id"`
}

func (r productRequest) toDomain(id int) domain.Product {
	return domain.Product{
		ID:         id,
		Title:      r.Title,
		ImageURL:   r.ImageURL,
		SKU:        r.SKU,
		PriceUnit:  r.PriceUnit,
		Quantity:   r.Quantity,
		CategoryID: r.CategoryID,
	}
}

func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c echo.Context) error {
	id, err := intParam(c, "productId")
	if err != nil {
		return err
	}
	detail, err := h.service.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
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

func (h *ProductHandler) Update(c echo.Context) error {
	id, err := intParam(c, "productId")
	if err != nil {
		return err
	}

	var req productRequest
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

func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := intParam(c, "productId")
	if err != nil {
		return err
	}
	if err := h.service.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, true)
}
