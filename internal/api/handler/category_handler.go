package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/commerce-system/internal/core/domain"
	"github.com/shoplite/commerce-system/internal/core/ports"
)

type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

type categoryRequest struct {
	Title            string `json:"category_title" validate:"required"`
	ImageURL         string `json:"image_url"`
	ParentCategoryID int    `json:"parent_category_id"`
}

func (r categoryRequest) toDomain(id int) domain.Category {
	return domain.Category{
		ID:               id,
		Title:            r.Title,
		ImageURL:         r.ImageURL,
		ParentCategoryID: r.ParentCategoryID,
	}
}

func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := intParam(c, "categoryId")
	if err != nil {
		return err
	}
	detail, err := h.service.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
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

func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := intParam(c, "categoryId")
	if err != nil {
		return err
	}

	var req categoryRequest
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

func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := intParam(c, "categoryId")
	if err != nil {
		return err
	}
	if err := h.service.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, true)
}
