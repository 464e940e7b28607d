package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shoplite/commerce-system/internal/core/domain"
	"github.com/shoplite/commerce-system/internal/core/ports"
)

// FavouriteHandler exposes the favourite collection. Records are addressed
// by their (user, product) pair; there is no surrogate id in any route.
type FavouriteHandler struct {
	service ports.FavouriteService
}

func NewFavouriteHandler(service ports.FavouriteService) *FavouriteHandler {
	return &FavouriteHandler{service: service}
}

type favouriteRequest struct {
	UserID    int       `json:"user_id" validate:"required"`
	ProductID int       `json:"product_id" validate:"required"`
	LikeDate  time.Time `json:"like_date"`
}

func (h *FavouriteHandler) List(c echo.Context) error {
	favourites, err := h.service.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, favourites)
}

func (h *FavouriteHandler) Get(c echo.Context) error {
	userID, err := intParam(c, "userId")
	if err != nil {
		return err
	}
	productID, err := intParam(c, "productId")
	if err != nil {
		return err
	}
	detail, err := h.service.FindByKey(c.Request().Context(), userID, productID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *FavouriteHandler) Create(c echo.Context) error {
	var req favouriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.Create(c.Request().Context(), domain.Favourite{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		LikeDate:  req.LikeDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, detail)
}

func (h *FavouriteHandler) Update(c echo.Context) error {
	var req favouriteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.Update(c.Request().Context(), domain.Favourite{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		LikeDate:  req.LikeDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *FavouriteHandler) Delete(c echo.Context) error {
	userID, err := intParam(c, "userId")
	if err != nil {
		return err
	}
	productID, err := intParam(c, "productId")
	if err != nil {
		return err
	}
	if err := h.service.DeleteByKey(c.Request().Context(), userID, productID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, true)
}
