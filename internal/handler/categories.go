package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"speaksmart/internal/api"
	"speaksmart/internal/model"
)

// @Summary     List categories
// @Description Le sei categorie fisse, nell'ordine dei menu.
// @Tags        categorie
// @Produce     json
// @Success     200 {object} api.CategoryListResponse
// @Router      /categorie [get]
func CategoriesHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, api.CategoryListResponse{Success: true, Categorie: model.Categories()})
}
