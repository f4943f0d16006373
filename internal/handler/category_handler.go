package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"makecents/internal/service"
)

// CategoryHandler exposes the category registry.
type CategoryHandler struct {
	categories service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categories service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// CategoryRequest is the body of category creation.
type CategoryRequest struct {
	Category string `json:"category" validate:"required,max=255"`
}

// CategoriesResponse lists the labels visible to the user.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ListCategories godoc
// @Summary List the caller's categories
// @Tags categories
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	labels, err := h.categories.ListVisible(c.Request().Context(), currentUserID(c))
	if err != nil {
		return failure(err)
	}
	if labels == nil {
		labels = []string{}
	}
	return c.JSON(http.StatusOK, CategoriesResponse{Categories: labels})
}

// CreateCategory godoc
// @Summary Create a category for the caller
// @Tags categories
// @Accept json
// @Produce json
// @Param request body CategoryRequest true "Category"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return invalidFields(err)
	}

	id, err := h.categories.Create(c.Request().Context(), currentUserID(c), req.Category)
	if err != nil {
		return failure(err)
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}
