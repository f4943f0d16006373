package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"makecents/internal/model"
	"makecents/internal/service"
)

// UserHandler serves the caller's profile.
type UserHandler struct {
	users      service.UserService
	categories service.CategoryService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(users service.UserService, categories service.CategoryService) *UserHandler {
	return &UserHandler{users: users, categories: categories}
}

// ProfileResponse is the caller's account with its categories.
type ProfileResponse struct {
	User       *model.User `json:"user"`
	Categories []string    `json:"categories"`
}

// GetProfile godoc
// @Summary Get the logged in user
// @Tags users
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profile [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID := currentUserID(c)

	var resp ProfileResponse
	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() error {
		user, err := h.users.GetUser(ctx, userID)
		resp.User = user
		return err
	})
	g.Go(func() error {
		labels, err := h.categories.ListVisible(ctx, userID)
		resp.Categories = labels
		return err
	})
	if err := g.Wait(); err != nil {
		return failure(err)
	}

	if resp.Categories == nil {
		resp.Categories = []string{}
	}
	return c.JSON(http.StatusOK, resp)
}
