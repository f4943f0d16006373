package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"makecents/internal/model"
	"makecents/internal/service"
)

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// CredentialsRequest is the body of signup and login.
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,max=255"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents a successful signup or login.
type AuthResponse struct {
	Message string      `json:"message"`
	User    *model.User `json:"user"`
}

// Signup godoc
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Credentials"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return invalidFields(err)
	}

	user, err := h.authService.Signup(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return failure(err)
	}

	return c.JSON(http.StatusCreated, AuthResponse{
		Message: "account created",
		User:    user,
	})
}

// Login godoc
// @Summary Log in and receive session cookies
// @Description Sets the userId and loggedIn cookies on success.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return invalidFields(err)
	}

	session, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return failure(err)
	}

	setSessionCookies(c, session)
	return c.JSON(http.StatusOK, AuthResponse{
		Message: "logged in",
		User:    user,
	})
}

// Logout godoc
// @Summary Log out
// @Description Clears the session cookies. No server state is kept.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	clearSessionCookies(c)
	return c.JSON(http.StatusOK, map[string]string{
		"message": "logged out",
	})
}
