package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"makecents/internal/auth"
	"makecents/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	authenticator *auth.Authenticator,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	expenseHandler *handler.ExpenseHandler,
	categoryHandler *handler.CategoryHandler,
	summaryHandler *handler.SummaryHandler,
) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Secure())

	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)
	api.POST("/logout", authHandler.Logout)

	// Secured routes (require session cookies)
	secured := api.Group("", handler.RequireSession(authenticator))

	secured.GET("/profile", userHandler.GetProfile)
	secured.GET("/dashboard", summaryHandler.GetDashboard)
	secured.GET("/summary", summaryHandler.GetSummary)

	secured.GET("/categories", categoryHandler.ListCategories)
	secured.POST("/categories", categoryHandler.CreateCategory)

	secured.GET("/expenses", expenseHandler.ListExpenses)
	secured.POST("/expenses", expenseHandler.CreateExpense)
	secured.GET("/expenses/:id", expenseHandler.GetExpense)
	secured.PUT("/expenses/:id", expenseHandler.UpdateExpense)
	secured.DELETE("/expenses/:id", expenseHandler.DeleteExpense)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates the request validator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
