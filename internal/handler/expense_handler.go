package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"makecents/internal/errors"
	"makecents/internal/model"
	"makecents/internal/service"
)

// ExpenseHandler exposes the ledger.
type ExpenseHandler struct {
	ledger service.LedgerService
}

// NewExpenseHandler creates a new expense handler.
func NewExpenseHandler(ledger service.LedgerService) *ExpenseHandler {
	return &ExpenseHandler{ledger: ledger}
}

// ExpenseRequest is the body of create and update.
type ExpenseRequest struct {
	Category string `json:"category" validate:"required"`
	Date     string `json:"date" validate:"required" example:"2026-10-16"`
	Name     string `json:"name" validate:"max=255"`
	Amount   string `json:"amount" validate:"required" example:"12.34"`
}

func (r ExpenseRequest) toInput() (service.ExpenseInput, error) {
	date, err := model.ParseDate(r.Date)
	if err != nil {
		return service.ExpenseInput{}, errors.NewValidationError("date", "must be YYYY-MM-DD")
	}
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return service.ExpenseInput{}, errors.NewValidationError("amount", "must be a decimal number")
	}
	return service.ExpenseInput{
		Category: r.Category,
		Date:     date,
		Name:     r.Name,
		Amount:   amount,
	}, nil
}

// CreatedResponse carries the id of a new record.
type CreatedResponse struct {
	ID uint `json:"id"`
}

// ListExpenses godoc
// @Summary List active expenses
// @Description Newest first. period=month restricts to the current calendar month.
// @Tags expenses
// @Produce json
// @Param period query string false "month"
// @Success 200 {array} model.Expense
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /expenses [get]
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	ctx := c.Request().Context()
	userID := currentUserID(c)

	var (
		expenses []model.Expense
		err      error
	)
	switch c.QueryParam("period") {
	case "":
		expenses, err = h.ledger.ListActive(ctx, userID)
	case "month":
		expenses, err = h.ledger.ListActiveForCurrentMonth(ctx, userID)
	default:
		return failure(errors.NewValidationError("period", "must be empty or month"))
	}
	if err != nil {
		return failure(err)
	}
	if expenses == nil {
		expenses = []model.Expense{}
	}
	return c.JSON(http.StatusOK, expenses)
}

// GetExpense godoc
// @Summary Get one expense
// @Tags expenses
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} model.Expense
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c echo.Context) error {
	id, err := expenseID(c)
	if err != nil {
		return failure(err)
	}
	expense, err := h.ledger.GetOne(c.Request().Context(), currentUserID(c), id)
	if err != nil {
		return failure(err)
	}
	return c.JSON(http.StatusOK, expense)
}

// CreateExpense godoc
// @Summary Record an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body ExpenseRequest true "Expense"
// @Success 201 {object} CreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	in, err := bindExpense(c)
	if err != nil {
		return err
	}
	id, err := h.ledger.Create(c.Request().Context(), currentUserID(c), in)
	if err != nil {
		return failure(err)
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// UpdateExpense godoc
// @Summary Replace the fields of an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path int true "Expense ID"
// @Param request body ExpenseRequest true "Expense"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	id, err := expenseID(c)
	if err != nil {
		return failure(err)
	}
	in, err := bindExpense(c)
	if err != nil {
		return err
	}
	if err := h.ledger.Update(c.Request().Context(), currentUserID(c), id, in); err != nil {
		return failure(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "expense updated"})
}

// DeleteExpense godoc
// @Summary Soft delete an expense
// @Description Deleting an already deleted expense succeeds.
// @Tags expenses
// @Param id path int true "Expense ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	id, err := expenseID(c)
	if err != nil {
		return failure(err)
	}
	if err := h.ledger.SoftDelete(c.Request().Context(), currentUserID(c), id); err != nil {
		return failure(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func bindExpense(c echo.Context) (service.ExpenseInput, error) {
	var req ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return service.ExpenseInput{}, invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return service.ExpenseInput{}, invalidFields(err)
	}
	in, err := req.toInput()
	if err != nil {
		return service.ExpenseInput{}, failure(err)
	}
	return in, nil
}

func expenseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("id", "must be a positive integer")
	}
	return uint(id), nil
}
