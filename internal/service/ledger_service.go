package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"makecents/internal/cache"
	apperrors "makecents/internal/errors"
	"makecents/internal/model"
	"makecents/internal/repository"
)

const (
	maxExpenseNameLength = 255
	// DATE column range
	minExpenseYear = 1000
	maxExpenseYear = 9999
)

// maxExpenseAmount is the largest value a DECIMAL(12,2) column holds.
var maxExpenseAmount = decimal.RequireFromString("9999999999.99")

// ExpenseInput carries the mutable fields of an expense.
type ExpenseInput struct {
	Category string
	Date     model.Date
	Name     string
	Amount   decimal.Decimal
}

// Validate checks the input before it reaches the store.
func (in ExpenseInput) Validate() error {
	if strings.TrimSpace(in.Category) == "" {
		return apperrors.NewValidationError("category", "must not be empty")
	}
	if in.Date.IsZero() {
		return apperrors.NewValidationError("date", "must be a calendar date")
	}
	if y := in.Date.Year(); y < minExpenseYear || y > maxExpenseYear {
		return apperrors.NewValidationError("date", fmt.Sprintf("must be between %d-01-01 and %d-12-31", minExpenseYear, maxExpenseYear))
	}
	if !in.Amount.IsPositive() {
		return apperrors.NewValidationError("amount", "must be greater than zero")
	}
	if !in.Amount.Equal(in.Amount.Round(2)) {
		return apperrors.NewValidationError("amount", "must have at most two decimal places")
	}
	if in.Amount.GreaterThan(maxExpenseAmount) {
		return apperrors.NewValidationError("amount", "must be at most "+maxExpenseAmount.StringFixed(2))
	}
	if utf8.RuneCountInString(in.Name) > maxExpenseNameLength {
		return apperrors.NewValidationError("name", fmt.Sprintf("must be at most %d characters", maxExpenseNameLength))
	}
	return nil
}

// LedgerService handles the expense ledger of each user.
// Every item-scoped operation checks that the expense belongs to userID.
type LedgerService interface {
	ListActive(ctx context.Context, userID uint) ([]model.Expense, error)
	ListActiveForCurrentMonth(ctx context.Context, userID uint) ([]model.Expense, error)
	GetOne(ctx context.Context, userID, expenseID uint) (*model.Expense, error)
	Create(ctx context.Context, userID uint, in ExpenseInput) (uint, error)
	Update(ctx context.Context, userID, expenseID uint, in ExpenseInput) error
	SoftDelete(ctx context.Context, userID, expenseID uint) error
}

type ledgerService struct {
	expenseRepo  repository.ExpenseRepository
	categoryRepo repository.CategoryRepository
	cache        *cache.Client
	now          Clock
}

// NewLedgerService creates a new ledger service. A nil clock uses time.Now.
func NewLedgerService(
	expenseRepo repository.ExpenseRepository,
	categoryRepo repository.CategoryRepository,
	cache *cache.Client,
	now Clock,
) LedgerService {
	return &ledgerService{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
		now:          clockOrNow(now),
	}
}

// ListActive returns the user's expenses that are not soft-deleted, newest first.
func (s *ledgerService) ListActive(ctx context.Context, userID uint) ([]model.Expense, error) {
	expenses, err := s.expenseRepo.ListActive(ctx, userID)
	if err != nil {
		return nil, classify(ctx, "list expenses", err)
	}
	return expenses, nil
}

// ListActiveForCurrentMonth is ListActive limited to the calendar month of now.
func (s *ledgerService) ListActiveForCurrentMonth(ctx context.Context, userID uint) ([]model.Expense, error) {
	from, to := model.MonthRange(s.now())
	expenses, err := s.expenseRepo.ListActiveBetween(ctx, userID, from, to)
	if err != nil {
		return nil, classify(ctx, "list expenses for month", err)
	}
	return expenses, nil
}

// GetOne returns an active expense owned by userID.
func (s *ledgerService) GetOne(ctx context.Context, userID, expenseID uint) (*model.Expense, error) {
	expense, err := s.owned(ctx, userID, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.IsDeleted {
		return nil, fmt.Errorf("expense %d: %w", expenseID, apperrors.ErrNotFound)
	}
	return expense, nil
}

// Create records a new expense for userID under an existing category label.
func (s *ledgerService) Create(ctx context.Context, userID uint, in ExpenseInput) (uint, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}

	category, err := s.resolveCategory(ctx, userID, in.Category)
	if err != nil {
		return 0, err
	}

	expense := &model.Expense{
		UserID:     userID,
		CategoryID: category.ID,
		Date:       in.Date,
		Name:       in.Name,
		Amount:     in.Amount,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return 0, classify(ctx, "create expense", err)
	}

	s.invalidateSummary(ctx, userID)
	slog.InfoContext(ctx, "expense created", "user_id", userID, "expense_id", expense.ID)
	return expense.ID, nil
}

// Update overwrites category, date, name and amount of an active expense.
func (s *ledgerService) Update(ctx context.Context, userID, expenseID uint, in ExpenseInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	expense, err := s.GetOne(ctx, userID, expenseID)
	if err != nil {
		return err
	}

	category, err := s.resolveCategory(ctx, userID, in.Category)
	if err != nil {
		return err
	}

	expense.CategoryID = category.ID
	expense.Date = in.Date
	expense.Name = in.Name
	expense.Amount = in.Amount
	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return classify(ctx, "update expense", err)
	}

	s.invalidateSummary(ctx, userID)
	slog.InfoContext(ctx, "expense updated", "user_id", userID, "expense_id", expenseID)
	return nil
}

// SoftDelete flags an expense as deleted. Deleting an already deleted
// expense of the same user succeeds without another write.
func (s *ledgerService) SoftDelete(ctx context.Context, userID, expenseID uint) error {
	expense, err := s.owned(ctx, userID, expenseID)
	if err != nil {
		return err
	}
	if expense.IsDeleted {
		return nil
	}

	if err := s.expenseRepo.SoftDelete(ctx, expenseID); err != nil {
		return classify(ctx, "soft delete expense", err)
	}

	s.invalidateSummary(ctx, userID)
	slog.InfoContext(ctx, "expense deleted", "user_id", userID, "expense_id", expenseID)
	return nil
}

// owned loads an expense, deleted or not, and checks its owner.
func (s *ledgerService) owned(ctx context.Context, userID, expenseID uint) (*model.Expense, error) {
	expense, err := s.expenseRepo.FindByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("expense %d: %w", expenseID, classify(ctx, "find expense", err))
	}
	if expense.UserID != userID {
		slog.WarnContext(ctx, "expense accessed by another user",
			"user_id", userID, "expense_id", expenseID)
		return nil, fmt.Errorf("expense %d: %w", expenseID, apperrors.ErrOwnership)
	}
	return expense, nil
}

func (s *ledgerService) resolveCategory(ctx context.Context, userID uint, label string) (*model.Category, error) {
	label = strings.TrimSpace(label)
	category, err := s.categoryRepo.FindByLabel(ctx, userID, label)
	if err != nil {
		return nil, fmt.Errorf("category %q: %w", label, classify(ctx, "find category", err))
	}
	return category, nil
}

func (s *ledgerService) invalidateSummary(ctx context.Context, userID uint) {
	_ = s.cache.Delete(ctx, summaryCacheKey(userID, s.now()))
}
