package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"makecents/internal/model"
)

// ExpenseRepository defines expense persistence operations.
// Reads join the category label into Expense.Category.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *model.Expense) error
	// FindByID returns the row whether or not it is soft-deleted.
	FindByID(ctx context.Context, id uint) (*model.Expense, error)
	// ListActive returns the user's active expenses, newest date first.
	ListActive(ctx context.Context, userID uint) ([]model.Expense, error)
	// ListActiveBetween is ListActive restricted to from <= date < to.
	ListActiveBetween(ctx context.Context, userID uint, from, to time.Time) ([]model.Expense, error)
	// Update overwrites category, date, name and amount.
	Update(ctx context.Context, expense *model.Expense) error
	SoftDelete(ctx context.Context, id uint) error
}

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository.
func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) withCategory(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.Expense{}).
		Select("expenses.*, categories.category AS category").
		Joins("LEFT JOIN categories ON expenses.exp_category = categories.id")
}

// Create inserts a new active expense.
func (r *expenseRepository) Create(ctx context.Context, expense *model.Expense) error {
	expense.IsDeleted = false
	return r.db.WithContext(ctx).Create(expense).Error
}

// FindByID finds an expense by ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uint) (*model.Expense, error) {
	var expense model.Expense
	if err := r.withCategory(ctx).Where("expenses.id = ?", id).First(&expense).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

// ListActive lists the user's expenses that are not soft-deleted.
func (r *expenseRepository) ListActive(ctx context.Context, userID uint) ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.withCategory(ctx).
		Where("expenses.exp_user = ? AND expenses.exp_is_deleted = ?", userID, false).
		Order("expenses.exp_date DESC, expenses.id DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

// ListActiveBetween lists active expenses dated in [from, to).
func (r *expenseRepository) ListActiveBetween(ctx context.Context, userID uint, from, to time.Time) ([]model.Expense, error) {
	var expenses []model.Expense
	err := r.withCategory(ctx).
		Where("expenses.exp_user = ? AND expenses.exp_is_deleted = ?", userID, false).
		Where("expenses.exp_date >= ? AND expenses.exp_date < ?", from.Format(model.DateLayout), to.Format(model.DateLayout)).
		Order("expenses.exp_date DESC, expenses.id DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

// Update writes the mutable fields of an expense. Owner and creation time are never touched.
func (r *expenseRepository) Update(ctx context.Context, expense *model.Expense) error {
	return r.db.WithContext(ctx).Model(&model.Expense{}).
		Where("id = ?", expense.ID).
		Updates(map[string]interface{}{
			"exp_category": expense.CategoryID,
			"exp_date":     expense.Date,
			"exp_name":     expense.Name,
			"exp_amount":   expense.Amount,
		}).Error
}

// SoftDelete flags an expense as deleted. Repeating it is harmless.
func (r *expenseRepository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Expense{}).
		Where("id = ?", id).
		Update("exp_is_deleted", true).Error
}
