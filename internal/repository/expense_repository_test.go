package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"makecents/internal/model"
)

type ledgerFixture struct {
	repo  ExpenseRepository
	alice uint
	bob   uint
	food  uint
	rent  uint
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	db := newTestDB(t)
	f := &ledgerFixture{repo: NewExpenseRepository(db)}
	f.alice = createUser(t, db, "alice")
	f.bob = createUser(t, db, "bob")
	f.food = createCategory(t, db, f.alice, "Food")
	f.rent = createCategory(t, db, f.alice, "Rent")
	return f
}

func (f *ledgerFixture) add(t *testing.T, userID, categoryID uint, date, name, amount string) uint {
	t.Helper()
	d, err := model.ParseDate(date)
	require.NoError(t, err)
	expense := &model.Expense{
		UserID:     userID,
		CategoryID: categoryID,
		Date:       d,
		Name:       name,
		Amount:     decimal.RequireFromString(amount),
	}
	require.NoError(t, f.repo.Create(context.Background(), expense))
	return expense.ID
}

func ids(expenses []model.Expense) []uint {
	out := make([]uint, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, e.ID)
	}
	return out
}

func TestExpenseRepository_ListActiveNewestFirstWithLabel(t *testing.T) {
	f := newLedgerFixture(t)
	older := f.add(t, f.alice, f.food, "2026-09-30", "Groceries", "40")
	sameDayFirst := f.add(t, f.alice, f.rent, "2026-10-02", "October", "1000")
	sameDaySecond := f.add(t, f.alice, f.food, "2026-10-02", "Lunch", "12.34")
	f.add(t, f.bob, f.food, "2026-10-03", "Dinner", "20")

	expenses, err := f.repo.ListActive(context.Background(), f.alice)

	require.NoError(t, err)
	assert.Equal(t, []uint{sameDaySecond, sameDayFirst, older}, ids(expenses))
	assert.Equal(t, "Food", expenses[0].Category)
	assert.Equal(t, "Rent", expenses[1].Category)
	assert.Equal(t, "2026-10-02", expenses[0].Date.String())
	assert.True(t, decimal.RequireFromString("12.34").Equal(expenses[0].Amount), "amount %s", expenses[0].Amount)
	assert.True(t, decimal.NewFromInt(1000).Equal(expenses[1].Amount), "amount %s", expenses[1].Amount)
}

func TestExpenseRepository_ListActiveBetweenIsHalfOpen(t *testing.T) {
	f := newLedgerFixture(t)
	f.add(t, f.alice, f.food, "2026-09-30", "Before", "1")
	first := f.add(t, f.alice, f.food, "2026-10-01", "First day", "2")
	last := f.add(t, f.alice, f.food, "2026-10-31", "Last day", "3")
	f.add(t, f.alice, f.food, "2026-11-01", "After", "4")
	f.add(t, f.alice, f.food, "2025-10-15", "Last year", "5")

	from, to := model.MonthRange(time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC))
	expenses, err := f.repo.ListActiveBetween(context.Background(), f.alice, from, to)

	require.NoError(t, err)
	assert.Equal(t, []uint{last, first}, ids(expenses))
}

func TestExpenseRepository_SoftDelete(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	kept := f.add(t, f.alice, f.food, "2026-10-01", "Kept", "10.00")
	deleted := f.add(t, f.alice, f.food, "2026-10-02", "Deleted", "5.50")

	require.NoError(t, f.repo.SoftDelete(ctx, deleted))
	require.NoError(t, f.repo.SoftDelete(ctx, deleted))

	active, err := f.repo.ListActive(ctx, f.alice)
	require.NoError(t, err)
	assert.Equal(t, []uint{kept}, ids(active))

	from, to := model.MonthRange(time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC))
	month, err := f.repo.ListActiveBetween(ctx, f.alice, from, to)
	require.NoError(t, err)
	assert.Equal(t, []uint{kept}, ids(month))

	row, err := f.repo.FindByID(ctx, deleted)
	require.NoError(t, err)
	assert.True(t, row.IsDeleted)
	assert.Equal(t, "Food", row.Category)
}

func TestExpenseRepository_Update(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()
	id := f.add(t, f.alice, f.food, "2026-10-01", "Lunch", "12.34")

	require.NoError(t, f.repo.Update(ctx, &model.Expense{
		ID:         id,
		UserID:     f.bob,
		CategoryID: f.rent,
		Date:       model.NewDate(2026, time.October, 5),
		Name:       "October rent",
		Amount:     decimal.RequireFromString("999.99"),
	}))

	row, err := f.repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, f.alice, row.UserID)
	assert.Equal(t, f.rent, row.CategoryID)
	assert.Equal(t, "Rent", row.Category)
	assert.Equal(t, "2026-10-05", row.Date.String())
	assert.Equal(t, "October rent", row.Name)
	assert.True(t, decimal.RequireFromString("999.99").Equal(row.Amount))
	assert.False(t, row.IsDeleted)
}

func TestExpenseRepository_FindByIDMissing(t *testing.T) {
	f := newLedgerFixture(t)

	_, err := f.repo.FindByID(context.Background(), 404)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
