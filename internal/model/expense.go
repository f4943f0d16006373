package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spending record owned by one user.
type Expense struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	UserID     uint            `json:"user_id" gorm:"column:exp_user;not null;index"`
	CategoryID uint            `json:"category_id" gorm:"column:exp_category;not null"`
	Date       Date            `json:"date" gorm:"column:exp_date;type:date;not null"`
	Name       string          `json:"name" gorm:"column:exp_name;size:255"`
	Amount     decimal.Decimal `json:"amount" gorm:"column:exp_amount;type:decimal(12,2);not null"`
	IsDeleted  bool            `json:"-" gorm:"column:exp_is_deleted;not null;default:false"`
	CreatedAt  time.Time       `json:"created_at"`

	// Category is filled from the joined categories row on reads only.
	Category string `json:"category" gorm:"->;column:category;-:migration"`
}

// TableName pins the table name.
func (Expense) TableName() string {
	return "expenses"
}

// MonthRange returns the first day of the calendar month containing now and
// the first day of the following month, in now's location.
func MonthRange(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, 0)
}

// InMonth reports whether date falls in the calendar month containing now.
func InMonth(date Date, now time.Time) bool {
	return date.Year() == now.Year() && date.Month() == now.Month()
}
