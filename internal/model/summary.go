package model

import "github.com/shopspring/decimal"

// CategoryTotal is the summed amount of one category label.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// Summary is the spending of one user over the current month.
// ByCategory keeps the order in which categories were first seen.
type Summary struct {
	Total      decimal.Decimal `json:"total"`
	ByCategory []CategoryTotal `json:"by_category"`
}

// Amount returns the subtotal for a category label, zero when absent.
func (s Summary) Amount(category string) decimal.Decimal {
	for _, ct := range s.ByCategory {
		if ct.Category == category {
			return ct.Amount
		}
	}
	return decimal.Zero
}

// Aggregate folds expenses into a Summary. An empty input yields a zero
// total and no categories.
func Aggregate(expenses []Expense) Summary {
	summary := Summary{Total: decimal.Zero, ByCategory: []CategoryTotal{}}
	index := make(map[string]int)

	for _, e := range expenses {
		summary.Total = summary.Total.Add(e.Amount)
		if i, ok := index[e.Category]; ok {
			summary.ByCategory[i].Amount = summary.ByCategory[i].Amount.Add(e.Amount)
			continue
		}
		index[e.Category] = len(summary.ByCategory)
		summary.ByCategory = append(summary.ByCategory, CategoryTotal{Category: e.Category, Amount: e.Amount})
	}

	return summary
}
