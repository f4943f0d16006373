package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"makecents/internal/model"
)

// memStore is an in-memory stand-in for the three gorm repositories,
// following the same SQL semantics (joins, ordering, soft delete).
type memStore struct {
	mu         sync.Mutex
	users      []model.User
	categories []model.Category
	links      []model.UserCategory
	expenses   []model.Expense
}

func newMemStore() *memStore {
	return &memStore{}
}

type memUsers struct{ *memStore }
type memCategories struct{ *memStore }
type memExpenses struct{ *memStore }

func (s memUsers) Create(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = uint(len(s.users) + 1)
	user.CreatedAt = time.Now()
	s.users = append(s.users, *user)
	return nil
}

func (s memUsers) FindByID(_ context.Context, id uint) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s memUsers) FindByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s memCategories) CreateForUser(_ context.Context, userID uint, category *model.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	category.ID = uint(len(s.categories) + 1)
	s.categories = append(s.categories, *category)
	s.links = append(s.links, model.UserCategory{
		ID:         uint(len(s.links) + 1),
		UserID:     userID,
		CategoryID: category.ID,
	})
	return nil
}

func (s memCategories) ListByUser(_ context.Context, userID uint) ([]model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Category
	for _, l := range s.links {
		if l.UserID == userID {
			out = append(out, s.categories[l.CategoryID-1])
		}
	}
	return out, nil
}

func (s memCategories) FindByLabel(_ context.Context, userID uint, label string) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.links {
		if c := s.categories[l.CategoryID-1]; l.UserID == userID && c.Label == label {
			return &c, nil
		}
	}
	for _, c := range s.categories {
		if c.Label == label {
			found := c
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s memExpenses) Create(_ context.Context, expense *model.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	expense.ID = uint(len(s.expenses) + 1)
	expense.IsDeleted = false
	expense.CreatedAt = time.Now()
	s.expenses = append(s.expenses, *expense)
	return nil
}

func (s memExpenses) withCategory(e model.Expense) model.Expense {
	if e.CategoryID > 0 && int(e.CategoryID) <= len(s.categories) {
		e.Category = s.categories[e.CategoryID-1].Label
	}
	return e
}

func (s memExpenses) FindByID(_ context.Context, id uint) (*model.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == 0 || int(id) > len(s.expenses) {
		return nil, gorm.ErrRecordNotFound
	}
	e := s.withCategory(s.expenses[id-1])
	return &e, nil
}

func (s memExpenses) list(userID uint, keep func(model.Expense) bool) []model.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Expense{}
	for _, e := range s.expenses {
		if e.UserID == userID && !e.IsDeleted && keep(e) {
			out = append(out, s.withCategory(e))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date.Time) {
			return out[i].Date.After(out[j].Date.Time)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (s memExpenses) ListActive(_ context.Context, userID uint) ([]model.Expense, error) {
	return s.list(userID, func(model.Expense) bool { return true }), nil
}

func (s memExpenses) ListActiveBetween(_ context.Context, userID uint, from, to time.Time) ([]model.Expense, error) {
	lo, hi := from.Format(model.DateLayout), to.Format(model.DateLayout)
	return s.list(userID, func(e model.Expense) bool {
		d := e.Date.String()
		return d >= lo && d < hi
	}), nil
}

func (s memExpenses) Update(_ context.Context, expense *model.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := &s.expenses[expense.ID-1]
	stored.CategoryID = expense.CategoryID
	stored.Date = expense.Date
	stored.Name = expense.Name
	stored.Amount = expense.Amount
	return nil
}

func (s memExpenses) SoftDelete(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id > 0 && int(id) <= len(s.expenses) {
		s.expenses[id-1].IsDeleted = true
	}
	return nil
}
