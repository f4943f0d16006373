package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"makecents/internal/auth"
	"makecents/internal/model"
	"makecents/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, username, password string) (*model.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (auth.Session, *model.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(1) == nil {
		return args.Get(0).(auth.Session), nil, args.Error(2)
	}
	return args.Get(0).(auth.Session), args.Get(1).(*model.User), args.Error(2)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) ListVisible(ctx context.Context, userID uint) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCategoryService) Create(ctx context.Context, userID uint, label string) (uint, error) {
	args := m.Called(ctx, userID, label)
	return args.Get(0).(uint), args.Error(1)
}

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) ListActive(ctx context.Context, userID uint) ([]model.Expense, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Expense), args.Error(1)
}

func (m *MockLedgerService) ListActiveForCurrentMonth(ctx context.Context, userID uint) ([]model.Expense, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Expense), args.Error(1)
}

func (m *MockLedgerService) GetOne(ctx context.Context, userID, expenseID uint) (*model.Expense, error) {
	args := m.Called(ctx, userID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Expense), args.Error(1)
}

func (m *MockLedgerService) Create(ctx context.Context, userID uint, in service.ExpenseInput) (uint, error) {
	args := m.Called(ctx, userID, in)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockLedgerService) Update(ctx context.Context, userID, expenseID uint, in service.ExpenseInput) error {
	args := m.Called(ctx, userID, expenseID, in)
	return args.Error(0)
}

func (m *MockLedgerService) SoftDelete(ctx context.Context, userID, expenseID uint) error {
	args := m.Called(ctx, userID, expenseID)
	return args.Error(0)
}

type MockSummaryService struct {
	mock.Mock
}

func (m *MockSummaryService) AggregateCurrentMonth(ctx context.Context, userID uint) (*model.Summary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Summary), args.Error(1)
}

func (m *MockSummaryService) Dashboard(ctx context.Context, userID uint) (*service.Dashboard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Dashboard), args.Error(1)
}
