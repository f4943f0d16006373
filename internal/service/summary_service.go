package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"makecents/internal/cache"
	"makecents/internal/model"
)

const (
	summaryCacheTTL = time.Minute
	// recentExpenses is how many expenses the dashboard lists.
	recentExpenses = 5
)

// Dashboard is the landing view of a user.
type Dashboard struct {
	Summary model.Summary   `json:"summary"`
	Recent  []model.Expense `json:"recent"`
}

// SummaryService aggregates a user's spending.
type SummaryService interface {
	AggregateCurrentMonth(ctx context.Context, userID uint) (*model.Summary, error)
	Dashboard(ctx context.Context, userID uint) (*Dashboard, error)
}

type summaryService struct {
	ledger LedgerService
	cache  *cache.Client
	now    Clock
}

// NewSummaryService creates a new summary service. A nil clock uses time.Now.
func NewSummaryService(ledger LedgerService, cache *cache.Client, now Clock) SummaryService {
	return &summaryService{
		ledger: ledger,
		cache:  cache,
		now:    clockOrNow(now),
	}
}

func summaryCacheKey(userID uint, now time.Time) string {
	return fmt.Sprintf("summary:user:%d:%s", userID, now.Format("2006-01"))
}

// AggregateCurrentMonth totals the user's active expenses of the current month.
func (s *summaryService) AggregateCurrentMonth(ctx context.Context, userID uint) (*model.Summary, error) {
	key := summaryCacheKey(userID, s.now())

	var cached model.Summary
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	expenses, err := s.ledger.ListActiveForCurrentMonth(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := model.Aggregate(expenses)
	s.cache.SetJSON(ctx, key, summary, summaryCacheTTL)
	return &summary, nil
}

// Dashboard loads the monthly summary and the most recent expenses concurrently.
func (s *summaryService) Dashboard(ctx context.Context, userID uint) (*Dashboard, error) {
	var (
		summary *model.Summary
		recent  []model.Expense
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = s.AggregateCurrentMonth(gctx, userID)
		return err
	})
	g.Go(func() error {
		expenses, err := s.ledger.ListActive(gctx, userID)
		if err != nil {
			return err
		}
		if len(expenses) > recentExpenses {
			expenses = expenses[:recentExpenses]
		}
		recent = expenses
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if recent == nil {
		recent = []model.Expense{}
	}
	return &Dashboard{Summary: *summary, Recent: recent}, nil
}
