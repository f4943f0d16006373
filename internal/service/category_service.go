package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"makecents/internal/cache"
	apperrors "makecents/internal/errors"
	"makecents/internal/model"
	"makecents/internal/repository"
)

const categoryCacheTTL = 5 * time.Minute

// CategoryService manages the categories visible to each user.
type CategoryService interface {
	ListVisible(ctx context.Context, userID uint) ([]string, error)
	// Create always inserts a new category row, even when the label already
	// exists, and links it to the user.
	Create(ctx context.Context, userID uint, label string) (uint, error)
}

type categoryService struct {
	repo  repository.CategoryRepository
	cache *cache.Client
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo repository.CategoryRepository, cache *cache.Client) CategoryService {
	return &categoryService{repo: repo, cache: cache}
}

func categoryCacheKey(userID uint) string {
	return fmt.Sprintf("categories:user:%d", userID)
}

// ListVisible returns the labels linked to the user.
func (s *categoryService) ListVisible(ctx context.Context, userID uint) ([]string, error) {
	var labels []string
	if s.cache.GetJSON(ctx, categoryCacheKey(userID), &labels) {
		return labels, nil
	}

	categories, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, classify(ctx, "list categories", err)
	}

	labels = make([]string, 0, len(categories))
	for _, c := range categories {
		labels = append(labels, c.Label)
	}

	s.cache.SetJSON(ctx, categoryCacheKey(userID), labels, categoryCacheTTL)
	return labels, nil
}

// Create adds a category for the user and returns its id.
func (s *categoryService) Create(ctx context.Context, userID uint, label string) (uint, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return 0, apperrors.NewValidationError("category", "must not be empty")
	}

	category := &model.Category{Label: label}
	if err := s.repo.CreateForUser(ctx, userID, category); err != nil {
		return 0, classify(ctx, "create category", err)
	}

	_ = s.cache.Delete(ctx, categoryCacheKey(userID))
	slog.InfoContext(ctx, "category created", "user_id", userID, "category_id", category.ID)
	return category.ID, nil
}
