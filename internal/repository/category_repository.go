package repository

import (
	"context"

	"gorm.io/gorm"

	"makecents/internal/model"
)

// CategoryRepository defines category and category visibility persistence.
type CategoryRepository interface {
	// CreateForUser inserts a new category row and links it to the user.
	CreateForUser(ctx context.Context, userID uint, category *model.Category) error
	// ListByUser returns the categories linked to the user.
	ListByUser(ctx context.Context, userID uint) ([]model.Category, error)
	// FindByLabel resolves a label to one category row, preferring rows
	// linked to the user and falling back to any row with that label.
	FindByLabel(ctx context.Context, userID uint, label string) (*model.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) CreateForUser(ctx context.Context, userID uint, category *model.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(category).Error; err != nil {
			return err
		}
		link := &model.UserCategory{UserID: userID, CategoryID: category.ID}
		return tx.Create(link).Error
	})
}

func (r *categoryRepository) ListByUser(ctx context.Context, userID uint) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN users_categories ON categories.id = users_categories.uc_category").
		Where("users_categories.uc_user = ?", userID).
		Order("categories.id").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) FindByLabel(ctx context.Context, userID uint, label string) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN users_categories ON categories.id = users_categories.uc_category").
		Where("users_categories.uc_user = ? AND categories.category = ?", userID, label).
		Order("categories.id").
		First(&category).Error
	if err == nil {
		return &category, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Where("category = ?", label).Order("id").First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}
