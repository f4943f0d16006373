package repository

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"makecents/internal/model"
)

// newTestDB opens a private in-memory database with the ledger tables.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Category{}, &model.UserCategory{}, &model.Expense{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) uint {
	t.Helper()
	user := &model.User{Username: username, Password: "digest"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user.ID
}

func createCategory(t *testing.T, db *gorm.DB, userID uint, label string) uint {
	t.Helper()
	category := &model.Category{Label: label}
	require.NoError(t, NewCategoryRepository(db).CreateForUser(context.Background(), userID, category))
	return category.ID
}
