package catalog

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	return conn
}

func seededRepository(t *testing.T) *Repository {
	t.Helper()

	repo := NewRepository(openTestDB(t))
	if err := repo.Seed(context.Background()); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	return repo
}
