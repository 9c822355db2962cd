package testutil

import (
	"testing"

	"tickets-app/internal/domain/content"
	"tickets-app/internal/domain/purchases"
	"tickets-app/internal/domain/staff"
	"tickets-app/internal/domain/tiers"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens an in-memory database with the full schema. The pool is
// pinned to one connection so every query sees the same in-memory store and
// writes serialize the way Postgres row locks would.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&purchases.Purchase{},
		&tiers.TicketTier{},
		&content.Revision{},
		&staff.Staff{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	return db
}
