// Package storagetest opens throwaway sqlite-backed stores for tests and
// seeds the catalog rows the creator stages look up.
package storagetest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/clnass/creator-service/internal/storage/postgres"
	"github.com/clnass/creator-service/internal/types/product"
)

const (
	MainCategoryName = "크리에이티브"
	SubCategoryName  = "데이터/개발"
	DifficultyName   = "초급자"
)

// Open returns a migrated store over a private in-memory database. The pool
// holds one connection, so code running inside a transaction must only use
// the transaction handle.
func Open(tb testing.TB) *postgres.Postgres {
	tb.Helper()

	dsn := fmt.Sprintf("file:memdb_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("sqlite handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	store := postgres.New(db)
	if err := store.CreateTables(); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	return store
}

// Catalog holds the ids SeedCatalog created.
type Catalog struct {
	MainCategoryID uint
	SubCategoryID  uint
	DifficultyID   uint
}

func SeedCatalog(tb testing.TB, db *gorm.DB) Catalog {
	tb.Helper()

	main := &product.MainCategory{ID: 1, Name: MainCategoryName}
	if err := db.Create(main).Error; err != nil {
		tb.Fatalf("seed main category: %v", err)
	}
	sub := &product.SubCategory{ID: 11, MainCategoryID: &main.ID, Name: SubCategoryName}
	if err := db.Create(sub).Error; err != nil {
		tb.Fatalf("seed sub category: %v", err)
	}
	diff := &product.Difficulty{ID: 1, Name: DifficultyName}
	if err := db.Create(diff).Error; err != nil {
		tb.Fatalf("seed difficulty: %v", err)
	}
	return Catalog{MainCategoryID: main.ID, SubCategoryID: sub.ID, DifficultyID: diff.ID}
}
