//go:build integration
// +build integration

package repository

import (
	"os"
	"strings"
	"testing"

	"github.com/mypham-next/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgresIntegrationDB 初始化 PostgreSQL 集成测试数据库。
func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("skip postgres integration test: TEST_POSTGRES_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open postgres failed: %v", err)
	}

	cleanupModels := []interface{}{
		&models.OrderItem{},
		&models.Order{},
		&models.Product{},
		&models.Category{},
		&models.Brand{},
		&models.SkinType{},
		&models.Benefit{},
	}
	_ = db.Migrator().DropTable(cleanupModels...)

	if err := db.AutoMigrate(
		&models.Category{},
		&models.Brand{},
		&models.SkinType{},
		&models.Benefit{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("migrate postgres models failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(cleanupModels...)
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestPostgresProductSearchCaseInsensitive(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	repo := NewProductRepository(db)

	product := &models.Product{
		Slug:        "pg-serum-b5",
		Title:       "Serum B5 Phục Hồi Da",
		Description: "Tinh chất phục hồi cho da nhạy cảm",
		Category:    "cham-soc-da",
		SkinTypes:   models.StringArray{"sensitive", "dry"},
		Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(240000)),
		IsActive:    true,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	// postgres 方言走 ILIKE，大小写不敏感
	products, total, err := repo.List(ProductListFilter{Page: 1, PageSize: 10, Search: "serum b5"})
	if err != nil {
		t.Fatalf("search products failed: %v", err)
	}
	if total != 1 || len(products) != 1 || products[0].Slug != "pg-serum-b5" {
		t.Fatalf("case-insensitive search want pg-serum-b5, got total=%d products=%v", total, products)
	}

	products, _, err = repo.List(ProductListFilter{Page: 1, PageSize: 10, SkinTypes: []string{"sensitive"}})
	if err != nil {
		t.Fatalf("skin type filter failed: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("skin type filter want 1 product got %d", len(products))
	}
}
