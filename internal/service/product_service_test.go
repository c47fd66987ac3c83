package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mypham-next/internal/constants"
	"github.com/mypham-next/internal/models"
	"github.com/mypham-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductServiceTest(t *testing.T) (*ProductService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:product_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewProductService(repository.NewProductRepository(db)), db
}

func sampleCreateInput(slug string) CreateProductInput {
	return CreateProductInput{
		Slug:      slug,
		Title:     "Serum B5 Phục Hồi",
		Category:  "cham-soc-da",
		Brand:     "la-roche-posay",
		SkinTypes: []string{"oily", " dry ", ""},
		Benefits:  []string{"duong-am"},
		Price:     decimal.NewFromInt(250000),
	}
}

func TestProductCreateValidatesInput(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	input := sampleCreateInput("serum-b5")
	input.Slug = "  "
	if _, err := svc.Create(input); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank slug want ErrInvalidInput got %v", err)
	}

	input = sampleCreateInput("serum-b5")
	input.Price = decimal.Zero
	if _, err := svc.Create(input); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("zero price want ErrInvalidInput got %v", err)
	}
}

func TestProductCreateDefaultsAndCleansFields(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	product, err := svc.Create(sampleCreateInput("serum-b5"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !product.IsActive {
		t.Fatalf("product should default to active")
	}
	// 原价为空时回落到售价
	if product.OriginalPrice.String() != "250000" {
		t.Fatalf("original price fallback want 250000 got %s", product.OriginalPrice.String())
	}
	if len(product.SkinTypes) != 2 || product.SkinTypes[0] != "oily" || product.SkinTypes[1] != "dry" {
		t.Fatalf("skin types should drop blanks and trim, got %v", product.SkinTypes)
	}
}

func TestProductCreateRejectsDuplicateSlug(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	if _, err := svc.Create(sampleCreateInput("serum-b5")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(sampleCreateInput("serum-b5")); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("duplicate slug want ErrSlugExists got %v", err)
	}
}

func TestProductUpdateAllowsOwnSlug(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	created, err := svc.Create(sampleCreateInput("serum-b5"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(sampleCreateInput("toner-hoa-hong")); err != nil {
		t.Fatalf("create second failed: %v", err)
	}

	input := sampleCreateInput("serum-b5")
	input.Title = "Serum B5 Phục Hồi Da"
	input.OnSale = true
	updated, err := svc.Update(created.ID, input)
	if err != nil {
		t.Fatalf("update with own slug failed: %v", err)
	}
	if updated.Title != "Serum B5 Phục Hồi Da" || !updated.OnSale {
		t.Fatalf("update did not persist fields: %+v", updated)
	}

	input.Slug = "toner-hoa-hong"
	if _, err := svc.Update(created.ID, input); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("taking another product slug want ErrSlugExists got %v", err)
	}
}

func TestProductUpdateTogglesActive(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	created, err := svc.Create(sampleCreateInput("serum-b5"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	inactive := false
	input := sampleCreateInput("serum-b5")
	input.IsActive = &inactive
	updated, err := svc.Update(created.ID, input)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.IsActive {
		t.Fatalf("product should be inactive after update")
	}

	if _, err := svc.GetPublicBySlug("serum-b5"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("inactive product on public detail want ErrProductNotFound got %v", err)
	}
	if _, err := svc.GetAdminByID(created.ID); err != nil {
		t.Fatalf("admin detail should still see inactive product: %v", err)
	}
}

func TestProductDeleteMissing(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	if err := svc.Delete(9999); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("delete missing want ErrProductNotFound got %v", err)
	}

	created, err := svc.Create(sampleCreateInput("serum-b5"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetAdminByID(created.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("deleted product want ErrProductNotFound got %v", err)
	}
}

func TestNormalizeProductSort(t *testing.T) {
	cases := map[string]string{
		"":                             constants.ProductSortDefault,
		"  Price_ASC  ":                constants.ProductSortPriceAsc,
		constants.ProductSortPriceDesc: constants.ProductSortPriceDesc,
		constants.ProductSortNameAsc:   constants.ProductSortNameAsc,
		"bogus":                        constants.ProductSortDefault,
	}
	for raw, want := range cases {
		if got := normalizeProductSort(raw); got != want {
			t.Fatalf("normalizeProductSort(%q) want %q got %q", raw, want, got)
		}
	}
}
