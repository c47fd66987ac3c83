package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mypham-next/internal/config"
	"github.com/mypham-next/internal/constants"
	"github.com/mypham-next/internal/models"
	"github.com/mypham-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupUserAuthServiceTest(t *testing.T) (*UserAuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:user_auth_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.UserJWT.SecretKey = "test-secret-key"
	cfg.UserJWT.ExpireHours = 24
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{
		MinLength:     8,
		RequireNumber: true,
	}

	svc := NewUserAuthService(cfg, repository.NewUserRepository(db), repository.NewProductRepository(db))
	return svc, db
}

func createWishlistProduct(t *testing.T, db *gorm.DB, slug string, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		Slug:     slug,
		Title:    "Sản phẩm " + slug,
		Category: "cham-soc-da",
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(100000)),
		IsActive: active,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestRegisterNormalizesEmailAndIssuesToken(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	user, token, expiresAt, err := svc.Register("  Lan.Anh@Example.COM ", "matkhau123", "", "oily")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "lan.anh@example.com" {
		t.Fatalf("email should be normalized, got %q", user.Email)
	}
	if user.Name != "lan.anh" {
		t.Fatalf("name should fall back to email local part, got %q", user.Name)
	}
	if user.Role != constants.UserRoleUser || user.Status != constants.UserStatusActive || user.Locale != constants.LocaleViVN {
		t.Fatalf("register defaults mismatch: %+v", user)
	}
	if user.LastLoginAt == nil {
		t.Fatalf("register should record last login time")
	}
	if expiresAt.Before(time.Now()) {
		t.Fatalf("token should expire in the future, got %v", expiresAt)
	}

	claims, err := svc.ParseUserJWT(token)
	if err != nil {
		t.Fatalf("parse issued token failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestRegisterRejectsDuplicateAndWeakPassword(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	if _, _, _, err := svc.Register("lan@example.com", "matkhau123", "Lan", ""); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, _, err := svc.Register("LAN@example.com", "matkhau123", "Lan", ""); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("duplicate email want ErrEmailExists got %v", err)
	}
	if _, _, _, err := svc.Register("mai@example.com", "ngan", "", ""); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("short password want ErrWeakPassword got %v", err)
	}
	if _, _, _, err := svc.Register("mai@example.com", "khongcoso", "", ""); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("password without digit want ErrWeakPassword got %v", err)
	}
	if _, _, _, err := svc.Register("khong-phai-email", "matkhau123", "", ""); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("bad email want ErrInvalidEmail got %v", err)
	}
}

func TestLoginValidatesCredentialsAndStatus(t *testing.T) {
	svc, db := setupUserAuthServiceTest(t)

	user, _, _, err := svc.Register("lan@example.com", "matkhau123", "Lan", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, _, err := svc.Login("lan@example.com", "saimatkhau1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password want ErrInvalidCredentials got %v", err)
	}
	if _, _, _, err := svc.Login("chuaco@example.com", "matkhau123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email want ErrInvalidCredentials got %v", err)
	}

	if _, _, _, err := svc.Login("LAN@example.com", "matkhau123"); err != nil {
		t.Fatalf("login with mixed-case email failed: %v", err)
	}

	if err := db.Model(&models.User{}).Where("id = ?", user.ID).Update("status", constants.UserStatusDisabled).Error; err != nil {
		t.Fatalf("disable user failed: %v", err)
	}
	if _, _, _, err := svc.Login("lan@example.com", "matkhau123"); !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("disabled user want ErrUserDisabled got %v", err)
	}
}

func TestChangePasswordBumpsTokenVersion(t *testing.T) {
	svc, db := setupUserAuthServiceTest(t)

	user, _, _, err := svc.Register("lan@example.com", "matkhau123", "Lan", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.ChangePassword(user.ID, "saimatkhau1", "matkhaumoi1"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("wrong old password want ErrInvalidPassword got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "matkhau123", "yeu"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("weak new password want ErrWeakPassword got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "matkhau123", "matkhaumoi1"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	var stored models.User
	if err := db.First(&stored, user.ID).Error; err != nil {
		t.Fatalf("load user failed: %v", err)
	}
	if stored.TokenVersion != user.TokenVersion+1 {
		t.Fatalf("token version should bump, want %d got %d", user.TokenVersion+1, stored.TokenVersion)
	}
	if stored.TokenInvalidBefore == nil {
		t.Fatalf("token invalid-before should be set")
	}

	if _, _, _, err := svc.Login("lan@example.com", "matkhaumoi1"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}

func TestUpdateProfileRequiresChanges(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t)

	user, _, _, err := svc.Register("lan@example.com", "matkhau123", "Lan", "oily")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.UpdateProfile(user.ID, nil, nil, nil); !errors.Is(err, ErrProfileEmpty) {
		t.Fatalf("no fields want ErrProfileEmpty got %v", err)
	}

	skinType := "dry"
	locale := constants.LocaleEnUS
	updated, err := svc.UpdateProfile(user.ID, nil, &skinType, &locale)
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.SkinType != "dry" || updated.Locale != constants.LocaleEnUS {
		t.Fatalf("profile fields not applied: %+v", updated)
	}
}

func TestWishlistAddRemoveList(t *testing.T) {
	svc, db := setupUserAuthServiceTest(t)

	user, _, _, err := svc.Register("lan@example.com", "matkhau123", "Lan", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	first := createWishlistProduct(t, db, "serum", true)
	second := createWishlistProduct(t, db, "toner", true)
	inactive := createWishlistProduct(t, db, "retired", false)

	if _, err := svc.AddWishlistItem(user.ID, inactive.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("inactive product want ErrProductNotFound got %v", err)
	}
	if _, err := svc.AddWishlistItem(user.ID, second.ID); err != nil {
		t.Fatalf("add second failed: %v", err)
	}
	if _, err := svc.AddWishlistItem(user.ID, first.ID); err != nil {
		t.Fatalf("add first failed: %v", err)
	}
	// 重复收藏保持不变
	after, err := svc.AddWishlistItem(user.ID, second.ID)
	if err != nil {
		t.Fatalf("re-add failed: %v", err)
	}
	if len(after.Wishlist) != 2 {
		t.Fatalf("duplicate add should not grow wishlist, got %v", after.Wishlist)
	}

	products, err := svc.ListWishlistProducts(user.ID)
	if err != nil {
		t.Fatalf("list wishlist failed: %v", err)
	}
	if len(products) != 2 || products[0].ID != second.ID || products[1].ID != first.ID {
		t.Fatalf("wishlist should keep insertion order, got %+v", products)
	}

	if _, err := svc.RemoveWishlistItem(user.ID, second.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	products, err = svc.ListWishlistProducts(user.ID)
	if err != nil {
		t.Fatalf("list after remove failed: %v", err)
	}
	if len(products) != 1 || products[0].ID != first.ID {
		t.Fatalf("wishlist after remove mismatch: %+v", products)
	}
}
