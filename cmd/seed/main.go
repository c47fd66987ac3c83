package main

import (
	"fmt"

	"github.com/mypham-next/internal/config"
	"github.com/mypham-next/internal/logger"
	"github.com/mypham-next/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{
			Slug:          "cham-soc-da",
			Name:          "Chăm sóc da",
			Subcategories: models.StringArray([]string{"Sữa rửa mặt", "Toner", "Serum", "Kem dưỡng", "Mặt nạ"}),
			SortOrder:     300,
		},
		{
			Slug:          "trang-diem",
			Name:          "Trang điểm",
			Subcategories: models.StringArray([]string{"Son môi", "Kem nền", "Phấn phủ", "Mascara"}),
			SortOrder:     200,
		},
		{
			Slug:          "cham-soc-co-the",
			Name:          "Chăm sóc cơ thể",
			Subcategories: models.StringArray([]string{"Sữa tắm", "Dưỡng thể", "Khử mùi"}),
			SortOrder:     100,
		},
	}

	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			existing.Name = cat.Name
			existing.Subcategories = cat.Subcategories
			existing.SortOrder = cat.SortOrder
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Updated category: %s", cat.Slug)
			}
		}
	}

	// 添加品牌
	brands := []models.Brand{
		{Slug: "la-roche-posay", Name: "La Roche-Posay", SortOrder: 500},
		{Slug: "the-ordinary", Name: "The Ordinary", SortOrder: 400},
		{Slug: "innisfree", Name: "Innisfree", SortOrder: 300},
		{Slug: "cerave", Name: "CeraVe", SortOrder: 200},
		{Slug: "cocoon", Name: "Cocoon", SortOrder: 100},
	}
	for _, brand := range brands {
		var existing models.Brand
		if err := models.DB.Where("slug = ?", brand.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&brand).Error; err != nil {
				stdLog.Printf("Failed to create brand %s: %v", brand.Slug, err)
			}
		}
	}

	// 添加肤质
	skinTypes := []models.SkinType{
		{Slug: "normal", Name: "Da thường", SortOrder: 500},
		{Slug: "dry", Name: "Da khô", SortOrder: 400},
		{Slug: "oily", Name: "Da dầu", SortOrder: 300},
		{Slug: "combination", Name: "Da hỗn hợp", SortOrder: 200},
		{Slug: "sensitive", Name: "Da nhạy cảm", SortOrder: 100},
	}
	for _, st := range skinTypes {
		var existing models.SkinType
		if err := models.DB.Where("slug = ?", st.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&st).Error; err != nil {
				stdLog.Printf("Failed to create skin type %s: %v", st.Slug, err)
			}
		}
	}

	// 添加功效
	benefits := []models.Benefit{
		{Slug: "duong-am", Name: "Dưỡng ẩm", SortOrder: 500},
		{Slug: "lam-sang-da", Name: "Làm sáng da", SortOrder: 400},
		{Slug: "tri-mun", Name: "Trị mụn", SortOrder: 300},
		{Slug: "chong-lao-hoa", Name: "Chống lão hóa", SortOrder: 200},
		{Slug: "chong-nang", Name: "Chống nắng", SortOrder: 100},
	}
	for _, b := range benefits {
		var existing models.Benefit
		if err := models.DB.Where("slug = ?", b.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&b).Error; err != nil {
				stdLog.Printf("Failed to create benefit %s: %v", b.Slug, err)
			}
		}
	}

	vnd := func(amount int64) models.Money {
		return models.NewMoneyFromDecimal(decimal.NewFromInt(amount))
	}

	// 添加商品
	products := []models.Product{
		{
			Slug:          "sua-rua-mat-cerave-foaming",
			Title:         "Sữa rửa mặt CeraVe Foaming Cleanser 236ml",
			Description:   "Sữa rửa mặt tạo bọt dịu nhẹ cho da dầu và da hỗn hợp, chứa ceramide và hyaluronic acid.",
			Image:         "/uploads/products/cerave-foaming-cleanser.jpg",
			Category:      "cham-soc-da",
			Subcategory:   "Sữa rửa mặt",
			Brand:         "cerave",
			SkinTypes:     models.StringArray([]string{"oily", "combination"}),
			Benefits:      models.StringArray([]string{"duong-am", "tri-mun"}),
			Price:         vnd(285000),
			OriginalPrice: vnd(325000),
			OnSale:        true,
			IsActive:      true,
			SortOrder:     900,
		},
		{
			Slug:          "serum-the-ordinary-niacinamide",
			Title:         "Serum The Ordinary Niacinamide 10% + Zinc 1%",
			Description:   "Tinh chất giảm mụn, kiềm dầu và thu nhỏ lỗ chân lông với niacinamide nồng độ cao.",
			Image:         "/uploads/products/ordinary-niacinamide.jpg",
			Category:      "cham-soc-da",
			Subcategory:   "Serum",
			Brand:         "the-ordinary",
			SkinTypes:     models.StringArray([]string{"oily", "combination", "normal"}),
			Benefits:      models.StringArray([]string{"tri-mun", "lam-sang-da"}),
			Price:         vnd(240000),
			OriginalPrice: vnd(240000),
			IsActive:      true,
			SortOrder:     880,
		},
		{
			Slug:          "kem-chong-nang-la-roche-posay",
			Title:         "Kem chống nắng La Roche-Posay Anthelios UVMune 400 SPF50+",
			Description:   "Kem chống nắng phổ rộng cho da nhạy cảm, kết cấu mỏng nhẹ không gây bít tắc.",
			Image:         "/uploads/products/lrp-anthelios.jpg",
			Category:      "cham-soc-da",
			Subcategory:   "Kem dưỡng",
			Brand:         "la-roche-posay",
			SkinTypes:     models.StringArray([]string{"sensitive", "normal", "dry"}),
			Benefits:      models.StringArray([]string{"chong-nang"}),
			Price:         vnd(420000),
			OriginalPrice: vnd(485000),
			OnSale:        true,
			IsActive:      true,
			SortOrder:     860,
		},
		{
			Slug:          "toner-innisfree-green-tea",
			Title:         "Toner Innisfree Green Tea Seed Skin",
			Description:   "Nước cân bằng chiết xuất trà xanh đảo Jeju, cấp ẩm và làm dịu da.",
			Image:         "/uploads/products/innisfree-green-tea-toner.jpg",
			Category:      "cham-soc-da",
			Subcategory:   "Toner",
			Brand:         "innisfree",
			SkinTypes:     models.StringArray([]string{"dry", "normal"}),
			Benefits:      models.StringArray([]string{"duong-am"}),
			Price:         vnd(310000),
			OriginalPrice: vnd(310000),
			IsActive:      true,
			SortOrder:     840,
		},
		{
			Slug:          "son-duong-cocoon-dau-dua",
			Title:         "Son dưỡng môi Cocoon dầu dừa Bến Tre",
			Description:   "Son dưỡng thuần chay từ dầu dừa ép lạnh, giúp môi mềm mịn và căng bóng.",
			Image:         "/uploads/products/cocoon-lip-balm.jpg",
			Category:      "trang-diem",
			Subcategory:   "Son môi",
			Brand:         "cocoon",
			SkinTypes:     models.StringArray([]string{"normal", "dry", "oily", "combination", "sensitive"}),
			Benefits:      models.StringArray([]string{"duong-am"}),
			Price:         vnd(145000),
			OriginalPrice: vnd(165000),
			OnSale:        true,
			IsActive:      true,
			SortOrder:     820,
		},
		{
			Slug:          "duong-the-cocoon-ca-phe-dak-lak",
			Title:         "Tẩy da chết cơ thể Cocoon cà phê Đắk Lắk",
			Description:   "Hạt cà phê nguyên chất kết hợp bơ ca cao giúp loại bỏ tế bào chết và dưỡng sáng da.",
			Image:         "/uploads/products/cocoon-coffee-scrub.jpg",
			Category:      "cham-soc-co-the",
			Subcategory:   "Dưỡng thể",
			Brand:         "cocoon",
			SkinTypes:     models.StringArray([]string{"normal", "dry"}),
			Benefits:      models.StringArray([]string{"lam-sang-da"}),
			Price:         vnd(175000),
			OriginalPrice: vnd(175000),
			IsActive:      true,
			SortOrder:     800,
		},
		{
			Slug:          "kem-duong-cerave-moisturizing-cream",
			Title:         "Kem dưỡng ẩm CeraVe Moisturizing Cream 340g",
			Description:   "Kem dưỡng phục hồi hàng rào bảo vệ da với 3 loại ceramide thiết yếu, phù hợp da khô.",
			Image:         "/uploads/products/cerave-moisturizing-cream.jpg",
			Category:      "cham-soc-da",
			Subcategory:   "Kem dưỡng",
			Brand:         "cerave",
			SkinTypes:     models.StringArray([]string{"dry", "sensitive"}),
			Benefits:      models.StringArray([]string{"duong-am", "chong-lao-hoa"}),
			Price:         vnd(395000),
			OriginalPrice: vnd(450000),
			OnSale:        true,
			IsActive:      true,
			SortOrder:     780,
		},
		{
			Slug:          "mat-na-innisfree-volcanic",
			Title:         "Mặt nạ đất sét Innisfree Super Volcanic Pore Clay Mask",
			Description:   "Mặt nạ tro núi lửa Jeju hút dầu thừa, làm sạch sâu lỗ chân lông.",
			Image:         "/uploads/products/innisfree-volcanic-mask.jpg",
			Category:      "cham-soc-da",
			Subcategory:   "Mặt nạ",
			Brand:         "innisfree",
			SkinTypes:     models.StringArray([]string{"oily", "combination"}),
			Benefits:      models.StringArray([]string{"tri-mun"}),
			Price:         vnd(265000),
			OriginalPrice: vnd(265000),
			IsActive:      true,
			SortOrder:     760,
		},
	}

	for _, prod := range products {
		var existing models.Product
		if err := models.DB.Where("slug = ?", prod.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Slug, err)
			} else {
				stdLog.Printf("Created product: %s", prod.Slug)
			}
		} else {
			existing.Title = prod.Title
			existing.Description = prod.Description
			existing.Image = prod.Image
			existing.Category = prod.Category
			existing.Subcategory = prod.Subcategory
			existing.Brand = prod.Brand
			existing.SkinTypes = prod.SkinTypes
			existing.Benefits = prod.Benefits
			existing.Price = prod.Price
			existing.OriginalPrice = prod.OriginalPrice
			existing.OnSale = prod.OnSale
			existing.IsActive = prod.IsActive
			existing.SortOrder = prod.SortOrder
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update product %s: %v", prod.Slug, err)
			} else {
				stdLog.Printf("Updated product: %s", prod.Slug)
			}
		}
	}

	fmt.Println("\n✅ Seed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 3 Categories")
	fmt.Println("- 5 Brands")
	fmt.Println("- 5 Skin types")
	fmt.Println("- 5 Benefits")
	fmt.Println("- 8 Products")
}
