package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/mimistyle/backend/internal/config"
	"github.com/mimistyle/backend/internal/db"
	"github.com/mimistyle/backend/internal/model"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var categoryNames = []string{
	"Đồ chơi", "Quần áo", "Giày dép", "Xe đẩy",
	"Bình sữa", "Tã bỉm", "Sữa bột", "Nôi cũi",
	"Ghế ăn dặm", "Đồ dùng tắm",
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	conn, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := conn.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.ProductImage{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	return conn.Transaction(func(tx *gorm.DB) error {
		admin, err := seedAdmin(tx)
		if err != nil {
			return err
		}
		if err := seedCategories(tx); err != nil {
			return err
		}
		return seedProducts(tx, admin)
	})
}

func seedAdmin(tx *gorm.DB) (*model.User, error) {
	var count int64
	if err := tx.Model(&model.User{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		var u model.User
		if err := tx.Order("id ASC").First(&u).Error; err != nil {
			return nil, err
		}
		log.Printf("users already exist; keeping %q as seed seller", u.Username)
		return &u, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("mimi@2024"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	admin := &model.User{
		Username: "admin",
		FullName: "Admin User",
		Email:    "admin@mimi.com",
		Phone:    "0900000000",
		Password: string(hash),
		Role:     model.RoleAdmin,
	}
	if err := tx.Create(admin).Error; err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	log.Printf("created default admin user")
	return admin, nil
}

func seedCategories(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&model.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, name := range categoryNames {
		if err := tx.Create(&model.Category{Name: name}).Error; err != nil {
			return fmt.Errorf("create category %q: %w", name, err)
		}
	}
	log.Printf("created %d categories", len(categoryNames))
	return nil
}

type seedProduct struct {
	name        string
	description string
	buyPrice    int64
	rentPrice   int64
	condition   int
	category    string
	address     string
	featured    bool
	isNew       bool
	image       string
}

func seedProducts(tx *gorm.DB, seller *model.User) error {
	var count int64
	if err := tx.Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	samples := []seedProduct{
		{
			name:        "Máy tiệt trùng bình sữa UV",
			description: "Máy tiệt trùng hiện đại với công nghệ UV, an toàn cho bé",
			buyPrice:    1500000, rentPrice: 150000, condition: 95,
			category: "Đồ chơi", address: "123 Nguyễn Văn Cừ, Q.5, TP.HCM",
			featured: true, isNew: true,
			image: "may-tiet-trung-binh-sua-uv-1.jpg",
		},
		{
			name:        "Máy hút sữa điện tử thông minh",
			description: "Máy hút sữa với nhiều chế độ massage tự nhiên",
			buyPrice:    2000000, rentPrice: 200000, condition: 98,
			category: "Bình sữa", address: "456 Lê Văn Sỹ, Q.3, TP.HCM",
			featured: true,
			image:    "may-hut-sua-dien-doi-1.jpeg",
		},
		{
			name:        "Nôi em bé thông minh",
			description: "Nôi có chức năng ru tự động và phát nhạc",
			buyPrice:    5000000, rentPrice: 500000, condition: 92,
			category: "Nôi cũi", address: "789 Võ Văn Tần, Q.3, TP.HCM",
			featured: true,
			image:    "noi-em-be-thong-minh-1.png",
		},
		{
			name:        "Xe đẩy em bé cao cấp",
			description: "Xe đẩy nhẹ, gấp gọn, phù hợp cho trẻ từ 0-3 tuổi",
			buyPrice:    3000000, rentPrice: 300000, condition: 90,
			category: "Xe đẩy", address: "321 Điện Biên Phủ, Q.Bình Thạnh, TP.HCM",
			isNew: true,
			image: "xe-day-em-be-cao-cap-1.jpg",
		},
		{
			name:        "Ghế ăn dặm đa năng",
			description: "Ghế ăn dặm điều chỉnh được độ cao, kèm khay ăn",
			buyPrice:    1200000, rentPrice: 120000, condition: 88,
			category: "Ghế ăn dặm", address: "654 Cách Mạng Tháng 8, Q.10, TP.HCM",
			isNew: true,
			image: "ghe-an-dam-da-nang-1.jpg",
		},
	}

	for _, sp := range samples {
		var cat model.Category
		if err := tx.Where("name = ?", sp.category).First(&cat).Error; err != nil {
			return fmt.Errorf("find category %q: %w", sp.category, err)
		}
		p := &model.Product{
			Name:                sp.name,
			Description:         sp.description,
			ConditionPercentage: sp.condition,
			TradeType:           model.TradeTypeBoth,
			BuyPrice:            decimal.NewFromInt(sp.buyPrice),
			RentPrice:           decimal.NewFromInt(sp.rentPrice),
			RentUnit:            model.RentUnitMonth,
			Status:              model.ProductStatusActive,
			AddressContact:      sp.address,
			Featured:            sp.featured,
			IsNew:               sp.isNew,
			SellerID:            seller.ID,
			CategoryID:          cat.ID,
			Images: []model.ProductImage{
				{ImageURL: sp.image, IsThumbnail: true},
			},
		}
		if err := tx.Create(p).Error; err != nil {
			return fmt.Errorf("create product %q: %w", sp.name, err)
		}
	}
	log.Printf("created %d sample products", len(samples))
	return nil
}
