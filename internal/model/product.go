package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TradeType string

const (
	TradeTypeBuyOnly  TradeType = "BUY_ONLY"
	TradeTypeRentOnly TradeType = "RENT_ONLY"
	TradeTypeBoth     TradeType = "BOTH"
)

type RentUnit string

const (
	RentUnitDay   RentUnit = "DAY"
	RentUnitWeek  RentUnit = "WEEK"
	RentUnitMonth RentUnit = "MONTH"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "ACTIVE"
	ProductStatusInactive ProductStatus = "INACTIVE"
	ProductStatusSold     ProductStatus = "SOLD"
	ProductStatusRented   ProductStatus = "RENTED"
)

type Product struct {
	ID                  uint64          `gorm:"primaryKey;autoIncrement"`
	Name                string          `gorm:"size:255;not null"`
	Description         string          `gorm:"type:text;not null"`
	ConditionPercentage int             `gorm:"column:condition_percentage;not null;default:100"`
	TradeType           TradeType       `gorm:"column:trade_type;size:16;not null"`
	BuyPrice            decimal.Decimal `gorm:"column:buy_price;type:decimal(15,2)"`
	RentPrice           decimal.Decimal `gorm:"column:rent_price;type:decimal(15,2)"`
	RentUnit            RentUnit        `gorm:"column:rent_unit;size:16"`
	Status              ProductStatus   `gorm:"size:16;not null;default:ACTIVE"`
	AddressContact      string          `gorm:"column:address_contact;size:255;not null"`
	Featured            bool            `gorm:"not null;default:false"`
	IsNew               bool            `gorm:"column:is_new;not null;default:false"`
	SellerID            uint64          `gorm:"column:seller_id;not null;index:idx_products_seller_id"`
	Seller              *User           `gorm:"foreignKey:SellerID"`
	CategoryID          uint64          `gorm:"column:category_id;not null;index:idx_products_category_id"`
	Category            *Category       `gorm:"foreignKey:CategoryID"`
	Images              []ProductImage  `gorm:"foreignKey:ProductID"`
	CreatedAt           time.Time       `gorm:"autoCreateTime"`
	UpdatedAt           time.Time       `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}
