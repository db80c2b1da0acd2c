package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderType string

const (
	OrderTypeBuy OrderType = "BUY"
)

type OrderItem struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	OrderID   uint64          `gorm:"column:order_id;not null;index:idx_order_items_order_id"`
	Order     *Order          `gorm:"foreignKey:OrderID"`
	ProductID uint64          `gorm:"column:product_id;not null;index:idx_order_items_product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	OrderType OrderType       `gorm:"column:order_type;size:16;not null"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// LineTotal is Price times Quantity, computed so the stored price stays
// the single source of truth.
func (oi OrderItem) LineTotal() decimal.Decimal {
	return oi.Price.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}
