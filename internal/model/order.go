package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipping  OrderStatus = "SHIPPING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// SoldStatuses are the order states that count toward seller revenue.
// CANCELLED is the only excluded state.
var SoldStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusShipping,
	OrderStatusCompleted,
}

type PaymentMethod string

const (
	PaymentMethodCOD          PaymentMethod = "COD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

type Order struct {
	ID              uint64          `gorm:"primaryKey;autoIncrement"`
	BuyerID         uint64          `gorm:"column:buyer_id;not null;index:idx_orders_buyer_id"`
	Buyer           *User           `gorm:"foreignKey:BuyerID"`
	Status          OrderStatus     `gorm:"size:16;not null"`
	ShippingName    string          `gorm:"column:shipping_name;size:120"`
	ShippingPhone   string          `gorm:"column:shipping_phone;size:32"`
	ShippingAddress string          `gorm:"column:shipping_address;size:255"`
	PaymentMethod   PaymentMethod   `gorm:"column:payment_method;size:32;not null"`
	Note            string          `gorm:"type:text"`
	TotalAmount     decimal.Decimal `gorm:"column:total_amount;type:decimal(15,2);not null"`
	ShippingFee     decimal.Decimal `gorm:"column:shipping_fee;type:decimal(15,2);not null"`
	DiscountAmount  decimal.Decimal `gorm:"column:discount_amount;type:decimal(15,2);not null"`
	FinalAmount     decimal.Decimal `gorm:"column:final_amount;type:decimal(15,2);not null"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time       `gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime"`
}

func (Order) TableName() string {
	return "orders"
}
