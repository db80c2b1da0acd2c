package repository

import (
	"context"
	"time"

	"github.com/mimistyle/backend/internal/model"
	"gorm.io/gorm"
)

type OrderItemRepository interface {
	// ListSoldBySeller returns every order item of the seller's products
	// whose order is in a non-cancelled state, newest order first.
	ListSoldBySeller(ctx context.Context, sellerID uint64) ([]model.OrderItem, error)
	// ListSoldBySellerBetween is the date-bounded variant; nil bounds are
	// open ends. Inclusion semantics must stay identical to the unbounded
	// query.
	ListSoldBySellerBetween(ctx context.Context, sellerID uint64, start, end *time.Time) ([]model.OrderItem, error)
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) ListSoldBySeller(ctx context.Context, sellerID uint64) ([]model.OrderItem, error) {
	return findSold(r.soldQuery(ctx, sellerID))
}

func (r *orderItemRepository) ListSoldBySellerBetween(ctx context.Context, sellerID uint64, start, end *time.Time) ([]model.OrderItem, error) {
	q := r.soldQuery(ctx, sellerID)
	if start != nil {
		q = q.Where("orders.created_at >= ?", *start)
	}
	if end != nil {
		q = q.Where("orders.created_at <= ?", *end)
	}
	return findSold(q)
}

func (r *orderItemRepository) soldQuery(ctx context.Context, sellerID uint64) *gorm.DB {
	return r.db.WithContext(ctx).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("products.seller_id = ?", sellerID).
		Where("orders.status IN ?", model.SoldStatuses).
		Order("orders.created_at DESC")
}

func findSold(q *gorm.DB) ([]model.OrderItem, error) {
	var items []model.OrderItem
	if err := q.
		Preload("Order").
		Preload("Product").
		Preload("Product.Category").
		Preload("Product.Images", imageOrder).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
