package repository

import (
	"context"

	"github.com/mimistyle/backend/internal/model"
	"gorm.io/gorm"
)

type OrderRepository interface {
	// Create persists the order together with its items; GORM runs the
	// association inserts inside one transaction.
	Create(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, id uint64) (*model.Order, error)
	UpdateStatus(ctx context.Context, id uint64, status model.OrderStatus) error
	ListByBuyer(ctx context.Context, buyerID uint64) ([]model.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepository) FindByID(ctx context.Context, id uint64) (*model.Order, error) {
	var o model.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uint64, status model.OrderStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *orderRepository) ListByBuyer(ctx context.Context, buyerID uint64) ([]model.Order, error) {
	var list []model.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Product.Images", imageOrder).
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
