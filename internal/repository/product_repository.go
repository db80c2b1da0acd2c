package repository

import (
	"context"

	"github.com/mimistyle/backend/internal/model"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id uint64) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	ListBySeller(ctx context.Context, sellerID uint64) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id uint64) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepository) FindByID(ctx context.Context, id uint64) (*model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).
		Preload("Seller").
		Preload("Category").
		Preload("Images", imageOrder).
		First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	var list []model.Product
	if err := r.db.WithContext(ctx).
		Preload("Seller").
		Preload("Category").
		Preload("Images", imageOrder).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *productRepository) ListBySeller(ctx context.Context, sellerID uint64) ([]model.Product, error) {
	var list []model.Product
	if err := r.db.WithContext(ctx).
		Preload("Seller").
		Preload("Category").
		Preload("Images", imageOrder).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *productRepository) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}

// imageOrder keeps preloaded image lists in creation order so "first
// image" means the same thing everywhere.
func imageOrder(db *gorm.DB) *gorm.DB {
	return db.Order("product_images.id ASC")
}
