package repository

import (
	"context"

	"github.com/mimistyle/backend/internal/model"
	"gorm.io/gorm"
)

type ProductImageRepository interface {
	Create(ctx context.Context, img *model.ProductImage) error
	ListByProduct(ctx context.Context, productID uint64) ([]model.ProductImage, error)
	FindByProductAndFilename(ctx context.Context, productID uint64, filename string) (*model.ProductImage, error)
	HasThumbnail(ctx context.Context, productID uint64) (bool, error)
	SetThumbnail(ctx context.Context, imageID uint64, isThumbnail bool) error
	Delete(ctx context.Context, imageID uint64) error
}

type productImageRepository struct {
	db *gorm.DB
}

func NewProductImageRepository(db *gorm.DB) ProductImageRepository {
	return &productImageRepository{db: db}
}

func (r *productImageRepository) Create(ctx context.Context, img *model.ProductImage) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *productImageRepository) ListByProduct(ctx context.Context, productID uint64) ([]model.ProductImage, error) {
	var list []model.ProductImage
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *productImageRepository) FindByProductAndFilename(ctx context.Context, productID uint64, filename string) (*model.ProductImage, error) {
	var img model.ProductImage
	if err := r.db.WithContext(ctx).
		Where("product_id = ? AND image_url = ?", productID, filename).
		First(&img).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *productImageRepository) HasThumbnail(ctx context.Context, productID uint64) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&model.ProductImage{}).
		Where("product_id = ? AND is_thumbnail = ?", productID, true).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *productImageRepository) SetThumbnail(ctx context.Context, imageID uint64, isThumbnail bool) error {
	return r.db.WithContext(ctx).
		Model(&model.ProductImage{}).
		Where("id = ?", imageID).
		Update("is_thumbnail", isThumbnail).Error
}

func (r *productImageRepository) Delete(ctx context.Context, imageID uint64) error {
	return r.db.WithContext(ctx).Delete(&model.ProductImage{}, imageID).Error
}
