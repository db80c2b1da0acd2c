package model

import "time"

// ProductImage stores only the filename; binaries live in the shared
// upload directory resolved at serve time.
type ProductImage struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	ProductID   uint64    `gorm:"column:product_id;not null;index:idx_product_images_product_id"`
	ImageURL    string    `gorm:"column:image_url;size:512;not null"`
	IsThumbnail bool      `gorm:"column:is_thumbnail;not null;default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (ProductImage) TableName() string {
	return "product_images"
}
