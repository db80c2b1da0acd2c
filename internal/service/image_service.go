package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mimistyle/backend/internal/imagestore"
	"github.com/mimistyle/backend/internal/model"
	"github.com/mimistyle/backend/internal/repository"
	"gorm.io/gorm"
)

// UploadFile is one incoming binary from a multipart request.
type UploadFile struct {
	Filename string
	Content  io.Reader
}

type ImageService interface {
	// Upload writes the files to the shared directory and returns the
	// generated filenames. Nothing is recorded in the database yet.
	Upload(ctx context.Context, files []UploadFile) ([]string, error)
	// Attach creates one image record per non-blank filename, in order.
	Attach(ctx context.Context, productID uint64, filenames []string) ([]model.ProductImage, error)
	// Delete removes the file and its record, promoting a replacement
	// thumbnail when the deleted image held the flag.
	Delete(ctx context.Context, productID uint64, filename string) error
	// ResolvePath maps a stored filename to its on-disk path for serving.
	ResolvePath(filename string) (string, error)
}

type imageService struct {
	store       *imagestore.Store
	productRepo repository.ProductRepository
	imageRepo   repository.ProductImageRepository
}

func NewImageService(store *imagestore.Store, productRepo repository.ProductRepository, imageRepo repository.ProductImageRepository) ImageService {
	return &imageService{store: store, productRepo: productRepo, imageRepo: imageRepo}
}

func (s *imageService) Upload(ctx context.Context, files []UploadFile) ([]string, error) {
	if len(files) == 0 {
		return nil, invalidRequest("Chưa chọn ảnh để tải lên")
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		name, err := s.store.Save(f.Filename, f.Content)
		if err != nil {
			return nil, fmt.Errorf("save %s: %w", f.Filename, err)
		}
		names = append(names, name)
	}
	return names, nil
}

func (s *imageService) Attach(ctx context.Context, productID uint64, filenames []string) ([]model.ProductImage, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", productID, ErrNotFound)
		}
		return nil, err
	}
	if len(filenames) == 0 {
		return nil, invalidRequest("Danh sách tên ảnh không được để trống")
	}

	// The first filename of the batch becomes the thumbnail, but only
	// when the product does not already have one.
	hasThumb, err := s.imageRepo.HasThumbnail(ctx, productID)
	if err != nil {
		return nil, err
	}

	saved := make([]model.ProductImage, 0, len(filenames))
	for _, filename := range filenames {
		filename = strings.TrimSpace(filename)
		if filename == "" {
			continue
		}
		img := &model.ProductImage{
			ProductID:   productID,
			ImageURL:    filename,
			IsThumbnail: !hasThumb,
		}
		if err := s.imageRepo.Create(ctx, img); err != nil {
			return nil, err
		}
		hasThumb = true
		saved = append(saved, *img)
	}
	return saved, nil
}

func (s *imageService) Delete(ctx context.Context, productID uint64, filename string) error {
	img, err := s.imageRepo.FindByProductAndFilename(ctx, productID, filename)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("image %s: %w", filename, ErrNotFound)
		}
		return err
	}

	if err := s.store.Remove(filename); err != nil {
		return fmt.Errorf("remove file %s: %w", filename, err)
	}
	if err := s.imageRepo.Delete(ctx, img.ID); err != nil {
		return err
	}

	if !img.IsThumbnail {
		return nil
	}
	remaining, err := s.imageRepo.ListByProduct(ctx, productID)
	if err != nil {
		return err
	}
	if len(remaining) == 0 {
		// Product can sit without a thumbnail until the next attach.
		return nil
	}
	// Deterministic promotion: lowest id wins.
	return s.imageRepo.SetThumbnail(ctx, remaining[0].ID, true)
}

func (s *imageService) ResolvePath(filename string) (string, error) {
	return s.store.Path(filename)
}
