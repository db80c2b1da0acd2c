package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mimistyle/backend/internal/model"
	"github.com/mimistyle/backend/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name                string
	Description         string
	ConditionPercentage int
	TradeType           model.TradeType
	BuyPrice            decimal.Decimal
	RentPrice           decimal.Decimal
	RentUnit            model.RentUnit
	Status              model.ProductStatus
	AddressContact      string
	Featured            bool
	IsNew               bool
	SellerID            uint64
	CategoryID          uint64
}

type ProductService interface {
	Create(ctx context.Context, in ProductInput) (*model.Product, error)
	Get(ctx context.Context, id uint64) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	ListBySeller(ctx context.Context, sellerID uint64) ([]model.Product, error)
	Update(ctx context.Context, id uint64, in ProductInput) (*model.Product, error)
	Delete(ctx context.Context, id uint64) error
}

type productService struct {
	productRepo  repository.ProductRepository
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
}

func NewProductService(productRepo repository.ProductRepository, userRepo repository.UserRepository, categoryRepo repository.CategoryRepository) ProductService {
	return &productService{productRepo: productRepo, userRepo: userRepo, categoryRepo: categoryRepo}
}

func (s *productService) Create(ctx context.Context, in ProductInput) (*model.Product, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}

	// Seller and category are always explicit; there is no fallback to
	// the first row of either table.
	if in.SellerID == 0 {
		return nil, invalidRequest("Thông tin người bán không được để trống")
	}
	if in.CategoryID == 0 {
		return nil, invalidRequest("Danh mục sản phẩm không được để trống")
	}
	if _, err := s.userRepo.FindByID(ctx, in.SellerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalidRequest("Thông tin người bán không tồn tại trong hệ thống")
		}
		return nil, err
	}
	if _, err := s.categoryRepo.FindByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalidRequest("Danh mục sản phẩm không tồn tại trong hệ thống")
		}
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = model.ProductStatusActive
	}
	p := &model.Product{
		Name:                strings.TrimSpace(in.Name),
		Description:         strings.TrimSpace(in.Description),
		ConditionPercentage: in.ConditionPercentage,
		TradeType:           in.TradeType,
		BuyPrice:            in.BuyPrice,
		RentPrice:           in.RentPrice,
		RentUnit:            in.RentUnit,
		Status:              status,
		AddressContact:      strings.TrimSpace(in.AddressContact),
		Featured:            in.Featured,
		IsNew:               in.IsNew,
		SellerID:            in.SellerID,
		CategoryID:          in.CategoryID,
	}
	if err := s.productRepo.Create(ctx, p); err != nil {
		return nil, translateConstraintError(err)
	}
	return s.Get(ctx, p.ID)
}

func (s *productService) Get(ctx context.Context, id uint64) (*model.Product, error) {
	p, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *productService) ListBySeller(ctx context.Context, sellerID uint64) ([]model.Product, error) {
	return s.productRepo.ListBySeller(ctx, sellerID)
}

func (s *productService) Update(ctx context.Context, id uint64, in ProductInput) (*model.Product, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateProductInput(in); err != nil {
		return nil, err
	}

	existing.Name = strings.TrimSpace(in.Name)
	existing.Description = strings.TrimSpace(in.Description)
	existing.BuyPrice = in.BuyPrice
	existing.RentPrice = in.RentPrice
	existing.RentUnit = in.RentUnit
	existing.TradeType = in.TradeType
	if in.Status != "" {
		existing.Status = in.Status
	}
	if in.ConditionPercentage != 0 {
		existing.ConditionPercentage = in.ConditionPercentage
	}
	if err := s.productRepo.Update(ctx, existing); err != nil {
		return nil, translateConstraintError(err)
	}
	return s.Get(ctx, id)
}

func (s *productService) Delete(ctx context.Context, id uint64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

func validateProductInput(in ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return invalidRequest("Tên sản phẩm không được để trống")
	}
	if strings.TrimSpace(in.Description) == "" {
		return invalidRequest("Mô tả sản phẩm không được để trống")
	}
	if strings.TrimSpace(in.AddressContact) == "" {
		return invalidRequest("Địa chỉ không được để trống")
	}
	if in.ConditionPercentage < 0 || in.ConditionPercentage > 100 {
		return invalidRequest("Tình trạng sản phẩm phải từ 0 đến 100")
	}
	switch in.TradeType {
	case model.TradeTypeBuyOnly:
		if !in.BuyPrice.IsPositive() {
			return invalidRequest("Giá bán phải lớn hơn 0")
		}
	case model.TradeTypeRentOnly:
		if !in.RentPrice.IsPositive() {
			return invalidRequest("Giá thuê phải lớn hơn 0")
		}
	case model.TradeTypeBoth:
		if !in.BuyPrice.IsPositive() && !in.RentPrice.IsPositive() {
			return invalidRequest("Cần có ít nhất một giá (bán hoặc thuê) lớn hơn 0")
		}
	case "":
		return invalidRequest("Hình thức giao dịch không được để trống")
	default:
		return invalidRequest("Hình thức giao dịch không hợp lệ")
	}
	return nil
}

// translateConstraintError turns a classified store-level constraint
// failure into the field-specific client message; anything else passes
// through untouched.
func translateConstraintError(err error) error {
	cv, ok := repository.AsConstraintViolation(err)
	if !ok {
		return err
	}
	switch cv.Column {
	case "seller_id":
		return invalidRequest("Thông tin người bán không tồn tại trong hệ thống")
	case "category_id":
		return invalidRequest("Danh mục sản phẩm không tồn tại trong hệ thống")
	}
	return invalidRequest("Dữ liệu tham chiếu không hợp lệ")
}
