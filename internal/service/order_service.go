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

type OrderItemInput struct {
	ProductID uint64
	Quantity  int
	VariantID *uint64
}

type CreateOrderInput struct {
	BuyerID         uint64
	ShippingName    string
	ShippingPhone   string
	ShippingAddress string
	ShippingFee     decimal.Decimal
	DiscountAmount  decimal.Decimal
	PaymentMethod   model.PaymentMethod
	Note            string
	Items           []OrderItemInput
}

type OrderService interface {
	Create(ctx context.Context, in CreateOrderInput) (*model.Order, error)
	UpdateStatus(ctx context.Context, orderID uint64, status model.OrderStatus) error
	ListByBuyer(ctx context.Context, buyerID uint64) ([]model.Order, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

func NewOrderService(orderRepo repository.OrderRepository, userRepo repository.UserRepository, productRepo repository.ProductRepository) OrderService {
	return &orderService{orderRepo: orderRepo, userRepo: userRepo, productRepo: productRepo}
}

func (s *orderService) Create(ctx context.Context, in CreateOrderInput) (*model.Order, error) {
	buyer, err := s.userRepo.FindByID(ctx, in.BuyerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("buyer %d: %w", in.BuyerID, ErrNotFound)
		}
		return nil, err
	}
	if len(in.Items) == 0 {
		return nil, invalidRequest("Đơn hàng phải có ít nhất một sản phẩm")
	}

	subtotal := decimal.Zero
	items := make([]model.OrderItem, 0, len(in.Items))
	for _, itemIn := range in.Items {
		product, err := s.productRepo.FindByID(ctx, itemIn.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("product %d: %w", itemIn.ProductID, ErrNotFound)
			}
			return nil, err
		}
		qty := itemIn.Quantity
		if qty <= 0 {
			qty = 1
		}
		// Unit price is the buy price at order time; rent checkout does
		// not exist, so a product without a buy price sells at zero.
		price := product.BuyPrice
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(qty))))

		items = append(items, model.OrderItem{
			ProductID: product.ID,
			Quantity:  qty,
			Price:     price,
			OrderType: model.OrderTypeBuy,
		})
	}

	finalAmount := subtotal.Add(in.ShippingFee).Sub(in.DiscountAmount)
	if finalAmount.IsNegative() {
		finalAmount = decimal.Zero
	}

	shippingName := strings.TrimSpace(in.ShippingName)
	if shippingName == "" {
		shippingName = buyer.FullName
	}
	shippingPhone := strings.TrimSpace(in.ShippingPhone)
	if shippingPhone == "" {
		shippingPhone = buyer.Phone
	}
	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = model.PaymentMethodCOD
	}

	order := &model.Order{
		BuyerID:         buyer.ID,
		Status:          model.OrderStatusPending,
		ShippingName:    shippingName,
		ShippingPhone:   shippingPhone,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   paymentMethod,
		Note:            in.Note,
		TotalAmount:     subtotal,
		ShippingFee:     in.ShippingFee,
		DiscountAmount:  in.DiscountAmount,
		FinalAmount:     finalAmount,
		Items:           items,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID uint64, status model.OrderStatus) error {
	switch status {
	case model.OrderStatusPending, model.OrderStatusConfirmed, model.OrderStatusShipping,
		model.OrderStatusCompleted, model.OrderStatusCancelled:
	default:
		return invalidRequest("Trạng thái đơn hàng không hợp lệ")
	}
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("order %d: %w", orderID, ErrNotFound)
		}
		return err
	}
	// Any status may follow any other; the lifecycle is not a checked
	// state machine.
	return s.orderRepo.UpdateStatus(ctx, orderID, status)
}

func (s *orderService) ListByBuyer(ctx context.Context, buyerID uint64) ([]model.Order, error) {
	return s.orderRepo.ListByBuyer(ctx, buyerID)
}
