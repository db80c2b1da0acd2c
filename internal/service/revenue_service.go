package service

import (
	"context"
	"strings"
	"time"

	"github.com/mimistyle/backend/internal/model"
	"github.com/mimistyle/backend/internal/repository"
	"github.com/shopspring/decimal"
)

// fallbackCategory labels sold rows whose product lost its category.
const fallbackCategory = "Khác"

type RevenueSummary struct {
	TotalRevenue      decimal.Decimal
	TotalProductsSold int
	Period            string
}

type SoldProduct struct {
	ProductID   uint64
	Name        string
	ImageURL    string
	Quantity    int
	TotalAmount decimal.Decimal
	SoldDate    time.Time
	Category    string
	OrderID     uint64
	OrderStatus string
}

type RevenueService interface {
	Summary(ctx context.Context, sellerID uint64, startDate, endDate *time.Time, category string) (*RevenueSummary, error)
	SoldProducts(ctx context.Context, sellerID uint64, startDate, endDate *time.Time, category string) ([]SoldProduct, error)
}

type revenueService struct {
	orderItemRepo repository.OrderItemRepository
}

func NewRevenueService(orderItemRepo repository.OrderItemRepository) RevenueService {
	return &revenueService{orderItemRepo: orderItemRepo}
}

func (s *revenueService) Summary(ctx context.Context, sellerID uint64, startDate, endDate *time.Time, category string) (*RevenueSummary, error) {
	items, err := s.soldItems(ctx, sellerID, startDate, endDate, category)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	units := 0
	for _, it := range items {
		total = total.Add(it.LineTotal())
		units += it.Quantity
	}
	return &RevenueSummary{
		TotalRevenue:      total,
		TotalProductsSold: units,
		Period:            formatPeriod(startDate, endDate),
	}, nil
}

func (s *revenueService) SoldProducts(ctx context.Context, sellerID uint64, startDate, endDate *time.Time, category string) ([]SoldProduct, error) {
	items, err := s.soldItems(ctx, sellerID, startDate, endDate, category)
	if err != nil {
		return nil, err
	}
	rows := make([]SoldProduct, 0, len(items))
	for _, it := range items {
		rows = append(rows, toSoldProduct(it))
	}
	return rows, nil
}

// soldItems loads the seller's non-cancelled order items. The unbounded
// and date-bounded paths are separate queries that must keep identical
// inclusion semantics; the category filter is applied in memory on the
// loaded rows, as a case-insensitive exact name match.
func (s *revenueService) soldItems(ctx context.Context, sellerID uint64, startDate, endDate *time.Time, category string) ([]model.OrderItem, error) {
	var (
		items []model.OrderItem
		err   error
	)
	if startDate == nil && endDate == nil {
		items, err = s.orderItemRepo.ListSoldBySeller(ctx, sellerID)
	} else {
		var start, end *time.Time
		if startDate != nil {
			t := atStartOfDay(*startDate)
			start = &t
		}
		if endDate != nil {
			t := atEndOfDay(*endDate)
			end = &t
		}
		items, err = s.orderItemRepo.ListSoldBySellerBetween(ctx, sellerID, start, end)
	}
	if err != nil {
		return nil, err
	}

	if category == "" {
		return items, nil
	}
	filtered := make([]model.OrderItem, 0, len(items))
	for _, it := range items {
		if it.Product == nil || it.Product.Category == nil {
			continue
		}
		if strings.EqualFold(it.Product.Category.Name, category) {
			filtered = append(filtered, it)
		}
	}
	return filtered, nil
}

func toSoldProduct(it model.OrderItem) SoldProduct {
	row := SoldProduct{
		Quantity:    it.Quantity,
		TotalAmount: it.LineTotal(),
		OrderStatus: string(model.OrderStatusPending),
		Category:    fallbackCategory,
	}
	if it.Product != nil {
		row.ProductID = it.Product.ID
		row.Name = it.Product.Name
		row.ImageURL = resolveImage(it.Product)
		if it.Product.Category != nil {
			row.Category = it.Product.Category.Name
		}
	}
	if it.Order != nil {
		row.OrderID = it.Order.ID
		row.SoldDate = it.Order.CreatedAt
		if it.Order.Status != "" {
			row.OrderStatus = string(it.Order.Status)
		}
	}
	return row
}

// resolveImage prefers the designated thumbnail and falls back to the
// first image in creation order; empty string when the product has none.
func resolveImage(p *model.Product) string {
	for _, img := range p.Images {
		if img.IsThumbnail {
			return img.ImageURL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].ImageURL
	}
	return ""
}

func atStartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func atEndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

func formatPeriod(startDate, endDate *time.Time) string {
	if startDate == nil && endDate == nil {
		return "Tất cả thời gian"
	}
	start := "Bắt đầu"
	if startDate != nil {
		start = startDate.Format("02/01/2006")
	}
	end := "Hiện tại"
	if endDate != nil {
		end = endDate.Format("02/01/2006")
	}
	return start + " - " + end
}
