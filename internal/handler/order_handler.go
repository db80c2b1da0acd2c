package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mimistyle/backend/internal/model"
	"github.com/mimistyle/backend/internal/service"
	"github.com/shopspring/decimal"
)

type OrderHandler struct {
	svc service.OrderService
}

func NewOrderHandler(svc service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type CreateOrderRequest struct {
	BuyerID         uint64             `json:"buyerId"`
	ShippingName    string             `json:"shippingName"`
	ShippingPhone   string             `json:"shippingPhone"`
	ShippingAddress string             `json:"shippingAddress"`
	ShippingFee     decimal.Decimal    `json:"shippingFee"`
	DiscountAmount  decimal.Decimal    `json:"discountAmount"`
	PaymentMethod   string             `json:"paymentMethod"`
	Note            string             `json:"note"`
	Items           []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	ProductID uint64  `json:"productId"`
	Quantity  int     `json:"quantity"`
	VariantID *uint64 `json:"variantId"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderItemResponse struct {
	ProductID   uint64          `json:"productId"`
	ProductName string          `json:"productName"`
	ImageURL    string          `json:"imageUrl"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

type OrderResponse struct {
	ID              uint64              `json:"id"`
	Status          string              `json:"status"`
	ShippingName    string              `json:"shippingName"`
	ShippingPhone   string              `json:"shippingPhone"`
	ShippingAddress string              `json:"shippingAddress"`
	PaymentMethod   string              `json:"paymentMethod"`
	Note            string              `json:"note,omitempty"`
	TotalAmount     decimal.Decimal     `json:"totalAmount"`
	ShippingFee     decimal.Decimal     `json:"shippingFee"`
	DiscountAmount  decimal.Decimal     `json:"discountAmount"`
	FinalAmount     decimal.Decimal     `json:"finalAmount"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       string              `json:"createdAt"`
}

func (h *OrderHandler) Create(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.OrderItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			VariantID: it.VariantID,
		})
	}
	order, err := h.svc.Create(c.Request().Context(), service.CreateOrderInput{
		BuyerID:         req.BuyerID,
		ShippingName:    req.ShippingName,
		ShippingPhone:   req.ShippingPhone,
		ShippingAddress: req.ShippingAddress,
		ShippingFee:     req.ShippingFee,
		DiscountAmount:  req.DiscountAmount,
		PaymentMethod:   model.PaymentMethod(req.PaymentMethod),
		Note:            req.Note,
		Items:           items,
	})
	if err != nil {
		return writeServiceError(c, err, "failed to create order")
	}
	return c.JSON(http.StatusCreated, toOrderResponse(order))
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid order id"))
	}
	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if err := h.svc.UpdateStatus(c.Request().Context(), id, model.OrderStatus(req.Status)); err != nil {
		return writeServiceError(c, err, "failed to update order status")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Đã cập nhật trạng thái đơn hàng",
	})
}

func (h *OrderHandler) ListMine(c echo.Context) error {
	buyerID, err := strconv.ParseUint(c.QueryParam("buyerId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid buyer id"))
	}
	orders, err := h.svc.ListByBuyer(c.Request().Context(), buyerID)
	if err != nil {
		return writeServiceError(c, err, "failed to fetch orders")
	}
	resp := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, toOrderResponse(&orders[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func toOrderResponse(o *model.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		line := OrderItemResponse{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			LineTotal: it.LineTotal(),
		}
		if it.Product != nil {
			line.ProductName = it.Product.Name
			if len(it.Product.Images) > 0 {
				line.ImageURL = it.Product.Images[0].ImageURL
			}
		}
		items = append(items, line)
	}
	return OrderResponse{
		ID:              o.ID,
		Status:          string(o.Status),
		ShippingName:    o.ShippingName,
		ShippingPhone:   o.ShippingPhone,
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   string(o.PaymentMethod),
		Note:            o.Note,
		TotalAmount:     o.TotalAmount,
		ShippingFee:     o.ShippingFee,
		DiscountAmount:  o.DiscountAmount,
		FinalAmount:     o.FinalAmount,
		Items:           items,
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
	}
}
