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

type ProductHandler struct {
	svc service.ProductService
}

func NewProductHandler(svc service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

type ProductRequest struct {
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	ConditionPercentage int             `json:"conditionPercentage"`
	TradeType           string          `json:"tradeType"`
	BuyPrice            decimal.Decimal `json:"buyPrice"`
	RentPrice           decimal.Decimal `json:"rentPrice"`
	RentUnit            string          `json:"rentUnit"`
	Status              string          `json:"status"`
	AddressContact      string          `json:"addressContact"`
	Featured            bool            `json:"featured"`
	IsNew               bool            `json:"isNew"`
	SellerID            uint64          `json:"sellerId"`
	CategoryID          uint64          `json:"categoryId"`
}

type ProductResponse struct {
	ID                  uint64          `json:"id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	ConditionPercentage int             `json:"conditionPercentage"`
	TradeType           string          `json:"tradeType"`
	BuyPrice            decimal.Decimal `json:"buyPrice"`
	RentPrice           decimal.Decimal `json:"rentPrice"`
	RentUnit            string          `json:"rentUnit"`
	Status              string          `json:"status"`
	AddressContact      string          `json:"addressContact"`
	Featured            bool            `json:"featured"`
	IsNew               bool            `json:"isNew"`
	SellerID            uint64          `json:"sellerId"`
	SellerName          string          `json:"sellerName,omitempty"`
	CategoryID          uint64          `json:"categoryId"`
	CategoryName        string          `json:"categoryName,omitempty"`
	Images              []string        `json:"images"`
	CreatedAt           string          `json:"createdAt"`
	UpdatedAt           string          `json:"updatedAt"`
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	p, err := h.svc.Create(c.Request().Context(), toProductInput(req))
	if err != nil {
		return writeServiceError(c, err, "failed to create product")
	}
	return c.JSON(http.StatusCreated, toProductResponse(p))
}

func (h *ProductHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid id"))
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err, "failed to fetch product")
	}
	return c.JSON(http.StatusOK, toProductResponse(p))
}

func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.svc.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err, "failed to fetch products")
	}
	return c.JSON(http.StatusOK, toProductResponses(products))
}

func (h *ProductHandler) ListByUser(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid user id"))
	}
	products, err := h.svc.ListBySeller(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err, "failed to fetch products")
	}
	return c.JSON(http.StatusOK, toProductResponses(products))
}

func (h *ProductHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid id"))
	}
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	p, err := h.svc.Update(c.Request().Context(), id, toProductInput(req))
	if err != nil {
		return writeServiceError(c, err, "failed to update product")
	}
	return c.JSON(http.StatusOK, toProductResponse(p))
}

func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid id"))
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err, "failed to delete product")
	}
	return c.NoContent(http.StatusOK)
}

func toProductInput(req ProductRequest) service.ProductInput {
	return service.ProductInput{
		Name:                req.Name,
		Description:         req.Description,
		ConditionPercentage: req.ConditionPercentage,
		TradeType:           model.TradeType(req.TradeType),
		BuyPrice:            req.BuyPrice,
		RentPrice:           req.RentPrice,
		RentUnit:            model.RentUnit(req.RentUnit),
		Status:              model.ProductStatus(req.Status),
		AddressContact:      req.AddressContact,
		Featured:            req.Featured,
		IsNew:               req.IsNew,
		SellerID:            req.SellerID,
		CategoryID:          req.CategoryID,
	}
}

func toProductResponse(p *model.Product) ProductResponse {
	resp := ProductResponse{
		ID:                  p.ID,
		Name:                p.Name,
		Description:         p.Description,
		ConditionPercentage: p.ConditionPercentage,
		TradeType:           string(p.TradeType),
		BuyPrice:            p.BuyPrice,
		RentPrice:           p.RentPrice,
		RentUnit:            string(p.RentUnit),
		Status:              string(p.Status),
		AddressContact:      p.AddressContact,
		Featured:            p.Featured,
		IsNew:               p.IsNew,
		SellerID:            p.SellerID,
		CategoryID:          p.CategoryID,
		Images:              make([]string, 0, len(p.Images)),
		CreatedAt:           p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           p.UpdatedAt.Format(time.RFC3339),
	}
	if p.Seller != nil {
		resp.SellerName = p.Seller.FullName
	}
	if p.Category != nil {
		resp.CategoryName = p.Category.Name
	}
	for _, img := range p.Images {
		resp.Images = append(resp.Images, img.ImageURL)
	}
	return resp
}

func toProductResponses(products []model.Product) []ProductResponse {
	resp := make([]ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, toProductResponse(&products[i]))
	}
	return resp
}
