package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mimistyle/backend/internal/service"
	"github.com/shopspring/decimal"
)

type RevenueHandler struct {
	svc service.RevenueService
}

func NewRevenueHandler(svc service.RevenueService) *RevenueHandler {
	return &RevenueHandler{svc: svc}
}

type RevenueSummaryResponse struct {
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TotalProductsSold int             `json:"totalProductsSold"`
	Period            string          `json:"period"`
}

type SoldProductResponse struct {
	ID          uint64          `json:"id"`
	Name        string          `json:"name"`
	ImageURL    string          `json:"imageUrl"`
	Quantity    int             `json:"quantity"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	SoldDate    string          `json:"soldDate"`
	Category    string          `json:"category"`
	OrderID     uint64          `json:"orderId"`
	OrderStatus string          `json:"orderStatus"`
}

func (h *RevenueHandler) Summary(c echo.Context) error {
	sellerID, startDate, endDate, category, err := revenueParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
	}
	summary, err := h.svc.Summary(c.Request().Context(), sellerID, startDate, endDate, category)
	if err != nil {
		return writeServiceError(c, err, "failed to compute revenue")
	}
	return c.JSON(http.StatusOK, RevenueSummaryResponse{
		TotalRevenue:      summary.TotalRevenue,
		TotalProductsSold: summary.TotalProductsSold,
		Period:            summary.Period,
	})
}

func (h *RevenueHandler) SoldProducts(c echo.Context) error {
	sellerID, startDate, endDate, category, err := revenueParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", err.Error()))
	}
	rows, err := h.svc.SoldProducts(c.Request().Context(), sellerID, startDate, endDate, category)
	if err != nil {
		return writeServiceError(c, err, "failed to fetch sold products")
	}
	resp := make([]SoldProductResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, SoldProductResponse{
			ID:          row.ProductID,
			Name:        row.Name,
			ImageURL:    row.ImageURL,
			Quantity:    row.Quantity,
			TotalAmount: row.TotalAmount,
			SoldDate:    row.SoldDate.Format("2006-01-02"),
			Category:    row.Category,
			OrderID:     row.OrderID,
			OrderStatus: row.OrderStatus,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

func revenueParams(c echo.Context) (sellerID uint64, startDate, endDate *time.Time, category string, err error) {
	sellerID, err = strconv.ParseUint(c.QueryParam("userId"), 10, 64)
	if err != nil {
		return 0, nil, nil, "", errors.New("invalid userId")
	}
	startDate, err = parseDate(c.QueryParam("startDate"))
	if err != nil {
		return 0, nil, nil, "", errors.New("invalid startDate, expected yyyy-mm-dd")
	}
	endDate, err = parseDate(c.QueryParam("endDate"))
	if err != nil {
		return 0, nil, nil, "", errors.New("invalid endDate, expected yyyy-mm-dd")
	}
	return sellerID, startDate, endDate, c.QueryParam("category"), nil
}

// parseDate reads a yyyy-mm-dd query value in local time; absent means
// an open bound.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
