package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mimistyle/backend/internal/repository"
)

type CategoryHandler struct {
	repo repository.CategoryRepository
}

func NewCategoryHandler(repo repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{repo: repo}
}

type CategoryResponse struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.repo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch categories"))
	}
	resp := make([]CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, CategoryResponse{ID: cat.ID, Name: cat.Name})
	}
	return c.JSON(http.StatusOK, resp)
}
