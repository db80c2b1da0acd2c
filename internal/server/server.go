package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mimistyle/backend/internal/handler"
	"github.com/mimistyle/backend/internal/imagestore"
	"github.com/mimistyle/backend/internal/repository"
	"github.com/mimistyle/backend/internal/service"
	"gorm.io/gorm"
)

type Server struct {
	e *echo.Echo
}

func New(db *gorm.DB, images *imagestore.Store) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) (bool, error) {
			low := strings.ToLower(origin)
			if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
				strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
				return true, nil
			}
			return false, nil
		},
	}))

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	imageRepo := repository.NewProductImageRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)

	productSvc := service.NewProductService(productRepo, userRepo, categoryRepo)
	orderSvc := service.NewOrderService(orderRepo, userRepo, productRepo)
	revenueSvc := service.NewRevenueService(orderItemRepo)
	imageSvc := service.NewImageService(images, productRepo, imageRepo)

	productHandler := handler.NewProductHandler(productSvc)
	orderHandler := handler.NewOrderHandler(orderSvc)
	revenueHandler := handler.NewRevenueHandler(revenueSvc)
	imageHandler := handler.NewImageHandler(imageSvc)
	categoryHandler := handler.NewCategoryHandler(categoryRepo)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})

	api := e.Group("/api")

	api.POST("/orders", orderHandler.Create)
	api.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
	api.GET("/orders/me", orderHandler.ListMine)

	api.GET("/products", productHandler.List)
	api.GET("/products/user/:userId", productHandler.ListByUser)
	api.POST("/products", productHandler.Create)

	// Static routes before the ":id" wildcard so "upload-images" and
	// "images" are never parsed as product ids.
	api.POST("/products/upload-images", imageHandler.Upload)
	api.GET("/products/images/:filename", imageHandler.Serve)
	api.POST("/products/:id/images", imageHandler.Attach)
	api.DELETE("/products/:id/images/:filename", imageHandler.Delete)

	api.GET("/products/:id", productHandler.Get)
	api.PUT("/products/:id", productHandler.Update)
	api.DELETE("/products/:id", productHandler.Delete)

	api.GET("/revenue/summary", revenueHandler.Summary)
	api.GET("/revenue/sold-products", revenueHandler.SoldProducts)

	api.GET("/categories", categoryHandler.List)

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}
