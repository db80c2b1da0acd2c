package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/mimistyle/backend/internal/config"
	"github.com/mimistyle/backend/internal/db"
	"github.com/mimistyle/backend/internal/imagestore"
	"github.com/mimistyle/backend/internal/model"
	"github.com/mimistyle/backend/internal/server"
	"github.com/shopspring/decimal"
)

func main() {
	_ = godotenv.Load()

	// Amounts serialize as JSON numbers, matching what the frontend
	// already parses.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	if err := conn.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.ProductImage{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatalf("auto migrate error: %v", err)
	}

	images := imagestore.New(cfg.UploadDir)
	if err := images.EnsureDir(); err != nil {
		log.Fatalf("upload dir error: %v", err)
	}

	srv := server.New(conn, images)
	addr := ":" + cfg.Port
	log.Printf("starting server on %s", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
