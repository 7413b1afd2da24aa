package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"shopwindow.dev/app/internal/catalogd"
)

type seedProduct struct {
	Title       string
	Description string
	Price       float64
	Image       string
}

var demo = []seedProduct{
	{"Fjallraven Foldsack Backpack", "Fits 15 inch laptops, everyday carry.", 109.95, "https://img.shopwindow.dev/backpack.jpg"},
	{"Slim Fit T-Shirt", "Lightweight casual tee with raglan sleeves.", 22.30, "https://img.shopwindow.dev/tshirt.jpg"},
	{"Cotton Jacket", "Great outerwear for spring, autumn and hiking.", 55.99, "https://img.shopwindow.dev/jacket.jpg"},
	{"Silver Dragon Bracelet", "Inspired by the wild dragon mythology.", 695.00, "https://img.shopwindow.dev/bracelet.jpg"},
	{"1TB Portable External Drive", "USB 3.0 compatibility, improves transfer speeds.", 64.00, "https://img.shopwindow.dev/drive.jpg"},
	{"Waterproof Snowboard Jacket", "Warm and breathable with adjustable hood.", 56.99, "https://img.shopwindow.dev/snowjacket.jpg"},
}

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&catalogd.Product{}); err != nil {
		log.Fatalf("migrate products: %v", err)
	}

	repo := catalogd.NewRepo(db)
	ctx := context.Background()
	created := 0
	for _, p := range demo {
		if _, err := repo.Create(ctx, p.Title, p.Description, p.Price, p.Image); err != nil {
			if catalogd.IsDuplicateKey(err) {
				continue
			}
			log.Fatalf("seed %q: %v", p.Title, err)
		}
		created++
	}
	log.Printf("seeded %d products", created)
}
