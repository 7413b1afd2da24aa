package main

import (
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"shopwindow.dev/app/internal/catalogd"

	"github.com/gin-gonic/gin"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}
	addr := os.Getenv("CATALOGD_ADDR")
	if addr == "" {
		addr = ":8081"
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	r := gin.Default()
	catalogd.NewHandler(catalogd.NewRepo(db), logger).Register(r)

	logger.Info("catalogd listening", slog.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatalf("catalogd exited: %v", err)
	}
}
