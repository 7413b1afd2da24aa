package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"shopwindow.dev/app/internal/catalog"
	apphttp "shopwindow.dev/app/internal/http"
	"shopwindow.dev/app/internal/session"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	catalogURL := os.Getenv("CATALOG_URL")
	if catalogURL == "" {
		log.Fatal("CATALOG_URL environment variable is required")
	}
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Fatal("SESSION_SECRET environment variable is required")
	}
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	refresh := time.Minute
	if v := os.Getenv("CATALOG_REFRESH"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("invalid CATALOG_REFRESH: %v", err)
		}
		refresh = d
	}

	cache := catalog.NewCache(catalog.NewClient(catalogURL), refresh, logger)
	sessions := session.NewStore(30 * time.Minute)

	r := apphttp.NewRouter(logger, apphttp.Deps{
		Catalog:  cache,
		Sessions: sessions,
		Secret:   []byte(secret),
		Secure:   os.Getenv("COOKIE_SECURE") == "true",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{Addr: addr, Handler: r}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := cache.Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		logger.Info("web listening", slog.String("addr", addr))
		err := srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("web exited: %v", err)
	}
}
