package main

import (
	"context"
	"net/http"
	"os"

	"github.com/giftwell/wishlist-backend/api/routes"
	"github.com/giftwell/wishlist-backend/internal/items"
	"github.com/giftwell/wishlist-backend/internal/wishlists"
	"github.com/giftwell/wishlist-backend/pkg/config"
	"github.com/giftwell/wishlist-backend/pkg/db"
	"github.com/giftwell/wishlist-backend/pkg/db/models"
	"github.com/giftwell/wishlist-backend/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := models.Migrate(dbClient.DB()); err != nil {
		logg.Error(context.Background(), "failed to ensure schema", err)
		os.Exit(1)
	}

	wishlistRepo := wishlists.NewRepository(dbClient.DB())
	itemRepo := items.NewRepository(dbClient.DB())

	wishlistService, err := wishlists.NewService(wishlistRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create wishlist service", err)
		os.Exit(1)
	}
	itemService, err := items.NewService(itemRepo, wishlistRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create item service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, wishlistService, itemService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
