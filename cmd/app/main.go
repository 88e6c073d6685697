package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/famplan/famplan-server/internal/catalog"
	"github.com/famplan/famplan-server/internal/config"
	"github.com/famplan/famplan-server/internal/database"
	"github.com/famplan/famplan-server/internal/database/postgres"
	"github.com/famplan/famplan-server/internal/event"
	"github.com/famplan/famplan-server/internal/menu"
	"github.com/famplan/famplan-server/internal/metrics"
	"github.com/famplan/famplan-server/internal/server"
	"github.com/famplan/famplan-server/internal/shopping"
	"github.com/famplan/famplan-server/internal/user"
)

const (
	dbMaxConnections = 10
	dbMaxIdleTime    = 5 * time.Minute
	dbMaxLifetime    = 30 * time.Minute
	shutdownTimeout  = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	if err := database.Migrate(cfg.GetDBConnString()); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString(), database.PoolConfig{
		MaxConns:    dbMaxConnections,
		MaxIdleTime: dbMaxIdleTime,
		MaxLifetime: dbMaxLifetime,
	})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	menuRepo := postgres.NewMenuRepository(dbPool)
	recipeRepo := postgres.NewRecipeRepository(dbPool)
	listRepo := postgres.NewShoppingListRepository(dbPool)
	userRepo := postgres.NewUserRepository(dbPool)

	eventBus := event.NewMemoryBus()
	metrics.RegisterEventHandlers(eventBus)

	menuService := menu.NewService(menuRepo, recipeRepo, userRepo, eventBus, menu.DefaultCalendar())
	shoppingService := shopping.NewService(listRepo, menuRepo, userRepo, eventBus)
	catalogService := catalog.NewService(recipeRepo)
	userService := user.NewService(userRepo)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, menuService, shoppingService, catalogService, userService)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
