// Package server boots the application: configuration, store connection,
// indexes, the dependency graph, and the HTTP server with graceful
// shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/nikkei/app/graphql"
	"github.com/shashiranjanraj/nikkei/app/repositories"
	"github.com/shashiranjanraj/nikkei/app/routes"
	"github.com/shashiranjanraj/nikkei/app/services"
	"github.com/shashiranjanraj/nikkei/config"
	"github.com/shashiranjanraj/nikkei/database/indexes"
	"github.com/shashiranjanraj/nikkei/pkg/database"
	"github.com/shashiranjanraj/nikkei/pkg/logger"
	"github.com/shashiranjanraj/nikkei/pkg/router"
)

// NewRouter builds the full dependency graph over db and returns the
// routed handler. Split out from Run so commands and tests can assemble
// the app without binding a listener.
func NewRouter(db *database.DB) (*router.Router, error) {
	profiles := repositories.NewProfileRepository(db)
	categories := repositories.NewCategoryRepository(db)
	products := repositories.NewProductRepository(db)
	users := repositories.NewUserRepository(db)
	clients := repositories.NewClientRepository(db)
	carts := repositories.NewCartRepository(db)
	orders := repositories.NewOrderRepository(db)

	deps := graphql.Deps{
		Profiles:   profiles,
		Categories: categories,
		Products:   products,
		Users:      users,
		Clients:    clients,
		Carts:      carts,
		Orders:     orders,

		ProfileService:  services.NewProfileService(profiles),
		CategoryService: services.NewCategoryService(categories),
		ProductService:  services.NewProductService(products, categories),
		UserService:     services.NewUserService(users, clients, profiles),
		ClientService:   services.NewClientService(clients),
		CartService:     services.NewCartService(carts, products),
		OrderService:    services.NewOrderService(orders, clients, products),
	}

	schema, err := graphql.NewSchema(deps)
	if err != nil {
		return nil, fmt.Errorf("server: build schema: %w", err)
	}

	r := router.New()
	routes.Register(r, schema, db)
	return r, nil
}

// Run starts the server and blocks until SIGINT/SIGTERM, then drains
// in-flight requests and closes the store connection.
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, config.MongoURI(), config.MongoDatabase())
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(closeCtx); err != nil {
			logger.Error("close entity store", "error", err)
		}
	}()

	if col := config.LogMongoCollection(); col != "" {
		sink := logger.AttachMongoSink(db.Collection(col))
		defer sink.Close()
	}

	if err := indexes.Ensure(ctx, db); err != nil {
		return err
	}

	r, err := NewRouter(db)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
