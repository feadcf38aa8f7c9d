// Package server boots the application: config, logging, database, the
// dependency graph, and the HTTP listener with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cafedelights/api/app/controllers"
	"github.com/cafedelights/api/app/repositories"
	"github.com/cafedelights/api/app/routes"
	"github.com/cafedelights/api/app/services"
	"github.com/cafedelights/api/config"
	"github.com/cafedelights/api/database/seeders"
	"github.com/cafedelights/api/pkg/auth"
	"github.com/cafedelights/api/pkg/bind"
	"github.com/cafedelights/api/pkg/database"
	"github.com/cafedelights/api/pkg/logger"
	"github.com/cafedelights/api/pkg/metrics"
	"github.com/cafedelights/api/pkg/middleware"
	"github.com/cafedelights/api/pkg/router"
)

const shutdownTimeout = 10 * time.Second

// Start runs the HTTP server until SIGINT/SIGTERM, then drains in-flight
// requests and disconnects from MongoDB.
func Start() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := database.Connect(ctx, cfg.MongoURL, cfg.DBName)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		client.Disconnect(ctx) //nolint:errcheck
	}()

	var mongoSink *logger.MongoHandler
	if cfg.LogMongo {
		mongoSink = logger.NewMongoHandler(db, database.ColLogs)
		defer mongoSink.Close()
		logger.Setup(cfg.AppEnv, mongoSink)
	} else {
		logger.Setup(cfg.AppEnv)
	}

	if err := database.EnsureIndexes(ctx, db); err != nil {
		return err
	}
	if err := seeders.RunAll(ctx, db); err != nil {
		return err
	}

	bind.SetMaxBodyBytes(cfg.MaxBodyBytes)

	r := buildRouter(cfg, db)
	r.HandleFunc("/metrics", metrics.Handler())

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.L.Info("server listening", "addr", srv.Addr, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.L.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Seed connects to MongoDB and runs every registered seeder once.
func Seed() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := database.Connect(ctx, cfg.MongoURL, cfg.DBName)
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background()) //nolint:errcheck

	if err := database.EnsureIndexes(ctx, db); err != nil {
		return err
	}
	return seeders.RunAll(ctx, db)
}

// buildRouter assembles the full dependency graph and mounts middleware
// and routes. Construction is explicit: repositories wrap the database
// handle, services wrap repositories, controllers wrap services.
func buildRouter(cfg *config.Config, db *mongo.Database) *router.Router {
	accounts := repositories.NewAccountRepository(db)
	products := repositories.NewProductRepository(db)
	orders := repositories.NewOrderRepository(db)
	reviews := repositories.NewReviewRepository(db)

	tokens := auth.NewTokenService(cfg.JWTSecret)
	authSvc := services.NewAuthService(accounts, tokens)
	catalogSvc := services.NewCatalogService(products)
	orderSvc := services.NewOrderService(orders, products)
	reviewSvc := services.NewReviewService(reviews, products)
	dashSvc := services.NewDashboardService(products, orders, accounts)

	r := router.New()
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		middleware.RequestID(),
		middleware.Logger,
		middleware.CORS(middleware.CORSForOrigins(cfg.CORSOrigins)),
	)

	routes.RegisterAPI(r, routes.Deps{
		Auth:      authSvc,
		Accounts:  controllers.NewAuthController(authSvc),
		Products:  controllers.NewProductController(catalogSvc),
		Orders:    controllers.NewOrderController(orderSvc),
		Reviews:   controllers.NewReviewController(reviewSvc),
		Dashboard: controllers.NewDashboardController(dashSvc),
	})
	return r
}
