package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ekarimov/restoran/internal/config"
	"github.com/ekarimov/restoran/internal/events"
	"github.com/ekarimov/restoran/internal/httpserver"
	"github.com/ekarimov/restoran/internal/logging"
	loggingmw "github.com/ekarimov/restoran/internal/middleware/logging"
	"github.com/ekarimov/restoran/internal/models"
	"github.com/ekarimov/restoran/internal/repo"
	"github.com/ekarimov/restoran/internal/search"
	"github.com/ekarimov/restoran/internal/service"
	"github.com/ekarimov/restoran/pkg/db"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)

	ctx := context.Background()

	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}
	if err := gdb.AutoMigrate(
		&models.Product{},
		&models.Admin{},
		&models.Order{},
		&models.OrderItem{},
		&models.CartLine{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)
	if producer == nil {
		logger.Warn("kafka disabled, KAFKA_BROKERS not set")
	}

	var index *search.Index
	if cfg.ESURL != "" {
		esClient, err := search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			logger.Warn("search disabled", "error", err)
		} else {
			index = search.NewIndex(esClient, "products")
		}
	} else {
		logger.Warn("search disabled, ES_URL not set")
	}

	r := &repo.GormRepo{DB: gdb}

	adminSvc := &service.AdminService{Repo: r, JWTSecret: cfg.JWTSecret}
	if err := adminSvc.EnsureSeedAdmin(
		logging.IntoContext(ctx, logger),
		cfg.SeedAdminName, cfg.SeedAdminIDCard, cfg.SeedAdminPassword,
	); err != nil {
		log.Fatalf("seed admin error: %v", err)
	}

	deps := &httpserver.Deps{
		Catalog:   &httpserver.CatalogHTTP{Svc: &service.CatalogService{Repo: r, Producer: producer, Index: index}},
		Cart:      &httpserver.CartHTTP{Svc: &service.CartService{Repo: r}},
		Orders:    &httpserver.OrderHTTP{Checkout: &service.CheckoutService{Repo: r, Producer: producer}, Orders: &service.OrderService{Repo: r}},
		Admins:    &httpserver.AdminHTTP{Svc: adminSvc},
		Search:    &httpserver.SearchHTTP{Index: index},
		JWTSecret: cfg.JWTSecret,
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger))

	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()
	logger.Info("server started", "port", cfg.ServerPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := gdb.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
