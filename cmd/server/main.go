package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/micromarket/backend/internal/config"
	"github.com/micromarket/backend/internal/db"
	"github.com/micromarket/backend/internal/events"
	"github.com/micromarket/backend/internal/httpserver"
	"github.com/micromarket/backend/internal/logging"
	"github.com/micromarket/backend/internal/middleware"
	"github.com/micromarket/backend/internal/repo"
	"github.com/micromarket/backend/internal/service"
)

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel)

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORS())
	e.Use(middleware.RequestLogger(logger))

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Open(initCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	store := &repo.GormRepo{DB: database}

	authService := &service.AuthService{Repo: store, JWTSecret: cfg.JWTSecret, Producer: producer}
	catalogService := &service.CatalogService{Repo: store}
	cartService := &service.CartService{Repo: store, Producer: producer}
	demoService := &service.DemoService{Repo: store}

	httpserver.Register(e, &httpserver.Deps{
		Repo:           store,
		AuthHandler:    &httpserver.AuthHTTP{Svc: authService},
		CatalogHandler: &httpserver.CatalogHTTP{Svc: catalogService},
		CartHandler:    &httpserver.CartHTTP{Svc: cartService},
		DemoHandler:    &httpserver.DemoHTTP{Svc: demoService},
		JWTSecret:      cfg.JWTSecret,
	})

	go func() {
		logger.Info("starting server", "port", cfg.ServerPort)
		if err := e.Start(fmt.Sprintf(":%d", cfg.ServerPort)); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo shutdown", "error", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Info("server stopped")
}
