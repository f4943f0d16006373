package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"makecents/docs"
	"makecents/internal/auth"
	"makecents/internal/cache"
	"makecents/internal/config"
	"makecents/internal/db"
	"makecents/internal/handler"
	"makecents/internal/repository"
	"makecents/internal/router"
	"makecents/internal/service"
)

// @title makecents API
// @version 1.0
// @description Personal expense tracking: accounts, categories, a soft-deletable ledger and monthly totals.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	if err := cfg.Validate(); err != nil {
		return err
	}

	hasher, err := auth.NewHasher(cfg.SessionSecret)
	if err != nil {
		return err
	}

	if cfg.ResetDB {
		slog.Warn("RESET_DB=true detected, dropping and re-creating all tables")
	}
	if err := db.RunMigrations(cfg.MySQLDSN, cfg.ResetDB); err != nil {
		return err
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		return err
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		slog.Warn("redis unavailable, serving without cache", "addr", cfg.RedisAddr, "error", err)
	}
	cancel()

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	expenseRepo := repository.NewExpenseRepository(gormDB)

	// Initialize services
	authenticator := auth.NewAuthenticator(hasher)
	authService := service.NewAuthService(userRepo, hasher, authenticator)
	userService := service.NewUserService(userRepo, cacheClient)
	categoryService := service.NewCategoryService(categoryRepo, cacheClient)
	ledgerService := service.NewLedgerService(expenseRepo, categoryRepo, cacheClient, nil)
	summaryService := service.NewSummaryService(ledgerService, cacheClient, nil)

	e := echo.New()
	e.HideBanner = true

	router.Register(
		e,
		authenticator,
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService, categoryService),
		handler.NewExpenseHandler(ledgerService),
		handler.NewCategoryHandler(categoryService),
		handler.NewSummaryHandler(summaryService),
	)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}
	slog.Info("swagger documentation available", "url", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.ServerPort
		slog.Info("listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
