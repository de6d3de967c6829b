package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"invoice-status-api/internal/config"
	"invoice-status-api/internal/handlers"
	custommw "invoice-status-api/internal/middleware"
	"invoice-status-api/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	e := newServer(cfg, logger)

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("starting server",
			"addr", addr,
			"environment", cfg.Server.Environment,
			"upstream_url", cfg.Upstream.DataURL,
		)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err.Error())
		os.Exit(1)
	}
}

// newServer builds the Echo instance with all middleware, services, and
// routes wired
func newServer(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler

	e.Use(custommw.PanicRecovery())
	e.Use(custommw.RequestID())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, custommw.APIKeyHeader, custommw.TraceIDHeader},
	}))

	metrics := services.NewPrometheusMetrics()
	ledgerSource := services.NewLedgerService(&cfg.Upstream, logger, metrics)
	invoiceService := services.NewInvoiceService(ledgerSource, metrics)

	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	healthHandler := handlers.NewHealthCheckHandler(cfg)

	e.GET("/", invoiceHandler.GetRoot)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.POST("/invoice/status", invoiceHandler.InvoiceStatus, custommw.RequireAPIKey(cfg.Security.APIKey))

	if cfg.IsDevelopment() {
		devHandler := handlers.NewDevHandler()
		e.GET("/dev/data", devHandler.GetLedgerData)
		logger.Info("development data endpoint enabled", "path", "/dev/data")
	}

	return e
}
