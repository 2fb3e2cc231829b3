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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"foundhex-site/pkg/api"
	"foundhex-site/pkg/clients/airtable"
	"foundhex-site/pkg/clients/repx"
	"foundhex-site/pkg/config"
	"foundhex-site/pkg/middleware"
	"foundhex-site/pkg/services"
	"foundhex-site/pkg/telemetry"
)

func main() {
	err := godotenv.Load()

	// Initialize configuration
	cfg := config.LoadConfig()
	telemetry.SetupLogger(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		slog.Info("no .env file loaded, using environment")
	}

	// Initialize API clients
	repxClient := repx.NewClient(cfg.APIURL, &http.Client{Timeout: cfg.APITimeout})

	var airtableClient airtable.Client
	if cfg.AirtableEnabled() {
		airtableClient = airtable.NewClient(cfg.AirtableAPIKey, cfg.AirtableBaseID)
	} else {
		slog.Warn("airtable is not configured, demo bookings are simulated")
	}

	// Initialize services
	signupService := services.NewSignupService(repxClient, cfg.SessionTTL)
	defer signupService.Stop()
	demoService := services.NewDemoBookingService(airtableClient, cfg.AirtableDemoTable, cfg.DemoSimulatedDelay)

	var limiter *middleware.RateLimiter
	if cfg.RateLimitEnabled() {
		limiter = middleware.NewRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst)
		defer limiter.Stop()
	} else {
		slog.Warn("rate limiting is disabled")
	}

	gin.SetMode(cfg.GinMode)

	router := api.NewRouter(api.RouterDeps{
		SignupService:  signupService,
		DemoService:    demoService,
		RateLimiter:    limiter,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		SessionTTL:     cfg.SessionTTL,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start the server
	go func() {
		slog.Info("server starting", "port", cfg.Port, "api_url", cfg.APIURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("error starting server", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	// Give in-flight signups as long as the API timeout to finish
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.APITimeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("error during shutdown", "error", err)
	}
}
