// Command signup creates a RepX organization from the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"foundhex-site/pkg/clients/repx"
	"foundhex-site/pkg/config"
	"foundhex-site/pkg/telemetry"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	apiURL := flag.String("api-url", cfg.APIURL, "RepX API base URL")
	logLevel := flag.String("log-level", "warn", "log level written to stderr")
	flag.Parse()

	slog.SetDefault(telemetry.NewLogger(os.Stderr, cfg.LogFormat, *logLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	creator := repx.NewClient(*apiURL, &http.Client{Timeout: cfg.APITimeout})
	_, err := runWizard(ctx, newSurveyDriver(os.Stdout), creator)
	switch {
	case err == nil:
	case errors.Is(err, ErrAborted), errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stderr, "signup aborted")
		os.Exit(130)
	default:
		fmt.Fprintln(os.Stderr, "signup failed:", err)
		os.Exit(1)
	}
}
