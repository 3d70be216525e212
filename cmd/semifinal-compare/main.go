package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/preston-bernstein/semifinal-compare/internal/app/comparison"
	"github.com/preston-bernstein/semifinal-compare/internal/config"
	"github.com/preston-bernstein/semifinal-compare/internal/logging"
	"github.com/preston-bernstein/semifinal-compare/internal/metrics"
	"github.com/preston-bernstein/semifinal-compare/internal/snapshots"
)

const (
	appName    = "semifinal-compare"
	appVersion = "dev"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: appName,
		Version: appVersion,
	})

	teams, err := config.DefaultTeams()
	if err != nil {
		return err
	}

	rec, gatherer, shutdown, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return fmt.Errorf("metrics setup: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logging.Warn(logger, "metrics shutdown failed", "error", err)
		}
	}()

	svc := comparison.NewService(snapshots.NewFSStore(), snapshots.LayoutFromConfig(cfg), stdout, logger, rec)
	if err := svc.Run(ctx, teams); err != nil {
		return err
	}

	if gatherer != nil && cfg.Metrics.Textfile != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile, gatherer); err != nil {
			logging.Error(logger, "metrics export failed", err, logging.FieldPath, cfg.Metrics.Textfile)
		}
	}
	return nil
}
