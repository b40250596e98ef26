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

	"github.com/spf13/cobra"

	"github.com/couchcryptid/parks-dashboard/internal/config"
	"github.com/couchcryptid/parks-dashboard/internal/dataset"
	"github.com/couchcryptid/parks-dashboard/internal/geo"
	"github.com/couchcryptid/parks-dashboard/internal/observability"
	"github.com/couchcryptid/parks-dashboard/internal/report"
	"github.com/couchcryptid/parks-dashboard/internal/server"
)

var (
	addrFlag string
	dataFlag string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "parks-dashboard",
		Short: "Serve the Lebanon public-spaces survey dashboard",
		Long: `parks-dashboard loads the Public_spaces-Lebanon-2023 survey CSV once at
startup, derives area and condition fields, and serves JSON aggregation
endpoints plus a small dashboard page.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return run()
		},
	}

	rootCmd.Flags().StringVar(&addrFlag, "addr", "", "Listen address (overrides HTTP_ADDR)")
	rootCmd.Flags().StringVar(&dataFlag, "data", "", "Survey CSV path (overrides DATA_FILE)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return err
	}
	if addrFlag != "" {
		cfg.HTTPAddr = addrFlag
	}
	if dataFlag != "" {
		cfg.DataFile = dataFlag
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	start := time.Now()
	snapshot, err := dataset.Load(cfg.DataFile)
	if err != nil {
		logger.Error("failed to load dataset", "error", err, "path", cfg.DataFile)
		return err
	}
	metrics.LoadDuration.Set(time.Since(start).Seconds())
	metrics.DatasetRows.Set(float64(len(snapshot.Records)))
	metrics.DatasetReady.Set(1)

	mapping := geo.BuildTownMapping(snapshot.Records)
	reports := report.New(snapshot, mapping, cfg.ReportCacheSize, metrics)

	logger.Info("dataset loaded",
		"path", cfg.DataFile,
		"rows", len(snapshot.Records),
		"towns", len(mapping.Towns),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	srv := server.NewServer(cfg.HTTPAddr, snapshot, mapping, reports, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	metrics.DatasetReady.Set(0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
	return nil
}
