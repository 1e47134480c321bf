// cmd/changeover-spc/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dco-tools/changeover-spc/pkg/analysis"
	"github.com/dco-tools/changeover-spc/pkg/config"
	"github.com/dco-tools/changeover-spc/pkg/dataset"
	"github.com/dco-tools/changeover-spc/pkg/model"
	"github.com/dco-tools/changeover-spc/pkg/server"
)

func main() {
	batchPath := flag.String("batch", "", "path to the batch dataset (.xlsx/.csv); with -activity runs once and prints the report")
	activityPath := flag.String("activity", "", "path to the activity dataset (.xlsx/.csv)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := analysis.NewMetrics(prometheus.DefaultRegisterer)
	analyzer, err := analysis.NewAnalyzer(logger, metrics)
	if err != nil {
		logger.Fatal("Failed to create analyzer", zap.Error(err))
	}

	if *batchPath != "" || *activityPath != "" {
		if err := runOnce(analyzer, cfg, *batchPath, *activityPath); err != nil {
			logger.Fatal("Analysis failed", zap.Error(err))
		}
		return
	}

	serve(logger, cfg, analyzer)
}

// runOnce analyzes the given files and writes the JSON report to stdout.
func runOnce(analyzer *analysis.Analyzer, cfg *config.Config, batchPath, activityPath string) error {
	var (
		batch    []model.BatchRecord
		activity []model.ActivityRecord
	)

	if batchPath != "" {
		table, err := readTable(batchPath)
		if err != nil {
			return fmt.Errorf("batch dataset: %w", err)
		}
		if batch, err = dataset.BatchRecords(table); err != nil {
			return fmt.Errorf("batch dataset: %w", err)
		}
	}
	if activityPath != "" {
		table, err := readTable(activityPath)
		if err != nil {
			return fmt.Errorf("activity dataset: %w", err)
		}
		if activity, err = dataset.ActivityRecords(table); err != nil {
			return fmt.Errorf("activity dataset: %w", err)
		}
	}

	report := analyzer.Run(batch, activity, analysis.OptionsFromConfig(cfg))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func readTable(path string) (*dataset.Table, error) {
	source, err := dataset.Open(path)
	if err != nil {
		return nil, err
	}
	return source.Read()
}

func serve(logger *zap.Logger, cfg *config.Config, analyzer *analysis.Analyzer) {
	srv, err := server.New(cfg, logger, analyzer)
	if err != nil {
		logger.Fatal("Failed to create server", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("Server error", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Shutdown error", zap.Error(err))
		}
	}
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.LogFormat == "console" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
