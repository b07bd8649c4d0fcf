// cmd/scraper/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"ui-registry-scraper/internal/common/cache"
	"ui-registry-scraper/internal/common/config"
	httpclient "ui-registry-scraper/internal/common/http"
	"ui-registry-scraper/internal/common/logger"
	"ui-registry-scraper/internal/common/metrics"
	"ui-registry-scraper/internal/common/observability"
	collect "ui-registry-scraper/internal/scraper/collect-components"
	"ui-registry-scraper/internal/scraper/runner"
)

// The process always exits 0: registry failures, component failures and
// interruption are reported through the log only.
func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "console", "stdout")
		bootLog.Error("config load failed", zap.Error(err))
		bootLog.Sync()
		return
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting registry scraper...",
		zap.String("registry", cfg.Registry.BaseURL),
		zap.String("output", cfg.Output.Path),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Optional payload cache ---
	var payloadCache collect.PayloadCache
	if cfg.Cache.Enabled {
		rc := cache.NewRedis(cfg.Cache)
		if err := rc.Ping(ctx); err != nil {
			zapLog.Warn("redis unavailable, continuing without cache", zap.Error(err))
			rc.Close()
		} else {
			defer rc.Close()
			payloadCache = rc
			zapLog.Info("Redis cache connected", zap.String("address", cfg.Cache.Address))
		}
	}

	client := httpclient.NewClient(config.GetDuration(cfg.Registry.Timeout), cfg.Registry.UserAgent)

	summary, err := runner.New(runner.FromAppConfig(cfg), client, payloadCache, obs, log).Run(ctx)
	if err != nil {
		zapLog.Error("run finished with error", zap.Error(err))
	}
	if summary != nil {
		zapLog.Info("run summary",
			zap.String("runId", summary.RunID),
			zap.Int("listed", summary.Listed),
			zap.Int("processed", len(summary.Results)),
		)
	}

	if cfg.Metrics.Textfile != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			zapLog.Warn("metrics textfile write failed", zap.Error(err))
		}
	}
}
