package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/clnass/creator-service/internal/config"
	"github.com/clnass/creator-service/internal/metrics"
	creatorsvc "github.com/clnass/creator-service/internal/services/creator"
	"github.com/clnass/creator-service/internal/services/media"
	"github.com/clnass/creator-service/internal/storage/postgres"
)

type sweeper interface {
	SweepStaleDrafts(ctx context.Context, cutoff time.Time) (int, error)
}

// DraftSweeper periodically deletes drafts nobody has edited within ttl.
type DraftSweeper struct {
	service  sweeper
	interval time.Duration
	ttl      time.Duration
	logger   *slog.Logger
	now      func() time.Time
}

func NewDraftSweeper(service sweeper, interval, ttl time.Duration, logger *slog.Logger) *DraftSweeper {
	return &DraftSweeper{
		service:  service,
		interval: interval,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}
}

func (ds *DraftSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(ds.interval)
	defer ticker.Stop()

	ds.logger.Info("Draft sweeper started",
		"interval", ds.interval.String(),
		"draft_ttl", ds.ttl.String())

	// Run once immediately on startup
	ds.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			ds.logger.Info("Draft sweeper shutting down")
			return
		case <-ticker.C:
			ds.sweep(ctx)
		}
	}
}

func (ds *DraftSweeper) sweep(ctx context.Context) int {
	startTime := time.Now()
	cutoff := ds.now().Add(-ds.ttl)

	count, err := ds.service.SweepStaleDrafts(ctx, cutoff)
	if err != nil {
		ds.logger.Error("Failed to sweep stale drafts",
			"error", err.Error(),
			"drafts_deleted", count,
			"duration_ms", time.Since(startTime).Milliseconds())
		return count
	}

	duration := time.Since(startTime)
	ds.logger.Info("Completed stale draft sweep",
		"drafts_deleted", count,
		"cutoff", cutoff.Format(time.RFC3339),
		"duration_ms", duration.Milliseconds())
	return count
}

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	storage, err := postgres.NewPostgres(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer storage.Close()

	observer, err := metrics.NewUploadObserver(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal("Failed to register storage metrics:", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mediaService, err := media.NewService(ctx, cfg, observer)
	if err != nil {
		log.Fatal("Failed to initialize media service:", err)
	}

	service := creatorsvc.New(storage, mediaService, nil, logger)
	worker := NewDraftSweeper(service, cfg.Sweeper.Interval, cfg.Sweeper.DraftTTL, logger)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		slog.Info("Received shutdown signal")
		cancel()
	}()

	worker.Start(ctx)

	slog.Info("Draft sweeper stopped")
}
