// @title           Creator Service API
// @version         1.0
// @description     Four-stage course creation wizard with draft promotion.
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/clnass/creator-service/docs"
	"github.com/clnass/creator-service/internal/cache"
	"github.com/clnass/creator-service/internal/config"
	creatorhandlers "github.com/clnass/creator-service/internal/http/handlers/creator"
	"github.com/clnass/creator-service/internal/http/middleware"
	"github.com/clnass/creator-service/internal/metrics"
	creatorsvc "github.com/clnass/creator-service/internal/services/creator"
	"github.com/clnass/creator-service/internal/services/media"
	"github.com/clnass/creator-service/internal/storage/postgres"
)

func main() {
	// load config
	cfg := config.MustLoad()

	logger := newLogger(cfg.Env)
	slog.SetDefault(logger)

	// database setup
	storage, err := postgres.NewPostgres(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer storage.Close()

	observer, err := metrics.NewUploadObserver(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal("Failed to register storage metrics:", err)
	}
	httpMetrics, err := metrics.NewHTTP(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal("Failed to register http metrics:", err)
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), 10*time.Second)
	mediaService, err := media.NewService(startCtx, cfg, observer)
	cancelStart()
	if err != nil {
		log.Fatal("Failed to initialize media service:", err)
	}

	// setup router
	router := http.NewServeMux()
	protect := middleware.AuthMiddleware(cfg.JWTSecret)

	var catalog creatorsvc.CatalogReader
	if cfg.Redis.Address != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			slog.Warn("redis unreachable, catalog cache and rate limits degrade to pass-through", slog.String("error", err.Error()))
		}

		catalog = cache.NewCatalogCache(creatorsvc.StoreCatalog{Store: storage}, redisClient, cfg.Cache.CatalogTTL, logger)

		limits := middleware.NewRateLimitConfig(redisClient, cfg.RateLimit)
		auth := protect
		protect = func(next http.Handler) http.Handler {
			return middleware.Chain(next, auth, limits.RateLimitMiddleware(middleware.ActionCreator))
		}

		router.HandleFunc("GET /debug/cache", cache.GetCacheStats(redisClient))
	}

	service := creatorsvc.New(storage, mediaService, catalog, logger)
	creatorhandlers.New(service, cfg.Media.MaxMemory, cfg.Media.MaxRequestSize, logger).Register(router, protect, httpMetrics.Wrap)

	router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	router.Handle("GET /metrics", promhttp.Handler())

	docs.SwaggerInfo.Host = cfg.HTTPServer.Address
	router.Handle("GET /swagger/", httpSwagger.WrapHandler)

	server := http.Server{
		Addr:              cfg.HTTPServer.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("server started", slog.String("address", cfg.HTTPServer.Address))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %s", err)
		}
	}()

	<-done

	slog.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = server.Shutdown(ctx)
	if err != nil {
		slog.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
		return
	}

	slog.Info("Server stopped")
}

func newLogger(env string) *slog.Logger {
	level := slog.LevelInfo
	if env == "local" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
