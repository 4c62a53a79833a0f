// Package server owns the process lifecycle: it connects the backing
// services, serves HTTP and gRPC, and shuts both down on SIGINT or SIGTERM.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/stockroom/config"
	"github.com/shashiranjanraj/stockroom/internal/kernel"
	"github.com/shashiranjanraj/stockroom/pkg/cache"
	"github.com/shashiranjanraj/stockroom/pkg/crypt"
	"github.com/shashiranjanraj/stockroom/pkg/database"
	"github.com/shashiranjanraj/stockroom/pkg/flash"
	"github.com/shashiranjanraj/stockroom/pkg/grpc"
	"github.com/shashiranjanraj/stockroom/pkg/logger"
	"github.com/shashiranjanraj/stockroom/pkg/middleware"
)

const shutdownTimeout = 30 * time.Second

// Start runs until the process is signalled.
func Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return Run(ctx)
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context) error {
	if err := config.Load(); err != nil {
		return err
	}

	closeLogs := setupLogging(ctx)
	defer closeLogs()

	if config.IsProduction() && config.AppKeyIsDefault() {
		return errors.New("server: APP_KEY must be set in production")
	}

	db, err := database.Connect()
	if err != nil {
		return err
	}
	defer database.Close(db) //nolint:errcheck

	limiter, closeLimiter := buildLimiter(ctx)
	defer closeLimiter()

	k, err := kernel.NewHTTPKernel(kernel.Deps{
		DB:      db,
		Flash:   flash.New(crypt.New(config.AppKey()), flash.DefaultOptions()),
		Limiter: limiter,
	})
	if err != nil {
		return err
	}

	grpcSrv, err := grpc.Start(config.GRPCPort(), dbChecker(db))
	if err != nil {
		return err
	}
	defer grpc.Stop(grpcSrv)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           k.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "addr", srv.Addr, "env", config.AppEnv(), "db", config.DatabaseDriver())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	logger.Info("HTTP server stopped")
	return nil
}

// setupLogging installs the stdout logger and, when LOG_MONGO_URI is set,
// mirrors records into MongoDB.
func setupLogging(ctx context.Context) func() {
	uri := config.LogMongoURI()
	if uri == "" {
		logger.Setup(os.Stdout, config.AppEnv())
		return func() {}
	}

	mh, err := logger.NewMongoHandler(ctx, uri, config.LogMongoDB(), "logs", config.AppName(), slog.LevelInfo)
	if err != nil {
		logger.Setup(os.Stdout, config.AppEnv())
		logger.Warn("mongo log sink unavailable", "error", err)
		return func() {}
	}

	logger.Setup(os.Stdout, config.AppEnv(), mh)
	return func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mh.Close(closeCtx)
	}
}

// buildLimiter shares the rate-limit budget through Redis when REDIS_ADDR
// is set and reachable, and falls back to a per-process limiter otherwise.
func buildLimiter(ctx context.Context) (middleware.Limiter, func()) {
	perMinute := config.RateLimitPerMinute()
	if perMinute <= 0 {
		return nil, func() {}
	}

	if addr := config.RedisAddr(); addr != "" {
		rdb, err := cache.Connect(ctx, addr, config.RedisPassword())
		if err == nil {
			logger.Info("rate limiter using redis", "addr", addr)
			return middleware.NewRedisLimiter(rdb, perMinute, time.Minute), closeRedis(rdb)
		}
		logger.Warn("redis unavailable, rate limiting per process", "error", err)
	}

	mem := middleware.NewMemoryLimiter(perMinute, time.Minute)
	go mem.Janitor(ctx)
	return mem, func() {}
}

func closeRedis(rdb *redis.Client) func() {
	return func() { _ = rdb.Close() }
}

func dbChecker(db *gorm.DB) grpc.Checker {
	return func(ctx context.Context) error {
		return database.Ping(ctx, db)
	}
}
