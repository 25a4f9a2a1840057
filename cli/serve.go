package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"track-roi/config"
	httpLayer "track-roi/http"
	"track-roi/logger"
	"track-roi/repository"
	"track-roi/service"
)

const redisPingTimeout = 3 * time.Second

func newServeCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the projection HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, root.cfg)
		},
	}
}

func runServe(ctx context.Context, cfg *config.Config) error {
	limiter, stopLimiter := buildLimiter(ctx, cfg)
	defer stopLimiter()

	projectionService := service.NewProjectionService()
	router := httpLayer.NewRouter(
		httpLayer.NewProjectionHandler(projectionService),
		httpLayer.NewCatalogHandler(projectionService),
		httpLayer.RouterConfig{
			CORSOrigins: cfg.Server.CORSOrigins,
			Limiter:     limiter,
		},
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("API listening on http://%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("Server exited")
	return nil
}

// buildLimiter returns the configured rate limiter and its cleanup. The
// redis backend falls back to in-memory counters when Redis is unreachable
// at startup.
func buildLimiter(ctx context.Context, cfg *config.Config) (httpLayer.Limiter, func()) {
	rl := cfg.RateLimit
	if !rl.Enabled {
		logger.Debug("Rate limiting disabled")
		return nil, func() {}
	}

	if rl.Backend != "redis" {
		limiter := httpLayer.NewRateLimiter(rl.Capacity, rl.Window)
		return limiter, limiter.Stop
	}

	counter := repository.NewRedisCounter(repository.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := counter.Ping(pingCtx); err != nil {
		logger.Warn("Redis unavailable at %s, using in-memory rate limit counters: %v", cfg.Redis.Addr, err)
		if closeErr := counter.Close(); closeErr != nil {
			logger.Warn("Failed to close redis client: %v", closeErr)
		}
		limiter := httpLayer.NewWindowLimiter(repository.NewMemoryCounter(), rl.Capacity, rl.Window, cfg.Redis.KeyPrefix)
		return limiter, limiter.Stop
	}

	logger.Info("Rate limiting calculate requests via redis at %s (%d per %v)", cfg.Redis.Addr, rl.Capacity, rl.Window)
	limiter := httpLayer.NewWindowLimiter(counter, rl.Capacity, rl.Window, cfg.Redis.KeyPrefix)
	return limiter, func() {
		limiter.Stop()
		if err := counter.Close(); err != nil {
			logger.Warn("Failed to close redis client: %v", err)
		}
	}
}
