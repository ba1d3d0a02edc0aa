package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"retirement-calc/config"
	httpLayer "retirement-calc/http"
	"retirement-calc/logger"
	"retirement-calc/repository"
	"retirement-calc/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the calculator HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	logger.SetDefault(log)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cache, closeCache, err := newCache(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeCache()

	retirementService := service.NewRetirementService(cache, log)
	retirementHandler := httpLayer.NewRetirementHandler(retirementService)
	docsHandler := httpLayer.NewDocsHandler(
		httpLayer.NewSwaggerDoc(cfg.Server.APIHost, cfg.Server.APIBasePath),
	)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Refill.Duration)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpLayer.NewRouter(retirementHandler, docsHandler, rateLimiter, log),
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
		IdleTimeout:  cfg.Server.IdleTimeout.Duration,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("retirement calc listening", "addr", server.Addr, "cache", cfg.Cache.Backend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("starting server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("during server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped", logger.FieldError, err)
		return err
	}
	log.Info("server exited")
	return nil
}

// newCache builds the configured result cache and its cleanup func.
func newCache(
	ctx context.Context,
	cfg *config.Config,
	log *logger.Logger,
) (repository.CacheRepository, func(), error) {
	cacheLog := log.WithComponent(logger.ComponentCache)

	switch cfg.Cache.Backend {
	case config.CacheRedis:
		rc := repository.NewRedisCache(repository.RedisOptions{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
			TTL:      cfg.Cache.TTL.Duration,
			Logger:   cacheLog,
		})
		if err := rc.Ping(ctx); err != nil {
			_ = rc.Close()
			return nil, nil, err
		}
		cacheLog.Info("using redis cache", "addr", cfg.Cache.RedisAddr, "ttl", rc.TTL())
		return rc, func() {
			if err := rc.Close(); err != nil {
				cacheLog.Warn("closing redis", logger.FieldError, err)
			}
		}, nil
	case config.CacheNone:
		cacheLog.Info("result cache disabled")
		return repository.NoopCache{}, func() {}, nil
	default:
		return repository.NewMemoryCache(cfg.Cache.MaxEntries, cfg.Cache.TTL.Duration), func() {}, nil
	}
}
