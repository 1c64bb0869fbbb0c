package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/catalog"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/nikolayk812/storefront/internal/service"
	"github.com/nikolayk812/storefront/internal/session"
	"github.com/nikolayk812/storefront/internal/web"
	logx "github.com/nikolayk812/storefront/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		logx.Fatal().Err(err).Msg("storefront stopped")
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	logx.Init(logx.LoggerOpts{Environment: cfg.Environment})

	poolCfg, err := pgxpool.ParseConfig(cfg.Postgres.URL)
	if err != nil {
		return fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}
	poolCfg.MaxConns = cfg.Postgres.MaxConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return fmt.Errorf("pgxpool.NewWithConfig: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("pool.Ping: %w", err)
	}

	rdb, err := cfg.Redis.New(ctx)
	if err != nil {
		return fmt.Errorf("redis.New: %w", err)
	}
	defer rdb.Close()

	sessions := session.NewRedisStore(rdb, cfg.Session.TTL)

	svc := service.New(
		catalog.Default(cfg.Currency.Unit),
		repository.NewAccount(pool),
		repository.NewOrder(pool),
		sessions,
		service.WithLocker(session.NewRedisLocker(rdb), cfg.Checkout.LockTTL),
		service.WithCurrency(cfg.Currency.Unit),
	)

	handler := web.New(svc, sessions,
		web.CookieConfig{
			Name:   cfg.Session.Cookie,
			Secure: cfg.Session.Secure,
			TTL:    cfg.Session.TTL,
		},
		web.WithHealthCheck("postgres", pool.Ping),
		web.WithHealthCheck("redis", func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}),
	)

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler.Routes(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logx.Info().Str("addr", cfg.HTTP.Addr).Str("environment", cfg.Environment.String()).Msg("storefront listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("srv.ListenAndServe: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logx.Info().Dur("timeout", cfg.HTTP.ShutdownTimeout).Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown: %w", err)
	}

	return nil
}
