package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joeynweke/restaurant-dashboard/internal/cart"
	"github.com/joeynweke/restaurant-dashboard/internal/catalog"
	"github.com/joeynweke/restaurant-dashboard/internal/config"
	"github.com/joeynweke/restaurant-dashboard/internal/order"
	"github.com/joeynweke/restaurant-dashboard/internal/port"
	"github.com/joeynweke/restaurant-dashboard/internal/repository"
	"github.com/joeynweke/restaurant-dashboard/internal/terminal"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	defer logger.Sync() //nolint:errcheck

	if err := run(cfg, logger); err != nil {
		logger.Error("session ended", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, closeStore, err := openStore(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("openStore: %w", err)
	}
	defer closeStore()

	logger.Info("cart storage ready",
		zap.String("driver", cfg.Store.Driver),
		zap.Stringer("device_id", cfg.Store.DeviceID))

	persister := cart.NewPersister(kv, logger, cart.WithWriteTimeout(cfg.Store.WriteTimeout))
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.Store.WriteTimeout+time.Second)
		defer cancel()

		if err := persister.Close(flushCtx); err != nil {
			logger.Warn("flush cart", zap.Error(err))
		}
	}()

	store := cart.NewStore()
	store.Restore(cart.Load(ctx, kv, logger))
	store.Subscribe(persister.Commit)

	formatter := order.NewFormatter(cfg.Handoff.Destination, order.WithBaseURL(cfg.Handoff.BaseURL))

	session := terminal.NewSession(store, catalog.Fixed{}, formatter, os.Stdout)

	// unblock the pending read on interrupt
	go func() {
		<-ctx.Done()
		_ = os.Stdin.Close()
	}()

	err = session.Run(ctx, os.Stdin)
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("session.Run: %w", err)
	}

	return nil
}

func openStore(ctx context.Context, cfg config.StoreConfig) (port.KeyValueStore, func(), error) {
	if cfg.Driver != config.DriverPostgres {
		return repository.NewMemory(), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("pool.Ping: %w", err)
	}

	kv, err := repository.NewKeyValue(pool, cfg.DeviceID)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("repository.NewKeyValue: %w", err)
	}

	return kv, pool.Close, nil
}

func newLogger(cfg *config.Config) *zap.Logger {
	// both configs write to stderr, stdout belongs to the session
	if cfg.Development() {
		return zap.Must(zap.NewDevelopment())
	}
	return zap.Must(zap.NewProduction())
}
