package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/sunsafe/internal/domain/lookup"
	"github.com/yanqian/sunsafe/internal/domain/session"
	"github.com/yanqian/sunsafe/internal/infra/config"
	"github.com/yanqian/sunsafe/internal/infra/dataset"
	"github.com/yanqian/sunsafe/internal/infra/sessionstore"
)

// provideDataset loads the lookup tables once at startup. A source that fails
// to load is logged and replaced by the built-in tables.
func provideDataset(cfg *config.Config, logger *slog.Logger) (lookup.Dataset, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Dataset.LoadTimeout)
	defer cancel()

	fallback := dataset.NewBuiltin()
	source, name, release := selectDatasetSource(ctx, cfg, logger)
	defer release()

	if source != nil {
		data, err := source.Load(ctx)
		if err == nil {
			logger.Info("dataset loaded", "source", name)
			return data, nil
		}
		logger.Error("dataset load failed, using built-in tables", "source", name, "error", err)
	}
	return fallback.Load(ctx)
}

func selectDatasetSource(ctx context.Context, cfg *config.Config, logger *slog.Logger) (lookup.Source, string, func()) {
	noop := func() {}

	if dsn := strings.TrimSpace(cfg.Dataset.Postgres.DSN); dsn != "" {
		pool, err := openPostgres(ctx, cfg.Dataset.Postgres)
		if err != nil {
			logger.Error("postgres unavailable, trying next dataset source", "error", err)
		} else {
			return dataset.NewPostgresSource(pool), "postgres", pool.Close
		}
	}

	if store := cfg.Dataset.ObjectStore; store.Enabled() {
		src, err := dataset.NewObjectSource(store.Endpoint, store.AccessKey, store.SecretKey, store.Bucket, store.Region, store.Key, logger)
		if err != nil {
			logger.Error("invalid object store configuration, trying next dataset source", "error", err)
		} else {
			return src, "object_store", noop
		}
	}

	if path := strings.TrimSpace(cfg.Dataset.Path); path != "" {
		return dataset.NewFileSource(path), "file", noop
	}

	logger.Info("no dataset source configured, using built-in tables")
	return nil, "builtin", noop
}

func openPostgres(ctx context.Context, cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolConfig.MinConns = cfg.MinConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func provideSessionConfig(cfg *config.Config) session.Config {
	return session.Config{TTL: cfg.Session.TTL}
}

func provideSessionStore(cfg *config.Config, logger *slog.Logger) session.Store {
	if cfg.Session.Redis.Enabled {
		opt, err := buildValkeyOptions(cfg.Session.Redis.Addr)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return sessionstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return sessionstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
			client.Close()
		} else {
			logger.Info("session valkey store enabled", "addr", cfg.Session.Redis.Addr)
			return sessionstore.NewValkeyStore(client, cfg.Session.Prefix)
		}
	}
	return sessionstore.NewMemoryStore()
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
