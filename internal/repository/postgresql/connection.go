package postgresql

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/egrid_loader/internal/config"
)

const (
	maxRetries     = 5
	retryBaseDelay = 2 * time.Second
	retryMaxDelay  = 30 * time.Second
)

func ConnectionURL(cfg config.PostgreSQL) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return (&url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.Username, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     cfg.DBName,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}).String()
}

func NewConnection(ctx context.Context, log *slog.Logger, cfg config.PostgreSQL) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(ConnectionURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pool config: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = int32(cfg.MaxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	retry := Retry(log, pool.Ping, maxRetries, retryBaseDelay, retryMaxDelay)

	if err := retry(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping pool: %w", err)
	}

	log.InfoContext(ctx, "connected to postgresql",
		slog.String("host", cfg.Host),
		slog.String("db", cfg.DBName),
		slog.Int("max_conns", int(poolConfig.MaxConns)))

	return pool, nil
}

type PingFunction func(context.Context) error

// Retry calls ping up to retries+1 times, doubling the delay after every
// failure up to maxDelay.
func Retry(log *slog.Logger, ping PingFunction, retries int, delay, maxDelay time.Duration) PingFunction {
	return func(ctx context.Context) error {
		wait := delay
		for r := 0; ; r++ {
			err := ping(ctx)
			if err == nil || r >= retries {
				return err
			}

			log.Debug("database connection attempt failed, retrying",
				slog.Int("attempt", r+1),
				slog.Int("max_retries", retries),
				slog.Duration("wait", wait),
				slog.String("err", err.Error()))

			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return ctx.Err()
			}

			wait = min(wait*2, maxDelay)
		}
	}
}
