package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/egrid_loader/internal/app"
	"github.com/kurochkinivan/egrid_loader/internal/config"
	"github.com/kurochkinivan/egrid_loader/internal/domain"
	"github.com/kurochkinivan/egrid_loader/internal/infrastructure/notifier"
	"github.com/kurochkinivan/egrid_loader/internal/repository/redis"
	"github.com/nats-io/nats.go"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "egrid_loader",
		Usage:   "eGRID CSV ingestion pipeline",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cfg := config.Load(cmd)

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var config string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.StringFlag{
			Name:      "reports-dir",
			Aliases:   []string{"r"},
			Usage:     "Set directory to write PDF run reports to, empty disables them",
			Value:     "output",
			Sources:   cli.NewValueSourceChain(yaml.YAML("app.reports_dir", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateDirectory,
		},
		&cli.DurationFlag{
			Name:      "run-interval",
			Aliases:   []string{"i"},
			Usage:     "Set interval between scheduled runs",
			Value:     time.Hour,
			Sources:   cli.NewValueSourceChain(yaml.YAML("app.run_interval", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateInterval,
		},
		&cli.BoolFlag{
			Name:    "run-on-start",
			Usage:   "Run the pipeline once right after start",
			Value:   true,
			Sources: cli.NewValueSourceChain(yaml.YAML("app.run_on_start", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.BoolFlag{
			Name:    "once",
			Usage:   "Run the pipeline once and exit",
			Sources: cli.NewValueSourceChain(yaml.YAML("app.once", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "table",
			Usage:   "Set destination table",
			Value:   domain.DefaultRecordsTable,
			Sources: cli.NewValueSourceChain(yaml.YAML("pipeline.table", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:      "temp-dir",
			Usage:     "Set directory for downloaded files, system default if empty",
			Sources:   cli.NewValueSourceChain(yaml.YAML("pipeline.temp_dir", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateDirectory,
		},
		&cli.IntFlag{
			Name:      "chunk-size",
			Usage:     "Set number of rows loaded per insert",
			Value:     domain.DefaultChunkSize,
			Sources:   cli.NewValueSourceChain(yaml.YAML("pipeline.chunk_size", altsrc.NewStringPtrSourcer(&config))),
			Validator: validatePositive,
		},
		&cli.IntFlag{
			Name:      "sample-size",
			Usage:     "Set number of leading bytes read to validate a file",
			Value:     domain.DefaultSampleSize,
			Sources:   cli.NewValueSourceChain(yaml.YAML("pipeline.sample_size", altsrc.NewStringPtrSourcer(&config))),
			Validator: validatePositive,
		},
		&cli.IntFlag{
			Name:      "min-valid-year",
			Usage:     "Set earliest accepted data year",
			Value:     domain.DefaultMinValidYear,
			Sources:   cli.NewValueSourceChain(yaml.YAML("pipeline.min_valid_year", altsrc.NewStringPtrSourcer(&config))),
			Validator: validatePositive,
		},
		&cli.FloatFlag{
			Name:    "max-net-generation",
			Usage:   "Set upper bound for net generation values",
			Value:   domain.DefaultMaxNetGeneration,
			Sources: cli.NewValueSourceChain(yaml.YAML("pipeline.max_net_generation", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.IntFlag{
			Name:      "avg-row-size",
			Usage:     "Set average row size in bytes used to estimate record counts",
			Value:     domain.DefaultAvgRowSize,
			Sources:   cli.NewValueSourceChain(yaml.YAML("pipeline.avg_row_size", altsrc.NewStringPtrSourcer(&config))),
			Validator: validatePositive,
		},
		&cli.BoolFlag{
			Name:    "skip-loaded",
			Usage:   "Skip files already loaded with the same modification time",
			Sources: cli.NewValueSourceChain(yaml.YAML("pipeline.skip_loaded", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:     "minio-endpoint",
			Usage:    "Set MinIO endpoint",
			Value:    "localhost:9000",
			Sources:  cli.NewValueSourceChain(yaml.YAML("minio.endpoint", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "minio-access-key",
			Usage:    "Set MinIO access key",
			Sources:  cli.NewValueSourceChain(yaml.YAML("minio.access_key", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "minio-secret-key",
			Usage:    "Set MinIO secret key",
			Sources:  cli.NewValueSourceChain(yaml.YAML("minio.secret_key", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "minio-bucket",
			Usage:    "Set bucket holding the source files",
			Value:    "egrid-data",
			Sources:  cli.NewValueSourceChain(yaml.YAML("minio.bucket", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "minio-prefix",
			Usage:   "Set object key prefix to scan",
			Sources: cli.NewValueSourceChain(yaml.YAML("minio.prefix", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.BoolFlag{
			Name:    "minio-secure",
			Usage:   "Use TLS to connect to MinIO",
			Sources: cli.NewValueSourceChain(yaml.YAML("minio.secure", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:     "pg-host",
			Usage:    "Set PostgreSQL host",
			Value:    "localhost",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.host", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-port",
			Usage:    "Set PostgreSQL port",
			Value:    "5432",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.port", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-username",
			Usage:    "Set PostgreSQL username",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.username", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-password",
			Usage:    "Set PostgreSQL password",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.password", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-dbname",
			Usage:    "Set PostgreSQL database name",
			Value:    "egrid",
			Sources:  cli.NewValueSourceChain(yaml.YAML("postgresql.dbname", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "pg-sslmode",
			Usage:   "Set PostgreSQL sslmode",
			Value:   "disable",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.sslmode", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.IntFlag{
			Name:      "pg-max-conns",
			Usage:     "Set maximum number of pooled connections",
			Value:     4,
			Sources:   cli.NewValueSourceChain(yaml.YAML("postgresql.max_conns", altsrc.NewStringPtrSourcer(&config))),
			Validator: validatePositive,
		},
		&cli.StringFlag{
			Name:      "notifier",
			Usage:     "Set notification backend: log, nats or kafka",
			Value:     notifier.BackendLog,
			Sources:   cli.NewValueSourceChain(yaml.YAML("notifier.backend", altsrc.NewStringPtrSourcer(&config))),
			Validator: validateNotifier,
		},
		&cli.StringFlag{
			Name:    "nats-url",
			Usage:   "Set NATS server URL",
			Value:   nats.DefaultURL,
			Sources: cli.NewValueSourceChain(yaml.YAML("notifier.nats_url", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "nats-subject",
			Usage:   "Set NATS subject prefix",
			Value:   "egrid.pipeline",
			Sources: cli.NewValueSourceChain(yaml.YAML("notifier.nats_subject", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringSliceFlag{
			Name:    "kafka-brokers",
			Usage:   "Set Kafka brokers",
			Value:   []string{"localhost:9092"},
			Sources: cli.NewValueSourceChain(yaml.YAML("notifier.kafka_brokers", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "kafka-topic",
			Usage:   "Set Kafka topic",
			Value:   "egrid.notifications",
			Sources: cli.NewValueSourceChain(yaml.YAML("notifier.kafka_topic", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "redis-addr",
			Usage:   "Set Redis address, empty disables the last report cache",
			Sources: cli.NewValueSourceChain(yaml.YAML("redis.addr", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "redis-password",
			Usage:   "Set Redis password",
			Sources: cli.NewValueSourceChain(yaml.YAML("redis.password", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.IntFlag{
			Name:    "redis-db",
			Usage:   "Set Redis database",
			Sources: cli.NewValueSourceChain(yaml.YAML("redis.db", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "redis-key",
			Usage:   "Set Redis key holding the last report",
			Value:   redis.DefaultKey,
			Sources: cli.NewValueSourceChain(yaml.YAML("redis.key", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "influx-url",
			Usage:   "Set InfluxDB URL, empty disables run metrics",
			Sources: cli.NewValueSourceChain(yaml.YAML("influx.url", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "influx-token",
			Usage:   "Set InfluxDB token",
			Sources: cli.NewValueSourceChain(yaml.YAML("influx.token", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "influx-org",
			Usage:   "Set InfluxDB organization",
			Sources: cli.NewValueSourceChain(yaml.YAML("influx.org", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "influx-bucket",
			Usage:   "Set InfluxDB bucket",
			Value:   "egrid",
			Sources: cli.NewValueSourceChain(yaml.YAML("influx.bucket", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.host", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.port", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.idle_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.read_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.write_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
	}
}

func validateDirectory(dir string) error {
	if dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}

func validatePositive(n int) error {
	if n <= 0 {
		return fmt.Errorf("must be positive, got %d", n)
	}
	return nil
}

func validateInterval(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("must be positive, got %s", d)
	}
	return nil
}

func validateNotifier(backend string) error {
	switch backend {
	case notifier.BackendLog, notifier.BackendNATS, notifier.BackendKafka:
		return nil
	default:
		return fmt.Errorf("unknown notifier %q, must be one of %q, %q, %q",
			backend, notifier.BackendLog, notifier.BackendNATS, notifier.BackendKafka)
	}
}
