package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/kurochkinivan/egrid_loader/internal/config"
	v1 "github.com/kurochkinivan/egrid_loader/internal/controller/http/v1"
	"github.com/kurochkinivan/egrid_loader/internal/domain"
	"github.com/kurochkinivan/egrid_loader/internal/infrastructure/influx"
	"github.com/kurochkinivan/egrid_loader/internal/infrastructure/notifier"
	"github.com/kurochkinivan/egrid_loader/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/egrid_loader/internal/infrastructure/storage"
	"github.com/kurochkinivan/egrid_loader/internal/pipeline"
	"github.com/kurochkinivan/egrid_loader/internal/repository/postgresql"
	"github.com/kurochkinivan/egrid_loader/internal/repository/redis"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

var ErrRunFailed = errors.New("pipeline run failed")

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) (err error) {
	a.log.InfoContext(ctx, "starting app",
		slog.String("bucket", a.cfg.MinIO.Bucket),
		slog.String("prefix", a.cfg.MinIO.Prefix),
		slog.String("table", a.cfg.Pipeline.Table),
		slog.String("reports_dir", a.cfg.App.ReportsDirectory),
		slog.Duration("run_interval", a.cfg.App.RunInterval),
		slog.Bool("once", a.cfg.App.Once),
	)

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	recordsRepository := postgresql.NewRecordsRepository(pool)
	filesRepository := postgresql.NewFilesRepository(pool)
	txManager := postgresql.NewTxManager(pool)

	if !recordsRepository.HealthCheck(ctx) {
		return errors.New("database health check failed")
	}

	objectStorage, err := storage.New(ctx, a.log, a.cfg.MinIO)
	if err != nil {
		return fmt.Errorf("failed to create storage: %w", err)
	}

	notify, err := notifier.New(a.log, a.cfg.Notifier)
	if err != nil {
		return fmt.Errorf("failed to create notifier: %w", err)
	}
	defer func() {
		if closeErr := notify.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close notifier: %w", closeErr))
		}
	}()

	sinks, reports, closeSinks, err := a.reportSinks(ctx)
	if err != nil {
		return err
	}
	defer closeSinks()

	orchestrator := pipeline.NewOrchestrator(
		a.log,
		a.cfg.Pipeline,
		objectStorage,
		recordsRepository,
		txManager,
		filesRepository,
		notify,
	)
	reporter := pipeline.NewReporter(a.log, a.cfg.ReportsDirectory, report_generator.NewPDFGenerator(), sinks...)
	scheduler := pipeline.NewScheduler(a.log, a.cfg.RunInterval, a.cfg.RunOnStart, orchestrator, reporter)

	if a.cfg.Once {
		report := scheduler.RunOnce(ctx)
		if report.Status == domain.RunStatusFailed {
			return fmt.Errorf("run %s: %w", report.RunID, ErrRunFailed)
		}
		return nil
	}

	server := v1.NewServer(a.cfg.HTTP, v1.Handlers{
		Health:  v1.NewHealthHandler(recordsRepository, objectStorage),
		Records: v1.NewRecordsHandler(recordsRepository, a.cfg.Pipeline.Table),
		Files:   v1.NewFilesHandler(filesRepository),
		Reports: v1.NewReportsHandler(reports, scheduler),
	})

	return a.serve(ctx, scheduler, server)
}

// reportSinks connects the optional report stores. The returned repository is
// nil when redis is not configured.
func (a *App) reportSinks(ctx context.Context) ([]pipeline.ReportSink, v1.ReportsRepository, func(), error) {
	var (
		sinks   []pipeline.ReportSink
		reports v1.ReportsRepository
		closers []func()
	)

	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	if a.cfg.Redis.Addr != "" {
		client, err := redis.NewClient(ctx, a.cfg.Redis)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		closers = append(closers, func() {
			if err := client.Close(); err != nil {
				a.log.WarnContext(ctx, "failed to close redis client", slog.String("err", err.Error()))
			}
		})

		repo := redis.NewReportsRepository(client, a.cfg.Redis.Key)
		sinks = append(sinks, repo)
		reports = repo
	}

	if a.cfg.Influx.URL != "" {
		metrics, err := influx.New(ctx, a.cfg.Influx)
		if err != nil {
			closeAll()
			return nil, nil, nil, fmt.Errorf("failed to connect to influxdb: %w", err)
		}
		closers = append(closers, metrics.Close)

		sinks = append(sinks, metrics)
	}

	a.log.InfoContext(ctx, "report sinks configured", slog.Int("sinks", len(sinks)))

	return sinks, reports, closeAll, nil
}

func (a *App) serve(ctx context.Context, scheduler *pipeline.Scheduler, server *v1.Server) error {
	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "scheduler started")
		return scheduler.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}
