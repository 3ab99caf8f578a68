package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/egrid_loader/internal/config"
	"github.com/kurochkinivan/egrid_loader/internal/domain"
)

const (
	EventError              = "error"
	EventPipelineCompletion = "pipeline_completion"

	ErrorTypeScan           = "scan_error"
	ErrorTypeFileProcessing = "file_processing_error"
)

type Orchestrator struct {
	log         *slog.Logger
	cfg         config.Pipeline
	storage     Storage
	inserter    RecordInserter
	transactor  Transactor
	ledger      FileLedger
	notifier    Notifier
	validator   *Validator
	transformer *Transformer
	planner     *Planner
}

func NewOrchestrator(
	log *slog.Logger,
	cfg config.Pipeline,
	storage Storage,
	inserter RecordInserter,
	transactor Transactor,
	ledger FileLedger,
	notifier Notifier,
) *Orchestrator {
	if cfg.Table == "" {
		cfg.Table = domain.DefaultRecordsTable
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = domain.DefaultChunkSize
	}

	return &Orchestrator{
		log:         log,
		cfg:         cfg,
		storage:     storage,
		inserter:    inserter,
		transactor:  transactor,
		ledger:      ledger,
		notifier:    notifier,
		validator:   NewValidator(log, storage, cfg.SampleSize),
		transformer: NewTransformer(log, cfg.MinValidYear, cfg.MaxNetGeneration),
		planner:     NewPlanner(log, cfg.AvgRowSize),
	}
}

// Run executes one scan → validate → plan → load → report cycle. It always
// returns a report; per-file failures are published as error notifications
// and never abort the run.
func (o *Orchestrator) Run(ctx context.Context) *domain.RunReport {
	report := &domain.RunReport{
		RunID:         uuid.NewString(),
		ExecutionDate: time.Now().UTC(),
		Status:        domain.RunStatusCompleted,
	}

	log := o.log.With(slog.String("run_id", report.RunID))

	o.enter(ctx, log, domain.StageScanning)

	files, err := o.storage.ListEligibleFiles(ctx)
	if err != nil {
		log.ErrorContext(ctx, "failed to scan files", slog.String("err", err.Error()))
		o.notifyError(ctx, log, ErrorTypeScan, err, map[string]any{})

		report.Status = domain.RunStatusFailed
		return o.finish(ctx, log, report)
	}

	report.FilesScanned = len(files)
	log.InfoContext(ctx, "scan complete", slog.Int("files", len(files)))

	o.enter(ctx, log, domain.StageValidating)

	valid, invalid := o.validator.ValidateMany(ctx, files)
	report.FilesValidated = len(valid)
	report.FilesInvalid = len(invalid)

	o.enter(ctx, log, domain.StagePlanning)

	units := o.planner.Plan(valid)

	o.enter(ctx, log, domain.StageLoading)

	report.TotalRecords = o.load(ctx, log, units)

	return o.finish(ctx, log, report)
}

func (o *Orchestrator) enter(ctx context.Context, log *slog.Logger, stage domain.Stage) {
	log.InfoContext(ctx, "entering stage", slog.String("stage", string(stage)))
}

func (o *Orchestrator) finish(ctx context.Context, log *slog.Logger, report *domain.RunReport) *domain.RunReport {
	ctx = context.WithoutCancel(ctx)

	o.enter(ctx, log, domain.StageReporting)

	report.Duration = time.Since(report.ExecutionDate)

	if err := o.notifier.Send(ctx, EventPipelineCompletion, report.ToMap()); err != nil {
		log.WarnContext(ctx, "failed to send completion notification", slog.String("err", err.Error()))
	}

	o.enter(ctx, log, domain.StageDone)

	log.InfoContext(ctx, "pipeline run finished",
		slog.String("status", string(report.Status)),
		slog.Int("files_scanned", report.FilesScanned),
		slog.Int("files_validated", report.FilesValidated),
		slog.Int("files_invalid", report.FilesInvalid),
		slog.Int64("total_records", report.TotalRecords),
		slog.Float64("success_rate", report.SuccessRate()),
		slog.Duration("duration", report.Duration),
	)

	return report
}

func (o *Orchestrator) load(ctx context.Context, log *slog.Logger, units []*domain.ProcessingUnit) int64 {
	var total int64

units:
	for _, unit := range units {
		var loaded int64

		for _, file := range unit.Files {
			if ctx.Err() != nil {
				log.WarnContext(ctx, "run cancelled, remaining files are not loaded", slog.String("unit", unit.ID))
				break units
			}

			n, err := o.processFile(ctx, log.With(slog.String("file", file.Key)), file)
			if err != nil {
				o.handleFileError(ctx, log, file, err)
				continue
			}

			loaded += n
		}

		log.InfoContext(ctx, "processing unit loaded",
			slog.String("unit", unit.ID),
			slog.Int64("estimated_records", unit.EstimatedRecords),
			slog.Int64("loaded_records", loaded),
		)

		total += loaded
	}

	return total
}

func (o *Orchestrator) processFile(ctx context.Context, log *slog.Logger, file *domain.FileDescriptor) (int64, error) {
	if o.cfg.SkipLoaded {
		loaded, err := o.alreadyLoaded(ctx, file)
		if err != nil {
			return 0, err
		}

		if loaded {
			log.InfoContext(ctx, "file already loaded, skipping")
			return 0, nil
		}
	}

	log.InfoContext(ctx, "processing file", slog.Int64("size", file.Size))

	tmp, err := os.CreateTemp(o.cfg.TempDirectory, "egrid-*.csv")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}

	path := tmp.Name()
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.WarnContext(ctx, "failed to remove temp file", slog.String("path", path), slog.String("err", err.Error()))
		}
	}()

	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := o.storage.Download(ctx, file, path); err != nil {
		return 0, fmt.Errorf("failed to download file: %w", err)
	}

	var loaded int64
	err = o.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		n, err := o.loadLocalFile(ctx, log, path)
		if err != nil {
			return err
		}

		now := time.Now()
		err = o.ledger.UpdateOrCreateFile(ctx, &domain.File{
			Key:           file.Key,
			Bucket:        file.Bucket,
			LastModified:  file.LastModified,
			Status:        domain.StatusDone,
			RecordsLoaded: n,
			ProcessedAt:   &now,
		})
		if err != nil {
			return fmt.Errorf("failed to update file status: %w", err)
		}

		loaded = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.InfoContext(ctx, "file loaded", slog.Int64("records", loaded))

	return loaded, nil
}

func (o *Orchestrator) loadLocalFile(ctx context.Context, log *slog.Logger, path string) (_ int64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open downloaded file: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	reader, err := OpenChunkReader(f, o.cfg.ChunkSize)
	if err != nil {
		return 0, err
	}

	var total int64
	for chunk := 0; ; chunk++ {
		rows, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("chunk %d: %w", chunk, err)
		}

		records := o.transformer.TransformChunk(ctx, rows)
		if len(records) == 0 {
			continue
		}

		batch := make([]map[string]any, len(records))
		for i, r := range records {
			batch[i] = r.ToMap()
		}

		inserted, err := o.inserter.BulkInsert(ctx, o.cfg.Table, batch)
		if err != nil {
			return 0, fmt.Errorf("failed to insert chunk %d: %w", chunk, err)
		}

		total += int64(inserted)

		log.DebugContext(ctx, "chunk loaded",
			slog.Int("chunk", chunk),
			slog.Int("rows", len(rows)),
			slog.Int("inserted", inserted),
		)
	}

	if skipped := reader.Skipped(); skipped > 0 {
		log.WarnContext(ctx, "dropped rows with unexpected field count", slog.Int("rows", skipped))
	}

	return total, nil
}

func (o *Orchestrator) alreadyLoaded(ctx context.Context, file *domain.FileDescriptor) (bool, error) {
	entry, err := o.ledger.File(ctx, file.Bucket, file.Key)
	if err != nil {
		return false, fmt.Errorf("failed to look up file in ledger: %w", err)
	}

	return entry != nil && entry.Status == domain.StatusDone && entry.LastModified.Equal(file.LastModified), nil
}

func (o *Orchestrator) handleFileError(ctx context.Context, log *slog.Logger, file *domain.FileDescriptor, fileErr error) {
	ctx = context.WithoutCancel(ctx)

	log.ErrorContext(ctx, "failed to process file",
		slog.String("file", file.Key),
		slog.String("err", fileErr.Error()),
	)

	now := time.Now()
	err := o.ledger.UpdateOrCreateFile(ctx, &domain.File{
		Key:          file.Key,
		Bucket:       file.Bucket,
		LastModified: file.LastModified,
		Status:       domain.StatusError,
		ErrorMessage: fileErr.Error(),
		ProcessedAt:  &now,
	})
	if err != nil {
		log.WarnContext(ctx, "failed to record file error", slog.String("file", file.Key), slog.String("err", err.Error()))
	}

	o.notifyError(ctx, log, ErrorTypeFileProcessing, fileErr, map[string]any{"file": file.Key})
}

func (o *Orchestrator) notifyError(ctx context.Context, log *slog.Logger, errorType string, cause error, errCtx map[string]any) {
	err := o.notifier.Send(context.WithoutCancel(ctx), EventError, map[string]any{
		"error_type":    errorType,
		"error_message": cause.Error(),
		"context":       errCtx,
	})
	if err != nil {
		log.WarnContext(ctx, "failed to send error notification", slog.String("err", err.Error()))
	}
}
