package pipeline

import (
	"context"

	"github.com/kurochkinivan/egrid_loader/internal/domain"
)

type SampleReader interface {
	ReadSample(ctx context.Context, file *domain.FileDescriptor, byteCount int64) (string, error)
}

type Storage interface {
	SampleReader
	ListEligibleFiles(ctx context.Context) ([]*domain.FileDescriptor, error)
	Download(ctx context.Context, file *domain.FileDescriptor, destination string) error
}

type RecordInserter interface {
	BulkInsert(ctx context.Context, table string, rows []map[string]any) (int, error)
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type FileLedger interface {
	File(ctx context.Context, bucket, key string) (*domain.File, error)
	UpdateOrCreateFile(ctx context.Context, file *domain.File) error
}

type Notifier interface {
	Send(ctx context.Context, eventType string, payload map[string]any) error
}

type ReportGenerator interface {
	GenerateReport(outputPath string, report *domain.RunReport) error
}

type ReportSink interface {
	SaveReport(ctx context.Context, report *domain.RunReport) error
}

type Runner interface {
	Run(ctx context.Context) *domain.RunReport
}

type ReportPublisher interface {
	Report(ctx context.Context, report *domain.RunReport)
}
