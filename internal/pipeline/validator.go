package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/kurochkinivan/egrid_loader/internal/domain"
)

type Validator struct {
	log          *slog.Logger
	sampleReader SampleReader
	sampleSize   int64
}

func NewValidator(log *slog.Logger, sampleReader SampleReader, sampleSize int) *Validator {
	if sampleSize <= 0 {
		sampleSize = domain.DefaultSampleSize
	}

	return &Validator{
		log:          log,
		sampleReader: sampleReader,
		sampleSize:   int64(sampleSize),
	}
}

// Validate reports whether file looks like a processable eGRID export. It
// only reads a leading sample, so the cost does not depend on the file size.
func (v *Validator) Validate(ctx context.Context, file *domain.FileDescriptor) bool {
	log := v.log.With(slog.String("file", file.Key))

	if !file.IsNonEmpty() {
		log.WarnContext(ctx, "rejecting empty file")
		return false
	}

	if !file.HasExtension(domain.CSVExtension) {
		log.WarnContext(ctx, "rejecting file with unsupported extension")
		return false
	}

	sample, err := v.sampleReader.ReadSample(ctx, file, v.sampleSize)
	if err != nil {
		log.ErrorContext(ctx, "failed to read validation sample", slog.String("err", err.Error()))
		return false
	}

	for _, column := range domain.RequiredColumns {
		if !strings.Contains(sample, column) {
			log.WarnContext(ctx, "missing required column", slog.String("column", column))
			return false
		}
	}

	log.DebugContext(ctx, "file structure is valid")

	return true
}

func (v *Validator) ValidateMany(ctx context.Context, files []*domain.FileDescriptor) (valid, invalid []*domain.FileDescriptor) {
	for _, file := range files {
		if v.Validate(ctx, file) {
			valid = append(valid, file)
		} else {
			invalid = append(invalid, file)
		}
	}

	v.log.InfoContext(ctx, "validation complete",
		slog.Int("valid", len(valid)),
		slog.Int("invalid", len(invalid)),
	)

	return valid, invalid
}
