package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/kurochkinivan/egrid_loader/internal/domain"
)

type Reporter struct {
	log             *slog.Logger
	outputDir       string
	reportGenerator ReportGenerator
	sinks           []ReportSink
}

func NewReporter(
	log *slog.Logger,
	outputDir string,
	reportGenerator ReportGenerator,
	sinks ...ReportSink,
) *Reporter {
	return &Reporter{
		log:             log,
		outputDir:       outputDir,
		reportGenerator: reportGenerator,
		sinks:           sinks,
	}
}

// Report archives a finished run. Failures are logged; a broken sink must not
// affect the next run.
func (r *Reporter) Report(ctx context.Context, report *domain.RunReport) {
	log := r.log.With(
		slog.String("run_id", report.RunID),
		slog.String("status", string(report.Status)),
	)

	if r.outputDir != "" && r.reportGenerator != nil {
		path := filepath.Join(r.outputDir, report.RunID+".pdf")

		if err := r.reportGenerator.GenerateReport(path, report); err != nil {
			log.ErrorContext(ctx, "failed to generate report", slog.String("err", err.Error()))
		} else {
			log.InfoContext(ctx, "report generated", slog.String("path", path))
		}
	}

	for _, sink := range r.sinks {
		if err := sink.SaveReport(ctx, report); err != nil {
			log.ErrorContext(ctx, "failed to save report", slog.String("err", err.Error()))
		}
	}
}
