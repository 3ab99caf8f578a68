package influx

import (
	"context"
	"fmt"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/kurochkinivan/egrid_loader/internal/config"
	"github.com/kurochkinivan/egrid_loader/internal/domain"
)

const measurementRuns = "egrid_pipeline_runs"

type Metrics struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
}

func New(ctx context.Context, cfg config.Influx) (*Metrics, error) {
	client := influxdb2.NewClient(cfg.URL, cfg.Token)

	if _, err := client.Health(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to influxdb: %w", err)
	}

	return &Metrics{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
	}, nil
}

// SaveReport writes one point per run, tagged with the run status.
func (m *Metrics) SaveReport(ctx context.Context, report *domain.RunReport) error {
	if err := m.writeAPI.WritePoint(ctx, runPoint(report)); err != nil {
		return fmt.Errorf("failed to write run metrics: %w", err)
	}

	return nil
}

func (m *Metrics) Close() {
	m.client.Close()
}

func runPoint(report *domain.RunReport) *write.Point {
	return write.NewPoint(
		measurementRuns,
		map[string]string{
			"status": string(report.Status),
		},
		map[string]any{
			"run_id":          report.RunID,
			"files_scanned":   report.FilesScanned,
			"files_validated": report.FilesValidated,
			"files_invalid":   report.FilesInvalid,
			"records_loaded":  report.TotalRecords,
			"success_rate":    report.SuccessRate(),
			"duration_ms":     report.Duration.Milliseconds(),
		},
		report.ExecutionDate,
	)
}
