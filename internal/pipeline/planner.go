package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/kurochkinivan/egrid_loader/internal/domain"
)

type Planner struct {
	log        *slog.Logger
	avgRowSize int64
}

func NewPlanner(log *slog.Logger, avgRowSize int) *Planner {
	if avgRowSize <= 0 {
		avgRowSize = domain.DefaultAvgRowSize
	}

	return &Planner{
		log:        log,
		avgRowSize: int64(avgRowSize),
	}
}

// Plan puts every file into its own unit. Estimates are derived from the file
// size only.
func (p *Planner) Plan(files []*domain.FileDescriptor) []*domain.ProcessingUnit {
	units := make([]*domain.ProcessingUnit, 0, len(files))

	for i, file := range files {
		units = append(units, &domain.ProcessingUnit{
			ID:               fmt.Sprintf("batch_%d", i),
			Files:            []*domain.FileDescriptor{file},
			EstimatedRecords: file.Size / p.avgRowSize,
		})
	}

	p.log.Info("created processing units", slog.Int("units", len(units)))

	return units
}
