package pipeline

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/kurochkinivan/egrid_loader/internal/domain"
)

type Transformer struct {
	log              *slog.Logger
	minValidYear     int
	maxNetGeneration float64
}

func NewTransformer(log *slog.Logger, minValidYear int, maxNetGeneration float64) *Transformer {
	if minValidYear <= 0 {
		minValidYear = domain.DefaultMinValidYear
	}
	if maxNetGeneration <= 0 {
		maxNetGeneration = domain.DefaultMaxNetGeneration
	}

	return &Transformer{
		log:              log,
		minValidYear:     minValidYear,
		maxNetGeneration: maxNetGeneration,
	}
}

// CleanNumeric never fails: anything that cannot be read as a number is 0.
func (t *Transformer) CleanNumeric(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if isNull(raw) {
		return 0
	}

	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, raw)
	if cleaned == "" {
		return 0
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		t.log.Warn("could not convert value to numeric", slog.String("value", raw), slog.String("err", err.Error()))
		return 0
	}

	if value > t.maxNetGeneration {
		t.log.Warn("capping large value", slog.Float64("value", value), slog.Float64("cap", t.maxNetGeneration))
		return t.maxNetGeneration
	}

	return value
}

func (t *Transformer) TransformChunk(ctx context.Context, rows []domain.RawRow) []*domain.Record {
	records := make([]*domain.Record, 0, len(rows))

	for i := range rows {
		record, err := t.transformRow(&rows[i])
		if err != nil {
			t.log.WarnContext(ctx, "skipping invalid record",
				slog.Int("row", i),
				slog.String("generator_id", rows[i].GeneratorID),
				slog.String("err", err.Error()),
			)
			continue
		}

		records = append(records, record)
	}

	return records
}

func (t *Transformer) transformRow(row *domain.RawRow) (*domain.Record, error) {
	year, err := parseYear(row.DataYear)
	if err != nil {
		return nil, &domain.ValidationError{Field: "year", Reason: err.Error()}
	}

	netGeneration := strings.NewReplacer(`"`, "", ",", "").Replace(strings.TrimSpace(row.NetGeneration))

	return domain.NewRecord(domain.RecordFields{
		GeneratorID:   row.GeneratorID,
		Year:          year,
		State:         row.State,
		PlantName:     row.PlantName,
		NetGeneration: t.CleanNumeric(netGeneration),
	}, t.minValidYear)
}

// parseYear accepts "2022" as well as spreadsheet-style "2022.0".
func parseYear(raw string) (int, error) {
	raw = strings.TrimSpace(raw)

	year, err := strconv.Atoi(raw)
	if err == nil {
		return year, nil
	}

	f, ferr := strconv.ParseFloat(raw, 64)
	if ferr != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, err
	}

	return int(f), nil
}

func isNull(s string) bool {
	switch strings.ToLower(s) {
	case "", "null", "nan", "none", "n/a", "na":
		return true
	default:
		return false
	}
}
