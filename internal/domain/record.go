package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidRecord = errors.New("invalid record")

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRecord
}

// RecordFields is the unvalidated input of NewRecord.
type RecordFields struct {
	GeneratorID   string
	Year          int
	State         string
	PlantName     string
	NetGeneration float64
}

// Record is one cleaned generation observation. The zero value is not a valid
// Record; use NewRecord.
type Record struct {
	generatorID   string
	year          int
	state         string
	plantName     string
	netGeneration float64
}

func NewRecord(f RecordFields, minYear int) (*Record, error) {
	generatorID := strings.TrimSpace(f.GeneratorID)
	if generatorID == "" {
		return nil, &ValidationError{Field: "generator_id", Reason: "cannot be empty"}
	}

	maxYear := time.Now().Year() + 1
	if f.Year < minYear || f.Year > maxYear {
		return nil, &ValidationError{
			Field:  "year",
			Reason: fmt.Sprintf("%d is outside [%d;%d]", f.Year, minYear, maxYear),
		}
	}

	state := strings.TrimSpace(f.State)
	if len([]rune(state)) != 2 {
		return nil, &ValidationError{Field: "state", Reason: fmt.Sprintf("%q is not a 2-character abbreviation", f.State)}
	}

	plantName := strings.TrimSpace(f.PlantName)
	if plantName == "" {
		return nil, &ValidationError{Field: "plant_name", Reason: "cannot be empty"}
	}

	if f.NetGeneration < 0 {
		return nil, &ValidationError{Field: "net_generation", Reason: "cannot be negative"}
	}

	return &Record{
		generatorID:   generatorID,
		year:          f.Year,
		state:         strings.ToUpper(state),
		plantName:     plantName,
		netGeneration: f.NetGeneration,
	}, nil
}

func (r *Record) GeneratorID() string    { return r.generatorID }
func (r *Record) Year() int              { return r.year }
func (r *Record) State() string          { return r.state }
func (r *Record) PlantName() string      { return r.plantName }
func (r *Record) NetGeneration() float64 { return r.netGeneration }

// ToMap returns the column mapping used for bulk loading.
func (r *Record) ToMap() map[string]any {
	return map[string]any{
		"gen_id":         r.generatorID,
		"year":           r.year,
		"state":          r.state,
		"plant_name":     r.plantName,
		"net_generation": r.netGeneration,
	}
}
