package domain

import (
	"errors"
	"time"
)

var ErrNoReport = errors.New("no report stored yet")

type RunStatus string

const (
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

type RunReport struct {
	RunID          string        `json:"pipeline_run_id"`
	ExecutionDate  time.Time     `json:"execution_date"`
	FilesScanned   int           `json:"files_scanned"`
	FilesValidated int           `json:"files_validated"`
	FilesInvalid   int           `json:"files_invalid"`
	TotalRecords   int64         `json:"total_records_processed"`
	Status         RunStatus     `json:"status"`
	Duration       time.Duration `json:"duration"`
}

// SuccessRate is the share of scanned files that passed validation, in percent.
func (r *RunReport) SuccessRate() float64 {
	if r.FilesScanned == 0 {
		return 0
	}
	return float64(r.FilesValidated) / float64(r.FilesScanned) * 100
}

func (r *RunReport) ToMap() map[string]any {
	return map[string]any{
		"pipeline_run_id":         r.RunID,
		"execution_date":          r.ExecutionDate.Format(time.RFC3339),
		"files_scanned":           r.FilesScanned,
		"files_validated":         r.FilesValidated,
		"files_invalid":           r.FilesInvalid,
		"total_records_processed": r.TotalRecords,
		"success_rate":            r.SuccessRate(),
		"status":                  string(r.Status),
	}
}
