package domain

import "time"

// File is an entry of the load ledger.
type File struct {
	Key           string     `db:"key"            json:"key"`
	Bucket        string     `db:"bucket"         json:"bucket"`
	LastModified  time.Time  `db:"last_modified"  json:"last_modified"`
	Status        Status     `db:"status"         json:"status"`
	RecordsLoaded int64      `db:"records_loaded" json:"records_loaded"`
	ErrorMessage  string     `db:"error_message"  json:"error_message,omitempty"`
	ProcessedAt   *time.Time `db:"processed_at"   json:"processed_at,omitempty"`
}
