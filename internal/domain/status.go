package domain

type Status string

const (
	StatusDone  Status = "done"
	StatusError Status = "error"
)
