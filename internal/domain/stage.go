package domain

type Stage string

const (
	StageScanning   Stage = "scanning"
	StageValidating Stage = "validating"
	StagePlanning   Stage = "planning"
	StageLoading    Stage = "loading"
	StageReporting  Stage = "reporting"
	StageDone       Stage = "done"
)
