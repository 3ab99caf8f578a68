package domain

const (
	DefaultMinValidYear     = 1900
	DefaultMaxNetGeneration = 1e15
	DefaultChunkSize        = 1000
	DefaultSampleSize       = 1024
	DefaultAvgRowSize       = 100
	DefaultRecordsTable     = "egrid_data"
)
