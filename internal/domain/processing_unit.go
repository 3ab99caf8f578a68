package domain

type ProcessingUnit struct {
	ID               string
	Files            []*FileDescriptor
	EstimatedRecords int64
}

func (u *ProcessingUnit) TotalSize() int64 {
	var total int64
	for _, f := range u.Files {
		total += f.Size
	}
	return total
}
