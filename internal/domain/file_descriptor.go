package domain

import (
	"strings"
	"time"
)

const CSVExtension = ".csv"

type FileDescriptor struct {
	Key          string
	Size         int64
	LastModified time.Time
	Bucket       string
}

func (f *FileDescriptor) IsNonEmpty() bool {
	return f.Size > 0
}

func (f *FileDescriptor) HasExtension(ext string) bool {
	return strings.HasSuffix(strings.ToLower(f.Key), strings.ToLower(ext))
}
