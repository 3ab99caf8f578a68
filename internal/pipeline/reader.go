package pipeline

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/egrid_loader/internal/domain"
)

var ErrMissingColumns = errors.New("missing required columns")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ChunkReader streams RawRows from an eGRID CSV export. The row right after
// the header is a human-readable description of each column and is skipped.
type ChunkReader struct {
	dec       *csvutil.Decoder
	chunkSize int
	skipped   int
}

func OpenChunkReader(r io.Reader, chunkSize int) (*ChunkReader, error) {
	if chunkSize <= 0 {
		chunkSize = domain.DefaultChunkSize
	}

	reader := csv.NewReader(skipBOM(r))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	dec, err := csvutil.NewDecoder(&paddingReader{reader: reader})
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if missing := domain.MissingColumns(dec.Header()); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumns, missing)
	}

	if _, err := reader.Read(); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to skip description row: %w", err)
	}

	return &ChunkReader{
		dec:       dec,
		chunkSize: chunkSize,
	}, nil
}

// Next returns up to chunkSize rows, or io.EOF once the file is exhausted.
func (c *ChunkReader) Next() ([]domain.RawRow, error) {
	rows := make([]domain.RawRow, 0, c.chunkSize)

	for len(rows) < c.chunkSize {
		var row domain.RawRow

		err := c.dec.Decode(&row)
		if errors.Is(err, io.EOF) {
			break
		}

		if errors.Is(err, csvutil.ErrFieldCount) {
			c.skipped++
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to decode row: %w", err)
		}

		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, io.EOF
	}

	return rows, nil
}

// Skipped is the number of rows dropped because they had more fields than the
// header.
func (c *ChunkReader) Skipped() int {
	return c.skipped
}

// paddingReader fills short records up to the header width with empty
// fields. The first record read sets the width.
type paddingReader struct {
	reader *csv.Reader
	width  int
}

func (p *paddingReader) Read() ([]string, error) {
	record, err := p.reader.Read()
	if err != nil {
		return record, err
	}

	if p.width == 0 {
		p.width = len(record)
		return record, nil
	}

	for len(record) < p.width {
		record = append(record, "")
	}

	return record, nil
}

func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)

	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	return br
}
