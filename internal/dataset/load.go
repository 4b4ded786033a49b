package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads a CSV (or TSV) file and normalizes it into a RecordSet. The whole
// dataset is read into memory; this is a session-scoped tool, not a streaming
// ingester.
func Load(path string) (*RecordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrMalformedInput, path, err)
	}
	defer f.Close()
	set, err := Read(f, sniffDelimiter(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Read parses tabular data from r. The first row is the header; short rows are
// padded rather than rejected. Anything the CSV reader cannot make sense of is
// reported as ErrMalformedInput.
func Read(r io.Reader, delim rune) (*RecordSet, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrMalformedInput)
		}
		return nil, fmt.Errorf("%w: read header: %v", ErrMalformedInput, err)
	}
	var rows [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: read row %d: %v", ErrMalformedInput, len(rows)+2, err)
		}
		row := make([]string, len(rec))
		copy(row, rec)
		rows = append(rows, row)
	}
	return FromRows(header, rows), nil
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}
