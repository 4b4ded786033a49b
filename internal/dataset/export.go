package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Export serializes the set back to CSV bytes. The header is the set's column
// layout (canonical columns plus passthrough, first-seen order); sentinel
// values are written as their literal text, so the round trip keeps them.
func Export(set *RecordSet) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(set.Columns); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	row := make([]string, len(set.Columns))
	for i, rec := range set.Records {
		for j, col := range set.Columns {
			switch col {
			case ColTitle:
				row[j] = rec.Title
			case ColJournal:
				row[j] = rec.Journal
			case ColYear:
				row[j] = rec.YearLabel()
			default:
				row[j] = rec.Extra[col]
			}
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
