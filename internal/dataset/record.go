package dataset

import "strconv"

// Sentinel values substituted for fields that failed normalization. They are
// authoritative once written: export emits the literal sentinel text and a
// re-import keeps it.
const (
	YearUnknown    = "unknown"
	JournalUnknown = "Unknown"
)

// Canonical column names used in the export header.
const (
	ColTitle   = "title"
	ColJournal = "journal"
	ColYear    = "year"
)

// Record is one normalized publication row.
type Record struct {
	Title   string
	Journal string
	// Year is meaningful only when HasYear is true; otherwise the record
	// belongs to the "unknown" bucket.
	Year    int
	HasYear bool
	// Extra holds passthrough columns preserved verbatim (keys are
	// normalized column names).
	Extra map[string]string
}

// YearLabel returns the year as export/display text.
func (r Record) YearLabel() string {
	if !r.HasYear {
		return YearUnknown
	}
	return strconv.Itoa(r.Year)
}

// RecordSet is an ordered collection of Records plus the column layout needed
// to round-trip through CSV export. Row order always matches the source file.
type RecordSet struct {
	Records []Record
	// Columns is the export header: the canonical columns first, then
	// passthrough columns in first-seen order.
	Columns []string
}

// Len returns the number of records.
func (s *RecordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}
