package dataset

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedInput marks a source file that is not tabular at all (unreadable,
// empty, or failing CSV parsing). Per-field problems never raise it; those
// degrade to sentinels instead.
var ErrMalformedInput = errors.New("malformed input: not a tabular dataset")

var (
	headerSepRe   = regexp.MustCompile(`[ /\-#]+`)
	headerCleanRe = regexp.MustCompile(`[^0-9a-zA-Z_]`)
)

// NormalizeHeader makes a raw column name predictable: trimmed, lowercased,
// separator runs collapsed to underscores, other special characters dropped.
func NormalizeHeader(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = headerSepRe.ReplaceAllString(s, "_")
	return headerCleanRe.ReplaceAllString(s, "")
}

// Recognized aliases for the canonical fields, keyed by normalized header.
var columnAliases = map[string]string{
	"title":        ColTitle,
	"journal":      ColJournal,
	"source_x":     ColJournal,
	"source":       ColJournal,
	"year":         ColYear,
	"publish_time": ColYear,
	"publish_date": ColYear,
	"date":         ColYear,
}

// yearLayouts are tried in order when the year field is not a bare integer.
var yearLayouts = []string{
	time.RFC3339, "2006-01-02", "2006/01/02", "2006-01", "Jan 2, 2006",
	"2006-01-02 15:04:05",
}

// coerceYear parses a raw year value. It accepts a bare integer or any of the
// supported date layouts, and rejects implausible values (negative or more
// than one year in the future).
func coerceYear(raw string, now int) (int, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, false
	}
	if y, err := strconv.Atoi(v); err == nil {
		if y < 0 || y > now+1 {
			return 0, false
		}
		return y, true
	}
	for _, l := range yearLayouts {
		if t, err := time.Parse(l, v); err == nil {
			y := t.Year()
			if y < 0 || y > now+1 {
				return 0, false
			}
			return y, true
		}
	}
	return 0, false
}

// FromRows normalizes raw CSV rows (header + data) into a RecordSet. Rows are
// never dropped: missing titles become empty strings, missing journals become
// the "Unknown" sentinel, unparsable years become the "unknown" sentinel.
// Unrecognized columns ride along verbatim in Record.Extra.
func FromRows(header []string, rows [][]string) *RecordSet {
	now := time.Now().Year()

	// Column roles and export layout. Canonical columns come first, in the
	// order the source file mentions them, then passthrough columns.
	roles := make([]string, len(header))
	names := make([]string, len(header))
	var canonical, passthrough []string
	seenRole := map[string]bool{}
	seenPass := map[string]bool{}
	for i, h := range header {
		n := NormalizeHeader(h)
		names[i] = n
		role := columnAliases[n]
		// First alias wins; later duplicates fold into passthrough unless
		// their name collides with a canonical column.
		if role != "" && !seenRole[role] {
			seenRole[role] = true
			roles[i] = role
			canonical = append(canonical, role)
			continue
		}
		if n == ColTitle || n == ColJournal || n == ColYear || seenPass[n] {
			continue
		}
		seenPass[n] = true
		passthrough = append(passthrough, n)
	}
	// Ensure the canonical trio is always exportable even when the source
	// lacks a column for it.
	for _, role := range []string{ColTitle, ColJournal, ColYear} {
		if !seenRole[role] {
			canonical = append(canonical, role)
		}
	}

	set := &RecordSet{
		Records: make([]Record, 0, len(rows)),
		Columns: append(canonical, passthrough...),
	}
	for _, row := range rows {
		rec := Record{Journal: JournalUnknown}
		for i := range header {
			var v string
			if i < len(row) {
				v = strings.TrimSpace(row[i])
			}
			switch roles[i] {
			case ColTitle:
				rec.Title = v
			case ColJournal:
				if v != "" {
					rec.Journal = v
				}
			case ColYear:
				rec.Year, rec.HasYear = coerceYear(v, now)
			default:
				if rec.Extra == nil {
					rec.Extra = make(map[string]string)
				}
				rec.Extra[names[i]] = v
			}
		}
		set.Records = append(set.Records, rec)
	}
	return set
}
