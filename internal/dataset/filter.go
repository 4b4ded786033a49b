package dataset

import "strings"

// FilterSpec is the set of active predicates for one query. A nil/empty field
// applies no restriction; active predicates are combined as a conjunction.
type FilterSpec struct {
	YearMin *int
	YearMax *int
	// Sources restricts to records whose journal exactly matches one of the
	// given values (case-sensitive). Empty slice = no restriction.
	Sources []string
	// TitleContains is a case-insensitive substring match on the title.
	TitleContains string
}

// IsZero reports whether no predicate is active.
func (f FilterSpec) IsZero() bool {
	return f.YearMin == nil && f.YearMax == nil && len(f.Sources) == 0 && f.TitleContains == ""
}

// Filter returns the subset of records satisfying every active predicate,
// preserving input order. The input set is never mutated.
func Filter(set *RecordSet, spec FilterSpec) *RecordSet {
	out := &RecordSet{Columns: set.Columns}
	sources := make(map[string]struct{}, len(spec.Sources))
	for _, s := range spec.Sources {
		sources[s] = struct{}{}
	}
	needle := strings.ToLower(spec.TitleContains)
	for _, rec := range set.Records {
		if !matches(rec, spec, sources, needle) {
			continue
		}
		out.Records = append(out.Records, rec)
	}
	return out
}

func matches(rec Record, spec FilterSpec, sources map[string]struct{}, needle string) bool {
	if spec.YearMin != nil || spec.YearMax != nil {
		// An unknown year never satisfies a bounded range.
		if !rec.HasYear {
			return false
		}
		if spec.YearMin != nil && rec.Year < *spec.YearMin {
			return false
		}
		if spec.YearMax != nil && rec.Year > *spec.YearMax {
			return false
		}
	}
	if len(sources) > 0 {
		if _, ok := sources[rec.Journal]; !ok {
			return false
		}
	}
	if needle != "" && !strings.Contains(strings.ToLower(rec.Title), needle) {
		return false
	}
	return true
}
