// Package analysis computes the summary views shown for a record set:
// publication counts per year and per journal.
package analysis

import (
	"sort"
	"strconv"

	"github.com/metascope/metascope-cli/internal/dataset"
)

// Default truncation for the two ranked views. Journals and sources are the
// same aliased field; the caps differ to match the two charts they feed.
const (
	DefaultTopJournals = 10
	DefaultTopSources  = 15
)

// YearBucket is one entry of the publications-per-year view.
type YearBucket struct {
	Year    int
	Unknown bool
	Count   int
}

// Label returns the bucket's display text.
func (b YearBucket) Label() string {
	if b.Unknown {
		return dataset.YearUnknown
	}
	return strconv.Itoa(b.Year)
}

// JournalCount is one entry of the top-journals view.
type JournalCount struct {
	Journal string
	Count   int
}

// YearCounts buckets the set by normalized year, ascending, with the unknown
// bucket appended last regardless of its count. Bucket counts always sum to
// the set length.
func YearCounts(set *dataset.RecordSet) []YearBucket {
	counts := make(map[int]int)
	unknown := 0
	for _, rec := range set.Records {
		if !rec.HasYear {
			unknown++
			continue
		}
		counts[rec.Year]++
	}
	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)
	out := make([]YearBucket, 0, len(years)+1)
	for _, y := range years {
		out = append(out, YearBucket{Year: y, Count: counts[y]})
	}
	if unknown > 0 {
		out = append(out, YearBucket{Unknown: true, Count: unknown})
	}
	return out
}

// TopJournals counts records per journal and returns the n largest, count
// descending with ties broken by first appearance in the set. The "Unknown"
// sentinel journal is excluded so a noisy catch-all bucket never dominates
// the chart; a set with only unknown journals yields an empty result.
func TopJournals(set *dataset.RecordSet, n int) []JournalCount {
	if n <= 0 {
		n = DefaultTopJournals
	}
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, rec := range set.Records {
		if rec.Journal == dataset.JournalUnknown {
			continue
		}
		if _, ok := counts[rec.Journal]; !ok {
			firstSeen[rec.Journal] = i
		}
		counts[rec.Journal]++
	}
	out := make([]JournalCount, 0, len(counts))
	for j, c := range counts {
		out = append(out, JournalCount{Journal: j, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return firstSeen[out[i].Journal] < firstSeen[out[j].Journal]
		}
		return out[i].Count > out[j].Count
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
