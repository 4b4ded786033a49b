package analysis

import (
	"reflect"
	"testing"

	"github.com/metascope/metascope-cli/internal/dataset"
)

func set(rows [][]string) *dataset.RecordSet {
	return dataset.FromRows([]string{"title", "journal", "year"}, rows)
}

func TestYearCounts_Scenario(t *testing.T) {
	s := set([][]string{
		{"COVID-19 spread", "Nature", "2020"},
		{"", "", "bad"},
	})
	got := YearCounts(s)
	want := []YearBucket{
		{Year: 2020, Count: 1},
		{Unknown: true, Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("YearCounts = %+v, want %+v", got, want)
	}
	if got[1].Label() != "unknown" || got[0].Label() != "2020" {
		t.Errorf("bucket labels wrong: %q, %q", got[0].Label(), got[1].Label())
	}
}

func TestYearCounts_SumsToLength(t *testing.T) {
	s := set([][]string{
		{"a", "X", "2019"},
		{"b", "Y", "2021"},
		{"c", "Z", "nope"},
		{"d", "X", "2019"},
		{"e", "", ""},
	})
	total := 0
	for _, b := range YearCounts(s) {
		total += b.Count
	}
	if total != s.Len() {
		t.Errorf("bucket counts sum to %d, set has %d records", total, s.Len())
	}
}

func TestYearCounts_AscendingUnknownLast(t *testing.T) {
	s := set([][]string{
		{"a", "X", "2021"},
		{"b", "X", "bad"},
		{"c", "X", "bad"},
		{"d", "X", "2019"},
		{"e", "X", "2020"},
	})
	got := YearCounts(s)
	labels := make([]string, len(got))
	for i, b := range got {
		labels[i] = b.Label()
	}
	want := []string{"2019", "2020", "2021", "unknown"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("bucket order = %v, want %v", labels, want)
	}
}

func TestTopJournals_ExcludesUnknown(t *testing.T) {
	s := set([][]string{
		{"a", "Nature", "2020"},
		{"b", "", "2020"},
		{"c", "", "2020"},
	})
	got := TopJournals(s, 10)
	want := []JournalCount{{Journal: "Nature", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopJournals = %+v, want %+v", got, want)
	}
}

func TestTopJournals_AllUnknownIsEmpty(t *testing.T) {
	s := set([][]string{
		{"a", "", "2020"},
		{"b", "", "2020"},
	})
	if got := TopJournals(s, 10); len(got) != 0 {
		t.Errorf("expected empty result, got %+v", got)
	}
}

func TestTopJournals_OrderAndTies(t *testing.T) {
	s := set([][]string{
		{"a", "Cell", "2020"},
		{"b", "Nature", "2020"},
		{"c", "Science", "2020"},
		{"d", "Nature", "2020"},
		{"e", "Science", "2020"},
		{"f", "BMJ", "2020"},
	})
	got := TopJournals(s, 10)
	// Nature and Science tie at 2: Nature first (seen earlier). Cell and BMJ
	// tie at 1: Cell first.
	want := []JournalCount{
		{Journal: "Nature", Count: 2},
		{Journal: "Science", Count: 2},
		{Journal: "Cell", Count: 1},
		{Journal: "BMJ", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopJournals = %+v, want %+v", got, want)
	}
}

func TestTopJournals_Truncates(t *testing.T) {
	s := set([][]string{
		{"a", "A", "2020"},
		{"b", "B", "2020"},
		{"c", "C", "2020"},
	})
	if got := TopJournals(s, 2); len(got) != 2 {
		t.Errorf("expected truncation to 2, got %d", len(got))
	}
}
