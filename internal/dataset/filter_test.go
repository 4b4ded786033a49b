package dataset

import (
	"reflect"
	"testing"
)

func intp(v int) *int { return &v }

func fixtureSet() *RecordSet {
	return FromRows(
		[]string{"title", "journal", "year"},
		[][]string{
			{"COVID-19 spread", "Nature", "2020"},
			{"", "", "bad"},
			{"Vaccine efficacy", "The Lancet", "2021"},
			{"Spread patterns", "Nature", "2019"},
		},
	)
}

func titles(set *RecordSet) []string {
	out := make([]string, 0, set.Len())
	for _, r := range set.Records {
		out = append(out, r.Title)
	}
	return out
}

func TestFilter_IdentityLaw(t *testing.T) {
	set := fixtureSet()
	got := Filter(set, FilterSpec{})
	if !reflect.DeepEqual(got.Records, set.Records) {
		t.Errorf("all-unset spec must return the input set unchanged")
	}
	if !reflect.DeepEqual(got.Columns, set.Columns) {
		t.Errorf("filter must carry the column layout")
	}
}

func TestFilter_Idempotent(t *testing.T) {
	set := fixtureSet()
	spec := FilterSpec{YearMin: intp(2019), Sources: []string{"Nature"}}
	once := Filter(set, spec)
	twice := Filter(once, spec)
	if !reflect.DeepEqual(once.Records, twice.Records) {
		t.Errorf("re-filtering with the same spec must be a no-op")
	}
}

func TestFilter_YearRange(t *testing.T) {
	set := fixtureSet()
	got := Filter(set, FilterSpec{YearMin: intp(2020), YearMax: intp(2020)})
	want := []string{"COVID-19 spread"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Errorf("year range 2020-2020: got %v, want %v", titles(got), want)
	}
}

func TestFilter_UnknownYearNeverMatchesBoundedRange(t *testing.T) {
	set := fixtureSet()
	for _, spec := range []FilterSpec{
		{YearMin: intp(0)},
		{YearMax: intp(3000)},
	} {
		for _, rec := range Filter(set, spec).Records {
			if !rec.HasYear {
				t.Errorf("unknown-year record matched bounded range %+v", spec)
			}
		}
	}
	// Both bounds unset: unknown years pass through.
	if got := Filter(set, FilterSpec{}).Len(); got != set.Len() {
		t.Errorf("unbounded spec dropped records: %d of %d", got, set.Len())
	}
}

func TestFilter_SourcesCaseSensitive(t *testing.T) {
	set := fixtureSet()
	if got := Filter(set, FilterSpec{Sources: []string{"nature"}}).Len(); got != 0 {
		t.Errorf("source match must be case-sensitive, matched %d", got)
	}
	got := Filter(set, FilterSpec{Sources: []string{"Nature", "The Lancet"}})
	if got.Len() != 3 {
		t.Errorf("expected 3 matches, got %d", got.Len())
	}
}

func TestFilter_TitleContainsCaseInsensitive(t *testing.T) {
	set := fixtureSet()
	got := Filter(set, FilterSpec{TitleContains: "SPREAD"})
	want := []string{"COVID-19 spread", "Spread patterns"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Errorf("title filter: got %v, want %v", titles(got), want)
	}
}

func TestFilter_PreservesOrderAndInput(t *testing.T) {
	set := fixtureSet()
	before := titles(set)
	got := Filter(set, FilterSpec{Sources: []string{"Nature"}})
	want := []string{"COVID-19 spread", "Spread patterns"}
	if !reflect.DeepEqual(titles(got), want) {
		t.Errorf("order not preserved: got %v, want %v", titles(got), want)
	}
	if !reflect.DeepEqual(titles(set), before) {
		t.Errorf("input set mutated by filter")
	}
}
