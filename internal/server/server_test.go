package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/metascope/metascope-cli/internal/config"
	"github.com/metascope/metascope-cli/internal/dataset"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	set := dataset.FromRows(
		[]string{"title", "journal", "year"},
		[][]string{
			{"COVID-19 spread", "Nature", "2020"},
			{"Vaccine efficacy", "The Lancet", "2021"},
			{"Spread patterns", "Nature", "2019"},
			{"", "", "bad"},
		},
	)
	cfg := &config.Global{TopJournals: 10, TopWords: 200, MinTokenLen: 2}
	return New(set, cfg, zap.NewNop())
}

func get(t *testing.T, h http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, http.NoBody)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	rr := get(t, testServer(t).Router(), "/health")
	if rr.Code != http.StatusOK {
		t.Fatalf("health: got %d", rr.Code)
	}
}

func TestSummary_WithFilter(t *testing.T) {
	rr := get(t, testServer(t).Router(), "/api/summary?year_min=2020&year_max=2020")
	if rr.Code != http.StatusOK {
		t.Fatalf("summary: got %d: %s", rr.Code, rr.Body.String())
	}
	var out map[string]int
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out["total"] != 4 || out["filtered"] != 1 {
		t.Errorf("summary = %v, want total=4 filtered=1", out)
	}
}

func TestYears_OrderedUnknownLast(t *testing.T) {
	rr := get(t, testServer(t).Router(), "/api/years")
	var out []struct {
		Year  string `json:"year"`
		Count int    `json:"count"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []string{"2019", "2020", "2021", "unknown"}
	if len(out) != len(want) {
		t.Fatalf("years = %+v", out)
	}
	for i, b := range out {
		if b.Year != want[i] || b.Count != 1 {
			t.Errorf("bucket %d = %+v, want year %s count 1", i, b, want[i])
		}
	}
}

func TestJournals_TopN(t *testing.T) {
	rr := get(t, testServer(t).Router(), "/api/journals?top_n=1")
	var out []struct {
		Journal string `json:"journal"`
		Count   int    `json:"count"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 || out[0].Journal != "Nature" || out[0].Count != 2 {
		t.Errorf("journals = %+v, want [Nature 2]", out)
	}
}

func TestWords_FilteredByQuery(t *testing.T) {
	rr := get(t, testServer(t).Router(), "/api/words?q=spread&top_k=5")
	var out []struct {
		Word  string `json:"word"`
		Count int    `json:"count"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) == 0 || out[0].Word != "spread" || out[0].Count != 2 {
		t.Errorf("words = %+v, want spread first with count 2", out)
	}
}

func TestExport_CSVAttachment(t *testing.T) {
	rr := get(t, testServer(t).Router(), "/api/export?source=Nature")
	if rr.Code != http.StatusOK {
		t.Fatalf("export: got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("content type = %q", ct)
	}
	if cd := rr.Header().Get("Content-Disposition"); !strings.Contains(cd, "filtered_metadata.csv") {
		t.Errorf("content disposition = %q", cd)
	}
	body := rr.Body.String()
	if !strings.HasPrefix(body, "title,journal,year") {
		t.Errorf("missing header: %q", body)
	}
	if strings.Contains(body, "The Lancet") {
		t.Errorf("filter not applied:\n%s", body)
	}
}

func TestBadFilterParam(t *testing.T) {
	rr := get(t, testServer(t).Router(), "/api/years?year_min=abc")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	rr := get(t, testServer(t).Router(), "/health")
	if rr.Header().Get("X-Request-Id") == "" {
		t.Error("missing request id header")
	}
}
