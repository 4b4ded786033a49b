package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/metascope/metascope-cli/internal/analysis"
	"github.com/metascope/metascope-cli/internal/dataset"
	"github.com/metascope/metascope-cli/internal/wordfreq"
)

// filterFromQuery builds a FilterSpec from the shared query parameters
// year_min, year_max, source (repeatable), and q.
func filterFromQuery(r *http.Request) (dataset.FilterSpec, error) {
	var spec dataset.FilterSpec
	q := r.URL.Query()
	for _, key := range []string{"year_min", "year_max"} {
		raw := q.Get(key)
		if raw == "" {
			continue
		}
		y, err := strconv.Atoi(raw)
		if err != nil {
			return spec, &badParamError{param: key, value: raw}
		}
		if key == "year_min" {
			spec.YearMin = &y
		} else {
			spec.YearMax = &y
		}
	}
	spec.Sources = q["source"]
	spec.TitleContains = q.Get("q")
	return spec, nil
}

type badParamError struct{ param, value string }

func (e *badParamError) Error() string {
	return "invalid " + e.param + ": " + strconv.Quote(e.value)
}

func (s *Server) filtered(w http.ResponseWriter, r *http.Request) (*dataset.RecordSet, bool) {
	spec, err := filterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return dataset.Filter(s.set, spec), true
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sub, ok := s.filtered(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{
		"total":    s.set.Len(),
		"filtered": sub.Len(),
	})
}

func (s *Server) handleYears(w http.ResponseWriter, r *http.Request) {
	sub, ok := s.filtered(w, r)
	if !ok {
		return
	}
	type bucket struct {
		Year  string `json:"year"`
		Count int    `json:"count"`
	}
	buckets := analysis.YearCounts(sub)
	out := make([]bucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, bucket{Year: b.Label(), Count: b.Count})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleJournals(w http.ResponseWriter, r *http.Request) {
	sub, ok := s.filtered(w, r)
	if !ok {
		return
	}
	n := s.cfg.TopJournals
	if raw := r.URL.Query().Get("top_n"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			writeError(w, http.StatusBadRequest, "invalid top_n: "+strconv.Quote(raw))
			return
		}
		n = v
	}
	type entry struct {
		Journal string `json:"journal"`
		Count   int    `json:"count"`
	}
	tops := analysis.TopJournals(sub, n)
	out := make([]entry, 0, len(tops))
	for _, t := range tops {
		out = append(out, entry{Journal: t.Journal, Count: t.Count})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleWords(w http.ResponseWriter, r *http.Request) {
	sub, ok := s.filtered(w, r)
	if !ok {
		return
	}
	k := s.cfg.TopWords
	if raw := r.URL.Query().Get("top_k"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			writeError(w, http.StatusBadRequest, "invalid top_k: "+strconv.Quote(raw))
			return
		}
		k = v
	}
	opt := wordfreq.DefaultOptions()
	if s.cfg.MinTokenLen > 0 {
		opt.MinTokenLen = s.cfg.MinTokenLen
	}
	opt.ExtraStopwords = s.cfg.ExtraStopwords
	type entry struct {
		Word  string `json:"word"`
		Count int    `json:"count"`
	}
	tops := wordfreq.FromTitles(sub, opt).TopK(k)
	out := make([]entry, 0, len(tops))
	for _, t := range tops {
		out = append(out, entry{Word: t.Token, Count: t.Count})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sub, ok := s.filtered(w, r)
	if !ok {
		return
	}
	b, err := dataset.Export(sub)
	if err != nil {
		s.logger.Error("export failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="filtered_metadata.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
