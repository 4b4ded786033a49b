// Package wordfreq builds the word-frequency model behind the title word
// cloud.
//
// Tokenization rule, fixed and documented because the cloud is sensitive to
// it: titles are lowercased and split on every run of non-letter, non-digit
// runes (Unicode-aware). Hyphenated compounds therefore split ("COVID-19"
// yields "covid" and "19") and numeric tokens survive on their own. Tokens
// shorter than the minimum length and tokens in the stopword set are dropped.
package wordfreq

import (
	"sort"
	"strings"
	"unicode"

	"github.com/metascope/metascope-cli/internal/dataset"
)

// Options controls tokenization.
type Options struct {
	// MinTokenLen drops tokens shorter than this many runes.
	MinTokenLen int
	// ExtraStopwords are removed in addition to the built-in function words.
	// Domain noise ("covid", "study", ...) belongs here, not in the default
	// list.
	ExtraStopwords []string
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{MinTokenLen: 2}
}

// stopwords is the fixed set of common English function words removed from
// every model.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "of": {}, "in": {},
	"to": {}, "for": {}, "on": {}, "with": {}, "by": {}, "is": {}, "are": {},
	"be": {}, "as": {}, "at": {}, "from": {}, "that": {}, "this": {},
	"it": {}, "its": {}, "was": {}, "were": {}, "we": {}, "our": {},
	"not": {}, "but": {}, "do": {}, "does": {}, "can": {}, "their": {},
}

// Model maps token to occurrence count across all titles of a record set.
type Model map[string]int

// TokenCount is one ranked entry of the model.
type TokenCount struct {
	Token string
	Count int
}

// Tokenize splits one title per the package rule, before stopword and length
// filtering.
func Tokenize(title string) []string {
	return strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// FromTitles accumulates token counts across every title in the set. Empty
// titles contribute nothing; an empty set yields an empty model.
func FromTitles(set *dataset.RecordSet, opt Options) Model {
	extra := make(map[string]struct{}, len(opt.ExtraStopwords))
	for _, w := range opt.ExtraStopwords {
		extra[strings.ToLower(w)] = struct{}{}
	}
	minLen := opt.MinTokenLen
	m := make(Model)
	for _, rec := range set.Records {
		for _, tok := range Tokenize(rec.Title) {
			if len([]rune(tok)) < minLen {
				continue
			}
			if _, ok := stopwords[tok]; ok {
				continue
			}
			if _, ok := extra[tok]; ok {
				continue
			}
			m[tok]++
		}
	}
	return m
}

// TopK returns the k most frequent tokens, count descending, ties broken
// lexicographically so repeated calls rank identically.
func (m Model) TopK(k int) []TokenCount {
	out := make([]TokenCount, 0, len(m))
	for t, c := range m {
		out = append(out, TokenCount{Token: t, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Token < out[j].Token
		}
		return out[i].Count > out[j].Count
	})
	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out
}
