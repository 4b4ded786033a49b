// Package sample implements deterministic down-sampling of a dataset into a
// smaller working set. Reproducibility is a contract: the seed is fixed, so
// the same input and size always produce the same sample.
package sample

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/metascope/metascope-cli/internal/dataset"
)

// Seed for the sampling RNG. Fixed so repeated runs over the same input
// produce byte-identical output.
const Seed int64 = 42

// ErrInvalidSampleSize marks a non-positive sample size request.
var ErrInvalidSampleSize = errors.New("invalid sample size")

// Pick selects n records uniformly without replacement, preserving original
// row order. When n is at least the set size, the full set is returned
// unchanged. Selection sampling keeps the pass sequential and the output
// ordered without a shuffle.
func Pick(set *dataset.RecordSet, n int) (*dataset.RecordSet, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d (must be positive)", ErrInvalidSampleSize, n)
	}
	total := set.Len()
	if n >= total {
		return set, nil
	}
	rng := rand.New(rand.NewSource(Seed))
	out := &dataset.RecordSet{
		Records: make([]dataset.Record, 0, n),
		Columns: set.Columns,
	}
	needed := n
	for i, rec := range set.Records {
		remaining := total - i
		if rng.Float64()*float64(remaining) < float64(needed) {
			out.Records = append(out.Records, rec)
			needed--
			if needed == 0 {
				break
			}
		}
	}
	return out, nil
}
