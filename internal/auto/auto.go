// Package auto implements the auto-selector (spec §4.6): it enumerates
// the BC1/BC2/BC3 parameter lattice (decorrelation variant x endpoint
// split), transforms the input once per candidate into a pooled scratch
// buffer, scores each with a pluggable Estimator, and returns the
// minimum-cost candidate. A thoroughness flag chooses between a 4-point
// fast path (decorr ∈ {None, V1}) and the full 8-point lattice (decorr
// ∈ {None, V1, V2, V3}). Ties are broken by a fixed preference order —
// None < V1 < V2 < V3, then split=false < true — so the selection is
// deterministic across runs and platforms regardless of thoroughness.
// A candidate whose Estimator call errors is skipped rather than
// aborting the whole search; only when every candidate's estimate fails
// does the search itself fail, with ErrAllEstimatesFailed.
package auto

import (
	"errors"
	"fmt"

	"github.com/sewer56/dxtxform/internal/bc1"
	"github.com/sewer56/dxtxform/internal/bc2"
	"github.com/sewer56/dxtxform/internal/bc3"
	"github.com/sewer56/dxtxform/internal/colour"
	"github.com/sewer56/dxtxform/internal/estimate"
	"github.com/sewer56/dxtxform/internal/pool"
)

// ErrAllEstimatesFailed is returned when every candidate's Estimator call
// failed; the caller's own structural errors (Transform rejecting a
// malformed buffer) are returned as-is rather than wrapped in this, since
// they aren't an estimator failure.
var ErrAllEstimatesFailed = errors.New("auto: estimator failed for every candidate")

// Candidates enumerates the BC1/BC2/BC3 parameter lattice in the spec's
// tie-break preference order: this order IS the tie-break, since the
// search below only replaces the current best on a strictly lower
// score. When thorough is false it returns only the 4-point fast path
// (decorr ∈ {None, V1}); when true it returns the full 8-point lattice
// (decorr ∈ {None, V1, V2, V3}). Either way split ∈ {false, true} and
// the fast path's candidates are a prefix of the thorough path's, so
// tie-break order is identical regardless of thoroughness.
func Candidates(thorough bool) []struct {
	Decorr colour.Variant
	Split  bool
} {
	variants := []colour.Variant{colour.None, colour.V1}
	if thorough {
		variants = []colour.Variant{colour.None, colour.V1, colour.V2, colour.V3}
	}
	splits := []bool{false, true}
	out := make([]struct {
		Decorr colour.Variant
		Split  bool
	}, 0, len(variants)*len(splits))
	for _, v := range variants {
		for _, s := range splits {
			out = append(out, struct {
				Decorr colour.Variant
				Split  bool
			}{v, s})
		}
	}
	return out
}

func estimate1(est estimate.Estimator, data []byte) (int, error) {
	scratch := pool.Get(est.MaxCompressedSize(len(data)))
	defer pool.Put(scratch)
	return est.EstimateSize(data, scratch)
}

// SelectBC1 returns the lowest-estimated-size parameter choice for a
// stream of BC1 blocks, searching the fast or thorough candidate set
// per thorough.
func SelectBC1(data []byte, est estimate.Estimator, thorough bool) (bc1.Params, error) {
	scratch := pool.Get(len(data))
	defer pool.Put(scratch)

	var best bc1.Params
	bestCost := -1
	var lastEstimateErr error
	for _, c := range Candidates(thorough) {
		p := bc1.Params{Decorr: c.Decorr, Split: c.Split}
		if err := bc1.Transform(data, scratch[:len(data)], p); err != nil {
			return bc1.Params{}, fmt.Errorf("auto: bc1 candidate %+v: %w", p, err)
		}
		cost, err := estimate1(est, scratch[:len(data)])
		if err != nil {
			lastEstimateErr = err
			continue
		}
		if bestCost < 0 || cost < bestCost {
			bestCost = cost
			best = p
		}
	}
	if bestCost < 0 {
		return bc1.Params{}, fmt.Errorf("%w: %v", ErrAllEstimatesFailed, lastEstimateErr)
	}
	return best, nil
}

// SelectBC2 returns the lowest-estimated-size parameter choice for a
// stream of BC2 blocks, searching the fast or thorough candidate set
// per thorough.
func SelectBC2(data []byte, est estimate.Estimator, thorough bool) (bc2.Params, error) {
	scratch := pool.Get(len(data))
	defer pool.Put(scratch)

	var best bc2.Params
	bestCost := -1
	var lastEstimateErr error
	for _, c := range Candidates(thorough) {
		p := bc2.Params{Decorr: c.Decorr, Split: c.Split}
		if err := bc2.Transform(data, scratch[:len(data)], p); err != nil {
			return bc2.Params{}, fmt.Errorf("auto: bc2 candidate %+v: %w", p, err)
		}
		cost, err := estimate1(est, scratch[:len(data)])
		if err != nil {
			lastEstimateErr = err
			continue
		}
		if bestCost < 0 || cost < bestCost {
			bestCost = cost
			best = p
		}
	}
	if bestCost < 0 {
		return bc2.Params{}, fmt.Errorf("%w: %v", ErrAllEstimatesFailed, lastEstimateErr)
	}
	return best, nil
}

// SelectBC3 returns the lowest-estimated-size parameter choice for a
// stream of BC3 blocks, searching the fast or thorough candidate set
// per thorough. The single Split flag drives both BC3's colour-endpoint
// split and its alpha-endpoint split together (see DESIGN.md), so the
// spec's separate "split_alpha_endpoints" axis does not enlarge the
// lattice searched here.
func SelectBC3(data []byte, est estimate.Estimator, thorough bool) (bc3.Params, error) {
	scratch := pool.Get(len(data))
	defer pool.Put(scratch)

	var best bc3.Params
	bestCost := -1
	var lastEstimateErr error
	for _, c := range Candidates(thorough) {
		p := bc3.Params{Decorr: c.Decorr, Split: c.Split}
		if err := bc3.Transform(data, scratch[:len(data)], p); err != nil {
			return bc3.Params{}, fmt.Errorf("auto: bc3 candidate %+v: %w", p, err)
		}
		cost, err := estimate1(est, scratch[:len(data)])
		if err != nil {
			lastEstimateErr = err
			continue
		}
		if bestCost < 0 || cost < bestCost {
			bestCost = cost
			best = p
		}
	}
	if bestCost < 0 {
		return bc3.Params{}, fmt.Errorf("%w: %v", ErrAllEstimatesFailed, lastEstimateErr)
	}
	return best, nil
}
