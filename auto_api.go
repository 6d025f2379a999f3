package dxtxform

import (
	"errors"
	"fmt"

	"github.com/sewer56/dxtxform/internal/auto"
)

// AutoTransform runs the auto-selector (spec §4.6): for BC1/BC2/BC3 it
// estimates the compressed size of every point in the decorrelation/
// split lattice with est and transforms src with the cheapest, writing
// the result into dst (which must be at least len(src) bytes and must
// not overlap src). thorough selects the search width: false restricts
// the search to the 4-candidate fast path (decorr ∈ {None, V1}); true
// searches the full 8-candidate lattice (decorr ∈ {None, V1, V2, V3}).
// BC7 has no lattice to search — it is transformed with its one fixed
// layout and Params{} is returned unconditionally, regardless of
// thorough.
func AutoTransform(format Format, src, dst []byte, est Estimator, thorough bool) (Params, error) {
	if !format.valid() {
		return Params{}, fmt.Errorf("%w: %d", ErrUnsupportedFormat, format)
	}
	if format == FormatBC7 {
		if _, err := Transform(format, src, dst, Params{}); err != nil {
			return Params{}, err
		}
		return Params{}, nil
	}

	blockSize := format.BlockSize()
	if len(src)%blockSize != 0 {
		return Params{}, fmt.Errorf("%w: format %s requires a multiple of %d bytes, got %d", ErrInvalidLength, format, blockSize, len(src))
	}

	var chosen Params
	var err error
	switch format {
	case FormatBC1:
		res, e := auto.SelectBC1(src, est, thorough)
		if e != nil {
			err = e
			break
		}
		chosen = Params{Decorr: Variant(res.Decorr), Split: res.Split}
	case FormatBC2:
		res, e := auto.SelectBC2(src, est, thorough)
		if e != nil {
			err = e
			break
		}
		chosen = Params{Decorr: Variant(res.Decorr), Split: res.Split}
	case FormatBC3:
		res, e := auto.SelectBC3(src, est, thorough)
		if e != nil {
			err = e
			break
		}
		chosen = Params{Decorr: Variant(res.Decorr), Split: res.Split}
	}
	if err != nil {
		if errors.Is(err, auto.ErrAllEstimatesFailed) {
			return Params{}, fmt.Errorf("%w: %s", ErrEstimatorFailed, err)
		}
		return Params{}, err
	}

	if _, err := Transform(format, src, dst, chosen); err != nil {
		return Params{}, err
	}
	return chosen, nil
}
