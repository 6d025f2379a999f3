package dxtxform

import (
	"fmt"

	"github.com/sewer56/dxtxform/internal/header"
)

// WriteParams encodes format and p into the canonical 4-byte parameter
// header (spec §4.7) that should be stored alongside a transformed
// stream so Inverse can later be called without the caller having to
// remember which Params produced it.
func WriteParams(format Format, p Params) ([header.Size]byte, error) {
	hp := header.Params{Format: format.toHeader(), Decorr: p.Decorr.toInternal(), Split: p.Split}
	b, err := header.Encode(hp)
	if err != nil {
		return b, fmt.Errorf("%w: %s", ErrInvalidParameterHeader, err)
	}
	return b, nil
}

// ReadParams decodes a 4-byte parameter header previously produced by
// WriteParams, rejecting any header with a set reserved bit or an
// out-of-range field.
func ReadParams(b [header.Size]byte) (Format, Params, error) {
	hp, err := header.Decode(b)
	if err != nil {
		return 0, Params{}, fmt.Errorf("%w: %s", ErrInvalidParameterHeader, err)
	}
	return Format(hp.Format), Params{Decorr: Variant(hp.Decorr), Split: hp.Split}, nil
}
