// Package header implements the 4-byte self-describing parameter header
// that describes a transformed stream (spec §4.7): the format id and
// the chosen parameter tuple, packed canonically with every unused bit
// zeroed so two encoders given the same parameters always emit the same
// four bytes.
package header

import (
	"fmt"

	"github.com/sewer56/dxtxform/internal/colour"
)

// Size is the fixed header length in bytes.
const Size = 4

// Format identifies which BCn layout a header describes.
type Format uint8

const (
	BC1 Format = iota
	BC2
	BC3
	BC7
)

func (f Format) String() string {
	switch f {
	case BC1:
		return "BC1"
	case BC2:
		return "BC2"
	case BC3:
		return "BC3"
	case BC7:
		return "BC7"
	default:
		return "Invalid"
	}
}

func (f Format) valid() bool { return f <= BC7 }

// Params is the full parameter tuple a header encodes. Decorr and Split
// are meaningful only for BC1/BC2/BC3; BC7 carries no decorrelation or
// endpoint-split parameter (its header/index byte split, package bc7, is
// not a tunable the header needs to record), and Encode always zeros
// those fields' bits for a BC7 header so two BC7 headers with any
// leftover Decorr/Split value still collide to the same canonical bytes.
type Params struct {
	Format Format
	Decorr colour.Variant
	Split  bool
}

// Encode packs p into its canonical 4-byte form. byte 0 bits [0:2)
// carry Format, bits [2:4) carry Decorr, bit 4 carries Split; every
// other bit, including all of bytes 1-3, is reserved and always zero.
func Encode(p Params) ([Size]byte, error) {
	var out [Size]byte
	if !p.Format.valid() {
		return out, fmt.Errorf("header: invalid format %d", p.Format)
	}
	if !p.Decorr.Valid() {
		return out, fmt.Errorf("header: invalid decorrelation variant %d", p.Decorr)
	}

	b0 := byte(p.Format) & 0x3
	if p.Format != BC7 {
		b0 |= (byte(p.Decorr) & 0x3) << 2
		if p.Split {
			b0 |= 1 << 4
		}
	}
	out[0] = b0
	return out, nil
}

// Decode unpacks a 4-byte header, rejecting any set reserved bit so a
// corrupted or foreign header is caught rather than silently
// misinterpreted (spec §4.7, Invariant on the parameter header).
func Decode(b [Size]byte) (Params, error) {
	if b[1] != 0 || b[2] != 0 || b[3] != 0 {
		return Params{}, fmt.Errorf("header: reserved bytes 1-3 must be zero, got %v", b[1:])
	}
	format := Format(b[0] & 0x3)
	if !format.valid() {
		return Params{}, fmt.Errorf("header: invalid format %d", format)
	}

	decorr := colour.Variant((b[0] >> 2) & 0x3)
	split := b[0]&(1<<4) != 0
	reservedBits := b[0] &^ 0x1F
	if reservedBits != 0 {
		return Params{}, fmt.Errorf("header: reserved bits set in byte 0: %#02x", b[0])
	}

	if format == BC7 {
		if decorr != colour.None || split {
			return Params{}, fmt.Errorf("header: BC7 header must not carry decorr/split bits")
		}
	} else if !decorr.Valid() {
		return Params{}, fmt.Errorf("header: invalid decorrelation variant %d", decorr)
	}

	return Params{Format: format, Decorr: decorr, Split: split}, nil
}
