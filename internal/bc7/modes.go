// Package bc7 implements the splitter/joiner for BC7's variable-mode
// 128-bit block layout (spec §3, §4.4, §4.5).
//
// BC7 packs eight structurally different block layouts ("modes") behind a
// unary prefix (1 to 8 bits). The exact mode-to-field-list table is left
// as an implementer's choice by spec §4.4/§9 ("The frozen layout table is
// a design decision the implementer MUST pin before first release"). The
// layout pinned here — see DESIGN.md — groups each block's non-index bits
// (mode prefix, partition, rotation, index-selection, colour/alpha
// endpoints, p-bits) into one "header" byte run and its index bits into a
// second "index" byte run, both rounded up to whole bytes at the natural
// bit boundary computed from the mode table below. This keeps every
// operation byte-sliced (no cross-byte bit accounting across blocks is
// needed) while still separating the typically highly-compressible
// endpoint/header bytes from the typically near-random index bytes,
// which is the same separation concern BC1's colour/index split serves.
package bc7

// Mode describes the fixed-width fields of one of BC7's eight block modes.
type Mode struct {
	ID                int
	PrefixLen         int // unary mode-prefix length in bits (mode+1, except mode 7 = 8)
	PartitionBits     int
	NumSubsets        int
	RotationBits      int
	IndexSelectionBit int
	ColorBits         int // bits per R/G/B channel per endpoint
	AlphaBits         int // bits per A channel per endpoint (0 if mode has no alpha)
	PBits             int // total explicit p-bits in the block (0, 2, 4 or 6)
}

// endpointBits returns the total bits spent on colour+alpha endpoints.
func (m Mode) endpointBits() int {
	return m.NumSubsets * 2 * (3*m.ColorBits + m.AlphaBits)
}

// fixedBits returns every bit of a block except the index bits: the mode
// prefix, partition/rotation/index-selection fields, endpoints and p-bits.
func (m Mode) fixedBits() int {
	return m.PrefixLen + m.PartitionBits + m.RotationBits + m.IndexSelectionBit + m.endpointBits() + m.PBits
}

// IndexBits returns the number of index bits remaining in a 128-bit block
// once every other field (computed from well-known BC7 field widths) is
// accounted for. This matches the true BC7 anchor-index-reduced index
// bit count exactly without needing an explicit per-partition anchor
// table: the anchor reduction is, by definition, whatever bit budget the
// fixed fields don't already consume.
func (m Mode) IndexBits() int {
	return blockBits - m.fixedBits()
}

// HeaderBytes returns the number of leading bytes of a 16-byte block this
// mode's non-index fields occupy, rounded up to the next whole byte.
func (m Mode) HeaderBytes() int {
	nonIndexBits := blockBits - m.IndexBits()
	return (nonIndexBits + 7) / 8
}

// IndexBytes returns the number of trailing bytes of a 16-byte block this
// mode's index field occupies.
func (m Mode) IndexBytes() int {
	return BlockSize - m.HeaderBytes()
}

const (
	// BlockSize is the fixed BC7 block size in bytes.
	BlockSize = 16
	blockBits = BlockSize * 8
)

// Modes is indexed by mode ID (0..7); see the BC7 functional specification
// for the canonical field-width table these numbers come from.
var Modes = [8]Mode{
	{ID: 0, PrefixLen: 1, PartitionBits: 4, NumSubsets: 3, ColorBits: 4, PBits: 6},
	{ID: 1, PrefixLen: 2, PartitionBits: 6, NumSubsets: 2, ColorBits: 6, PBits: 2},
	{ID: 2, PrefixLen: 3, PartitionBits: 6, NumSubsets: 3, ColorBits: 5, PBits: 0},
	{ID: 3, PrefixLen: 4, PartitionBits: 6, NumSubsets: 2, ColorBits: 7, PBits: 4},
	{ID: 4, PrefixLen: 5, NumSubsets: 1, RotationBits: 2, IndexSelectionBit: 1, ColorBits: 5, AlphaBits: 6},
	{ID: 5, PrefixLen: 6, NumSubsets: 1, RotationBits: 2, ColorBits: 7, AlphaBits: 8},
	{ID: 6, PrefixLen: 7, NumSubsets: 1, ColorBits: 7, AlphaBits: 7, PBits: 2},
	{ID: 7, PrefixLen: 8, PartitionBits: 6, NumSubsets: 2, ColorBits: 5, AlphaBits: 5, PBits: 4},
}

// DetectMode reads the unary mode prefix starting at bit 0 of a block's
// first byte and returns the mode ID (0..7). Every valid BC7 block's
// first byte contains the complete prefix: the widest (mode 7) is
// exactly 8 bits, i.e. the whole byte.
func DetectMode(firstByte byte) int {
	for m := 0; m < 8; m++ {
		if firstByte&(1<<uint(m)) != 0 {
			return m
		}
	}
	// firstByte == 0 never occurs in valid BC7 data (every mode's prefix
	// contains exactly one set bit within the first byte); treat it as
	// mode 7, whose prefix (seven zero bits then a one in bit 7) has the
	// most leading zeros of any mode. Split and Join make the same choice
	// for such a byte, so the round trip still holds.
	return 7
}

// encodePrefix returns a byte whose low PrefixLen bits are the mode's
// unary prefix (mode zero bits followed by a single one bit), matching
// what DetectMode must read back. Used by tests to build blocks of a
// chosen mode; Join copies each block's stored header bytes, prefix
// included, and does not call it.
func encodePrefix(mode int) byte {
	return 1 << uint(mode)
}
