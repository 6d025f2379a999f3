// Package normalize implements the BC1/BC2/BC3 block canonicalisation
// pass (spec §4.3, Invariant I3, property P3): blocks whose encoding is
// ambiguous (multiple distinct byte patterns decode to the same pixels)
// are rewritten to the single most repetitive byte pattern that decodes
// identically, improving downstream entropy-coder compression without
// altering a single decoded pixel. BC7 carries no such pass — its
// partition/mode space has no cheap, broadly-applicable equivalent
// ambiguity to collapse, and spec §4.3 excludes it outright.
//
// The approach mirrors the teacher's predictor-mode canonicalisation
// (internal/lossless/encode_predictor.go): decode once to check whether
// a cheaper, more repetitive encoding would produce the same pixels,
// and only rewrite when it provably does.
package normalize

import (
	"encoding/binary"

	"github.com/sewer56/dxtxform/internal/blockdec"
)

const (
	bc1BlockSize  = 8
	bc23BlockSize = 16
)

// Mode selects which of the two canonical forms a solid-opaque block
// collapses to (spec §4.3, §6). Both decode to the same pixels; they
// differ only in which endpoint carries the colour and which is zeroed.
type Mode int

const (
	// ReplicateColour writes the solid colour into both C0 and C1.
	ReplicateColour Mode = iota
	// ZeroColour writes the solid colour into C0 only and zeroes C1.
	ZeroColour
)

// buildSolidEndpoints returns the (C0, C1) pair Mode prescribes for a
// block whose every texel is the single colour c.
func buildSolidEndpoints(c uint16, mode Mode) (c0, c1 uint16) {
	if mode == ZeroColour {
		return c, 0
	}
	return c, c
}

// solidColour reports whether every texel of a decoded block shares the
// same RGB (alpha is ignored — callers check alpha separately).
func solidColour(b blockdec.Block) (r, g, bl uint8, ok bool) {
	r, g, bl = b[0].R, b[0].G, b[0].B
	for _, px := range b[1:] {
		if px.R != r || px.G != g || px.B != bl {
			return 0, 0, 0, false
		}
	}
	return r, g, bl, true
}

// allTransparent reports whether every texel's alpha is zero.
func allTransparent(b blockdec.Block) bool {
	for _, px := range b {
		if px.A != 0 {
			return false
		}
	}
	return true
}

// pack565 quantises 8-bit RGB down to a 565 word via truncation, matching
// the bit-replication expansion blockdec uses on decode.
func pack565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// BC1 canonicalises a single 8-byte BC1 block in place. It only rewrites
// blocks that are entirely transparent or a single solid opaque colour;
// every other block (general two/four-colour gradients) is left
// untouched, since no cheaper encoding is guaranteed to reproduce its
// exact per-texel colours.
func BC1(block []byte, mode Mode) {
	if len(block) != bc1BlockSize {
		return
	}
	decoded := blockdec.DecodeBC1(block)

	if allTransparent(decoded) {
		binary.LittleEndian.PutUint16(block[0:2], 0)
		binary.LittleEndian.PutUint16(block[2:4], 0)
		binary.LittleEndian.PutUint32(block[4:8], 0xFFFFFFFF)
		return
	}

	r, g, b, ok := solidColour(decoded)
	if !ok || !allOpaque(decoded) {
		return
	}
	c := pack565(r, g, b)
	c0, c1 := buildSolidEndpoints(c, mode)
	// Re-expand and verify the quantised colour decodes back to the same
	// RGB *and* alpha before committing: a block whose original endpoints
	// already sit off the 565 grid in a way this truncation wouldn't
	// reproduce, or whose palette selection would flip any texel into
	// BC1's three-colour punch-through transparency, must be left alone
	// rather than silently corrupted.
	if !decodesToSameSolidColour(c0, c1, decoded) {
		return
	}
	binary.LittleEndian.PutUint16(block[0:2], c0)
	binary.LittleEndian.PutUint16(block[2:4], c1)
	binary.LittleEndian.PutUint32(block[4:8], 0)
}

// allOpaque reports whether every texel's alpha is 0xFF.
func allOpaque(b blockdec.Block) bool {
	for _, px := range b {
		if px.A != 0xFF {
			return false
		}
	}
	return true
}

func decodesToSameSolidColour(c0, c1 uint16, want blockdec.Block) bool {
	probe := make([]byte, bc1BlockSize)
	binary.LittleEndian.PutUint16(probe[0:2], c0)
	binary.LittleEndian.PutUint16(probe[2:4], c1)
	binary.LittleEndian.PutUint32(probe[4:8], 0)
	got := blockdec.DecodeBC1(probe)
	for i := range got {
		if got[i].R != want[i].R || got[i].G != want[i].G || got[i].B != want[i].B || got[i].A != want[i].A {
			return false
		}
	}
	return true
}

// BC2 canonicalises the opaque colour sub-block of a 16-byte BC2 block in
// place (bytes 8..16). BC2's explicit 4-bit alpha sub-block (bytes 0..8)
// has no encoding ambiguity — every nibble already maps to exactly one
// alpha value — so it is never touched.
func BC2(block []byte, mode Mode) {
	if len(block) != bc23BlockSize {
		return
	}
	canonicaliseOpaqueColour(block[8:16], mode)
}

func canonicaliseOpaqueColour(colour []byte, mode Mode) {
	probeFull := make([]byte, 16)
	copy(probeFull[8:], colour)
	decoded := blockdec.DecodeBC2(probeFull)
	r, g, b, ok := solidColour(decoded)
	if !ok {
		return
	}
	c := pack565(r, g, b)
	c0, c1 := buildSolidEndpoints(c, mode)
	probe := make([]byte, 16)
	binary.LittleEndian.PutUint16(probe[8:10], c0)
	binary.LittleEndian.PutUint16(probe[10:12], c1)
	got := blockdec.DecodeBC2(probe)
	for i := range got {
		if got[i].R != r || got[i].G != g || got[i].B != b {
			return
		}
	}
	binary.LittleEndian.PutUint16(colour[0:2], c0)
	binary.LittleEndian.PutUint16(colour[2:4], c1)
	binary.LittleEndian.PutUint32(colour[4:8], 0)
}

// BC3 canonicalises a 16-byte BC3 block in place: its opaque colour
// sub-block exactly as BC2, plus its interpolated alpha sub-block when
// every texel shares one alpha value.
func BC3(block []byte, mode Mode) {
	if len(block) != bc23BlockSize {
		return
	}
	decoded := blockdec.DecodeBC3(block)

	a := decoded[0].A
	solidAlpha := true
	for _, px := range decoded[1:] {
		if px.A != a {
			solidAlpha = false
			break
		}
	}
	if solidAlpha {
		block[0], block[1] = a, a
		for i := 2; i < 8; i++ {
			block[i] = 0
		}
	}

	canonicaliseOpaqueColour(block[8:16], mode)
}
