// Package bc2 implements the transform/inverse pair for BC2's fixed
// 16-byte block layout (spec §3, §4.4, §4.5): 8 bytes of explicit 4-bit
// per-texel alpha followed by an opaque-mode BC1 colour sub-block.
//
// The explicit alpha plane carries no colour information and is not
// decorrelated; it is always gathered into its own contiguous region
// ahead of the colour region, regardless of Params.Split — Split only
// governs the further endpoint-split of the colour half, which reuses
// package bc1 entirely since BC2's embedded colour block is byte-for-
// byte a BC1 block.
package bc2

import (
	"fmt"

	"github.com/sewer56/dxtxform/internal/bc1"
	"github.com/sewer56/dxtxform/internal/colour"
	"github.com/sewer56/dxtxform/internal/dispatch"
)

// BlockSize is the fixed BC2 block size in bytes.
const BlockSize = 16

// Params selects one point in BC2's transform parameter lattice: the
// colour decorrelation variant (applied to the embedded BC1 colour
// block) and whether the colour endpoints are split into separate C0/C1
// streams. The alpha plane is gathered into its own stream either way.
type Params struct {
	Decorr colour.Variant
	Split  bool
}

func validateLen(src, dst []byte) (n int, err error) {
	if len(src)%BlockSize != 0 {
		return 0, fmt.Errorf("bc2: input length %d is not a multiple of %d", len(src), BlockSize)
	}
	if len(dst) != len(src) {
		return 0, fmt.Errorf("bc2: dst length %d != src length %d", len(dst), len(src))
	}
	return len(src) / BlockSize, nil
}

// Transform applies decorrelation and/or field splitting to a stream of
// N BC2 blocks, per p. The layout is always [Alpha | ColourPairs |
// Indices]: the explicit alpha plane is gathered into its own
// contiguous region unconditionally, then the embedded colour
// sub-block is handed to package bc1, which applies the endpoint-split
// and decorrelation rules to it.
func Transform(src, dst []byte, p Params) error {
	n, err := validateLen(src, dst)
	if err != nil {
		return err
	}

	colourParams := bc1.Params{Decorr: p.Decorr, Split: p.Split}

	alphaStream := dst[0 : 8*n]
	colourRegion := dst[8*n : 16*n]
	dispatch.GatherStride(alphaStream, src, 0, BlockSize, 8, n)
	srcColour := make([]byte, 8*n)
	dispatch.GatherStride(srcColour, src, 8, BlockSize, 8, n)
	return bc1.Transform(srcColour, colourRegion, colourParams)
}

// Inverse is the exact inverse of Transform for the same Params.
func Inverse(src, dst []byte, p Params) error {
	n, err := validateLen(src, dst)
	if err != nil {
		return err
	}

	colourParams := bc1.Params{Decorr: p.Decorr, Split: p.Split}

	alphaStream := src[0 : 8*n]
	colourRegion := src[8*n : 16*n]
	dstColour := make([]byte, 8*n)
	if err := bc1.Inverse(colourRegion, dstColour, colourParams); err != nil {
		return err
	}
	dispatch.ScatterStride(dst, alphaStream, 0, BlockSize, 8, n)
	dispatch.ScatterStride(dst, dstColour, 8, BlockSize, 8, n)
	return nil
}
