// Package bc3 implements the transform/inverse pair for BC3's fixed
// 16-byte block layout (spec §3, §4.4, §4.5): a 2-byte alpha endpoint
// pair, a 6-byte (48-bit) 3-bit-per-texel alpha index field, and an
// opaque-mode BC1 colour sub-block.
//
// Alpha-endpoint splitting and colour-endpoint splitting are the
// orthogonal, commuting sub-transforms the spec describes: Params.Split
// drives both independently of which colour decorrelation variant is in
// effect, exactly as bc1.Params.Split does for the colour half BC3
// reuses wholesale.
package bc3

import (
	"fmt"

	"github.com/sewer56/dxtxform/internal/bc1"
	"github.com/sewer56/dxtxform/internal/colour"
)

// BlockSize is the fixed BC3 block size in bytes.
const BlockSize = 16

// Params selects one point in BC3's transform parameter lattice: the
// colour decorrelation variant and whether colour/alpha endpoints are
// each split into separate streams.
type Params struct {
	Decorr colour.Variant
	Split  bool
}

func validateLen(src, dst []byte) (n int, err error) {
	if len(src)%BlockSize != 0 {
		return 0, fmt.Errorf("bc3: input length %d is not a multiple of %d", len(src), BlockSize)
	}
	if len(dst) != len(src) {
		return 0, fmt.Errorf("bc3: dst length %d != src length %d", len(dst), len(src))
	}
	return len(src) / BlockSize, nil
}

// Transform applies decorrelation and/or field splitting to a stream of
// N BC3 blocks, per p. The layout is always [AlphaEndpoints | AlphaIndices
// | ColourPairs | Indices]: AlphaIndices is gathered into its own
// contiguous region unconditionally, and AlphaEndpoints is either an
// interleaved (A0,A1) run or, when p.Split, two separate A0/A1 streams
// — mirroring exactly how package bc1 treats the colour endpoints it's
// handed for the colour half.
func Transform(src, dst []byte, p Params) error {
	n, err := validateLen(src, dst)
	if err != nil {
		return err
	}
	colourParams := bc1.Params{Decorr: p.Decorr, Split: p.Split}

	alphaEndpoints := dst[0 : 2*n]
	alphaIndices := dst[2*n : 8*n]
	colourRegion := dst[8*n : 16*n]

	srcColour := make([]byte, 8*n)
	for i := 0; i < n; i++ {
		block := src[i*BlockSize : (i+1)*BlockSize]
		if p.Split {
			alphaEndpoints[i] = block[0]
			alphaEndpoints[n+i] = block[1]
		} else {
			alphaEndpoints[2*i] = block[0]
			alphaEndpoints[2*i+1] = block[1]
		}
		copy(alphaIndices[6*i:6*i+6], block[2:8])
		copy(srcColour[8*i:8*i+8], block[8:16])
	}
	return bc1.Transform(srcColour, colourRegion, colourParams)
}

// Inverse is the exact inverse of Transform for the same Params.
func Inverse(src, dst []byte, p Params) error {
	n, err := validateLen(src, dst)
	if err != nil {
		return err
	}
	colourParams := bc1.Params{Decorr: p.Decorr, Split: p.Split}

	alphaEndpoints := src[0 : 2*n]
	alphaIndices := src[2*n : 8*n]
	colourRegion := src[8*n : 16*n]

	dstColour := make([]byte, 8*n)
	if err := bc1.Inverse(colourRegion, dstColour, colourParams); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		block := dst[i*BlockSize : (i+1)*BlockSize]
		if p.Split {
			block[0] = alphaEndpoints[i]
			block[1] = alphaEndpoints[n+i]
		} else {
			block[0] = alphaEndpoints[2*i]
			block[1] = alphaEndpoints[2*i+1]
		}
		copy(block[2:8], alphaIndices[6*i:6*i+6])
		copy(block[8:16], dstColour[8*i:8*i+8])
	}
	return nil
}
