// Package bc1 implements the transform/inverse pair for BC1's fixed
// 8-byte block layout (spec §3, §4.4, §4.5): a 2-byte C0 endpoint, a
// 2-byte C1 endpoint and a 4-byte 2-bit-per-texel index field.
//
// Both sub-transforms the spec names are independent and commute: colour
// decorrelation rewrites C0/C1 in place, and endpoint splitting decides
// whether the fields are gathered into two contiguous streams (colour
// pairs, indices) or three (C0, C1, indices). This mirrors the teacher's predictor
// transforms (internal/lossless/transform.go), which likewise separate
// "what value to write" from "where the plane of values lives in the
// output buffer."
package bc1

import (
	"encoding/binary"
	"fmt"

	"github.com/sewer56/dxtxform/internal/colour"
	"github.com/sewer56/dxtxform/internal/dispatch"
)

// BlockSize is the fixed BC1 block size in bytes.
const BlockSize = 8

// Params selects one point in BC1's transform parameter lattice (spec
// §4.6): the colour decorrelation variant and whether endpoints are
// split into separate streams.
type Params struct {
	Decorr colour.Variant
	Split  bool
}

func validateLen(src, dst []byte) (n int, err error) {
	if len(src)%BlockSize != 0 {
		return 0, fmt.Errorf("bc1: input length %d is not a multiple of %d", len(src), BlockSize)
	}
	if len(dst) != len(src) {
		return 0, fmt.Errorf("bc1: dst length %d != src length %d", len(dst), len(src))
	}
	return len(src) / BlockSize, nil
}

// Transform applies decorrelation and/or endpoint splitting to a stream
// of N BC1 blocks, per p. Even with Split false, the output is not a
// per-block no-op: the default layout already gathers every block's
// colour pair into one contiguous ColourPairs region and every block's
// index word into a separate Indices region — the splitter's only
// identity case is N<=1, where the two regions happen to coincide with
// the original block's own byte order.
func Transform(src, dst []byte, p Params) error {
	n, err := validateLen(src, dst)
	if err != nil {
		return err
	}

	if !p.Split {
		colourPairs := dst[0 : 4*n]
		indices := dst[4*n : 8*n]
		dispatch.GatherStride(indices, src, 4, BlockSize, 4, n)
		for i := 0; i < n; i++ {
			block := src[i*BlockSize : (i+1)*BlockSize]
			out := colourPairs[4*i : 4*i+4]
			writeDecorrelated(out[0:2], block[0:2], p.Decorr)
			writeDecorrelated(out[2:4], block[2:4], p.Decorr)
		}
		return nil
	}

	c0Stream := dst[0 : 2*n]
	c1Stream := dst[2*n : 4*n]
	idxStream := dst[4*n : 8*n]
	dispatch.GatherStride(idxStream, src, 4, BlockSize, 4, n)
	for i := 0; i < n; i++ {
		block := src[i*BlockSize : (i+1)*BlockSize]
		writeDecorrelated(c0Stream[2*i:2*i+2], block[0:2], p.Decorr)
		writeDecorrelated(c1Stream[2*i:2*i+2], block[2:4], p.Decorr)
	}
	return nil
}

// Inverse is the exact inverse of Transform for the same Params.
func Inverse(src, dst []byte, p Params) error {
	n, err := validateLen(src, dst)
	if err != nil {
		return err
	}

	if !p.Split {
		colourPairs := src[0 : 4*n]
		indices := src[4*n : 8*n]
		dispatch.ScatterStride(dst, indices, 4, BlockSize, 4, n)
		for i := 0; i < n; i++ {
			in := colourPairs[4*i : 4*i+4]
			block := dst[i*BlockSize : (i+1)*BlockSize]
			writeUndecorrelated(block[0:2], in[0:2], p.Decorr)
			writeUndecorrelated(block[2:4], in[2:4], p.Decorr)
		}
		return nil
	}

	c0Stream := src[0 : 2*n]
	c1Stream := src[2*n : 4*n]
	idxStream := src[4*n : 8*n]
	dispatch.ScatterStride(dst, idxStream, 4, BlockSize, 4, n)
	for i := 0; i < n; i++ {
		block := dst[i*BlockSize : (i+1)*BlockSize]
		writeUndecorrelated(block[0:2], c0Stream[2*i:2*i+2], p.Decorr)
		writeUndecorrelated(block[2:4], c1Stream[2*i:2*i+2], p.Decorr)
	}
	return nil
}

func writeDecorrelated(dst, src []byte, v colour.Variant) {
	c := binary.LittleEndian.Uint16(src)
	if v != colour.None {
		c = colour.Decorrelate(v, c)
	}
	binary.LittleEndian.PutUint16(dst, c)
}

func writeUndecorrelated(dst, src []byte, v colour.Variant) {
	c := binary.LittleEndian.Uint16(src)
	if v != colour.None {
		c = colour.Undecorrelate(v, c)
	}
	binary.LittleEndian.PutUint16(dst, c)
}
