package bc7

import "fmt"

// Split rearranges a BC1-block-count-agnostic stream of N 16-byte BC7
// blocks into two gathered regions: every block's header bytes (mode
// prefix, partition, rotation, index-selection, endpoints, p-bits,
// whichever of those the block's mode carries) in block order, followed
// by every block's index bytes in block order. dst must be exactly
// len(src) bytes. Mode is re-derived per block from its own leading byte,
// so no side channel is needed to tell Join where one block's header ends
// and the next begins.
func Split(src, dst []byte) error {
	if len(src)%BlockSize != 0 {
		return fmt.Errorf("bc7: split: input length %d is not a multiple of %d", len(src), BlockSize)
	}
	if len(dst) != len(src) {
		return fmt.Errorf("bc7: split: dst length %d != src length %d", len(dst), len(src))
	}
	n := len(src) / BlockSize

	// First pass: compute the header-region length so index bytes can be
	// written starting at the right offset in dst.
	headerTotal := 0
	for i := 0; i < n; i++ {
		block := src[i*BlockSize : (i+1)*BlockSize]
		mode := DetectMode(block[0])
		headerTotal += Modes[mode].HeaderBytes()
	}

	headerCursor := 0
	indexCursor := headerTotal
	for i := 0; i < n; i++ {
		block := src[i*BlockSize : (i+1)*BlockSize]
		mode := DetectMode(block[0])
		hb := Modes[mode].HeaderBytes()
		ib := Modes[mode].IndexBytes()

		copy(dst[headerCursor:headerCursor+hb], block[:hb])
		copy(dst[indexCursor:indexCursor+ib], block[hb:])
		headerCursor += hb
		indexCursor += ib
	}
	return nil
}

// Join is the exact inverse of Split: given a stream previously produced
// by Split (of N blocks, N = len(src)/BlockSize), it reconstructs the
// original 16-byte-per-block BC7 stream into dst.
func Join(src, dst []byte) error {
	if len(src)%BlockSize != 0 {
		return fmt.Errorf("bc7: join: input length %d is not a multiple of %d", len(src), BlockSize)
	}
	if len(dst) != len(src) {
		return fmt.Errorf("bc7: join: dst length %d != src length %d", len(dst), len(src))
	}
	n := len(src) / BlockSize

	// First pass over the header region alone: each block's header byte 0
	// self-identifies its mode, which tells us how many bytes its header
	// run occupies and therefore where the next block's header starts.
	modes := make([]int, n)
	headerCursor := 0
	for i := 0; i < n; i++ {
		mode := DetectMode(src[headerCursor])
		modes[i] = mode
		headerCursor += Modes[mode].HeaderBytes()
	}
	headerTotal := headerCursor

	headerCursor = 0
	indexCursor := headerTotal
	for i := 0; i < n; i++ {
		mode := modes[i]
		hb := Modes[mode].HeaderBytes()
		ib := Modes[mode].IndexBytes()

		block := dst[i*BlockSize : (i+1)*BlockSize]
		copy(block[:hb], src[headerCursor:headerCursor+hb])
		copy(block[hb:], src[indexCursor:indexCursor+ib])
		headerCursor += hb
		indexCursor += ib
	}
	return nil
}
