// Package estimate implements the pluggable size Estimator the
// auto-selector (spec §4.6) uses to score each candidate parameter
// tuple. An Estimator never needs to be a real compressor — only
// monotonic with the compressed size a real downstream codec would
// produce — so three qualities of estimator are provided: a fast
// heuristic match-length estimator for the inner loop of the parameter
// search, and two real-compressor estimators (deflate, zstd) for
// callers willing to pay for a more faithful score.
package estimate

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
)

// Estimator scores a byte buffer; lower is better. The auto-selector
// (internal/auto) runs one Estimator per candidate and picks the
// minimum, so implementations need only be internally consistent, not
// calibrated to any particular real compressed format.
//
// scratch, sized by a prior call to MaxCompressedSize(len(data)), is an
// optional caller-owned destination buffer real-compressor estimators
// can encode into instead of allocating their own; LZ-match estimators
// that never materialise compressed bytes are free to ignore it.
type Estimator interface {
	EstimateSize(data, scratch []byte) (int, error)
	MaxCompressedSize(n int) int
}

// DeflateEstimator scores a buffer by its actual DEFLATE-compressed
// size, using klauspost/compress/flate at the given level.
type DeflateEstimator struct {
	Level int
}

// MaxCompressedSize returns a conservative upper bound on a DEFLATE
// stream's size for n input bytes, following the same shape as zlib's
// own deflateBound: worst case is stored blocks plus their framing.
func (e DeflateEstimator) MaxCompressedSize(n int) int {
	return n + n>>12 + n>>14 + 32
}

// EstimateSize compresses data with DEFLATE, writing into scratch when
// it has enough capacity, and returns the compressed byte count.
func (e DeflateEstimator) EstimateSize(data, scratch []byte) (int, error) {
	level := e.Level
	if level == 0 {
		level = flate.DefaultCompression
	}
	buf := bytes.NewBuffer(scratch[:0])
	w, err := flate.NewWriter(buf, level)
	if err != nil {
		return 0, fmt.Errorf("estimate: deflate: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return 0, fmt.Errorf("estimate: deflate: %w", err)
	}
	if err := w.Close(); err != nil {
		return 0, fmt.Errorf("estimate: deflate: %w", err)
	}
	return buf.Len(), nil
}

// ZstdEstimator scores a buffer by its actual zstd-compressed size,
// using klauspost/compress/zstd at the given level.
type ZstdEstimator struct {
	Level zstd.EncoderLevel
}

// MaxCompressedSize returns a conservative upper bound on a zstd
// frame's size for n input bytes: the input itself (as a "raw block"
// fallback) plus frame and block header overhead.
func (e ZstdEstimator) MaxCompressedSize(n int) int {
	return n + n>>8 + 64
}

// EstimateSize compresses data with zstd, writing into scratch when it
// has enough capacity, and returns the compressed byte count.
func (e ZstdEstimator) EstimateSize(data, scratch []byte) (int, error) {
	level := e.Level
	if level == 0 {
		level = zstd.SpeedDefault
	}
	buf := bytes.NewBuffer(scratch[:0])
	w, err := zstd.NewWriter(buf, zstd.WithEncoderLevel(level))
	if err != nil {
		return 0, fmt.Errorf("estimate: zstd: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return 0, fmt.Errorf("estimate: zstd: %w", err)
	}
	if err := w.Close(); err != nil {
		return 0, fmt.Errorf("estimate: zstd: %w", err)
	}
	return buf.Len(), nil
}
