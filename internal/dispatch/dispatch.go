// Package dispatch implements the one-time CPU feature probe and kernel
// variant selection described in spec §4.8. It follows the teacher's
// dispatch pattern (internal/dsp/cpuid_amd64.go, internal/dsp/dsp.go):
// a cached feature probe populated once, on first use, and a small table
// of function variables chosen from that probe, defaulting to a portable
// scalar implementation that every architecture (including big-endian
// targets, which have none of the probed features) can run.
//
// Unlike the teacher, feature detection here is delegated to
// golang.org/x/sys/cpu instead of a hand-written CPUID asm stub: the
// byte-gather kernels this package dispatches are candidates for
// SIMD acceleration but ship only the portable implementation today,
// leaving the probed Level as the seam a future architecture-specific
// file would switch on.
package dispatch

import (
	"sync"

	"golang.org/x/sys/cpu"
)

// Level names a tier of CPU capability this package has probed for.
type Level int

const (
	// Baseline requires no CPU feature beyond the architecture's ISA
	// floor; every platform, including big-endian ones, runs it.
	Baseline Level = iota
	AVX2
	NEON
)

func (l Level) String() string {
	switch l {
	case AVX2:
		return "avx2"
	case NEON:
		return "neon"
	default:
		return "baseline"
	}
}

var (
	probeOnce sync.Once
	level     Level
)

// probe runs exactly once per process, matching the teacher's
// init()-time CPUID check.
func probe() Level {
	switch {
	case cpu.X86.HasAVX2:
		return AVX2
	case cpu.ARM64.HasASIMD:
		return NEON
	default:
		return Baseline
	}
}

// DetectedLevel returns the CPU capability tier probed for this process,
// probing at most once regardless of how many callers ask.
func DetectedLevel() Level {
	probeOnce.Do(func() {
		level = probe()
	})
	return level
}

// GatherStride is the dispatch table's byte-gather kernel: it copies
// count fields of width fieldLen bytes, spaced stride bytes apart
// starting at offset in src, into consecutive positions in dst. The
// bc1 and bc2 splitters use it to pull one block field (an index word,
// an explicit-alpha plane or an embedded colour block) out of an
// interleaved block stream into its own gathered stream.
//
// Only a portable implementation exists today; DetectedLevel is probed
// regardless so that an AVX2/NEON variant can be substituted later
// without changing any caller.
func GatherStride(dst, src []byte, offset, stride, fieldLen, count int) {
	_ = DetectedLevel()
	for i := 0; i < count; i++ {
		start := offset + i*stride
		copy(dst[i*fieldLen:(i+1)*fieldLen], src[start:start+fieldLen])
	}
}

// ScatterStride is the inverse of GatherStride: it writes count
// fieldLen-byte fields from consecutive positions in src back into
// dst at stride-separated offsets, reconstructing an interleaved block
// stream from a gathered one.
func ScatterStride(dst, src []byte, offset, stride, fieldLen, count int) {
	_ = DetectedLevel()
	for i := 0; i < count; i++ {
		start := offset + i*stride
		copy(dst[start:start+fieldLen], src[i*fieldLen:(i+1)*fieldLen])
	}
}
