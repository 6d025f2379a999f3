package dxtxform

import "errors"

// Sentinel errors returned by this package's exported functions. Wrap
// with fmt.Errorf("dxtxform: ...: %w", err) rather than constructing new
// sentinels for variations on these conditions.
var (
	// ErrInvalidLength is returned when a buffer's length is not a
	// multiple of the format's block size.
	ErrInvalidLength = errors.New("dxtxform: input length is not a multiple of the format's block size")

	// ErrOutputBufferTooSmall is returned when a caller-supplied
	// destination buffer cannot hold the result.
	ErrOutputBufferTooSmall = errors.New("dxtxform: output buffer is smaller than input")

	// ErrBufferOverlap is returned when src and dst alias in a way that
	// would corrupt the in-progress transform.
	ErrBufferOverlap = errors.New("dxtxform: src and dst buffers overlap")

	// ErrUnsupportedFormat is returned for a Format value outside the
	// BC1/BC2/BC3/BC7 set this package implements.
	ErrUnsupportedFormat = errors.New("dxtxform: unsupported format")

	// ErrInvalidParameterHeader is returned when a stream's leading
	// 4-byte parameter header fails validation (reserved bits set, an
	// invalid format or decorrelation variant, or BC7 carrying
	// decorrelation/split bits it must not).
	ErrInvalidParameterHeader = errors.New("dxtxform: invalid parameter header")

	// ErrEstimatorFailed is returned when AutoTransform's Estimator
	// returns an error for every candidate.
	ErrEstimatorFailed = errors.New("dxtxform: estimator failed for every candidate")

	// ErrAllocationFailed is returned when a required scratch or output
	// buffer could not be obtained.
	ErrAllocationFailed = errors.New("dxtxform: allocation failed")
)
