package dxtxform

import "github.com/sewer56/dxtxform/internal/estimate"

// Estimator scores a candidate-transformed buffer for AutoTransform;
// lower is better. See internal/estimate for the three estimators this
// package ships.
type Estimator = estimate.Estimator

// LZMatchEstimator is the fast estimator for AutoTransform: a greedy
// LZ77 match-length heuristic, far cheaper per candidate than running a
// real compressor. AutoTransform has no default; the caller always
// passes an Estimator.
type LZMatchEstimator = estimate.LZMatchEstimator

// DeflateEstimator scores a candidate by its real DEFLATE-compressed
// size.
type DeflateEstimator = estimate.DeflateEstimator

// ZstdEstimator scores a candidate by its real zstd-compressed size.
type ZstdEstimator = estimate.ZstdEstimator
