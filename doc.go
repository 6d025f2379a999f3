// Package dxtxform implements lossless, reversible byte-permutation
// transforms for GPU block-compressed texture data (the BC1/BC2/BC3/BC7
// family, commonly called DXT/BCn). Each transform rearranges a
// compressed texture's bytes into a form a general-purpose entropy
// coder downstream (deflate, zstd, or any other byte-oriented
// compressor) compresses better, without altering a single decoded
// pixel: Inverse undoes Transform exactly, byte for byte.
//
// A texture is passed to Transform as a flat byte slice together with
// the Format it was encoded with; Transform writes an equally-sized
// result into a caller-supplied dst using the Params given for that
// point in the format's transform parameter lattice, and Inverse must be
// called with the same Params. No header is embedded in the output:
// WriteParams and ReadParams encode and decode those Params as a 4-byte
// header that the caller stores alongside the stream. AutoTransform chooses that
// point automatically by estimating the compressed size of a handful of
// candidates and keeping the smallest.
package dxtxform
