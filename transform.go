package dxtxform

import (
	"fmt"

	"github.com/sewer56/dxtxform/internal/bc1"
	"github.com/sewer56/dxtxform/internal/bc2"
	"github.com/sewer56/dxtxform/internal/bc3"
	"github.com/sewer56/dxtxform/internal/bc7"
)

func validate(format Format, src, dst []byte) error {
	if !format.valid() {
		return fmt.Errorf("%w: %d", ErrUnsupportedFormat, format)
	}
	blockSize := format.BlockSize()
	if len(src)%blockSize != 0 {
		return fmt.Errorf("%w: format %s requires a multiple of %d bytes, got %d", ErrInvalidLength, format, blockSize, len(src))
	}
	if len(dst) < len(src) {
		return fmt.Errorf("%w: need %d bytes, got %d", ErrOutputBufferTooSmall, len(src), len(dst))
	}
	if overlaps(src, dst) {
		return ErrBufferOverlap
	}
	return nil
}

// Transform rewrites src (a stream of format-encoded blocks) into dst
// using the given Params, returning dst's used length (== len(src); dst
// may be larger). src and dst must not overlap and dst must be at least
// len(src) bytes.
func Transform(format Format, src, dst []byte, p Params) (int, error) {
	if err := validate(format, src, dst); err != nil {
		return 0, err
	}
	out := dst[:len(src)]

	switch format {
	case FormatBC1:
		if err := bc1.Transform(src, out, bc1.Params{Decorr: p.Decorr.toInternal(), Split: p.Split}); err != nil {
			return 0, fmt.Errorf("dxtxform: transform: %w", err)
		}
	case FormatBC2:
		if err := bc2.Transform(src, out, bc2.Params{Decorr: p.Decorr.toInternal(), Split: p.Split}); err != nil {
			return 0, fmt.Errorf("dxtxform: transform: %w", err)
		}
	case FormatBC3:
		if err := bc3.Transform(src, out, bc3.Params{Decorr: p.Decorr.toInternal(), Split: p.Split}); err != nil {
			return 0, fmt.Errorf("dxtxform: transform: %w", err)
		}
	case FormatBC7:
		if err := bc7.Split(src, out); err != nil {
			return 0, fmt.Errorf("dxtxform: transform: %w", err)
		}
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedFormat, format)
	}
	return len(src), nil
}

// Inverse is the exact inverse of Transform for the same format and
// Params: Inverse(f, Transform(f, src, dst, p), out, p) reproduces src.
func Inverse(format Format, src, dst []byte, p Params) (int, error) {
	if err := validate(format, src, dst); err != nil {
		return 0, err
	}
	out := dst[:len(src)]

	switch format {
	case FormatBC1:
		if err := bc1.Inverse(src, out, bc1.Params{Decorr: p.Decorr.toInternal(), Split: p.Split}); err != nil {
			return 0, fmt.Errorf("dxtxform: inverse: %w", err)
		}
	case FormatBC2:
		if err := bc2.Inverse(src, out, bc2.Params{Decorr: p.Decorr.toInternal(), Split: p.Split}); err != nil {
			return 0, fmt.Errorf("dxtxform: inverse: %w", err)
		}
	case FormatBC3:
		if err := bc3.Inverse(src, out, bc3.Params{Decorr: p.Decorr.toInternal(), Split: p.Split}); err != nil {
			return 0, fmt.Errorf("dxtxform: inverse: %w", err)
		}
	case FormatBC7:
		if err := bc7.Join(src, out); err != nil {
			return 0, fmt.Errorf("dxtxform: inverse: %w", err)
		}
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedFormat, format)
	}
	return len(src), nil
}
