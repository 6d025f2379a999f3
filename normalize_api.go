package dxtxform

import (
	"fmt"

	"github.com/sewer56/dxtxform/internal/normalize"
)

// Normalise canonicalises ambiguous solid/transparent block encodings in
// place (spec §4.3, Invariant I3): every block is rewritten, if needed,
// to the most repetitive byte pattern that decodes to the same pixels.
// mode chooses which of the two solid-opaque canonical forms is
// preferred (ReplicateColour or ZeroColour); it has no effect on the
// solid-transparent or solid-alpha forms, which have exactly one
// canonical byte pattern each. Normalise never changes len(data) and
// never changes a decoded pixel.
//
// BC7 has no normalisation pass (spec §4.3 excludes it); Normalise is a
// no-op for FormatBC7, returning nil.
func Normalise(format Format, data []byte, mode NormaliseMode) error {
	if !format.valid() {
		return fmt.Errorf("%w: %d", ErrUnsupportedFormat, format)
	}
	blockSize := format.BlockSize()
	if len(data)%blockSize != 0 {
		return fmt.Errorf("%w: format %s requires a multiple of %d bytes, got %d", ErrInvalidLength, format, blockSize, len(data))
	}

	n := len(data) / blockSize
	m := mode.toInternal()
	switch format {
	case FormatBC1:
		for i := 0; i < n; i++ {
			normalize.BC1(data[i*blockSize:(i+1)*blockSize], m)
		}
	case FormatBC2:
		for i := 0; i < n; i++ {
			normalize.BC2(data[i*blockSize:(i+1)*blockSize], m)
		}
	case FormatBC3:
		for i := 0; i < n; i++ {
			normalize.BC3(data[i*blockSize:(i+1)*blockSize], m)
		}
	case FormatBC7:
		// No-op by design; see the doc comment above.
	}
	return nil
}
