package dxtxform

import "github.com/sewer56/dxtxform/internal/header"

// Format identifies one of the four BCn block layouts this package
// transforms.
type Format uint8

const (
	FormatBC1 Format = Format(header.BC1)
	FormatBC2 Format = Format(header.BC2)
	FormatBC3 Format = Format(header.BC3)
	FormatBC7 Format = Format(header.BC7)
)

// BlockSize returns the fixed block size in bytes for f: 8 for BC1, 16
// for BC2/BC3/BC7.
func (f Format) BlockSize() int {
	switch f {
	case FormatBC1:
		return 8
	case FormatBC2, FormatBC3, FormatBC7:
		return 16
	default:
		return 0
	}
}

func (f Format) String() string {
	switch f {
	case FormatBC1:
		return "BC1"
	case FormatBC2:
		return "BC2"
	case FormatBC3:
		return "BC3"
	case FormatBC7:
		return "BC7"
	default:
		return "Invalid"
	}
}

func (f Format) valid() bool { return f <= FormatBC7 }

func (f Format) toHeader() header.Format { return header.Format(f) }
