// Package colour implements the RGB565 packing and YCoCg-R decorrelation
// primitives shared by the BC1/BC2/BC3 splitters (spec §4.1).
package colour

// Variant names one of the three reversible YCoCg-R transforms a BC1/BC2/
// BC3 colour endpoint can be decorrelated with (spec §4.1, §3).
type Variant uint8

const (
	None Variant = iota
	V1
	V2
	V3
)

// String renders the variant name for diagnostics and test failure messages.
func (v Variant) String() string {
	switch v {
	case None:
		return "None"
	case V1:
		return "V1"
	case V2:
		return "V2"
	case V3:
		return "V3"
	default:
		return "Invalid"
	}
}

// Valid reports whether v is one of the four legal decorrelation states.
func (v Variant) Valid() bool {
	return v <= V3
}

// Colour565 unpacks R(5)|G(6)|B(5) from a little-endian 16-bit word.
type Colour565 struct {
	R, G, B uint16
}

// Unpack565 splits a packed RGB565 word into its three channel magnitudes.
func Unpack565(c uint16) Colour565 {
	return Colour565{
		R: (c >> 11) & 0x1F,
		G: (c >> 5) & 0x3F,
		B: c & 0x1F,
	}
}

// Pack565 reassembles a Colour565 into a packed 16-bit word, masking each
// field to its native width.
func Pack565(c Colour565) uint16 {
	return ((c.R & 0x1F) << 11) | ((c.G & 0x3F) << 5) | (c.B & 0x1F)
}

const mask5 = 0x1F

// Decorrelate applies the named YCoCg-R forward transform to a packed
// RGB565 colour, returning the transformed value in the same 565 packing
// (Y in the G-slot, Co in the R-slot, Cg in the B-slot).
//
// R, B and the upper 5 bits of G are all equal-width (5-bit) channels, so
// the classic reversible colour transform (Co = R-B; t = B+(Co>>1);
// Cg = G-t; Y = t+(Cg>>1)) applies to them directly with mod-32
// arithmetic. G's low bit carries no information the transform needs and
// is passed through unchanged into Y's low bit, which is why §3 notes
// "decorrelation operates on the upper 5 bits of G so the residual bit is
// preserved" — without that passthrough the transform would not be a
// bijection on 16-bit colours.
//
// For None (or any value other than V1, V2 or V3) c is returned
// unchanged; the splitters skip the call for None.
func Decorrelate(v Variant, c uint16) uint16 {
	u := Unpack565(c)
	r, g5, b := u.R, u.G>>1, u.B
	residual := u.G & 1

	var y5, co, cg uint16
	switch v {
	case V1:
		co = (r - b) & mask5
		t := (b + (co >> 1)) & mask5
		cg = (g5 - t) & mask5
		y5 = (t + (cg >> 1)) & mask5
	case V2:
		co = (r - b) & mask5
		t := (b + (co >> 1)) & mask5
		cg = (g5 - t) & mask5
		y5 = t
	case V3:
		co = (r - b) & mask5
		cg = (g5 - ((r + b) >> 1)) & mask5
		y5 = (b + (co >> 1)) & mask5
	default:
		return c
	}
	return Pack565(Colour565{R: co, G: (y5 << 1) | residual, B: cg})
}

// Undecorrelate is the exact inverse of Decorrelate for the same variant:
// Undecorrelate(v, Decorrelate(v, c)) == c for every v in {V1,V2,V3} and
// every 16-bit c (spec P6).
func Undecorrelate(v Variant, c uint16) uint16 {
	u := Unpack565(c)
	co, y, cg := u.R, u.G, u.B
	residual := y & 1
	y5 := y >> 1

	var r, g5, b uint16
	switch v {
	case V1:
		t := (y5 - (cg >> 1)) & mask5
		g5 = (cg + t) & mask5
		b = (t - (co >> 1)) & mask5
		r = (b + co) & mask5
	case V2:
		t := y5
		g5 = (cg + t) & mask5
		b = (t - (co >> 1)) & mask5
		r = (b + co) & mask5
	case V3:
		b = (y5 - (co >> 1)) & mask5
		r = (co + b) & mask5
		g5 = (cg + ((r + b) >> 1)) & mask5
	default:
		return c
	}
	return Pack565(Colour565{R: r, G: (g5 << 1) | residual, B: b})
}

// Expand565 converts a packed RGB565 colour to 8-bit-per-channel RGB by
// bit replication, matching the standard BCn decode expansion.
func Expand565(c uint16) (r, g, b uint8) {
	u := Unpack565(c)
	r = uint8((u.R << 3) | (u.R >> 2))
	g = uint8((u.G << 2) | (u.G >> 4))
	b = uint8((u.B << 3) | (u.B >> 2))
	return
}

// RoundTrips565 reports whether an 8888 colour (r,g,b,a) survives a
// 565-pack/expand cycle unchanged, including the alpha-channel contract
// of spec §4.1: alpha must be 0xFF (opaque) or 0x00 (BC1 punch-through
// transparent) for the colour to be eligible at all. On success it
// returns the packed 565 representation.
func RoundTrips565(r, g, b, a uint8) (uint16, bool) {
	if a != 0xFF && a != 0x00 {
		return 0, false
	}
	packed := Pack565(Colour565{
		R: uint16(r) >> 3,
		G: uint16(g) >> 2,
		B: uint16(b) >> 3,
	})
	er, eg, eb := Expand565(packed)
	return packed, er == r && eg == g && eb == b
}
