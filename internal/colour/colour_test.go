package colour

import "testing"

func TestPackUnpack565_RoundTrip(t *testing.T) {
	for c := 0; c < 1<<16; c += 37 {
		u := Unpack565(uint16(c))
		got := Pack565(u)
		if got != uint16(c) {
			t.Fatalf("Pack(Unpack(%#04x)) = %#04x", c, got)
		}
	}
}

func TestDecorrelate_Undecorrelate_RoundTrip_AllVariants(t *testing.T) {
	variants := []Variant{V1, V2, V3}
	for _, v := range variants {
		t.Run(v.String(), func(t *testing.T) {
			for c := 0; c < 1<<16; c++ {
				d := Decorrelate(v, uint16(c))
				got := Undecorrelate(v, d)
				if got != uint16(c) {
					t.Fatalf("%s: Undecorrelate(Decorrelate(%#04x)) = %#04x", v, c, got)
				}
			}
		})
	}
}

func TestDecorrelate_None_IsIdentity(t *testing.T) {
	for _, c := range []uint16{0x0000, 0xFFFF, 0x07E0, 0x001F, 0xF800} {
		if got := Decorrelate(None, c); got != c {
			t.Fatalf("Decorrelate(None, %#04x) = %#04x, want identity", c, got)
		}
		if got := Undecorrelate(None, c); got != c {
			t.Fatalf("Undecorrelate(None, %#04x) = %#04x, want identity", c, got)
		}
	}
}

func TestVariant_Valid(t *testing.T) {
	for _, v := range []Variant{None, V1, V2, V3} {
		if !v.Valid() {
			t.Errorf("%s should be valid", v)
		}
	}
	if Variant(4).Valid() {
		t.Errorf("Variant(4) should be invalid")
	}
}

func TestExpand565_FullWhite(t *testing.T) {
	packed := Pack565(Colour565{R: 0x1F, G: 0x3F, B: 0x1F})
	r, g, b := Expand565(packed)
	if r != 0xFF || g != 0xFF || b != 0xFF {
		t.Fatalf("Expand565(white) = %d,%d,%d", r, g, b)
	}
}

func TestRoundTrips565(t *testing.T) {
	// A colour with nonzero low bits in each channel cannot round-trip.
	if _, ok := RoundTrips565(0x11, 0x22, 0x33, 0xFF); ok {
		t.Fatalf("expected non-round-tripping colour to report false")
	}
	// Green, exactly representable in 565, does round-trip.
	packed, ok := RoundTrips565(0x00, 0xFF, 0x00, 0xFF)
	if !ok {
		t.Fatalf("expected pure green to round-trip")
	}
	if packed != 0x07E0 {
		t.Fatalf("packed = %#04x, want 0x07E0", packed)
	}
	// Wrong alpha value disqualifies the colour regardless of RGB.
	if _, ok := RoundTrips565(0x00, 0xFF, 0x00, 0x80); ok {
		t.Fatalf("expected alpha=0x80 to disqualify round-trip")
	}
}
