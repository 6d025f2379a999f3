package header

import (
	"hash/crc32"
	"math/rand"
	"testing"

	"github.com/sewer56/dxtxform/internal/colour"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	formats := []Format{BC1, BC2, BC3}
	variants := []colour.Variant{colour.None, colour.V1, colour.V2, colour.V3}
	for _, f := range formats {
		for _, v := range variants {
			for _, split := range []bool{false, true} {
				p := Params{Format: f, Decorr: v, Split: split}
				enc, err := Encode(p)
				if err != nil {
					t.Fatalf("%+v: Encode: %v", p, err)
				}
				got, err := Decode(enc)
				if err != nil {
					t.Fatalf("%+v: Decode: %v", p, err)
				}
				if got != p {
					t.Fatalf("round trip mismatch: got %+v, want %+v", got, p)
				}
			}
		}
	}
}

func TestEncode_BC7IgnoresDecorrAndSplit(t *testing.T) {
	enc, err := Encode(Params{Format: BC7, Decorr: colour.V1, Split: true})
	if err != nil {
		t.Fatal(err)
	}
	if enc[0] != byte(BC7) {
		t.Fatalf("BC7 header byte0 = %#02x, want %#02x", enc[0], byte(BC7))
	}
}

func TestDecode_RejectsReservedBits(t *testing.T) {
	var b [Size]byte
	b[1] = 1
	if _, err := Decode(b); err == nil {
		t.Fatal("expected error for nonzero reserved byte")
	}

	b = [Size]byte{}
	b[0] = 1 << 5
	if _, err := Decode(b); err == nil {
		t.Fatal("expected error for nonzero reserved bit in byte 0")
	}
}

func TestDecode_AcceptsValidFormat(t *testing.T) {
	var b [Size]byte
	b[0] = 0 // 0 is BC1, always valid; format only has 2 bits so values 0-3 all map to real formats
	if _, err := Decode(b); err != nil {
		t.Fatalf("unexpected error for valid header: %v", err)
	}
}

func TestDecode_RejectsBC7WithDecorrOrSplitBits(t *testing.T) {
	var b [Size]byte
	b[0] = byte(BC7) | (byte(colour.V1) << 2)
	if _, err := Decode(b); err == nil {
		t.Fatal("expected error for BC7 header with decorr bits set")
	}
}

// TestEncode_ChecksumStableAcrossFuzzedRoundTrip spot-checks that Encode's
// output for a given Params is byte-for-byte stable by hashing many
// independently-produced encodings and requiring every one to collide to
// the same checksum, the way package rac's chunk writer/reader checksum a
// chunk's bytes to catch an accidental re-encoding drift.
func TestEncode_ChecksumStableAcrossFuzzedRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	formats := []Format{BC1, BC2, BC3}
	variants := []colour.Variant{colour.None, colour.V1, colour.V2, colour.V3}

	for _, f := range formats {
		for _, v := range variants {
			for _, split := range []bool{false, true} {
				p := Params{Format: f, Decorr: v, Split: split}
				enc, err := Encode(p)
				if err != nil {
					t.Fatalf("%+v: Encode: %v", p, err)
				}
				want := crc32.ChecksumIEEE(enc[:])

				for i := 0; i < 8; i++ {
					r.Int() // perturb the shared RNG between iterations
					again, err := Encode(p)
					if err != nil {
						t.Fatalf("%+v: Encode: %v", p, err)
					}
					if got := crc32.ChecksumIEEE(again[:]); got != want {
						t.Fatalf("%+v: checksum drifted across repeated encodes: %#08x != %#08x", p, got, want)
					}
				}
			}
		}
	}
}
