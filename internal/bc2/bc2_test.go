package bc2

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/sewer56/dxtxform/internal/colour"
)

func TestTransformInverse_RoundTrip_AllParams(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	variants := []colour.Variant{colour.None, colour.V1, colour.V2, colour.V3}
	for _, v := range variants {
		for _, split := range []bool{false, true} {
			p := Params{Decorr: v, Split: split}
			for _, n := range []int{0, 1, 3, 40} {
				src := make([]byte, n*BlockSize)
				r.Read(src)
				transformed := make([]byte, len(src))
				if err := Transform(src, transformed, p); err != nil {
					t.Fatalf("%+v n=%d: Transform: %v", p, n, err)
				}
				back := make([]byte, len(src))
				if err := Inverse(transformed, back, p); err != nil {
					t.Fatalf("%+v n=%d: Inverse: %v", p, n, err)
				}
				if !bytes.Equal(back, src) {
					t.Fatalf("%+v n=%d: round trip mismatch", p, n)
				}
			}
		}
	}
}

func TestValidateLen_Errors(t *testing.T) {
	if err := Transform(make([]byte, 15), make([]byte, 15), Params{}); err == nil {
		t.Fatal("expected error for non-multiple-of-16 length")
	}
	if err := Transform(make([]byte, 16), make([]byte, 32), Params{}); err == nil {
		t.Fatal("expected error for mismatched dst length")
	}
}
