package bc1

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/sewer56/dxtxform/internal/colour"
)

func randomBlocks(n int, r *rand.Rand) []byte {
	b := make([]byte, n*BlockSize)
	r.Read(b)
	return b
}

func TestTransformInverse_RoundTrip_AllParams(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	variants := []colour.Variant{colour.None, colour.V1, colour.V2, colour.V3}
	for _, v := range variants {
		for _, split := range []bool{false, true} {
			p := Params{Decorr: v, Split: split}
			for _, n := range []int{0, 1, 3, 50} {
				src := randomBlocks(n, r)
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

func TestTransform_SplitGathersEndpoints(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	src := randomBlocks(4, r)
	dst := make([]byte, len(src))
	if err := Transform(src, dst, Params{Decorr: colour.None, Split: true}); err != nil {
		t.Fatal(err)
	}
	// With no decorrelation, the C0 stream must equal the concatenation of
	// each block's first two bytes, verbatim.
	for i := 0; i < 4; i++ {
		want := src[i*BlockSize : i*BlockSize+2]
		got := dst[2*i : 2*i+2]
		if !bytes.Equal(got, want) {
			t.Errorf("block %d: c0 stream = %x, want %x", i, got, want)
		}
	}
}

func TestValidateLen_Errors(t *testing.T) {
	if err := Transform(make([]byte, 7), make([]byte, 7), Params{}); err == nil {
		t.Fatal("expected error for non-multiple-of-8 length")
	}
	if err := Transform(make([]byte, 8), make([]byte, 16), Params{}); err == nil {
		t.Fatal("expected error for mismatched dst length")
	}
}
