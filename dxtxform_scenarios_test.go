package dxtxform

import (
	"bytes"
	"testing"
)

// These tests transcribe the concrete end-to-end scenarios verbatim,
// byte for byte, as a traceable complement to the generic randomised
// round-trip tests elsewhere in this package.

func TestScenario_S1_BC1OpaqueNoParamsIsNoOp(t *testing.T) {
	src := []byte{0xE0, 0x07, 0x1F, 0x00, 0x00, 0x00, 0x00, 0x00}
	p := Params{Decorr: DecorrNone, Split: false}

	dst := make([]byte, len(src))
	if _, err := Transform(FormatBC1, src, dst, p); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dst, src) {
		t.Fatalf("N=1 default layout = % x, want no-op % x", dst, src)
	}

	back := make([]byte, len(src))
	if _, err := Inverse(FormatBC1, dst, back, p); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back, src) {
		t.Fatalf("inverse(output) = % x, want % x", back, src)
	}
}

func TestScenario_S2_BC1EndpointSplit(t *testing.T) {
	b1 := []byte{0xE0, 0x07, 0x1F, 0x00, 0x00, 0x00, 0x00, 0x00}
	b2 := []byte{0x00, 0xF8, 0x1F, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}
	src := append(append([]byte{}, b1...), b2...)
	p := Params{Decorr: DecorrNone, Split: true}

	dst := make([]byte, len(src))
	if _, err := Transform(FormatBC1, src, dst, p); err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0xE0, 0x07, 0x00, 0xF8, // C0_1 C0_2
		0x1F, 0x00, 0x1F, 0x00, // C1_1 C1_2
		0x00, 0x00, 0x00, 0x00, // I_1
		0xFF, 0xFF, 0xFF, 0xFF, // I_2
	}
	if !bytes.Equal(dst, want) {
		t.Fatalf("split output = % x, want % x", dst, want)
	}

	back := make([]byte, len(src))
	if _, err := Inverse(FormatBC1, dst, back, p); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back, src) {
		t.Fatalf("inverse(output) = % x, want % x", back, src)
	}
}

func TestScenario_S3_BC1DecorrelateV1RoundTrips(t *testing.T) {
	src := []byte{0xE0, 0x07, 0x1F, 0x00, 0x00, 0x00, 0x00, 0x00}
	p := Params{Decorr: DecorrV1, Split: false}

	dst := make([]byte, len(src))
	if _, err := Transform(FormatBC1, src, dst, p); err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(dst[0:4], src[0:4]) {
		t.Fatal("V1-decorrelated endpoints should differ from the original for non-trivial colours")
	}
	if !bytes.Equal(dst[4:8], src[4:8]) {
		t.Fatalf("indices should be untouched by decorrelation: got % x, want % x", dst[4:8], src[4:8])
	}

	back := make([]byte, len(src))
	if _, err := Inverse(FormatBC1, dst, back, p); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back, src) {
		t.Fatalf("inverse restores S1's input: got % x, want % x", back, src)
	}
}

func TestScenario_S4_BC3NormaliseSolidOpaque(t *testing.T) {
	block := []byte{
		0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0xF8, 0x00, 0xF8, 0x00, 0x00, 0x00, 0x00,
	}
	before := make([]byte, len(block))
	copy(before, block)

	if err := Normalise(FormatBC3, block, ZeroColour); err != nil {
		t.Fatal(err)
	}

	if block[8] != 0x00 || block[9] != 0xF8 || block[10] != 0 || block[11] != 0 {
		t.Fatalf("colour half = % x, want C0=0xF800 C1=0x0000", block[8:16])
	}
	if block[12] != 0 || block[13] != 0 || block[14] != 0 || block[15] != 0 {
		t.Fatalf("colour indices = % x, want all-zero", block[12:16])
	}
}

func TestScenario_S5_AutoSelectorDeterministic(t *testing.T) {
	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i * 37)
	}
	dst1 := make([]byte, len(data))
	dst2 := make([]byte, len(data))

	p1, err := AutoTransform(FormatBC1, data, dst1, LZMatchEstimator{}, true)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := AutoTransform(FormatBC1, data, dst2, LZMatchEstimator{}, true)
	if err != nil {
		t.Fatal(err)
	}
	if p1 != p2 {
		t.Fatalf("auto-selector is non-deterministic across two runs: %+v vs %+v", p1, p2)
	}
	if !bytes.Equal(dst1, dst2) {
		t.Fatal("auto-selector produced different output bytes across two runs of the same input")
	}
}

// constLenEstimator always reports len(data), independent of params: the
// stub estimator from S6.
type constLenEstimator struct{}

func (constLenEstimator) EstimateSize(data, scratch []byte) (int, error) { return len(data), nil }
func (constLenEstimator) MaxCompressedSize(n int) int                    { return 0 }

func TestScenario_S6_StubEstimatorPicksFirstCandidate(t *testing.T) {
	data := make([]byte, 32)
	dst := make([]byte, len(data))
	got, err := AutoTransform(FormatBC1, data, dst, constLenEstimator{}, true)
	if err != nil {
		t.Fatal(err)
	}
	want := Params{Decorr: DecorrNone, Split: false}
	if got != want {
		t.Fatalf("AutoTransform with a tied stub estimator = %+v, want first candidate %+v", got, want)
	}
}

func TestNormaliseMode_ZeroColourVsReplicateColour(t *testing.T) {
	block := func() []byte {
		b := make([]byte, 8)
		b[0], b[1] = 0x34, 0x12
		b[2], b[3] = 0x34, 0x12
		return b
	}

	replicate := block()
	if err := Normalise(FormatBC1, replicate, ReplicateColour); err != nil {
		t.Fatal(err)
	}
	if replicate[0] != replicate[2] || replicate[1] != replicate[3] {
		t.Fatalf("ReplicateColour: C0 != C1, got % x", replicate[0:4])
	}

	zero := block()
	if err := Normalise(FormatBC1, zero, ZeroColour); err != nil {
		t.Fatal(err)
	}
	if zero[2] != 0 || zero[3] != 0 {
		t.Fatalf("ZeroColour: C1 != 0, got % x", zero[2:4])
	}
}
