package dxtxform

import (
	"github.com/sewer56/dxtxform/internal/colour"
	"github.com/sewer56/dxtxform/internal/normalize"
)

// Variant names one of the three reversible colour-decorrelation
// transforms (spec §4.1) a BC1/BC2/BC3 colour endpoint can be
// transformed with. It has no effect on BC7, which carries no
// decorrelation step.
type Variant uint8

const (
	DecorrNone Variant = Variant(colour.None)
	DecorrV1   Variant = Variant(colour.V1)
	DecorrV2   Variant = Variant(colour.V2)
	DecorrV3   Variant = Variant(colour.V3)
)

func (v Variant) String() string { return colour.Variant(v).String() }

func (v Variant) toInternal() colour.Variant { return colour.Variant(v) }

// Params is one point in a format's transform parameter lattice (spec
// §4.6). Decorr and Split apply to BC1/BC2/BC3; both are ignored for
// BC7, which has exactly one transform layout.
type Params struct {
	Decorr Variant
	Split  bool
}

// NormaliseMode selects which canonical byte pattern a solid-opaque
// BC1/BC2/BC3 colour block collapses to under Normalise (spec §4.3,
// §6). Both forms are pixel-equivalent; they only differ in which
// endpoint carries the colour.
type NormaliseMode int

const (
	// ReplicateColour writes the solid colour into both C0 and C1.
	ReplicateColour NormaliseMode = NormaliseMode(normalize.ReplicateColour)
	// ZeroColour writes the solid colour into C0 and zeroes C1.
	ZeroColour NormaliseMode = NormaliseMode(normalize.ZeroColour)
)

func (m NormaliseMode) toInternal() normalize.Mode { return normalize.Mode(m) }
