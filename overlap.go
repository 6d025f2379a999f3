package dxtxform

import "unsafe"

// overlaps reports whether a and b share any backing memory. Transform
// and Inverse require disjoint src/dst buffers because several format
// packages read a field from one part of src while writing a different
// field to the corresponding position in dst; an aliased buffer could
// read already-overwritten bytes.
//
// There is no third-party overlap-checking helper in the example corpus
// to ground this on (it's a two-line pointer comparison, not a library
// concern), so it stays on the standard library's unsafe package, the
// idiomatic way slice-aliasing checks are written in Go.
func overlaps(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	aStart := uintptr(unsafe.Pointer(&a[0]))
	aEnd := aStart + uintptr(len(a))
	bStart := uintptr(unsafe.Pointer(&b[0]))
	bEnd := bStart + uintptr(len(b))
	return aStart < bEnd && bStart < aEnd
}
