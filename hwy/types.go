// Package hwy provides portable byte-lane vector operations with runtime CPU
// capability detection.
//
// It follows the Highway C++ library's design philosophy: write a kernel once
// against a lane abstraction, then instantiate it for every lane width the
// processor supports. A Vec holds one lane of 16, 32 or 64 unsigned bytes,
// chosen by a Tag. The operation set mirrors what the common
// vector ISAs provide for 8-bit data: bitwise logic, unsigned min/max,
// wrapping subtraction and a signed greater-than compare. Anything else, such
// as an unsigned greater-or-equal, is built from those primitives (see
// BiasFlipGreaterEqual).
//
// Basic usage:
//
//	import "github.com/ajroetker/pixelwise/hwy"
//
//	var tag hwy.FixedTag256
//	a := hwy.Load(tag, data1)
//	b := hwy.Load(tag, data2)
//	hwy.Store(hwy.Max(a, b), output)
package hwy

// MaxVecBytes is the width of the widest supported lane.
const MaxVecBytes = 64

const maxWords = MaxVecBytes / 8

// Vec is one vector lane of unsigned bytes.
//
// Vec instances should not be created directly; use Load, Set or Zero instead.
// Operations on two vectors assume both come from the same Tag.
type Vec struct {
	words [maxWords]Word
	n     int // number of words in use
}

// NumLanes returns the number of byte elements in this vector.
func (v Vec) NumLanes() int {
	return v.n * 8
}

// Bytes returns a copy of the vector's elements.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec) Bytes() []byte {
	out := make([]byte, v.NumLanes())
	Store(v, out)
	return out
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec) Store(dst []byte) {
	Store(v, dst)
}
