// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package arith

import (
	"github.com/ajroetker/pixelwise/hwy"
)

// Portable kernel sets built on the hwy lane operations. They run on any
// processor and are the fallback tier for every lane width.
var (
	portable128 = newVectorKernels[hwy.FixedTag128]()
	portable256 = newVectorKernels[hwy.FixedTag256]()
	portable512 = newVectorKernels[hwy.FixedTag512]()
)

// Vector kernel sets, one per lane width. They start out as the portable
// sets; architecture files replace them in init() with tables that use the
// processor's vector instructions when it has them.
var (
	Vector128 = portable128
	Vector256 = portable256
	Vector512 = portable512
)

// newVectorKernels builds the portable kernel table for the lane width of T.
//
// Each row is processed in full lanes of T's width with unaligned loads and
// stores. Trailing bytes that do not fill a lane, and rows narrower than one
// lane, go through the scalar kernels.
func newVectorKernels[T hwy.Tag]() *Kernels {
	var tag T
	return &Kernels{
		Name:       tag.Name(),
		ISA:        "swar",
		LaneWidth:  tag.Width(),
		BitwiseAnd: vectorBinary(tag, hwy.And, baseBitwiseAnd),
		BitwiseOr:  vectorBinary(tag, hwy.Or, baseBitwiseOr),
		BitwiseXor: vectorBinary(tag, hwy.Xor, baseBitwiseXor),
		Maximum:    vectorBinary(tag, hwy.Max, baseMaximum),
		Minimum:    vectorBinary(tag, hwy.Min, baseMinimum),
		Subtract: vectorBinary(tag, func(a, b hwy.Vec) hwy.Vec {
			// a - min(a, b) is a-b when a >= b and 0 otherwise.
			return hwy.Sub(a, hwy.Min(a, b))
		}, baseSubtract),
		AbsoluteDifference: vectorBinary(tag, func(a, b hwy.Vec) hwy.Vec {
			return hwy.Sub(hwy.Max(a, b), hwy.Min(a, b))
		}, baseAbsoluteDifference),
		Invert: func(dst, a []byte) {
			ones := hwy.AllOnes(tag)
			vectorUnary(tag, dst, a, func(v hwy.Vec) hwy.Vec {
				return hwy.AndNot(v, ones)
			}, baseInvert)
		},
		Threshold: func(dst, a []byte, t uint8) {
			if t == 0 {
				fill(dst, 255)
				return
			}
			vectorUnary(tag, dst, a, func(v hwy.Vec) hwy.Vec {
				return hwy.BiasFlipGreaterEqual(tag, v, t)
			}, func(dst, a []byte) { baseThreshold(dst, a, t) })
		},
		ThresholdRange: func(dst, a []byte, lo, hi uint8) {
			if lo > hi {
				fill(dst, 0)
				return
			}
			vectorUnary(tag, dst, a, func(v hwy.Vec) hwy.Vec {
				above := hwy.BiasFlipGreater(tag, v, hi)
				return hwy.AndNot(above, hwy.BiasFlipGreaterEqual(tag, v, lo))
			}, func(dst, a []byte) { baseThresholdRange(dst, a, lo, hi) })
		},
		Sum: func(a []byte) uint32 {
			w := tag.Width()
			if len(a) < w {
				return baseSum(a)
			}
			var sum uint32
			i := 0
			for ; i+w <= len(a); i += w {
				sum += hwy.ReduceSum(hwy.Load(tag, a[i:]))
			}
			return sum + baseSum(a[i:])
		},
	}
}

func vectorBinary(tag hwy.Tag, lane func(a, b hwy.Vec) hwy.Vec, tail binaryRow) binaryRow {
	w := tag.Width()
	return func(dst, a, b []byte) {
		n := len(dst)
		if n < w {
			tail(dst, a, b)
			return
		}
		i := 0
		for ; i+w <= n; i += w {
			hwy.Store(lane(hwy.Load(tag, a[i:]), hwy.Load(tag, b[i:])), dst[i:])
		}
		if i < n {
			tail(dst[i:], a[i:], b[i:])
		}
	}
}

func vectorUnary(tag hwy.Tag, dst, a []byte, lane func(v hwy.Vec) hwy.Vec, tail unaryRow) {
	w := tag.Width()
	n := len(dst)
	if n < w {
		tail(dst, a)
		return
	}
	i := 0
	for ; i+w <= n; i += w {
		hwy.Store(lane(hwy.Load(tag, a[i:])), dst[i:])
	}
	if i < n {
		tail(dst[i:], a[i:])
	}
}
