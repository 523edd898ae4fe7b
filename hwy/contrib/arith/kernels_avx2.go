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


//go:build amd64 && goexperiment.simd

package arith

import (
	"simd/archsimd"

	"github.com/ajroetker/pixelwise/hwy"
)

// AVX2 kernel sets. The 128-bit table uses the VEX-encoded xmm forms, so both
// tables require AVX2 and are installed together by z_arith_amd64.go.
var (
	avx2Kernels128 = &Kernels{
		Name:       "128bit",
		ISA:        "avx2",
		LaneWidth:  16,
		BitwiseAnd: binaryU8x16(func(a, b archsimd.Uint8x16) archsimd.Uint8x16 { return a.And(b) }, baseBitwiseAnd),
		BitwiseOr:  binaryU8x16(func(a, b archsimd.Uint8x16) archsimd.Uint8x16 { return a.Or(b) }, baseBitwiseOr),
		BitwiseXor: binaryU8x16(func(a, b archsimd.Uint8x16) archsimd.Uint8x16 { return a.Xor(b) }, baseBitwiseXor),
		Maximum:    binaryU8x16(func(a, b archsimd.Uint8x16) archsimd.Uint8x16 { return a.Max(b) }, baseMaximum),
		Minimum:    binaryU8x16(func(a, b archsimd.Uint8x16) archsimd.Uint8x16 { return a.Min(b) }, baseMinimum),
		Subtract: binaryU8x16(func(a, b archsimd.Uint8x16) archsimd.Uint8x16 {
			return a.Sub(a.Min(b))
		}, baseSubtract),
		AbsoluteDifference: binaryU8x16(func(a, b archsimd.Uint8x16) archsimd.Uint8x16 {
			return a.Max(b).Sub(a.Min(b))
		}, baseAbsoluteDifference),
		Invert: func(dst, a []byte) {
			ones := archsimd.BroadcastUint8x16(0xFF)
			unaryU8x16(dst, a, func(v archsimd.Uint8x16) archsimd.Uint8x16 {
				return v.Xor(ones)
			}, baseInvert)
		},
		Threshold: func(dst, a []byte, t uint8) {
			unaryU8x16(dst, a, func(v archsimd.Uint8x16) archsimd.Uint8x16 {
				return hwy.BiasFlipGreaterEqual_AVX2_U8x16(v, t)
			}, func(dst, a []byte) { baseThreshold(dst, a, t) })
		},
		ThresholdRange: func(dst, a []byte, lo, hi uint8) {
			if lo > hi {
				fill(dst, 0)
				return
			}
			unaryU8x16(dst, a, func(v archsimd.Uint8x16) archsimd.Uint8x16 {
				// archsimd AndNot is x &^ y.
				return hwy.BiasFlipGreaterEqual_AVX2_U8x16(v, lo).AndNot(hwy.BiasFlipGreater_AVX2_U8x16(v, hi))
			}, func(dst, a []byte) { baseThresholdRange(dst, a, lo, hi) })
		},
		Sum: func(a []byte) uint32 {
			var acc archsimd.Uint64x2
			i := 0
			for ; i+16 <= len(a); i += 16 {
				acc = acc.Add(hwy.SumBytes_AVX2_U8x16(archsimd.LoadUint8x16Slice(a[i:])))
			}
			var groups [2]uint64
			acc.StoreSlice(groups[:])
			return uint32(groups[0]+groups[1]) + baseSum(a[i:])
		},
	}

	avx2Kernels256 = &Kernels{
		Name:       "256bit",
		ISA:        "avx2",
		LaneWidth:  32,
		BitwiseAnd: binaryU8x32(func(a, b archsimd.Uint8x32) archsimd.Uint8x32 { return a.And(b) }, baseBitwiseAnd),
		BitwiseOr:  binaryU8x32(func(a, b archsimd.Uint8x32) archsimd.Uint8x32 { return a.Or(b) }, baseBitwiseOr),
		BitwiseXor: binaryU8x32(func(a, b archsimd.Uint8x32) archsimd.Uint8x32 { return a.Xor(b) }, baseBitwiseXor),
		Maximum:    binaryU8x32(func(a, b archsimd.Uint8x32) archsimd.Uint8x32 { return a.Max(b) }, baseMaximum),
		Minimum:    binaryU8x32(func(a, b archsimd.Uint8x32) archsimd.Uint8x32 { return a.Min(b) }, baseMinimum),
		Subtract: binaryU8x32(func(a, b archsimd.Uint8x32) archsimd.Uint8x32 {
			return a.Sub(a.Min(b))
		}, baseSubtract),
		AbsoluteDifference: binaryU8x32(func(a, b archsimd.Uint8x32) archsimd.Uint8x32 {
			return a.Max(b).Sub(a.Min(b))
		}, baseAbsoluteDifference),
		Invert: func(dst, a []byte) {
			ones := archsimd.BroadcastUint8x32(0xFF)
			unaryU8x32(dst, a, func(v archsimd.Uint8x32) archsimd.Uint8x32 {
				return v.Xor(ones)
			}, baseInvert)
		},
		Threshold: func(dst, a []byte, t uint8) {
			unaryU8x32(dst, a, func(v archsimd.Uint8x32) archsimd.Uint8x32 {
				return hwy.BiasFlipGreaterEqual_AVX2_U8x32(v, t)
			}, func(dst, a []byte) { baseThreshold(dst, a, t) })
		},
		ThresholdRange: func(dst, a []byte, lo, hi uint8) {
			if lo > hi {
				fill(dst, 0)
				return
			}
			unaryU8x32(dst, a, func(v archsimd.Uint8x32) archsimd.Uint8x32 {
				return hwy.BiasFlipGreaterEqual_AVX2_U8x32(v, lo).AndNot(hwy.BiasFlipGreater_AVX2_U8x32(v, hi))
			}, func(dst, a []byte) { baseThresholdRange(dst, a, lo, hi) })
		},
		Sum: func(a []byte) uint32 {
			var acc archsimd.Uint64x4
			i := 0
			for ; i+32 <= len(a); i += 32 {
				acc = acc.Add(hwy.SumBytes_AVX2_U8x32(archsimd.LoadUint8x32Slice(a[i:])))
			}
			var groups [4]uint64
			acc.StoreSlice(groups[:])
			return uint32(groups[0]+groups[1]+groups[2]+groups[3]) + baseSum(a[i:])
		},
	}
)

// binaryU8x16 runs op over full 16-byte lanes of a row and hands the rest to
// tail. Rows shorter than one lane go entirely through tail.
func binaryU8x16(op func(a, b archsimd.Uint8x16) archsimd.Uint8x16, tail binaryRow) binaryRow {
	return func(dst, a, b []byte) {
		n := len(dst)
		i := 0
		for ; i+16 <= n; i += 16 {
			op(archsimd.LoadUint8x16Slice(a[i:]), archsimd.LoadUint8x16Slice(b[i:])).StoreSlice(dst[i:])
		}
		if i < n {
			tail(dst[i:], a[i:], b[i:])
		}
	}
}

func unaryU8x16(dst, a []byte, op func(v archsimd.Uint8x16) archsimd.Uint8x16, tail unaryRow) {
	n := len(dst)
	i := 0
	for ; i+16 <= n; i += 16 {
		op(archsimd.LoadUint8x16Slice(a[i:])).StoreSlice(dst[i:])
	}
	if i < n {
		tail(dst[i:], a[i:])
	}
}

func binaryU8x32(op func(a, b archsimd.Uint8x32) archsimd.Uint8x32, tail binaryRow) binaryRow {
	return func(dst, a, b []byte) {
		n := len(dst)
		i := 0
		for ; i+32 <= n; i += 32 {
			op(archsimd.LoadUint8x32Slice(a[i:]), archsimd.LoadUint8x32Slice(b[i:])).StoreSlice(dst[i:])
		}
		if i < n {
			tail(dst[i:], a[i:], b[i:])
		}
	}
}

func unaryU8x32(dst, a []byte, op func(v archsimd.Uint8x32) archsimd.Uint8x32, tail unaryRow) {
	n := len(dst)
	i := 0
	for ; i+32 <= n; i += 32 {
		op(archsimd.LoadUint8x32Slice(a[i:])).StoreSlice(dst[i:])
	}
	if i < n {
		tail(dst[i:], a[i:])
	}
}
