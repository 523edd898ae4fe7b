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

// avx512Kernels512 needs AVX-512BW for the byte forms of VPMAXUB, VPMINUB,
// VPSUBB and VPCMPGTB on zmm registers.
var avx512Kernels512 = &Kernels{
	Name:       "512bit",
	ISA:        "avx512",
	LaneWidth:  64,
	BitwiseAnd: binaryU8x64(func(a, b archsimd.Uint8x64) archsimd.Uint8x64 { return a.And(b) }, baseBitwiseAnd),
	BitwiseOr:  binaryU8x64(func(a, b archsimd.Uint8x64) archsimd.Uint8x64 { return a.Or(b) }, baseBitwiseOr),
	BitwiseXor: binaryU8x64(func(a, b archsimd.Uint8x64) archsimd.Uint8x64 { return a.Xor(b) }, baseBitwiseXor),
	Maximum:    binaryU8x64(func(a, b archsimd.Uint8x64) archsimd.Uint8x64 { return a.Max(b) }, baseMaximum),
	Minimum:    binaryU8x64(func(a, b archsimd.Uint8x64) archsimd.Uint8x64 { return a.Min(b) }, baseMinimum),
	Subtract: binaryU8x64(func(a, b archsimd.Uint8x64) archsimd.Uint8x64 {
		return a.Sub(a.Min(b))
	}, baseSubtract),
	AbsoluteDifference: binaryU8x64(func(a, b archsimd.Uint8x64) archsimd.Uint8x64 {
		return a.Max(b).Sub(a.Min(b))
	}, baseAbsoluteDifference),
	Invert: func(dst, a []byte) {
		ones := archsimd.BroadcastUint8x64(0xFF)
		unaryU8x64(dst, a, func(v archsimd.Uint8x64) archsimd.Uint8x64 {
			return v.Xor(ones)
		}, baseInvert)
	},
	Threshold: func(dst, a []byte, t uint8) {
		unaryU8x64(dst, a, func(v archsimd.Uint8x64) archsimd.Uint8x64 {
			return hwy.BiasFlipGreaterEqual_AVX512_U8x64(v, t)
		}, func(dst, a []byte) { baseThreshold(dst, a, t) })
	},
	ThresholdRange: func(dst, a []byte, lo, hi uint8) {
		if lo > hi {
			fill(dst, 0)
			return
		}
		unaryU8x64(dst, a, func(v archsimd.Uint8x64) archsimd.Uint8x64 {
			return hwy.BiasFlipGreaterEqual_AVX512_U8x64(v, lo).AndNot(hwy.BiasFlipGreater_AVX512_U8x64(v, hi))
		}, func(dst, a []byte) { baseThresholdRange(dst, a, lo, hi) })
	},
	Sum: func(a []byte) uint32 {
		var acc archsimd.Uint64x8
		i := 0
		for ; i+64 <= len(a); i += 64 {
			acc = acc.Add(hwy.SumBytes_AVX512_U8x64(archsimd.LoadUint8x64Slice(a[i:])))
		}
		var groups [8]uint64
		acc.StoreSlice(groups[:])
		var sum uint64
		for _, g := range groups {
			sum += g
		}
		return uint32(sum) + baseSum(a[i:])
	},
}

func binaryU8x64(op func(a, b archsimd.Uint8x64) archsimd.Uint8x64, tail binaryRow) binaryRow {
	return func(dst, a, b []byte) {
		n := len(dst)
		i := 0
		for ; i+64 <= n; i += 64 {
			op(archsimd.LoadUint8x64Slice(a[i:]), archsimd.LoadUint8x64Slice(b[i:])).StoreSlice(dst[i:])
		}
		if i < n {
			tail(dst[i:], a[i:], b[i:])
		}
	}
}

func unaryU8x64(dst, a []byte, op func(v archsimd.Uint8x64) archsimd.Uint8x64, tail unaryRow) {
	n := len(dst)
	i := 0
	for ; i+64 <= n; i += 64 {
		op(archsimd.LoadUint8x64Slice(a[i:])).StoreSlice(dst[i:])
	}
	if i < n {
		tail(dst[i:], a[i:])
	}
}
