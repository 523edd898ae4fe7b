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

package hwy

import "simd/archsimd"

// This file provides the AVX2 counterparts of the lane operations that have
// no single archsimd method. Bitwise ops, unsigned Max/Min and Sub map
// directly onto archsimd.Uint8x16 and archsimd.Uint8x32 methods.

// BiasFlipGreater_AVX2_U8x16 returns 0xFF where v > threshold as unsigned
// bytes. See BiasFlipGreater.
func BiasFlipGreater_AVX2_U8x16(v archsimd.Uint8x16, threshold uint8) archsimd.Uint8x16 {
	bias := archsimd.BroadcastUint8x16(biasMask)
	t := archsimd.BroadcastInt8x16(int8(threshold ^ biasMask))
	return v.Xor(bias).AsInt8x16().Greater(t).ToInt8x16().AsUint8x16()
}

// BiasFlipGreaterEqual_AVX2_U8x16 returns 0xFF where v >= threshold.
func BiasFlipGreaterEqual_AVX2_U8x16(v archsimd.Uint8x16, threshold uint8) archsimd.Uint8x16 {
	if threshold == 0 {
		return archsimd.BroadcastUint8x16(0xFF)
	}
	return BiasFlipGreater_AVX2_U8x16(v, threshold-1)
}

// BiasFlipGreater_AVX2_U8x32 returns 0xFF where v > threshold as unsigned
// bytes. See BiasFlipGreater.
func BiasFlipGreater_AVX2_U8x32(v archsimd.Uint8x32, threshold uint8) archsimd.Uint8x32 {
	bias := archsimd.BroadcastUint8x32(biasMask)
	t := archsimd.BroadcastInt8x32(int8(threshold ^ biasMask))
	return v.Xor(bias).AsInt8x32().Greater(t).ToInt8x32().AsUint8x32()
}

// BiasFlipGreaterEqual_AVX2_U8x32 returns 0xFF where v >= threshold.
func BiasFlipGreaterEqual_AVX2_U8x32(v archsimd.Uint8x32, threshold uint8) archsimd.Uint8x32 {
	if threshold == 0 {
		return archsimd.BroadcastUint8x32(0xFF)
	}
	return BiasFlipGreater_AVX2_U8x32(v, threshold-1)
}

// SumBytes_AVX2_U8x16 sums each group of 8 bytes (VPSADBW against zero) and
// returns the group sums as 64-bit lanes, ready to accumulate.
func SumBytes_AVX2_U8x16(v archsimd.Uint8x16) archsimd.Uint64x2 {
	return v.SumAbsDiff(archsimd.BroadcastUint8x16(0)).AsUint64x2()
}

// SumBytes_AVX2_U8x32 is the 256-bit form of SumBytes_AVX2_U8x16.
func SumBytes_AVX2_U8x32(v archsimd.Uint8x32) archsimd.Uint64x4 {
	return v.SumAbsDiff(archsimd.BroadcastUint8x32(0)).AsUint64x4()
}
