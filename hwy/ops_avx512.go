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

// BiasFlipGreater_AVX512_U8x64 returns 0xFF where v > threshold as unsigned
// bytes. The compare lands in a mask register and is expanded back to bytes
// with VPMOVM2B.
func BiasFlipGreater_AVX512_U8x64(v archsimd.Uint8x64, threshold uint8) archsimd.Uint8x64 {
	bias := archsimd.BroadcastUint8x64(biasMask)
	t := archsimd.BroadcastInt8x64(int8(threshold ^ biasMask))
	return v.Xor(bias).AsInt8x64().Greater(t).ToInt8x64().AsUint8x64()
}

// BiasFlipGreaterEqual_AVX512_U8x64 returns 0xFF where v >= threshold.
func BiasFlipGreaterEqual_AVX512_U8x64(v archsimd.Uint8x64, threshold uint8) archsimd.Uint8x64 {
	if threshold == 0 {
		return archsimd.BroadcastUint8x64(0xFF)
	}
	return BiasFlipGreater_AVX512_U8x64(v, threshold-1)
}

// SumBytes_AVX512_U8x64 sums each group of 8 bytes into a 64-bit lane.
func SumBytes_AVX512_U8x64(v archsimd.Uint8x64) archsimd.Uint64x8 {
	return v.SumAbsDiff(archsimd.BroadcastUint8x64(0)).AsUint64x8()
}
