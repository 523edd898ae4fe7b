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

// NOTE: This file is named "z_arith_amd64.go" (starting with 'z') so that its
// init() runs after every other init() in the package.
//
// Replace the portable vector sets with archsimd kernels when the processor
// has the instructions. Widths it lacks keep the portable sets, so any
// Capabilities value stays safe to execute.

package arith

import "github.com/ajroetker/pixelwise/hwy"

func init() {
	// Respect HWY_NO_SIMD to allow fallback testing
	if hwy.NoSimdEnv() {
		return
	}
	if hwy.HasAVX2() {
		Vector128 = avx2Kernels128
		Vector256 = avx2Kernels256
	}
	if hwy.HasAVX512() {
		Vector512 = avx512Kernels512
	}
}
