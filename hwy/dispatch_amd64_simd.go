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

func init() {
	level, caps := detectCPUFeatures()
	finishDetection(level, caps)
}

// detectCPUFeatures uses the archsimd feature checks so that the detected
// widths match what the archsimd kernels are allowed to execute.
func detectCPUFeatures() (DispatchLevel, Capabilities) {
	// SSE2 is baseline for amd64; the portable 128-bit tier runs everywhere.
	caps := Capabilities{Has128: true}
	level := DispatchSSE2

	if archsimd.X86.AVX2() {
		caps.Has256 = true
		level = DispatchAVX2
	}
	if archsimd.X86.AVX512() {
		caps.Has512 = true
		level = DispatchAVX512
	}
	return level, caps
}

// HasAVX2 reports whether the processor can run the archsimd 128-bit and
// 256-bit byte kernels. Both use VEX-encoded AVX2 instructions.
func HasAVX2() bool {
	return archsimd.X86.AVX2()
}

// HasAVX512 reports whether the processor can run the archsimd 512-bit byte
// kernels (AVX-512 F, BW, DQ, CD and VL).
func HasAVX512() bool {
	return archsimd.X86.AVX512()
}
