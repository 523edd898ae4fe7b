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

//go:build amd64 && !goexperiment.simd

package hwy

import "golang.org/x/sys/cpu"

func init() {
	level, caps := detectCPUFeatures()
	finishDetection(level, caps)
}

func detectCPUFeatures() (DispatchLevel, Capabilities) {
	// SSE2 is baseline for amd64, so 128-bit lanes are always usable.
	caps := Capabilities{Has128: true}
	level := DispatchSSE2

	if cpu.X86.HasAVX2 {
		caps.Has256 = true
		level = DispatchAVX2
	}
	// Byte-granular 512-bit ops (VPMINUB/VPMAXUB/VPCMPGTB on zmm) need BW on top of F.
	if cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW {
		caps.Has512 = true
		level = DispatchAVX512
	}
	return level, caps
}
