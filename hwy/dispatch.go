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

package hwy

import (
	"os"
	"strconv"
	"strings"
)

// DispatchLevel represents the vector instruction set detected on this processor.
type DispatchLevel int

const (
	// DispatchScalar indicates no vector backend, byte-at-a-time code only.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 with byte/word support (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Capabilities tells which lane widths are usable on the current processor.
//
// A Capabilities value is computed once at package initialization (see Detected)
// and never changes afterwards. Consumers such as the arith dispatcher take it
// as an explicit argument, so tests can construct any combination to force a
// particular backend.
type Capabilities struct {
	Has128 bool // 16-byte lanes (SSE2, NEON)
	Has256 bool // 32-byte lanes (AVX2)
	Has512 bool // 64-byte lanes (AVX-512BW)
}

// ScalarOnly is the capability set with every vector backend disabled.
var ScalarOnly = Capabilities{}

// AllWidths enables every lane width regardless of the processor. It is
// mostly useful for tests and benchmarks. A width the processor lacks runs
// on the portable word-parallel tier, since hardware kernels are only
// installed when the matching instructions are present.
var AllWidths = Capabilities{Has128: true, Has256: true, Has512: true}

// Only returns the capability set that enables just the lane width of tag.
func Only(tag Tag) Capabilities {
	var c Capabilities
	switch tag.Width() {
	case 16:
		c.Has128 = true
	case 32:
		c.Has256 = true
	case 64:
		c.Has512 = true
	}
	return c
}

// Supports reports whether lanes of the given width in bytes are enabled.
func (c Capabilities) Supports(width int) bool {
	switch width {
	case 16:
		return c.Has128
	case 32:
		return c.Has256
	case 64:
		return c.Has512
	default:
		return false
	}
}

// Widest returns the widest enabled lane width in bytes, or 0 if none is.
func (c Capabilities) Widest() int {
	switch {
	case c.Has512:
		return 64
	case c.Has256:
		return 32
	case c.Has128:
		return 16
	default:
		return 0
	}
}

// Limit returns a copy of c with every lane width above maxWidth disabled.
func (c Capabilities) Limit(maxWidth int) Capabilities {
	if maxWidth < 64 {
		c.Has512 = false
	}
	if maxWidth < 32 {
		c.Has256 = false
	}
	if maxWidth < 16 {
		c.Has128 = false
	}
	return c
}

// String lists the enabled widths, e.g. "128+256".
func (c Capabilities) String() string {
	var parts []string
	if c.Has128 {
		parts = append(parts, "128")
	}
	if c.Has256 {
		parts = append(parts, "256")
	}
	if c.Has512 {
		parts = append(parts, "512")
	}
	if len(parts) == 0 {
		return "scalar"
	}
	return strings.Join(parts, "+")
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// detected is the capability set for this runtime.
// Set by init() in dispatch_*.go files.
var detected Capabilities

// CurrentLevel returns the instruction set detected at startup.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the widest enabled lane width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512, 0 for scalar.
func CurrentWidth() int {
	return detected.Widest()
}

// CurrentName returns a human-readable name for the detected level.
func CurrentName() string {
	return currentLevel.String()
}

// Detected returns the process-wide capability set.
func Detected() Capabilities {
	return detected
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, every vector backend is disabled regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxWidthEnv returns the lane width cap from HWY_MAX_WIDTH (in bytes), or 0
// when the variable is unset or not a positive integer.
func MaxWidthEnv() int {
	val := os.Getenv("HWY_MAX_WIDTH")
	if val == "" {
		return 0
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// finishDetection applies the environment overrides to the raw hardware capabilities.
func finishDetection(level DispatchLevel, caps Capabilities) {
	if NoSimdEnv() {
		level, caps = DispatchScalar, ScalarOnly
	}
	if limit := MaxWidthEnv(); limit > 0 {
		caps = caps.Limit(limit)
	}
	currentLevel = level
	detected = caps
}
