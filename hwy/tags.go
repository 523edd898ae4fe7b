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

// Tag represents a vector size tag that determines how many byte lanes
// a Vec holds.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit, etc.)
	Width() int

	// Name returns a human-readable name for this tag ("128bit", "256bit", etc.)
	Name() string
}

// FixedTag128 selects 128-bit lanes (SSE2, NEON).
type FixedTag128 struct{}

// Width returns 16 bytes (128 bits).
func (FixedTag128) Width() int {
	return 16
}

// Name returns "128bit".
func (FixedTag128) Name() string {
	return "128bit"
}

// FixedTag256 selects 256-bit lanes (AVX2).
type FixedTag256 struct{}

// Width returns 32 bytes (256 bits).
func (FixedTag256) Width() int {
	return 32
}

// Name returns "256bit".
func (FixedTag256) Name() string {
	return "256bit"
}

// FixedTag512 selects 512-bit lanes (AVX-512).
type FixedTag512 struct{}

// Width returns 64 bytes (512 bits).
func (FixedTag512) Width() int {
	return 64
}

// Name returns "512bit".
func (FixedTag512) Name() string {
	return "512bit"
}

// TagFor returns the fixed tag for a lane width in bytes, or nil if the width
// is not one of 16, 32 or 64.
func TagFor(width int) Tag {
	switch width {
	case 16:
		return FixedTag128{}
	case 32:
		return FixedTag256{}
	case 64:
		return FixedTag512{}
	default:
		return nil
	}
}
