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

// Scalar is the byte-at-a-time kernel set. It runs on every platform and
// defines the expected output of every vector backend.
var Scalar = &Kernels{
	Name:               "scalar",
	ISA:                "scalar",
	BitwiseAnd:         baseBitwiseAnd,
	BitwiseOr:          baseBitwiseOr,
	BitwiseXor:         baseBitwiseXor,
	Maximum:            baseMaximum,
	Minimum:            baseMinimum,
	Subtract:           baseSubtract,
	AbsoluteDifference: baseAbsoluteDifference,
	Invert:             baseInvert,
	Threshold:          baseThreshold,
	ThresholdRange:     baseThresholdRange,
	Sum:                baseSum,
}

func baseBitwiseAnd(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] & b[i]
	}
}

func baseBitwiseOr(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] | b[i]
	}
}

func baseBitwiseXor(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

func baseMaximum(dst, a, b []byte) {
	for i := range dst {
		dst[i] = max(a[i], b[i])
	}
}

func baseMinimum(dst, a, b []byte) {
	for i := range dst {
		dst[i] = min(a[i], b[i])
	}
}

// baseSubtract clamps at zero: b > a yields 0.
func baseSubtract(dst, a, b []byte) {
	for i := range dst {
		if b[i] > a[i] {
			dst[i] = 0
		} else {
			dst[i] = a[i] - b[i]
		}
	}
}

func baseAbsoluteDifference(dst, a, b []byte) {
	for i := range dst {
		if a[i] > b[i] {
			dst[i] = a[i] - b[i]
		} else {
			dst[i] = b[i] - a[i]
		}
	}
}

func baseInvert(dst, a []byte) {
	for i := range dst {
		dst[i] = 255 - a[i]
	}
}

// baseThreshold writes 255 where a >= t and 0 elsewhere.
func baseThreshold(dst, a []byte, t uint8) {
	for i := range dst {
		if a[i] < t {
			dst[i] = 0
		} else {
			dst[i] = 255
		}
	}
}

// baseThresholdRange writes 255 where lo <= a <= hi and 0 elsewhere.
func baseThresholdRange(dst, a []byte, lo, hi uint8) {
	for i := range dst {
		if a[i] < lo || a[i] > hi {
			dst[i] = 0
		} else {
			dst[i] = 255
		}
	}
}

// baseSum wraps modulo 2^32.
func baseSum(a []byte) uint32 {
	var sum uint32
	for _, v := range a {
		sum += uint32(v)
	}
	return sum
}

func fill(dst []byte, value uint8) {
	for i := range dst {
		dst[i] = value
	}
}
