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

// This file provides the portable byte-lane instruction set. Each function
// mirrors a single SSE2/AVX2/AVX-512BW/NEON instruction but is computed as
// word-parallel (SWAR) arithmetic over the 64-bit words of a Vec, so it runs
// on any processor. On amd64 builds with GOEXPERIMENT=simd the arith kernels
// use archsimd types instead (see ops_avx2.go and ops_avx512.go), and these
// functions remain the fallback tier.

// Load reads tag.Width() bytes from src into a vector.
// src may start at any offset; there is no alignment requirement.
// Panics if src is shorter than one lane.
func Load(tag Tag, src []byte) Vec {
	width := tag.Width()
	_ = src[width-1]
	v := Vec{n: width / 8}
	for i := 0; i < v.n; i++ {
		v.words[i] = LoadWord(src[i*8:])
	}
	return v
}

// Store writes all lanes of v to dst. Panics if dst is shorter than one lane.
func Store(v Vec, dst []byte) {
	_ = dst[v.n*8-1]
	for i := 0; i < v.n; i++ {
		StoreWord(v.words[i], dst[i*8:])
	}
}

// Set creates a vector with all lanes set to the same value.
func Set(tag Tag, value uint8) Vec {
	v := Vec{n: tag.Width() / 8}
	w := SplatWord(value)
	for i := 0; i < v.n; i++ {
		v.words[i] = w
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero(tag Tag) Vec {
	return Vec{n: tag.Width() / 8}
}

// AllOnes creates a vector with every bit set.
func AllOnes(tag Tag) Vec {
	return Set(tag, 0xFF)
}

// And performs element-wise bitwise AND.
func And(a, b Vec) Vec {
	for i := 0; i < a.n; i++ {
		a.words[i] &= b.words[i]
	}
	return a
}

// Or performs element-wise bitwise OR.
func Or(a, b Vec) Vec {
	for i := 0; i < a.n; i++ {
		a.words[i] |= b.words[i]
	}
	return a
}

// Xor performs element-wise bitwise XOR.
func Xor(a, b Vec) Vec {
	for i := 0; i < a.n; i++ {
		a.words[i] ^= b.words[i]
	}
	return a
}

// AndNot performs element-wise bitwise AND NOT (~a & b), with the operand
// order of x86 ANDN.
func AndNot(a, b Vec) Vec {
	for i := 0; i < a.n; i++ {
		a.words[i] = b.words[i] &^ a.words[i]
	}
	return a
}

// Max returns the element-wise maximum of unsigned bytes.
func Max(a, b Vec) Vec {
	for i := 0; i < a.n; i++ {
		a.words[i] = maxUnsigned(a.words[i], b.words[i])
	}
	return a
}

// Min returns the element-wise minimum of unsigned bytes.
func Min(a, b Vec) Vec {
	for i := 0; i < a.n; i++ {
		a.words[i] = minUnsigned(a.words[i], b.words[i])
	}
	return a
}

// Sub performs element-wise subtraction modulo 256 (it wraps, like PSUBB).
// For a clamped result use Sub(a, Min(a, b)).
func Sub(a, b Vec) Vec {
	for i := 0; i < a.n; i++ {
		a.words[i] = subWrap(a.words[i], b.words[i])
	}
	return a
}

// GreaterSigned compares lanes as signed bytes and returns a mask vector
// holding 0xFF where a > b and 0x00 elsewhere, like PCMPGTB.
//
// There is no unsigned counterpart; see BiasFlipGreater.
func GreaterSigned(a, b Vec) Vec {
	for i := 0; i < a.n; i++ {
		a.words[i] = greaterSigned(a.words[i], b.words[i])
	}
	return a
}

// ReduceSum returns the sum of all bytes in v.
func ReduceSum(v Vec) uint32 {
	var sum uint32
	for i := 0; i < v.n; i++ {
		sum += sumBytes(v.words[i])
	}
	return sum
}
