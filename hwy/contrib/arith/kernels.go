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

// Row kernel signatures. Every slice passed to a kernel has the same length;
// a kernel writes exactly len(dst) bytes and never fails.
type (
	binaryRow func(dst, a, b []byte)
	unaryRow  func(dst, a []byte)
)

// Kernels is the operation table of one backend. Each field processes a
// single row; the Engine walks rows and picks the table per call.
type Kernels struct {
	// Name identifies the backend: "scalar", "128bit", "256bit" or "512bit".
	Name string

	// ISA names the instructions behind the table: "scalar", "swar" for the
	// portable word-parallel code, or "avx2" and "avx512" for archsimd.
	ISA string

	// LaneWidth is the vector width in bytes, 0 for scalar.
	LaneWidth int

	BitwiseAnd         func(dst, a, b []byte)
	BitwiseOr          func(dst, a, b []byte)
	BitwiseXor         func(dst, a, b []byte)
	Maximum            func(dst, a, b []byte)
	Minimum            func(dst, a, b []byte)
	Subtract           func(dst, a, b []byte)
	AbsoluteDifference func(dst, a, b []byte)

	Invert         func(dst, a []byte)
	Threshold      func(dst, a []byte, t uint8)
	ThresholdRange func(dst, a []byte, lo, hi uint8)

	Sum func(a []byte) uint32
}

// String returns the backend name.
func (k *Kernels) String() string {
	return k.Name
}
