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

// Bias-flip compare.
//
// The lane instruction set only has a signed byte compare. Flipping the high
// bit of both operands (XOR 0x80) maps unsigned order onto signed order:
// 0x00 becomes -128 and 0xFF becomes 127. So for unsigned bytes a and t,
//
//	a > t  <=>  int8(a^0x80) > int8(t^0x80)
//	a >= t <=>  a > t-1, for t > 0
//
// For t == 0 the second form has no representable t-1. Every byte is >= 0,
// so the result is all ones.

// biasMask is the per-byte high bit used to flip operands.
const biasMask = 0x80

// BiasFlipGreater returns 0xFF in each lane where v > threshold as unsigned
// bytes, 0x00 elsewhere.
func BiasFlipGreater(tag Tag, v Vec, threshold uint8) Vec {
	flipped := Xor(v, Set(tag, biasMask))
	return GreaterSigned(flipped, Set(tag, threshold^biasMask))
}

// BiasFlipGreaterEqual returns 0xFF in each lane where v >= threshold as
// unsigned bytes, 0x00 elsewhere.
func BiasFlipGreaterEqual(tag Tag, v Vec, threshold uint8) Vec {
	if threshold == 0 {
		return AllOnes(tag)
	}
	return BiasFlipGreater(tag, v, threshold-1)
}
