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

import "encoding/binary"

// Word is eight unsigned bytes packed into one 64-bit register, byte i of
// memory in bits [8i, 8i+8). All operations are per byte: no carry or borrow
// ever crosses a byte boundary.
type Word uint64

const (
	ones  = 0x0101010101010101
	highs = 0x8080808080808080
	lows  = 0x00FF00FF00FF00FF
	halfs = 0x0000FFFF0000FFFF
)

// SplatWord returns a word with every byte set to b.
func SplatWord(b uint8) Word {
	return Word(uint64(b) * ones)
}

// LoadWord reads 8 bytes from src without any alignment requirement.
func LoadWord(src []byte) Word {
	return Word(binary.LittleEndian.Uint64(src))
}

// StoreWord writes w to the first 8 bytes of dst.
func StoreWord(w Word, dst []byte) {
	binary.LittleEndian.PutUint64(dst, uint64(w))
}

// expandHighBits turns a word whose only set bits are byte high bits into a
// byte mask: 0xFF where the high bit was set, 0x00 elsewhere.
func expandHighBits(h Word) Word {
	return (h >> 7) * 0xFF
}

// subWrap is per-byte subtraction modulo 256.
func subWrap(a, b Word) Word {
	return ((a | highs) - (b &^ highs)) ^ ((a ^ ^b) & highs)
}

// lowGreater sets the high bit of each byte where the low 7 bits of a are
// strictly greater than the low 7 bits of b. Each byte of (b|0x80)-(a&0x7F)
// lies in [1, 255], so the subtraction never borrows across bytes.
func lowGreater(a, b Word) Word {
	return ^((b | highs) - (a &^ highs)) & highs
}

// greaterUnsigned is 0xFF in each byte where a > b as unsigned bytes.
func greaterUnsigned(a, b Word) Word {
	h := ((a &^ b) | (^(a ^ b) & lowGreater(a, b))) & highs
	return expandHighBits(h)
}

// greaterSigned is 0xFF in each byte where a > b as two's complement bytes.
func greaterSigned(a, b Word) Word {
	h := ((b &^ a) | (^(a ^ b) & lowGreater(a, b))) & highs
	return expandHighBits(h)
}

// maxUnsigned selects the larger unsigned byte of a and b.
func maxUnsigned(a, b Word) Word {
	m := greaterUnsigned(a, b)
	return (a & m) | (b &^ m)
}

// minUnsigned selects the smaller unsigned byte of a and b.
func minUnsigned(a, b Word) Word {
	m := greaterUnsigned(a, b)
	return (b & m) | (a &^ m)
}

// sumBytes adds the eight bytes of w.
func sumBytes(w Word) uint32 {
	x := uint64(w&lows) + uint64((w>>8)&lows)
	x = (x & halfs) + ((x >> 16) & halfs)
	return uint32(x&0xFFFFFFFF) + uint32(x>>32)
}
