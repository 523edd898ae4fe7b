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

import "unsafe"

// address returns the memory address of the first byte of v.
func (v RowView) address() int {
	return int(uintptr(unsafe.Pointer(unsafe.SliceData(v.data)))) + v.first
}

// same reports whether a and b address exactly the same bytes in the same
// row layout.
func same(a, b RowView) bool {
	return a.address() == b.address() && a.stride == b.stride &&
		a.width == b.width && a.rows == b.rows
}

// partialOverlap reports whether src and dst share any byte without being
// the same view. Views over unrelated allocations never overlap.
func partialOverlap(src, dst RowView) bool {
	if same(src, dst) {
		return false
	}
	base := dst.address()
	a0 := src.address() - base
	aEnd := a0 + (src.rows-1)*src.stride + src.width
	bEnd := (dst.rows-1)*dst.stride + dst.width
	if aEnd <= 0 || a0 >= bEnd {
		return false
	}

	// Row i of src covers [off, off+src.width) relative to the first byte of
	// dst. Row k of dst covers [k*stride, k*stride+width); it intersects when
	// off-width < k*stride < off+src.width.
	for i := range src.rows {
		off := a0 + i*src.stride
		lo := max(floorDiv(off-dst.width, dst.stride)+1, 0)
		hi := min(floorDiv(off+src.width-1, dst.stride), dst.rows-1)
		if lo <= hi {
			return true
		}
	}
	return false
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
