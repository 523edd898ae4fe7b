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

import (
	"github.com/ajroetker/pixelwise/hwy/contrib/image"
)

// Region is a rectangular window of an image, in pixels.
type Region struct {
	Image  *image.Image
	X, Y   uint32
	Width  uint32
	Height uint32
}

// Whole returns the region covering all of img. A nil img yields a region
// that fails validation with ErrNullStorage.
func Whole(img *image.Image) Region {
	if img == nil {
		return Region{}
	}
	return Region{Image: img, Width: img.Width(), Height: img.Height()}
}

// RowView addresses the rows of a validated region as byte slices.
//
// Row i starts at first + i*stride in data and is width bytes long, where
// width counts samples (pixels times color count).
type RowView struct {
	data   []byte
	first  int
	stride int
	width  int
	rows   int
}

// newRowView assumes r has passed validation.
func newRowView(r Region) RowView {
	img := r.Image
	cc := int(img.ColorCount())
	stride := int(img.RowSize())
	return RowView{
		data:   img.Data(),
		first:  int(r.Y)*stride + int(r.X)*cc,
		stride: stride,
		width:  int(r.Width) * cc,
		rows:   int(r.Height),
	}
}

// Width returns the number of bytes in each row.
func (v RowView) Width() int { return v.width }

// Rows returns the number of rows.
func (v RowView) Rows() int { return v.rows }

// Stride returns the distance in bytes between consecutive rows.
func (v RowView) Stride() int { return v.stride }

// Row returns row i. The slice is capped at the row width so appends cannot
// spill into neighbouring pixels.
func (v RowView) Row(i int) []byte {
	off := v.first + i*v.stride
	return v.data[off : off+v.width : off+v.width]
}

// Band returns the sub-view of rows [start, end).
func (v RowView) Band(start, end int) RowView {
	v.first += start * v.stride
	v.rows = end - start
	return v
}

// Cursor returns an iterator over the rows of v.
//
//	for c := v.Cursor(); c.Next(); {
//	    process(c.Row())
//	}
func (v RowView) Cursor() *Cursor {
	return &Cursor{view: v, cur: -1}
}

// Cursor walks the rows of a RowView top to bottom.
type Cursor struct {
	view RowView
	cur  int
}

// Next advances to the next row and reports whether one exists.
func (c *Cursor) Next() bool {
	if c.cur+1 >= c.view.rows {
		c.cur = c.view.rows
		return false
	}
	c.cur++
	return true
}

// Row returns the current row.
func (c *Cursor) Row() []byte {
	return c.view.Row(c.cur)
}
