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

package image

import (
	"errors"
	"fmt"
	"math"
)

// ErrShortBuffer is returned by Wrap when the backing slice cannot hold the
// described geometry.
var ErrShortBuffer = errors.New("image: buffer too short for geometry")

// Image is a 2D array of 8-bit samples.
//
// Each row holds Width()*ColorCount() samples, padded up to a multiple of the
// alignment. Row y starts at byte y*RowSize() of Data().
type Image struct {
	data       []uint8
	width      uint32
	height     uint32
	colorCount uint8
	alignment  uint8
	rowSize    uint32 // bytes per row (includes padding)
}

// NewImage creates a single-channel image with tightly packed rows.
func NewImage(width, height uint32) *Image {
	return NewImageWith(width, height, 1, 1)
}

// NewImageWith creates an image with the given samples per pixel and row
// alignment in bytes. Zero colorCount or alignment is treated as 1.
// A zero width or height yields an empty image with no storage.
func NewImageWith(width, height uint32, colorCount, alignment uint8) *Image {
	if colorCount == 0 {
		colorCount = 1
	}
	if alignment == 0 {
		alignment = 1
	}
	if width == 0 || height == 0 {
		return &Image{colorCount: colorCount, alignment: alignment}
	}

	rowSize, ok := alignedRowSize(width, colorCount, alignment)
	if !ok {
		panic(fmt.Sprintf("image: row of %d x %d samples overflows uint32", width, colorCount))
	}
	return &Image{
		data:       make([]uint8, int(rowSize)*int(height)),
		width:      width,
		height:     height,
		colorCount: colorCount,
		alignment:  alignment,
		rowSize:    rowSize,
	}
}

// Wrap adopts caller-owned storage. rowSize is the distance in bytes between
// the starts of consecutive rows and must be at least width*colorCount.
//
// A nil data slice describes geometry only; operations reject such an image
// because it has no storage.
func Wrap(data []uint8, width, height, rowSize uint32, colorCount uint8) (*Image, error) {
	if colorCount == 0 {
		colorCount = 1
	}
	if samples := uint64(width) * uint64(colorCount); uint64(rowSize) < samples {
		return nil, fmt.Errorf("image: row size %d smaller than %d samples", rowSize, samples)
	}
	if data != nil && width > 0 && height > 0 {
		need := uint64(rowSize)*uint64(height-1) + uint64(width)*uint64(colorCount)
		if uint64(len(data)) < need {
			return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrShortBuffer, len(data), need)
		}
	}
	return &Image{
		data:       data,
		width:      width,
		height:     height,
		colorCount: colorCount,
		alignment:  1,
		rowSize:    rowSize,
	}, nil
}

// alignedRowSize rounds width*colorCount up to a multiple of alignment and
// reports false when the result does not fit in a uint32.
func alignedRowSize(width uint32, colorCount, alignment uint8) (uint32, bool) {
	row := uint64(width) * uint64(colorCount)
	a := uint64(alignment)
	aligned := ((row + a - 1) / a) * a
	if aligned > math.MaxUint32 {
		return 0, false
	}
	return uint32(aligned), true
}

// Width returns the image width in pixels.
func (img *Image) Width() uint32 {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image) Height() uint32 {
	return img.height
}

// ColorCount returns the number of samples per pixel.
func (img *Image) ColorCount() uint8 {
	return img.colorCount
}

// Alignment returns the row alignment in bytes.
func (img *Image) Alignment() uint8 {
	return img.alignment
}

// RowSize returns the number of bytes per row, padding included.
func (img *Image) RowSize() uint32 {
	return img.rowSize
}

// Data returns the backing storage. Row y starts at y*RowSize().
func (img *Image) Data() []uint8 {
	return img.data
}

// Empty reports whether the image has no pixels.
func (img *Image) Empty() bool {
	return img.width == 0 || img.height == 0
}

// Row returns a mutable slice for the specified row, padding included
// (the last row may be shorter when the storage was wrapped).
func (img *Image) Row(y uint32) []uint8 {
	if y >= img.height || img.data == nil {
		return nil
	}
	start := int(y) * int(img.rowSize)
	end := min(start+int(img.rowSize), len(img.data))
	return img.data[start:end]
}

// RowSlice returns a mutable slice for the specified row,
// limited to the pixel samples (excluding padding).
func (img *Image) RowSlice(y uint32) []uint8 {
	if y >= img.height || img.data == nil {
		return nil
	}
	start := int(y) * int(img.rowSize)
	return img.data[start : start+int(img.width)*int(img.colorCount)]
}

// At returns sample c of the pixel at (x, y).
func (img *Image) At(x, y uint32, c uint8) uint8 {
	if x >= img.width || y >= img.height || c >= img.colorCount || img.data == nil {
		return 0
	}
	return img.data[int(y)*int(img.rowSize)+int(x)*int(img.colorCount)+int(c)]
}

// Set sets sample c of the pixel at (x, y).
func (img *Image) Set(x, y uint32, c uint8, value uint8) {
	if x >= img.width || y >= img.height || c >= img.colorCount || img.data == nil {
		return
	}
	img.data[int(y)*int(img.rowSize)+int(x)*int(img.colorCount)+int(c)] = value
}

// Clone creates a deep copy of the image.
func (img *Image) Clone() *Image {
	clone := *img
	if img.data != nil {
		clone.data = make([]uint8, len(img.data))
		copy(clone.data, img.data)
	}
	return &clone
}

// Fill sets every byte of the storage, padding included, to value.
func (img *Image) Fill(value uint8) {
	for i := range img.data {
		img.data[i] = value
	}
}
