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
	stdimage "image"
)

// FromGray wraps the pixels of g without copying. Writes through the returned
// image are visible in g.
func FromGray(g *stdimage.Gray) *Image {
	b := g.Bounds()
	if b.Empty() {
		return NewImage(0, 0)
	}
	offset := g.PixOffset(b.Min.X, b.Min.Y)
	img, err := Wrap(g.Pix[offset:], uint32(b.Dx()), uint32(b.Dy()), uint32(g.Stride), 1)
	if err != nil {
		// A well-formed image.Gray always covers its bounds.
		panic(err)
	}
	return img
}

// ToGray returns an *image.Gray sharing storage with img.
// Only single-channel images can be viewed as gray; others return nil.
func (img *Image) ToGray() *stdimage.Gray {
	if img.colorCount != 1 {
		return nil
	}
	if img.Empty() {
		return stdimage.NewGray(stdimage.Rect(0, 0, 0, 0))
	}
	return &stdimage.Gray{
		Pix:    img.data,
		Stride: int(img.rowSize),
		Rect:   stdimage.Rect(0, 0, int(img.width), int(img.height)),
	}
}
