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

// Package image provides the 8-bit image container used by the arith kernels.
//
// An Image is a grid of unsigned byte samples with an explicit row size
// (stride). Rows may be padded to an alignment, and images may wrap storage
// owned by someone else, including the Pix slice of a standard *image.Gray.
//
// # Usage Example
//
//	// A 1080p grayscale frame with 16-byte aligned rows
//	img := image.NewImageWith(1920, 1080, 1, 16)
//	img.Fill(128)
//
//	// Share storage with the standard library
//	g := img.ToGray()
//	_ = g.GrayAt(10, 10)
package image
