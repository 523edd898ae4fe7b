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

// Package-level operations run on Default().

// BitwiseAndRegion runs Default().BitwiseAndRegion.
func BitwiseAndRegion(in1, in2, out Region) error {
	return Default().BitwiseAndRegion(in1, in2, out)
}

// BitwiseAndRegionNew runs Default().BitwiseAndRegionNew.
func BitwiseAndRegionNew(in1, in2 Region) (*image.Image, error) {
	return Default().BitwiseAndRegionNew(in1, in2)
}

// BitwiseAnd runs Default().BitwiseAnd.
func BitwiseAnd(in1, in2, out *image.Image) error {
	return Default().BitwiseAnd(in1, in2, out)
}

// BitwiseAndNew runs Default().BitwiseAndNew.
func BitwiseAndNew(in1, in2 *image.Image) (*image.Image, error) {
	return Default().BitwiseAndNew(in1, in2)
}

// BitwiseOrRegion runs Default().BitwiseOrRegion.
func BitwiseOrRegion(in1, in2, out Region) error {
	return Default().BitwiseOrRegion(in1, in2, out)
}

// BitwiseOrRegionNew runs Default().BitwiseOrRegionNew.
func BitwiseOrRegionNew(in1, in2 Region) (*image.Image, error) {
	return Default().BitwiseOrRegionNew(in1, in2)
}

// BitwiseOr runs Default().BitwiseOr.
func BitwiseOr(in1, in2, out *image.Image) error {
	return Default().BitwiseOr(in1, in2, out)
}

// BitwiseOrNew runs Default().BitwiseOrNew.
func BitwiseOrNew(in1, in2 *image.Image) (*image.Image, error) {
	return Default().BitwiseOrNew(in1, in2)
}

// BitwiseXorRegion runs Default().BitwiseXorRegion.
func BitwiseXorRegion(in1, in2, out Region) error {
	return Default().BitwiseXorRegion(in1, in2, out)
}

// BitwiseXorRegionNew runs Default().BitwiseXorRegionNew.
func BitwiseXorRegionNew(in1, in2 Region) (*image.Image, error) {
	return Default().BitwiseXorRegionNew(in1, in2)
}

// BitwiseXor runs Default().BitwiseXor.
func BitwiseXor(in1, in2, out *image.Image) error {
	return Default().BitwiseXor(in1, in2, out)
}

// BitwiseXorNew runs Default().BitwiseXorNew.
func BitwiseXorNew(in1, in2 *image.Image) (*image.Image, error) {
	return Default().BitwiseXorNew(in1, in2)
}

// MaximumRegion runs Default().MaximumRegion.
func MaximumRegion(in1, in2, out Region) error {
	return Default().MaximumRegion(in1, in2, out)
}

// MaximumRegionNew runs Default().MaximumRegionNew.
func MaximumRegionNew(in1, in2 Region) (*image.Image, error) {
	return Default().MaximumRegionNew(in1, in2)
}

// Maximum runs Default().Maximum.
func Maximum(in1, in2, out *image.Image) error {
	return Default().Maximum(in1, in2, out)
}

// MaximumNew runs Default().MaximumNew.
func MaximumNew(in1, in2 *image.Image) (*image.Image, error) {
	return Default().MaximumNew(in1, in2)
}

// MinimumRegion runs Default().MinimumRegion.
func MinimumRegion(in1, in2, out Region) error {
	return Default().MinimumRegion(in1, in2, out)
}

// MinimumRegionNew runs Default().MinimumRegionNew.
func MinimumRegionNew(in1, in2 Region) (*image.Image, error) {
	return Default().MinimumRegionNew(in1, in2)
}

// Minimum runs Default().Minimum.
func Minimum(in1, in2, out *image.Image) error {
	return Default().Minimum(in1, in2, out)
}

// MinimumNew runs Default().MinimumNew.
func MinimumNew(in1, in2 *image.Image) (*image.Image, error) {
	return Default().MinimumNew(in1, in2)
}

// SubtractRegion runs Default().SubtractRegion.
func SubtractRegion(in1, in2, out Region) error {
	return Default().SubtractRegion(in1, in2, out)
}

// SubtractRegionNew runs Default().SubtractRegionNew.
func SubtractRegionNew(in1, in2 Region) (*image.Image, error) {
	return Default().SubtractRegionNew(in1, in2)
}

// Subtract runs Default().Subtract.
func Subtract(in1, in2, out *image.Image) error {
	return Default().Subtract(in1, in2, out)
}

// SubtractNew runs Default().SubtractNew.
func SubtractNew(in1, in2 *image.Image) (*image.Image, error) {
	return Default().SubtractNew(in1, in2)
}

// AbsoluteDifferenceRegion runs Default().AbsoluteDifferenceRegion.
func AbsoluteDifferenceRegion(in1, in2, out Region) error {
	return Default().AbsoluteDifferenceRegion(in1, in2, out)
}

// AbsoluteDifferenceRegionNew runs Default().AbsoluteDifferenceRegionNew.
func AbsoluteDifferenceRegionNew(in1, in2 Region) (*image.Image, error) {
	return Default().AbsoluteDifferenceRegionNew(in1, in2)
}

// AbsoluteDifference runs Default().AbsoluteDifference.
func AbsoluteDifference(in1, in2, out *image.Image) error {
	return Default().AbsoluteDifference(in1, in2, out)
}

// AbsoluteDifferenceNew runs Default().AbsoluteDifferenceNew.
func AbsoluteDifferenceNew(in1, in2 *image.Image) (*image.Image, error) {
	return Default().AbsoluteDifferenceNew(in1, in2)
}

// InvertRegion runs Default().InvertRegion.
func InvertRegion(in, out Region) error {
	return Default().InvertRegion(in, out)
}

// InvertRegionNew runs Default().InvertRegionNew.
func InvertRegionNew(in Region) (*image.Image, error) {
	return Default().InvertRegionNew(in)
}

// Invert runs Default().Invert.
func Invert(in, out *image.Image) error {
	return Default().Invert(in, out)
}

// InvertNew runs Default().InvertNew.
func InvertNew(in *image.Image) (*image.Image, error) {
	return Default().InvertNew(in)
}

// ThresholdRegion runs Default().ThresholdRegion.
func ThresholdRegion(in, out Region, t uint8) error {
	return Default().ThresholdRegion(in, out, t)
}

// ThresholdRegionNew runs Default().ThresholdRegionNew.
func ThresholdRegionNew(in Region, t uint8) (*image.Image, error) {
	return Default().ThresholdRegionNew(in, t)
}

// Threshold runs Default().Threshold.
func Threshold(in, out *image.Image, t uint8) error {
	return Default().Threshold(in, out, t)
}

// ThresholdNew runs Default().ThresholdNew.
func ThresholdNew(in *image.Image, t uint8) (*image.Image, error) {
	return Default().ThresholdNew(in, t)
}

// ThresholdRangeRegion runs Default().ThresholdRangeRegion.
func ThresholdRangeRegion(in, out Region, lo, hi uint8) error {
	return Default().ThresholdRangeRegion(in, out, lo, hi)
}

// ThresholdRangeRegionNew runs Default().ThresholdRangeRegionNew.
func ThresholdRangeRegionNew(in Region, lo, hi uint8) (*image.Image, error) {
	return Default().ThresholdRangeRegionNew(in, lo, hi)
}

// ThresholdRange runs Default().ThresholdRange.
func ThresholdRange(in, out *image.Image, lo, hi uint8) error {
	return Default().ThresholdRange(in, out, lo, hi)
}

// ThresholdRangeNew runs Default().ThresholdRangeNew.
func ThresholdRangeNew(in *image.Image, lo, hi uint8) (*image.Image, error) {
	return Default().ThresholdRangeNew(in, lo, hi)
}

// SumRegion runs Default().SumRegion.
func SumRegion(r Region) (uint32, error) {
	return Default().SumRegion(r)
}

// Sum runs Default().Sum.
func Sum(img *image.Image) (uint32, error) {
	return Default().Sum(img)
}
