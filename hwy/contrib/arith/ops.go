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

// Every operation comes in four shapes:
//
//	OpRegion(in..., out Region) error                 writes into out
//	OpRegionNew(in... Region) (*image.Image, error)   allocates the result
//	Op(in..., out *image.Image) error                 whole images
//	OpNew(in... *image.Image) (*image.Image, error)   whole images, allocated
//
// Arguments are validated before anything is written. Allocated results are
// single-aligned images with the color count of the first source.

func pickAnd(k *Kernels) binaryRow     { return k.BitwiseAnd }
func pickOr(k *Kernels) binaryRow      { return k.BitwiseOr }
func pickXor(k *Kernels) binaryRow     { return k.BitwiseXor }
func pickMax(k *Kernels) binaryRow     { return k.Maximum }
func pickMin(k *Kernels) binaryRow     { return k.Minimum }
func pickSub(k *Kernels) binaryRow     { return k.Subtract }
func pickAbsDiff(k *Kernels) binaryRow { return k.AbsoluteDifference }
func pickInvert(k *Kernels) unaryRow   { return k.Invert }

func pickThreshold(t uint8) func(*Kernels) unaryRow {
	return func(k *Kernels) unaryRow {
		return func(dst, a []byte) { k.Threshold(dst, a, t) }
	}
}

func pickThresholdRange(lo, hi uint8) func(*Kernels) unaryRow {
	return func(k *Kernels) unaryRow {
		return func(dst, a []byte) { k.ThresholdRange(dst, a, lo, hi) }
	}
}

func (e *Engine) binary(op string, in1, in2, out Region, pick func(*Kernels) binaryRow) error {
	if err := validate(op, &out, in1, in2); err != nil {
		return err
	}
	e.runBinary(in1, in2, out, pick)
	return nil
}

func (e *Engine) binaryNew(op string, in1, in2 Region, pick func(*Kernels) binaryRow) (*image.Image, error) {
	if err := validate(op, nil, in1, in2); err != nil {
		return nil, err
	}
	out := allocLike(in1)
	if err := e.binary(op, in1, in2, Whole(out), pick); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *Engine) unary(op string, in, out Region, pick func(*Kernels) unaryRow) error {
	if err := validate(op, &out, in); err != nil {
		return err
	}
	e.runUnary(in, out, pick)
	return nil
}

func (e *Engine) unaryNew(op string, in Region, pick func(*Kernels) unaryRow) (*image.Image, error) {
	if err := validate(op, nil, in); err != nil {
		return nil, err
	}
	out := allocLike(in)
	if err := e.unary(op, in, Whole(out), pick); err != nil {
		return nil, err
	}
	return out, nil
}

func allocLike(r Region) *image.Image {
	return image.NewImageWith(r.Width, r.Height, r.Image.ColorCount(), 1)
}

// BitwiseAndRegion writes in1 & in2 into out.
func (e *Engine) BitwiseAndRegion(in1, in2, out Region) error {
	return e.binary("BitwiseAnd", in1, in2, out, pickAnd)
}

// BitwiseAndRegionNew returns in1 & in2 as a new image.
func (e *Engine) BitwiseAndRegionNew(in1, in2 Region) (*image.Image, error) {
	return e.binaryNew("BitwiseAnd", in1, in2, pickAnd)
}

// BitwiseAnd writes in1 & in2 into out.
func (e *Engine) BitwiseAnd(in1, in2, out *image.Image) error {
	return e.BitwiseAndRegion(Whole(in1), Whole(in2), Whole(out))
}

// BitwiseAndNew returns in1 & in2 as a new image.
func (e *Engine) BitwiseAndNew(in1, in2 *image.Image) (*image.Image, error) {
	return e.BitwiseAndRegionNew(Whole(in1), Whole(in2))
}

// BitwiseOrRegion writes in1 | in2 into out.
func (e *Engine) BitwiseOrRegion(in1, in2, out Region) error {
	return e.binary("BitwiseOr", in1, in2, out, pickOr)
}

// BitwiseOrRegionNew returns in1 | in2 as a new image.
func (e *Engine) BitwiseOrRegionNew(in1, in2 Region) (*image.Image, error) {
	return e.binaryNew("BitwiseOr", in1, in2, pickOr)
}

// BitwiseOr writes in1 | in2 into out.
func (e *Engine) BitwiseOr(in1, in2, out *image.Image) error {
	return e.BitwiseOrRegion(Whole(in1), Whole(in2), Whole(out))
}

// BitwiseOrNew returns in1 | in2 as a new image.
func (e *Engine) BitwiseOrNew(in1, in2 *image.Image) (*image.Image, error) {
	return e.BitwiseOrRegionNew(Whole(in1), Whole(in2))
}

// BitwiseXorRegion writes in1 ^ in2 into out.
func (e *Engine) BitwiseXorRegion(in1, in2, out Region) error {
	return e.binary("BitwiseXor", in1, in2, out, pickXor)
}

// BitwiseXorRegionNew returns in1 ^ in2 as a new image.
func (e *Engine) BitwiseXorRegionNew(in1, in2 Region) (*image.Image, error) {
	return e.binaryNew("BitwiseXor", in1, in2, pickXor)
}

// BitwiseXor writes in1 ^ in2 into out.
func (e *Engine) BitwiseXor(in1, in2, out *image.Image) error {
	return e.BitwiseXorRegion(Whole(in1), Whole(in2), Whole(out))
}

// BitwiseXorNew returns in1 ^ in2 as a new image.
func (e *Engine) BitwiseXorNew(in1, in2 *image.Image) (*image.Image, error) {
	return e.BitwiseXorRegionNew(Whole(in1), Whole(in2))
}

// MaximumRegion writes the per-sample maximum of in1 and in2 into out.
func (e *Engine) MaximumRegion(in1, in2, out Region) error {
	return e.binary("Maximum", in1, in2, out, pickMax)
}

// MaximumRegionNew returns the per-sample maximum as a new image.
func (e *Engine) MaximumRegionNew(in1, in2 Region) (*image.Image, error) {
	return e.binaryNew("Maximum", in1, in2, pickMax)
}

// Maximum writes the per-sample maximum of in1 and in2 into out.
func (e *Engine) Maximum(in1, in2, out *image.Image) error {
	return e.MaximumRegion(Whole(in1), Whole(in2), Whole(out))
}

// MaximumNew returns the per-sample maximum as a new image.
func (e *Engine) MaximumNew(in1, in2 *image.Image) (*image.Image, error) {
	return e.MaximumRegionNew(Whole(in1), Whole(in2))
}

// MinimumRegion writes the per-sample minimum of in1 and in2 into out.
func (e *Engine) MinimumRegion(in1, in2, out Region) error {
	return e.binary("Minimum", in1, in2, out, pickMin)
}

// MinimumRegionNew returns the per-sample minimum as a new image.
func (e *Engine) MinimumRegionNew(in1, in2 Region) (*image.Image, error) {
	return e.binaryNew("Minimum", in1, in2, pickMin)
}

// Minimum writes the per-sample minimum of in1 and in2 into out.
func (e *Engine) Minimum(in1, in2, out *image.Image) error {
	return e.MinimumRegion(Whole(in1), Whole(in2), Whole(out))
}

// MinimumNew returns the per-sample minimum as a new image.
func (e *Engine) MinimumNew(in1, in2 *image.Image) (*image.Image, error) {
	return e.MinimumRegionNew(Whole(in1), Whole(in2))
}

// SubtractRegion writes in1 - in2 into out, clamped at zero.
func (e *Engine) SubtractRegion(in1, in2, out Region) error {
	return e.binary("Subtract", in1, in2, out, pickSub)
}

// SubtractRegionNew returns in1 - in2, clamped at zero, as a new image.
func (e *Engine) SubtractRegionNew(in1, in2 Region) (*image.Image, error) {
	return e.binaryNew("Subtract", in1, in2, pickSub)
}

// Subtract writes in1 - in2 into out, clamped at zero.
func (e *Engine) Subtract(in1, in2, out *image.Image) error {
	return e.SubtractRegion(Whole(in1), Whole(in2), Whole(out))
}

// SubtractNew returns in1 - in2, clamped at zero, as a new image.
func (e *Engine) SubtractNew(in1, in2 *image.Image) (*image.Image, error) {
	return e.SubtractRegionNew(Whole(in1), Whole(in2))
}

// AbsoluteDifferenceRegion writes |in1 - in2| into out.
func (e *Engine) AbsoluteDifferenceRegion(in1, in2, out Region) error {
	return e.binary("AbsoluteDifference", in1, in2, out, pickAbsDiff)
}

// AbsoluteDifferenceRegionNew returns |in1 - in2| as a new image.
func (e *Engine) AbsoluteDifferenceRegionNew(in1, in2 Region) (*image.Image, error) {
	return e.binaryNew("AbsoluteDifference", in1, in2, pickAbsDiff)
}

// AbsoluteDifference writes |in1 - in2| into out.
func (e *Engine) AbsoluteDifference(in1, in2, out *image.Image) error {
	return e.AbsoluteDifferenceRegion(Whole(in1), Whole(in2), Whole(out))
}

// AbsoluteDifferenceNew returns |in1 - in2| as a new image.
func (e *Engine) AbsoluteDifferenceNew(in1, in2 *image.Image) (*image.Image, error) {
	return e.AbsoluteDifferenceRegionNew(Whole(in1), Whole(in2))
}

// InvertRegion writes 255 - in into out.
func (e *Engine) InvertRegion(in, out Region) error {
	return e.unary("Invert", in, out, pickInvert)
}

// InvertRegionNew returns 255 - in as a new image.
func (e *Engine) InvertRegionNew(in Region) (*image.Image, error) {
	return e.unaryNew("Invert", in, pickInvert)
}

// Invert writes 255 - in into out.
func (e *Engine) Invert(in, out *image.Image) error {
	return e.InvertRegion(Whole(in), Whole(out))
}

// InvertNew returns 255 - in as a new image.
func (e *Engine) InvertNew(in *image.Image) (*image.Image, error) {
	return e.InvertRegionNew(Whole(in))
}

// ThresholdRegion writes 255 where in >= t and 0 elsewhere. A threshold of
// zero yields 255 everywhere.
func (e *Engine) ThresholdRegion(in, out Region, t uint8) error {
	return e.unary("Threshold", in, out, pickThreshold(t))
}

// ThresholdRegionNew is ThresholdRegion into a new image.
func (e *Engine) ThresholdRegionNew(in Region, t uint8) (*image.Image, error) {
	return e.unaryNew("Threshold", in, pickThreshold(t))
}

// Threshold writes 255 where in >= t and 0 elsewhere.
func (e *Engine) Threshold(in, out *image.Image, t uint8) error {
	return e.ThresholdRegion(Whole(in), Whole(out), t)
}

// ThresholdNew is Threshold into a new image.
func (e *Engine) ThresholdNew(in *image.Image, t uint8) (*image.Image, error) {
	return e.ThresholdRegionNew(Whole(in), t)
}

// ThresholdRangeRegion writes 255 where lo <= in <= hi and 0 elsewhere.
// Both bounds are inclusive; lo > hi yields 0 everywhere.
func (e *Engine) ThresholdRangeRegion(in, out Region, lo, hi uint8) error {
	return e.unary("ThresholdRange", in, out, pickThresholdRange(lo, hi))
}

// ThresholdRangeRegionNew is ThresholdRangeRegion into a new image.
func (e *Engine) ThresholdRangeRegionNew(in Region, lo, hi uint8) (*image.Image, error) {
	return e.unaryNew("ThresholdRange", in, pickThresholdRange(lo, hi))
}

// ThresholdRange writes 255 where lo <= in <= hi and 0 elsewhere.
func (e *Engine) ThresholdRange(in, out *image.Image, lo, hi uint8) error {
	return e.ThresholdRangeRegion(Whole(in), Whole(out), lo, hi)
}

// ThresholdRangeNew is ThresholdRange into a new image.
func (e *Engine) ThresholdRangeNew(in *image.Image, lo, hi uint8) (*image.Image, error) {
	return e.ThresholdRangeRegionNew(Whole(in), lo, hi)
}

// SumRegion returns the sum of every sample in r, modulo 2^32.
func (e *Engine) SumRegion(r Region) (uint32, error) {
	if err := validate("Sum", nil, r); err != nil {
		return 0, err
	}
	return e.sum(r), nil
}

// Sum returns the sum of every sample in img, modulo 2^32.
func (e *Engine) Sum(img *image.Image) (uint32, error) {
	return e.SumRegion(Whole(img))
}
