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

// Package arith implements pixel-wise arithmetic on 8-bit images.
//
// Every operation maps one or two source regions to a destination region of
// the same size, sample by sample:
//
//	BitwiseAnd, BitwiseOr, BitwiseXor   a&b, a|b, a^b
//	Maximum, Minimum                    max(a, b), min(a, b)
//	Subtract                            a-b clamped at 0
//	AbsoluteDifference                  |a-b|
//	Invert                              255-a
//	Threshold(t)                        255 if a >= t, else 0
//	ThresholdRange(lo, hi)              255 if lo <= a <= hi, else 0
//	Sum                                 total of all samples, mod 2^32
//
// # Backends
//
// Kernels run on one of several backends: Scalar, Vector128, Vector256 and
// Vector512. The vector sets process full lanes of 16, 32 or 64 bytes and
// hand the rest of the row to Scalar. A Dispatcher picks the widest set that
// the capabilities allow and the row width can fill. All backends produce
// identical bytes for identical inputs.
//
// Each vector set comes in two tiers. The portable tier uses the hwy lane
// operations and runs on any processor. On amd64 builds with
// GOEXPERIMENT=simd, init() replaces Vector128 and Vector256 with archsimd
// kernels when the processor has AVX2, and Vector512 when it has AVX-512.
// Kernels.ISA tells which tier a set belongs to.
//
// Unsigned comparisons use the bias-flip trick from package hwy, since the
// lane instruction set only compares signed bytes.
//
// # Usage
//
//	a := image.NewImage(640, 480)
//	b := image.NewImage(640, 480)
//	out, err := arith.BitwiseAndNew(a, b)
//
//	// Operate on a window, in place
//	r := arith.Region{Image: a, X: 10, Y: 10, Width: 100, Height: 50}
//	err = arith.ThresholdRegion(r, r, 128)
//
// An Engine fixes the capabilities, the logger and an optional worker pool:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	eng := arith.New(arith.WithPool(pool), arith.WithCapabilities(hwy.Capabilities{Has128: true}))
//	err = eng.Invert(a, b)
package arith
