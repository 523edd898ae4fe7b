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
	"errors"
	"fmt"
)

// Validation sentinels. Every error returned by an operation wraps exactly one
// of these inside a *ValidationError.
var (
	// ErrEmptyImage reports an image or region with zero width or height.
	ErrEmptyImage = errors.New("empty image")

	// ErrInvalidRegion reports a region that does not fit inside its image.
	ErrInvalidRegion = errors.New("region exceeds image bounds")

	// ErrDimensionMismatch reports regions of different sizes or images with
	// different color counts.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrNullStorage reports a nil image or an image without backing storage.
	ErrNullStorage = errors.New("image has no storage")

	// ErrRegionOverlap reports a source region that partially overlaps the
	// destination. Identical regions (in-place operation) are allowed.
	ErrRegionOverlap = errors.New("source partially overlaps destination")
)

// ValidationError describes a rejected call. Nothing has been written to the
// destination when one is returned.
type ValidationError struct {
	Op  string // operation name, e.g. "BitwiseAnd"
	Arg string // offending argument: "in1", "in2" or "out"
	Err error  // one of the sentinels above
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("arith: %s: %s: %v", e.Op, e.Arg, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(op, arg string, err error) error {
	return &ValidationError{Op: op, Arg: arg, Err: err}
}
