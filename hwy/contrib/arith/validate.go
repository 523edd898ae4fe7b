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

// checkRegion validates a single region against its image.
func checkRegion(op, arg string, r Region) error {
	img := r.Image
	if img == nil {
		return invalid(op, arg, ErrNullStorage)
	}
	if img.Empty() || r.Width == 0 || r.Height == 0 {
		return invalid(op, arg, ErrEmptyImage)
	}
	if img.Data() == nil {
		return invalid(op, arg, ErrNullStorage)
	}
	if uint64(r.X)+uint64(r.Width) > uint64(img.Width()) ||
		uint64(r.Y)+uint64(r.Height) > uint64(img.Height()) {
		return invalid(op, arg, ErrInvalidRegion)
	}
	return nil
}

// validate checks the input regions and, when out is non-nil, the destination.
// Sources must agree with the first source (and the destination) on size and
// color count, and must not partially overlap the destination.
func validate(op string, out *Region, in ...Region) error {
	for i, r := range in {
		if err := checkRegion(op, inputArg(i), r); err != nil {
			return err
		}
	}
	ref := in[0]
	for i := 1; i < len(in); i++ {
		if !sameShape(ref, in[i]) {
			return invalid(op, inputArg(i), ErrDimensionMismatch)
		}
	}
	if out == nil {
		return nil
	}

	if err := checkRegion(op, "out", *out); err != nil {
		return err
	}
	if !sameShape(ref, *out) {
		return invalid(op, "out", ErrDimensionMismatch)
	}
	dst := newRowView(*out)
	for i, r := range in {
		if partialOverlap(newRowView(r), dst) {
			return invalid(op, inputArg(i), ErrRegionOverlap)
		}
	}
	return nil
}

func sameShape(a, b Region) bool {
	return a.Width == b.Width && a.Height == b.Height &&
		a.Image.ColorCount() == b.Image.ColorCount()
}

func inputArg(i int) string {
	switch i {
	case 0:
		return "in1"
	case 1:
		return "in2"
	default:
		return "in"
	}
}
