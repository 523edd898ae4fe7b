package arith

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ajroetker/pixelwise/hwy/contrib/image"
)

func TestValidationErrors(t *testing.T) {
	a := image.NewImage(16, 8)
	b := image.NewImage(16, 8)
	out := image.NewImage(16, 8)
	small := image.NewImage(8, 8)
	rgb := image.NewImageWith(16, 8, 3, 1)
	hollow, _ := image.Wrap(nil, 16, 8, 16, 1)
	empty := image.NewImage(0, 8)

	tests := []struct {
		name          string
		in1, in2, out Region
		arg           string
		want          error
	}{
		{"nil in1", Whole(nil), Whole(b), Whole(out), "in1", ErrNullStorage},
		{"nil storage in2", Whole(a), Whole(hollow), Whole(out), "in2", ErrNullStorage},
		{"nil out", Whole(a), Whole(b), Whole(nil), "out", ErrNullStorage},
		{"empty image", Whole(empty), Whole(b), Whole(out), "in1", ErrEmptyImage},
		{"zero width region", Region{a, 0, 0, 0, 4}, Region{b, 0, 0, 0, 4}, Region{out, 0, 0, 0, 4}, "in1", ErrEmptyImage},
		{"zero height out", Whole(a), Whole(b), Region{out, 0, 0, 16, 0}, "out", ErrEmptyImage},
		{"region too wide", Region{a, 1, 0, 16, 8}, Whole(b), Whole(out), "in1", ErrInvalidRegion},
		{"region too tall", Whole(a), Region{b, 0, 4, 16, 5}, Whole(out), "in2", ErrInvalidRegion},
		{"overflowing origin", Region{a, 0xFFFFFFFF, 0, 2, 1}, Whole(b), Whole(out), "in1", ErrInvalidRegion},
		{"size mismatch", Whole(a), Whole(small), Whole(out), "in2", ErrDimensionMismatch},
		{"out mismatch", Whole(a), Whole(b), Whole(small), "out", ErrDimensionMismatch},
		{"color mismatch", Whole(a), Whole(rgb), Whole(out), "in2", ErrDimensionMismatch},
		{"overlap", Region{a, 0, 0, 8, 8}, Region{b, 0, 0, 8, 8}, Region{a, 4, 0, 8, 8}, "in1", ErrRegionOverlap},
	}
	eng := quietEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := eng.BitwiseAndRegion(tt.in1, tt.in2, tt.out)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err %T is not a *ValidationError", err)
			}
			if ve.Op != "BitwiseAnd" || ve.Arg != tt.arg {
				t.Errorf("Op/Arg = %s/%s, want BitwiseAnd/%s", ve.Op, ve.Arg, tt.arg)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := quietEngine().Maximum(image.NewImage(4, 4), image.NewImage(5, 4), image.NewImage(4, 4))
	want := "arith: Maximum: in2: dimension mismatch"
	if err == nil || err.Error() != want {
		t.Errorf("err = %v, want %q", err, want)
	}
}

func TestRejectedCallLeavesDestination(t *testing.T) {
	a := image.NewImage(32, 4)
	a.Fill(0xFF)
	out := image.NewImage(32, 4)
	out.Fill(0x5A)
	before := bytes.Clone(out.Data())

	eng := quietEngine()
	calls := map[string]error{
		"mismatch": eng.BitwiseXor(a, image.NewImage(31, 4), out),
		"overlap":  eng.InvertRegion(Region{out, 0, 0, 16, 4}, Region{out, 8, 0, 16, 4}),
		"bounds":   eng.ThresholdRegion(Region{a, 20, 0, 16, 4}, Region{out, 0, 0, 16, 4}, 3),
	}
	for name, err := range calls {
		if err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
	if !bytes.Equal(out.Data(), before) {
		t.Error("destination modified by a rejected call")
	}
}

func TestRegionNewValidatesInputs(t *testing.T) {
	eng := quietEngine()
	if _, err := eng.SubtractRegionNew(Whole(image.NewImage(4, 4)), Whole(image.NewImage(4, 5))); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("SubtractRegionNew mismatch: err = %v", err)
	}
	if _, err := eng.InvertNew(nil); !errors.Is(err, ErrNullStorage) {
		t.Errorf("InvertNew(nil): err = %v", err)
	}
	if _, err := eng.Sum(image.NewImage(0, 0)); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("Sum(empty): err = %v", err)
	}
}

func TestInPlaceAllowed(t *testing.T) {
	img := image.NewImage(40, 3)
	img.Fill(0x0F)
	r := Region{Image: img, X: 2, Y: 1, Width: 33, Height: 2}
	if err := quietEngine().InvertRegion(r, r); err != nil {
		t.Fatalf("in-place Invert: %v", err)
	}
	if img.At(2, 1, 0) != 0xF0 || img.At(34, 2, 0) != 0xF0 {
		t.Error("in-place Invert did not write the region")
	}
	if img.At(1, 1, 0) != 0x0F || img.At(0, 0, 0) != 0x0F {
		t.Error("in-place Invert wrote outside the region")
	}
}
