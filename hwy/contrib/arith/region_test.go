package arith

import (
	"testing"

	"github.com/ajroetker/pixelwise/hwy/contrib/image"
)

func TestRowView(t *testing.T) {
	img := image.NewImageWith(10, 6, 3, 8) // rowSize 32
	v := newRowView(Region{Image: img, X: 2, Y: 1, Width: 3, Height: 4})

	if v.first != 38 || v.Stride() != 32 || v.Width() != 9 || v.Rows() != 4 {
		t.Fatalf("view = first %d stride %d width %d rows %d, want 38/32/9/4",
			v.first, v.Stride(), v.Width(), v.Rows())
	}

	row := v.Row(2)
	if len(row) != 9 || cap(row) != 9 {
		t.Errorf("Row(2) len/cap = %d/%d, want 9/9", len(row), cap(row))
	}
	row[0] = 7
	if img.Data()[38+2*32] != 7 {
		t.Error("Row(2) does not start at first + 2*stride")
	}
	if img.At(2, 3, 0) != 7 {
		t.Error("Row(2) should address pixel (2, 3)")
	}
}

func TestRowViewBand(t *testing.T) {
	img := image.NewImage(20, 10)
	v := newRowView(Region{Image: img, X: 4, Y: 2, Width: 8, Height: 6})
	band := v.Band(1, 4)
	if band.Rows() != 3 {
		t.Fatalf("Band rows = %d, want 3", band.Rows())
	}
	band.Row(0)[0] = 1
	if v.Row(1)[0] != 1 {
		t.Error("Band(1, 4).Row(0) should equal Row(1)")
	}
	band.Row(2)[7] = 2
	if img.At(11, 5, 0) != 2 {
		t.Error("Band(1, 4).Row(2) should address image row 5")
	}
}

func TestCursor(t *testing.T) {
	img := image.NewImage(4, 5)
	for y := range uint32(5) {
		img.Set(0, y, 0, uint8(y+1))
	}
	c := newRowView(Region{Image: img, Y: 1, Width: 4, Height: 3}).Cursor()

	var seen []uint8
	for c.Next() {
		seen = append(seen, c.Row()[0])
	}
	if len(seen) != 3 || seen[0] != 2 || seen[1] != 3 || seen[2] != 4 {
		t.Errorf("cursor rows = %v, want [2 3 4]", seen)
	}
	if c.Next() {
		t.Error("Next after end should stay false")
	}
}

func TestWhole(t *testing.T) {
	img := image.NewImage(7, 3)
	r := Whole(img)
	if r.Image != img || r.X != 0 || r.Y != 0 || r.Width != 7 || r.Height != 3 {
		t.Errorf("Whole = %+v", r)
	}
	if Whole(nil).Image != nil {
		t.Error("Whole(nil) should have no image")
	}
}

func TestPartialOverlap(t *testing.T) {
	img := image.NewImage(32, 32)
	shared := make([]byte, 64*10)
	left, _ := image.Wrap(shared, 32, 10, 64, 1)
	right, _ := image.Wrap(shared[32:], 32, 9, 64, 1)
	shifted, _ := image.Wrap(shared[16:], 32, 9, 64, 1)

	tests := []struct {
		name     string
		src, dst Region
		want     bool
	}{
		{"identical", Region{img, 3, 3, 10, 10}, Region{img, 3, 3, 10, 10}, false},
		{"corner", Region{img, 0, 0, 10, 10}, Region{img, 5, 5, 10, 10}, true},
		{"side by side", Region{img, 0, 0, 10, 10}, Region{img, 10, 0, 10, 10}, false},
		{"stacked", Region{img, 0, 0, 4, 4}, Region{img, 0, 4, 4, 4}, false},
		{"one pixel", Region{img, 0, 0, 4, 4}, Region{img, 3, 3, 4, 4}, true},
		{"contained", Region{img, 0, 0, 20, 20}, Region{img, 5, 5, 2, 2}, true},
		{"other image", Region{img, 0, 0, 8, 8}, Whole(image.NewImage(8, 8)), false},
		{"interleaved columns", Whole(left), Whole(right), false},
		{"shifted storage", Whole(left), Whole(shifted), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := partialOverlap(newRowView(tt.src), newRowView(tt.dst)); got != tt.want {
				t.Errorf("partialOverlap = %v, want %v", got, tt.want)
			}
			if got := partialOverlap(newRowView(tt.dst), newRowView(tt.src)); got != tt.want {
				t.Errorf("partialOverlap (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{7, 2, 3}, {-7, 2, -4}, {-8, 2, -4}, {0, 5, 0}, {-1, 64, -1},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
