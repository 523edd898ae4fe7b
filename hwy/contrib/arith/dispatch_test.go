package arith

import (
	"testing"

	"github.com/ajroetker/pixelwise/hwy"
)

func TestDispatcherSelect(t *testing.T) {
	tests := []struct {
		name  string
		caps  hwy.Capabilities
		width int
		want  *Kernels
	}{
		{"all/1024", hwy.AllWidths, 1024, Vector512},
		{"all/64", hwy.AllWidths, 64, Vector512},
		{"all/63", hwy.AllWidths, 63, Vector256},
		{"all/32", hwy.AllWidths, 32, Vector256},
		{"all/31", hwy.AllWidths, 31, Vector128},
		{"all/16", hwy.AllWidths, 16, Vector128},
		{"all/15", hwy.AllWidths, 15, Scalar},
		{"all/0", hwy.AllWidths, 0, Scalar},
		{"avx2/100", hwy.Capabilities{Has128: true, Has256: true}, 100, Vector256},
		{"gap/40", hwy.Capabilities{Has128: true, Has512: true}, 40, Vector128},
		{"only256/20", hwy.Capabilities{Has256: true}, 20, Scalar},
		{"scalar/1024", hwy.ScalarOnly, 1024, Scalar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewDispatcher(tt.caps).Select(tt.width); got != tt.want {
				t.Errorf("Select(%d) = %s, want %s", tt.width, got, tt.want)
			}
		})
	}
}

func TestDispatcherBackends(t *testing.T) {
	got := NewDispatcher(hwy.AllWidths).Backends()
	want := []string{"512bit", "256bit", "128bit", "scalar"}
	if len(got) != len(want) {
		t.Fatalf("Backends() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i].Name != want[i] {
			t.Errorf("Backends()[%d] = %s, want %s", i, got[i].Name, want[i])
		}
	}

	scalar := NewDispatcher(hwy.ScalarOnly).Backends()
	if len(scalar) != 1 || scalar[0] != Scalar {
		t.Errorf("scalar Backends() = %v", scalar)
	}
}

func TestKernelTables(t *testing.T) {
	for _, be := range testBackends() {
		k := be.kernels
		if k.BitwiseAnd == nil || k.BitwiseOr == nil || k.BitwiseXor == nil ||
			k.Maximum == nil || k.Minimum == nil || k.Subtract == nil ||
			k.AbsoluteDifference == nil || k.Invert == nil || k.Threshold == nil ||
			k.ThresholdRange == nil || k.Sum == nil {
			t.Errorf("%s: incomplete kernel table", be.name)
		}
		if k.String() != be.name {
			t.Errorf("String() = %q, want %q", k.String(), be.name)
		}
		if k.ISA == "" {
			t.Errorf("%s: empty ISA", be.name)
		}
	}
	if Vector128.LaneWidth != 16 || Vector256.LaneWidth != 32 || Vector512.LaneWidth != 64 || Scalar.LaneWidth != 0 {
		t.Error("unexpected lane widths")
	}
}
