package arith

import (
	"log/slog"
	"math/rand"

	"github.com/ajroetker/pixelwise/hwy"
	"github.com/ajroetker/pixelwise/hwy/contrib/image"
)

// Row widths that straddle every lane width.
var testWidths = []int{1, 15, 16, 17, 31, 32, 33, 63, 64, 65, 255, 256, 1024}

type backend struct {
	name    string
	caps    hwy.Capabilities
	kernels *Kernels
}

// testBackends is evaluated per call because init() may install hardware
// tables after package variables are set.
func testBackends() []backend {
	return []backend{
		{"scalar", hwy.ScalarOnly, Scalar},
		{"128bit", hwy.Capabilities{Has128: true}, Vector128},
		{"256bit", hwy.Capabilities{Has256: true}, Vector256},
		{"512bit", hwy.Capabilities{Has512: true}, Vector512},
	}
}

func quietEngine(opts ...Option) *Engine {
	return New(append(opts, WithLogger(slog.New(slog.DiscardHandler)))...)
}

func (b backend) engine(opts ...Option) *Engine {
	return quietEngine(append(opts, WithCapabilities(b.caps))...)
}

func randomBytes(rng *rand.Rand, n int) []byte {
	buf := make([]byte, n)
	rng.Read(buf)
	return buf
}

func randomImage(rng *rand.Rand, w, h uint32, colorCount, alignment uint8) *image.Image {
	img := image.NewImageWith(w, h, colorCount, alignment)
	rng.Read(img.Data())
	return img
}

type binaryOp struct {
	name        string
	pick        func(*Kernels) binaryRow
	want        func(a, b byte) byte
	run         func(e *Engine, in1, in2, out Region) error
	commutative bool
}

var binaryOps = []binaryOp{
	{"BitwiseAnd", pickAnd, func(a, b byte) byte { return a & b }, (*Engine).BitwiseAndRegion, true},
	{"BitwiseOr", pickOr, func(a, b byte) byte { return a | b }, (*Engine).BitwiseOrRegion, true},
	{"BitwiseXor", pickXor, func(a, b byte) byte { return a ^ b }, (*Engine).BitwiseXorRegion, true},
	{"Maximum", pickMax, func(a, b byte) byte { return max(a, b) }, (*Engine).MaximumRegion, true},
	{"Minimum", pickMin, func(a, b byte) byte { return min(a, b) }, (*Engine).MinimumRegion, true},
	{"Subtract", pickSub, func(a, b byte) byte {
		if b > a {
			return 0
		}
		return a - b
	}, (*Engine).SubtractRegion, false},
	{"AbsoluteDifference", pickAbsDiff, func(a, b byte) byte {
		if a > b {
			return a - b
		}
		return b - a
	}, (*Engine).AbsoluteDifferenceRegion, true},
}

type unaryOp struct {
	name string
	pick func(*Kernels) unaryRow
	want func(a byte) byte
	run  func(e *Engine, in, out Region) error
}

func bool255(c bool) byte {
	if c {
		return 255
	}
	return 0
}

func thresholdOp(t uint8) unaryOp {
	return unaryOp{
		name: "Threshold",
		pick: pickThreshold(t),
		want: func(a byte) byte { return bool255(a >= t) },
		run: func(e *Engine, in, out Region) error {
			return e.ThresholdRegion(in, out, t)
		},
	}
}

func thresholdRangeOp(lo, hi uint8) unaryOp {
	return unaryOp{
		name: "ThresholdRange",
		pick: pickThresholdRange(lo, hi),
		want: func(a byte) byte { return bool255(lo <= a && a <= hi) },
		run: func(e *Engine, in, out Region) error {
			return e.ThresholdRangeRegion(in, out, lo, hi)
		},
	}
}

func unaryOps() []unaryOp {
	ops := []unaryOp{{
		name: "Invert",
		pick: pickInvert,
		want: func(a byte) byte { return 255 - a },
		run:  (*Engine).InvertRegion,
	}}
	for _, t := range []uint8{0, 1, 77, 127, 128, 129, 255} {
		ops = append(ops, thresholdOp(t))
	}
	ranges := [][2]uint8{{0, 255}, {0, 0}, {255, 255}, {10, 200}, {128, 128}, {127, 129}, {200, 10}, {0, 127}}
	for _, r := range ranges {
		ops = append(ops, thresholdRangeOp(r[0], r[1]))
	}
	return ops
}
