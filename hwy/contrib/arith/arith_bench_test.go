package arith

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/ajroetker/pixelwise/hwy/contrib/image"
)

var benchSizes = []struct {
	name string
	w, h uint32
}{
	{"256x256", 256, 256},
	{"1024x1024", 1024, 1024},
	{"1920x1080", 1920, 1080},
}

func BenchmarkBitwiseAnd(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	for _, size := range benchSizes {
		a := randomImage(rng, size.w, size.h, 1, 1)
		c := randomImage(rng, size.w, size.h, 1, 1)
		out := image.NewImage(size.w, size.h)
		for _, be := range testBackends() {
			eng := be.engine()
			b.Run(fmt.Sprintf("%s/%s", size.name, be.name), func(b *testing.B) {
				b.SetBytes(int64(size.w * size.h))
				b.ReportAllocs()
				for b.Loop() {
					_ = eng.BitwiseAnd(a, c, out)
				}
			})
		}
	}
}

func BenchmarkThreshold(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	for _, size := range benchSizes {
		a := randomImage(rng, size.w, size.h, 1, 1)
		out := image.NewImage(size.w, size.h)
		for _, be := range testBackends() {
			eng := be.engine()
			b.Run(fmt.Sprintf("%s/%s", size.name, be.name), func(b *testing.B) {
				b.SetBytes(int64(size.w * size.h))
				b.ReportAllocs()
				for b.Loop() {
					_ = eng.Threshold(a, out, 128)
				}
			})
		}
	}
}

func BenchmarkSum(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	a := randomImage(rng, 1024, 1024, 1, 1)
	for _, be := range testBackends() {
		eng := be.engine()
		b.Run(be.name, func(b *testing.B) {
			b.SetBytes(1024 * 1024)
			for b.Loop() {
				_, _ = eng.Sum(a)
			}
		})
	}
}
