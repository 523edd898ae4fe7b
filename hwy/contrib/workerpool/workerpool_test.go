// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestBands(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	tests := []struct {
		rows, minRows, want int
	}{
		{0, 1, 0},
		{1, 1, 1},
		{3, 1, 3},
		{100, 1, 4},
		{100, 30, 3},
		{100, 200, 1},
		{100, 0, 4},
	}
	for _, tt := range tests {
		if got := pool.Bands(tt.rows, tt.minRows); got != tt.want {
			t.Errorf("Bands(%d, %d) = %d, want %d", tt.rows, tt.minRows, got, tt.want)
		}
	}
}

func TestParallelBandsCoverage(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, rows := range []int{1, 2, 5, 17, 100, 1023} {
		hits := make([]int32, rows)
		seen := make([]atomic.Bool, pool.Bands(rows, 3))
		pool.ParallelBands(rows, 3, func(band, start, end int) {
			if seen[band].Swap(true) {
				t.Errorf("rows=%d: band %d ran twice", rows, band)
			}
			if end-start < 1 {
				t.Errorf("rows=%d: empty band [%d, %d)", rows, start, end)
			}
			for i := start; i < end; i++ {
				hits[i]++
			}
		})
		for i, h := range hits {
			if h != 1 {
				t.Fatalf("rows=%d: row %d processed %d times", rows, i, h)
			}
		}
	}
}

func TestParallelBandsBalanced(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	sizes := make([]int, 3)
	pool.ParallelBands(10, 1, func(band, start, end int) {
		sizes[band] = end - start
	})
	want := []int{4, 3, 3}
	for i := range want {
		if sizes[i] != want[i] {
			t.Errorf("band %d height = %d, want %d", i, sizes[i], want[i])
		}
	}
}

func TestParallelBandsCoversRange(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.ParallelBands(n, 1, func(_, start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelBandsEmpty(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	called := false
	pool.ParallelBands(0, 1, func(_, start, end int) {
		called = true
	})

	if called {
		t.Error("ParallelBands(0) should not call fn")
	}
}

func TestClosedPoolRunsInline(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // double close is safe

	var calls int
	pool.ParallelBands(50, 1, func(band, start, end int) {
		calls++
		if band != 0 || start != 0 || end != 50 {
			t.Errorf("closed pool band = (%d, %d, %d), want (0, 0, 50)", band, start, end)
		}
	})
	if calls != 1 {
		t.Errorf("closed pool made %d calls, want 1", calls)
	}
}

func TestPoolReuse(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var total atomic.Int64
	for range 100 {
		pool.ParallelBands(64, 8, func(_, start, end int) {
			total.Add(int64(end - start))
		})
	}
	if total.Load() != 6400 {
		t.Errorf("total rows = %d, want 6400", total.Load())
	}
}

func BenchmarkParallelBands(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	rows := make([]int, 2048)
	b.ReportAllocs()
	for b.Loop() {
		pool.ParallelBands(len(rows), 64, func(_, start, end int) {
			for i := start; i < end; i++ {
				rows[i]++
			}
		})
	}
}
