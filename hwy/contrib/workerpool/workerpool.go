// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool that splits
// the rows of an image region into bands and processes them in parallel.
// A Pool is created once and reused across many calls, so no goroutines are
// spawned per operation.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.ParallelBands(height, 64, func(band, start, end int) {
//	    processRows(start, end)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents one band of a parallel operation.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Bands returns how many bands ParallelBands splits rows into: at most one
// per worker, each at least minRows tall. A closed pool always uses one band.
func (p *Pool) Bands(rows, minRows int) int {
	if rows <= 0 {
		return 0
	}
	if minRows <= 0 {
		minRows = 1
	}
	if p.closed.Load() {
		return 1
	}
	return max(min(p.numWorkers, rows/minRows), 1)
}

// ParallelBands splits [0, rows) into Bands(rows, minRows) contiguous bands
// and calls fn(band, start, end) for each, on the pool's workers.
// Bands are disjoint and cover every row once. Blocks until all bands are done.
func (p *Pool) ParallelBands(rows, minRows int, fn func(band, start, end int)) {
	bands := p.Bands(rows, minRows)
	if bands == 0 {
		return
	}
	if bands == 1 {
		fn(0, 0, rows)
		return
	}

	// Spread the remainder over the first bands so heights differ by at most one.
	size, extra := rows/bands, rows%bands

	var wg sync.WaitGroup
	wg.Add(bands)

	start := 0
	for band := range bands {
		end := start + size
		if band < extra {
			end++
		}
		s := start
		p.workC <- workItem{
			fn: func() {
				fn(band, s, end)
			},
			barrier: &wg,
		}
		start = end
	}

	wg.Wait()
}
