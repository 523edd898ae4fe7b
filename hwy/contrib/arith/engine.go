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
	"log/slog"
	"sync"

	"github.com/ajroetker/pixelwise/hwy"
	"github.com/ajroetker/pixelwise/hwy/contrib/workerpool"
)

// DefaultMinBandRows is the smallest band handed to a pool worker.
const DefaultMinBandRows = 16

// Engine runs operations with a fixed dispatcher. It holds no mutable state
// and may be shared between goroutines.
type Engine struct {
	dispatch    *Dispatcher
	pool        *workerpool.Pool
	minBandRows int
	logger      *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithCapabilities overrides the detected capabilities.
func WithCapabilities(caps hwy.Capabilities) Option {
	return func(e *Engine) {
		e.dispatch = NewDispatcher(caps)
	}
}

// WithPool splits the rows of each call into bands run on pool. The output is
// identical to sequential execution.
func WithPool(pool *workerpool.Pool) Option {
	return func(e *Engine) {
		e.pool = pool
	}
}

// WithMinBandRows sets the smallest band height used with WithPool.
func WithMinBandRows(rows int) Option {
	return func(e *Engine) {
		if rows > 0 {
			e.minBandRows = rows
		}
	}
}

// WithLogger sets the logger used for engine construction messages.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an Engine. Without options it uses hwy.Detected() and runs
// every call on the calling goroutine.
func New(opts ...Option) *Engine {
	e := &Engine{minBandRows: DefaultMinBandRows}
	for _, opt := range opts {
		opt(e)
	}
	if e.dispatch == nil {
		e.dispatch = NewDispatcher(hwy.Detected())
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}

	names := make([]string, 0, 4)
	for _, k := range e.dispatch.Backends() {
		names = append(names, k.Name)
	}
	e.logger.Debug("arith engine ready",
		"capabilities", e.dispatch.Capabilities().String(),
		"backends", names,
		"parallel", e.pool != nil)
	return e
}

var defaultEngine = sync.OnceValue(func() *Engine { return New() })

// Default returns the shared engine used by the package-level functions.
func Default() *Engine {
	return defaultEngine()
}

// Dispatcher returns the engine's dispatcher.
func (e *Engine) Dispatcher() *Dispatcher {
	return e.dispatch
}

// bands runs fn over [0, rows) as one band, or as several on the pool.
func (e *Engine) bands(rows int, fn func(band, start, end int)) {
	if e.pool == nil || rows < 2*e.minBandRows {
		fn(0, 0, rows)
		return
	}
	e.pool.ParallelBands(rows, e.minBandRows, fn)
}

func (e *Engine) numBands(rows int) int {
	if e.pool == nil || rows < 2*e.minBandRows {
		return 1
	}
	return e.pool.Bands(rows, e.minBandRows)
}

// runBinary applies row to every row of validated regions.
func (e *Engine) runBinary(in1, in2, out Region, pick func(*Kernels) binaryRow) {
	a, b, dst := newRowView(in1), newRowView(in2), newRowView(out)
	row := pick(e.dispatch.Select(dst.Width()))
	e.bands(dst.Rows(), func(_, start, end int) {
		for i := start; i < end; i++ {
			row(dst.Row(i), a.Row(i), b.Row(i))
		}
	})
}

func (e *Engine) runUnary(in, out Region, row func(k *Kernels) unaryRow) {
	a, dst := newRowView(in), newRowView(out)
	fn := row(e.dispatch.Select(dst.Width()))
	e.bands(dst.Rows(), func(_, start, end int) {
		src := a.Band(start, end)
		for c := dst.Band(start, end).Cursor(); c.Next(); {
			fn(c.Row(), src.Row(c.cur))
		}
	})
}

func (e *Engine) sum(r Region) uint32 {
	v := newRowView(r)
	k := e.dispatch.Select(v.Width())
	partial := make([]uint32, e.numBands(v.Rows()))
	e.bands(v.Rows(), func(band, start, end int) {
		var s uint32
		for i := start; i < end; i++ {
			s += k.Sum(v.Row(i))
		}
		partial[band] = s
	})
	var total uint32
	for _, s := range partial {
		total += s
	}
	return total
}
