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
	"github.com/ajroetker/pixelwise/hwy"
)

// Dispatcher chooses a kernel set for a row width from the capabilities it
// was built with. It is immutable and safe for concurrent use.
type Dispatcher struct {
	caps hwy.Capabilities
	sets []*Kernels // enabled vector sets, widest first
}

// NewDispatcher enables the vector sets allowed by caps.
func NewDispatcher(caps hwy.Capabilities) *Dispatcher {
	d := &Dispatcher{caps: caps}
	for _, k := range []*Kernels{Vector512, Vector256, Vector128} {
		if caps.Supports(k.LaneWidth) {
			d.sets = append(d.sets, k)
		}
	}
	return d
}

// Capabilities returns the capabilities the dispatcher was built with.
func (d *Dispatcher) Capabilities() hwy.Capabilities {
	return d.caps
}

// Select returns the widest enabled set whose lane fits in widthBytes, or
// Scalar when none does.
func (d *Dispatcher) Select(widthBytes int) *Kernels {
	for _, k := range d.sets {
		if widthBytes >= k.LaneWidth {
			return k
		}
	}
	return Scalar
}

// Backends lists the enabled vector sets widest first, followed by Scalar.
func (d *Dispatcher) Backends() []*Kernels {
	out := make([]*Kernels, 0, len(d.sets)+1)
	out = append(out, d.sets...)
	return append(out, Scalar)
}
