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

package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ajroetker/pixelwise/hwy/contrib/arith"
	"github.com/ajroetker/pixelwise/hwy/contrib/image"
)

type opParams struct {
	threshold uint8
	lo, hi    uint8
}

// cliOp adapts one whole-image operation for the commands.
type cliOp struct {
	name  string
	arity int
	run   func(e *arith.Engine, a, b, out *image.Image, p opParams) error
}

var cliOps = []cliOp{
	{"and", 2, func(e *arith.Engine, a, b, out *image.Image, _ opParams) error { return e.BitwiseAnd(a, b, out) }},
	{"or", 2, func(e *arith.Engine, a, b, out *image.Image, _ opParams) error { return e.BitwiseOr(a, b, out) }},
	{"xor", 2, func(e *arith.Engine, a, b, out *image.Image, _ opParams) error { return e.BitwiseXor(a, b, out) }},
	{"max", 2, func(e *arith.Engine, a, b, out *image.Image, _ opParams) error { return e.Maximum(a, b, out) }},
	{"min", 2, func(e *arith.Engine, a, b, out *image.Image, _ opParams) error { return e.Minimum(a, b, out) }},
	{"sub", 2, func(e *arith.Engine, a, b, out *image.Image, _ opParams) error { return e.Subtract(a, b, out) }},
	{"absdiff", 2, func(e *arith.Engine, a, b, out *image.Image, _ opParams) error { return e.AbsoluteDifference(a, b, out) }},
	{"invert", 1, func(e *arith.Engine, a, _, out *image.Image, _ opParams) error { return e.Invert(a, out) }},
	{"threshold", 1, func(e *arith.Engine, a, _, out *image.Image, p opParams) error { return e.Threshold(a, out, p.threshold) }},
	{"range", 1, func(e *arith.Engine, a, _, out *image.Image, p opParams) error {
		return e.ThresholdRange(a, out, p.lo, p.hi)
	}},
}

func opNames() []string {
	names := make([]string, len(cliOps))
	for i, op := range cliOps {
		names[i] = op.name
	}
	return names
}

func lookupOp(name string) (cliOp, error) {
	i := slices.IndexFunc(cliOps, func(op cliOp) bool { return op.name == strings.ToLower(name) })
	if i < 0 {
		return cliOp{}, fmt.Errorf("unknown operation %q (want one of %s)", name, strings.Join(opNames(), ", "))
	}
	return cliOps[i], nil
}

func lookupOps(names []string) ([]cliOp, error) {
	if len(names) == 0 {
		return cliOps, nil
	}
	ops := make([]cliOp, 0, len(names))
	for _, n := range names {
		op, err := lookupOp(n)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}
