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
	"bytes"
	"fmt"
	"math/rand"

	"github.com/ajroetker/pixelwise/hwy"
	"github.com/ajroetker/pixelwise/hwy/contrib/arith"
	"github.com/ajroetker/pixelwise/hwy/contrib/image"
	"github.com/spf13/cobra"
)

var (
	verifyIterations int
	verifySeed       int64
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that every backend matches the scalar kernels",
	Long: `Runs every operation on random images of random geometry with each
enabled backend and compares the output bytes against the scalar backend.
Exits with an error on the first iteration that finds a mismatch.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		caps, err := parseBackend(backend)
		if err != nil {
			return err
		}
		checks, err := runVerify(caps, verifyIterations, verifySeed)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d comparisons across %s\n", checks, caps)
		return nil
	},
}

func init() {
	verifyCmd.Flags().IntVar(&verifyIterations, "iterations", 200, "Number of random image pairs")
	verifyCmd.Flags().Int64Var(&verifySeed, "seed", 1, "Random seed")
	rootCmd.AddCommand(verifyCmd)
}

var alignments = []uint8{1, 4, 16, 64}

// runVerify returns the number of backend comparisons made.
func runVerify(caps hwy.Capabilities, iterations int, seed int64) (int, error) {
	rng := rand.New(rand.NewSource(seed))
	ref := newEngine(hwy.ScalarOnly)

	var engines []*arith.Engine
	for _, c := range backendCaps(caps) {
		if c != hwy.ScalarOnly {
			engines = append(engines, newEngine(c))
		}
	}

	checks := 0
	for iter := range iterations {
		w := uint32(1 + rng.Intn(300))
		h := uint32(1 + rng.Intn(6))
		cc := uint8(1 + 2*rng.Intn(2))
		align := alignments[rng.Intn(len(alignments))]

		a := image.NewImageWith(w, h, cc, align)
		b := image.NewImageWith(w, h, cc, align)
		rng.Read(a.Data())
		rng.Read(b.Data())
		lo, hi := uint8(rng.Intn(256)), uint8(rng.Intn(256))
		params := opParams{threshold: uint8(rng.Intn(256)), lo: lo, hi: hi}

		for _, op := range cliOps {
			want := image.NewImageWith(w, h, cc, align)
			if err := op.run(ref, a, b, want, params); err != nil {
				return checks, err
			}
			for _, eng := range engines {
				got := image.NewImageWith(w, h, cc, align)
				if err := op.run(eng, a, b, got, params); err != nil {
					return checks, err
				}
				checks++
				if !bytes.Equal(got.Data(), want.Data()) {
					name := eng.Dispatcher().Backends()[0].Name
					logger.Error("backend mismatch", "iteration", iter, "op", op.name, "backend", name,
						"width", w, "height", h, "colors", cc)
					return checks, fmt.Errorf("%s differs from scalar for %s on %dx%dx%d", name, op.name, w, h, cc)
				}

				// Same operation with the first source as destination.
				inPlace := a.Clone()
				if err := op.run(eng, inPlace, b, inPlace, params); err != nil {
					return checks, err
				}
				checks++
				if !samePixels(inPlace, want) {
					name := eng.Dispatcher().Backends()[0].Name
					return checks, fmt.Errorf("%s in place differs from scalar for %s on %dx%dx%d", name, op.name, w, h, cc)
				}
			}
		}

		want, _ := ref.Sum(a)
		for _, eng := range engines {
			got, _ := eng.Sum(a)
			checks++
			if got != want {
				return checks, fmt.Errorf("Sum differs from scalar on %dx%dx%d: %d != %d", w, h, cc, got, want)
			}
		}
	}
	logger.Info("verify done", "iterations", iterations, "comparisons", checks)
	return checks, nil
}

// samePixels compares the samples of two images of equal size, ignoring row
// padding.
func samePixels(x, y *image.Image) bool {
	for row := range x.Height() {
		if !bytes.Equal(x.RowSlice(row), y.RowSlice(row)) {
			return false
		}
	}
	return true
}
