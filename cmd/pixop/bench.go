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
	"io"
	"math"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/ajroetker/pixelwise/hwy"
	"github.com/ajroetker/pixelwise/hwy/contrib/arith"
	"github.com/ajroetker/pixelwise/hwy/contrib/image"
	"github.com/ajroetker/pixelwise/hwy/contrib/workerpool"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	benchSizes   []int
	benchRuns    int
	benchOps     []string
	benchWorkers int
	benchSeed    int64
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time every operation on every enabled backend",
	Long: `Runs each operation on square images of random values and reports the
mean and standard deviation of the wall time per backend.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		caps, err := parseBackend(backend)
		if err != nil {
			return err
		}
		ops, err := lookupOps(benchOps)
		if err != nil {
			return err
		}
		return runBench(cmd.OutOrStdout(), benchConfig{
			sizes:   benchSizes,
			runs:    benchRuns,
			ops:     ops,
			caps:    caps,
			workers: benchWorkers,
			seed:    benchSeed,
		})
	},
}

func init() {
	benchCmd.Flags().IntSliceVar(&benchSizes, "sizes", []int{256, 512, 1024, 2048}, "Square image sizes in pixels")
	benchCmd.Flags().IntVar(&benchRuns, "runs", 10, "Timed runs per operation and backend")
	benchCmd.Flags().StringSliceVar(&benchOps, "ops", nil, "Operations to time (default all)")
	benchCmd.Flags().IntVar(&benchWorkers, "workers", 0, "Worker pool size; 0 runs on one goroutine")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 1, "Random seed for image contents")
	rootCmd.AddCommand(benchCmd)
}

type benchConfig struct {
	sizes   []int
	runs    int
	ops     []cliOp
	caps    hwy.Capabilities
	workers int
	seed    int64
}

type benchResult struct {
	size     int
	op       string
	backend  string
	mean, sd float64 // milliseconds
}

func runBench(w io.Writer, cfg benchConfig) error {
	if cfg.runs <= 0 {
		return fmt.Errorf("--runs must be positive, got %d", cfg.runs)
	}

	var opts []arith.Option
	if cfg.workers > 0 {
		pool := workerpool.New(cfg.workers)
		defer pool.Close()
		opts = append(opts, arith.WithPool(pool))
	}

	rng := rand.New(rand.NewSource(cfg.seed))
	params := opParams{threshold: 128, lo: 64, hi: 192}
	var results []benchResult

	for _, size := range cfg.sizes {
		if size <= 0 {
			return fmt.Errorf("invalid size %d", size)
		}
		n := uint32(size)
		a, b := image.NewImage(n, n), image.NewImage(n, n)
		rng.Read(a.Data())
		rng.Read(b.Data())
		out := image.NewImage(n, n)

		for _, op := range cfg.ops {
			for _, caps := range backendCaps(cfg.caps) {
				eng := newEngine(caps, opts...)
				times := make([]float64, cfg.runs)
				for i := range times {
					start := time.Now()
					if err := op.run(eng, a, b, out, params); err != nil {
						return err
					}
					times[i] = float64(time.Since(start).Nanoseconds()) / 1e6
				}
				mean, sd := meanStdDev(times)
				results = append(results, benchResult{
					size:    size,
					op:      op.name,
					backend: eng.Dispatcher().Select(size).Name,
					mean:    mean,
					sd:      sd,
				})
			}
		}
		logger.Debug("bench size done", "size", size)
	}

	printBench(w, results)
	return nil
}

func printBench(w io.Writer, results []benchResult) {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	p.Fprintf(tw, "size\top\tbackend\tmean ms\tstddev ms\tMB/s\t\n")
	for _, r := range results {
		mbps := 0.0
		if r.mean > 0 {
			mbps = float64(r.size*r.size) / (r.mean / 1000) / 1e6
		}
		p.Fprintf(tw, "%d\t%s\t%s\t%.3f\t%.3f\t%.0f\t\n", r.size, r.op, r.backend, r.mean, r.sd, mbps)
	}
	tw.Flush()
}

// meanStdDev returns the mean and sample standard deviation of values.
func meanStdDev(values []float64) (mean, sd float64) {
	if len(values) == 0 {
		return 0, 0
	}
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	if len(values) == 1 {
		return mean, 0
	}
	var ss float64
	for _, v := range values {
		ss += (v - mean) * (v - mean)
	}
	return mean, math.Sqrt(ss / float64(len(values)-1))
}
