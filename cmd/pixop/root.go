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
	"log/slog"
	"strconv"
	"strings"

	"github.com/ajroetker/pixelwise/hwy"
	"github.com/ajroetker/pixelwise/hwy/contrib/arith"
	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string
	backend   string
	logger    = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "pixop",
	Short: "Pixel-wise arithmetic on 8-bit images",
	Long: `pixop applies bitwise, min/max, saturating subtract and threshold
operations to 8-bit images using scalar or 128/256/512-bit lane backends,
and checks that every backend produces identical bytes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(cmd.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return err
		}
		logger = l
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "auto", "Kernel backend (auto, scalar, 128, 256, 512)")
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info", "":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// parseBackend maps a --backend value to the capabilities an engine is
// built with. Explicit widths run on any CPU; a width the processor lacks
// falls back to the portable lane code.
func parseBackend(name string) (hwy.Capabilities, error) {
	switch strings.ToLower(name) {
	case "auto", "":
		return hwy.Detected(), nil
	case "scalar":
		return hwy.ScalarOnly, nil
	}
	if bits, err := strconv.Atoi(name); err == nil && bits%8 == 0 {
		if tag := hwy.TagFor(bits / 8); tag != nil {
			return hwy.Only(tag), nil
		}
	}
	return hwy.Capabilities{}, fmt.Errorf("unknown backend %q (want auto, scalar, 128, 256 or 512)", name)
}

// backendCaps returns single-width capabilities for each backend enabled by
// caps, scalar last.
func backendCaps(caps hwy.Capabilities) []hwy.Capabilities {
	var out []hwy.Capabilities
	for _, k := range arith.NewDispatcher(caps).Backends() {
		if tag := hwy.TagFor(k.LaneWidth); tag != nil {
			out = append(out, hwy.Only(tag))
		} else {
			out = append(out, hwy.ScalarOnly)
		}
	}
	return out
}

func newEngine(caps hwy.Capabilities, opts ...arith.Option) *arith.Engine {
	return arith.New(append(opts, arith.WithCapabilities(caps), arith.WithLogger(logger))...)
}
