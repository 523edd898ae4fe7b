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

	"github.com/ajroetker/pixelwise/hwy"
	"github.com/ajroetker/pixelwise/hwy/contrib/arith"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show detected CPU capabilities and enabled backends",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		caps, err := parseBackend(backend)
		if err != nil {
			return err
		}
		printInfo(cmd.OutOrStdout(), caps)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func printInfo(w io.Writer, caps hwy.Capabilities) {
	fmt.Fprintf(w, "dispatch level: %s\n", hwy.CurrentName())
	fmt.Fprintf(w, "detected:       %s\n", hwy.Detected())
	fmt.Fprintf(w, "selected:       %s\n", caps)
	if hwy.NoSimdEnv() {
		fmt.Fprintln(w, "HWY_NO_SIMD is set")
	}
	if n := hwy.MaxWidthEnv(); n > 0 {
		fmt.Fprintf(w, "HWY_MAX_WIDTH:  %d\n", n)
	}
	fmt.Fprintln(w, "backends:")
	for _, k := range arith.NewDispatcher(caps).Backends() {
		fmt.Fprintf(w, "  %-7s lane %2d bytes  %s\n", k.Name, k.LaneWidth, k.ISA)
	}
}
