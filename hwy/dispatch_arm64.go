//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture; we check it for consistency.
	if cpu.ARM64.HasASIMD {
		finishDetection(DispatchNEON, Capabilities{Has128: true})
		return
	}
	// Fallback to scalar (should never happen on ARMv8+)
	finishDetection(DispatchScalar, ScalarOnly)
}
