//go:build !amd64 && !arm64

package hwy

func init() {
	// Non-amd64/arm64 architectures report no vector capability.
	// The lane kernels still run there when forced via Capabilities.
	finishDetection(DispatchScalar, ScalarOnly)
}
