//go:build amd64

package dsp

import (
	"os"

	"golang.org/x/sys/cpu"
)

// initArch installs the unrolled kernels on CPUs with the SSE4.1 baseline.
// The unrolled bodies are pure Go; the feature gate keeps kernel selection
// aligned with the cores the wide loads actually help on. Setting the
// YCBCR_PUREGO_SCALAR environment variable forces the scalar kernels.
func initArch() {
	if os.Getenv(ScalarEnv) != "" {
		return
	}
	if cpu.X86.HasSSE41 {
		ForwardRange = forwardRange4
		InverseRange = inverseRange4
	}
}
