//go:build arm64

package dsp

import (
	"os"

	"golang.org/x/sys/cpu"
)

// initArch installs the unrolled kernels when the CPU reports ASIMD
// (present on effectively all arm64 cores, absent on some emulators).
// Setting the YCBCR_PUREGO_SCALAR environment variable forces the
// scalar kernels.
func initArch() {
	if os.Getenv(ScalarEnv) != "" {
		return
	}
	if cpu.ARM64.HasASIMD {
		ForwardRange = forwardRange4
		InverseRange = inverseRange4
	}
}
