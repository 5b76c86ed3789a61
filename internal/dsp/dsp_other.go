//go:build !amd64 && !arm64

package dsp

// initArch keeps the scalar kernels on platforms without a tuned variant.
func initArch() {}
