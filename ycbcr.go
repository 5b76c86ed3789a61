package ycbcr

import (
	"errors"

	"github.com/deepteams/ycbcr/internal/dsp"
)

// Errors returned by the conversion entry points.
var (
	// ErrBufferLength is returned when a buffer length is not a
	// multiple of 4 bytes per pixel.
	ErrBufferLength = errors.New("ycbcr: buffer length not a multiple of 4")

	// ErrLengthMismatch is returned when src and dst differ in length.
	ErrLengthMismatch = errors.New("ycbcr: src and dst lengths differ")
)

// checkBuffers validates the shared caller contract and returns the pixel
// count. The per-pixel kernels themselves perform no checks.
func checkBuffers(dst, src []byte) (int, error) {
	if len(src)%4 != 0 {
		return 0, ErrBufferLength
	}
	if len(dst) != len(src) {
		return 0, ErrLengthMismatch
	}
	return len(src) / 4, nil
}

// RGBAToYCbCrA converts a packed RGBA buffer to JPEG/JFIF YCbCrA.
// Both buffers hold 4 bytes per pixel and must be the same length.
// The alpha byte of every pixel is copied through unchanged.
//
// dst == src (in-place conversion) is allowed; behavior is undefined for
// buffers that overlap partially.
func RGBAToYCbCrA(dst, src []byte) error {
	n, err := checkBuffers(dst, src)
	if err != nil {
		return err
	}
	dsp.ForwardRange(dst, src, 0, n)
	return nil
}

// YCbCrAToRGBA converts a packed JPEG/JFIF YCbCrA buffer to RGBA.
// Each output channel is independently saturated to [0, 255]; out-of-gamut
// Y/Cb/Cr combinations clamp rather than wrap. The alpha byte of every
// pixel is copied through unchanged.
//
// dst == src (in-place conversion) is allowed; behavior is undefined for
// buffers that overlap partially.
func YCbCrAToRGBA(dst, src []byte) error {
	n, err := checkBuffers(dst, src)
	if err != nil {
		return err
	}
	dsp.InverseRange(dst, src, 0, n)
	return nil
}
