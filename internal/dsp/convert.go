package dsp

// Scalar conversion kernels. Both operate on the pixel sub-range [start, end)
// of packed 4-byte-per-pixel buffers, so the same kernels serve the
// sequential driver and parallel range partitioning.
//
// In-place conversion (dst and src the same slice) is safe: all four input
// bytes of a pixel are read before any output byte of that pixel is written.
// Partially overlapping buffers are not supported.

// forwardRange converts pixels [start, end) from RGBA to YCbCrA.
//
// The computed y/cb/cr values are narrowed by plain uint8 truncation, not
// saturation: the forward matrix keeps them in [0, 255] for every 8-bit RGB
// input (the coefficient tables are monotone in their input, so the extremes
// occur at channel extremes and stay in range).
func forwardRange(dst, src []byte, start, end int) {
	for i := start; i < end; i++ {
		o := i * 4
		r := src[o]
		g := src[o+1]
		b := src[o+2]
		a := src[o+3]

		y := (int(yR[r]) + int(yG[g]) + int(yB[b])) >> scaleBits
		cb := ((int(cbR[r]) + int(cbG[g]) + int(cbB[b])) >> scaleBits) + 128
		cr := ((int(crR[r]) + int(crG[g]) + int(crB[b])) >> scaleBits) + 128

		dst[o] = uint8(y)
		dst[o+1] = uint8(cb)
		dst[o+2] = uint8(cr)
		dst[o+3] = a
	}
}

// inverseRange converts pixels [start, end) from YCbCrA to RGBA.
//
// Unlike the forward path, each channel is saturated to [0, 255]:
// out-of-gamut Y/Cb/Cr combinations legitimately overshoot byte range.
func inverseRange(dst, src []byte, start, end int) {
	for i := start; i < end; i++ {
		o := i * 4
		y := int(src[o])
		cb := src[o+1]
		cr := src[o+2]
		a := src[o+3]

		r := y + (int(rCr[cr]) >> scaleBits)
		g := y + ((int(gCb[cb]) + int(gCr[cr])) >> scaleBits)
		b := y + (int(bCb[cb]) >> scaleBits)

		dst[o] = clipRGB(r)
		dst[o+1] = clipRGB(g)
		dst[o+2] = clipRGB(b)
		dst[o+3] = a
	}
}
