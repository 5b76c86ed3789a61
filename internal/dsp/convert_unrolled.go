package dsp

// Unrolled conversion kernels: four pixels per iteration with a scalar tail.
// Per-pixel work is three table lookups, two adds and a shift per channel, so
// the win comes from amortizing loop overhead and giving the compiler a
// straight-line body to schedule. Output is bit-identical to the scalar
// kernels for all inputs.

// forwardRange4 is the unrolled variant of forwardRange.
func forwardRange4(dst, src []byte, start, end int) {
	i := start
	for ; i+4 <= end; i += 4 {
		o := i * 4
		s := src[o : o+16 : o+16]
		d := dst[o : o+16 : o+16]

		r0, g0, b0, a0 := s[0], s[1], s[2], s[3]
		r1, g1, b1, a1 := s[4], s[5], s[6], s[7]
		r2, g2, b2, a2 := s[8], s[9], s[10], s[11]
		r3, g3, b3, a3 := s[12], s[13], s[14], s[15]

		d[0] = uint8((int(yR[r0]) + int(yG[g0]) + int(yB[b0])) >> scaleBits)
		d[1] = uint8(((int(cbR[r0]) + int(cbG[g0]) + int(cbB[b0])) >> scaleBits) + 128)
		d[2] = uint8(((int(crR[r0]) + int(crG[g0]) + int(crB[b0])) >> scaleBits) + 128)
		d[3] = a0

		d[4] = uint8((int(yR[r1]) + int(yG[g1]) + int(yB[b1])) >> scaleBits)
		d[5] = uint8(((int(cbR[r1]) + int(cbG[g1]) + int(cbB[b1])) >> scaleBits) + 128)
		d[6] = uint8(((int(crR[r1]) + int(crG[g1]) + int(crB[b1])) >> scaleBits) + 128)
		d[7] = a1

		d[8] = uint8((int(yR[r2]) + int(yG[g2]) + int(yB[b2])) >> scaleBits)
		d[9] = uint8(((int(cbR[r2]) + int(cbG[g2]) + int(cbB[b2])) >> scaleBits) + 128)
		d[10] = uint8(((int(crR[r2]) + int(crG[g2]) + int(crB[b2])) >> scaleBits) + 128)
		d[11] = a2

		d[12] = uint8((int(yR[r3]) + int(yG[g3]) + int(yB[b3])) >> scaleBits)
		d[13] = uint8(((int(cbR[r3]) + int(cbG[g3]) + int(cbB[b3])) >> scaleBits) + 128)
		d[14] = uint8(((int(crR[r3]) + int(crG[g3]) + int(crB[b3])) >> scaleBits) + 128)
		d[15] = a3
	}
	forwardRange(dst, src, i, end)
}

// inverseRange4 is the unrolled variant of inverseRange.
func inverseRange4(dst, src []byte, start, end int) {
	i := start
	for ; i+4 <= end; i += 4 {
		o := i * 4
		s := src[o : o+16 : o+16]
		d := dst[o : o+16 : o+16]

		y0, cb0, cr0, a0 := int(s[0]), s[1], s[2], s[3]
		y1, cb1, cr1, a1 := int(s[4]), s[5], s[6], s[7]
		y2, cb2, cr2, a2 := int(s[8]), s[9], s[10], s[11]
		y3, cb3, cr3, a3 := int(s[12]), s[13], s[14], s[15]

		d[0] = clipRGB(y0 + (int(rCr[cr0]) >> scaleBits))
		d[1] = clipRGB(y0 + ((int(gCb[cb0]) + int(gCr[cr0])) >> scaleBits))
		d[2] = clipRGB(y0 + (int(bCb[cb0]) >> scaleBits))
		d[3] = a0

		d[4] = clipRGB(y1 + (int(rCr[cr1]) >> scaleBits))
		d[5] = clipRGB(y1 + ((int(gCb[cb1]) + int(gCr[cr1])) >> scaleBits))
		d[6] = clipRGB(y1 + (int(bCb[cb1]) >> scaleBits))
		d[7] = a1

		d[8] = clipRGB(y2 + (int(rCr[cr2]) >> scaleBits))
		d[9] = clipRGB(y2 + ((int(gCb[cb2]) + int(gCr[cr2])) >> scaleBits))
		d[10] = clipRGB(y2 + (int(bCb[cb2]) >> scaleBits))
		d[11] = a2

		d[12] = clipRGB(y3 + (int(rCr[cr3]) >> scaleBits))
		d[13] = clipRGB(y3 + ((int(gCb[cb3]) + int(gCr[cr3])) >> scaleBits))
		d[14] = clipRGB(y3 + (int(bCb[cb3]) >> scaleBits))
		d[15] = a3
	}
	inverseRange(dst, src, i, end)
}
