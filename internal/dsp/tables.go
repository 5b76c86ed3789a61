package dsp

// JPEG/JFIF RGB <-> YCbCr conversion tables, fixed-point with scaleBits of
// fractional precision. Each table maps one source byte value to its prescaled
// contribution to one destination channel:
//
//	table[v] = (INT16)(coeff * k * (1 << scaleBits) + 0.5)
//
// with k = v for the forward tables and k = v-128 for the inverse tables.
// The float-to-int conversion truncates toward zero, matching the C cast in
// libImaging/ConvertYCbCr.c. This is not round-to-nearest for negative
// products (cbR[1] is -10, not -11) and the difference is observable, so the
// rule must not be "improved".
//
// Forward matrix:
//
//	Y  =  0.299*R + 0.587*G + 0.114*B
//	Cb = -0.16874*R - 0.33126*G + 0.5*B + 128
//	Cr =  0.5*R - 0.41869*G - 0.08131*B + 128
//
// Inverse matrix:
//
//	R = Y + 1.402*(Cr-128)
//	G = Y - 0.34414*(Cb-128) - 0.71414*(Cr-128)
//	B = Y + 1.772*(Cb-128)

// scaleBits is the fixed-point precision of the coefficient tables.
// Accumulated sums are recovered with an arithmetic right shift, so the
// implicit division has floor semantics for negative intermediates.
const scaleBits = 6

// Forward tables: contribution of each source channel to Y, Cb, Cr.
var (
	yR  [256]int16
	yG  [256]int16
	yB  [256]int16
	cbR [256]int16
	cbG [256]int16
	cbB [256]int16
	crG [256]int16
	crB [256]int16
)

// crR shares cbB's storage: both encode 0.5*v*2^scaleBits.
// Indexing through the array pointer is identical to indexing cbB directly.
var crR = &cbB

// Inverse tables, indexed by the raw chroma byte (the -128 bias is folded
// into the table entries).
var (
	rCr [256]int16
	gCb [256]int16
	gCr [256]int16
	bCb [256]int16
)

// coeffEntry computes one table entry with the reference rounding rule:
// add 0.5, then truncate toward zero (Go's float-to-int conversion, same as
// the C INT16 cast).
func coeffEntry(coeff float64, k int) int16 {
	return int16(coeff*float64(k)*(1<<scaleBits) + 0.5)
}

// initCoeffTables fills all coefficient tables. Called once from Init.
func initCoeffTables() {
	for v := 0; v < 256; v++ {
		yR[v] = coeffEntry(0.299, v)
		yG[v] = coeffEntry(0.587, v)
		yB[v] = coeffEntry(0.114, v)
		cbR[v] = coeffEntry(-0.16874, v)
		cbG[v] = coeffEntry(-0.33126, v)
		cbB[v] = coeffEntry(0.5, v)
		crG[v] = coeffEntry(-0.41869, v)
		crB[v] = coeffEntry(-0.08131, v)

		k := v - 128
		rCr[v] = coeffEntry(1.402, k)
		gCb[v] = coeffEntry(-0.34414, k)
		gCr[v] = coeffEntry(-0.71414, k)
		bCb[v] = coeffEntry(1.772, k)
	}
}

// The inverse transform's raw channel sums can overshoot byte range:
//
//	r = y + (rCr[cr]>>scaleBits)          in [-180, 433]
//	g = y + ((gCb[cb]+gCr[cr])>>scaleBits) in [-135, 390]
//	b = y + (bCb[cb]>>scaleBits)          in [-227, 480]
//
// rgbClip maps the union [-227, 480] to [0, 255] via offset indexing,
// replacing three compares per channel with one lookup.
const (
	clipMin    = -227
	clipMax    = 480
	clipOffset = -clipMin
)

var rgbClip [clipOffset + clipMax + 1]uint8

// initClipTable fills rgbClip. Called once from Init.
func initClipTable() {
	for i := clipMin; i <= clipMax; i++ {
		v := i
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		rgbClip[clipOffset+i] = uint8(v)
	}
}

// clipRGB clips v to [0, 255]. v must be within [clipMin, clipMax], which
// holds for every value the inverse kernels can produce.
func clipRGB(v int) uint8 { return rgbClip[clipOffset+v] }
