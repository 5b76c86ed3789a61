// Package dsp provides the fixed-point conversion kernels between packed
// RGBA and JPEG/JFIF YCbCrA pixel buffers. Coefficient and clip lookup
// tables are generated once at package initialisation; the kernels are
// stateless and safe for concurrent use on disjoint pixel ranges.
package dsp

// Conversion function variables for dispatch.
// These are set to the scalar implementations by Init() and can be
// overridden by platform-specific variants selected in initArch.
// Every variant produces bit-identical output.
var (
	// ForwardRange converts pixels [start, end) of src from RGBA to
	// YCbCrA in dst. Buffers are packed 4 bytes per pixel; dst == src
	// (in-place) is allowed.
	ForwardRange func(dst, src []byte, start, end int)

	// InverseRange converts pixels [start, end) of src from YCbCrA to
	// RGBA in dst, saturating each channel to [0, 255].
	InverseRange func(dst, src []byte, start, end int)
)

// ScalarEnv is the environment variable that forces the scalar kernels,
// bypassing platform-specific selection.
const ScalarEnv = "YCBCR_PUREGO_SCALAR"

// Init fills the lookup tables and installs the conversion kernels.
// It runs from package init, so the tables are ready before any caller
// can reach a conversion function.
func Init() {
	initCoeffTables()
	initClipTable()

	ForwardRange = forwardRange
	InverseRange = inverseRange

	initArch()
}

func init() { Init() }
