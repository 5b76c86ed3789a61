// Package ycbcr converts packed 4-channel pixel buffers between RGBA and
// the JPEG/JFIF YCbCr color space, in both directions, using fixed-point
// integer arithmetic. The conversion is bit-exact with the classic
// table-driven C implementation: no floating point is used at conversion
// time, and repeated conversions of the same input are byte-identical.
//
// The package operates on packed buffers of 4 bytes per pixel, in channel
// order R,G,B,A on the RGB side and Y,Cb,Cr,A on the YCbCr side. The
// fourth channel is copied through unchanged by every conversion.
//
// Converting a buffer in place (dst and src the same slice) is supported;
// partially overlapping buffers are not.
//
// Basic usage:
//
//	dst := make([]byte, len(src))
//	err := ycbcr.RGBAToYCbCrA(dst, src)
//
// Large buffers can be converted across several CPUs with a Converter:
//
//	c := ycbcr.NewConverter(nil)
//	defer c.Close()
//	err := c.YCbCrAToRGBA(dst, src)
//
// Adapters to and from image.Image live in ImageToYCbCrA and
// YCbCrAToImage.
package ycbcr
