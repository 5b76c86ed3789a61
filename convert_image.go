package ycbcr

import (
	"errors"
	"image"
	"image/color"
)

// Errors returned by the image adapters.
var (
	ErrNilImage     = errors.New("ycbcr: nil image")
	ErrImageSize    = errors.New("ycbcr: invalid image dimensions")
	ErrImageBufSize = errors.New("ycbcr: buffer size does not match image dimensions")
)

// imageBufferLen returns the packed buffer size for a w x h frame, guarding
// the multiplication with uint64 arithmetic.
func imageBufferLen(w, h int) (int, error) {
	if w < 0 || h < 0 {
		return 0, ErrImageSize
	}
	n := uint64(w) * uint64(h) * 4
	const maxInt = int(^uint(0) >> 1)
	if n > uint64(maxInt) {
		return 0, ErrImageSize
	}
	return int(n), nil
}

// ImageToYCbCrA packs img into RGBA channel order and forward-converts it
// into dst, which must be exactly 4*width*height bytes. Premultiplied
// sources (*image.RGBA) are un-premultiplied first; anything that is not
// *image.NRGBA or *image.RGBA goes through color.NRGBAModel.
//
// The core transform allocates nothing; dst doubles as the packing scratch
// since the conversion is safe in place.
func ImageToYCbCrA(dst []byte, img image.Image) error {
	if img == nil {
		return ErrNilImage
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	need, err := imageBufferLen(width, height)
	if err != nil {
		return err
	}
	if len(dst) != need {
		return ErrImageBufSize
	}

	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < height; y++ {
			srcOff := (y+bounds.Min.Y-src.Rect.Min.Y)*src.Stride + (bounds.Min.X-src.Rect.Min.X)*4
			copy(dst[y*width*4:(y+1)*width*4], src.Pix[srcOff:srcOff+width*4])
		}
	case *image.RGBA:
		for y := 0; y < height; y++ {
			rowOff := (y+bounds.Min.Y-src.Rect.Min.Y)*src.Stride + (bounds.Min.X-src.Rect.Min.X)*4
			for x := 0; x < width; x++ {
				off := rowOff + x*4
				r, g, b, a := src.Pix[off], src.Pix[off+1], src.Pix[off+2], src.Pix[off+3]
				// Un-premultiply: the transform expects straight alpha.
				if a > 0 && a < 255 {
					a16 := uint16(a)
					r = uint8(uint16(r) * 255 / a16)
					g = uint8(uint16(g) * 255 / a16)
					b = uint8(uint16(b) * 255 / a16)
				}
				o := (y*width + x) * 4
				dst[o] = r
				dst[o+1] = g
				dst[o+2] = b
				dst[o+3] = a
			}
		}
	default:
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
				o := (y*width + x) * 4
				dst[o] = c.R
				dst[o+1] = c.G
				dst[o+2] = c.B
				dst[o+3] = c.A
			}
		}
	}

	return RGBAToYCbCrA(dst, dst)
}

// YCbCrAToImage inverse-converts a packed YCbCrA buffer into a freshly
// allocated *image.NRGBA of the given dimensions. len(src) must be exactly
// 4*w*h bytes.
func YCbCrAToImage(src []byte, w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrImageSize
	}
	need, err := imageBufferLen(w, h)
	if err != nil {
		return nil, err
	}
	if len(src) != need {
		return nil, ErrImageBufSize
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	// NewNRGBA's stride is exactly 4*w, so Pix is the packed layout the
	// kernel writes.
	if err := YCbCrAToRGBA(img.Pix, src); err != nil {
		return nil, err
	}
	return img, nil
}
