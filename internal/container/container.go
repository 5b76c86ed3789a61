// Package container reads and writes the YCCA raw frame format, the
// on-disk envelope for packed 4-channel pixel buffers used by the gycc
// tool. The format is a fixed 16-byte little-endian header followed by
// width*height*4 payload bytes:
//
//	offset  size  field
//	0       4     magic "YCCA"
//	4       1     version (currently 1)
//	5       1     color tag: 0 = RGBA payload, 1 = YCbCrA payload
//	6       2     reserved, must be zero
//	8       4     width in pixels
//	12      4     height in pixels
package container

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Header layout constants.
const (
	HeaderSize = 16
	Version    = 1
)

// Magic identifies a YCCA frame.
var Magic = [4]byte{'Y', 'C', 'C', 'A'}

// Color tags for the payload color space.
const (
	ColorRGBA   = 0
	ColorYCbCrA = 1
)

// Limits on frame geometry. MaxDimension bounds each axis; MaxFrameBytes
// bounds the payload so a hostile header cannot force a huge allocation.
const (
	MaxDimension  = 1 << 16 // 65536 pixels per axis
	MaxFrameBytes = 1 << 30 // 1 GiB payload
)

// Common errors.
var (
	ErrBadMagic      = errors.New("container: bad magic")
	ErrVersion       = errors.New("container: unsupported version")
	ErrBadColorTag   = errors.New("container: bad color tag")
	ErrZeroDimension = errors.New("container: zero width or height")
	ErrTooLarge      = errors.New("container: frame too large")
	ErrTruncated     = errors.New("container: truncated data")
	ErrPayloadSize   = errors.New("container: payload size mismatch")
)

// Header describes one YCCA frame.
type Header struct {
	Color  uint8 // ColorRGBA or ColorYCbCrA
	Width  uint32
	Height uint32
}

// PixelBytes returns the payload size in bytes (width*height*4), or an
// error when the geometry is invalid or exceeds the format limits.
// The size computation uses uint64 arithmetic so oversized dimensions
// are rejected rather than wrapped.
func (h *Header) PixelBytes() (int, error) {
	if h.Width == 0 || h.Height == 0 {
		return 0, ErrZeroDimension
	}
	if h.Width > MaxDimension || h.Height > MaxDimension {
		return 0, ErrTooLarge
	}
	n := uint64(h.Width) * uint64(h.Height) * 4
	if n > MaxFrameBytes {
		return 0, ErrTooLarge
	}
	return int(n), nil
}

// validate checks the fields that ReadHeader and WriteHeader share.
func (h *Header) validate() error {
	if h.Color != ColorRGBA && h.Color != ColorYCbCrA {
		return ErrBadColorTag
	}
	_, err := h.PixelBytes()
	return err
}

// ReadHeader reads and validates a YCCA header from r.
func ReadHeader(r io.Reader) (*Header, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrTruncated
		}
		return nil, fmt.Errorf("container: reading header: %w", err)
	}
	if buf[0] != Magic[0] || buf[1] != Magic[1] || buf[2] != Magic[2] || buf[3] != Magic[3] {
		return nil, ErrBadMagic
	}
	if buf[4] != Version {
		return nil, ErrVersion
	}
	h := &Header{
		Color:  buf[5],
		Width:  binary.LittleEndian.Uint32(buf[8:12]),
		Height: binary.LittleEndian.Uint32(buf[12:16]),
	}
	if err := h.validate(); err != nil {
		return nil, err
	}
	return h, nil
}

// WriteHeader validates h and writes it to w.
func WriteHeader(w io.Writer, h *Header) error {
	if err := h.validate(); err != nil {
		return err
	}
	var buf [HeaderSize]byte
	copy(buf[0:4], Magic[:])
	buf[4] = Version
	buf[5] = h.Color
	binary.LittleEndian.PutUint32(buf[8:12], h.Width)
	binary.LittleEndian.PutUint32(buf[12:16], h.Height)
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("container: writing header: %w", err)
	}
	return nil
}

// ReadFrame reads a complete frame (header plus payload) from r.
// The payload slice is freshly allocated and owned by the caller.
// The payload is read incrementally so a hostile header claiming a huge
// frame over truncated data fails without the full allocation.
func ReadFrame(r io.Reader) (*Header, []byte, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, nil, err
	}
	n, err := h.PixelBytes()
	if err != nil {
		return nil, nil, err
	}
	var buf bytes.Buffer
	if _, err := io.CopyN(&buf, r, int64(n)); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, nil, ErrTruncated
		}
		return nil, nil, fmt.Errorf("container: reading payload: %w", err)
	}
	return h, buf.Bytes(), nil
}

// WriteFrame writes a complete frame to w. len(payload) must equal
// h.PixelBytes().
func WriteFrame(w io.Writer, h *Header, payload []byte) error {
	n, err := h.PixelBytes()
	if err != nil {
		return err
	}
	if len(payload) != n {
		return ErrPayloadSize
	}
	if err := WriteHeader(w, h); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("container: writing payload: %w", err)
	}
	return nil
}
