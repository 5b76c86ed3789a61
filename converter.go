package ycbcr

import (
	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"

	"github.com/deepteams/ycbcr/internal/dsp"
)

// defaultMinChunk is the minimum number of pixels each worker should get
// before a conversion goes parallel. Below this, goroutine handoff costs
// more than the conversion itself.
const defaultMinChunk = 64 * 1024

// Options configures a Converter.
type Options struct {
	// Workers is the number of pool workers. Zero or negative means
	// GOMAXPROCS.
	Workers int

	// MinChunk is the minimum number of pixels per worker. Buffers that
	// would give a worker fewer pixels are converted sequentially.
	// Zero or negative selects a built-in default.
	MinChunk int
}

// DefaultOptions returns the default Converter configuration.
func DefaultOptions() *Options {
	return &Options{
		Workers:  0,
		MinChunk: defaultMinChunk,
	}
}

// Converter performs batch conversions, partitioning large buffers across
// a persistent worker pool. Per-pixel independence of the transforms means
// the output is byte-identical to the sequential path for any worker count.
//
// A Converter is safe for concurrent use. The zero value is not usable;
// construct with NewConverter.
type Converter struct {
	pool     *workerpool.Pool
	minChunk int
}

// NewConverter creates a Converter. opts may be nil for defaults.
func NewConverter(opts *Options) *Converter {
	if opts == nil {
		opts = DefaultOptions()
	}
	minChunk := opts.MinChunk
	if minChunk <= 0 {
		minChunk = defaultMinChunk
	}
	return &Converter{
		pool:     workerpool.New(opts.Workers),
		minChunk: minChunk,
	}
}

// Close releases the pool workers. Conversions after Close still work,
// falling back to the sequential path. Close is safe to call more than
// once.
func (c *Converter) Close() {
	c.pool.Close()
}

// RGBAToYCbCrA is the parallel counterpart of the package-level
// RGBAToYCbCrA. Same contract, same output.
func (c *Converter) RGBAToYCbCrA(dst, src []byte) error {
	return c.convert(dst, src, dsp.ForwardRange)
}

// YCbCrAToRGBA is the parallel counterpart of the package-level
// YCbCrAToRGBA. Same contract, same output.
func (c *Converter) YCbCrAToRGBA(dst, src []byte) error {
	return c.convert(dst, src, dsp.InverseRange)
}

func (c *Converter) convert(dst, src []byte, kernel func(dst, src []byte, start, end int)) error {
	n, err := checkBuffers(dst, src)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	// Stay sequential when splitting would hand workers chunks too small
	// to pay for the handoff.
	if n/c.pool.NumWorkers() < c.minChunk {
		kernel(dst, src, 0, n)
		return nil
	}
	c.pool.ParallelFor(n, func(start, end int) {
		kernel(dst, src, start, end)
	})
	return nil
}
