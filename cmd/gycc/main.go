// Command gycc converts images between RGB and JPEG/JFIF YCbCr from the
// command line, storing converted frames in the raw YCCA format.
//
// Usage:
//
//	gycc fwd [options] <input>         PNG/JPEG/GIF → YCCA frame (use "-" for stdin)
//	gycc inv [options] <input.ycca>    YCCA frame → PNG/JPEG
//	gycc info <input.ycca>             Display YCCA header fields
//	gycc roundtrip [options] <input>   Measure forward+inverse conversion error
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/deepteams/ycbcr"
	"github.com/deepteams/ycbcr/internal/container"
	"github.com/deepteams/ycbcr/internal/pool"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "fwd":
		err = runFwd(os.Args[2:])
	case "inv":
		err = runInv(os.Args[2:])
	case "info":
		err = runInfo(os.Args[2:])
	case "roundtrip":
		err = runRoundtrip(os.Args[2:])
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "gycc: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "gycc: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  gycc fwd [options] <input>         Convert PNG/JPEG/GIF to a YCCA frame
  gycc inv [options] <input.ycca>    Convert a YCCA frame back to PNG or JPEG
  gycc info <input.ycca>             Display YCCA header fields
  gycc roundtrip [options] <input>   Measure forward+inverse conversion error

Use "-" as input to read from stdin, "-o -" to write to stdout.

Run "gycc <command> -h" for command-specific options.
`)
}

// openInput returns an io.ReadCloser for the given path.
// If path is "-", stdin is returned (caller should not close).
func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// openOutput returns an io.WriteCloser for the given path.
// If path is "-", stdout is returned (caller should not close).
func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// newConverter builds a Converter for the given -workers flag value.
// workers == 1 requests the plain sequential path.
func newConverter(workers int) *ycbcr.Converter {
	c := ycbcr.NewConverter(&ycbcr.Options{Workers: workers})
	if workers == 1 {
		c.Close() // a closed Converter converts sequentially
	}
	return c
}

// --- fwd ---

func runFwd(args []string) error {
	fs := flag.NewFlagSet("fwd", flag.ContinueOnError)
	output := fs.String("o", "", `output path (default: <input>.ycca, "-" for stdout)`)
	workers := fs.Int("workers", 0, "conversion workers (0=all CPUs, 1=sequential)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("fwd: missing input file\nUsage: gycc fwd [options] <input>")
	}
	inputPath := fs.Arg(0)

	outputPath := *output
	if outputPath == "" {
		if inputPath == "-" {
			outputPath = "-"
		} else {
			outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".ycca"
		}
	}

	in, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	img, _, err := image.Decode(in)
	if err != nil {
		return fmt.Errorf("fwd: decoding %s: %w", inputPath, err)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return fmt.Errorf("fwd: empty image %s", inputPath)
	}

	buf := pool.Get(w * h * 4)
	defer pool.Put(buf)

	// Pack to RGBA first; then the conversion itself can go parallel.
	rgba := toNRGBA(img)
	for y := 0; y < h; y++ {
		copy(buf[y*w*4:(y+1)*w*4], rgba.Pix[y*rgba.Stride:y*rgba.Stride+w*4])
	}
	c := newConverter(*workers)
	defer c.Close()
	if err := c.RGBAToYCbCrA(buf, buf); err != nil {
		return fmt.Errorf("fwd: %w", err)
	}

	out, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	hdr := &container.Header{
		Color:  container.ColorYCbCrA,
		Width:  uint32(w),
		Height: uint32(h),
	}
	if err := container.WriteFrame(out, hdr, buf); err != nil {
		return fmt.Errorf("fwd: %w", err)
	}
	return nil
}

// toNRGBA returns img as *image.NRGBA with a zero-origin rect.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

// --- inv ---

func runInv(args []string) error {
	fs := flag.NewFlagSet("inv", flag.ContinueOnError)
	output := fs.String("o", "", `output path (default: <input>.png, "-" for stdout)`)
	format := fs.String("format", "", "output format: png/jpeg (default: by -o extension)")
	quality := fs.Int("q", 90, "JPEG quality 1-100")
	workers := fs.Int("workers", 0, "conversion workers (0=all CPUs, 1=sequential)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("inv: missing input file\nUsage: gycc inv [options] <input.ycca>")
	}
	inputPath := fs.Arg(0)

	outputPath := *output
	if outputPath == "" {
		if inputPath == "-" {
			outputPath = "-"
		} else {
			outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".png"
		}
	}

	in, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	hdr, payload, err := container.ReadFrame(in)
	if err != nil {
		return fmt.Errorf("inv: %w", err)
	}
	if hdr.Color != container.ColorYCbCrA {
		return fmt.Errorf("inv: frame holds RGBA payload, nothing to invert")
	}
	w, h := int(hdr.Width), int(hdr.Height)

	c := newConverter(*workers)
	defer c.Close()
	if err := c.YCbCrAToRGBA(payload, payload); err != nil {
		return fmt.Errorf("inv: %w", err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, payload)

	out, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	switch detectOutputFormat(*format, outputPath) {
	case "jpeg":
		return jpeg.Encode(out, img, &jpeg.Options{Quality: *quality})
	default:
		return png.Encode(out, img)
	}
}

// detectOutputFormat picks the output codec from the -format flag or,
// failing that, the output file extension.
func detectOutputFormat(fmtFlag, outputPath string) string {
	if fmtFlag != "" {
		return fmtFlag
	}
	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".jpg", ".jpeg":
		return "jpeg"
	default:
		return "png"
	}
}

// --- info ---

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("info: missing input file\nUsage: gycc info <input.ycca>")
	}
	inputPath := fs.Arg(0)

	in, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	hdr, err := container.ReadHeader(in)
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}
	n, err := hdr.PixelBytes()
	if err != nil {
		return fmt.Errorf("info: %w", err)
	}

	color := "RGBA"
	if hdr.Color == container.ColorYCbCrA {
		color = "YCbCrA"
	}
	fmt.Printf("File:       %s\n", inputPath)
	fmt.Printf("Color:      %s\n", color)
	fmt.Printf("Dimensions: %dx%d\n", hdr.Width, hdr.Height)
	fmt.Printf("Payload:    %d bytes\n", n)
	return nil
}

// --- roundtrip ---

func runRoundtrip(args []string) error {
	fs := flag.NewFlagSet("roundtrip", flag.ContinueOnError)
	workers := fs.Int("workers", 0, "conversion workers (0=all CPUs, 1=sequential)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("roundtrip: missing input file\nUsage: gycc roundtrip [options] <input>")
	}
	inputPath := fs.Arg(0)

	in, err := openInput(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	img, _, err := image.Decode(in)
	if err != nil {
		return fmt.Errorf("roundtrip: decoding %s: %w", inputPath, err)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return fmt.Errorf("roundtrip: empty image %s", inputPath)
	}

	rgba := toNRGBA(img)
	src := pool.Get(w * h * 4)
	defer pool.Put(src)
	for y := 0; y < h; y++ {
		copy(src[y*w*4:(y+1)*w*4], rgba.Pix[y*rgba.Stride:y*rgba.Stride+w*4])
	}

	work := pool.Get(len(src))
	defer pool.Put(work)

	c := newConverter(*workers)
	defer c.Close()
	if err := c.RGBAToYCbCrA(work, src); err != nil {
		return fmt.Errorf("roundtrip: %w", err)
	}
	if err := c.YCbCrAToRGBA(work, work); err != nil {
		return fmt.Errorf("roundtrip: %w", err)
	}

	maxErr, psnr := compareRGB(src, work)
	fmt.Printf("File:       %s\n", inputPath)
	fmt.Printf("Dimensions: %dx%d\n", w, h)
	fmt.Printf("Max error:  %d\n", maxErr)
	if math.IsInf(psnr, 1) {
		fmt.Printf("PSNR:       inf\n")
	} else {
		fmt.Printf("PSNR:       %.2f dB\n", psnr)
	}
	return nil
}

// compareRGB returns the maximum per-channel absolute error and the PSNR
// over the RGB channels of two packed buffers. Alpha bytes are skipped.
func compareRGB(a, b []byte) (int, float64) {
	maxErr := 0
	var sumSq float64
	samples := 0
	for i := 0; i+3 < len(a); i += 4 {
		for c := 0; c < 3; c++ {
			d := int(a[i+c]) - int(b[i+c])
			if d < 0 {
				d = -d
			}
			if d > maxErr {
				maxErr = d
			}
			sumSq += float64(d) * float64(d)
			samples++
		}
	}
	if samples == 0 || sumSq == 0 {
		return maxErr, math.Inf(1)
	}
	mse := sumSq / float64(samples)
	return maxErr, 10 * math.Log10(255*255/mse)
}
