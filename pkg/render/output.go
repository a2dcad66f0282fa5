package render

import (
	"bufio"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned for output paths with an unknown
// extension.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format selects an image encoding.
type Format int

const (
	FormatPPM  Format = iota // Plain-text PPM (P3)
	FormatPNG                // PNG
	FormatBMP                // Windows bitmap
	FormatTIFF               // TIFF
)

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm":
		return FormatPPM, nil
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)
	}
}

// WritePPM writes the color grid as a plain-text PPM: a header with the
// format tag, width, height and maximum channel value, then one line of
// RGB triples per row.
func (fb *Framebuffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height)
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			p := fb.Pixels[y*fb.Width+x]
			fmt.Fprintf(bw, "%d %d %d ", p.R, p.G, p.B)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Encode writes the framebuffer in the given format.
func (fb *Framebuffer) Encode(w io.Writer, f Format) error {
	switch f {
	case FormatPPM:
		return fb.WritePPM(w)
	case FormatPNG:
		return png.Encode(w, fb.ToImage())
	case FormatBMP:
		return bmp.Encode(w, fb.ToImage())
	case FormatTIFF:
		return tiff.Encode(w, fb.ToImage(), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("format %d: %w", f, ErrUnsupportedFormat)
	}
}

// Save writes the framebuffer to path, choosing the format by extension.
func (fb *Framebuffer) Save(path string) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := fb.Encode(f, format); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
