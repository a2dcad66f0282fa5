// Package render provides the depth-buffered software rasterizer for facet.
package render

import (
	"image"
	"image/color"
	"math"
)

// Framebuffer is a grid of colors with a matching depth buffer.
// Pixel (0, 0) is the top-left corner.
type Framebuffer struct {
	Width      int          // Width in pixels
	Height     int          // Height in pixels
	Pixels     []color.RGBA // Row-major pixel data
	Depth      []float64    // Row-major depth; +Inf where nothing is drawn
	Background color.RGBA   // Color restored by Clear
}

// NewFramebuffer creates a cleared framebuffer with the given dimensions.
func NewFramebuffer(width, height int, background color.RGBA) *Framebuffer {
	fb := &Framebuffer{
		Width:      width,
		Height:     height,
		Pixels:     make([]color.RGBA, width*height),
		Depth:      make([]float64, width*height),
		Background: background,
	}
	fb.Clear()
	return fb
}

// Clear resets every pixel to the background color and every depth to +Inf.
func (fb *Framebuffer) Clear() {
	n := len(fb.Pixels)
	if n == 0 {
		return
	}
	// Copy-doubling fill
	fb.Pixels[0] = fb.Background
	fb.Depth[0] = math.Inf(1)
	for i := 1; i < n; i *= 2 {
		copy(fb.Pixels[i:], fb.Pixels[:i])
		copy(fb.Depth[i:], fb.Depth[:i])
	}
}

// SetPixel writes c at (x, y) if z is nearer than the stored depth.
// Ties keep the existing pixel. Out-of-bounds writes are ignored.
func (fb *Framebuffer) SetPixel(x, y int, z float64, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	i := y*fb.Width + x
	if z < fb.Depth[i] {
		fb.Pixels[i] = c
		fb.Depth[i] = z
	}
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// GetDepth returns the depth at (x, y), or +Inf if out of bounds.
func (fb *Framebuffer) GetDepth(x, y int) float64 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return math.Inf(1)
	}
	return fb.Depth[y*fb.Width+x]
}

// ColorModel implements image.Image.
func (fb *Framebuffer) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

// At implements image.Image.
func (fb *Framebuffer) At(x, y int) color.Color {
	return fb.GetPixel(x, y)
}

// Set implements draw.Image. It overwrites the color without a depth test,
// for 2D overlays drawn after the 3D pass.
func (fb *Framebuffer) Set(x, y int, c color.Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = color.RGBAModel.Convert(c).(color.RGBA)
}

// DrawRect fills a rectangle as an overlay (no depth test).
func (fb *Framebuffer) DrawRect(x, y, w, h int, c color.RGBA) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			fb.Set(px, py, c)
		}
	}
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}
