package render

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const labelPadding = 2

// DrawLabel draws text over the image with its top-left corner at (x, y),
// on a filled background box. Labels ignore the depth buffer.
func (fb *Framebuffer) DrawLabel(x, y int, text string, fg, bg Color) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()

	fb.DrawRect(x, y, width+2*labelPadding, face.Height+2*labelPadding, bg)

	d := font.Drawer{
		Dst:  fb,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(x+labelPadding, y+labelPadding+face.Ascent),
	}
	d.DrawString(text)
}
