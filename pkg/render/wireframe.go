package render

import (
	"github.com/taigrr/facet/pkg/math3d"
)

// DrawLine draws a depth-tested line from p0 to p1. It steps along
// whichever axis changes more so the line has no gaps, interpolating the
// other coordinate and depth.
func (fb *Framebuffer) DrawLine(p0 math3d.Vec2, z0 float64, p1 math3d.Vec2, z1 float64, c Color) {
	x0, y0 := int(p0.X), int(p0.Y)
	x1, y1 := int(p1.X), int(p1.Y)

	if abs(x1-x0) > abs(y1-y0) {
		if x0 > x1 {
			x0, x1 = x1, x0
			y0, y1 = y1, y0
			z0, z1 = z1, z0
		}
		ys := Interpolate(x0, float64(y0), x1, float64(y1))
		zs := Interpolate(x0, z0, x1, z1)
		for x := max(x0, 0); x <= min(x1, fb.Width-1); x++ {
			fb.SetPixel(x, int(ys[x-x0]), zs[x-x0], c)
		}
		return
	}

	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
		z0, z1 = z1, z0
	}
	xs := Interpolate(y0, float64(x0), y1, float64(x1))
	zs := Interpolate(y0, z0, y1, z1)
	for y := max(y0, 0); y <= min(y1, fb.Height-1); y++ {
		fb.SetPixel(int(xs[y-y0]), y, zs[y-y0], c)
	}
}

// DrawTriangle draws the outline of a triangle.
func (fb *Framebuffer) DrawTriangle(p0 math3d.Vec2, z0 float64, p1 math3d.Vec2, z1 float64, p2 math3d.Vec2, z2 float64, c Color) {
	fb.DrawLine(p0, z0, p1, z1, c)
	fb.DrawLine(p1, z1, p2, z2, c)
	fb.DrawLine(p2, z2, p0, z0, c)
}
