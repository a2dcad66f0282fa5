package render

import (
	"github.com/taigrr/facet/pkg/math3d"
)

// Interpolate returns the values of a linear function d(i) sampled at every
// integer from i0 to i1 inclusive, where d(i0) = d0 and d(i1) = d1.
// The result has |i1-i0|+1 elements; i0 == i1 yields [d0].
func Interpolate(i0 int, d0 float64, i1 int, d1 float64) []float64 {
	if i0 == i1 {
		return []float64{d0}
	}

	n := abs(i1-i0) + 1
	step := (d1 - d0) / float64(n-1)
	values := make([]float64, n)
	for k := range values {
		values[k] = d0 + step*float64(k)
	}
	return values
}

// scanVertex is a triangle corner snapped to the pixel grid.
type scanVertex struct {
	x, y int
	z    float64
}

// DrawFilledTriangle fills a triangle one scanline at a time, interpolating
// depth along the edges and then across each row.
func (fb *Framebuffer) DrawFilledTriangle(p0 math3d.Vec2, z0 float64, p1 math3d.Vec2, z1 float64, p2 math3d.Vec2, z2 float64, c Color) {
	v0 := scanVertex{int(p0.X), int(p0.Y), z0}
	v1 := scanVertex{int(p1.X), int(p1.Y), z1}
	v2 := scanVertex{int(p2.X), int(p2.Y), z2}

	// Sort so that v0.y <= v1.y <= v2.y
	if v1.y < v0.y {
		v0, v1 = v1, v0
	}
	if v2.y < v0.y {
		v0, v2 = v2, v0
	}
	if v2.y < v1.y {
		v1, v2 = v2, v1
	}

	x01 := Interpolate(v0.y, float64(v0.x), v1.y, float64(v1.x))
	z01 := Interpolate(v0.y, v0.z, v1.y, v1.z)
	x12 := Interpolate(v1.y, float64(v1.x), v2.y, float64(v2.x))
	z12 := Interpolate(v1.y, v1.z, v2.y, v2.z)
	x02 := Interpolate(v0.y, float64(v0.x), v2.y, float64(v2.x))
	z02 := Interpolate(v0.y, v0.z, v2.y, v2.z)

	// The short edges share v1; drop its first copy.
	x012 := append(x01[:len(x01)-1], x12...)
	z012 := append(z01[:len(z01)-1], z12...)

	// Whichever edge is further left at the middle row is left everywhere.
	xl, xr, zl, zr := x02, x012, z02, z012
	if m := len(x012) / 2; x02[m] >= x012[m] {
		xl, xr, zl, zr = x012, x02, z012, z02
	}

	for y := max(v0.y, 0); y <= min(v2.y, fb.Height-1); y++ {
		i := y - v0.y
		left, right := int(xl[i]), int(xr[i])
		zs := Interpolate(left, zl[i], right, zr[i])
		for x := max(left, 0); x <= min(right, fb.Width-1); x++ {
			fb.SetPixel(x, y, zs[x-left], c)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
