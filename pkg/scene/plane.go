package scene

import (
	"github.com/taigrr/facet/pkg/math3d"
)

// Plane is the half-space Normal·p + D >= 0. Points with a non-negative
// signed distance are inside.
type Plane struct {
	Normal math3d.Vec3
	D      float64
}

// Normalize scales the plane equation so the normal has unit length.
// The inside half-space is unchanged.
func (p *Plane) Normalize() {
	l := p.Normal.Len()
	if l == 0 {
		return
	}
	p.Normal = p.Normal.Scale(1.0 / l)
	p.D /= l
}

// SignedDistance returns Normal·point + D. For a unit normal this is the
// Euclidean distance, positive on the inside.
func (p Plane) SignedDistance(point math3d.Vec3) float64 {
	return p.Normal.Dot(point) + p.D
}

// Transform re-expresses a plane through the point transform m: for every
// point x, p.Transform(m).SignedDistance(x) equals
// p.SignedDistance(m.TransformPoint(x)) for affine m.
// The result is not normalized.
func (p Plane) Transform(m math3d.Mat4) Plane {
	q := m.Transpose().MulVec4(math3d.V4FromV3(p.Normal, p.D))
	return Plane{Normal: q.Vec3(), D: q.W}
}

// Frustum plane indices into FrustumPlanes.
const (
	FrustumNear = iota
	FrustumFar
	FrustumLeft
	FrustumRight
	FrustumBottom
	FrustumTop
)

// Frustum bounds in camera space.
const (
	NearDistance = 1.0
	FarDistance  = 10.0
	SideDistance = 5.0
)

// FrustumPlanes returns the camera-space clipping volume: NearDistance <= z
// <= FarDistance and |x|, |y| <= SideDistance. Keeping z >= 1 guarantees
// every surviving vertex can be projected.
func FrustumPlanes() []Plane {
	return []Plane{
		FrustumNear:   {Normal: math3d.V3(0, 0, 1), D: -NearDistance},
		FrustumFar:    {Normal: math3d.V3(0, 0, -1), D: FarDistance},
		FrustumLeft:   {Normal: math3d.V3(1, 0, 0), D: SideDistance},
		FrustumRight:  {Normal: math3d.V3(-1, 0, 0), D: SideDistance},
		FrustumBottom: {Normal: math3d.V3(0, 1, 0), D: SideDistance},
		FrustumTop:    {Normal: math3d.V3(0, -1, 0), D: SideDistance},
	}
}

// WorldPlanes moves camera-space planes into world space for a camera with
// the given world-to-camera matrix. The input is not modified.
func WorldPlanes(planes []Plane, camera math3d.Mat4) []Plane {
	world := make([]Plane, len(planes))
	for i, p := range planes {
		world[i] = p.Transform(camera)
		world[i].Normalize()
	}
	return world
}
