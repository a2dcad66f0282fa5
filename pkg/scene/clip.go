package scene

import (
	"errors"
	"slices"

	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/models"
)

// ErrSameSide is returned by IntersectLinePlane when both endpoints are on
// the same side of the plane.
var ErrSameSide = errors.New("scene: segment does not cross plane")

// IntersectLinePlane returns the point where the segment v0-v1 crosses
// plane. One endpoint must be inside (distance >= 0) and the other outside.
func IntersectLinePlane(v0, v1 math3d.Vec3, plane Plane) (math3d.Vec3, error) {
	d0, d1 := plane.SignedDistance(v0), plane.SignedDistance(v1)
	if (d0 >= 0) == (d1 >= 0) {
		return math3d.Vec3{}, ErrSameSide
	}
	return intersect(v0, v1, d0, d1), nil
}

// intersect interpolates between v0 and v1 given their signed distances,
// which must have opposite inside/outside classification.
func intersect(v0, v1 math3d.Vec3, d0, d1 float64) math3d.Vec3 {
	t := d0 / (d0 - d1)
	return v0.Add(v1.Sub(v0).Scale(t))
}

// ClipTriangle clips tri against plane. Intersection vertices are appended
// to vertices, and the grown slice is returned with the zero, one or two
// triangles that cover the inside part of tri. Output triangles keep the
// input color and winding.
func ClipTriangle(tri models.Triangle, vertices []math3d.Vec3, plane Plane) ([]models.Triangle, []math3d.Vec3) {
	var d [3]float64
	var in [3]bool
	inside := 0
	for k, idx := range tri.V {
		d[k] = plane.SignedDistance(vertices[idx])
		in[k] = d[k] >= 0
		if in[k] {
			inside++
		}
	}

	switch inside {
	case 3:
		return []models.Triangle{tri}, vertices
	case 0:
		return nil, vertices
	case 1:
		// A is the inside corner; B and C follow it in winding order.
		a := slices.Index(in[:], true)
		b, c := (a+1)%3, (a+2)%3
		iA, iB, iC := tri.V[a], tri.V[b], tri.V[c]

		p := intersect(vertices[iA], vertices[iB], d[a], d[b])
		q := intersect(vertices[iA], vertices[iC], d[a], d[c])
		iP, iQ := len(vertices), len(vertices)+1
		vertices = append(vertices, p, q)

		return []models.Triangle{
			{V: [3]int{iA, iP, iQ}, Color: tri.Color},
		}, vertices
	default:
		// C is the outside corner; A and B follow it in winding order.
		c := slices.Index(in[:], false)
		a, b := (c+1)%3, (c+2)%3
		iA, iB, iC := tri.V[a], tri.V[b], tri.V[c]

		p := intersect(vertices[iA], vertices[iC], d[a], d[c])
		q := intersect(vertices[iB], vertices[iC], d[b], d[c])
		iP, iQ := len(vertices), len(vertices)+1
		vertices = append(vertices, p, q)

		return []models.Triangle{
			{V: [3]int{iA, iB, iP}, Color: tri.Color},
			{V: [3]int{iP, iB, iQ}, Color: tri.Color},
		}, vertices
	}
}

// ClipInstanceAgainstPlane clips an instance against a world-space plane
// with a unit normal. An instance whose bounding sphere is entirely inside
// is returned unchanged, sharing its Model. One entirely outside is
// rejected (ok is false). Otherwise every triangle is clipped exactly into
// a new Model; the input Model is never modified. An instance without a
// Model is rejected.
func ClipInstanceAgainstPlane(inst Instance, plane Plane) (Instance, bool) {
	if inst.Model == nil {
		return Instance{}, false
	}
	d := plane.SignedDistance(inst.Sphere.Center)
	r := inst.Sphere.Radius
	if d > r {
		return inst, true
	}
	if d < -r {
		return Instance{}, false
	}
	return clipTriangles(inst, plane), true
}

// clipTriangles clips each triangle in model space. Pulling the plane
// through the instance transform keeps signed distances equal to their
// world-space values.
func clipTriangles(inst Instance, plane Plane) Instance {
	local := plane.Transform(inst.Transform)
	src := inst.Model

	vertices := slices.Clone(src.Vertices)
	triangles := make([]models.Triangle, 0, len(src.Triangles))
	for _, tri := range src.Triangles {
		var out []models.Triangle
		out, vertices = ClipTriangle(tri, vertices, local)
		triangles = append(triangles, out...)
	}

	inst.Model = &models.Model{
		Name:      src.Name,
		Vertices:  vertices,
		Triangles: triangles,
	}
	return inst
}

// ClipInstance clips an instance against each plane in turn. It stops at
// the first plane that rejects the instance. An instance without a Model
// is always rejected.
func ClipInstance(inst Instance, planes []Plane) (Instance, bool) {
	if inst.Model == nil {
		return Instance{}, false
	}
	current := inst
	for i, plane := range planes {
		next, ok := ClipInstanceAgainstPlane(current, plane)
		if !ok {
			Logger().Debug("instance rejected", "model", modelName(inst), "plane", i)
			return Instance{}, false
		}
		current = next
	}
	return current, true
}

// ClipScene clips every instance, dropping rejected ones and keeping the
// order of the rest.
func ClipScene(s Scene, planes []Plane) Scene {
	out := Scene{Instances: make([]Instance, 0, len(s.Instances))}
	for _, inst := range s.Instances {
		if clipped, ok := ClipInstance(inst, planes); ok {
			out.Instances = append(out.Instances, clipped)
		}
	}
	return out
}

func modelName(inst Instance) string {
	if inst.Model == nil {
		return ""
	}
	return inst.Model.Name
}
