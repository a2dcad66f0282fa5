// Package models provides the indexed triangle meshes rendered by facet.
package models

import (
	"errors"
	"fmt"

	"github.com/taigrr/facet/pkg/math3d"
)

// ErrBadIndex is returned by Validate when a triangle references a vertex
// that does not exist.
var ErrBadIndex = errors.New("triangle index out of range")

// Triangle references three vertices of its Model by index.
// The index order defines the winding; it is not used for culling.
type Triangle struct {
	V     [3]int // Indices into Model.Vertices
	Color int    // Palette identifier
}

// Model is an indexed triangle mesh in local (object) space.
// A Model is shared read-only by every instance that places it; clipping
// builds new Models rather than modifying one.
type Model struct {
	Name      string
	Vertices  []math3d.Vec3
	Triangles []Triangle
}

// NewModel creates an empty model.
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Vertices:  make([]math3d.Vec3, 0),
		Triangles: make([]Triangle, 0),
	}
}

// TriangleCount returns the number of triangles.
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// VertexCount returns the number of vertices.
func (m *Model) VertexCount() int {
	return len(m.Vertices)
}

// Validate checks that every triangle index refers to a vertex.
func (m *Model) Validate() error {
	for i, tri := range m.Triangles {
		for _, idx := range tri.V {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("model %q triangle %d index %d: %w", m.Name, i, idx, ErrBadIndex)
			}
		}
	}
	return nil
}

// Clone creates a deep copy of the model.
func (m *Model) Clone() *Model {
	clone := &Model{
		Name:      m.Name,
		Vertices:  make([]math3d.Vec3, len(m.Vertices)),
		Triangles: make([]Triangle, len(m.Triangles)),
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Triangles, m.Triangles)
	return clone
}

// Bounds returns the axis-aligned bounds of the model after transform.
// An empty model reports a zero box.
func (m *Model) Bounds(transform math3d.Mat4) (lo, hi math3d.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}

	lo = transform.TransformPoint(m.Vertices[0])
	hi = lo
	for _, v := range m.Vertices[1:] {
		p := transform.TransformPoint(v)
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return lo, hi
}

// BoundingSphere approximates a model's extent after its instance
// transform. No transformed vertex lies farther than Radius from Center.
type BoundingSphere struct {
	Center math3d.Vec3
	Radius float64
}

// Contains reports whether p lies within the sphere.
func (s BoundingSphere) Contains(p math3d.Vec3) bool {
	return s.Center.Distance(p) <= s.Radius
}

// BoundingSphere computes a sphere around the transformed vertices, centered
// on their bounding box.
func (m *Model) BoundingSphere(transform math3d.Mat4) BoundingSphere {
	lo, hi := m.Bounds(transform)
	center := lo.Add(hi).Scale(0.5)

	var radius float64
	for _, v := range m.Vertices {
		if d := center.Distance(transform.TransformPoint(v)); d > radius {
			radius = d
		}
	}
	return BoundingSphere{Center: center, Radius: radius}
}
