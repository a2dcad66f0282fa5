// Package scene clips instanced models against the view volume and drives
// them through the rasterizer.
package scene

import (
	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/models"
)

// Instance places a shared Model in the world.
type Instance struct {
	Model     *models.Model
	Transform math3d.Mat4           // Model to world
	Sphere    models.BoundingSphere // World space
}

// NewInstance places model with transform and computes its bounding sphere.
func NewInstance(model *models.Model, transform math3d.Mat4) Instance {
	return Instance{
		Model:     model,
		Transform: transform,
		Sphere:    model.BoundingSphere(transform),
	}
}

// TriangleCount returns the number of triangles in the instance's model.
func (i Instance) TriangleCount() int {
	if i.Model == nil {
		return 0
	}
	return i.Model.TriangleCount()
}

// Scene is an ordered list of instances.
type Scene struct {
	Instances []Instance
}

// Add appends an instance of model placed by transform.
func (s *Scene) Add(model *models.Model, transform math3d.Mat4) {
	s.Instances = append(s.Instances, NewInstance(model, transform))
}

// TriangleCount sums the triangles of every instance.
func (s Scene) TriangleCount() int {
	n := 0
	for _, inst := range s.Instances {
		n += inst.TriangleCount()
	}
	return n
}

// Camera is a viewpoint looking down +Z.
type Camera struct {
	Position math3d.Vec3

	// Orientation is reserved. It is carried with the camera but not applied.
	Orientation math3d.Vec3
}

// Matrix returns the world-to-camera transform.
func (c Camera) Matrix() math3d.Mat4 {
	return math3d.CameraMatrix(c.Position)
}
