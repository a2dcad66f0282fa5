// Package anim moves cameras and instances across a sequence of rendered
// frames.
package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/facet/pkg/math3d"
)

// Dolly glides a camera position toward a target using one spring per axis.
type Dolly struct {
	Position math3d.Vec3
	Target   math3d.Vec3

	vel    math3d.Vec3 // spring velocity per axis
	spring harmonica.Spring
}

// NewDolly creates a dolly at start heading for target, stepped once per
// frame at fps.
func NewDolly(fps int, start, target math3d.Vec3) *Dolly {
	return &Dolly{
		Position: start,
		Target:   target,
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update advances one frame and returns the new position.
func (d *Dolly) Update() math3d.Vec3 {
	d.Position.X, d.vel.X = d.spring.Update(d.Position.X, d.vel.X, d.Target.X)
	d.Position.Y, d.vel.Y = d.spring.Update(d.Position.Y, d.vel.Y, d.Target.Y)
	d.Position.Z, d.vel.Z = d.spring.Update(d.Position.Z, d.vel.Z, d.Target.Z)
	return d.Position
}

// Settled reports whether the dolly is within tolerance of its target and
// nearly at rest.
func (d *Dolly) Settled(tolerance float64) bool {
	return d.Position.Distance(d.Target) <= tolerance &&
		math.Abs(d.vel.X)+math.Abs(d.vel.Y)+math.Abs(d.vel.Z) <= tolerance
}
