package anim

import (
	"math"

	"github.com/taigrr/facet/pkg/math3d"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Turntable spins an instance about its Y axis over a fixed duration.
type Turntable struct {
	Angle float64 // Current angle in radians
	Done  bool

	tween *gween.Tween
}

// NewTurntable creates a spin of the given number of full turns lasting
// duration seconds. A nil easing function uses ease.InOutSine.
func NewTurntable(turns float64, duration float32, fn ease.TweenFunc) *Turntable {
	if fn == nil {
		fn = ease.InOutSine
	}
	return &Turntable{
		tween: gween.New(0, float32(turns*2*math.Pi), duration, fn),
	}
}

// Update advances the spin by dt seconds and returns the new angle.
func (t *Turntable) Update(dt float32) float64 {
	angle, finished := t.tween.Update(dt)
	t.Angle = float64(angle)
	t.Done = finished
	return t.Angle
}

// Reset rewinds the spin to its start.
func (t *Turntable) Reset() {
	t.tween.Reset()
	t.Angle = 0
	t.Done = false
}

// Apply returns base with the current rotation applied in model space.
func (t *Turntable) Apply(base math3d.Mat4) math3d.Mat4 {
	return base.Mul(math3d.RotateY(t.Angle))
}
