package scene

import (
	"fmt"

	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/render"
)

// Mode selects how triangles are rasterized.
type Mode int

const (
	Filled Mode = iota
	Wireframe
)

// FrameStats counts the work done by one Render call.
type FrameStats struct {
	Instances int // Instances in the scene
	Rejected  int // Instances removed by clipping
	Clipped   int // Instances whose geometry was cut by a plane
	Triangles int // Triangles sent to the rasterizer
}

// String formats the stats for an overlay label.
func (s FrameStats) String() string {
	return fmt.Sprintf("inst %d  rej %d  clip %d  tris %d", s.Instances, s.Rejected, s.Clipped, s.Triangles)
}

// Renderer draws scenes into a framebuffer.
type Renderer struct {
	fb *render.Framebuffer

	// Mode selects filled or wireframe triangles.
	Mode Mode

	// Planes are the camera-space clipping planes. FrustumPlanes is used
	// when nil.
	Planes []Plane
}

// NewRenderer creates a renderer that draws into fb.
func NewRenderer(fb *render.Framebuffer) *Renderer {
	return &Renderer{fb: fb}
}

// Framebuffer returns the render target.
func (r *Renderer) Framebuffer() *render.Framebuffer {
	return r.fb
}

// Render clears the framebuffer and draws every visible part of s as seen
// from camera.
func (r *Renderer) Render(s Scene, camera Camera) FrameStats {
	r.fb.Clear()

	planes := r.Planes
	if planes == nil {
		planes = FrustumPlanes()
	}
	view := camera.Matrix()
	visible := ClipScene(s, WorldPlanes(planes, view))

	stats := FrameStats{
		Instances: len(s.Instances),
		Rejected:  len(s.Instances) - len(visible.Instances),
	}
	for _, inst := range visible.Instances {
		if !sharesModel(s, inst) {
			stats.Clipped++
		}
		stats.Triangles += r.renderInstance(inst, view)
	}

	Logger().Debug("frame rendered",
		"instances", stats.Instances,
		"rejected", stats.Rejected,
		"clipped", stats.Clipped,
		"triangles", stats.Triangles,
	)
	return stats
}

// renderInstance transforms and projects every vertex of inst once, then
// rasterizes its triangles. It returns the number of triangles drawn.
func (r *Renderer) renderInstance(inst Instance, view math3d.Mat4) int {
	m := view.Mul(inst.Transform)
	width, height := r.fb.Width, r.fb.Height

	verts := inst.Model.Vertices
	depth := make([]float64, len(verts))
	projected := make([]math3d.Vec2, len(verts))
	for i, v := range verts {
		cv := m.TransformPoint(v)
		depth[i] = cv.Z
		projected[i] = math3d.Project(cv, width, height)
	}

	for _, tri := range inst.Model.Triangles {
		a, b, c := tri.V[0], tri.V[1], tri.V[2]
		col := render.PaletteColor(tri.Color)
		if r.Mode == Wireframe {
			r.fb.DrawTriangle(projected[a], depth[a], projected[b], depth[b], projected[c], depth[c], col)
		} else {
			r.fb.DrawFilledTriangle(projected[a], depth[a], projected[b], depth[b], projected[c], depth[c], col)
		}
	}
	return len(inst.Model.Triangles)
}

// sharesModel reports whether inst still uses a Model from s, meaning no
// plane cut it.
func sharesModel(s Scene, inst Instance) bool {
	for _, orig := range s.Instances {
		if orig.Model == inst.Model {
			return true
		}
	}
	return false
}
