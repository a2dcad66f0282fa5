// facet - Software Rasterizer
// Renders a scene of cubes, plus an optional glTF model, to an image file.
//
// The default scene is three cubes in front of a camera at the origin:
// one centered, one shifted left and one scaled down on the right.
// Output format is chosen by extension (.ppm, .png, .bmp, .tif).
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/taigrr/facet/pkg/anim"
	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/models"
	"github.com/taigrr/facet/pkg/render"
	"github.com/taigrr/facet/pkg/scene"
)

var (
	outPath   = flag.String("o", "output.ppm", "Output image path (.ppm, .png, .bmp, .tif)")
	width     = flag.Int("width", 900, "Image width in pixels")
	height    = flag.Int("height", 600, "Image height in pixels")
	bgColor   = flag.String("bg", "50,50,50", "Background color (R,G,B)")
	wireframe = flag.Bool("wireframe", false, "Draw triangle outlines instead of filled triangles")
	modelPath = flag.String("model", "", "Optional glTF/GLB model to add to the scene")
	frames    = flag.Int("frames", 1, "Number of frames to render; more than one writes a numbered sequence")
	targetFPS = flag.Int("fps", 24, "Frame rate of the sequence")
	label     = flag.Bool("label", false, "Overlay frame statistics")
	preview   = flag.Bool("preview", false, "Print a preview of the last frame to the terminal")
	cols      = flag.Int("cols", 80, "Preview width in terminal columns")
	verbose   = flag.Bool("v", false, "Debug logging")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "facet - Software Rasterizer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: facet [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	scene.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("invalid size %dx%d", *width, *height)
	}
	if *frames < 1 {
		return fmt.Errorf("invalid frame count %d", *frames)
	}
	if _, err := render.FormatFromPath(*outPath); err != nil {
		return err
	}

	bg, err := parseColor(*bgColor)
	if err != nil {
		return fmt.Errorf("parse -bg: %w", err)
	}

	s, spin, err := buildScene(logger)
	if err != nil {
		return err
	}

	fb := render.NewFramebuffer(*width, *height, bg)
	r := scene.NewRenderer(fb)
	if *wireframe {
		r.Mode = scene.Wireframe
	}

	camera := scene.Camera{}
	seq := newAnimation(*frames, *targetFPS)

	for i := range *frames {
		if err := ctx.Err(); err != nil {
			return err
		}

		if *frames > 1 {
			camera.Position = seq.step(s, spin)
		}
		stats := r.Render(*s, camera)
		if *label {
			fb.DrawLabel(4, 4, stats.String(), render.ColorWhite, render.ColorBlack)
		}

		path := framePath(*outPath, i, *frames)
		if err := fb.Save(path); err != nil {
			return fmt.Errorf("save frame %d: %w", i, err)
		}
		logger.Info("frame written", "path", path, "triangles", stats.Triangles, "rejected", stats.Rejected)
	}

	if *preview {
		pw, ph := previewSize(*cols, *width, *height)
		pfb := render.NewFramebuffer(pw, ph, bg)
		pr := scene.NewRenderer(pfb)
		pr.Mode = r.Mode
		pr.Render(*s, camera)
		fmt.Println(render.TerminalString(pfb))
	}
	return nil
}

// buildScene places the demo cubes and the optional model. It returns the
// index of the instance spun during animation.
func buildScene(logger *slog.Logger) (*scene.Scene, int, error) {
	cube := models.Cube()

	s := &scene.Scene{}
	s.Add(cube, math3d.Translate(math3d.V3(0, 0, 8)))
	s.Add(cube, math3d.Translate(math3d.V3(-3, -1, 7)))
	s.Add(cube, math3d.Translate(math3d.V3(3, 1, 9)).Mul(math3d.ScaleUniform(0.5)))
	spin := 0

	if *modelPath != "" {
		m, err := models.NewGLTFLoader().Load(*modelPath)
		if err != nil {
			return nil, 0, fmt.Errorf("load model: %w", err)
		}
		logger.Info("model loaded",
			"file", filepath.Base(*modelPath),
			"vertices", m.VertexCount(),
			"triangles", m.TriangleCount(),
		)
		s.Add(m, fitTransform(m, math3d.V3(0, 2.5, 8)))
		spin = len(s.Instances) - 1
	}
	return s, spin, nil
}

// fitTransform centers a model on at and scales its largest extent to 2,
// the size of the demo cubes.
func fitTransform(m *models.Model, at math3d.Vec3) math3d.Mat4 {
	lo, hi := m.Bounds(math3d.Identity())
	size := hi.Sub(lo)
	extent := max(size.X, size.Y, size.Z)

	scale := 1.0
	if extent > 0 {
		scale = 2 / extent
	}
	center := lo.Add(hi).Scale(0.5)
	return math3d.Translate(at).
		Mul(math3d.ScaleUniform(scale)).
		Mul(math3d.Translate(center.Negate()))
}

// animation spins one instance and dollies the camera in from behind its
// resting position.
type animation struct {
	dolly *anim.Dolly
	spin  *anim.Turntable
	dt    float32
	base  math3d.Mat4
	init  bool
}

func newAnimation(frames, fps int) *animation {
	if fps <= 0 {
		fps = 24
	}
	duration := float32(frames) / float32(fps)
	return &animation{
		dolly: anim.NewDolly(fps, math3d.V3(0, 0, -2), math3d.Zero3()),
		spin:  anim.NewTurntable(1, duration, nil),
		dt:    1 / float32(fps),
	}
}

// step advances one frame, updating the spun instance in place and
// returning the camera position.
func (a *animation) step(s *scene.Scene, spin int) math3d.Vec3 {
	inst := &s.Instances[spin]
	if !a.init {
		a.base = inst.Transform
		a.init = true
		a.spin.Update(0)
		return a.dolly.Position
	}

	a.spin.Update(a.dt)
	*inst = scene.NewInstance(inst.Model, a.spin.Apply(a.base))
	return a.dolly.Update()
}

// framePath returns path unchanged for a single frame, or with a zero
// padded frame number before the extension.
func framePath(path string, i, total int) string {
	if total <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	digits := len(fmt.Sprint(total - 1))
	return fmt.Sprintf("%s_%0*d%s", strings.TrimSuffix(path, ext), digits, i, ext)
}

// previewSize fits the image into cols terminal columns. Each terminal row
// shows two pixel rows.
func previewSize(cols, w, h int) (int, int) {
	if cols <= 0 {
		cols = 80
	}
	ph := cols * h / w
	ph += ph % 2
	return cols, max(ph, 2)
}

// parseColor parses "R,G,B" with components in 0..255.
func parseColor(s string) (render.Color, error) {
	var r, g, b int
	if _, err := fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b); err != nil {
		return render.Color{}, fmt.Errorf("%q: %w", s, err)
	}
	for _, c := range []int{r, g, b} {
		if c < 0 || c > 255 {
			return render.Color{}, fmt.Errorf("%q: component %d out of range", s, c)
		}
	}
	return render.RGB(uint8(r), uint8(g), uint8(b)), nil
}
