package main

import (
	"math"
	"testing"

	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/models"
	"github.com/taigrr/facet/pkg/render"
	"github.com/taigrr/facet/pkg/scene"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    render.Color
		wantErr bool
	}{
		{"50,50,50", render.RGB(50, 50, 50), false},
		{"0,128,255", render.RGB(0, 128, 255), false},
		{"256,0,0", render.Color{}, true},
		{"-1,0,0", render.Color{}, true},
		{"red", render.Color{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseColor(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFramePath(t *testing.T) {
	tests := []struct {
		path     string
		i, total int
		want     string
	}{
		{"output.ppm", 0, 1, "output.ppm"},
		{"out/frame.png", 3, 10, "out/frame_3.png"},
		{"out/frame.png", 7, 120, "out/frame_007.png"},
	}
	for _, tc := range tests {
		if got := framePath(tc.path, tc.i, tc.total); got != tc.want {
			t.Errorf("framePath(%q, %d, %d) = %q, want %q", tc.path, tc.i, tc.total, got, tc.want)
		}
	}
}

func TestPreviewSize(t *testing.T) {
	w, h := previewSize(80, 900, 600)
	if w != 80 || h != 54 {
		t.Errorf("previewSize = %dx%d, want 80x54", w, h)
	}
	if _, h := previewSize(10, 1000, 10); h != 2 {
		t.Errorf("minimum height = %d, want 2", h)
	}
}

func TestFitTransform(t *testing.T) {
	m := models.NewModel("box")
	m.Vertices = []math3d.Vec3{math3d.V3(10, 10, 10), math3d.V3(14, 12, 11)}

	lo, hi := m.Bounds(fitTransform(m, math3d.V3(0, 0, 8)))
	center := lo.Add(hi).Scale(0.5)
	if center.Distance(math3d.V3(0, 0, 8)) > 1e-9 {
		t.Errorf("center = %v, want (0,0,8)", center)
	}
	if extent := hi.X - lo.X; math.Abs(extent-2) > 1e-9 {
		t.Errorf("extent = %v, want 2", extent)
	}
}

func TestAnimationStep(t *testing.T) {
	cube := models.Cube()
	s := &scene.Scene{}
	s.Add(cube, math3d.Translate(math3d.V3(0, 0, 8)))
	base := s.Instances[0].Transform

	a := newAnimation(12, 12)
	if cam := a.step(s, 0); cam != math3d.V3(0, 0, -2) {
		t.Errorf("first camera = %v, want dolly start", cam)
	}
	if s.Instances[0].Transform != base {
		t.Error("first frame moved the instance")
	}

	cam := a.step(s, 0)
	if cam.Z <= -2 || cam.Z > 0 {
		t.Errorf("camera z = %v, want between start and target", cam.Z)
	}
	if s.Instances[0].Transform == base {
		t.Error("second frame did not spin the instance")
	}
	if s.Instances[0].Model != cube {
		t.Error("spinning replaced the model")
	}
}
