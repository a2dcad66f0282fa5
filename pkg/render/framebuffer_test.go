package render

import (
	"image"
	"image/draw"
	"math"
	"math/rand/v2"
	"testing"
)

var bg = RGB(50, 50, 50)

func TestNewFramebufferCleared(t *testing.T) {
	fb := NewFramebuffer(3, 5, bg)
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if got := fb.GetPixel(x, y); got != bg {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, bg)
			}
			if d := fb.GetDepth(x, y); !math.IsInf(d, 1) {
				t.Fatalf("depth (%d,%d) = %v, want +Inf", x, y, d)
			}
		}
	}
}

func TestSetPixelDepthTest(t *testing.T) {
	red, green := RGB(255, 0, 0), RGB(0, 255, 0)
	shade := func(k int) Color { return RGB(uint8(20*k+20), 0, 100) }

	tests := []struct {
		name    string
		writes  []float64
		want    float64
		wantIdx int // index of the write whose color must remain
	}{
		{"single write", []float64{4}, 4, 0},
		{"nearer wins", []float64{4, 2}, 2, 1},
		{"farther loses", []float64{2, 4}, 2, 0},
		{"order independent", []float64{7, 3, 5, 9}, 3, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fb := NewFramebuffer(4, 4, bg)
			for k, z := range tc.writes {
				fb.SetPixel(1, 1, z, shade(k))
			}
			if got := fb.GetDepth(1, 1); got != tc.want {
				t.Errorf("depth = %v, want %v", got, tc.want)
			}
			if got := fb.GetPixel(1, 1); got != shade(tc.wantIdx) {
				t.Errorf("pixel = %v, want %v", got, shade(tc.wantIdx))
			}
		})
	}

	t.Run("random writes keep the nearest", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(3, 5))
		fb := NewFramebuffer(1, 1, bg)
		best := math.Inf(1)
		var bestColor Color
		for k := range 1000 {
			z := rng.Float64() * 100
			c := RGB(uint8(k), uint8(k>>8), 7)
			fb.SetPixel(0, 0, z, c)
			if z < best {
				best, bestColor = z, c
			}
		}
		if fb.GetDepth(0, 0) != best || fb.GetPixel(0, 0) != bestColor {
			t.Errorf("kept (%v, %v), want (%v, %v)", fb.GetDepth(0, 0), fb.GetPixel(0, 0), best, bestColor)
		}
	})

	t.Run("tie keeps first", func(t *testing.T) {
		fb := NewFramebuffer(4, 4, bg)
		fb.SetPixel(2, 2, 3, red)
		fb.SetPixel(2, 2, 3, green)
		if got := fb.GetPixel(2, 2); got != red {
			t.Errorf("pixel = %v, want %v", got, red)
		}
	})
}

func TestSetPixelOutOfBounds(t *testing.T) {
	fb := NewFramebuffer(4, 4, bg)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}} {
		fb.SetPixel(p[0], p[1], 1, ColorWhite)
	}
	for i, px := range fb.Pixels {
		if px != bg {
			t.Fatalf("pixel %d modified by out-of-bounds write", i)
		}
	}
	if got := fb.GetPixel(-1, 0); got.A != 0 {
		t.Errorf("GetPixel out of bounds = %v, want transparent", got)
	}
}

func TestClear(t *testing.T) {
	fb := NewFramebuffer(7, 3, bg)
	fb.SetPixel(6, 2, 1, ColorWhite)
	fb.SetPixel(0, 0, 1, ColorWhite)
	fb.Clear()

	if got := fb.GetPixel(6, 2); got != bg {
		t.Errorf("pixel after Clear = %v, want %v", got, bg)
	}
	if d := fb.GetDepth(0, 0); !math.IsInf(d, 1) {
		t.Errorf("depth after Clear = %v, want +Inf", d)
	}
}

func TestFramebufferIsDrawImage(t *testing.T) {
	fb := NewFramebuffer(4, 4, bg)
	var _ draw.Image = fb

	draw.Draw(fb, image.Rect(1, 1, 3, 3), image.NewUniform(ColorWhite), image.Point{}, draw.Src)
	if got := fb.GetPixel(2, 2); got != ColorWhite {
		t.Errorf("pixel = %v, want white", got)
	}
	if got := fb.GetPixel(0, 0); got != bg {
		t.Errorf("pixel outside rect = %v, want background", got)
	}
	if d := fb.GetDepth(2, 2); !math.IsInf(d, 1) {
		t.Errorf("overlay changed depth to %v", d)
	}
}

func TestToImage(t *testing.T) {
	fb := NewFramebuffer(3, 2, bg)
	fb.SetPixel(2, 1, 1, ColorWhite)
	img := fb.ToImage()

	if img.Bounds() != fb.Bounds() {
		t.Fatalf("bounds = %v, want %v", img.Bounds(), fb.Bounds())
	}
	if got := img.RGBAAt(2, 1); got != ColorWhite {
		t.Errorf("RGBAAt(2,1) = %v, want white", got)
	}
}

func BenchmarkClear(b *testing.B) {
	fb := NewFramebuffer(900, 600, bg)
	for b.Loop() {
		fb.Clear()
	}
}
