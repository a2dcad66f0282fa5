package models

import "github.com/taigrr/facet/pkg/math3d"

// Cube returns a cube with corners at ±1 on every axis. Each face is split
// into two triangles and carries its own palette color.
func Cube() *Model {
	m := NewModel("cube")
	m.Vertices = []math3d.Vec3{
		{X: 1, Y: 1, Z: 1},
		{X: -1, Y: 1, Z: 1},
		{X: -1, Y: -1, Z: 1},
		{X: 1, Y: -1, Z: 1},
		{X: 1, Y: 1, Z: -1},
		{X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: -1},
		{X: 1, Y: -1, Z: -1},
	}
	m.Triangles = []Triangle{
		{V: [3]int{0, 1, 2}, Color: 2}, // +Z
		{V: [3]int{0, 2, 3}, Color: 2},
		{V: [3]int{4, 0, 3}, Color: 3}, // +X
		{V: [3]int{4, 3, 7}, Color: 3},
		{V: [3]int{5, 4, 7}, Color: 1}, // -Z
		{V: [3]int{5, 7, 6}, Color: 1},
		{V: [3]int{1, 5, 6}, Color: 5}, // -X
		{V: [3]int{1, 6, 2}, Color: 5},
		{V: [3]int{4, 5, 1}, Color: 4}, // +Y
		{V: [3]int{4, 1, 0}, Color: 4},
		{V: [3]int{2, 6, 7}, Color: 6}, // -Y
		{V: [3]int{2, 7, 3}, Color: 6},
	}
	return m
}
