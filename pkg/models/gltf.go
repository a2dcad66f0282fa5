package models

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/facet/pkg/math3d"
)

// ErrNoGeometry is returned when a document has no triangle primitives.
var ErrNoGeometry = errors.New("gltf: no triangle geometry")

// GLTFLoader loads GLTF/GLB files into Model format.
type GLTFLoader struct {
	// Color is the palette identifier given to primitives without a
	// material. Primitives with a material use the material index.
	Color int
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{Color: 6}
}

// LoadGLB loads a GLTF or GLB file with the default loader.
func LoadGLB(path string) (*Model, error) {
	return NewGLTFLoader().Load(path)
}

// Load opens a GLTF or GLB file and returns its triangles as one Model.
func (l *GLTFLoader) Load(path string) (*Model, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return l.FromDocument(doc, filepath.Base(path))
}

// Decode reads a GLTF or GLB stream. Buffers must be embedded.
func (l *GLTFLoader) Decode(r io.Reader, name string) (*Model, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("decode gltf: %w", err)
	}
	return l.FromDocument(doc, name)
}

// FromDocument merges every triangle primitive of doc into one Model.
// Node transforms are not applied.
func (l *GLTFLoader) FromDocument(doc *gltf.Document, name string) (*Model, error) {
	model := NewModel(name)

	for _, m := range doc.Meshes {
		if err := l.processMesh(doc, m, model); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}

	if len(model.Triangles) == 0 {
		return nil, ErrNoGeometry
	}
	if err := model.Validate(); err != nil {
		return nil, err
	}
	return model, nil
}

// processMesh appends the triangle primitives of a GLTF mesh to model.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, model *Model) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			// Lines and points carry no fill area
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		posAcc, err := accessor(doc, posIdx)
		if err != nil {
			return fmt.Errorf("positions: %w", err)
		}
		positions, err := modeler.ReadPosition(doc, posAcc, nil)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		color := l.Color
		if prim.Material != nil {
			color = *prim.Material
		}

		base := len(model.Vertices)
		for _, p := range positions {
			model.Vertices = append(model.Vertices, math3d.V3(float64(p[0]), float64(p[1]), float64(p[2])))
		}

		if prim.Indices != nil {
			idxAcc, err := accessor(doc, *prim.Indices)
			if err != nil {
				return fmt.Errorf("indices: %w", err)
			}
			indices, err := modeler.ReadIndices(doc, idxAcc, nil)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
			for i := 0; i+2 < len(indices); i += 3 {
				model.Triangles = append(model.Triangles, Triangle{
					V:     [3]int{base + int(indices[i]), base + int(indices[i+1]), base + int(indices[i+2])},
					Color: color,
				})
			}
			continue
		}

		// No indices: consecutive vertex triples
		for i := 0; i+2 < len(positions); i += 3 {
			model.Triangles = append(model.Triangles, Triangle{
				V:     [3]int{base + i, base + i + 1, base + i + 2},
				Color: color,
			})
		}
	}

	return nil
}

// accessor looks up an accessor referenced by a primitive.
func accessor(doc *gltf.Document, idx int) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(doc.Accessors) || doc.Accessors[idx] == nil {
		return nil, fmt.Errorf("accessor %d: %w", idx, ErrBadIndex)
	}
	return doc.Accessors[idx], nil
}
