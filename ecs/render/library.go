package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// WheelRadius and WheelSpokes shape the builtin spokes mesh.
const (
	WheelRadius = 5.55
	WheelSpokes = 10
)

// Library stores meshes by id.
type Library struct {
	meshes map[string]Mesh
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{meshes: make(map[string]Mesh)}
}

// Register adds or replaces a mesh.
func (l *Library) Register(id string, m Mesh) {
	if l == nil || id == "" {
		return
	}
	l.meshes[id] = m
}

// Mesh returns the mesh for id, or an empty mesh.
func (l *Library) Mesh(id string) Mesh {
	if l == nil {
		return Mesh{}
	}
	return l.meshes[id]
}

// Has reports whether id was registered.
func (l *Library) Has(id string) bool {
	if l == nil {
		return false
	}
	_, ok := l.meshes[id]
	return ok
}

// Builtins returns a library with the procedural meshes the scenes use.
func Builtins() *Library {
	l := NewLibrary()
	l.Register("axis", lineMesh(
		[2]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}},
		[2]mgl32.Vec3{{0, 0, 0}, {0, 1, 0}},
		[2]mgl32.Vec3{{0, 0, 0}, {0, 0, 1}},
	))
	l.Register("box", lineMesh(boxEdges(mgl32.Vec3{-5, 0, -5}, mgl32.Vec3{5, 10, 5})...))
	l.Register("cube", lineMesh(boxEdges(mgl32.Vec3{-0.5, -0.5, -0.5}, mgl32.Vec3{0.5, 0.5, 0.5})...))
	l.Register("cabin", lineMesh(boxEdges(mgl32.Vec3{-0.4, -0.8, -0.4}, mgl32.Vec3{0.4, 0, 0.4})...))
	l.Register("rider", lineMesh(octahedronEdges(0.25, 0.4)...))
	l.Register("octahedron", lineMesh(octahedronEdges(0.5, 0.5)...))
	l.Register("lamp", lineMesh(append(
		boxEdges(mgl32.Vec3{-0.3, 0, -0.3}, mgl32.Vec3{0.3, 0.1, 0.3}),
		[2]mgl32.Vec3{{0, 0.1, 0}, {0, 2, 0}},
		[2]mgl32.Vec3{{0, 2, 0}, {0.5, 2.2, 0}},
	)...))
	l.Register("point", Mesh{Primitive: Points, Positions: []float32{0, 0, 0}})

	spokes := make([][2]mgl32.Vec3, 0, WheelSpokes)
	for i := 0; i < WheelSpokes; i++ {
		rad := float64(i) * math.Pi / WheelSpokes
		x := float32(WheelRadius * math.Cos(rad))
		y := float32(WheelRadius * math.Sin(rad))
		spokes = append(spokes, [2]mgl32.Vec3{{-x, -y, 0}, {x, y, 0}})
	}
	l.Register("spokes", lineMesh(spokes...))
	return l
}
