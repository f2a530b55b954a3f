package render

import "github.com/go-gl/mathgl/mgl32"

// Primitive says how consecutive vertices are assembled.
type Primitive uint8

const (
	Triangles Primitive = iota
	Lines
	Points
)

// Mesh is vertex data as flat float sequences: 3 per position, 2 per
// texture coordinate, 3 per normal. A zero Mesh is valid and draws nothing.
type Mesh struct {
	Primitive Primitive
	Positions []float32
	UVs       []float32
	Normals   []float32
}

// VertexCount returns the number of complete positions.
func (m Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

func (m Mesh) Empty() bool {
	return m.VertexCount() == 0
}

// Vertex returns position i. Callers stay below VertexCount.
func (m Mesh) Vertex(i int) mgl32.Vec3 {
	return mgl32.Vec3{m.Positions[3*i], m.Positions[3*i+1], m.Positions[3*i+2]}
}

// MeshProvider resolves an asset id to mesh data. A failed lookup yields an
// empty mesh rather than an error.
type MeshProvider interface {
	Mesh(id string) Mesh
}

func lineMesh(segments ...[2]mgl32.Vec3) Mesh {
	m := Mesh{Primitive: Lines, Positions: make([]float32, 0, len(segments)*6)}
	for _, s := range segments {
		m.Positions = append(m.Positions, s[0][0], s[0][1], s[0][2], s[1][0], s[1][1], s[1][2])
	}
	return m
}

// boxEdges returns the 12 edges of the axis-aligned box [lo, hi].
func boxEdges(lo, hi mgl32.Vec3) [][2]mgl32.Vec3 {
	c := func(x, y, z int) mgl32.Vec3 {
		v := lo
		if x == 1 {
			v[0] = hi[0]
		}
		if y == 1 {
			v[1] = hi[1]
		}
		if z == 1 {
			v[2] = hi[2]
		}
		return v
	}
	return [][2]mgl32.Vec3{
		{c(0, 0, 0), c(1, 0, 0)}, {c(1, 0, 0), c(1, 0, 1)}, {c(1, 0, 1), c(0, 0, 1)}, {c(0, 0, 1), c(0, 0, 0)},
		{c(0, 1, 0), c(1, 1, 0)}, {c(1, 1, 0), c(1, 1, 1)}, {c(1, 1, 1), c(0, 1, 1)}, {c(0, 1, 1), c(0, 1, 0)},
		{c(0, 0, 0), c(0, 1, 0)}, {c(1, 0, 0), c(1, 1, 0)}, {c(1, 0, 1), c(1, 1, 1)}, {c(0, 0, 1), c(0, 1, 1)},
	}
}

// octahedronEdges returns the 12 edges of an octahedron with the given
// half-extents.
func octahedronEdges(r, h float32) [][2]mgl32.Vec3 {
	top, bottom := mgl32.Vec3{0, h, 0}, mgl32.Vec3{0, -h, 0}
	ring := []mgl32.Vec3{{r, 0, 0}, {0, 0, r}, {-r, 0, 0}, {0, 0, -r}}
	out := make([][2]mgl32.Vec3, 0, 12)
	for i, v := range ring {
		out = append(out, [2]mgl32.Vec3{v, ring[(i+1)%len(ring)]}, [2]mgl32.Vec3{top, v}, [2]mgl32.Vec3{bottom, v})
	}
	return out
}
