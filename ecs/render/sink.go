package render

import "github.com/go-gl/mathgl/mgl32"

// Uniforms are the per-frame values shared by every draw.
type Uniforms struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
	MVP        mgl32.Mat4
	Eye        mgl32.Vec3

	LightPosition mgl32.Vec3
	LightColor    mgl32.Vec3
	LightPower    float32
	Diffuse       float32
	Specular      float32
	Ambient       float32
}

// DrawCall is one object handed to the GPU boundary. Points, when set, is a
// dynamic point list submitted instead of the mesh vertices; the geometry
// stage expands Mesh around each point.
type DrawCall struct {
	Entity  string
	Mesh    Mesh
	Model   mgl32.Mat4
	Color   mgl32.Vec4
	Shader  string
	Scalars map[string]float32
	Points  []mgl32.Vec3
}

// VertexCount is the number of vertices this call submits.
func (d DrawCall) VertexCount() int {
	if d.Points != nil {
		return len(d.Points)
	}
	return d.Mesh.VertexCount()
}

// Sink receives matrices and scalar uniforms. It never hands GPU state back.
type Sink interface {
	Begin(u Uniforms)
	Draw(d DrawCall)
	End()
}

// Recorder is a Sink that keeps the last frame in memory.
type Recorder struct {
	Frames   int
	Uniforms Uniforms
	Draws    []DrawCall
}

func (r *Recorder) Begin(u Uniforms) {
	r.Uniforms = u
	r.Draws = r.Draws[:0]
}

func (r *Recorder) Draw(d DrawCall) {
	r.Draws = append(r.Draws, d)
}

func (r *Recorder) End() {
	r.Frames++
}

// Find returns the draws recorded for entity.
func (r *Recorder) Find(entity string) []DrawCall {
	var out []DrawCall
	for _, d := range r.Draws {
		if d.Entity == entity {
			out = append(out, d)
		}
	}
	return out
}
