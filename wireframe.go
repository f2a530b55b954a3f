package main

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/noria/common"
	"github.com/milk9111/noria/ecs/render"
)

// wireframeSink strokes every draw call onto an ebiten image. It stands in
// for the GPU: vertices go through projection * view * model and are
// clipped when behind the eye.
type wireframeSink struct {
	screen *ebiten.Image
	u      render.Uniforms
	draws  int
}

func newWireframeSink() *wireframeSink {
	return &wireframeSink{}
}

// Target sets the image the next frame is drawn onto.
func (s *wireframeSink) Target(screen *ebiten.Image) {
	s.screen = screen
}

func (s *wireframeSink) Begin(u render.Uniforms) {
	s.u = u
	s.draws = 0
}

func (s *wireframeSink) End() {}

func (s *wireframeSink) Draw(d render.DrawCall) {
	if s.screen == nil {
		return
	}
	s.draws++
	clr := s.shade(d.Color)
	model := morphModel(d.Model, d.Scalars)
	if d.Points == nil {
		s.drawMesh(d.Mesh, model, clr)
		return
	}
	for _, p := range d.Points {
		s.drawMesh(d.Mesh, model.Mul4(mgl32.Translate3D(p[0], p[1], p[2])), clr)
	}
}

// morphModel approximates the truncation shader: c and h stretch the unit
// octahedron and aa lifts it.
func morphModel(model mgl32.Mat4, scalars map[string]float32) mgl32.Mat4 {
	c, okC := scalars["c"]
	h, okH := scalars["h"]
	if !okC || !okH {
		return model
	}
	aa := scalars["aa"]
	return model.Mul4(mgl32.Translate3D(0, aa, 0)).Mul4(mgl32.Scale3D(2*c, 2*h/3, 2*c))
}

// shade applies the ambient and diffuse terms uniformly; there are no
// normals in a wireframe.
func (s *wireframeSink) shade(c mgl32.Vec4) color.Color {
	k := common.Clamp(s.u.Ambient+s.u.Diffuse*s.u.LightPower, 0.15, 1)
	light := s.u.LightColor
	if light == (mgl32.Vec3{}) {
		light = mgl32.Vec3{1, 1, 1}
	}
	to8 := func(v float32) uint8 { return uint8(common.Clamp(v, 0, 1) * 255) }
	return color.NRGBA{
		R: to8(c[0] * light[0] * k),
		G: to8(c[1] * light[1] * k),
		B: to8(c[2] * light[2] * k),
		A: to8(c[3]),
	}
}

func (s *wireframeSink) drawMesh(m render.Mesh, model mgl32.Mat4, clr color.Color) {
	mvp := s.u.MVP.Mul4(model)
	n := m.VertexCount()
	switch m.Primitive {
	case render.Lines:
		for i := 0; i+1 < n; i += 2 {
			s.line(mvp, m.Vertex(i), m.Vertex(i+1), clr)
		}
	case render.Triangles:
		for i := 0; i+2 < n; i += 3 {
			a, b, c := m.Vertex(i), m.Vertex(i+1), m.Vertex(i+2)
			s.line(mvp, a, b, clr)
			s.line(mvp, b, c, clr)
			s.line(mvp, c, a, clr)
		}
	case render.Points:
		for i := range n {
			if x, y, ok := s.project(mvp, m.Vertex(i)); ok {
				vector.DrawFilledCircle(s.screen, x, y, 3, clr, true)
			}
		}
	}
}

func (s *wireframeSink) line(mvp mgl32.Mat4, a, b mgl32.Vec3, clr color.Color) {
	x0, y0, ok0 := s.project(mvp, a)
	x1, y1, ok1 := s.project(mvp, b)
	if !ok0 || !ok1 {
		return
	}
	vector.StrokeLine(s.screen, x0, y0, x1, y1, 1, clr, true)
}

func (s *wireframeSink) project(mvp mgl32.Mat4, v mgl32.Vec3) (float32, float32, bool) {
	clip := mvp.Mul4x1(v.Vec4(1))
	if clip[3] <= 1e-4 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip[3])
	if !common.Finite(ndc[0], ndc[1]) {
		return 0, 0, false
	}
	b := s.screen.Bounds()
	x := (ndc[0] + 1) / 2 * float32(b.Dx())
	y := (1 - ndc[1]) / 2 * float32(b.Dy())
	return x, y, true
}
