package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/noria/ecs"
	"github.com/milk9111/noria/ecs/component"
	"github.com/milk9111/noria/ecs/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addVisible(t *testing.T, w *ecs.World, name, mesh string) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: name}))
	require.NoError(t, ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{Mesh: mesh, Color: mgl32.Vec4{1, 1, 1, 1}}))
	return e
}

func TestDrawScene(t *testing.T) {
	w := ecs.NewWorld()

	cabina := addVisible(t, w, "Cabina", "cabin")
	o := &component.Orbit{Center: mgl32.Vec3{0, 6.3, 0}, Radius: 5.55}
	b := &component.Batch{Count: 20, Step: 18}
	require.NoError(t, ecs.Add(w, cabina, component.OrbitComponent.Kind(), o))
	require.NoError(t, ecs.Add(w, cabina, component.BatchComponent.Kind(), b))
	require.NoError(t, ecs.Add(w, cabina, component.TransformComponent.Kind(), &component.Transform{Matrix: mgl32.Ident4()}))
	AdvanceBatch(b, o, mgl32.Ident4(), 0)

	nube := addVisible(t, w, "Nube", "point")
	bouncer := &component.Bouncer{Min: mgl32.Vec3{-5, 0, -5}, Max: mgl32.Vec3{5, 10, 5}}
	SeedBouncer(bouncer, 20, 7)
	require.NoError(t, ecs.Add(w, nube, component.BouncerComponent.Kind(), bouncer))

	poly := addVisible(t, w, "Poliedro", "octahedron")
	m := &component.Morph{A: 0.3}
	UpdateMorph(m, 0)
	require.NoError(t, ecs.Add(w, poly, component.MorphComponent.Kind(), m))
	require.NoError(t, ecs.Add(w, poly, component.TransformComponent.Kind(), &component.Transform{Matrix: mgl32.Translate3D(0, 1, 0)}))

	hidden := addVisible(t, w, "Oculto", "cube")
	a, _ := ecs.Get(w, hidden, component.AppearanceComponent.Kind())
	a.Hidden = true

	rec := &render.Recorder{}
	u := render.Uniforms{LightPower: 2}
	DrawScene(w, rec, render.Builtins(), u)

	assert.Equal(t, 1, rec.Frames)
	assert.Equal(t, u, rec.Uniforms)
	assert.Len(t, rec.Draws, 22)
	assert.Empty(t, rec.Find("Oculto"))

	cabins := rec.Find("Cabina")
	require.Len(t, cabins, 20)
	for i, d := range cabins {
		assert.Equal(t, b.Instances[i], d.Model)
		assert.False(t, d.Mesh.Empty())
	}

	points := rec.Find("Nube")
	require.Len(t, points, 1)
	assert.Equal(t, 20, points[0].VertexCount())
	points[0].Points[0] = mgl32.Vec3{99, 99, 99}
	assert.NotEqual(t, mgl32.Vec3{99, 99, 99}, bouncer.Points[0])

	polys := rec.Find("Poliedro")
	require.Len(t, polys, 1)
	assert.Equal(t, m.C, polys[0].Scalars["c"])
	assert.Equal(t, m.H, polys[0].Scalars["h"])
	assert.Equal(t, m.AA, polys[0].Scalars["aa"])
	assert.Equal(t, mgl32.Translate3D(0, 1, 0), polys[0].Model)
}

func TestDrawSceneNilSink(t *testing.T) {
	w := ecs.NewWorld()
	addVisible(t, w, "Caja", "box")
	assert.NotPanics(t, func() { DrawScene(w, nil, nil, render.Uniforms{}) })

	rec := &render.Recorder{}
	DrawScene(w, rec, nil, render.Uniforms{})
	require.Len(t, rec.Draws, 1)
	assert.True(t, rec.Draws[0].Mesh.Empty())
	assert.Equal(t, mgl32.Ident4(), rec.Draws[0].Model)
}

func TestFrameUniforms(t *testing.T) {
	proj := Perspective(65, 16.0/9, 1, 50)
	cam := CameraView{View: mgl32.Translate3D(0, -5, -15), Eye: mgl32.Vec3{0, 5, 15}}
	p := component.DefaultParams()
	p.Diffuse = 0.7

	u := FrameUniforms(proj, cam, mgl32.Vec3{1, 2, 3}, p)

	assert.Equal(t, proj, u.Projection)
	assert.Equal(t, cam.View, u.View)
	assert.Equal(t, Compose(proj, cam.View), u.MVP)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, u.LightPosition)
	assert.Equal(t, float32(0.7), u.Diffuse)
	assert.Equal(t, p.LightPower, u.LightPower)
}
