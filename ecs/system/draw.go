package system

import (
	"maps"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/noria/ecs"
	"github.com/milk9111/noria/ecs/component"
	"github.com/milk9111/noria/ecs/render"
)

// DrawScene hands every visible entity to sink, in build order. Carriage
// batches emit one call per instance; bouncers submit their points; morphs
// add c, h and aa to the scalar uniforms.
func DrawScene(w *ecs.World, sink render.Sink, meshes render.MeshProvider, u render.Uniforms) {
	if sink == nil {
		return
	}
	sink.Begin(u)
	defer sink.End()

	ecs.ForEach(w, component.AppearanceComponent.Kind(), func(e ecs.Entity, a *component.Appearance) {
		if a.Hidden {
			return
		}
		call := render.DrawCall{
			Mesh:    meshOf(meshes, a.Mesh),
			Model:   mgl32.Ident4(),
			Color:   a.Color,
			Shader:  a.Shader,
			Scalars: maps.Clone(a.Scalars),
		}
		if n, ok := ecs.Get(w, e, component.NameComponent.Kind()); ok {
			call.Entity = n.Value
		}
		if tr, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			call.Model = tr.Matrix
		}
		if m, ok := ecs.Get(w, e, component.MorphComponent.Kind()); ok {
			if call.Scalars == nil {
				call.Scalars = map[string]float32{}
			}
			call.Scalars["c"] = m.C
			call.Scalars["h"] = m.H
			call.Scalars["aa"] = m.AA
		}
		if b, ok := ecs.Get(w, e, component.BouncerComponent.Kind()); ok {
			call.Points = append([]mgl32.Vec3(nil), b.Points...)
		}

		if b, ok := ecs.Get(w, e, component.BatchComponent.Kind()); ok {
			for _, inst := range b.Instances {
				c := call
				c.Model = inst
				sink.Draw(c)
			}
			return
		}
		sink.Draw(call)
	})
}

func meshOf(meshes render.MeshProvider, id string) render.Mesh {
	if meshes == nil {
		return render.Mesh{}
	}
	return meshes.Mesh(id)
}

// FrameUniforms fills the shared uniforms from the camera output and the
// sampled params.
func FrameUniforms(projection mgl32.Mat4, cam CameraView, light mgl32.Vec3, p component.Params) render.Uniforms {
	return render.Uniforms{
		Projection:    projection,
		View:          cam.View,
		MVP:           Compose(projection, cam.View),
		Eye:           cam.Eye,
		LightPosition: light,
		LightColor:    p.LightColor,
		LightPower:    p.LightPower,
		Diffuse:       p.Diffuse,
		Specular:      p.Specular,
		Ambient:       p.Ambient,
	}
}
