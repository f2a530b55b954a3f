package entity

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/noria/ecs/component"
	"github.com/milk9111/noria/prefabs"
)

// ParamsFromSpec overlays the scene's tunables on base. Exercise and motion
// mode are never taken from a scene.
func ParamsFromSpec(s prefabs.ParamsSpec, base component.Params) component.Params {
	p := base
	if s.Velocity != nil {
		p.Velocity = *s.Velocity
	}
	if s.Diffuse != nil {
		p.Diffuse = *s.Diffuse
	}
	if s.Specular != nil {
		p.Specular = *s.Specular
	}
	if s.Ambient != nil {
		p.Ambient = *s.Ambient
	}
	if s.LightPower != nil {
		p.LightPower = *s.LightPower
	}
	if s.LightPosition != nil {
		p.LightPosition = mgl32.Vec3(*s.LightPosition)
	}
	if s.LightColor != nil {
		c := s.LightColor.RGBA32()
		p.LightColor = mgl32.Vec3{c[0], c[1], c[2]}
	}
	return p
}
