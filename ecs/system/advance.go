package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/noria/ecs"
	"github.com/milk9111/noria/ecs/component"
)

// Positions maps entity names to their world position after the update pass.
type Positions map[string]mgl32.Vec3

// Lookup returns the position of name.
func (p Positions) Lookup(name string) (mgl32.Vec3, bool) {
	if p == nil || name == "" {
		return mgl32.Vec3{}, false
	}
	pos, ok := p[name]
	return pos, ok
}

// NewUpdatePass builds the scheduler in the fixed update order: light,
// characters, carriage batches, spinners, bouncers, morphs.
func NewUpdatePass(scripts *OrbitScripts) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewLightSystem(scripts),
		NewCharacterSystem(scripts),
		NewBatchSystem(),
		NewSpinSystem(),
		NewBounceSystem(),
		NewMorphSystem(),
	)
}

// CollectPositions reads every named entity's world position: the light
// position for lights, the orbit position for orbiting entities and the
// transform translation for everything else.
func CollectPositions(w *ecs.World) Positions {
	out := Positions{}
	ecs.ForEach(w, component.NameComponent.Kind(), func(e ecs.Entity, n *component.Name) {
		if n.Value == "" {
			return
		}
		if l, ok := ecs.Get(w, e, component.LightComponent.Kind()); ok {
			out[n.Value] = l.Position
			return
		}
		if o, ok := ecs.Get(w, e, component.OrbitComponent.Kind()); ok {
			out[n.Value] = o.Position
			return
		}
		if tr, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			out[n.Value] = tr.Translation()
		}
	})
	return out
}

// AdvanceAll runs the update pass once and returns the positions the camera
// reads. Every entity is written before any position is collected.
func AdvanceAll(w *ecs.World, pass *ecs.Scheduler, t ecs.Tick) Positions {
	pass.Update(w, t)
	return CollectPositions(w)
}

// LightPosition returns the animated light's position, or fallback when the
// world has no light entity.
func LightPosition(w *ecs.World, fallback mgl32.Vec3) mgl32.Vec3 {
	if _, l, ok := ecs.First(w, component.LightComponent.Kind()); ok {
		return l.Position
	}
	return fallback
}
