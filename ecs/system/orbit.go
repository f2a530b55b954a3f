package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/noria/common"
	"github.com/milk9111/noria/ecs"
	"github.com/milk9111/noria/ecs/component"
)

// positionFunc evaluates an orbit at a phase. ok=false leaves the entity
// where it is.
type positionFunc func(angle float32) (mgl32.Vec3, bool)

// AdvanceOrbit steps the phase by step degrees, evaluates the circle at the
// new phase and composes the displacement onto the transform. It returns
// the displacement.
func AdvanceOrbit(o *component.Orbit, t *component.Transform, step float32) mgl32.Vec3 {
	if o == nil {
		return mgl32.Vec3{}
	}
	return advanceOrbit(o, t, step, func(angle float32) (mgl32.Vec3, bool) {
		return o.At(angle), true
	})
}

func advanceOrbit(o *component.Orbit, t *component.Transform, step float32, at positionFunc) mgl32.Vec3 {
	o.Angle = common.WrapDegrees(o.Angle + step)
	next, ok := at(o.Angle)
	if !ok {
		next = o.Position
	}
	delta := next.Sub(o.Position)
	o.Position = next
	composeTranslation(t, delta)
	return delta
}

// composeTranslation pre-multiplies a world-space translation so rotation and
// scale set at build time are kept.
func composeTranslation(t *component.Transform, delta mgl32.Vec3) {
	if t == nil || delta == (mgl32.Vec3{}) {
		return
	}
	t.Matrix = mgl32.Translate3D(delta[0], delta[1], delta[2]).Mul4(t.Matrix)
}

// CharacterSystem advances every character's orbit by the shared velocity.
type CharacterSystem struct {
	scripts *OrbitScripts
}

func NewCharacterSystem(scripts *OrbitScripts) *CharacterSystem {
	return &CharacterSystem{scripts: scripts}
}

func (s *CharacterSystem) Update(w *ecs.World, t ecs.Tick) {
	step := t.Params.Step(t.Delta)
	ecs.ForEach3(w, component.CharacterTagComponent.Kind(), component.OrbitComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, _ *component.CharacterTag, o *component.Orbit, tr *component.Transform) {
			advanceOrbit(o, tr, step, s.scripts.positioner(o))
		})
}
