package system

import (
	"github.com/milk9111/noria/ecs"
	"github.com/milk9111/noria/ecs/component"
)

// LightSystem advances the animated light along its orbit, then its
// ping-pong oscillator, and refreshes the light position uniform source.
type LightSystem struct {
	scripts *OrbitScripts
}

func NewLightSystem(scripts *OrbitScripts) *LightSystem {
	return &LightSystem{scripts: scripts}
}

func (s *LightSystem) Update(w *ecs.World, t ecs.Tick) {
	step := t.Params.Step(t.Delta)
	scale := t.Params.Scale(t.Delta)
	ecs.ForEach3(w, component.LightComponent.Kind(), component.OrbitComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, l *component.Light, o *component.Orbit, tr *component.Transform) {
			advanceOrbit(o, tr, step, s.scripts.positioner(o))
			pos := o.Position
			if osc, ok := ecs.Get(w, e, component.OscillatorComponent.Kind()); ok {
				composeTranslation(tr, StepOscillator(osc, scale))
				pos = pos.Add(osc.Offset())
			}
			l.Position = pos
		})
}
