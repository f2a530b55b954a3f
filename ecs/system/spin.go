package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/noria/common"
	"github.com/milk9111/noria/ecs"
	"github.com/milk9111/noria/ecs/component"
)

// StepSpin rotates in place by step degrees about the spin axis.
func StepSpin(s *component.Spin, t *component.Transform, step float32) {
	if s == nil || t == nil {
		return
	}
	s.Angle = common.WrapDegrees(s.Angle + step)
	axis := s.Axis
	if axis.Len() == 0 {
		axis = mgl32.Vec3{0, 0, 1}
	}
	t.Matrix = s.Base.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(s.Angle), axis.Normalize()))
}

type SpinSystem struct{}

func NewSpinSystem() *SpinSystem { return &SpinSystem{} }

func (s *SpinSystem) Update(w *ecs.World, t ecs.Tick) {
	step := t.Params.Step(t.Delta)
	ecs.ForEach2(w, component.SpinComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, sp *component.Spin, tr *component.Transform) {
			StepSpin(sp, tr, step)
		})
}
