package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/noria/common"
	"github.com/milk9111/noria/ecs"
	"github.com/milk9111/noria/ecs/component"
)

// AdvanceBatch steps the template orbit and rebuilds every instance matrix
// from it. Instance i sits at the template angle plus i*Step and keeps the
// rotation and scale of base.
func AdvanceBatch(b *component.Batch, o *component.Orbit, base mgl32.Mat4, step float32) {
	if b == nil || o == nil {
		return
	}
	o.Angle = common.WrapDegrees(o.Angle + step)
	o.Position = o.At(o.Angle)
	layoutBatch(b, o, base)
}

func layoutBatch(b *component.Batch, o *component.Orbit, base mgl32.Mat4) {
	count := b.Count
	if count < 0 {
		count = 0
	}
	if cap(b.Phases) < count {
		b.Phases = make([]float32, count)
		b.Instances = make([]mgl32.Mat4, count)
	}
	b.Phases = b.Phases[:count]
	b.Instances = b.Instances[:count]

	for i := range count {
		offset := float32(i) * b.Step
		b.Phases[i] = offset
		p := o.At(o.Angle + offset)
		b.Instances[i] = mgl32.Translate3D(p[0], p[1], p[2]).Mul4(base)
	}
}

// BatchSystem advances carriage batches. The entity Transform is the
// per-instance pose and is never translated.
type BatchSystem struct{}

func NewBatchSystem() *BatchSystem { return &BatchSystem{} }

func (s *BatchSystem) Update(w *ecs.World, t ecs.Tick) {
	step := t.Params.Step(t.Delta)
	ecs.ForEach3(w, component.BatchComponent.Kind(), component.OrbitComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, b *component.Batch, o *component.Orbit, tr *component.Transform) {
			AdvanceBatch(b, o, tr.Matrix, step)
		})
}
