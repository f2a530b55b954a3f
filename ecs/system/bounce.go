package system

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/noria/ecs"
	"github.com/milk9111/noria/ecs/component"
)

// StepBouncer moves every point along its direction by speed/100. A point
// outside the box is first clamped to the face it crossed; the direction
// component for that axis flips and the other two are re-rolled. Only the
// first offending axis (x, then y, then z) is handled per step.
func StepBouncer(b *component.Bouncer, speed float32) {
	if b == nil {
		return
	}
	if b.Rand == nil {
		b.Rand = rand.New(rand.NewPCG(1, 2))
	}
	scale := speed / 100
	for i := range b.Points {
		if i >= len(b.Directions) {
			break
		}
		p := &b.Points[i]
		d := &b.Directions[i]
		for axis := range 3 {
			if p[axis] >= b.Min[axis] && p[axis] <= b.Max[axis] {
				continue
			}
			flipped := -d[axis]
			*d = rollDirection(b)
			d[axis] = flipped
			if p[axis] > b.Max[axis] {
				p[axis] = b.Max[axis]
			} else {
				p[axis] = b.Min[axis]
			}
			break
		}
		*p = p.Add(d.Mul(scale))
	}
}

// rollDirection draws whole-number components: x and z in [Min, Min+9],
// y in [0, 9].
func rollDirection(b *component.Bouncer) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(b.Rand.IntN(10)) + b.Min[0],
		float32(b.Rand.IntN(10)),
		float32(b.Rand.IntN(10)) + b.Min[2],
	}
}

// SeedBouncer scatters count points and directions inside the box with a
// resolution of 0.1.
func SeedBouncer(b *component.Bouncer, count int, seed uint64) {
	if b == nil {
		return
	}
	b.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	b.Points = make([]mgl32.Vec3, count)
	b.Directions = make([]mgl32.Vec3, count)
	size := b.Max.Sub(b.Min)
	sample := func() mgl32.Vec3 {
		var v mgl32.Vec3
		for axis := range 3 {
			v[axis] = b.Min[axis] + float32(b.Rand.IntN(100))/100*size[axis]
		}
		return v
	}
	for i := range count {
		b.Points[i] = sample()
	}
	for i := range count {
		b.Directions[i] = sample()
	}
}

// BounceSystem advances every bouncer by the shared velocity.
type BounceSystem struct{}

func NewBounceSystem() *BounceSystem { return &BounceSystem{} }

func (s *BounceSystem) Update(w *ecs.World, t ecs.Tick) {
	speed := t.Params.Step(t.Delta)
	ecs.ForEach(w, component.BouncerComponent.Kind(), func(_ ecs.Entity, b *component.Bouncer) {
		StepBouncer(b, speed)
	})
}
