package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/noria/ecs/component"
)

// StepOscillator moves the counter one step (scaled by scale) towards the
// current bound, clamping and reversing when it reaches it. It returns the
// change in offset.
func StepOscillator(o *component.Oscillator, scale float32) mgl32.Vec3 {
	if o == nil || o.Max <= o.Min {
		return mgl32.Vec3{}
	}
	before := o.Offset()
	if o.Direction == 0 {
		o.Direction = 1
	}
	o.Value += o.Direction * o.Step * scale
	switch {
	case o.Value >= o.Max:
		o.Value = o.Max
		o.Direction = -1
	case o.Value <= o.Min:
		o.Value = o.Min
		o.Direction = 1
	}
	return o.Offset().Sub(before)
}
