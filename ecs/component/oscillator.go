package component

import "github.com/go-gl/mathgl/mgl32"

// Oscillator is a ping-pong counter moving Step per frame between Min and
// Max. Offset is Axis * Value.
type Oscillator struct {
	Min  float32
	Max  float32
	Step float32
	Axis mgl32.Vec3

	Value     float32
	Direction float32 // +1 or -1
}

// Offset returns the displacement the oscillator currently applies.
func (o *Oscillator) Offset() mgl32.Vec3 {
	if o == nil {
		return mgl32.Vec3{}
	}
	return o.Axis.Mul(o.Value)
}

var OscillatorComponent = NewComponent[Oscillator]()
