package component

import "github.com/go-gl/mathgl/mgl32"

// MotionMode selects how velocity turns into a per-frame step.
type MotionMode uint8

const (
	// MotionPerFrame steps by exactly Velocity every frame.
	MotionPerFrame MotionMode = iota
	// MotionDeltaScaled steps by Velocity * delta * ReferenceRate.
	MotionDeltaScaled
)

// ReferenceRate is the frame rate at which both motion modes agree.
const ReferenceRate = 60

func (m MotionMode) String() string {
	if m == MotionDeltaScaled {
		return "delta"
	}
	return "frame"
}

// Params are the GUI tunables. The frame loop copies them once per frame;
// systems never write them.
type Params struct {
	Velocity float32 // degrees per frame for orbits, units/100 per frame for bouncers
	Diffuse  float32
	Specular float32
	Ambient  float32

	LightPower    float32
	LightPosition mgl32.Vec3
	LightColor    mgl32.Vec3

	Exercise int
	Motion   MotionMode
}

// DefaultParams are the initial slider positions.
func DefaultParams() Params {
	return Params{
		Velocity:      0.5,
		Diffuse:       0.5,
		Specular:      0.5,
		Ambient:       0.2,
		LightPower:    1,
		LightPosition: mgl32.Vec3{0, 8, 0},
		LightColor:    mgl32.Vec3{1, 1, 1},
		Exercise:      1,
	}
}

// Scale is the number of reference frames this frame stands for: 1 in
// MotionPerFrame, delta*ReferenceRate in MotionDeltaScaled.
func (p Params) Scale(delta float64) float32 {
	if p.Motion == MotionDeltaScaled {
		return float32(delta * ReferenceRate)
	}
	return 1
}

// Step converts Velocity into this frame's increment.
func (p Params) Step(delta float64) float32 {
	return p.Velocity * p.Scale(delta)
}
