package component

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Plane selects the two axes an orbit sweeps.
type Plane uint8

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
)

func (p Plane) String() string {
	switch p {
	case PlaneXZ:
		return "xz"
	case PlaneYZ:
		return "yz"
	default:
		return "xy"
	}
}

// ParsePlane maps "xy", "xz" and "yz" to a Plane. Anything else is false.
func ParsePlane(s string) (Plane, bool) {
	switch s {
	case "", "xy":
		return PlaneXY, true
	case "xz":
		return PlaneXZ, true
	case "yz":
		return PlaneYZ, true
	}
	return PlaneXY, false
}

// Orbit describes circular motion around Center and holds the running phase.
// Position always equals At(Angle) once the entity has been built.
type Orbit struct {
	Center  mgl32.Vec3
	Radius  float32
	Plane   Plane
	Phase   float32 // degrees added to Angle before evaluation
	Reverse bool
	Script  string // optional tengo script overriding the circle formula

	Angle    float32 // degrees, [0, 360)
	Position mgl32.Vec3
}

// At evaluates the circle at angle degrees.
func (o *Orbit) At(angle float32) mgl32.Vec3 {
	if o == nil {
		return mgl32.Vec3{}
	}
	rad := float64(mgl32.DegToRad(angle + o.Phase))
	a := o.Radius * float32(math.Cos(rad))
	b := o.Radius * float32(math.Sin(rad))
	if o.Reverse {
		b = -b
	}
	switch o.Plane {
	case PlaneXZ:
		return o.Center.Add(mgl32.Vec3{a, 0, b})
	case PlaneYZ:
		return o.Center.Add(mgl32.Vec3{0, a, b})
	default:
		return o.Center.Add(mgl32.Vec3{a, b, 0})
	}
}

var OrbitComponent = NewComponent[Orbit]()
