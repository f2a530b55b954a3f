package component

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// Bouncer moves a cloud of points inside the axis-aligned box [Min, Max],
// reflecting off the faces.
type Bouncer struct {
	Min mgl32.Vec3
	Max mgl32.Vec3

	Points     []mgl32.Vec3
	Directions []mgl32.Vec3
	Rand       *rand.Rand
}

var BouncerComponent = NewComponent[Bouncer]()
