package component

import "github.com/go-gl/mathgl/mgl32"

// Light marks the scene's animated light. Position is the orbit position
// plus the oscillator offset, refreshed by the light pass.
type Light struct {
	Color    mgl32.Vec3
	Power    float32
	Position mgl32.Vec3
}

var LightComponent = NewComponent[Light]()
