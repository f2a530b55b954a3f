package component

import "github.com/go-gl/mathgl/mgl32"

// Spin rotates an entity in place about Axis. Base is the pose captured at
// build time; the Transform is Base * R(Angle).
type Spin struct {
	Axis  mgl32.Vec3
	Base  mgl32.Mat4
	Angle float32
}

var SpinComponent = NewComponent[Spin]()
