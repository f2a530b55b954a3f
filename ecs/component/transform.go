package component

import "github.com/go-gl/mathgl/mgl32"

// Transform is an entity's model matrix. Motion systems compose relative
// changes onto it; nothing recomputes it from scratch after the build.
type Transform struct {
	Matrix mgl32.Mat4
}

// Translation returns the translation column of the matrix.
func (t *Transform) Translation() mgl32.Vec3 {
	if t == nil {
		return mgl32.Vec3{}
	}
	return t.Matrix.Col(3).Vec3()
}

var TransformComponent = NewComponent[Transform]()
