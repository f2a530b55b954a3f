package component

import "github.com/go-gl/mathgl/mgl32"

// Appearance is what the draw boundary needs besides the model matrix.
type Appearance struct {
	Mesh    string
	Color   mgl32.Vec4
	Shader  string
	Hidden  bool
	Scalars map[string]float32
}

var AppearanceComponent = NewComponent[Appearance]()
