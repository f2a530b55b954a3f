package component

import "github.com/go-gl/mathgl/mgl32"

// DefaultBatchCount and DefaultBatchStep lay out one instance every 18
// degrees, a full ring of carriages.
const (
	DefaultBatchCount = 20
	DefaultBatchStep  = 18
)

// Batch evaluates a single orbit template at Count phase offsets each frame.
// The entity's Orbit supplies the shape and the angle accumulator and its
// Transform supplies the per-instance rotation and scale.
type Batch struct {
	Count int
	Step  float32 // degrees between instances

	Phases    []float32
	Instances []mgl32.Mat4
}

var BatchComponent = NewComponent[Batch]()
