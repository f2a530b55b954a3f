package system

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Default perspective parameters.
const (
	DefaultFOV  = 65
	DefaultNear = 1
	DefaultFar  = 50
)

// Projection holds the perspective parameters and the matrix derived from
// the last resize.
type Projection struct {
	FOV    float32 // degrees
	Near   float32
	Far    float32
	Aspect float32
	Matrix mgl32.Mat4
}

// NewProjection returns a projection for a width x height viewport. Zero
// parameters take the defaults.
func NewProjection(fov, near, far float32, width, height int) *Projection {
	if fov <= 0 {
		fov = DefaultFOV
	}
	if near <= 0 {
		near = DefaultNear
	}
	if far <= near {
		far = DefaultFar
	}
	p := &Projection{FOV: fov, Near: near, Far: far}
	p.Resize(width, height)
	return p
}

// Resize recomputes the matrix for a new viewport. A zero height yields
// aspect 0.
func (p *Projection) Resize(width, height int) {
	if p == nil {
		return
	}
	p.Aspect = 0
	if height > 0 && width > 0 {
		p.Aspect = float32(width) / float32(height)
	}
	p.Matrix = Perspective(p.FOV, p.Aspect, p.Near, p.Far)
}

// Perspective is mgl32.Perspective with fov in degrees. Aspect 0 collapses
// the x axis instead of dividing by zero.
func Perspective(fovDeg, aspect, near, far float32) mgl32.Mat4 {
	if aspect > 0 {
		return mgl32.Perspective(mgl32.DegToRad(fovDeg), aspect, near, far)
	}
	m := mgl32.Perspective(mgl32.DegToRad(fovDeg), 1, near, far)
	m[0] = 0
	return m
}

// Compose returns projection * view.
func Compose(projection, view mgl32.Mat4) mgl32.Mat4 {
	return projection.Mul4(view)
}
