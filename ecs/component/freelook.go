package component

import "github.com/go-gl/mathgl/mgl32"

// FreeLook is the mouse-driven camera: translate by Pan, then rotate by
// Rotate[1] about X and Rotate[0] about Y.
type FreeLook struct {
	Pan    mgl32.Vec3
	Rotate mgl32.Vec2

	last     mgl32.Vec2
	button   MouseButton
	wasPress bool
}

// Baseline returns the last sample and the button it was tagged with.
func (f *FreeLook) Baseline() (mgl32.Vec2, MouseButton, bool) {
	return f.last, f.button, f.wasPress
}

// SetBaseline records a sample as the reference for the next delta.
func (f *FreeLook) SetBaseline(pos mgl32.Vec2, button MouseButton) {
	f.last = pos
	f.button = button
	f.wasPress = true
}

// Track moves the baseline without changing the button.
func (f *FreeLook) Track(pos mgl32.Vec2) {
	f.last = pos
}

var FreeLookComponent = NewComponent[FreeLook]()
