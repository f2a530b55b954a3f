package component

import "github.com/go-gl/mathgl/mgl32"

// CameraMode is the state of the look-at camera machine.
type CameraMode uint8

const (
	CameraBoot1 CameraMode = iota
	CameraBoot2
	CameraFocusA
	CameraFocusB
)

func (m CameraMode) String() string {
	switch m {
	case CameraBoot1:
		return "boot1"
	case CameraBoot2:
		return "boot2"
	case CameraFocusA:
		return "focus_a"
	case CameraFocusB:
		return "focus_b"
	}
	return "unknown"
}

// Booting reports whether the free-look pose is still in charge.
func (m CameraMode) Booting() bool {
	return m == CameraBoot1 || m == CameraBoot2
}

// CameraRig alternates the look-at target between FocusA and FocusB every
// Interval seconds. The eye sits at EyeOffset from the entity that is not
// focused.
type CameraRig struct {
	FocusA        string
	FocusB        string
	Interval      float64
	EyeOffset     mgl32.Vec3
	TargetOffsets map[string]mgl32.Vec3

	Mode     CameraMode
	Timer    float64
	Switches int

	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
}

// Focused returns the names of the focused and the other entity.
func (c *CameraRig) Focused() (focused, other string) {
	if c == nil {
		return "", ""
	}
	if c.Mode == CameraFocusB {
		return c.FocusB, c.FocusA
	}
	return c.FocusA, c.FocusB
}

var CameraRigComponent = NewComponent[CameraRig]()

// CameraModeChanged is pushed on the world event queue on each transition.
type CameraModeChanged struct {
	From CameraMode
	To   CameraMode
	At   float64
}

const CameraModeChangedEvent = "camera_mode_changed"
