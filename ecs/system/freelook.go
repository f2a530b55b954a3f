package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/noria/ecs/component"
)

// Mouse sensitivities per pixel.
const (
	RotateSensitivity = 0.005
	PanSensitivity    = 0.03
	ZoomSensitivity   = 0.05
)

// DefaultPan is the free-look start position.
var DefaultPan = mgl32.Vec3{0, -5, -15}

// FreeLookView is Translate(pan) * RotX(rotate[1]) * RotY(rotate[0]).
func FreeLookView(f *component.FreeLook) mgl32.Mat4 {
	if f == nil {
		return mgl32.Ident4()
	}
	return mgl32.Translate3D(f.Pan[0], f.Pan[1], f.Pan[2]).
		Mul4(mgl32.HomogRotate3DX(f.Rotate[1])).
		Mul4(mgl32.HomogRotate3DY(f.Rotate[0]))
}

// ApplyMouse updates the free-look pose from one sample. A delta is applied
// only when the previous sample carried the same button; otherwise the
// sample just becomes the new baseline. It reports whether the pose moved.
func ApplyMouse(f *component.FreeLook, ev component.MouseEvent) bool {
	if f == nil {
		return false
	}
	pos := mgl32.Vec2{ev.X, ev.Y}
	last, button, pressed := f.Baseline()
	if ev.Button == component.MouseNone || !pressed || button != ev.Button {
		f.SetBaseline(pos, ev.Button)
		return false
	}

	d := pos.Sub(last)
	switch ev.Button {
	case component.MouseLeft:
		f.Rotate = f.Rotate.Add(d.Mul(RotateSensitivity))
	case component.MouseRight:
		f.Pan[0] += d[0] * PanSensitivity
		f.Pan[1] -= d[1] * PanSensitivity
	case component.MouseMiddle:
		f.Pan[2] += d[1] * ZoomSensitivity
	}
	f.Track(pos)
	return d != (mgl32.Vec2{})
}
