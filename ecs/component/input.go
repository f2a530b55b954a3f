package component

// MouseButton tags a mouse sample with the button held while it was taken.
type MouseButton uint8

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseRight
	MouseMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	}
	return "none"
}

// MouseEvent is one cursor sample in window pixels.
type MouseEvent struct {
	X      float32
	Y      float32
	Button MouseButton
}
