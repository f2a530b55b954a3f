package main

import (
	"os"

	uiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/noria/ecs/component"
)

// Input holds the per-frame input the viewer reacts to.
type Input struct {
	// Mouse is the cursor sample tagged with the held button, if any.
	Mouse component.MouseEvent
	// Exercise is the number key pressed this frame, 0 for none.
	Exercise int
	// CopyPose is true on the frame C was pressed.
	CopyPose bool
	// ToggleUI is true on the frame H was pressed.
	ToggleUI bool
	// ToggleMotion is true on the frame M was pressed.
	ToggleMotion bool
}

func NewInput() *Input {
	return &Input{}
}

var exerciseKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6}

// Update polls mouse and keyboard. Clicks that land on the parameter panel
// are not reported as camera drags.
func (i *Input) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	mx, my := ebiten.CursorPosition()
	i.Mouse = component.MouseEvent{X: float32(mx), Y: float32(my), Button: heldButton()}
	if uiinput.UIHovered {
		i.Mouse.Button = component.MouseNone
	}

	i.Exercise = 0
	for n, key := range exerciseKeys {
		if inpututil.IsKeyJustPressed(key) {
			i.Exercise = n + 1
		}
	}
	i.CopyPose = inpututil.IsKeyJustPressed(ebiten.KeyC)
	i.ToggleUI = inpututil.IsKeyJustPressed(ebiten.KeyH)
	i.ToggleMotion = inpututil.IsKeyJustPressed(ebiten.KeyM)
}

func heldButton() component.MouseButton {
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		return component.MouseLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		return component.MouseRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		return component.MouseMiddle
	}
	return component.MouseNone
}
