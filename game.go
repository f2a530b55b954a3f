package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/noria/ecs"
	"github.com/milk9111/noria/ecs/component"
	"github.com/milk9111/noria/ecs/entity"
	"github.com/milk9111/noria/prefabs"
	"github.com/milk9111/noria/scene"
	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type GameOptions struct {
	Scene    string
	Exercise int
	Debug    bool
	Watch    bool
	Motion   component.MotionMode
}

type Game struct {
	frames int
	debug  bool

	input     *Input
	scene     *scene.Scene
	exercises *prefabs.ExercisesSpec
	exercise  int
	params    component.Params
	panel     *paramsPanel
	showUI    bool
	sink      *wireframeSink
	watcher   *prefabs.Watcher
	clipboard bool

	width, height int
}

func NewGame(opts GameOptions) (*Game, error) {
	exercises, err := prefabs.LoadExercises()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		debug:     opts.Debug,
		input:     NewInput(),
		exercises: exercises,
		params:    component.DefaultParams(),
		showUI:    true,
		sink:      newWireframeSink(),
		width:     baseWidth,
		height:    baseHeight,
	}
	g.params.Motion = opts.Motion

	if opts.Scene != "" {
		if err := g.loadScene(opts.Scene); err != nil {
			return nil, err
		}
		g.exercise = 0
		g.params.Exercise = 0
	} else {
		if err := g.loadExercise(opts.Exercise); err != nil {
			return nil, err
		}
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher()
		if err != nil {
			log.Printf("game: watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("game: clipboard unavailable: %v", err)
	} else {
		g.clipboard = true
	}
	return g, nil
}

// loadExercise tears the current scene down and builds the one listed for
// number.
func (g *Game) loadExercise(number int) error {
	name, ok := g.exercises.Scene(number)
	if !ok {
		return fmt.Errorf("game: %w: exercise %d", prefabs.ErrUnknownScene, number)
	}
	if err := g.loadScene(name); err != nil {
		return err
	}
	g.exercise = number
	g.params.Exercise = number
	return nil
}

func (g *Game) loadScene(name string) error {
	s, err := scene.Load(name, g.width, g.height)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if g.scene != nil {
		g.scene.Close()
	}
	g.scene = s

	motion, exercise := g.params.Motion, g.params.Exercise
	g.params = s.Defaults
	g.params.Motion, g.params.Exercise = motion, exercise
	g.panel = NewParamsUI(g, g.exercises)
	if g.debug {
		log.Printf("game: loaded scene %s", s.Name)
	}
	return nil
}

func (g *Game) toggleMotion() {
	if g.params.Motion == component.MotionPerFrame {
		g.params.Motion = component.MotionDeltaScaled
	} else {
		g.params.Motion = component.MotionPerFrame
	}
}

func (g *Game) Update() error {
	g.frames++

	g.input.Update()
	if g.showUI {
		g.panel.ui.Update()
	}

	if g.input.ToggleUI {
		g.showUI = !g.showUI
	}
	if g.input.ToggleMotion {
		g.toggleMotion()
	}
	if g.input.Exercise != 0 {
		g.params.Exercise = g.input.Exercise
	}
	if g.params.Exercise != 0 && g.params.Exercise != g.exercise {
		if err := g.loadExercise(g.params.Exercise); err != nil {
			log.Printf("game: %v", err)
			g.params.Exercise = g.exercise
		}
	}

	g.pollWatcher()

	g.scene.HandleMouse(g.input.Mouse)
	if g.input.CopyPose {
		g.copyPose()
	}

	frame := g.scene.Step(1/float64(ebiten.TPS()), g.params)
	for _, evt := range frame.Events {
		g.handleEvent(evt)
	}
	return nil
}

func (g *Game) handleEvent(evt ecs.Event) {
	if evt.Type != component.CameraModeChangedEvent {
		return
	}
	change, ok := evt.Data.(component.CameraModeChanged)
	if !ok {
		return
	}
	g.panel.SetStatus(fmt.Sprintf("camera: %s", change.To))
	if g.debug {
		log.Printf("camera: %s -> %s at %.2fs", change.From, change.To, change.At)
	}
}

// pollWatcher reloads the current scene when its file changes and
// recompiles scripts in place.
func (g *Game) pollWatcher() {
	for {
		path, ok := g.watcher.Poll()
		if !ok {
			return
		}
		if g.debug {
			log.Printf("game: %s changed", path)
		}
		if name := prefabs.ScriptName(path); name != "" {
			if err := g.scene.ReloadScript(name); err != nil {
				log.Printf("game: %v", err)
			}
			continue
		}
		name := prefabs.SceneName(path)
		if name != "" && name != g.scene.Name {
			continue
		}
		if err := g.loadScene(g.scene.Name); err != nil {
			log.Printf("game: reload: %v", err)
		}
	}
}

// copyPose puts the current free-look pose on the clipboard as the yaml
// free_look block of a scene file.
func (g *Game) copyPose() {
	if !g.clipboard {
		return
	}
	pose := map[string]prefabs.FreeLookSpec{"free_look": entity.FreeLookToSpec(g.scene.FreeLook())}
	data, err := yaml.Marshal(pose)
	if err != nil {
		log.Printf("game: copy pose: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.panel.SetStatus("pose copied")
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.sink.Target(screen)
	g.scene.Draw(g.sink)

	if g.showUI {
		g.panel.ui.Draw(screen)
	}

	mode := "free look"
	if rig := g.scene.Rig(); rig != nil {
		mode = rig.Mode.String()
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  camera: %s  motion: %s  draws: %d  FPS: %.2f", g.scene.Name, mode, g.params.Motion, g.sink.draws, ebiten.ActualFPS()), 240, 4)
}

// Layout keeps the logical screen equal to the window and recomputes the
// projection when it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.scene.Resize(g.width, g.height)
	}
	return max(outsideWidth, 1), max(outsideHeight, 1)
}

func (g *Game) Close() {
	var errs []error
	if g.watcher != nil {
		errs = append(errs, g.watcher.Close())
	}
	g.scene.Close()
	if err := errors.Join(errs...); err != nil {
		log.Printf("game: close: %v", err)
	}
}
