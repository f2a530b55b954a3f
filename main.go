package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/noria/ecs/component"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	sceneName := flag.String("scene", "", "scene name in prefabs/scenes/ (basename, .yaml optional); overrides -exercise")
	exercise := flag.Int("exercise", 1, "exercise number from prefabs/exercises.yaml")
	watch := flag.Bool("watch", false, "reload scenes and scripts when files under prefabs/ change")
	dtScaled := flag.Bool("dt-scaled", false, "scale motion by frame time instead of stepping once per frame")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("noria")

	motion := component.MotionPerFrame
	if *dtScaled {
		motion = component.MotionDeltaScaled
	}

	game, err := NewGame(GameOptions{
		Scene:    *sceneName,
		Exercise: *exercise,
		Debug:    *debug,
		Watch:    *watch,
		Motion:   motion,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
