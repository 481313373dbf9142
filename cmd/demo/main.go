package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/spritestage/config"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (optional)")
	manifestPath := flag.String("manifest", "", "spritesheet manifest to load instead of the built-in scene")
	scriptPath := flag.String("script", "", "tengo cue script driving the scene (optional)")
	debug := flag.Bool("debug", false, "draw entity outlines and the HUD")
	flag.Parse()

	var cfg *config.Config
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = c
	}

	game, err := NewGame(cfg, *manifestPath, *scriptPath, *debug)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Int("window.width", 1280), cfg.Int("window.height", 720))
	ebiten.SetWindowTitle(cfg.String("window.title", "spritestage demo"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
