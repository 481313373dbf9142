package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/spritestage/config"
	"github.com/milk9111/spritestage/manifest"
	"github.com/milk9111/spritestage/render"
	"github.com/milk9111/spritestage/script"
	"github.com/milk9111/spritestage/stage"
	"github.com/milk9111/spritestage/tween"
)

const (
	baseWidth  = 640
	baseHeight = 360
)

// groupOrder is the back-to-front render order of the demo scene.
var groupOrder = []string{"background", stage.DefaultGroup, "foreground"}

type Game struct {
	registry *stage.EntityRegistry
	pause    *stage.PauseState
	lib      *render.Library
	tweens   *tween.Runner
	director *script.Director
	watcher  *manifest.Watcher
	ui       *ebitenui.UI

	manifestPath string
	clipByEntity map[string]string
	colors       map[string]color.Color
	last         time.Time
	debug        bool
}

// NewGame builds the demo scene: from a manifest when one is given,
// otherwise from a procedurally generated spritesheet.
func NewGame(cfg *config.Config, manifestPath, scriptPath string, debug bool) (*Game, error) {
	g := &Game{
		registry:     stage.NewEntityRegistry(),
		pause:        &stage.PauseState{},
		lib:          render.NewLibrary(),
		tweens:       &tween.Runner{},
		manifestPath: manifestPath,
		clipByEntity: make(map[string]string),
		colors:       render.GroupColors(groupOrder),
		last:         time.Now(),
		debug:        debug,
	}
	g.ui = NewPauseUI(g)

	if err := g.buildScene(cfg); err != nil {
		return nil, err
	}

	if scriptPath != "" {
		src, err := readScript(scriptPath)
		if err != nil {
			return nil, err
		}
		d, err := script.NewDirector(src, g.registry, g.lib)
		if err != nil {
			return nil, err
		}
		g.director = d
	}

	if dirs := watchDirs(manifestPath, scriptPath); len(dirs) > 0 {
		w, err := manifest.NewWatcher(dirs...)
		if err != nil {
			log.Printf("demo: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.last).Seconds()
	g.last = now
	// A long stall (window drag, debugger) must not fast-forward the scene.
	if dt > 0.25 {
		dt = 0.25
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pause.Toggle()
	}

	g.drainWatcher()

	if g.pause.Paused() {
		g.ui.Update()
		return nil
	}

	g.registry.UpdateAll(dt)
	g.tweens.Update(dt)
	if g.director != nil {
		if err := g.director.Update(dt); err != nil {
			log.Printf("demo: %v", err)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x18, G: 0x18, B: 0x20, A: 0xff})

	target := render.NewTarget(screen)
	for _, group := range groupOrder {
		if c, ok := g.colors[group]; ok {
			target.OutlineColor = c
		}
		g.registry.RenderGroup(target, group)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %.1f  entities: %d  paused: %v",
			ebiten.ActualFPS(), g.registry.Len(), g.pause.Paused()))
	}
	if g.pause.Paused() {
		g.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("demo: %s changed", name)
			reload = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("demo: watcher: %v", err)
		default:
			if reload {
				g.reloadClips()
			}
			return
		}
	}
}

// reloadClips rebuilds the library from the manifest and re-attaches every
// entity's clip so edited timings take effect immediately.
func (g *Game) reloadClips() {
	if g.manifestPath == "" {
		return
	}
	m, err := manifest.Load(g.manifestPath)
	if err != nil {
		log.Printf("demo: reload: %v", err)
		return
	}
	if err := m.Build(g.lib); err != nil {
		log.Printf("demo: reload: %v", err)
		return
	}
	for name, clip := range g.clipByEntity {
		e, ok := g.registry.Get(name)
		if !ok {
			continue
		}
		def, found := g.lib.Get(clip)
		if !found {
			continue
		}
		e.SetAnimation(def)
	}
	log.Printf("demo: reloaded %s", g.manifestPath)
}
