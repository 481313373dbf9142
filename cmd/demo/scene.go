package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/fogleman/ease"
	"github.com/hajimehoshi/ebiten/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/milk9111/spritestage/config"
	"github.com/milk9111/spritestage/manifest"
	"github.com/milk9111/spritestage/render"
	"github.com/milk9111/spritestage/stage"
	"github.com/milk9111/spritestage/tween"
)

// buildScene populates the registry. With a manifest the scene uses its
// clips; without one it slices a procedurally generated sheet so the demo
// runs with no assets on disk.
func (g *Game) buildScene(cfg *config.Config) error {
	if g.manifestPath != "" {
		m, err := manifest.Load(g.manifestPath)
		if err != nil {
			return err
		}
		if err := m.Build(g.lib); err != nil {
			return err
		}
	} else {
		g.buildProceduralClips()
	}

	clips := g.lib.Keys()
	if len(clips) == 0 {
		return fmt.Errorf("demo: no clips available")
	}

	// One looping entity per clip, spread across the screen, alternating
	// between the background and default groups.
	x := cfg.Float("demo.start_x", 80)
	y := cfg.Float("demo.start_y", baseHeight/2)
	spacing := cfg.Float("demo.spacing", 96)
	scale := cfg.Float("demo.scale", 2)

	for i, clip := range clips {
		def, _ := g.lib.Get(clip)
		e := stage.NewAnimatedEntity(x+float64(i)*spacing, y, def)
		e.Scale = scale
		e.DebugOutline = g.debug
		e.Opacity = 0

		name := fmt.Sprintf("sprite-%s", clip)
		group := stage.DefaultGroup
		if i%2 == 1 {
			group = "background"
		}
		g.registry.Add(name, e, group)
		g.clipByEntity[name] = clip

		// Staggered fade-in.
		g.tweens.Add(tween.Opacity(e, 0, 1, 0.6+0.2*float64(i), ease.OutCubic))
	}

	// A one-shot burst in the foreground that pops in and holds its last
	// frame.
	first := clips[0]
	def, _ := g.lib.Get(first)
	burst := stage.NewAnimatedEntity(baseWidth/2, 80, def)
	burst.Scale = scale
	burst.DebugOutline = g.debug
	burst.StartAnimation(false)
	g.registry.Add("burst", burst, "foreground")
	g.clipByEntity["burst"] = first
	g.tweens.Add(tween.Scale(burst, 0.2, scale, 0.8, ease.OutElastic))

	return nil
}

// buildProceduralClips fills the library from a generated two-row sheet of
// hue-shifted squares: row 0 becomes "pulse", row 1 becomes "drift".
func (g *Game) buildProceduralClips() {
	const (
		frameW = 32
		frameH = 32
		cols   = 4
		rows   = 2
	)
	sheet := ebiten.NewImage(frameW*cols, frameH*rows)
	for i := 0; i < cols*rows; i++ {
		c := colorful.Hsv(float64(i)*(360.0/float64(cols*rows)), 0.7, 0.95)
		sx := (i % cols) * frameW
		sy := (i / cols) * frameH
		sub := sheet.SubImage(image.Rect(sx, sy, sx+frameW, sy+frameH)).(*ebiten.Image)
		sub.Fill(c)
	}
	render.RegisterImage("procedural", sheet)

	m := manifest.Manifest{
		Sheet:  "procedural",
		FrameW: frameW,
		FrameH: frameH,
		Clips: map[string]manifest.ClipSpec{
			"pulse": {Row: 0, FrameCount: cols, DurationMs: 150, Loop: true},
			"drift": {Row: 1, FrameCount: cols, DurationMs: 400, Loop: true},
		},
	}
	if err := m.Build(g.lib); err != nil {
		// The generated sheet always matches the manifest; failure here is a
		// programming error.
		panic(err)
	}
}

func readScript(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("demo: read script %s: %w", path, err)
	}
	return data, nil
}

func watchDirs(paths ...string) []string {
	seen := map[string]bool{}
	var dirs []string
	for _, p := range paths {
		if p == "" {
			continue
		}
		dir := filepath.Dir(p)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
