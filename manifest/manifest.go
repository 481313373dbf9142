// Package manifest loads spritesheet manifests: YAML files describing which
// clips to cut from a sheet and how to time them.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/spritestage/render"
	"github.com/milk9111/spritestage/stage"
)

// Manifest describes one spritesheet and the clips cut from it.
type Manifest struct {
	Sheet  string              `yaml:"sheet"`
	FrameW int                 `yaml:"frame_w"`
	FrameH int                 `yaml:"frame_h"`
	Clips  map[string]ClipSpec `yaml:"clips"`
}

// ClipSpec places one clip on the sheet. DurationMs is the accumulated-time
// threshold for a single frame advance.
type ClipSpec struct {
	Row        int     `yaml:"row"`
	ColStart   int     `yaml:"col_start"`
	FrameCount int     `yaml:"frame_count"`
	DurationMs float64 `yaml:"duration_ms"`
	Loop       bool    `yaml:"loop"`
}

// LoadSpec reads and unmarshals a YAML file into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := os.ReadFile(filename)
	if err != nil {
		return zero, fmt.Errorf("manifest: read %s: %w", filename, err)
	}
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("manifest: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// Load reads a manifest file and validates it.
func Load(filename string) (Manifest, error) {
	m, err := LoadSpec[Manifest](filename)
	if err != nil {
		return Manifest{}, err
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, fmt.Errorf("manifest: %s: %w", filename, err)
	}
	return m, nil
}

// Validate checks the manifest is buildable.
func (m Manifest) Validate() error {
	if m.Sheet == "" {
		return fmt.Errorf("missing sheet path")
	}
	if m.FrameW <= 0 || m.FrameH <= 0 {
		return fmt.Errorf("frame size %dx%d must be positive", m.FrameW, m.FrameH)
	}
	if len(m.Clips) == 0 {
		return fmt.Errorf("no clips defined")
	}
	for name, clip := range m.Clips {
		if name == "" {
			return fmt.Errorf("clip with empty name")
		}
		if clip.DurationMs <= 0 {
			return fmt.Errorf("clip %q: duration_ms %v must be positive", name, clip.DurationMs)
		}
		if clip.Row < 0 || clip.ColStart < 0 {
			return fmt.Errorf("clip %q: negative sheet position", name)
		}
	}
	return nil
}

// Build loads the sheet image, slices each clip, and registers the resulting
// definitions in `lib` under their clip names. A clip that yields no frames
// is an error: the manifest points outside its sheet.
func (m Manifest) Build(lib *render.Library) error {
	if lib == nil {
		return fmt.Errorf("manifest: nil library")
	}
	if err := m.Validate(); err != nil {
		return err
	}
	sheet, err := render.LoadImage(m.Sheet)
	if err != nil {
		return fmt.Errorf("manifest: sheet %s: %w", m.Sheet, err)
	}
	for name, clip := range m.Clips {
		frames := render.SliceSheet(sheet, m.FrameW, m.FrameH, clip.Row, clip.ColStart, clip.FrameCount)
		if len(frames) == 0 {
			return fmt.Errorf("manifest: clip %q yields no frames from %s", name, m.Sheet)
		}
		def, err := stage.NewDefinition(frames, clip.DurationMs, clip.Loop)
		if err != nil {
			return fmt.Errorf("manifest: clip %q: %w", name, err)
		}
		lib.Register(name, def)
	}
	return nil
}
