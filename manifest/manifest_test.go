package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleManifest = `
sheet: bunny.png
frame_w: 32
frame_h: 32
clips:
  hop:
    row: 0
    frame_count: 4
    duration_ms: 120
    loop: true
  sit:
    row: 1
    col_start: 2
    frame_count: 1
    duration_ms: 500
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bunny.yaml", sampleManifest)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Sheet != "bunny.png" || m.FrameW != 32 || m.FrameH != 32 {
		t.Fatalf("sheet fields wrong: %+v", m)
	}
	hop, ok := m.Clips["hop"]
	if !ok {
		t.Fatalf("missing hop clip")
	}
	if hop.FrameCount != 4 || hop.DurationMs != 120 || !hop.Loop {
		t.Fatalf("hop clip wrong: %+v", hop)
	}
	sit := m.Clips["sit"]
	if sit.Row != 1 || sit.ColStart != 2 || sit.Loop {
		t.Fatalf("sit clip wrong: %+v", sit)
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	valid := Manifest{
		Sheet:  "s.png",
		FrameW: 16,
		FrameH: 16,
		Clips:  map[string]ClipSpec{"walk": {FrameCount: 2, DurationMs: 100}},
	}

	cases := []struct {
		name   string
		mutate func(m *Manifest)
		ok     bool
	}{
		{"valid", func(m *Manifest) {}, true},
		{"no_sheet", func(m *Manifest) { m.Sheet = "" }, false},
		{"zero_frame_w", func(m *Manifest) { m.FrameW = 0 }, false},
		{"negative_frame_h", func(m *Manifest) { m.FrameH = -4 }, false},
		{"no_clips", func(m *Manifest) { m.Clips = nil }, false},
		{"zero_duration", func(m *Manifest) {
			m.Clips = map[string]ClipSpec{"walk": {FrameCount: 2}}
		}, false},
		{"negative_row", func(m *Manifest) {
			m.Clips = map[string]ClipSpec{"walk": {Row: -1, FrameCount: 2, DurationMs: 100}}
		}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := valid
			c.mutate(&m)
			err := m.Validate()
			if c.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !c.ok && err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestWatcherReportsManifestChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	writeFile(t, dir, "scene.yaml", sampleManifest)

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "scene.yaml" {
			t.Fatalf("unexpected event %s", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for manifest write")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	writeFile(t, dir, "notes.txt", "not a manifest")

	select {
	case name := <-w.Events:
		t.Fatalf("unexpected event for %s", name)
	case <-time.After(300 * time.Millisecond):
	}
}
