package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sample = `
window:
  width: 1280
  title: demo
demo:
  bunny:
    scale: 2.5
    loop: true
  duration_ms: 300
`

func mustParse(t *testing.T) *Config {
	t.Helper()
	c, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return c
}

func TestLookupTypedWithDefaults(t *testing.T) {
	c := mustParse(t)

	cases := []struct {
		name string
		got  any
		want any
	}{
		{"int_present", c.Int("window.width", 0), 1280},
		{"int_absent", c.Int("window.height", 720), 720},
		{"float_present", c.Float("demo.bunny.scale", 1), 2.5},
		{"float_from_int", c.Float("demo.duration_ms", 0), 300.0},
		{"float_absent", c.Float("demo.tree.scale", 1.5), 1.5},
		{"string_present", c.String("window.title", ""), "demo"},
		{"string_wrong_type", c.String("window.width", "fallback"), "fallback"},
		{"bool_present", c.Bool("demo.bunny.loop", false), true},
		{"bool_absent", c.Bool("demo.bunny.oneshot", true), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Fatalf("got %v, want %v", tc.got, tc.want)
			}
		})
	}
}

func TestLookupPathEdges(t *testing.T) {
	c := mustParse(t)

	if _, ok := c.Lookup(""); ok {
		t.Fatalf("empty path resolved")
	}
	if _, ok := c.Lookup("window.width.deeper"); ok {
		t.Fatalf("path through a scalar resolved")
	}
	if _, ok := c.Lookup("missing.key"); ok {
		t.Fatalf("missing path resolved")
	}

	var nilConfig *Config
	if nilConfig.Float("a.b", 4) != 4 {
		t.Fatalf("nil config did not fall back to default")
	}
}

func TestLoadFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Int("window.width", 0) != 1280 {
		t.Fatalf("loaded config missing values")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("window: [unclosed")); err == nil {
		t.Fatalf("expected parse error")
	}
}
