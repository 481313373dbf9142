// Package config resolves tunables from a YAML document through dotted-path
// lookup with fallback defaults, e.g. Float("demo.bunny.scale", 1).
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is a loaded configuration document.
type Config struct {
	root map[string]any
}

// Load reads and parses a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Parse parses YAML config bytes.
func Parse(data []byte) (*Config, error) {
	root := map[string]any{}
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return &Config{root: root}, nil
}

// Lookup walks a dotted path ("window.width") through nested mappings.
func (c *Config) Lookup(path string) (any, bool) {
	if c == nil || path == "" {
		return nil, false
	}
	var cur any = c.root
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Float returns the float at `path`, or `def` when absent or not numeric.
func (c *Config) Float(path string, def float64) float64 {
	v, ok := c.Lookup(path)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return def
}

// Int returns the integer at `path`, or `def` when absent or not an integer.
func (c *Config) Int(path string, def int) int {
	v, ok := c.Lookup(path)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	}
	return def
}

// String returns the string at `path`, or `def`.
func (c *Config) String(path, def string) string {
	v, ok := c.Lookup(path)
	if !ok {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return def
}

// Bool returns the bool at `path`, or `def`.
func (c *Config) Bool(path string, def bool) bool {
	v, ok := c.Lookup(path)
	if !ok {
		return def
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}
