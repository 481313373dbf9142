package render

import (
	"image/color"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// GroupColors assigns each group name a distinct debug-outline color by
// spacing hues evenly around the wheel. Names are sorted first so the
// assignment is stable across runs.
func GroupColors(groups []string) map[string]color.Color {
	if len(groups) == 0 {
		return nil
	}
	sorted := make([]string, len(groups))
	copy(sorted, groups)
	sort.Strings(sorted)

	out := make(map[string]color.Color, len(sorted))
	step := 360.0 / float64(len(sorted))
	for i, g := range sorted {
		out[g] = colorful.Hsv(float64(i)*step, 0.85, 0.9)
	}
	return out
}
