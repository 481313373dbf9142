package render

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/spritestage/common"
	"github.com/milk9111/spritestage/stage"
)

type drawState struct {
	geom  ebiten.GeoM
	alpha float64
}

// Target implements stage.Surface on top of an *ebiten.Image. Transform and
// alpha are kept in an explicit save stack so Push/Pop scoping holds no
// matter what an entity render does in between.
type Target struct {
	dst   *ebiten.Image
	state drawState
	stack []drawState

	// OutlineColor is the stroke color for debug outlines.
	OutlineColor color.Color
}

// NewTarget creates a Target drawing onto `dst` with an identity transform
// and full alpha.
func NewTarget(dst *ebiten.Image) *Target {
	return &Target{
		dst:          dst,
		state:        drawState{alpha: 1},
		OutlineColor: color.RGBA{G: 0xff, A: 0xff},
	}
}

// Push saves the current transform and alpha.
func (t *Target) Push() {
	if t == nil {
		return
	}
	t.stack = append(t.stack, t.state)
}

// Pop restores the most recently pushed transform and alpha.
func (t *Target) Pop() {
	if t == nil {
		return
	}
	if len(t.stack) == 0 {
		log.Printf("render: pop on empty surface stack")
		return
	}
	t.state = t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
}

// Translate moves the origin by (x, y) in the current coordinate space.
func (t *Target) Translate(x, y float64) {
	if t == nil {
		return
	}
	var m ebiten.GeoM
	m.Translate(x, y)
	m.Concat(t.state.geom)
	t.state.geom = m
}

// Rotate rotates the coordinate space around the current origin.
func (t *Target) Rotate(radians float64) {
	if t == nil {
		return
	}
	var m ebiten.GeoM
	m.Rotate(radians)
	m.Concat(t.state.geom)
	t.state.geom = m
}

// SetAlpha sets the global alpha for subsequent draws.
func (t *Target) SetAlpha(alpha float64) {
	if t == nil {
		return
	}
	t.state.alpha = common.Clamp(alpha, 0, 1)
}

// DrawFrameCentered draws `f` centered on the current origin at the given
// size. Frames that don't carry an ebiten image are skipped.
func (t *Target) DrawFrameCentered(f stage.Frame, width, height float64) {
	if t == nil || t.dst == nil {
		return
	}
	carrier, ok := f.(interface{ Image() *ebiten.Image })
	if !ok || carrier.Image() == nil {
		if stage.Trace {
			log.Printf("render: frame %T carries no image, skipping", f)
		}
		return
	}
	img := carrier.Image()
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 || width <= 0 || height <= 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(width/float64(b.Dx()), height/float64(b.Dy()))
	op.GeoM.Translate(-width/2, -height/2)
	op.GeoM.Concat(t.state.geom)
	op.ColorScale.ScaleAlpha(float32(t.state.alpha))
	op.Filter = ebiten.FilterNearest
	t.dst.DrawImage(img, op)
}

// StrokeRect outlines a rectangle in the current coordinate space. The four
// corners go through the transform individually so rotated outlines stay
// attached to their entity.
func (t *Target) StrokeRect(x, y, width, height float64) {
	if t == nil || t.dst == nil {
		return
	}
	x0, y0 := t.state.geom.Apply(x, y)
	x1, y1 := t.state.geom.Apply(x+width, y)
	x2, y2 := t.state.geom.Apply(x+width, y+height)
	x3, y3 := t.state.geom.Apply(x, y+height)

	c := t.OutlineColor
	if c == nil {
		c = color.RGBA{G: 0xff, A: 0xff}
	}
	vector.StrokeLine(t.dst, float32(x0), float32(y0), float32(x1), float32(y1), 1, c, false)
	vector.StrokeLine(t.dst, float32(x1), float32(y1), float32(x2), float32(y2), 1, c, false)
	vector.StrokeLine(t.dst, float32(x2), float32(y2), float32(x3), float32(y3), 1, c, false)
	vector.StrokeLine(t.dst, float32(x3), float32(y3), float32(x0), float32(y0), 1, c, false)
}
