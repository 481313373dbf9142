package stage

import "log"

// Trace enables per-frame diagnostic logging for skipped renders. Off by
// default so a scene full of hidden entities doesn't flood the log.
var Trace bool

// playback is the per-entity animation clock. It exists only while a playable
// definition is attached, so a static sprite has no frame index at all rather
// than a frame index of zero. The loop flag is a private copy taken from the
// definition, so restarting one entity as a one-shot never affects other
// entities sharing the same definition.
type playback struct {
	frame     int
	elapsedMs float64
	loop      bool
	done      bool
}

// AnimatedEntity owns a 2D position, a visual transform, and an optional
// frame-animation state driven by elapsed time. The zero value is not usable;
// create entities with NewEntity or NewAnimatedEntity.
type AnimatedEntity struct {
	X, Y         float64
	Scale        float64
	Rotation     float64 // radians
	Opacity      float64 // 0..1, applied as a global alpha
	Visible      bool
	DebugOutline bool

	def     *AnimationDefinition
	pb      *playback
	current Frame
}

// NewEntity creates a static entity at (x, y) with no animation attached.
func NewEntity(x, y float64) *AnimatedEntity {
	return &AnimatedEntity{
		X:       x,
		Y:       y,
		Scale:   1,
		Opacity: 1,
		Visible: true,
	}
}

// NewAnimatedEntity creates an entity at (x, y) with `def` attached.
func NewAnimatedEntity(x, y float64, def *AnimationDefinition) *AnimatedEntity {
	e := NewEntity(x, y)
	e.SetAnimation(def)
	return e
}

// SetAnimation attaches `def` and resets playback to frame 0, elapsed 0. A
// nil or empty definition detaches animation entirely; the entity keeps
// drawing whatever frame it last showed.
func (e *AnimatedEntity) SetAnimation(def *AnimationDefinition) {
	if e == nil {
		return
	}
	if def == nil || def.FrameCount() == 0 {
		e.def = nil
		e.pb = nil
		return
	}
	e.def = def
	e.pb = &playback{loop: def.Loop()}
	e.current = def.Frame(0)
}

// StartAnimation rewinds playback to frame 0 and sets this entity's loop
// flag. Starting an entity whose definition has fewer than two frames is a
// warning-level no-op: there is nothing to play.
func (e *AnimatedEntity) StartAnimation(loop bool) {
	if e == nil {
		return
	}
	if e.def == nil || e.def.FrameCount() <= 1 {
		log.Printf("stage: start animation ignored: definition has %d frame(s)", e.def.FrameCount())
		return
	}
	e.pb = &playback{loop: loop}
	e.current = e.def.Frame(0)
}

// StopAnimation rewinds playback to frame 0 and restores the first frame.
// No-op when no animation is attached.
func (e *AnimatedEntity) StopAnimation() {
	if e == nil || e.def == nil || e.pb == nil {
		return
	}
	e.pb.frame = 0
	e.pb.elapsedMs = 0
	e.pb.done = false
	e.current = e.def.Frame(0)
}

// Update accumulates `dt` (seconds) into the playback clock and advances at
// most one frame once the accumulated time crosses the definition threshold.
// Overshoot beyond the threshold is dropped rather than carried forward.
// No-op unless a multi-frame definition is attached and still playing.
func (e *AnimatedEntity) Update(dt float64) {
	if e == nil || e.def == nil || e.pb == nil || e.def.FrameCount() <= 1 {
		return
	}
	if e.pb.done || dt < 0 {
		return
	}
	e.pb.elapsedMs += dt * 1000
	if e.pb.elapsedMs < e.def.durationMs {
		return
	}
	e.pb.elapsedMs = 0
	next := e.pb.frame + 1
	if next >= e.def.FrameCount() {
		if e.pb.loop {
			next = 0
		} else {
			// One-shot: hold the last frame and stop the clock.
			next = e.def.FrameCount() - 1
			e.pb.done = true
		}
	}
	e.pb.frame = next
	e.current = e.def.Frame(next)
}

// Render draws the current frame centered on the entity position, applying
// opacity, scale, and rotation inside a Push/Pop scope so no surface state
// leaks into the next entity's draw. Invisible or frameless entities issue
// zero surface calls.
func (e *AnimatedEntity) Render(s Surface) {
	if e == nil || s == nil {
		return
	}
	if !e.Visible || e.current == nil {
		if Trace {
			log.Printf("stage: render skipped: visible=%v frame=%v", e.Visible, e.current != nil)
		}
		return
	}
	fw, fh := e.current.Size()
	w := float64(fw) * e.Scale
	h := float64(fh) * e.Scale

	s.Push()
	s.SetAlpha(e.Opacity)
	s.Translate(e.X, e.Y)
	if e.Rotation != 0 {
		s.Rotate(e.Rotation)
	}
	s.DrawFrameCentered(e.current, w, h)
	if e.DebugOutline {
		s.StrokeRect(-w/2, -h/2, w, h)
	}
	s.Pop()
}

// SetPosition moves the entity. No validation.
func (e *AnimatedEntity) SetPosition(x, y float64) {
	if e == nil {
		return
	}
	e.X = x
	e.Y = y
}

// Bounds returns the axis-aligned rectangle of the current frame at the
// current scale, centered on the entity position. A frameless entity yields
// a zero-size rectangle at its position.
func (e *AnimatedEntity) Bounds() Rect {
	if e == nil {
		return Rect{}
	}
	if e.current == nil {
		return Rect{X: e.X, Y: e.Y}
	}
	fw, fh := e.current.Size()
	w := float64(fw) * e.Scale
	h := float64(fh) * e.Scale
	return Rect{X: e.X - w/2, Y: e.Y - h/2, Width: w, Height: h}
}

// CurrentFrame returns the frame the next Render call would draw, or nil.
func (e *AnimatedEntity) CurrentFrame() Frame {
	if e == nil {
		return nil
	}
	return e.current
}

// FrameIndex returns the playback frame index, or -1 when no animation is
// attached.
func (e *AnimatedEntity) FrameIndex() int {
	if e == nil || e.pb == nil {
		return -1
	}
	return e.pb.frame
}

// ElapsedMs returns the accumulated time toward the next frame advance, or 0
// when no animation is attached.
func (e *AnimatedEntity) ElapsedMs() float64 {
	if e == nil || e.pb == nil {
		return 0
	}
	return e.pb.elapsedMs
}

// Playing reports whether Update calls can still advance frames.
func (e *AnimatedEntity) Playing() bool {
	if e == nil || e.def == nil || e.pb == nil {
		return false
	}
	return e.def.FrameCount() > 1 && !e.pb.done
}
