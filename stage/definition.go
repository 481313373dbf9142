package stage

import "fmt"

// Frame is a single drawable cell of an animation. Implementations wrap a
// backend image handle; the core only needs the native pixel size.
type Frame interface {
	Size() (w, h int)
}

// AnimationDefinition is an ordered frame sequence with a frame-advance
// threshold and a default loop flag. Definitions are immutable once built and
// may be shared by any number of entities; entities never write to them.
//
// DurationMs is the accumulated-time threshold for a single frame advance,
// not the length of a full cycle. A 4-frame definition with DurationMs 100
// takes 400ms to wrap.
type AnimationDefinition struct {
	frames     []Frame
	durationMs float64
	loop       bool
}

// NewDefinition creates an AnimationDefinition. `frames` may be empty (the
// definition is then unplayable and attaching it leaves an entity static).
// `durationMs` must be positive.
func NewDefinition(frames []Frame, durationMs float64, loop bool) (*AnimationDefinition, error) {
	if durationMs <= 0 {
		return nil, fmt.Errorf("stage: definition duration must be positive, got %v", durationMs)
	}
	d := &AnimationDefinition{
		frames:     make([]Frame, len(frames)),
		durationMs: durationMs,
		loop:       loop,
	}
	copy(d.frames, frames)
	return d, nil
}

// FrameCount returns the number of frames in the sequence.
func (d *AnimationDefinition) FrameCount() int {
	if d == nil {
		return 0
	}
	return len(d.frames)
}

// Frame returns the frame at index i, or nil if out of range.
func (d *AnimationDefinition) Frame(i int) Frame {
	if d == nil || i < 0 || i >= len(d.frames) {
		return nil
	}
	return d.frames[i]
}

// DurationMs returns the frame-advance threshold in milliseconds.
func (d *AnimationDefinition) DurationMs() float64 {
	if d == nil {
		return 0
	}
	return d.durationMs
}

// Loop returns the default loop flag copied into playback state at attach.
func (d *AnimationDefinition) Loop() bool {
	if d == nil {
		return false
	}
	return d.loop
}
