// Package tween drives entity transform properties toward targets over time
// with easing curves, for fades, pop-ins, and scripted movement.
package tween

import (
	"github.com/fogleman/ease"

	"github.com/milk9111/spritestage/common"
	"github.com/milk9111/spritestage/stage"
)

// Tween applies an eased progress value to a target property once per tick.
type Tween struct {
	duration float64 // seconds
	elapsed  float64
	fn       func(float64) float64
	apply    func(progress float64)
	done     bool
}

// New creates a tween running for `duration` seconds. `fn` maps linear
// progress 0..1 onto eased progress (ease.Linear when nil) and `apply`
// receives the eased value each update. A non-positive duration completes on
// the first update.
func New(duration float64, fn func(float64) float64, apply func(float64)) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	return &Tween{duration: duration, fn: fn, apply: apply}
}

// Update advances the tween by `dt` seconds and reports completion. The final
// update always applies exactly progress 1, so targets land on their end
// value regardless of tick jitter.
func (t *Tween) Update(dt float64) bool {
	if t == nil || t.done {
		return true
	}
	t.elapsed += dt
	p := 1.0
	if t.duration > 0 {
		p = common.Clamp(t.elapsed/t.duration, 0, 1)
	}
	if t.apply != nil {
		t.apply(t.fn(p))
	}
	if t.elapsed >= t.duration {
		t.done = true
	}
	return t.done
}

// Done reports whether the tween has completed.
func (t *Tween) Done() bool {
	return t == nil || t.done
}

// Opacity tweens e.Opacity from `from` to `to`.
func Opacity(e *stage.AnimatedEntity, from, to, duration float64, fn func(float64) float64) *Tween {
	return New(duration, fn, func(p float64) {
		if e == nil {
			return
		}
		e.Opacity = common.Lerp(from, to, p)
	})
}

// Scale tweens e.Scale from `from` to `to`.
func Scale(e *stage.AnimatedEntity, from, to, duration float64, fn func(float64) float64) *Tween {
	return New(duration, fn, func(p float64) {
		if e == nil {
			return
		}
		e.Scale = common.Lerp(from, to, p)
	})
}

// Move tweens the entity position along the straight line between two points.
func Move(e *stage.AnimatedEntity, fromX, fromY, toX, toY, duration float64, fn func(float64) float64) *Tween {
	return New(duration, fn, func(p float64) {
		if e == nil {
			return
		}
		e.SetPosition(common.Lerp(fromX, toX, p), common.Lerp(fromY, toY, p))
	})
}

// Runner updates a set of tweens and drops the finished ones.
type Runner struct {
	tweens []*Tween
}

// Add registers a tween with the runner.
func (r *Runner) Add(t *Tween) {
	if r == nil || t == nil {
		return
	}
	r.tweens = append(r.tweens, t)
}

// Update advances every live tween by `dt` seconds.
func (r *Runner) Update(dt float64) {
	if r == nil {
		return
	}
	live := r.tweens[:0]
	for _, t := range r.tweens {
		if !t.Update(dt) {
			live = append(live, t)
		}
	}
	r.tweens = live
}

// Len returns the number of tweens still running.
func (r *Runner) Len() int {
	if r == nil {
		return 0
	}
	return len(r.tweens)
}
