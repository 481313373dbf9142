package tween

import (
	"math"
	"testing"

	"github.com/fogleman/ease"

	"github.com/milk9111/spritestage/stage"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestOpacityLinear(t *testing.T) {
	e := stage.NewEntity(0, 0)
	e.Opacity = 0

	tw := Opacity(e, 0, 1, 1, ease.Linear)
	if tw.Update(0.25) {
		t.Fatalf("done after 0.25s of a 1s tween")
	}
	if !almost(e.Opacity, 0.25) {
		t.Fatalf("opacity=%v, want 0.25", e.Opacity)
	}

	tw.Update(0.25)
	if !almost(e.Opacity, 0.5) {
		t.Fatalf("opacity=%v, want 0.5", e.Opacity)
	}

	if !tw.Update(10) {
		t.Fatalf("tween not done after overshoot")
	}
	if !almost(e.Opacity, 1) {
		t.Fatalf("opacity=%v, want exactly 1 at completion", e.Opacity)
	}
	if !tw.Done() {
		t.Fatalf("Done=false after completion")
	}
}

func TestMoveLandsOnTarget(t *testing.T) {
	e := stage.NewEntity(0, 0)
	tw := Move(e, 0, 0, 100, 50, 2, ease.InOutQuad)

	for i := 0; i < 100; i++ {
		tw.Update(0.05)
	}
	if !almost(e.X, 100) || !almost(e.Y, 50) {
		t.Fatalf("position (%v, %v), want (100, 50)", e.X, e.Y)
	}
}

func TestScaleNilEaseDefaultsToLinear(t *testing.T) {
	e := stage.NewEntity(0, 0)
	tw := Scale(e, 1, 3, 1, nil)
	tw.Update(0.5)
	if !almost(e.Scale, 2) {
		t.Fatalf("scale=%v, want 2 at midpoint", e.Scale)
	}
}

func TestZeroDurationCompletesImmediately(t *testing.T) {
	e := stage.NewEntity(0, 0)
	tw := Opacity(e, 1, 0, 0, nil)
	if !tw.Update(0.001) {
		t.Fatalf("zero-duration tween not done on first update")
	}
	if !almost(e.Opacity, 0) {
		t.Fatalf("opacity=%v, want 0", e.Opacity)
	}
}

func TestRunnerDropsFinished(t *testing.T) {
	e := stage.NewEntity(0, 0)
	var r Runner
	r.Add(Opacity(e, 0, 1, 0.1, nil))
	r.Add(Scale(e, 1, 2, 10, nil))
	if r.Len() != 2 {
		t.Fatalf("Len=%d, want 2", r.Len())
	}

	r.Update(0.5)
	if r.Len() != 1 {
		t.Fatalf("Len=%d after short tween finished, want 1", r.Len())
	}

	r.Update(100)
	if r.Len() != 0 {
		t.Fatalf("Len=%d after all finished, want 0", r.Len())
	}
}
