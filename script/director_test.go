package script

import (
	"testing"

	"github.com/milk9111/spritestage/render"
	"github.com/milk9111/spritestage/stage"
)

type stubFrame struct{ w, h int }

func (f stubFrame) Size() (int, int) { return f.w, f.h }

func testScene(t *testing.T) (*stage.EntityRegistry, *render.Library) {
	t.Helper()
	def, err := stage.NewDefinition([]stage.Frame{stubFrame{8, 8}, stubFrame{8, 8}}, 100, true)
	if err != nil {
		t.Fatalf("NewDefinition: %v", err)
	}
	lib := render.NewLibrary()
	lib.Register("walk", def)

	reg := stage.NewEntityRegistry()
	reg.Add("hero", stage.NewEntity(0, 0), "")
	return reg, lib
}

func TestDirectorDrivesEntities(t *testing.T) {
	reg, lib := testScene(t)

	src := []byte(`
update := func(s, dt) {
	s.set_position("hero", 30.0, 40.0)
	s.set_animation("hero", "walk")
	s.start("hero", true)
	s.set_opacity("hero", 0.5)
}
`)
	d, err := NewDirector(src, reg, lib)
	if err != nil {
		t.Fatalf("NewDirector: %v", err)
	}
	if err := d.Update(0.016); err != nil {
		t.Fatalf("Update: %v", err)
	}

	hero, _ := reg.Get("hero")
	if hero.X != 30 || hero.Y != 40 {
		t.Fatalf("position (%v, %v), want (30, 40)", hero.X, hero.Y)
	}
	if !hero.Playing() {
		t.Fatalf("hero not playing after script start")
	}
	if hero.Opacity != 0.5 {
		t.Fatalf("opacity=%v, want 0.5", hero.Opacity)
	}
}

func TestDirectorReceivesDelta(t *testing.T) {
	reg, lib := testScene(t)

	// Accumulate dt into the hero's x position.
	src := []byte(`
x := 0.0
update := func(s, dt) {
	x += dt
	s.set_position("hero", x, 0.0)
}
`)
	d, err := NewDirector(src, reg, lib)
	if err != nil {
		t.Fatalf("NewDirector: %v", err)
	}
	if err := d.Update(0.5); err != nil {
		t.Fatalf("Update: %v", err)
	}

	hero, _ := reg.Get("hero")
	if hero.X != 0.5 {
		t.Fatalf("x=%v, want 0.5", hero.X)
	}
}

func TestDirectorMissingEntityAndClipAreNoops(t *testing.T) {
	reg, lib := testScene(t)

	src := []byte(`
update := func(s, dt) {
	s.set_position("ghost", 1.0, 1.0)
	s.set_animation("hero", "no-such-clip")
	s.stop("ghost")
}
`)
	d, err := NewDirector(src, reg, lib)
	if err != nil {
		t.Fatalf("NewDirector: %v", err)
	}
	if err := d.Update(0.016); err != nil {
		t.Fatalf("missing names must not error: %v", err)
	}

	hero, _ := reg.Get("hero")
	if hero.CurrentFrame() != nil {
		t.Fatalf("unknown clip attached an animation")
	}
}

func TestDirectorCompileError(t *testing.T) {
	reg, lib := testScene(t)
	if _, err := NewDirector([]byte(`update := func(`), reg, lib); err == nil {
		t.Fatalf("expected compile error")
	}
}
