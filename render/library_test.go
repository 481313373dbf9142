package render

import (
	"testing"

	"github.com/milk9111/spritestage/stage"
)

type stubFrame struct{ w, h int }

func (f stubFrame) Size() (int, int) { return f.w, f.h }

func stubDefinition(t *testing.T) *stage.AnimationDefinition {
	t.Helper()
	def, err := stage.NewDefinition([]stage.Frame{stubFrame{8, 8}, stubFrame{8, 8}}, 120, true)
	if err != nil {
		t.Fatalf("NewDefinition: %v", err)
	}
	return def
}

func TestLibraryRegisterAndGet(t *testing.T) {
	l := NewLibrary()
	def := stubDefinition(t)

	l.Register("walk", def)
	got, ok := l.Get("walk")
	if !ok || got != def {
		t.Fatalf("Get(walk)=%v ok=%v", got, ok)
	}
	if _, ok := l.Get("run"); ok {
		t.Fatalf("Get on unknown key reported ok")
	}

	// Re-register replaces.
	other := stubDefinition(t)
	l.Register("walk", other)
	if got, _ := l.Get("walk"); got != other {
		t.Fatalf("re-register did not replace clip")
	}
}

func TestLibraryIgnoresBadInput(t *testing.T) {
	l := NewLibrary()
	l.Register("", stubDefinition(t))
	l.Register("walk", nil)
	if len(l.Keys()) != 0 {
		t.Fatalf("bad registrations stored: %v", l.Keys())
	}
}

func TestLibraryKeysSortedAndRemove(t *testing.T) {
	l := NewLibrary()
	for _, k := range []string{"walk", "idle", "jump"} {
		l.Register(k, stubDefinition(t))
	}
	keys := l.Keys()
	want := []string{"idle", "jump", "walk"}
	if len(keys) != len(want) {
		t.Fatalf("keys %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys %v, want %v", keys, want)
		}
	}

	l.Remove("jump")
	if _, ok := l.Get("jump"); ok {
		t.Fatalf("clip survives Remove")
	}
}

func TestGroupColorsDistinctAndStable(t *testing.T) {
	groups := []string{"foreground", "background", "default"}
	a := GroupColors(groups)
	b := GroupColors([]string{"default", "foreground", "background"})

	if len(a) != len(groups) {
		t.Fatalf("expected %d colors, got %d", len(groups), len(a))
	}
	seen := map[[4]uint32]bool{}
	for g, c := range a {
		r, gr, bl, al := c.RGBA()
		key := [4]uint32{r, gr, bl, al}
		if seen[key] {
			t.Fatalf("duplicate color for group %s", g)
		}
		seen[key] = true
		if a[g] != b[g] {
			t.Fatalf("color for %s depends on input order", g)
		}
	}

	if GroupColors(nil) != nil {
		t.Fatalf("expected nil map for no groups")
	}
}
