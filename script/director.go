// Package script runs tengo cue scripts that drive entity animation: scene
// files can switch clips, start and stop playback, and move entities without
// recompiling the game.
package script

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/spritestage/render"
	"github.com/milk9111/spritestage/stage"
)

// Director compiles a cue script once and runs it each tick. The script must
// define `update := func(s, dt) { ... }`; `s` exposes the entity operations
// below and `dt` is the tick delta in seconds.
//
//	s.set_animation(name, clip)  attach a library clip to an entity
//	s.start(name, loop)          rewind and play
//	s.stop(name)                 rewind to frame 0
//	s.set_position(name, x, y)
//	s.set_visible(name, visible)
//	s.set_opacity(name, alpha)
type Director struct {
	compiled *tengo.Compiled
}

const dispatchScript = "\nupdate(__stage, __dt)\n"

// NewDirector compiles `src` against the given registry and clip library.
func NewDirector(src []byte, reg *stage.EntityRegistry, lib *render.Library) (*Director, error) {
	if reg == nil {
		return nil, fmt.Errorf("script: nil registry")
	}

	full := make([]byte, 0, len(src)+len(dispatchScript))
	full = append(full, src...)
	full = append(full, dispatchScript...)

	s := tengo.NewScript(full)
	s.SetImports(stdlib.GetModuleMap("math", "fmt", "rand"))
	if err := s.Add("__stage", buildStageAPI(reg, lib)); err != nil {
		return nil, fmt.Errorf("script: add stage api: %w", err)
	}
	if err := s.Add("__dt", 0.0); err != nil {
		return nil, fmt.Errorf("script: add dt: %w", err)
	}

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile: %w", err)
	}
	return &Director{compiled: compiled}, nil
}

// Update runs the script's update function with the tick delta.
func (d *Director) Update(dt float64) error {
	if d == nil || d.compiled == nil {
		return nil
	}
	if err := d.compiled.Set("__dt", dt); err != nil {
		return fmt.Errorf("script: set dt: %w", err)
	}
	if err := d.compiled.Run(); err != nil {
		return fmt.Errorf("script: run: %w", err)
	}
	return nil
}

func buildStageAPI(reg *stage.EntityRegistry, lib *render.Library) map[string]tengo.Object {
	entityArg := func(args []tengo.Object) (*stage.AnimatedEntity, bool) {
		name, ok := tengo.ToString(args[0])
		if !ok {
			return nil, false
		}
		e, found := reg.Get(name)
		if !found {
			// Missing entities degrade to a no-op, same as the registry.
			return nil, false
		}
		return e, true
	}

	return map[string]tengo.Object{
		"set_animation": &tengo.UserFunction{
			Name: "set_animation",
			Value: func(args ...tengo.Object) (tengo.Object, error) {
				if len(args) != 2 {
					return nil, tengo.ErrWrongNumArguments
				}
				e, ok := entityArg(args)
				if !ok {
					return tengo.UndefinedValue, nil
				}
				clip, _ := tengo.ToString(args[1])
				def, found := lib.Get(clip)
				if !found {
					log.Printf("script: unknown clip %q", clip)
					return tengo.UndefinedValue, nil
				}
				e.SetAnimation(def)
				return tengo.UndefinedValue, nil
			},
		},
		"start": &tengo.UserFunction{
			Name: "start",
			Value: func(args ...tengo.Object) (tengo.Object, error) {
				if len(args) != 2 {
					return nil, tengo.ErrWrongNumArguments
				}
				e, ok := entityArg(args)
				if !ok {
					return tengo.UndefinedValue, nil
				}
				e.StartAnimation(!args[1].IsFalsy())
				return tengo.UndefinedValue, nil
			},
		},
		"stop": &tengo.UserFunction{
			Name: "stop",
			Value: func(args ...tengo.Object) (tengo.Object, error) {
				if len(args) != 1 {
					return nil, tengo.ErrWrongNumArguments
				}
				if e, ok := entityArg(args); ok {
					e.StopAnimation()
				}
				return tengo.UndefinedValue, nil
			},
		},
		"set_position": &tengo.UserFunction{
			Name: "set_position",
			Value: func(args ...tengo.Object) (tengo.Object, error) {
				if len(args) != 3 {
					return nil, tengo.ErrWrongNumArguments
				}
				e, ok := entityArg(args)
				if !ok {
					return tengo.UndefinedValue, nil
				}
				x, okX := tengo.ToFloat64(args[1])
				y, okY := tengo.ToFloat64(args[2])
				if !okX || !okY {
					return nil, tengo.ErrInvalidArgumentType{
						Name: "x/y", Expected: "float", Found: args[1].TypeName(),
					}
				}
				e.SetPosition(x, y)
				return tengo.UndefinedValue, nil
			},
		},
		"set_visible": &tengo.UserFunction{
			Name: "set_visible",
			Value: func(args ...tengo.Object) (tengo.Object, error) {
				if len(args) != 2 {
					return nil, tengo.ErrWrongNumArguments
				}
				if e, ok := entityArg(args); ok {
					e.Visible = !args[1].IsFalsy()
				}
				return tengo.UndefinedValue, nil
			},
		},
		"set_opacity": &tengo.UserFunction{
			Name: "set_opacity",
			Value: func(args ...tengo.Object) (tengo.Object, error) {
				if len(args) != 2 {
					return nil, tengo.ErrWrongNumArguments
				}
				e, ok := entityArg(args)
				if !ok {
					return tengo.UndefinedValue, nil
				}
				a, okA := tengo.ToFloat64(args[1])
				if !okA {
					return nil, tengo.ErrInvalidArgumentType{
						Name: "alpha", Expected: "float", Found: args[1].TypeName(),
					}
				}
				e.Opacity = a
				return tengo.UndefinedValue, nil
			},
		},
	}
}
