package render

import (
	"sort"

	"github.com/milk9111/spritestage/stage"
)

// Library stores animation definitions by clip key.
type Library struct {
	clips map[string]*stage.AnimationDefinition
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{clips: make(map[string]*stage.AnimationDefinition)}
}

// Register adds a definition under `key`, replacing any previous clip.
func (l *Library) Register(key string, def *stage.AnimationDefinition) {
	if l == nil || key == "" || def == nil {
		return
	}
	l.clips[key] = def
}

// Get returns the definition registered under `key`.
func (l *Library) Get(key string) (*stage.AnimationDefinition, bool) {
	if l == nil || key == "" {
		return nil, false
	}
	def, ok := l.clips[key]
	return def, ok
}

// Remove deletes the clip registered under `key`.
func (l *Library) Remove(key string) {
	if l == nil {
		return
	}
	delete(l.clips, key)
}

// Keys returns the registered clip keys, sorted.
func (l *Library) Keys() []string {
	if l == nil {
		return nil
	}
	keys := make([]string, 0, len(l.clips))
	for k := range l.clips {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
