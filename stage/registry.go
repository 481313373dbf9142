package stage

// DefaultGroup is the group entities join when Add is called with an empty
// group name.
const DefaultGroup = "default"

// EntityRegistry owns the set of named entities and named, possibly
// overlapping groups of entity names. Update and render passes walk entities
// in insertion order, so two consecutive passes over unchanged membership
// always visit entities in the same relative order.
//
// The registry is single-threaded: the driving loop must finish an update
// pass before starting a render pass, and must consult its PauseSignal
// before calling UpdateAll at all.
type EntityRegistry struct {
	entities map[string]*AnimatedEntity
	order    []string
	groups   map[string][]string
}

// NewEntityRegistry creates an empty registry.
func NewEntityRegistry() *EntityRegistry {
	return &EntityRegistry{
		entities: make(map[string]*AnimatedEntity),
		groups:   make(map[string][]string),
	}
}

// Add inserts or overwrites the entity under `name` and records `name` in
// `group` (DefaultGroup when empty), creating the group if absent.
// Overwriting replaces the entity but leaves memberships recorded under other
// groups untouched; call Remove first for a clean move.
func (r *EntityRegistry) Add(name string, e *AnimatedEntity, group string) {
	if r == nil || name == "" || e == nil {
		return
	}
	if group == "" {
		group = DefaultGroup
	}
	if _, exists := r.entities[name]; !exists {
		r.order = append(r.order, name)
	}
	r.entities[name] = e

	for _, member := range r.groups[group] {
		if member == name {
			return
		}
	}
	r.groups[group] = append(r.groups[group], name)
}

// Remove deletes `name` from the entity set and purges it from every group.
// No-op if the name is absent.
func (r *EntityRegistry) Remove(name string) {
	if r == nil {
		return
	}
	if _, ok := r.entities[name]; ok {
		delete(r.entities, name)
		for i, n := range r.order {
			if n == name {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
	}
	for g, members := range r.groups {
		for i, n := range members {
			if n == name {
				r.groups[g] = append(members[:i], members[i+1:]...)
				break
			}
		}
	}
}

// Get returns the entity registered under `name`.
func (r *EntityRegistry) Get(name string) (*AnimatedEntity, bool) {
	if r == nil {
		return nil, false
	}
	e, ok := r.entities[name]
	return e, ok
}

// Len returns the number of registered entities.
func (r *EntityRegistry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entities)
}

// Names returns the registered entity names in insertion order.
func (r *EntityRegistry) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Groups returns the group names in unspecified order.
func (r *EntityRegistry) Groups() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.groups))
	for g := range r.groups {
		out = append(out, g)
	}
	return out
}

// UpdateAll advances every entity's animation clock by `dt` seconds, in
// insertion order.
func (r *EntityRegistry) UpdateAll(dt float64) {
	if r == nil {
		return
	}
	for _, name := range r.order {
		r.entities[name].Update(dt)
	}
}

// UpdateAllExcept is UpdateAll minus the entities named in `skip`. Used when
// a specialized caller updates some entities itself and must not see them
// advanced twice in one tick.
func (r *EntityRegistry) UpdateAllExcept(skip map[string]bool, dt float64) {
	if r == nil {
		return
	}
	for _, name := range r.order {
		if skip[name] {
			continue
		}
		r.entities[name].Update(dt)
	}
}

// RenderGroup renders each member of `group` (DefaultGroup when empty) still
// present in the entity set, in membership order. A missing group is a
// silent no-op, and names whose entity was removed are skipped; neither
// condition is an error.
func (r *EntityRegistry) RenderGroup(s Surface, group string) {
	if r == nil || s == nil {
		return
	}
	if group == "" {
		group = DefaultGroup
	}
	members, ok := r.groups[group]
	if !ok {
		return
	}
	for _, name := range members {
		e, ok := r.entities[name]
		if !ok {
			continue
		}
		e.Render(s)
	}
}

// RenderAll renders every entity in insertion order, ignoring groups.
func (r *EntityRegistry) RenderAll(s Surface) {
	if r == nil || s == nil {
		return
	}
	for _, name := range r.order {
		r.entities[name].Render(s)
	}
}

// Clear removes all entities and all groups.
func (r *EntityRegistry) Clear() {
	if r == nil {
		return
	}
	r.entities = make(map[string]*AnimatedEntity)
	r.order = nil
	r.groups = make(map[string][]string)
}
