package sim

// Registry is the authoritative arena of live entities, exclusively owned
// and mutated by the Driver's tick. Entities are stored densely in insertion
// order so iteration is deterministic for a given seed.
type Registry struct {
	entities []Entity
	index    map[ID]int
	nextID   ID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entities: make([]Entity, 0, 64),
		index:    make(map[ID]int, 64),
		nextID:   1,
	}
}

// Spawn appends a fully-initialized entity and returns its handle.
// The entity is forced active and its swept-collision anchor is set to the
// spawn position.
func (r *Registry) Spawn(e Entity) ID {
	e.ID = r.nextID
	r.nextID++
	e.Active = true
	e.PrevZ = e.Pos.Z
	r.index[e.ID] = len(r.entities)
	r.entities = append(r.entities, e)
	return e.ID
}

// Retire marks an entity inactive without removing it, so same-tick
// observers (effects, audio) still see the just-deactivated state.
// The entry is dropped on the next Compact.
func (r *Registry) Retire(id ID) {
	if i, ok := r.index[id]; ok {
		r.entities[i].Active = false
	}
}

// Get resolves a handle to the live entity, or nil if it was purged.
// The pointer is only valid until the next Compact.
func (r *Registry) Get(id ID) *Entity {
	if i, ok := r.index[id]; ok {
		return &r.entities[i]
	}
	return nil
}

// Len returns the number of stored entities, active or not.
func (r *Registry) Len() int {
	return len(r.entities)
}

// At returns the entity at the given dense index for in-place mutation.
func (r *Registry) At(i int) *Entity {
	return &r.entities[i]
}

// Compact drops entities that are inactive or whose forward coordinate has
// passed the removal distance behind the player. Relative order of the
// survivors is preserved.
func (r *Registry) Compact(removalZ float64) {
	kept := r.entities[:0]
	for _, e := range r.entities {
		if !e.Active || e.Pos.Z > removalZ {
			delete(r.index, e.ID)
			continue
		}
		kept = append(kept, e)
	}
	r.entities = kept
	for i := range r.entities {
		r.index[r.entities[i].ID] = i
	}
}

// PruneAhead removes entities farther ahead than the given forward
// coordinate. Used on level transitions to clear the far field while
// keeping near-field entities.
func (r *Registry) PruneAhead(z float64) {
	kept := r.entities[:0]
	for _, e := range r.entities {
		if e.Pos.Z < z {
			delete(r.index, e.ID)
			continue
		}
		kept = append(kept, e)
	}
	r.entities = kept
	for i := range r.entities {
		r.index[r.entities[i].ID] = i
	}
}

// Clear removes every entity. Handles issued so far stay retired; the ID
// sequence is not reset so handles never alias across a hard reset.
func (r *Registry) Clear() {
	r.entities = r.entities[:0]
	r.index = make(map[ID]int, 64)
}
