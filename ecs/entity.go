package ecs

// EntityID is a unique identifier for a live entity. Ids are recycled after
// the entity is removed.
type EntityID uint32

// DefaultMaxEntities is the number of entities a world can hold at once
// unless overridden with WithMaxEntities.
const DefaultMaxEntities = 5000

// Entity represents a game object in the ECS architecture. It has no
// behavior; its state is entirely composed of components.
type Entity struct {
	ID EntityID
	// ResourceHandle names the resource the entity was created from.
	ResourceHandle string
}

// EntityRegistry allocates and recycles entity ids. Freed ids are reused
// before any never-used id, in the order they were freed.
type EntityRegistry struct {
	entities map[EntityID]Entity
	capacity int
	fresh    EntityID

	// recycled is a ring buffer of freed ids waiting for reuse.
	recycled      []EntityID
	recycledHead  int
	recycledCount int
}

// NewEntityRegistry creates a registry holding at most maxEntities live
// entities with ids in 0..maxEntities-1.
func NewEntityRegistry(maxEntities int) *EntityRegistry {
	if maxEntities <= 0 {
		maxEntities = DefaultMaxEntities
	}
	return &EntityRegistry{
		entities: make(map[EntityID]Entity),
		capacity: maxEntities,
		recycled: make([]EntityID, maxEntities),
	}
}

// Capacity returns the maximum number of live entities.
func (r *EntityRegistry) Capacity() int {
	return r.capacity
}

// Len returns the number of live entities.
func (r *EntityRegistry) Len() int {
	return len(r.entities)
}

// Get returns the live entity with the given id.
func (r *EntityRegistry) Get(id EntityID) (Entity, bool) {
	e, ok := r.entities[id]
	return e, ok
}

// Contains reports whether id is live.
func (r *EntityRegistry) Contains(id EntityID) bool {
	_, ok := r.entities[id]
	return ok
}

// create takes the oldest freed id, or the next never-used one. The caller
// validates the resource handle.
func (r *EntityRegistry) create(resourceHandle string) (Entity, error) {
	if len(r.entities) >= r.capacity {
		return Entity{}, ErrEntityCapacity
	}

	var id EntityID
	switch {
	case r.recycledCount > 0:
		id = r.recycled[r.recycledHead]
		if _, live := r.entities[id]; live {
			return Entity{}, ErrDuplicateEntity
		}
		r.recycledHead = (r.recycledHead + 1) % r.capacity
		r.recycledCount--
	case int(r.fresh) < r.capacity:
		id = r.fresh
		r.fresh++
	default:
		return Entity{}, ErrEntityCapacity
	}

	e := Entity{ID: id, ResourceHandle: resourceHandle}
	r.entities[id] = e
	return e, nil
}

// remove queues id for reuse.
func (r *EntityRegistry) remove(id EntityID) bool {
	if _, ok := r.entities[id]; !ok {
		return false
	}
	delete(r.entities, id)

	tail := (r.recycledHead + r.recycledCount) % r.capacity
	r.recycled[tail] = id
	r.recycledCount++
	return true
}

// ids returns the live ids in no particular order.
func (r *EntityRegistry) ids() []EntityID {
	out := make([]EntityID, 0, len(r.entities))
	for id := range r.entities {
		out = append(out, id)
	}
	return out
}
