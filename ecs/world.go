package ecs

import (
	"sort"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// World manages all entities, components and systems. It is the single
// context object passed to everything that touches the registry; worlds are
// independent of one another.
//
// A World is not safe for concurrent use. All mutation happens on the
// goroutine that runs the tick loop.
type World struct {
	entities  *EntityRegistry
	types     *TypeRegistry
	store     *ComponentStore
	scheduler *Scheduler
	events    *EventManager
	logger    zerolog.Logger

	maxEntities      int
	validateResource func(string) error
}

// NewWorld creates a new ECS world
func NewWorld(opts ...Option) *World {
	w := &World{
		types:       NewTypeRegistry(),
		events:      NewEventManager(),
		logger:      zerolog.Nop(),
		maxEntities: DefaultMaxEntities,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.entities = NewEntityRegistry(w.maxEntities)
	w.store = NewComponentStore(w.types)
	w.scheduler = newScheduler(w.store, w.logger)
	w.types.onLazy = func(m ComponentMetadata) {
		w.logger.Debug().
			Int("component_id", int(m.ID)).
			Str("component_name", m.Name).
			Msg("Assigned component type id on first use")
	}
	return w
}

// Types returns the world's component type registry.
func (w *World) Types() *TypeRegistry {
	return w.types
}

// Events returns the world's event manager.
func (w *World) Events() *EventManager {
	return w.events
}

// Logger returns the world's logger.
func (w *World) Logger() *zerolog.Logger {
	return &w.logger
}

// Scheduler returns the scheduler that Dispatch runs.
func (w *World) Scheduler() *Scheduler {
	return w.scheduler
}

// CreateEntity creates a new entity for resourceHandle.
func (w *World) CreateEntity(resourceHandle string) (Entity, error) {
	if err := w.checkResource(resourceHandle); err != nil {
		w.logger.Warn().Str("resource", resourceHandle).Err(err).Msg("Cannot create entity")
		return Entity{}, err
	}
	e, err := w.entities.create(resourceHandle)
	if err != nil {
		assert(!eris.Is(err, ErrDuplicateEntity), "free queue handed out live entity id")
		w.logger.Warn().
			Str("resource", resourceHandle).
			Int("living_entities", w.entities.Len()).
			Err(err).
			Msg("Cannot create entity")
		return Entity{}, eris.Wrapf(err, "resource %q", resourceHandle)
	}
	w.store.track(e.ID)
	w.logger.Debug().Uint32("entity_id", uint32(e.ID)).Str("resource", resourceHandle).Msg("Created entity")
	w.events.Emit(EntityEvent{Kind: EntityCreated, Entity: e})
	return e, nil
}

// RemoveEntity removes an entity and all its components from the world. The
// id goes to the back of the free queue.
func (w *World) RemoveEntity(id EntityID) error {
	e, ok := w.entities.Get(id)
	if !ok {
		w.logger.Warn().Uint32("entity_id", uint32(id)).Msg("Entity does not exist for removal")
		return eris.Wrapf(ErrEntityNotFound, "entity %d", id)
	}
	removed := w.store.removeAll(id)
	w.entities.remove(id)
	for _, c := range removed {
		w.events.Emit(ComponentEvent{Kind: ComponentRemoved, EntityID: id, TypeID: c.TypeID(), Component: c})
	}
	w.logger.Debug().Uint32("entity_id", uint32(id)).Int("components", len(removed)).Msg("Removed entity")
	w.events.Emit(EntityEvent{Kind: EntityRemoved, Entity: e})
	return nil
}

// Entity returns the live entity with the given id.
func (w *World) Entity(id EntityID) (Entity, bool) {
	return w.entities.Get(id)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return w.entities.Len()
}

// Entities returns every live entity ordered by id.
func (w *World) Entities() []Entity {
	ids := w.entities.ids()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]Entity, len(ids))
	for i, id := range ids {
		out[i], _ = w.entities.Get(id)
	}
	return out
}

// AddComponent attaches c to the entity and links it with the entity's other
// components. An entity holds at most one component of each type; attaching
// a second one fails and leaves the first in place.
func (w *World) AddComponent(id EntityID, c Component) error {
	if err := w.store.add(id, c); err != nil {
		ev := w.logger.Warn().Uint32("entity_id", uint32(id)).Err(err)
		if !isNil(c) {
			ev = ev.Str("component_type", w.types.Name(w.types.IDOf(c)))
		}
		ev.Msg("Cannot add component")
		return err
	}
	w.events.Emit(ComponentEvent{Kind: ComponentAdded, EntityID: id, TypeID: c.TypeID(), Component: c})
	return nil
}

// RemoveComponent detaches the component of typeID from the entity.
func (w *World) RemoveComponent(id EntityID, typeID ComponentTypeID) error {
	c, err := w.store.remove(id, typeID)
	if err != nil {
		w.logger.Warn().
			Uint32("entity_id", uint32(id)).
			Str("component_type", w.types.Name(typeID)).
			Err(err).
			Msg("Cannot remove component")
		return err
	}
	w.events.Emit(ComponentEvent{Kind: ComponentRemoved, EntityID: id, TypeID: typeID, Component: c})
	return nil
}

// GetComponent retrieves a component from an entity
func (w *World) GetComponent(id EntityID, typeID ComponentTypeID) (Component, bool) {
	if !w.store.tracks(id) {
		w.logger.Debug().Uint32("entity_id", uint32(id)).Msg("Entity does not exist for getting component")
		return nil, false
	}
	c, ok := w.store.get(id, typeID)
	if !ok {
		w.logger.Debug().
			Uint32("entity_id", uint32(id)).
			Str("component_type", w.types.Name(typeID)).
			Msg("Component type does not exist on entity")
	}
	return c, ok
}

// HasComponent checks if an entity has a specific component
func (w *World) HasComponent(id EntityID, typeID ComponentTypeID) bool {
	_, ok := w.store.get(id, typeID)
	return ok
}

// Components returns the entity's components in attach order.
func (w *World) Components(id EntityID) []Component {
	return w.store.components(id)
}

// ComponentsOfType returns every attached component of typeID in attach order.
func (w *World) ComponentsOfType(typeID ComponentTypeID) []Component {
	return w.store.ofType(typeID)
}

// GetComponent returns the entity's component of kind T.
func GetComponent[T Component](w *World, id EntityID) (T, bool) {
	var zero T
	typeID, ok := w.types.Lookup(typeOf[T]())
	if !ok {
		return zero, false
	}
	c, ok := w.GetComponent(id, typeID)
	if !ok {
		return zero, false
	}
	typed, ok := c.(T)
	return typed, ok
}

// AddSystem adds a system to the simulation pass.
func (w *World) AddSystem(system System) error {
	return w.scheduler.AddSystem(system)
}

// RemoveSystem removes a system from the simulation pass.
func (w *World) RemoveSystem(system System) error {
	return w.scheduler.RemoveSystem(system)
}

// GetSystems returns all systems registered in the world
func (w *World) GetSystems() []System {
	return w.scheduler.Systems()
}

// Dispatch runs every simulation system once with the given time step.
func (w *World) Dispatch(dt float64) {
	w.scheduler.Dispatch(dt)
}

// Notify forwards c to the simulation systems that require its type.
func (w *World) Notify(c Component) {
	w.scheduler.Notify(c)
}

func (w *World) checkResource(resourceHandle string) error {
	if resourceHandle == "" {
		return eris.Wrap(ErrInvalidResourceHandle, "resource handle is empty")
	}
	if w.validateResource == nil {
		return nil
	}
	if err := w.validateResource(resourceHandle); err != nil {
		return eris.Wrapf(ErrInvalidResourceHandle, "resource %q: %v", resourceHandle, err)
	}
	return nil
}
