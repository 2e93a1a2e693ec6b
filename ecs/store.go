package ecs

import "github.com/rotisserie/eris"

// ComponentStore owns every attached component, indexed both by entity and by
// type. It holds the only strong references; sibling links are arena handles.
type ComponentStore struct {
	types *TypeRegistry
	arena arena

	byEntity map[EntityID][]handle
	byType   map[ComponentTypeID][]handle
}

// NewComponentStore creates a store that assigns type ids from types.
func NewComponentStore(types *TypeRegistry) *ComponentStore {
	return &ComponentStore{
		types:    types,
		byEntity: make(map[EntityID][]handle),
		byType:   make(map[ComponentTypeID][]handle),
	}
}

// Types returns the registry used to tag components.
func (s *ComponentStore) Types() *TypeRegistry {
	return s.types
}

// Len returns the number of attached components.
func (s *ComponentStore) Len() int {
	return s.arena.len()
}

func (s *ComponentStore) track(entity EntityID) {
	if _, ok := s.byEntity[entity]; !ok {
		s.byEntity[entity] = nil
	}
}

func (s *ComponentStore) tracks(entity EntityID) bool {
	_, ok := s.byEntity[entity]
	return ok
}

// add attaches c to entity and links it with every component already there.
func (s *ComponentStore) add(entity EntityID, c Component) error {
	if isNil(c) {
		return ErrNilComponent
	}
	owned, ok := s.byEntity[entity]
	if !ok {
		return eris.Wrapf(ErrEntityNotFound, "entity %d", entity)
	}
	b := c.base()
	if b.store != nil && b.store.arena.valid(b.self) {
		return eris.Wrapf(ErrComponentAttached, "component %s", s.types.Name(b.typeID))
	}

	typeID := s.types.IDOf(c)
	for _, h := range owned {
		existing, _ := s.arena.resolve(h)
		if existing.TypeID() == typeID {
			return eris.Wrapf(ErrDuplicateComponent, "entity %d, component %s", entity, s.types.Name(typeID))
		}
	}

	b.typeID = typeID
	b.store = s
	b.siblings = nil
	b.self = s.arena.insert(c, entity)

	for _, h := range owned {
		existing, _ := s.arena.resolve(h)
		eb := existing.base()
		b.link(eb.typeID, h)
		eb.link(typeID, b.self)
	}

	s.byEntity[entity] = append(owned, b.self)
	s.byType[typeID] = append(s.byType[typeID], b.self)
	return nil
}

// remove detaches the component of typeID from entity. Links held by the
// remaining siblings are left in place and expire through the arena.
func (s *ComponentStore) remove(entity EntityID, typeID ComponentTypeID) (Component, error) {
	owned, ok := s.byEntity[entity]
	if !ok {
		return nil, eris.Wrapf(ErrEntityNotFound, "entity %d", entity)
	}
	for i, h := range owned {
		c, _ := s.arena.resolve(h)
		if c.TypeID() != typeID {
			continue
		}
		s.byEntity[entity] = append(owned[:i:i], owned[i+1:]...)
		s.dropFromType(typeID, h)
		s.arena.release(h)
		return c, nil
	}
	return nil, eris.Wrapf(ErrComponentNotFound, "entity %d, component %s", entity, s.types.Name(typeID))
}

// removeAll detaches every component of entity and forgets the entity.
func (s *ComponentStore) removeAll(entity EntityID) []Component {
	owned := s.byEntity[entity]
	delete(s.byEntity, entity)

	removed := make([]Component, 0, len(owned))
	for _, h := range owned {
		c, ok := s.arena.resolve(h)
		if !ok {
			continue
		}
		s.dropFromType(c.TypeID(), h)
		s.arena.release(h)
		removed = append(removed, c)
	}
	return removed
}

func (s *ComponentStore) dropFromType(typeID ComponentTypeID, h handle) {
	list := s.byType[typeID]
	for i, other := range list {
		if other == h {
			list = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(s.byType, typeID)
		return
	}
	s.byType[typeID] = list
}

// get returns the component of typeID on entity.
func (s *ComponentStore) get(entity EntityID, typeID ComponentTypeID) (Component, bool) {
	for _, h := range s.byEntity[entity] {
		c, ok := s.arena.resolve(h)
		if ok && c.TypeID() == typeID {
			return c, true
		}
	}
	return nil, false
}

// components returns the components of entity in attach order.
func (s *ComponentStore) components(entity EntityID) []Component {
	return s.resolveAll(s.byEntity[entity])
}

// ofType returns the components of typeID in attach order.
func (s *ComponentStore) ofType(typeID ComponentTypeID) []Component {
	return s.resolveAll(s.byType[typeID])
}

// handlesOfType returns a copy of the type index so callers may mutate the
// store while walking it.
func (s *ComponentStore) handlesOfType(typeID ComponentTypeID) []handle {
	list := s.byType[typeID]
	if len(list) == 0 {
		return nil
	}
	out := make([]handle, len(list))
	copy(out, list)
	return out
}

func (s *ComponentStore) resolveAll(handles []handle) []Component {
	out := make([]Component, 0, len(handles))
	for _, h := range handles {
		if c, ok := s.arena.resolve(h); ok {
			out = append(out, c)
		}
	}
	return out
}
