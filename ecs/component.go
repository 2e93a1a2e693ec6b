package ecs

// Component is modular state attached to an entity. Concrete kinds embed
// Base, which supplies the type id and sibling lookup:
//
//	type Transform struct {
//		ecs.Base
//		X, Y float64
//	}
type Component interface {
	// Create initializes the component from the entity's resource handle.
	Create(resource string) error
	// TypeID returns the id assigned when the component was attached.
	TypeID() ComponentTypeID
	// Sibling returns the component of the given type on the same entity.
	Sibling(id ComponentTypeID) (Component, bool)

	base() *Base
}

// Base carries the bookkeeping every component needs. It is only valid while
// the component is attached to an entity.
type Base struct {
	typeID   ComponentTypeID
	self     handle
	store    *ComponentStore
	siblings map[ComponentTypeID]handle
}

func (b *Base) base() *Base { return b }

// Create does nothing. Kinds that load state from a resource override it.
func (b *Base) Create(string) error { return nil }

// TypeID returns the component's type id.
func (b *Base) TypeID() ComponentTypeID { return b.typeID }

// Attached reports whether the component currently belongs to an entity.
func (b *Base) Attached() bool {
	if b.store == nil {
		return false
	}
	_, ok := b.store.arena.resolve(b.self)
	return ok
}

// Entity returns the id of the entity the component is attached to.
func (b *Base) Entity() (EntityID, bool) {
	if b.store == nil {
		return 0, false
	}
	return b.store.arena.owner(b.self)
}

// Sibling resolves the link to the component of type id on the same entity.
// A link that was never made and a link whose target has since been removed
// both report false.
func (b *Base) Sibling(id ComponentTypeID) (Component, bool) {
	if b.store == nil {
		return nil, false
	}
	h, ok := b.siblings[id]
	if !ok {
		return nil, false
	}
	// Sibling resolution takes no lock; the store is single-threaded.
	return b.store.arena.resolve(h)
}

func (b *Base) link(id ComponentTypeID, h handle) {
	if b.siblings == nil {
		b.siblings = make(map[ComponentTypeID]handle)
	}
	b.siblings[id] = h
}

// SiblingOf returns the sibling of c whose kind is T.
func SiblingOf[T Component](c Component) (T, bool) {
	var zero T
	if c == nil {
		return zero, false
	}
	b := c.base()
	if b.store == nil {
		return zero, false
	}
	id, ok := b.store.types.Lookup(typeOf[T]())
	if !ok {
		return zero, false
	}
	sibling, ok := b.Sibling(id)
	if !ok {
		return zero, false
	}
	typed, ok := sibling.(T)
	return typed, ok
}
