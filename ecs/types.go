package ecs

import (
	"reflect"
	"sort"
)

// ComponentTypeID is a unique identifier for a concrete component kind. Values
// are assigned by a TypeRegistry and are only meaningful within that registry.
type ComponentTypeID uint32

// ComponentMetadata describes a registered component kind.
type ComponentMetadata struct {
	ID   ComponentTypeID
	Name string
	Type reflect.Type
}

// TypeRegistry assigns type ids to component kinds. Ids come from a counter
// shared by all kinds, so the order of first registration decides the values.
// Register every kind at startup to keep ids deterministic.
//
// A TypeRegistry is not safe for concurrent use.
type TypeRegistry struct {
	next  ComponentTypeID
	ids   map[reflect.Type]ComponentTypeID
	metas map[ComponentTypeID]ComponentMetadata

	// onLazy is called when an id is assigned on first use rather than by Register.
	onLazy func(ComponentMetadata)
}

// NewTypeRegistry creates an empty registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		ids:   make(map[reflect.Type]ComponentTypeID),
		metas: make(map[ComponentTypeID]ComponentMetadata),
	}
}

// RegisterType registers the component kind T and returns its id.
func RegisterType[T Component](r *TypeRegistry) ComponentTypeID {
	return r.assign(reflect.TypeOf((*T)(nil)).Elem())
}

// TypeIDOf returns the id of the component kind T, assigning one on first use.
func TypeIDOf[T Component](r *TypeRegistry) ComponentTypeID {
	return r.idFor(reflect.TypeOf((*T)(nil)).Elem())
}

// Register registers the dynamic type of proto and returns its id. proto may
// be a typed nil pointer such as (*Transform)(nil).
func (r *TypeRegistry) Register(proto Component) ComponentTypeID {
	return r.assign(reflect.TypeOf(proto))
}

// IDOf returns the id of c's dynamic type, assigning one on first use.
func (r *TypeRegistry) IDOf(c Component) ComponentTypeID {
	return r.idFor(reflect.TypeOf(c))
}

// Lookup returns the id for t without assigning one.
func (r *TypeRegistry) Lookup(t reflect.Type) (ComponentTypeID, bool) {
	id, ok := r.ids[t]
	return id, ok
}

// Name returns the registered name of id, or "" if id is unknown.
func (r *TypeRegistry) Name(id ComponentTypeID) string {
	return r.metas[id].Name
}

// Len returns the number of registered kinds.
func (r *TypeRegistry) Len() int {
	return len(r.ids)
}

// Registered returns metadata for every registered kind ordered by id.
func (r *TypeRegistry) Registered() []ComponentMetadata {
	out := make([]ComponentMetadata, 0, len(r.metas))
	for _, m := range r.metas {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *TypeRegistry) idFor(t reflect.Type) ComponentTypeID {
	if id, ok := r.ids[t]; ok {
		return id
	}
	id := r.assign(t)
	if r.onLazy != nil {
		r.onLazy(r.metas[id])
	}
	return id
}

func (r *TypeRegistry) assign(t reflect.Type) ComponentTypeID {
	if id, ok := r.ids[t]; ok {
		return id
	}
	id := r.next
	r.next++
	r.ids[t] = id
	r.metas[id] = ComponentMetadata{ID: id, Name: typeName(t), Type: t}
	return id
}

func typeName(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.Name()
}
