package ecs

import "reflect"

// handle is a generational reference into the component arena. A handle stays
// comparable after its slot is reused; resolve rejects it once the slot's
// generation has moved on.
type handle struct {
	index      uint32
	generation uint32
}

type slot struct {
	component  Component
	entity     EntityID
	generation uint32
	live       bool
}

// arena owns every attached component. Releasing a slot bumps its generation,
// which expires all outstanding handles to it.
type arena struct {
	slots []slot
	free  []uint32
}

func (a *arena) insert(c Component, entity EntityID) handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot{generation: 1})
	}
	s := &a.slots[idx]
	s.component = c
	s.entity = entity
	s.live = true
	return handle{index: idx, generation: s.generation}
}

func (a *arena) release(h handle) (Component, bool) {
	if !a.valid(h) {
		return nil, false
	}
	s := &a.slots[h.index]
	c := s.component
	s.component = nil
	s.live = false
	s.generation++
	a.free = append(a.free, h.index)
	return c, true
}

func (a *arena) resolve(h handle) (Component, bool) {
	if !a.valid(h) {
		return nil, false
	}
	return a.slots[h.index].component, true
}

func (a *arena) owner(h handle) (EntityID, bool) {
	if !a.valid(h) {
		return 0, false
	}
	return a.slots[h.index].entity, true
}

func (a *arena) valid(h handle) bool {
	if h.generation == 0 || int(h.index) >= len(a.slots) {
		return false
	}
	s := a.slots[h.index]
	return s.live && s.generation == h.generation
}

func (a *arena) len() int {
	return len(a.slots) - len(a.free)
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
