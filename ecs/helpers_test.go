package ecs_test

import (
	"ebiten-korin/ecs"
)

type Position struct {
	ecs.Base
	X, Y float64
}

type Velocity struct {
	ecs.Base
	DX, DY float64
}

type Health struct {
	ecs.Base
	Value int
}

func newWorld(opts ...ecs.Option) (*ecs.World, ecs.ComponentTypeID, ecs.ComponentTypeID, ecs.ComponentTypeID) {
	w := ecs.NewWorld(opts...)
	posID := ecs.RegisterType[*Position](w.Types())
	velID := ecs.RegisterType[*Velocity](w.Types())
	healthID := ecs.RegisterType[*Health](w.Types())
	return w, posID, velID, healthID
}

// recordingSystem records every component it is updated with.
type recordingSystem struct {
	name     string
	required func(types *ecs.TypeRegistry) []ecs.ComponentTypeID
	log      *[]string
	updates  []ecs.Component
	steps    []float64
	notified []ecs.Component
}

func (s *recordingSystem) Name() string { return s.name }

func (s *recordingSystem) Update(dt float64, c ecs.Component) {
	s.updates = append(s.updates, c)
	s.steps = append(s.steps, dt)
	if s.log != nil {
		*s.log = append(*s.log, s.name)
	}
}

func (s *recordingSystem) Notify(c ecs.Component) {
	s.notified = append(s.notified, c)
}

func (s *recordingSystem) RequiredComponents(types *ecs.TypeRegistry) []ecs.ComponentTypeID {
	return s.required(types)
}

func requires[T ecs.Component]() func(types *ecs.TypeRegistry) []ecs.ComponentTypeID {
	return func(types *ecs.TypeRegistry) []ecs.ComponentTypeID {
		return []ecs.ComponentTypeID{ecs.TypeIDOf[T](types)}
	}
}
