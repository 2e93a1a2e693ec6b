package ecs

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

type scheduledSystem struct {
	system   System
	name     string
	required []ComponentTypeID
}

// Scheduler runs systems in registration order over the components of the
// types each system requires.
type Scheduler struct {
	store   *ComponentStore
	systems []scheduledSystem
	logger  zerolog.Logger
}

// NewScheduler creates a scheduler that draws components from w's store. A
// world already owns one scheduler for simulation; extra schedulers serve
// other passes such as rendering.
func NewScheduler(w *World) *Scheduler {
	return newScheduler(w.store, w.logger)
}

func newScheduler(store *ComponentStore, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		store:  store,
		logger: logger,
	}
}

// AddSystem appends system to the run order.
func (s *Scheduler) AddSystem(system System) error {
	if isNil(system) {
		s.logger.Warn().Msg("Cannot add a nil system")
		return ErrNilSystem
	}
	name := systemName(system)
	if s.indexOf(system) >= 0 {
		s.logger.Warn().Str("system", name).Msg("System already registered")
		return eris.Wrapf(ErrSystemAlreadyRegistered, "system %s", name)
	}
	required := system.RequiredComponents(s.store.types)
	s.systems = append(s.systems, scheduledSystem{
		system:   system,
		name:     name,
		required: append([]ComponentTypeID(nil), required...),
	})
	s.logger.Debug().Str("system", name).Int("position", len(s.systems)-1).Msg("Added system")
	return nil
}

// RemoveSystem removes system from the run order.
func (s *Scheduler) RemoveSystem(system System) error {
	if isNil(system) {
		s.logger.Warn().Msg("Cannot remove a nil system")
		return ErrNilSystem
	}
	i := s.indexOf(system)
	if i < 0 {
		s.logger.Warn().Str("system", systemName(system)).Msg("System does not exist for removal")
		return eris.Wrapf(ErrSystemNotFound, "system %s", systemName(system))
	}
	s.systems = append(s.systems[:i:i], s.systems[i+1:]...)
	return nil
}

// Systems returns the registered systems in run order.
func (s *Scheduler) Systems() []System {
	out := make([]System, len(s.systems))
	for i, ss := range s.systems {
		out[i] = ss.system
	}
	return out
}

// SystemNames returns the names of the registered systems in run order.
func (s *Scheduler) SystemNames() []string {
	out := make([]string, len(s.systems))
	for i, ss := range s.systems {
		out[i] = ss.name
	}
	return out
}

// Dispatch runs one pass: every system, in order, is updated once for each
// component of each type it requires. Types with no components are skipped.
func (s *Scheduler) Dispatch(dt float64) {
	// Systems may add or remove systems while running; iterate a snapshot.
	systems := append([]scheduledSystem(nil), s.systems...)
	for _, ss := range systems {
		for _, typeID := range ss.required {
			handles := s.store.handlesOfType(typeID)
			if len(handles) == 0 {
				s.logger.Debug().
					Str("system", ss.name).
					Str("component_type", s.store.types.Name(typeID)).
					Msg("No components of required type, skipping system")
				continue
			}
			for _, h := range handles {
				c, ok := s.store.arena.resolve(h)
				if !ok {
					// Removed earlier in this pass.
					continue
				}
				assert(c.TypeID() == typeID, "system %s received component type %d, want %d",
					ss.name, c.TypeID(), typeID)
				ss.system.Update(dt, c)
			}
		}
	}
}

// Notify forwards c to every system that requires c's type.
func (s *Scheduler) Notify(c Component) {
	if isNil(c) || !c.base().Attached() {
		return
	}
	typeID := c.TypeID()
	for _, ss := range s.systems {
		for _, required := range ss.required {
			if required == typeID {
				ss.system.Notify(c)
				break
			}
		}
	}
}

func (s *Scheduler) indexOf(system System) int {
	for i, ss := range s.systems {
		if sameSystem(ss.system, system) {
			return i
		}
	}
	return -1
}
