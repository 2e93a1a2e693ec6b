package ecs

import "github.com/rs/zerolog"

func loadComponentIntoArrayLogger(component ComponentMetadata, arrayLogger *zerolog.Array) *zerolog.Array {
	dictLogger := zerolog.Dict()
	dictLogger = dictLogger.Int("component_id", int(component.ID))
	dictLogger = dictLogger.Str("component_name", component.Name)
	return arrayLogger.Dict(dictLogger)
}

func loadComponentsToEvent(event *zerolog.Event, w *World) *zerolog.Event {
	components := w.types.Registered()
	event.Int("total_components", len(components))
	arrayLogger := zerolog.Arr()
	for _, component := range components {
		arrayLogger = loadComponentIntoArrayLogger(component, arrayLogger)
	}
	return event.Array("components", arrayLogger)
}

func loadSystemsToEvent(event *zerolog.Event, w *World) *zerolog.Event {
	names := w.scheduler.SystemNames()
	event.Int("total_systems", len(names))
	arrayLogger := zerolog.Arr()
	for _, name := range names {
		arrayLogger = arrayLogger.Str(name)
	}
	return event.Array("systems", arrayLogger)
}

// LogComponents logs every registered component type.
func LogComponents(logger *zerolog.Logger, w *World, level zerolog.Level) {
	loadComponentsToEvent(logger.WithLevel(level), w).Send()
}

// LogSystems logs the simulation systems in run order.
func LogSystems(logger *zerolog.Logger, w *World, level zerolog.Level) {
	loadSystemsToEvent(logger.WithLevel(level), w).Send()
}

// LogEntity logs an entity and the components attached to it.
func LogEntity(logger *zerolog.Logger, w *World, id EntityID, level zerolog.Level) {
	event := logger.WithLevel(level).Uint32("entity_id", uint32(id))
	arrayLogger := zerolog.Arr()
	for _, c := range w.Components(id) {
		arrayLogger = loadComponentIntoArrayLogger(ComponentMetadata{ID: c.TypeID(), Name: w.types.Name(c.TypeID())}, arrayLogger)
	}
	event.Array("components", arrayLogger).Send()
}

// LogWorld logs registered component types and systems in one entry.
func LogWorld(logger *zerolog.Logger, w *World, level zerolog.Level) {
	event := logger.WithLevel(level)
	event = loadComponentsToEvent(event, w)
	event = loadSystemsToEvent(event, w)
	event.Int("total_entities", w.EntityCount()).Send()
}
