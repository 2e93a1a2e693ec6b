package spawners

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"ebiten-korin/components"
	"ebiten-korin/data"
	"ebiten-korin/ecs"
)

var ErrUnknownComponent = eris.New("unknown component name")

// EntitySpawner builds entities from templates
type EntitySpawner struct {
	world           *ecs.World
	templateManager *data.EntityTemplateManager
	logger          zerolog.Logger
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World, templateManager *data.EntityTemplateManager, logger zerolog.Logger) *EntitySpawner {
	return &EntitySpawner{
		world:           world,
		templateManager: templateManager,
		logger:          logger,
	}
}

// Spawn creates an entity whose resource handle is templateID and attaches
// the template's components in name order. Each component is created with
// the handle, then the template's properties are applied. If any step fails
// the entity is removed again.
func (s *EntitySpawner) Spawn(templateID string) (ecs.Entity, error) {
	template, ok := s.templateManager.GetTemplate(templateID)
	if !ok {
		s.logger.Warn().Str("template", templateID).Msg("No template found for entity")
		return ecs.Entity{}, eris.Wrapf(data.ErrTemplateNotFound, "template %q", templateID)
	}

	entity, err := s.world.CreateEntity(template.ID)
	if err != nil {
		return ecs.Entity{}, err
	}

	for _, name := range template.ComponentNames() {
		if err := s.attach(entity, name, template.Components[name]); err != nil {
			s.logger.Warn().
				Uint32("entity_id", uint32(entity.ID)).
				Str("template", template.ID).
				Str("component_type", name).
				Err(err).
				Msg("Cannot build entity from template, removing it")
			_ = s.world.RemoveEntity(entity.ID)
			return ecs.Entity{}, err
		}
	}

	s.logger.Debug().
		Uint32("entity_id", uint32(entity.ID)).
		Str("template", template.ID).
		Int("components", len(template.Components)).
		Msg("Spawned entity")
	return entity, nil
}

// SpawnAt spawns templateID and moves its transform to x, y
func (s *EntitySpawner) SpawnAt(templateID string, x, y float64) (ecs.Entity, error) {
	entity, err := s.Spawn(templateID)
	if err != nil {
		return entity, err
	}
	if t, ok := ecs.GetComponent[*components.TransformComponent](s.world, entity.ID); ok {
		t.X, t.Y = x, y
	}
	return entity, nil
}

func (s *EntitySpawner) attach(entity ecs.Entity, name string, properties map[string]any) error {
	c, ok := components.NewComponentByName(name)
	if !ok {
		return eris.Wrapf(ErrUnknownComponent, "component %q", name)
	}
	if err := c.Create(entity.ResourceHandle); err != nil {
		return eris.Wrapf(err, "create %s", name)
	}
	for property, value := range properties {
		if err := components.SetComponentProperty(c, property, value); err != nil {
			return eris.Wrapf(err, "set %s.%s", name, property)
		}
	}
	return s.world.AddComponent(entity.ID, c)
}
