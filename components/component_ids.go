package components

import (
	"ebiten-korin/ecs"
)

// IDs holds the type ids of the built-in component kinds for one registry.
type IDs struct {
	InputStream ecs.ComponentTypeID
	Transform   ecs.ComponentTypeID
	Velocity    ecs.ComponentTypeID
	Physics     ecs.ComponentTypeID
	Render      ecs.ComponentTypeID
}

// Register registers the built-in kinds in a fixed order so their ids do not
// depend on which kind is used first. Call it before creating components.
func Register(types *ecs.TypeRegistry) IDs {
	return IDs{
		InputStream: ecs.RegisterType[*InputStreamComponent](types),
		Transform:   ecs.RegisterType[*TransformComponent](types),
		Velocity:    ecs.RegisterType[*VelocityComponent](types),
		Physics:     ecs.RegisterType[*PhysicsComponent](types),
		Render:      ecs.RegisterType[*RenderComponent](types),
	}
}
