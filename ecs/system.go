package ecs

// System defines stateless behavior over one or more component kinds.
type System interface {
	// Update is called once per tick for every component of a required type.
	// Data from other components of the same entity is reached via Sibling.
	Update(dt float64, c Component)
	// Notify signals the system out of band, outside the per-tick pass.
	Notify(c Component)
	// RequiredComponents returns the type ids the scheduler feeds to Update.
	RequiredComponents(types *TypeRegistry) []ComponentTypeID
}
