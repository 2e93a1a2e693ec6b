package ecs

// EventType identifies different types of events
type EventType string

const (
	EntityCreated    EventType = "entity_created"
	EntityRemoved    EventType = "entity_removed"
	ComponentAdded   EventType = "component_added"
	ComponentRemoved EventType = "component_removed"
)

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// EntityEvent is emitted when an entity is created or removed.
type EntityEvent struct {
	Kind   EventType
	Entity Entity
}

func (e EntityEvent) Type() EventType { return e.Kind }

// ComponentEvent is emitted when a component is attached or detached.
type ComponentEvent struct {
	Kind      EventType
	EntityID  EntityID
	TypeID    ComponentTypeID
	Component Component
}

func (e ComponentEvent) Type() EventType { return e.Kind }

// EventHandler is a function that processes events
type EventHandler func(Event)

// SubscriptionID identifies a handler for Unsubscribe.
type SubscriptionID uint64

type subscription struct {
	id      SubscriptionID
	handler EventHandler
}

// EventManager manages event subscriptions and dispatches
type EventManager struct {
	subscribers map[EventType][]subscription
	nextID      SubscriptionID
}

// NewEventManager creates a new event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]subscription),
	}
}

// Subscribe registers a handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) SubscriptionID {
	em.nextID++
	em.subscribers[eventType] = append(em.subscribers[eventType], subscription{id: em.nextID, handler: handler})
	return em.nextID
}

// Unsubscribe removes a handler for a specific event type
func (em *EventManager) Unsubscribe(eventType EventType, id SubscriptionID) {
	subs, exists := em.subscribers[eventType]
	if !exists {
		return
	}

	kept := make([]subscription, 0, len(subs))
	for _, sub := range subs {
		if sub.id != id {
			kept = append(kept, sub)
		}
	}

	if len(kept) == 0 {
		delete(em.subscribers, eventType)
	} else {
		em.subscribers[eventType] = kept
	}
}

// Emit dispatches an event to all subscribed handlers in subscription order
func (em *EventManager) Emit(event Event) {
	subs, exists := em.subscribers[event.Type()]
	if !exists {
		return
	}

	for _, sub := range subs {
		sub.handler(event)
	}
}
