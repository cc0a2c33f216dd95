package entitycs

import "reflect"

// MaxEventTypes defines the maximum number of unique event types that can be
// subscribed to on one EventBus.
const MaxEventTypes = 256

// EntityFinalized is published by Tick when a fresh entity joins the master
// list, before its scripts' Begin runs.
type EntityFinalized struct {
	Entity *Entity
}

// EntitiesCompacted is published by Tick when dead entities were removed.
// Bits is the union of the removed entities' masks.
type EntitiesCompacted struct {
	Removed int
	Bits    Mask
}

// EventBus dispatches typed events to subscribed handlers synchronously, in
// subscription order. It is not safe for concurrent use; the manager only
// publishes from the ticking goroutine.
type EventBus struct {
	eventTypeMap    map[reflect.Type]uint8
	handlers        [MaxEventTypes][]any
	nextEventTypeID int
}

// Subscribe registers a handler to be called when an event of type T is
// published. Handlers are stored, and later called, in subscription order.
//
// This may allocate the first time T is subscribed to or when the handler
// list grows. It panics once MaxEventTypes distinct types are in use.
//
// Parameters:
//   - bus: The EventBus to subscribe to.
//   - handler: A function that takes a single argument of type T.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	id := bus.getEventTypeID(reflect.TypeFor[T]())
	if cap(bus.handlers[id]) == 0 {
		bus.handlers[id] = make([]any, 0, 4)
	}
	bus.handlers[id] = append(bus.handlers[id], handler)
}

// Publish broadcasts event to every handler subscribed to T, synchronously
// and in subscription order. Publishing a type nobody subscribed to is a
// no-op.
//
// Publish does not allocate, so the manager can call it on every tick.
//
// Parameters:
//   - bus: The EventBus to publish to.
//   - event: The event value handed to each handler.
func Publish[T any](bus *EventBus, event T) {
	id, ok := bus.eventTypeMap[reflect.TypeFor[T]()]
	if !ok {
		return
	}
	for _, h := range bus.handlers[id] {
		h.(func(T))(event)
	}
}

// getEventTypeID retrieves or assigns an ID for the event type.
func (bus *EventBus) getEventTypeID(t reflect.Type) uint8 {
	if bus.eventTypeMap == nil {
		bus.eventTypeMap = make(map[reflect.Type]uint8)
	}
	if id, ok := bus.eventTypeMap[t]; ok {
		return id
	}
	if bus.nextEventTypeID >= MaxEventTypes {
		panic("ecs: too many event types")
	}
	id := uint8(bus.nextEventTypeID)
	bus.nextEventTypeID++
	bus.eventTypeMap[t] = id
	return id
}
