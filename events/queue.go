package events

import "github.com/lixenwraith/vi-pong/constants"

// EventQueue is an ordered FIFO of the current frame's events
// Single-threaded by design: producers and the consumer run in fixed frame order
//
// Nothing is overwritten or dropped: every pushed event is delivered
type EventQueue struct {
	events []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make([]GameEvent, 0, constants.EventQueueCapacity),
	}
}

// Push appends an event in emission order
func (eq *EventQueue) Push(event GameEvent) {
	eq.events = append(eq.events, event)
}

// Consume returns all pending events in FIFO order and empties the queue
// Returns nil when empty
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.events) == 0 {
		return nil
	}
	result := eq.events
	eq.events = make([]GameEvent, 0, constants.EventQueueCapacity)
	return result
}

// Peek returns a copy of pending events without consuming them
func (eq *EventQueue) Peek() []GameEvent {
	if len(eq.events) == 0 {
		return nil
	}
	result := make([]GameEvent, len(eq.events))
	copy(result, eq.events)
	return result
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return len(eq.events)
}

// Reset discards pending events and returns how many were dropped
func (eq *EventQueue) Reset() int {
	n := len(eq.events)
	eq.events = eq.events[:0]
	return n
}
