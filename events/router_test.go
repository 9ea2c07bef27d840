package events

import (
	"testing"

	"github.com/lixenwraith/vi-pong/components"
)

type recordingHandler struct {
	types []EventType
	seen  []GameEvent
	// onEvent optionally runs after recording, e.g. to push follow-up events
	onEvent func(ev GameEvent)
}

func (h *recordingHandler) HandleEvent(ctx *[]string, ev GameEvent) {
	*ctx = append(*ctx, ev.Type.String())
	h.seen = append(h.seen, ev)
	if h.onEvent != nil {
		h.onEvent(ev)
	}
}

func (h *recordingHandler) EventTypes() []EventType {
	return h.types
}

func TestRouterDispatchOrder(t *testing.T) {
	eq := NewEventQueue()
	router := NewRouter[*[]string](eq)

	scores := &recordingHandler{types: []EventType{EventGainPoint}}
	sounds := &recordingHandler{types: []EventType{EventGainPoint, EventPaddleContact}}
	router.Register(scores)
	router.Register(sounds)

	if router.HandlerCount(EventGainPoint) != 2 {
		t.Errorf("Expected 2 GainPoint handlers, got %d", router.HandlerCount(EventGainPoint))
	}
	if router.HasHandlers(EventServeRequest) {
		t.Error("Expected no ServeRequest handlers")
	}

	eq.Push(PaddleContact(components.Player1, 1))
	eq.Push(GainPoint(components.Player2, 1))
	eq.Push(GainPoint(components.Player1, 1))

	var log []string
	n := router.DispatchAll(&log)
	if n != 3 {
		t.Errorf("Expected 3 dispatched events, got %d", n)
	}

	want := []string{"PaddleContact", "GainPoint", "GainPoint", "GainPoint", "GainPoint"}
	if len(log) != len(want) {
		t.Fatalf("Expected %d handler calls, got %d: %v", len(want), len(log), log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Call %d: expected %s, got %s", i, want[i], log[i])
		}
	}

	// Both GainPoint events reach the score handler; none is suppressed
	if len(scores.seen) != 2 {
		t.Errorf("Expected score handler to see 2 events, got %d", len(scores.seen))
	}
	if eq.Len() != 0 {
		t.Errorf("Expected queue drained, got %d", eq.Len())
	}
}

func TestRouterDispatchesFollowUpEventsSameCall(t *testing.T) {
	eq := NewEventQueue()
	router := NewRouter[*[]string](eq)

	serve := &recordingHandler{types: []EventType{EventServeRequest}}
	serve.onEvent = func(ev GameEvent) {
		eq.Push(GameEvent{Type: EventBallServed, Frame: ev.Frame})
	}
	served := &recordingHandler{types: []EventType{EventBallServed}}
	router.Register(serve)
	router.Register(served)

	eq.Push(GameEvent{Type: EventServeRequest, Frame: 3})

	var log []string
	if n := router.DispatchAll(&log); n != 2 {
		t.Errorf("Expected 2 dispatched events, got %d", n)
	}
	if len(served.seen) != 1 {
		t.Errorf("Expected follow-up event handled in the same dispatch, got %d", len(served.seen))
	}
}

func TestRouterBoundedRounds(t *testing.T) {
	eq := NewEventQueue()
	router := NewRouter[*[]string](eq)

	// A handler that always re-pushes would loop forever without a bound
	loop := &recordingHandler{types: []EventType{EventServeRequest}}
	loop.onEvent = func(ev GameEvent) {
		eq.Push(ev)
	}
	router.Register(loop)
	eq.Push(GameEvent{Type: EventServeRequest})

	var log []string
	router.DispatchAll(&log)

	if eq.Len() != 1 {
		t.Errorf("Expected the unbounded follow-up to remain queued, got %d", eq.Len())
	}
}
