package events

// EventType represents the type of game event
type EventType int

const (
	// EventGainPoint awards a point after the ball left the arena
	// Trigger: CollisionSystem boundary check (ball already reset)
	// Consumer: ScoreSystem, AudioSystem | Payload: GainPointPayload
	EventGainPoint EventType = iota

	// EventPaddleContact signals the ball touched a paddle this frame
	// Trigger: CollisionSystem contact resolution (tint already applied)
	// Consumer: AudioSystem | Payload: PaddleContactPayload
	EventPaddleContact

	// EventServeRequest asks for a manual re-serve from the center
	// Trigger: InputSystem on serve key press
	// Consumer: ServeSystem | Payload: nil
	EventServeRequest

	// EventBallServed reports the ball was re-centered with a fresh velocity
	// Trigger: CollisionSystem after a point, ServeSystem after a manual serve
	// Consumer: AudioSystem | Payload: BallServedPayload
	EventBallServed
)

// String returns the name of the event type for logging
func (e EventType) String() string {
	switch e {
	case EventGainPoint:
		return "GainPoint"
	case EventPaddleContact:
		return "PaddleContact"
	case EventServeRequest:
		return "ServeRequest"
	case EventBallServed:
		return "BallServed"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single game event with metadata
// Events are transient: created and consumed within the same frame
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
