package events

import "github.com/lixenwraith/vi-pong/components"

// GainPointPayload names the player awarded the point
type GainPointPayload struct {
	Player components.Player
}

// PaddleContactPayload names the player whose paddle the ball touched
type PaddleContactPayload struct {
	Player components.Player
}

// BallServedPayload describes a serve from the arena center
type BallServedPayload struct {
	// Toward is the player whose start direction was used
	Toward components.Player
	// Manual is true for a serve-key reset, false after a point
	Manual bool
}

// GainPoint builds an EventGainPoint for a frame
func GainPoint(p components.Player, frame int64) GameEvent {
	return GameEvent{Type: EventGainPoint, Payload: GainPointPayload{Player: p}, Frame: frame}
}

// PaddleContact builds an EventPaddleContact for a frame
func PaddleContact(p components.Player, frame int64) GameEvent {
	return GameEvent{Type: EventPaddleContact, Payload: PaddleContactPayload{Player: p}, Frame: frame}
}
