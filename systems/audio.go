package systems

import (
	"time"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/events"
)

// AudioSystem maps domain events to sound cues
// player may be nil if audio is disabled
type AudioSystem struct {
	player audio.Player
}

func NewAudioSystem(player audio.Player) *AudioSystem {
	return &AudioSystem{player: player}
}

func (s *AudioSystem) Priority() int {
	return constants.PriorityAudio
}

func (s *AudioSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventPaddleContact,
		events.EventGainPoint,
		events.EventBallServed,
	}
}

func (s *AudioSystem) HandleEvent(ctx *engine.GameContext, ev events.GameEvent) {
	if s.player == nil {
		return
	}

	switch ev.Type {
	case events.EventPaddleContact:
		s.player.Play(audio.CueContact)
	case events.EventGainPoint:
		s.player.Play(audio.CuePoint)
	case events.EventBallServed:
		if payload, ok := ev.Payload.(events.BallServedPayload); ok && payload.Manual {
			s.player.Play(audio.CueServe)
		}
	}
}

// Update implements System interface (no tick-based logic)
func (s *AudioSystem) Update(dt time.Duration) {}
