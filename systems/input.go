package systems

import (
	"time"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/events"
	"github.com/lixenwraith/vi-pong/input"
)

// InputSystem samples every paddle's intent from the pressed key set
// and turns a fresh serve key press into a serve request
type InputSystem struct {
	ctx *engine.GameContext
}

func NewInputSystem(ctx *engine.GameContext) *InputSystem {
	return &InputSystem{ctx: ctx}
}

func (s *InputSystem) Priority() int {
	return constants.PriorityInput
}

func (s *InputSystem) Update(dt time.Duration) {
	w := s.ctx.World
	keys := s.ctx.Keys
	keys.Prune()

	for _, e := range w.Paddles.All() {
		paddle, _ := w.Paddles.Get(e)
		w.Intents.Set(e, input.Sample(keys, paddle.Bindings))
	}

	if keys.TakePress(s.ctx.Config.Input.Serve) {
		s.ctx.PushEvent(events.EventServeRequest, nil)
	}
}
