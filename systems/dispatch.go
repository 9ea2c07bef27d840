package systems

import (
	"time"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
)

// DispatchSystem drains the frame's event queue through the router
type DispatchSystem struct {
	ctx *engine.GameContext
}

func NewDispatchSystem(ctx *engine.GameContext) *DispatchSystem {
	return &DispatchSystem{ctx: ctx}
}

func (s *DispatchSystem) Priority() int {
	return constants.PriorityDispatch
}

func (s *DispatchSystem) Update(dt time.Duration) {
	s.ctx.Router.DispatchAll(s.ctx)
}
