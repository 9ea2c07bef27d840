package systems

import (
	"time"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
)

// MotionSystem integrates paddle positions from their intents
// Ball motion belongs to the physics step
type MotionSystem struct {
	ctx *engine.GameContext
}

func NewMotionSystem(ctx *engine.GameContext) *MotionSystem {
	return &MotionSystem{ctx: ctx}
}

func (s *MotionSystem) Priority() int {
	return constants.PriorityMotion
}

func (s *MotionSystem) Update(dt time.Duration) {
	w := s.ctx.World
	speed := s.ctx.Config.Motion.PaddleSpeed
	travel := s.ctx.Config.Arena.PaddleTravel()
	secs := dt.Seconds()

	for _, e := range w.Paddles.All() {
		pos, ok := w.Positions.Get(e)
		if !ok {
			engine.Invariantf("motion", "paddle %d has no position", e)
		}
		intent, _ := w.Intents.Get(e)
		pos.Y = ClampPaddle(pos.Y+speed*intent.Sign()*secs, travel)
		w.Positions.Set(e, pos)
	}
}

// ClampPaddle keeps a paddle center within ±travel so its full extent stays in the arena
func ClampPaddle(y, travel float64) float64 {
	if y > travel {
		return travel
	}
	if y < -travel {
		return -travel
	}
	return y
}
