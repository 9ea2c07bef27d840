package systems

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/events"
	"github.com/lixenwraith/vi-pong/status"
)

// ServeSystem handles manual serve requests: the ball is re-centered toward a
// random player with no point awarded
type ServeSystem struct {
	ctx *engine.GameContext
}

func NewServeSystem(ctx *engine.GameContext) *ServeSystem {
	return &ServeSystem{ctx: ctx}
}

func (s *ServeSystem) Priority() int {
	return constants.PriorityServe
}

func (s *ServeSystem) EventTypes() []events.EventType {
	return []events.EventType{events.EventServeRequest}
}

func (s *ServeSystem) HandleEvent(ctx *engine.GameContext, ev events.GameEvent) {
	toward := ctx.RandomPlayer()
	ctx.ResetBall(toward)
	ctx.Metrics.Inc(status.Serves)
	ctx.PushEvent(events.EventBallServed, events.BallServedPayload{Toward: toward, Manual: true})
	ctx.Log.Debug("manual serve", zap.Int64("frame", ev.Frame), zap.Stringer("toward", toward))
}

// Update implements System interface (no tick-based logic)
func (s *ServeSystem) Update(dt time.Duration) {}
