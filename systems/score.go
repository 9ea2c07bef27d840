package systems

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/events"
	"github.com/lixenwraith/vi-pong/status"
)

// ScoreSystem applies GainPoint events to the score
// Presentation reads the result through GameContext.Snapshot
type ScoreSystem struct {
	ctx *engine.GameContext
}

func NewScoreSystem(ctx *engine.GameContext) *ScoreSystem {
	return &ScoreSystem{ctx: ctx}
}

func (s *ScoreSystem) Priority() int {
	return constants.PriorityScore
}

func (s *ScoreSystem) EventTypes() []events.EventType {
	return []events.EventType{events.EventGainPoint}
}

func (s *ScoreSystem) HandleEvent(ctx *engine.GameContext, ev events.GameEvent) {
	payload, ok := ev.Payload.(events.GainPointPayload)
	if !ok {
		engine.Invariantf("score", "GainPoint with payload %T", ev.Payload)
	}

	total := ctx.Score.Add(payload.Player)
	ctx.Metrics.Inc(status.Points)
	ctx.Log.Info("point",
		zap.Int64("frame", ev.Frame),
		zap.Stringer("player", payload.Player),
		zap.Int("total", total),
		zap.Int("p1", ctx.Score.Get(components.Player1)),
		zap.Int("p2", ctx.Score.Get(components.Player2)),
	)
}

// Update implements System interface (no tick-based logic)
func (s *ScoreSystem) Update(dt time.Duration) {}
