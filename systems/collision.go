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

// CollisionSystem turns this frame's contacts into tint changes and PaddleContact
// events, then checks the side edges for a point
//
// Paddle contacts are applied in player order, so when the ball touches both
// paddles in one frame Player2's tint wins. Wall contacts produce nothing
type CollisionSystem struct {
	ctx *engine.GameContext
}

func NewCollisionSystem(ctx *engine.GameContext) *CollisionSystem {
	return &CollisionSystem{ctx: ctx}
}

func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

func (s *CollisionSystem) Update(dt time.Duration) {
	s.resolveContacts()
	s.checkBoundary()
}

func (s *CollisionSystem) resolveContacts() {
	ctx := s.ctx
	w := ctx.World
	ball := ctx.BallEntity

	var touched [components.PlayerCount]bool
	for _, c := range ctx.Contacts() {
		a, b := engine.Entity(c.A), engine.Entity(c.B)
		var other engine.Entity
		switch ball {
		case a:
			other = b
		case b:
			other = a
		default:
			engine.Invariantf("collision", "contact %d/%d does not involve the ball", a, b)
		}

		if !w.Exists(other) {
			engine.Invariantf("collision", "contact with unknown entity %d", other)
		}
		if p, ok := ctx.PaddleOwner(other); ok {
			touched[p] = true
			ctx.Metrics.Inc(status.PaddleHits)
			continue
		}
		if w.Walls.Has(other) {
			ctx.Metrics.Inc(status.WallHits)
			continue
		}
		engine.Invariantf("collision", "entity %d is neither paddle nor wall", other)
	}

	for _, p := range components.Players() {
		if !touched[p] {
			continue
		}
		if !w.Balls.Has(ball) {
			engine.Invariantf("collision", "ball %d missing from store", ball)
		}
		w.Balls.Set(ball, components.BallComponent{Tint: p.Tint()})
		ctx.PushEvent(events.EventPaddleContact, events.PaddleContactPayload{Player: p})
		ctx.Log.Debug("paddle contact", zap.Int64("frame", ctx.Frame()), zap.Stringer("player", p))
	}
}

// checkBoundary awards a point when the ball center is past a side edge
// The ball is reset in the same call, so one crossing is never seen twice
func (s *CollisionSystem) checkBoundary() {
	ctx := s.ctx
	pos, ok := ctx.World.Positions.Get(ctx.BallEntity)
	if !ok {
		engine.Invariantf("collision", "ball %d has no position", ctx.BallEntity)
	}

	half := ctx.Config.Arena.HalfWidth()
	var scorer components.Player
	switch {
	case pos.X > half:
		scorer = components.Player1
	case pos.X < -half:
		scorer = components.Player2
	default:
		return
	}

	ctx.PushEvent(events.EventGainPoint, events.GainPointPayload{Player: scorer})
	ctx.ResetBall(scorer)
	ctx.PushEvent(events.EventBallServed, events.BallServedPayload{Toward: scorer})
}
