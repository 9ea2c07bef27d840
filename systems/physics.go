package systems

import (
	"time"

	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/physics"
)

// PhysicsSystem is the boundary to the solver: it pushes paddle transforms and
// the ball state, steps the solver, then copies the ball back and records contacts
// The store stays authoritative between frames
type PhysicsSystem struct {
	ctx *engine.GameContext
}

func NewPhysicsSystem(ctx *engine.GameContext) *PhysicsSystem {
	return &PhysicsSystem{ctx: ctx}
}

func (s *PhysicsSystem) Priority() int {
	return constants.PriorityPhysics
}

func (s *PhysicsSystem) Update(dt time.Duration) {
	w := s.ctx.World
	solver := s.ctx.Physics

	for _, e := range w.Paddles.All() {
		pos, _ := w.Positions.Get(e)
		if !solver.SetTransform(physics.BodyID(e), physics.Vec2{X: pos.X, Y: pos.Y}) {
			engine.Invariantf("physics", "paddle %d not registered with solver", e)
		}
	}

	ball := s.ctx.BallEntity
	pos, okPos := w.Positions.Get(ball)
	vel, okVel := w.Velocities.Get(ball)
	if !okPos || !okVel {
		engine.Invariantf("physics", "ball %d missing position or velocity", ball)
	}
	id := physics.BodyID(ball)
	if !solver.SetTransform(id, physics.Vec2{X: pos.X, Y: pos.Y}) || !solver.SetVelocity(id, physics.Vec2{X: vel.X, Y: vel.Y}) {
		engine.Invariantf("physics", "ball %d not registered with solver", ball)
	}

	contacts := solver.Step(dt.Seconds())

	body, _ := solver.Body(id)
	w.Positions.Set(ball, components.PositionComponent{X: body.Position.X, Y: body.Position.Y})
	w.Velocities.Set(ball, components.VelocityComponent{X: body.Velocity.X, Y: body.Velocity.Y})

	s.ctx.SetContacts(contacts)
}
