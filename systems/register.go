package systems

import (
	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/engine"
)

// Register adds the full frame pipeline to ctx
// Handlers register in this order, so a GainPoint is scored before its cue plays
func Register(ctx *engine.GameContext, player audio.Player) {
	ctx.AddSystem(NewInputSystem(ctx))
	ctx.AddSystem(NewMotionSystem(ctx))
	ctx.AddSystem(NewPhysicsSystem(ctx))
	ctx.AddSystem(NewCollisionSystem(ctx))
	ctx.AddSystem(NewDispatchSystem(ctx))
	ctx.AddSystem(NewScoreSystem(ctx))
	ctx.AddSystem(NewServeSystem(ctx))
	ctx.AddSystem(NewAudioSystem(player))
}
