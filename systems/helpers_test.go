package systems

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/events"
)

const frameDT = 16 * time.Millisecond

type recordingPlayer struct {
	cues []audio.Cue
}

func (p *recordingPlayer) Play(cue audio.Cue) { p.cues = append(p.cues, cue) }

// eventRecorder is a handler system that keeps every event it is routed
type eventRecorder struct {
	got []events.GameEvent
}

func (r *eventRecorder) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventGainPoint,
		events.EventPaddleContact,
		events.EventServeRequest,
		events.EventBallServed,
	}
}

func (r *eventRecorder) HandleEvent(ctx *engine.GameContext, ev events.GameEvent) {
	r.got = append(r.got, ev)
}

func (r *eventRecorder) Update(time.Duration) {}
func (r *eventRecorder) Priority() int        { return 99 }

func (r *eventRecorder) count(t events.EventType) int {
	n := 0
	for _, ev := range r.got {
		if ev.Type == t {
			n++
		}
	}
	return n
}

type harness struct {
	ctx    *engine.GameContext
	clock  *engine.MockTimeProvider
	player *recordingPlayer
	events *eventRecorder
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	ctx, err := engine.NewGameContext(config.Defaults(), engine.Options{
		Rand:  rand.New(rand.NewSource(7)),
		Clock: clock,
	})
	if err != nil {
		t.Fatalf("NewGameContext: %v", err)
	}

	h := &harness{ctx: ctx, clock: clock, player: &recordingPlayer{}, events: &eventRecorder{}}
	Register(ctx, h.player)
	ctx.AddSystem(h.events)
	return h
}

// step advances the clock and runs one frame
func (h *harness) step(t *testing.T) {
	t.Helper()
	h.clock.Advance(frameDT)
	if err := h.ctx.Step(frameDT); err != nil {
		t.Fatalf("Step: %v", err)
	}
}

func (h *harness) placeBall(x, y, vx, vy float64) {
	w := h.ctx.World
	w.Positions.Set(h.ctx.BallEntity, components.PositionComponent{X: x, Y: y})
	w.Velocities.Set(h.ctx.BallEntity, components.VelocityComponent{X: vx, Y: vy})
}

func (h *harness) ball() (components.PositionComponent, components.VelocityComponent, components.BallComponent) {
	w := h.ctx.World
	pos, _ := w.Positions.Get(h.ctx.BallEntity)
	vel, _ := w.Velocities.Get(h.ctx.BallEntity)
	b, _ := w.Balls.Get(h.ctx.BallEntity)
	return pos, vel, b
}

func (h *harness) paddleY(p components.Player) float64 {
	pos, _ := h.ctx.World.Positions.Get(h.ctx.PaddleEntities[p])
	return pos.Y
}

// movePaddle parks a paddle at y so it cannot touch the ball in a test scenario
func (h *harness) movePaddle(p components.Player, y float64) {
	e := h.ctx.PaddleEntities[p]
	pos, _ := h.ctx.World.Positions.Get(e)
	pos.Y = y
	h.ctx.World.Positions.Set(e, pos)
}
