package engine

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/config"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/events"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/physics"
	"github.com/lixenwraith/vi-pong/status"
)

// ErrHalted is returned by Step once a frame has failed
var ErrHalted = errors.New("simulation halted")

// Options carries the optional collaborators of a GameContext
// Zero values select a no-op logger, a time-seeded rand and the system clock
type Options struct {
	Logger *zap.Logger
	Rand   *rand.Rand
	Clock  input.Clock
}

// GameContext holds all simulation state and is passed explicitly to every system
// All access happens on the game loop goroutine in fixed system order
type GameContext struct {
	// ===== Immutable After Init =====

	Config    *config.Config
	World     *World
	Events    *events.EventQueue
	Router    *events.Router[*GameContext]
	Score     *Score
	Physics   *physics.Solver
	Keys      *input.KeyState
	Metrics   *status.Registry
	Log       *zap.Logger
	SessionID uuid.UUID
	Rand      *rand.Rand

	BallEntity     Entity
	PaddleEntities [components.PlayerCount]Entity
	WallEntities   []Entity

	// ===== Per-Frame =====

	frame    int64
	contacts []physics.Contact
	halted   error
}

// NewGameContext validates cfg, seeds the score and spawns paddles, ball and walls
// The ball starts centered, moving toward a random player's serve direction
func NewGameContext(cfg *config.Config, opts Options) (*GameContext, error) {
	if cfg == nil {
		cfg = config.Defaults()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game context: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	var clock input.Clock = opts.Clock
	if clock == nil {
		clock = NewTimeProvider()
	}

	session := uuid.New()
	queue := events.NewEventQueue()
	ctx := &GameContext{
		Config:    cfg,
		World:     NewWorld(),
		Events:    queue,
		Router:    events.NewRouter[*GameContext](queue),
		Score:     NewScore(),
		Physics:   physics.NewSolver(),
		Keys:      input.NewKeyState(cfg.Input.KeyHold, clock),
		Metrics:   status.NewRegistry(),
		Log:       logger.With(zap.String("session", session.String())),
		SessionID: session,
		Rand:      rng,
	}

	if err := ctx.Score.Verify(); err != nil {
		return nil, fmt.Errorf("game context: %w", err)
	}
	if err := ctx.spawn(); err != nil {
		return nil, fmt.Errorf("game context: %w", err)
	}

	ctx.ResetBall(ctx.RandomPlayer())

	ctx.Log.Info("session created",
		zap.Float64("width", cfg.Arena.Width),
		zap.Float64("height", cfg.Arena.Height),
	)
	return ctx, nil
}

// spawn creates every entity and registers its collider under the same ID
// Registration order (paddles by player, walls, ball) fixes contact order
func (ctx *GameContext) spawn() error {
	w := ctx.World
	arena := ctx.Config.Arena
	deflect := constants.MaxBounceAngleDegrees * math.Pi / 180

	for _, p := range components.Players() {
		e := w.CreateEntity()
		pos := components.PositionComponent{X: arena.PaddleX(p), Y: 0}
		size := components.SizeComponent{Width: arena.PaddleWidth, Height: arena.PaddleHeight}
		w.Paddles.Set(e, components.PaddleComponent{Player: p, Bindings: ctx.Config.Input.Bindings(p)})
		w.Positions.Set(e, pos)
		w.Sizes.Set(e, size)
		w.Intents.Set(e, components.IntentNone)
		ctx.PaddleEntities[p] = e

		if err := ctx.Physics.Add(physics.Body{
			ID:       physics.BodyID(e),
			Kind:     physics.BodyKinematic,
			Shape:    physics.Box(size.Width, size.Height),
			Position: physics.Vec2{X: pos.X, Y: pos.Y},
			Deflect:  deflect,
		}); err != nil {
			return fmt.Errorf("register paddle %v: %w", p, err)
		}
	}

	for _, side := range []components.WallSide{components.WallTop, components.WallBottom} {
		e := w.CreateEntity()
		y := arena.HalfHeight() + arena.WallHalf
		if side == components.WallBottom {
			y = -y
		}
		pos := components.PositionComponent{X: 0, Y: y}
		size := components.SizeComponent{Width: arena.Width, Height: 2 * arena.WallHalf}
		w.Walls.Set(e, components.WallComponent{Side: side})
		w.Positions.Set(e, pos)
		w.Sizes.Set(e, size)
		ctx.WallEntities = append(ctx.WallEntities, e)

		if err := ctx.Physics.Add(physics.Body{
			ID:       physics.BodyID(e),
			Kind:     physics.BodyStatic,
			Shape:    physics.Box(size.Width, size.Height),
			Position: physics.Vec2{X: pos.X, Y: pos.Y},
		}); err != nil {
			return fmt.Errorf("register wall: %w", err)
		}
	}

	ball := w.CreateEntity()
	diameter := 2 * arena.BallRadius
	w.Balls.Set(ball, components.BallComponent{Tint: components.TintNeutral})
	w.Positions.Set(ball, components.PositionComponent{})
	w.Sizes.Set(ball, components.SizeComponent{Width: diameter, Height: diameter})
	w.Velocities.Set(ball, components.VelocityComponent{})
	ctx.BallEntity = ball

	if err := ctx.Physics.Add(physics.Body{
		ID:    physics.BodyID(ball),
		Kind:  physics.BodyDynamic,
		Shape: physics.Circle(arena.BallRadius),
	}); err != nil {
		return fmt.Errorf("register ball: %w", err)
	}
	return nil
}

// AddSystem registers a per-frame system
// Systems that also implement events.Handler are registered with the router,
// handlers for the same event type run in system registration order
func (ctx *GameContext) AddSystem(s System) {
	ctx.World.AddSystem(s)
	if h, ok := s.(events.Handler[*GameContext]); ok {
		ctx.Router.Register(h)
	}
}

// Frame returns the index of the current (or last completed) frame
func (ctx *GameContext) Frame() int64 {
	return ctx.frame
}

// PushEvent queues a domain event stamped with the current frame
func (ctx *GameContext) PushEvent(t events.EventType, payload any) {
	ctx.Events.Push(events.GameEvent{Type: t, Payload: payload, Frame: ctx.frame})
}

// SetContacts stores the physics contact list of this frame
func (ctx *GameContext) SetContacts(c []physics.Contact) {
	ctx.contacts = c
}

// Contacts returns the physics contact list of this frame
func (ctx *GameContext) Contacts() []physics.Contact {
	return ctx.contacts
}

// RandomPlayer picks a player uniformly
func (ctx *GameContext) RandomPlayer() components.Player {
	return components.Players()[ctx.Rand.Intn(components.PlayerCount)]
}

// ServeVelocity returns a ball_speed velocity along server's serve direction
// with a random vertical angle within ±serve_angle
func (ctx *GameContext) ServeVelocity(server components.Player) components.VelocityComponent {
	motion := ctx.Config.Motion
	angle := 0.0
	if motion.ServeAngle > 0 {
		angle = (ctx.Rand.Float64()*2 - 1) * motion.ServeAngle * math.Pi / 180
	}
	return components.VelocityComponent{
		X: server.ServeDirection() * motion.BallSpeed * math.Cos(angle),
		Y: motion.BallSpeed * math.Sin(angle),
	}
}

// ResetBall centers the ball, clears its tint and serves it along server's direction
// The store and the solver are both updated so the next physics step starts from center
func (ctx *GameContext) ResetBall(server components.Player) components.VelocityComponent {
	w := ctx.World
	e := ctx.BallEntity
	if !w.Balls.Has(e) {
		Invariantf("reset ball", "ball entity %d missing from store", e)
	}

	vel := ctx.ServeVelocity(server)
	w.Positions.Set(e, components.PositionComponent{})
	w.Velocities.Set(e, vel)
	w.Balls.Set(e, components.BallComponent{Tint: components.TintNeutral})

	id := physics.BodyID(e)
	if !ctx.Physics.SetTransform(id, physics.Vec2{}) || !ctx.Physics.SetVelocity(id, physics.Vec2{X: vel.X, Y: vel.Y}) {
		Invariantf("reset ball", "ball body %d missing from solver", e)
	}
	return vel
}

// PaddleOwner resolves a paddle entity to its player
func (ctx *GameContext) PaddleOwner(e Entity) (components.Player, bool) {
	paddle, ok := ctx.World.Paddles.Get(e)
	if !ok {
		return 0, false
	}
	return paddle.Player, true
}

// Halted returns the error that stopped the simulation, nil while running
func (ctx *GameContext) Halted() error {
	return ctx.halted
}

// Step advances the simulation by one frame, running systems in priority order
// Events left in the queue after all systems ran are discarded
// An invariant violation aborts the frame, halts the simulation and is returned;
// any other panic propagates
func (ctx *GameContext) Step(dt time.Duration) (err error) {
	if ctx.halted != nil {
		return fmt.Errorf("%w: %w", ErrHalted, ctx.halted)
	}

	ctx.frame++
	ctx.Metrics.Inc(status.Frames)
	ctx.contacts = ctx.contacts[:0]

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		ie, ok := r.(*InvariantError)
		if !ok {
			panic(r)
		}
		dropped := ctx.Events.Reset()
		ctx.halted = ie
		ctx.Log.Error("frame aborted",
			zap.Int64("frame", ctx.frame),
			zap.Int("dropped_events", dropped),
			zap.Error(ie),
		)
		err = ie
	}()

	ctx.World.Update(dt)

	if n := ctx.Events.Reset(); n > 0 {
		ctx.Metrics.Counters.Get(status.DroppedEvents).Add(int64(n))
		ctx.Log.Warn("discarding undelivered events",
			zap.Int64("frame", ctx.frame),
			zap.Int("count", n),
		)
	}
	return nil
}
