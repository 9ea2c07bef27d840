package engine

import "github.com/lixenwraith/vi-pong/components"

// Rect is an axis-aligned extent centered on (X, Y) in world units
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// PaddleView is a paddle as seen by presentation
type PaddleView struct {
	Player components.Player
	Rect
}

// BallView is the ball as seen by presentation
type BallView struct {
	Rect
	Tint components.Tint
}

// FrameView is a read-only copy of everything presentation needs for one frame
// Holding it does not retain any store record
type FrameView struct {
	Frame   int64
	Width   float64
	Height  float64
	Paddles [components.PlayerCount]PaddleView
	Ball    BallView
	Walls   []Rect
	Score   ScoreView
}

// Snapshot copies the current entity and score state
func (ctx *GameContext) Snapshot() FrameView {
	w := ctx.World
	view := FrameView{
		Frame:  ctx.frame,
		Width:  ctx.Config.Arena.Width,
		Height: ctx.Config.Arena.Height,
		Score:  ctx.Score.View(),
	}

	for _, p := range components.Players() {
		e := ctx.PaddleEntities[p]
		view.Paddles[p] = PaddleView{Player: p, Rect: ctx.rect(e)}
	}

	ball, _ := w.Balls.Get(ctx.BallEntity)
	view.Ball = BallView{Rect: ctx.rect(ctx.BallEntity), Tint: ball.Tint}

	for _, e := range w.Walls.All() {
		view.Walls = append(view.Walls, ctx.rect(e))
	}
	return view
}

func (ctx *GameContext) rect(e Entity) Rect {
	pos, _ := ctx.World.Positions.Get(e)
	size, _ := ctx.World.Sizes.Get(e)
	return Rect{X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height}
}
