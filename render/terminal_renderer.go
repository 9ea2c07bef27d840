package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/components"
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/engine"
)

// TerminalRenderer draws a FrameView onto a tcell screen
//
// Layout: scoreboard rows on top, then the top wall row, the field, and the
// bottom wall row. World units are scaled independently on each axis to fill the field
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
	status string
}

// NewTerminalRenderer creates a renderer for a width x height terminal
func NewTerminalRenderer(screen tcell.Screen, width, height int) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, width: width, height: height}
}

// Resize updates the terminal dimensions
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// SetStatus sets a short message shown at the right of the scoreboard, "" to clear
func (r *TerminalRenderer) SetStatus(msg string) {
	r.status = msg
}

// RenderFrame renders the entire frame
func (r *TerminalRenderer) RenderFrame(view engine.FrameView) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	if r.width < constants.MinTerminalWidth || r.height < constants.MinTerminalHeight {
		r.drawText(0, 0, "terminal too small", defaultStyle.Foreground(RgbStatusText))
		r.screen.Show()
		return
	}

	r.drawScore(view.Score, defaultStyle)
	r.drawWalls(view, defaultStyle)
	r.drawNet(defaultStyle)
	for _, p := range view.Paddles {
		r.drawPaddle(view, p, defaultStyle)
	}
	r.drawBall(view, defaultStyle)

	r.screen.Show()
}

// Field geometry

func (r *TerminalRenderer) topWallRow() int    { return constants.ScoreRows }
func (r *TerminalRenderer) bottomWallRow() int { return r.height - 1 }
func (r *TerminalRenderer) fieldTop() int      { return r.topWallRow() + 1 }
func (r *TerminalRenderer) fieldRows() int     { return r.bottomWallRow() - r.fieldTop() }

// CellX maps a world x to a terminal column
func (r *TerminalRenderer) CellX(view engine.FrameView, x float64) int {
	col := int(math.Floor((x + view.Width/2) * float64(r.width) / view.Width))
	return clampInt(col, 0, r.width-1)
}

// CellY maps a world y (+y up) to a terminal row inside the field
func (r *TerminalRenderer) CellY(view engine.FrameView, y float64) int {
	rows := r.fieldRows()
	row := int(math.Floor((view.Height/2 - y) * float64(rows) / view.Height))
	return r.fieldTop() + clampInt(row, 0, rows-1)
}

func (r *TerminalRenderer) drawScore(score engine.ScoreView, style tcell.Style) {
	text := fmt.Sprintf("P1 %d | %d P2", score.Get(components.Player1), score.Get(components.Player2))
	x := (r.width - len([]rune(text))) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, 0, text, style.Foreground(RgbScore).Bold(true))

	if r.status != "" {
		sx := r.width - len([]rune(r.status)) - 1
		if sx > x+len(text) {
			r.drawText(sx, 0, r.status, style.Foreground(RgbStatusText))
		}
	}
}

func (r *TerminalRenderer) drawWalls(view engine.FrameView, style tcell.Style) {
	wallStyle := style.Foreground(RgbWall)
	for _, wall := range view.Walls {
		row := r.bottomWallRow()
		if wall.Y > 0 {
			row = r.topWallRow()
		}
		for x := r.CellX(view, wall.X-wall.Width/2); x <= r.CellX(view, wall.X+wall.Width/2); x++ {
			r.screen.SetContent(x, row, constants.WallChar, nil, wallStyle)
		}
	}
}

func (r *TerminalRenderer) drawNet(style tcell.Style) {
	netStyle := style.Foreground(RgbNet)
	x := r.width / 2
	for y := r.fieldTop(); y < r.bottomWallRow(); y += 2 {
		r.screen.SetContent(x, y, constants.NetChar, nil, netStyle)
	}
}

func (r *TerminalRenderer) drawPaddle(view engine.FrameView, p engine.PaddleView, style tcell.Style) {
	paddleStyle := style.Foreground(PlayerColor(p.Player))
	x0 := r.CellX(view, p.X-p.Width/2)
	x1 := r.CellX(view, p.X+p.Width/2)
	y0 := r.CellY(view, p.Y+p.Height/2)
	y1 := r.CellY(view, p.Y-p.Height/2)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, constants.PaddleChar, nil, paddleStyle)
		}
	}
}

func (r *TerminalRenderer) drawBall(view engine.FrameView, style tcell.Style) {
	b := view.Ball
	if math.Abs(b.X) > view.Width/2 {
		return
	}
	ballStyle := style.Foreground(TintColor(b.Tint))
	r.screen.SetContent(r.CellX(view, b.X), r.CellY(view, b.Y), constants.BallChar, nil, ballStyle)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		if x+i >= r.width {
			return
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
