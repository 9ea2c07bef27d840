package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/components"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWall       = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbNet        = tcell.NewRGBColor(90, 90, 110)   // Dim gray-blue
	RgbScore      = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusText = tcell.NewRGBColor(255, 165, 0)   // Orange

	RgbPlayer1 = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbPlayer2 = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbNeutral = tcell.NewRGBColor(255, 255, 255) // White
)

// PlayerColor returns the paddle color of p
func PlayerColor(p components.Player) tcell.Color {
	return TintColor(p.Tint())
}

// TintColor maps a ball tint to its display color
func TintColor(t components.Tint) tcell.Color {
	switch t {
	case components.TintPlayer1:
		return RgbPlayer1
	case components.TintPlayer2:
		return RgbPlayer2
	default:
		return RgbNeutral
	}
}
