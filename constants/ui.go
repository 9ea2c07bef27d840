package constants

// Terminal layout
const (
	// ScoreRows is the number of rows reserved above the arena for the scoreboard
	ScoreRows = 1

	// MinTerminalWidth and MinTerminalHeight are the smallest usable terminal sizes
	MinTerminalWidth  = 20
	MinTerminalHeight = 8
)

// Glyphs
const (
	PaddleChar = '█'
	BallChar   = '●'
	WallChar   = '▀'
	NetChar    = '┊'
)
