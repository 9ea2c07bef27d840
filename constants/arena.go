package constants

import "time"

// Arena geometry defaults in world units, origin at the arena center, +y up
const (
	DefaultArenaWidth   = 1280.0
	DefaultArenaHeight  = 720.0
	DefaultPaddleWidth  = 10.0
	DefaultPaddleHeight = 150.0
	DefaultPaddleOffset = 20.0 // Distance from side edge to paddle center
	DefaultBallRadius   = 25.0
	DefaultWallHalf     = 3.0 // Half thickness of the top and bottom walls
)

// Motion defaults
const (
	// DefaultPaddleSpeed is the paddle travel speed in units/second
	DefaultPaddleSpeed = 360.0

	// DefaultBallSpeed is the serve speed in units/second, constant for the whole rally
	DefaultBallSpeed = 320.0

	// DefaultServeAngle is the maximum random vertical serve angle in degrees
	DefaultServeAngle = 20.0

	// MaxBounceAngleDegrees is the paddle deflection angle at the paddle tip
	MaxBounceAngleDegrees = 60.0
)

// Input defaults
const (
	// DefaultKeyHold is how long a key counts as pressed after its last terminal key event
	// Terminals report press and auto-repeat, never release
	DefaultKeyHold = 150 * time.Millisecond

	DefaultPlayer1Up   = "w"
	DefaultPlayer1Down = "s"
	DefaultPlayer2Up   = "Up"
	DefaultPlayer2Down = "Down"
	DefaultServeKey    = "Space"
	DefaultQuitKey     = "q"
	DefaultMuteKey     = "m"
)
