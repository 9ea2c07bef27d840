package components

// WallSide identifies a static arena wall
type WallSide uint8

const (
	WallTop WallSide = iota
	WallBottom
)

// WallComponent marks a static wall the ball bounces off
type WallComponent struct {
	Side WallSide
}
