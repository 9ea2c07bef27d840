package components

// BallComponent marks the single ball entity
type BallComponent struct {
	// Tint reflects the last paddle the ball touched
	Tint Tint
}
