package components

// PositionComponent is an entity center in world units (origin at arena center, +y up)
type PositionComponent struct {
	X float64
	Y float64
}

// SizeComponent is an entity's full extent in world units, fixed at creation
type SizeComponent struct {
	Width  float64
	Height float64
}

// HalfWidth returns half the width
func (s SizeComponent) HalfWidth() float64 { return s.Width / 2 }

// HalfHeight returns half the height
func (s SizeComponent) HalfHeight() float64 { return s.Height / 2 }

// VelocityComponent is a linear velocity in units/second
type VelocityComponent struct {
	X float64
	Y float64
}

// IsZero reports whether the velocity is exactly zero
func (v VelocityComponent) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
