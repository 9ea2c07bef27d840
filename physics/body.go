package physics

// BodyID is a stable handle shared with the entity store
type BodyID uint64

// BodyKind selects how the solver treats a body
type BodyKind uint8

const (
	// BodyStatic never moves
	BodyStatic BodyKind = iota
	// BodyKinematic is positioned by the caller each step and is not affected by contacts
	BodyKinematic
	// BodyDynamic is integrated from its velocity and bounces off non-dynamic bodies
	BodyDynamic
)

// ShapeKind discriminates collider geometry
type ShapeKind uint8

const (
	ShapeBox ShapeKind = iota
	ShapeCircle
)

// Shape is an axis-aligned box (half extents) or a circle (radius)
type Shape struct {
	Kind   ShapeKind
	HalfW  float64
	HalfH  float64
	Radius float64
}

// Box returns a box shape from full width and height
func Box(width, height float64) Shape {
	return Shape{Kind: ShapeBox, HalfW: width / 2, HalfH: height / 2}
}

// Circle returns a circle shape
func Circle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

// Body is a collider registered with the solver
type Body struct {
	ID       BodyID
	Kind     BodyKind
	Shape    Shape
	Position Vec2
	Velocity Vec2

	// Deflect is the maximum bounce angle in radians for dynamic bodies hitting this box's side face
	// The angle scales with hit offset from center; 0 gives a mirror reflection
	Deflect float64
}

// Contact is a touching pair reported by Step; A is always the dynamic body
type Contact struct {
	A BodyID
	B BodyID
}
