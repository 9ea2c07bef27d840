package physics

import (
	"errors"
	"fmt"
	"math"
)

var ErrDuplicateBody = errors.New("duplicate body id")

// Solver is a minimal zero-gravity rigid body stepper
// Dynamic circles are integrated and bounced off static/kinematic boxes with restitution 1
type Solver struct {
	bodies []*Body
	index  map[BodyID]int
}

func NewSolver() *Solver {
	return &Solver{
		bodies: make([]*Body, 0, 8),
		index:  make(map[BodyID]int),
	}
}

// Add registers a body; iteration and contact order follow registration order
func (s *Solver) Add(b Body) error {
	if _, exists := s.index[b.ID]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateBody, b.ID)
	}
	body := b
	s.index[b.ID] = len(s.bodies)
	s.bodies = append(s.bodies, &body)
	return nil
}

// Remove unregisters a body, keeping the order of the rest
func (s *Solver) Remove(id BodyID) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	s.bodies = append(s.bodies[:i], s.bodies[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.bodies); j++ {
		s.index[s.bodies[j].ID] = j
	}
}

// Body returns a copy of a registered body
func (s *Solver) Body(id BodyID) (Body, bool) {
	i, ok := s.index[id]
	if !ok {
		return Body{}, false
	}
	return *s.bodies[i], true
}

// Len returns the number of registered bodies
func (s *Solver) Len() int {
	return len(s.bodies)
}

// SetTransform teleports a body, returns false if unknown
func (s *Solver) SetTransform(id BodyID, pos Vec2) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.bodies[i].Position = pos
	return true
}

// SetVelocity commands a body's velocity, returns false if unknown
func (s *Solver) SetVelocity(id BodyID, vel Vec2) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.bodies[i].Velocity = vel
	return true
}

// Step advances dynamic bodies by dt seconds and returns the contacts touched during the step
// Each (dynamic, other) pair is reported at most once per step
func (s *Solver) Step(dt float64) []Contact {
	if dt <= 0 {
		return nil
	}

	var contacts []Contact
	for _, b := range s.bodies {
		if b.Kind != BodyDynamic {
			continue
		}
		contacts = s.stepBody(b, dt, contacts)
	}
	return contacts
}

// stepBody integrates one dynamic body with sub-steps no longer than half its radius
func (s *Solver) stepBody(b *Body, dt float64, contacts []Contact) []Contact {
	travel := b.Velocity.Len() * dt
	steps := 1
	if limit := b.Shape.Radius / 2; limit > 0 && travel > limit {
		steps = int(math.Ceil(travel / limit))
	}
	sub := dt / float64(steps)

	for i := 0; i < steps; i++ {
		b.Position = b.Position.Add(b.Velocity.Scale(sub))
		for _, other := range s.bodies {
			if other.Kind == BodyDynamic {
				continue
			}
			if !s.resolve(b, other) {
				continue
			}
			if !hasContact(contacts, b.ID, other.ID) {
				contacts = append(contacts, Contact{A: b.ID, B: other.ID})
			}
		}
	}
	return contacts
}

// resolve separates a dynamic circle from a box and bounces its velocity
// Returns true if the two overlapped
func (s *Solver) resolve(ball, box *Body) bool {
	if ball.Shape.Kind != ShapeCircle || box.Shape.Kind != ShapeBox {
		return false
	}

	r := ball.Shape.Radius
	rel := ball.Position.Sub(box.Position)
	closest := Vec2{
		X: clamp(rel.X, -box.Shape.HalfW, box.Shape.HalfW),
		Y: clamp(rel.Y, -box.Shape.HalfH, box.Shape.HalfH),
	}
	d := rel.Sub(closest)
	dist := d.Len()
	if dist >= r {
		return false
	}

	var normal Vec2
	var depth float64
	if dist > 0 {
		normal = d.Scale(1 / dist)
		depth = r - dist
	} else {
		// Center inside the box: exit along the axis of least penetration
		px := box.Shape.HalfW - math.Abs(rel.X)
		py := box.Shape.HalfH - math.Abs(rel.Y)
		if px < py {
			normal = Vec2{X: math.Copysign(1, rel.X)}
			depth = px + r
		} else {
			normal = Vec2{Y: math.Copysign(1, rel.Y)}
			depth = py + r
		}
	}

	ball.Position = ball.Position.Add(normal.Scale(depth))

	// Only bounce when approaching; a separating ball keeps its velocity
	if ball.Velocity.Dot(normal) >= 0 {
		return true
	}

	sideHit := math.Abs(normal.X) >= math.Abs(normal.Y)
	if box.Deflect > 0 && sideHit {
		speed := ball.Velocity.Len()
		offset := clamp(rel.Y/(box.Shape.HalfH+r), -1, 1)
		angle := offset * box.Deflect
		ball.Velocity = Vec2{
			X: math.Copysign(speed*math.Cos(angle), normal.X),
			Y: speed * math.Sin(angle),
		}
		return true
	}

	ball.Velocity = ball.Velocity.Reflect(normal)
	return true
}

func hasContact(contacts []Contact, a, b BodyID) bool {
	for _, c := range contacts {
		if c.A == a && c.B == b {
			return true
		}
	}
	return false
}
