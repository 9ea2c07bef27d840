package engine

import "github.com/lixenwraith/vi-pong/components"

// Score maps every player to a non-negative point counter
// The key set is seeded with all players at construction and never changes
type Score struct {
	counts map[components.Player]int
}

// NewScore creates a score with every player at 0
func NewScore() *Score {
	s := &Score{counts: make(map[components.Player]int, components.PlayerCount)}
	for _, p := range components.Players() {
		s.counts[p] = 0
	}
	return s
}

// Add awards one point to p and returns the new total
func (s *Score) Add(p components.Player) int {
	n, ok := s.counts[p]
	if !ok {
		Invariantf("score add", "no counter for player %v", p)
	}
	n++
	s.counts[p] = n
	return n
}

// Get returns the points of p
func (s *Score) Get(p components.Player) int {
	n, ok := s.counts[p]
	if !ok {
		Invariantf("score get", "no counter for player %v", p)
	}
	return n
}

// Len returns the number of counters
func (s *Score) Len() int {
	return len(s.counts)
}

// Verify checks that exactly the player variants are keyed
func (s *Score) Verify() error {
	if len(s.counts) != components.PlayerCount {
		return &InvariantError{Op: "score verify", Detail: "counter set does not match players"}
	}
	for _, p := range components.Players() {
		if _, ok := s.counts[p]; !ok {
			return &InvariantError{Op: "score verify", Detail: "missing counter for " + p.String()}
		}
	}
	return nil
}

// View returns a read-only copy for presentation
func (s *Score) View() ScoreView {
	var v ScoreView
	for _, p := range components.Players() {
		v.points[p] = s.counts[p]
	}
	return v
}

// ScoreView is an immutable snapshot of the counters
type ScoreView struct {
	points [components.PlayerCount]int
}

// Get returns the points of p, 0 for an invalid player
func (v ScoreView) Get(p components.Player) int {
	if !p.Valid() {
		return 0
	}
	return v.points[p]
}

// Total returns the sum of all counters
func (v ScoreView) Total() int {
	total := 0
	for _, n := range v.points {
		total += n
	}
	return total
}
