package input

import "time"

// Clock supplies the current time; engine.TimeProvider satisfies it
type Clock interface {
	Now() time.Time
}

// KeyState derives a held-key set from terminal key events
//
// Terminals report press and auto-repeat but never release, so a key counts as
// down until hold elapses without a fresh event for it
// Not safe for concurrent use: events are applied on the game loop goroutine
type KeyState struct {
	clock    Clock
	hold     time.Duration
	lastSeen map[string]time.Time
	edges    map[string]bool
}

// NewKeyState creates an empty key state
func NewKeyState(hold time.Duration, clock Clock) *KeyState {
	return &KeyState{
		clock:    clock,
		hold:     hold,
		lastSeen: make(map[string]time.Time),
		edges:    make(map[string]bool),
	}
}

// Press records a key event. Returns true when the key was not already held
func (k *KeyState) Press(key string) bool {
	if key == "" {
		return false
	}
	fresh := !k.IsDown(key)
	k.lastSeen[key] = k.clock.Now()
	if fresh {
		k.edges[key] = true
	}
	return fresh
}

// IsDown reports whether key had an event within the hold window
func (k *KeyState) IsDown(key string) bool {
	seen, ok := k.lastSeen[key]
	if !ok {
		return false
	}
	return k.clock.Now().Sub(seen) < k.hold
}

// TakePress consumes a pending press edge for key
// Auto-repeat of a held key does not produce new edges
func (k *KeyState) TakePress(key string) bool {
	if !k.edges[key] {
		return false
	}
	delete(k.edges, key)
	return true
}

// Release forgets a key immediately
func (k *KeyState) Release(key string) {
	delete(k.lastSeen, key)
	delete(k.edges, key)
}

// Prune drops keys whose hold window has elapsed
func (k *KeyState) Prune() {
	now := k.clock.Now()
	for key, seen := range k.lastSeen {
		if now.Sub(seen) >= k.hold {
			delete(k.lastSeen, key)
		}
	}
}
