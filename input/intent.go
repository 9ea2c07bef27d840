package input

import "github.com/lixenwraith/vi-pong/components"

// Pressed is a queryable set of currently held keys
type Pressed interface {
	IsDown(key string) bool
}

// Sample maps held keys to a paddle intent. Pure function of the pressed set
// Both bindings held cancel out to IntentNone
func Sample(pressed Pressed, binding components.KeyBinding) components.Intent {
	up := pressed.IsDown(binding.Up)
	down := pressed.IsDown(binding.Down)

	switch {
	case up && !down:
		return components.IntentUp
	case down && !up:
		return components.IntentDown
	default:
		return components.IntentNone
	}
}

// KeySet is a fixed pressed set, used for synthetic input
type KeySet map[string]struct{}

// NewKeySet returns a set holding the given keys
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func (s KeySet) IsDown(key string) bool {
	_, ok := s[key]
	return ok
}
