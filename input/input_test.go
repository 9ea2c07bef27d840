package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/components"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

var leftBinding = components.KeyBinding{Up: "w", Down: "s"}

func TestSample(t *testing.T) {
	tests := []struct {
		name    string
		pressed KeySet
		want    components.Intent
	}{
		{"none", NewKeySet(), components.IntentNone},
		{"up", NewKeySet("w"), components.IntentUp},
		{"down", NewKeySet("s"), components.IntentDown},
		{"both cancel", NewKeySet("w", "s"), components.IntentNone},
		{"other player's keys", NewKeySet("Up", "Down"), components.IntentNone},
		{"up with unrelated", NewKeySet("w", "Up"), components.IntentUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sample(tt.pressed, leftBinding); got != tt.want {
				t.Errorf("Sample() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeyStateHold(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	ks := NewKeyState(150*time.Millisecond, clock)

	if ks.IsDown("w") {
		t.Fatal("key down before any press")
	}
	if !ks.Press("w") {
		t.Error("first press should be an edge")
	}

	clock.Advance(100 * time.Millisecond)
	if !ks.IsDown("w") {
		t.Error("key released inside hold window")
	}
	if ks.Press("w") {
		t.Error("repeat while held should not be an edge")
	}

	clock.Advance(149 * time.Millisecond)
	if !ks.IsDown("w") {
		t.Error("repeat should extend the hold window")
	}

	clock.Advance(time.Millisecond)
	if ks.IsDown("w") {
		t.Error("key still down after hold elapsed")
	}
	if got := Sample(ks, leftBinding); got != components.IntentNone {
		t.Errorf("Sample() after expiry = %v, want None", got)
	}
}

func TestKeyStateTakePress(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	ks := NewKeyState(150*time.Millisecond, clock)

	if ks.TakePress("Space") {
		t.Fatal("edge without press")
	}

	ks.Press("Space")
	ks.Press("Space")
	if !ks.TakePress("Space") {
		t.Fatal("press edge not recorded")
	}
	if ks.TakePress("Space") {
		t.Error("edge consumed twice")
	}

	clock.Advance(200 * time.Millisecond)
	ks.Press("Space")
	if !ks.TakePress("Space") {
		t.Error("press after hold expiry should be a new edge")
	}
}

func TestKeyStateReleaseAndPrune(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	ks := NewKeyState(150*time.Millisecond, clock)

	ks.Press("w")
	ks.Press("s")
	ks.Release("w")
	if ks.IsDown("w") {
		t.Error("released key still down")
	}
	if ks.Press("") {
		t.Error("empty key name accepted")
	}

	clock.Advance(time.Second)
	ks.Prune()
	if len(ks.lastSeen) != 0 {
		t.Errorf("Prune left %d keys", len(ks.lastSeen))
	}
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"lower rune", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), "w"},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModShift), "s"},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "Space"},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "Up"},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), "Down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyName(tt.ev); got != tt.want {
				t.Errorf("KeyName() = %q, want %q", got, tt.want)
			}
		})
	}
}
