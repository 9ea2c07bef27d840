package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyName normalizes a tcell key event to the names used in key bindings
// Runes are lower-cased so Shift does not change a binding; space is "Space";
// special keys use tcell's names ("Up", "Down", "Enter", "Ctrl-C")
// Returns "" for keys without a name
func KeyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			return "Space"
		}
		return string(unicode.ToLower(r))
	}
	if name, ok := tcell.KeyNames[ev.Key()]; ok {
		return name
	}
	return ""
}
