package components

// Intent is a paddle's movement request for the current frame
// Written by the input phase, read by motion
type Intent uint8

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
)

// Sign returns the vertical direction of the intent (+1 up, -1 down, 0 none)
func (i Intent) Sign() float64 {
	switch i {
	case IntentUp:
		return 1
	case IntentDown:
		return -1
	default:
		return 0
	}
}

func (i Intent) String() string {
	switch i {
	case IntentUp:
		return "Up"
	case IntentDown:
		return "Down"
	default:
		return "None"
	}
}
