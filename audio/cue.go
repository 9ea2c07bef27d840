package audio

// Cue identifies a synthesized sound effect
type Cue int

const (
	CueContact Cue = iota // paddle blip
	CuePoint              // two-note chime
	CueServe              // noise whoosh
)

func (c Cue) String() string {
	switch c {
	case CueContact:
		return "Contact"
	case CuePoint:
		return "Point"
	case CueServe:
		return "Serve"
	default:
		return "Unknown"
	}
}

// Player plays cues without blocking the caller
type Player interface {
	Play(cue Cue)
}
