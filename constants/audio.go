package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultVolume is the master volume (0.0-1.0)
	DefaultVolume = 0.6
)

// Paddle Blip Timing
const (
	BlipSoundDuration = 60 * time.Millisecond
	BlipSoundAttack   = 3 * time.Millisecond
	BlipSoundRelease  = 30 * time.Millisecond
)

// Point Chime Timing
const (
	ChimeNote1Duration = 90 * time.Millisecond
	ChimeNote2Duration = 260 * time.Millisecond
	ChimeAttack        = 5 * time.Millisecond
	ChimeNote1Release  = 40 * time.Millisecond
	ChimeNote2Release  = 200 * time.Millisecond
)

// Serve Whoosh Timing
const (
	WhooshSoundDuration = 250 * time.Millisecond
	WhooshSoundAttack   = 120 * time.Millisecond
	WhooshSoundRelease  = 120 * time.Millisecond
)
