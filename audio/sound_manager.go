package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-pong/constants"
)

// SoundManager owns the speaker and mixes cue streamers into it
// Safe for concurrent use; Play is a no-op until Initialize succeeds or while muted
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	muted       bool
	initialized bool
	log         *zap.Logger
}

// NewSoundManager creates a sound manager at the given master volume (0.0-1.0)
func NewSoundManager(volume float64, log *zap.Logger) *SoundManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(constants.AudioSampleRate),
		volume: volume,
		log:    log,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Info("audio initialized", zap.Int("sample_rate", int(sm.rate)))
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.initialized = false
}

// Play mixes a fresh streamer for cue into the output
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	st := CueStreamer(cue, sm.volume, sm.rate)
	if st == nil {
		sm.log.Warn("unknown audio cue", zap.Stringer("cue", cue))
		return
	}

	// The speaker callback reads the mixer under speaker's own lock
	speaker.Lock()
	sm.mixer.Add(st)
	speaker.Unlock()
}

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// SetMuted sets the mute flag
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// IsMuted reports the mute flag
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}
