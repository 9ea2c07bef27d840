package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-pong/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a wave of the given length; freq is ignored for noise
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping and ends the stream after its duration
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/sustain/release gain curve
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream by a linear gain; 0 or below is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateBlipSound generates the short paddle hit
func CreateBlipSound(vol float64, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(660.0, constants.BlipSoundDuration, WaveTriangle, rate)
	shaped := NewEnvelope(osc, constants.BlipSoundDuration, constants.BlipSoundAttack, constants.BlipSoundRelease, rate)
	return newVolume(shaped, vol)
}

// CreateChimeSound generates the rising two-note point chime
func CreateChimeSound(vol float64, rate beep.SampleRate) beep.Streamer {
	// G5
	n1 := NewOscillator(783.99, constants.ChimeNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.ChimeNote1Duration, constants.ChimeAttack, constants.ChimeNote1Release, rate)

	// C6
	n2 := NewOscillator(1046.50, constants.ChimeNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.ChimeNote2Duration, constants.ChimeAttack, constants.ChimeNote2Release, rate)

	// Square waves are loud; keep the chime at half gain
	return newVolume(beep.Seq(n1Shaped, n2Shaped), vol*0.5)
}

// CreateWhooshSound generates the serve noise sweep
func CreateWhooshSound(vol float64, rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, constants.WhooshSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, constants.WhooshSoundDuration, constants.WhooshSoundAttack, constants.WhooshSoundRelease, rate)

	// Sine bed under the noise
	tone := NewOscillator(220.0, constants.WhooshSoundDuration, WaveSine, rate)
	toneShaped := NewEnvelope(tone, constants.WhooshSoundDuration, constants.WhooshSoundAttack, constants.WhooshSoundRelease, rate)

	mixed := beep.Mix(newVolume(shaped, 0.6), newVolume(toneShaped, 0.4))
	return newVolume(beep.Take(rate.N(constants.WhooshSoundDuration), mixed), vol)
}

// CueStreamer returns a fresh streamer for cue, nil for an unknown cue
func CueStreamer(cue Cue, vol float64, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case CueContact:
		return CreateBlipSound(vol, rate)
	case CuePoint:
		return CreateChimeSound(vol, rate)
	case CueServe:
		return CreateWhooshSound(vol, rate)
	default:
		return nil
	}
}
