package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/snake-strategy/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

// Stream writes the same sample to both channels and reports false once duration samples were produced
func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
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
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

// Stream scales the wrapped stream by a linear attack ramp and release fade, truncating at totalSamples
func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a stream in a linear volume; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CueType identifies a synthesized sound cue
type CueType int

const (
	CueShot CueType = iota
	CueHit
	CueDeath
)

func (c CueType) String() string {
	switch c {
	case CueShot:
		return "shot"
	case CueHit:
		return "hit"
	case CueDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Per-cue mix levels, scaled by the master volume
var cueVolumes = map[CueType]float64{
	CueShot:  0.4,
	CueHit:   0.5,
	CueDeath: 0.8,
}

// CreateShotSound generates a short square blip for a projectile launch
func CreateShotSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(660.0, parameter.ShotCueDuration, WaveSquare, rate)
	return NewEnvelope(osc, parameter.ShotCueDuration, parameter.ShotCueAttack, parameter.ShotCueRelease, rate)
}

// CreateHitSound generates a noise tick for damage taken
func CreateHitSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, parameter.HitCueDuration, WaveNoise, rate)
	return NewEnvelope(noise, parameter.HitCueDuration, parameter.HitCueAttack, parameter.HitCueRelease, rate)
}

// CreateDeathSound generates two descending saw notes for a unit removal
func CreateDeathSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.DeathCueNoteDuration

	// A3
	n1 := NewOscillator(220.0, d, WaveSaw, rate)
	n1Shaped := NewEnvelope(n1, d, parameter.DeathCueAttack, 0, rate)

	// A2
	n2 := NewOscillator(110.0, d, WaveSaw, rate)
	n2Shaped := NewEnvelope(n2, d, 0, parameter.DeathCueRelease, rate)

	return beep.Seq(n1Shaped, n2Shaped)
}

// GetCue returns the streamer for a cue at the given master volume
func GetCue(cue CueType, rate beep.SampleRate, master float64) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case CueShot:
		s = CreateShotSound(rate)
	case CueHit:
		s = CreateHitSound(rate)
	case CueDeath:
		s = CreateDeathSound(rate)
	default:
		return nil
	}
	return newVolume(s, cueVolumes[cue]*master)
}
