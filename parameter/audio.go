package parameter

import "time"

// Audio cue tuning
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default master volume [0, 1]
	AudioMasterVolume = 0.5

	// AudioMaxCuesPerFrame caps how many cues a single frame may start
	AudioMaxCuesPerFrame = 4
)

// Cue envelopes
const (
	ShotCueDuration = 60 * time.Millisecond
	ShotCueAttack   = 5 * time.Millisecond
	ShotCueRelease  = 40 * time.Millisecond

	HitCueDuration = 40 * time.Millisecond
	HitCueAttack   = 2 * time.Millisecond
	HitCueRelease  = 30 * time.Millisecond

	// Death is two descending notes of DeathCueNoteDuration each
	DeathCueNoteDuration = 125 * time.Millisecond
	DeathCueAttack       = 5 * time.Millisecond
	DeathCueRelease      = 100 * time.Millisecond
)
