package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/snake-strategy/event"
	"github.com/lixenwraith/snake-strategy/parameter"
)

// Cues maps a frame's simulation events to sound cues, in event order, capped at AudioMaxCuesPerFrame
func Cues(events []event.GameEvent) []CueType {
	var cues []CueType
	for _, ev := range events {
		if len(cues) == parameter.AudioMaxCuesPerFrame {
			break
		}
		switch ev.Type {
		case event.EventProjectileFired:
			cues = append(cues, CueShot)
		case event.EventUnitHit:
			cues = append(cues, CueHit)
		case event.EventUnitKilled:
			cues = append(cues, CueDeath)
		}
	}
	return cues
}

// Player plays sound cues for simulation events through the speaker
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	muted       bool
	initialized bool
}

// NewPlayer creates a player; the speaker is not touched until Initialize
func NewPlayer(cfg parameter.AudioConfig) *Player {
	return &Player{
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		volume: cfg.MasterVolume,
		mixer:  &beep.Mixer{},
		muted:  !cfg.Enabled,
	}
}

// Initialize opens the speaker and starts the cue mixer
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup stops all cues and closes the speaker
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// ToggleMute flips the mute state and returns the new value
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	return p.muted
}

// IsMuted reports whether cues are suppressed
func (p *Player) IsMuted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Play starts the cues for one frame of events and returns how many were started
func (p *Player) Play(events []event.GameEvent) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return 0
	}

	cues := Cues(events)
	if len(cues) == 0 {
		return 0
	}

	speaker.Lock()
	for _, c := range cues {
		p.mixer.Add(GetCue(c, p.rate, p.volume))
	}
	speaker.Unlock()
	return len(cues)
}
