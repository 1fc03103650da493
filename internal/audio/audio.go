// Package audio plays short synthesized cues for world events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"raycaster/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Cue lengths.
const (
	BumpDuration = 70 * time.Millisecond
	EditDuration = 45 * time.Millisecond
)

const (
	bumpFreq  = 110.0
	clearFreq = 196.0
)

// wall variant 1, 2, 3 pitches: C5 E5 G5.
var editFreqs = []float64{523.25, 659.25, 783.99}

// Player mixes cues onto the speaker. It implements world.Listener; before
// Init succeeds, or while muted, cues are dropped.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewPlayer returns a player that stays silent until Init.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to open audio device: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// SetMuted silences or restores cues.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// OnBump plays a low thud when the viewer walks into a wall.
func (p *Player) OnBump(core.Vec2) { p.play(BumpTone()) }

// OnCellEdit plays a blip pitched by the new cell value.
func (p *Player) OnCellEdit(_, _ int, v core.Cell) { p.play(EditTone(v)) }

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || p.muted || s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// BumpTone is a short quiet low sine.
func BumpTone() beep.Streamer {
	return tone(bumpFreq, BumpDuration, -1.5)
}

// EditTone rises with the wall variant; clearing a cell plays a lower note.
func EditTone(v core.Cell) beep.Streamer {
	freq := clearFreq
	if v != core.Empty {
		freq = editFreqs[int(v-1)%len(editFreqs)]
	}
	return tone(freq, EditDuration, -2)
}

func tone(freq float64, d time.Duration, volume float64) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil
	}
	return beep.Take(sampleRate.N(d), &effects.Volume{Streamer: sine, Base: 2, Volume: volume})
}
