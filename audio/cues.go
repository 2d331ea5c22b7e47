// Package audio plays short synthesized cues at playback milestones: a
// chime when a stroke completes and a rising arpeggio when a whole
// pattern finishes. Everything is generated, no sample assets.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue durations; the chime is short enough that rapid stroke
// completions overlap pleasantly instead of queueing
const (
	chimeLen    = 90 * time.Millisecond
	arpeggioLen = 700 * time.Millisecond
)

// Cues owns the speaker. An uninitialized Cues is valid and silent, so
// hosts without an audio device keep working
type Cues struct {
	mu          sync.Mutex
	initialized bool
	muted       bool
}

// NewCues creates a silent cue player; call Initialize to open audio
func NewCues() *Cues {
	return &Cues{}
}

// Initialize opens the audio device. Call once before playback; on
// failure the cues stay silent and the error is only worth reporting
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("open speaker: %w", err)
	}
	c.initialized = true
	return nil
}

// SetMuted silences cues without closing the device
func (c *Cues) SetMuted(muted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = muted
}

// ToggleMuted flips the mute state and returns the new value
func (c *Cues) ToggleMuted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = !c.muted
	return c.muted
}

// Muted reports whether cues are currently silenced
func (c *Cues) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// StrokeDone chimes once
func (c *Cues) StrokeDone() {
	c.play(beep.Take(sampleRate.N(chimeLen), NewChimeGenerator(sampleRate, 1040)))
}

// PatternDone plays the completion arpeggio
func (c *Cues) PatternDone() {
	c.play(beep.Take(sampleRate.N(arpeggioLen), NewArpeggioGenerator(sampleRate)))
}

func (c *Cues) play(s beep.Streamer) {
	c.mu.Lock()
	ok := c.initialized && !c.muted
	c.mu.Unlock()
	if !ok {
		return
	}
	speaker.Play(s)
}
