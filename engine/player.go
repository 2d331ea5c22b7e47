// Package engine drives stroke-by-stroke pattern playback.
//
// The Player is a timer-driven state machine. Each tick draws one more
// piece of the active pattern through a render.Renderer: a whole dot
// lattice in one burst, or one segment of a line or curve stroke.
// Between ticks control belongs to the host. At most one tick is ever
// pending, and every control intent cancels it before touching state,
// so a stale callback can never observe post-reset indices.
package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vellari/rangoli/pattern"
	"github.com/vellari/rangoli/render"
)

// Default tick pacing; the floor keeps extreme speed factors from
// starving the host event loop
const (
	DefaultBaseTick  = 30 * time.Millisecond
	DefaultFloorTick = 8 * time.Millisecond
)

var (
	// ErrNoPatterns means the player was built with an empty table
	ErrNoPatterns = errors.New("no patterns")
	// ErrPatternIndex means a selection was out of range
	ErrPatternIndex = errors.New("pattern index out of range")
)

// PlaybackState is the externally visible position of the player
// StrokeIndex equal to the stroke count is the terminal position
type PlaybackState struct {
	PatternIndex int
	StrokeIndex  int
	PointIndex   int
	Playing      bool
	Speed        float64
}

// Config wires a Player to its collaborators. Zero values select
// production defaults; a nil Renderer leaves the player inert, which
// keeps headless hosts from crashing
type Config struct {
	Renderer  render.Renderer
	Effects   *render.Effects
	Scheduler Scheduler
	BaseTick  time.Duration
	FloorTick time.Duration
	Notify    func(Event)
}

// Player owns playback state for a fixed pattern table. All methods
// are safe for concurrent use; the scheduler callback serializes
// through the same mutex as the control intents
type Player struct {
	mu        sync.Mutex
	patterns  []pattern.Pattern
	renderer  render.Renderer
	effects   *render.Effects
	scheduler Scheduler
	baseTick  time.Duration
	floorTick time.Duration
	notify    func(Event)

	state  PlaybackState
	cancel CancelFunc
	seq    uint64
}

// NewPlayer builds a player over a shared read-only pattern table
func NewPlayer(patterns []pattern.Pattern, cfg Config) (*Player, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}
	p := &Player{
		patterns:  patterns,
		renderer:  cfg.Renderer,
		effects:   cfg.Effects,
		scheduler: cfg.Scheduler,
		baseTick:  cfg.BaseTick,
		floorTick: cfg.FloorTick,
		notify:    cfg.Notify,
	}
	if p.scheduler == nil {
		p.scheduler = TimerScheduler{}
	}
	if p.baseTick <= 0 {
		p.baseTick = DefaultBaseTick
	}
	if p.floorTick <= 0 {
		p.floorTick = DefaultFloorTick
	}
	p.state.Speed = 1
	return p, nil
}

// Play starts or resumes drawing. No-op while already playing, at the
// terminal position, or without a drawing surface
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state.Playing || p.renderer == nil {
		return
	}
	if p.state.StrokeIndex >= len(p.currentLocked().Strokes) {
		return
	}
	p.state.Playing = true
	p.scheduleLocked()
}

// Pause stops drawing, leaving the position where it is; Play resumes
// from the same stroke and point
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelPendingLocked()
	p.state.Playing = false
}

// Toggle pauses a running player and plays a paused one
func (p *Player) Toggle() {
	p.mu.Lock()
	playing := p.state.Playing
	p.mu.Unlock()
	if playing {
		p.Pause()
	} else {
		p.Play()
	}
}

// Reset stops playback, rewinds to the first stroke, and repaints the
// bare background. Resetting an already reset player changes nothing
func (p *Player) Reset() {
	p.mu.Lock()
	p.cancelPendingLocked()
	p.state.Playing = false
	p.state.StrokeIndex = 0
	p.state.PointIndex = 0
	p.repaintLocked()
	notify := p.notify
	ev := Event{Kind: EventCleared, PatternIndex: p.state.PatternIndex}
	p.mu.Unlock()
	if notify != nil {
		notify(ev)
	}
}

// SelectPattern switches the active pattern and rewinds, like Reset
// An out-of-range index is rejected without touching any state
func (p *Player) SelectPattern(index int) error {
	p.mu.Lock()
	if index < 0 || index >= len(p.patterns) {
		n := len(p.patterns)
		p.mu.Unlock()
		return fmt.Errorf("select pattern %d of %d: %w", index, n, ErrPatternIndex)
	}
	p.cancelPendingLocked()
	p.state.Playing = false
	p.state.PatternIndex = index
	p.state.StrokeIndex = 0
	p.state.PointIndex = 0
	p.repaintLocked()
	notify := p.notify
	ev := Event{Kind: EventCleared, PatternIndex: index}
	p.mu.Unlock()
	if notify != nil {
		notify(ev)
	}
	return nil
}

// SetSpeed changes the playback rate. The factor scales tick frequency
// and is read fresh at every scheduling decision, so a change lands on
// the very next tick. Non-positive factors are ignored
func (p *Player) SetSpeed(factor float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if factor > 0 {
		p.state.Speed = factor
	}
}

// State returns a copy of the current playback position
func (p *Player) State() PlaybackState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Progress reports strokes completed, strokes total, and the active
// pattern's metadata
func (p *Player) Progress() (done, total int, info pattern.Info) {
	p.mu.Lock()
	defer p.mu.Unlock()
	cur := p.currentLocked()
	return p.state.StrokeIndex, len(cur.Strokes), cur.Info()
}

// PatternCount returns the size of the pattern table
func (p *Player) PatternCount() int {
	return len(p.patterns)
}

func (p *Player) currentLocked() *pattern.Pattern {
	return &p.patterns[p.state.PatternIndex]
}

func (p *Player) intervalLocked() time.Duration {
	d := time.Duration(float64(p.baseTick) / p.state.Speed)
	if d < p.floorTick {
		d = p.floorTick
	}
	return d
}

// cancelPendingLocked revokes the pending tick and bumps the sequence
// so a callback that already fired but has not run yet goes stale
func (p *Player) cancelPendingLocked() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.seq++
}

func (p *Player) scheduleLocked() {
	p.seq++
	seq := p.seq
	p.cancel = p.scheduler.Schedule(p.intervalLocked(), func() { p.tick(seq) })
}

func (p *Player) repaintLocked() {
	if p.renderer == nil {
		return
	}
	p.renderer.Clear()
	p.renderer.FillBackground(p.currentLocked().Background)
	p.renderer.Present()
}

// tick advances playback by one unit: a dot stroke in full, one
// segment of a line or curve, or the closing step that retires a
// finished stroke
func (p *Player) tick(seq uint64) {
	p.mu.Lock()
	if seq != p.seq || !p.state.Playing {
		p.mu.Unlock()
		return
	}
	p.cancel = nil

	var events []Event
	s := &p.currentLocked().Strokes[p.state.StrokeIndex]
	switch {
	case s.Kind == pattern.Dot:
		p.renderer.DrawDots(s.Points, render.Style{Color: s.Color, Thickness: s.Thickness})
		if p.effects != nil {
			for _, pt := range s.Points {
				p.effects.Scatter(p.renderer, pt, s.Color)
			}
		}
		events = p.finishStrokeLocked(events)
	case p.state.PointIndex >= len(s.Points)-1:
		events = p.finishStrokeLocked(events)
	default:
		i := p.state.PointIndex
		seg := render.Segment{
			From:  s.Points[i],
			To:    s.Points[i+1],
			Kind:  s.Kind,
			Style: render.Style{Color: s.Color, Thickness: s.Thickness},
		}
		if i > 0 {
			seg.Prev = s.Points[i-1]
			seg.HasPrev = true
		}
		p.renderer.DrawSegment(seg)
		if p.effects != nil {
			p.effects.Scatter(p.renderer, seg.To, s.Color)
			p.effects.Texture(p.renderer, seg.From, seg.To, s.Color)
		}
		p.state.PointIndex++
	}
	p.renderer.Present()
	if p.state.Playing {
		p.scheduleLocked()
	}
	notify := p.notify
	p.mu.Unlock()

	if notify != nil {
		for _, ev := range events {
			notify(ev)
		}
	}
}

func (p *Player) finishStrokeLocked(events []Event) []Event {
	done := p.state.StrokeIndex
	p.state.StrokeIndex++
	p.state.PointIndex = 0
	events = append(events, Event{
		Kind:         EventStrokeDone,
		PatternIndex: p.state.PatternIndex,
		StrokeIndex:  done,
	})
	if p.state.StrokeIndex >= len(p.currentLocked().Strokes) {
		p.state.Playing = false
		events = append(events, Event{
			Kind:         EventPatternDone,
			PatternIndex: p.state.PatternIndex,
			StrokeIndex:  done,
		})
	}
	return events
}
