package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/vellari/rangoli/core"
	"github.com/vellari/rangoli/pattern"
	"github.com/vellari/rangoli/render"
)

var (
	testChalk = core.RGB{R: 250, G: 250, B: 245}
	testRust  = core.RGB{R: 183, G: 65, B: 14}
)

// recorderRenderer captures draw calls in order so tests can assert
// exactly what a run painted.
type recorderRenderer struct {
	segments []render.Segment
	dots     [][]core.Point
	fills    []core.RGB
	clears   int
	presents int
	scatters int
	textures int
}

var _ render.Renderer = (*recorderRenderer)(nil)

func (r *recorderRenderer) Clear()                    { r.clears++ }
func (r *recorderRenderer) FillBackground(c core.RGB) { r.fills = append(r.fills, c) }
func (r *recorderRenderer) Present()                  { r.presents++ }
func (r *recorderRenderer) DrawSegment(s render.Segment) {
	r.segments = append(r.segments, s)
}

func (r *recorderRenderer) DrawDots(pts []core.Point, _ render.Style) {
	r.dots = append(r.dots, append([]core.Point(nil), pts...))
}

func (r *recorderRenderer) DrawScatter(core.Point, render.ScatterStyle) { r.scatters++ }
func (r *recorderRenderer) DrawTexture(core.Point, core.Point, render.Style) {
	r.textures++
}

// leakyScheduler hands out cancel functions that do nothing, modeling
// a timer that fired before it could be stopped.
type leakyScheduler struct {
	fns []func()
}

func (s *leakyScheduler) Schedule(_ time.Duration, fn func()) CancelFunc {
	s.fns = append(s.fns, fn)
	return func() {}
}

func testPatterns() []pattern.Pattern {
	return []pattern.Pattern{
		{
			ID:         "trial",
			Name:       "Trial",
			Background: core.RGB{R: 20, G: 10, B: 10},
			GridSize:   2,
			DotSpacing: 10,
			Strokes: []pattern.Stroke{
				{
					Points: []core.Point{
						core.Pt(40, 40), core.Pt(60, 40),
						core.Pt(40, 60), core.Pt(60, 60),
					},
					Color:     testChalk,
					Thickness: 0.5,
					Kind:      pattern.Dot,
				},
				{
					Points: []core.Point{
						core.Pt(10, 10), core.Pt(20, 10), core.Pt(30, 10), core.Pt(40, 10),
					},
					Color:     testRust,
					Thickness: 1,
					Kind:      pattern.Line,
					Delay:     1,
				},
				{
					Points: []core.Point{
						core.Pt(10, 20), core.Pt(20, 25), core.Pt(30, 20),
					},
					Color:     testRust,
					Thickness: 1,
					Kind:      pattern.Curve,
					Delay:     2,
				},
			},
		},
		{
			ID:         "second",
			Name:       "Second",
			Background: core.RGB{R: 10, G: 10, B: 30},
			Strokes: []pattern.Stroke{
				{
					Points:    []core.Point{core.Pt(0, 0), core.Pt(5, 5)},
					Color:     testRust,
					Thickness: 1,
					Kind:      pattern.Line,
				},
			},
		},
	}
}

// trialTicks is how many ticks the first test pattern needs to reach
// the terminal position: one dot burst, then segments plus a closing
// tick for each of the two remaining strokes.
const trialTicks = 1 + (3 + 1) + (2 + 1)

func newTestPlayer(t *testing.T) (*Player, *recorderRenderer, *ManualScheduler, *[]Event) {
	t.Helper()
	rec := &recorderRenderer{}
	sched := &ManualScheduler{}
	var events []Event
	p, err := NewPlayer(testPatterns(), Config{
		Renderer:  rec,
		Scheduler: sched,
		Notify:    func(ev Event) { events = append(events, ev) },
	})
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	return p, rec, sched, &events
}

// TestNewPlayerRequiresPatterns verifies construction fails on an empty gallery
func TestNewPlayerRequiresPatterns(t *testing.T) {
	if _, err := NewPlayer(nil, Config{}); !errors.Is(err, ErrNoPatterns) {
		t.Fatalf("NewPlayer(nil) error = %v, want ErrNoPatterns", err)
	}
}

// TestInitialState verifies a fresh player is idle on the first pattern
func TestInitialState(t *testing.T) {
	p, _, _, _ := newTestPlayer(t)
	got := p.State()
	want := PlaybackState{Speed: 1}
	if got != want {
		t.Errorf("initial state = %+v, want %+v", got, want)
	}
}

// TestSelectPatternOutOfRange verifies index validation
func TestSelectPatternOutOfRange(t *testing.T) {
	p, rec, _, _ := newTestPlayer(t)
	before := p.State()
	for _, idx := range []int{-1, 2, 99} {
		err := p.SelectPattern(idx)
		if !errors.Is(err, ErrPatternIndex) {
			t.Errorf("SelectPattern(%d) error = %v, want ErrPatternIndex", idx, err)
		}
	}
	if got := p.State(); got != before {
		t.Errorf("state changed by rejected selection: %+v", got)
	}
	if rec.clears != 0 {
		t.Errorf("rejected selection repainted the surface")
	}
}

// TestSelectPatternResetsAndRepaints verifies switching patterns clears progress and the surface
func TestSelectPatternResetsAndRepaints(t *testing.T) {
	p, rec, sched, events := newTestPlayer(t)
	p.Play()
	for i := 0; i < 3; i++ {
		sched.Step()
	}
	if err := p.SelectPattern(1); err != nil {
		t.Fatalf("SelectPattern(1): %v", err)
	}
	got := p.State()
	want := PlaybackState{PatternIndex: 1, Speed: 1}
	if got != want {
		t.Errorf("state after select = %+v, want %+v", got, want)
	}
	if rec.clears != 1 {
		t.Errorf("clears = %d, want 1", rec.clears)
	}
	if n := len(rec.fills); n == 0 || rec.fills[n-1] != testPatterns()[1].Background {
		t.Errorf("background not repainted for new pattern: %v", rec.fills)
	}
	last := (*events)[len(*events)-1]
	if last.Kind != EventCleared || last.PatternIndex != 1 {
		t.Errorf("last event = %+v, want cleared for pattern 1", last)
	}
	if sched.Step() {
		t.Error("tick still pending after pattern select")
	}
}

// TestPlayToTerminal verifies a full playback run draws every stroke in order
func TestPlayToTerminal(t *testing.T) {
	p, rec, sched, events := newTestPlayer(t)
	p.Play()
	steps := 0
	for sched.Step() {
		steps++
	}
	if steps != trialTicks {
		t.Errorf("ticks to terminal = %d, want %d", steps, trialTicks)
	}
	got := p.State()
	if got.StrokeIndex != 3 || got.PointIndex != 0 || got.Playing {
		t.Errorf("terminal state = %+v", got)
	}

	if len(rec.dots) != 1 || len(rec.dots[0]) != 4 {
		t.Fatalf("dot bursts = %v, want one burst of 4 markers", rec.dots)
	}
	wantSegments := []struct {
		from, to core.Point
		hasPrev  bool
		kind     pattern.Kind
	}{
		{core.Pt(10, 10), core.Pt(20, 10), false, pattern.Line},
		{core.Pt(20, 10), core.Pt(30, 10), true, pattern.Line},
		{core.Pt(30, 10), core.Pt(40, 10), true, pattern.Line},
		{core.Pt(10, 20), core.Pt(20, 25), false, pattern.Curve},
		{core.Pt(20, 25), core.Pt(30, 20), true, pattern.Curve},
	}
	if len(rec.segments) != len(wantSegments) {
		t.Fatalf("segments drawn = %d, want %d", len(rec.segments), len(wantSegments))
	}
	for i, want := range wantSegments {
		seg := rec.segments[i]
		if seg.From != want.from || seg.To != want.to || seg.HasPrev != want.hasPrev || seg.Kind != want.kind {
			t.Errorf("segment %d = %+v, want %+v", i, seg, want)
		}
	}
	if rec.presents != trialTicks {
		t.Errorf("presents = %d, want one per tick (%d)", rec.presents, trialTicks)
	}

	var strokeOrder []int
	var patternDone bool
	for _, ev := range *events {
		switch ev.Kind {
		case EventStrokeDone:
			strokeOrder = append(strokeOrder, ev.StrokeIndex)
		case EventPatternDone:
			patternDone = true
		}
	}
	if len(strokeOrder) != 3 || strokeOrder[0] != 0 || strokeOrder[1] != 1 || strokeOrder[2] != 2 {
		t.Errorf("stroke completion order = %v, want [0 1 2]", strokeOrder)
	}
	if !patternDone {
		t.Error("pattern completion never reported")
	}
}

// TestPauseResumeExactPosition verifies resume continues from the paused point
func TestPauseResumeExactPosition(t *testing.T) {
	p, rec, sched, _ := newTestPlayer(t)
	p.Play()
	for i := 0; i < 3; i++ {
		sched.Step()
	}
	p.Pause()
	got := p.State()
	if got.Playing || got.StrokeIndex != 1 || got.PointIndex != 2 {
		t.Fatalf("state at pause = %+v, want stroke 1 point 2 idle", got)
	}
	if sched.Step() {
		t.Fatal("canceled tick still ran after pause")
	}

	drawn := len(rec.segments)
	p.Play()
	if !sched.Step() {
		t.Fatal("no tick pending after resume")
	}
	if len(rec.segments) != drawn+1 {
		t.Fatalf("resume drew %d segments, want 1", len(rec.segments)-drawn)
	}
	seg := rec.segments[len(rec.segments)-1]
	if seg.From != core.Pt(30, 10) || seg.To != core.Pt(40, 10) {
		t.Errorf("resume segment = %+v, want continuation from point 2", seg)
	}
}

// TestResetIdempotent verifies repeated resets leave the player idle at zero
func TestResetIdempotent(t *testing.T) {
	p, rec, sched, events := newTestPlayer(t)
	p.Play()
	for i := 0; i < 4; i++ {
		sched.Step()
	}
	p.Reset()
	first := p.State()
	want := PlaybackState{Speed: 1}
	if first != want {
		t.Fatalf("state after reset = %+v, want %+v", first, want)
	}
	p.Reset()
	if second := p.State(); second != first {
		t.Errorf("second reset changed state: %+v", second)
	}
	if rec.clears != 2 {
		t.Errorf("clears = %d, want one per reset", rec.clears)
	}
	cleared := 0
	for _, ev := range *events {
		if ev.Kind == EventCleared {
			cleared++
		}
	}
	if cleared != 2 {
		t.Errorf("cleared events = %d, want 2", cleared)
	}
}

// TestSetSpeedAdjustsNextInterval verifies speed changes apply to the next scheduled tick
func TestSetSpeedAdjustsNextInterval(t *testing.T) {
	p, _, sched, _ := newTestPlayer(t)
	p.Play()
	p.SetSpeed(3)
	sched.Step()
	p.SetSpeed(-1)
	sched.Step()
	p.SetSpeed(0)
	sched.Step()
	p.SetSpeed(6)
	sched.Step()

	delays := sched.Delays()
	want := []time.Duration{
		DefaultBaseTick,       // scheduled at speed 1 by Play
		10 * time.Millisecond, // 30ms / 3
		10 * time.Millisecond, // negative factor ignored
		10 * time.Millisecond, // zero factor ignored
		DefaultFloorTick,      // 30ms / 6 clamped to the floor
	}
	if len(delays) != len(want) {
		t.Fatalf("delays = %v, want %d entries", delays, len(want))
	}
	for i := range want {
		if delays[i] != want[i] {
			t.Errorf("delay %d = %v, want %v", i, delays[i], want[i])
		}
	}
	if got := p.State().Speed; got != 6 {
		t.Errorf("speed = %v, want 6", got)
	}
}

// TestSpeedChangeKeepsStrokeSequence verifies mid-run speed changes never skip or reorder points
func TestSpeedChangeKeepsStrokeSequence(t *testing.T) {
	run := func(change bool) []render.Segment {
		rec := &recorderRenderer{}
		sched := &ManualScheduler{}
		p, err := NewPlayer(testPatterns(), Config{Renderer: rec, Scheduler: sched})
		if err != nil {
			t.Fatalf("NewPlayer: %v", err)
		}
		p.Play()
		steps := 0
		for sched.Step() {
			steps++
			if change && steps == 3 {
				p.SetSpeed(3)
			}
		}
		return rec.segments
	}
	plain := run(false)
	sped := run(true)
	if len(plain) != len(sped) {
		t.Fatalf("segment counts differ: %d vs %d", len(plain), len(sped))
	}
	for i := range plain {
		if plain[i] != sped[i] {
			t.Errorf("segment %d differs under speed change: %+v vs %+v", i, plain[i], sped[i])
		}
	}
}

// TestStaleTickIgnored verifies ticks from a cancelled schedule are dropped
func TestStaleTickIgnored(t *testing.T) {
	rec := &recorderRenderer{}
	sched := &leakyScheduler{}
	p, err := NewPlayer(testPatterns(), Config{Renderer: rec, Scheduler: sched})
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	p.Play()
	if len(sched.fns) != 1 {
		t.Fatalf("scheduled callbacks = %d, want 1", len(sched.fns))
	}
	sched.fns[0]()
	p.Pause()

	// The second callback was scheduled by the tick above; its cancel
	// was a no-op, so it can still fire after the pause.
	if len(sched.fns) != 2 {
		t.Fatalf("scheduled callbacks = %d, want 2", len(sched.fns))
	}
	before := p.State()
	drawn := len(rec.segments) + len(rec.dots)
	sched.fns[1]()
	if got := p.State(); got != before {
		t.Errorf("stale tick mutated state: %+v -> %+v", before, got)
	}
	if len(rec.segments)+len(rec.dots) != drawn {
		t.Error("stale tick drew on the surface")
	}
}

// TestPlayWithoutSurfaceStaysIdle verifies playback needs an attached renderer
func TestPlayWithoutSurfaceStaysIdle(t *testing.T) {
	sched := &ManualScheduler{}
	p, err := NewPlayer(testPatterns(), Config{Scheduler: sched})
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	p.Play()
	if p.State().Playing {
		t.Error("player entered Running without a surface")
	}
	if sched.Step() {
		t.Error("tick scheduled without a surface")
	}
	p.Reset()
	p.Pause()
}

// TestPlayAtTerminalIsNoOp verifies Play does nothing once a pattern has finished
func TestPlayAtTerminalIsNoOp(t *testing.T) {
	p, rec, sched, _ := newTestPlayer(t)
	p.Play()
	for sched.Step() {
	}
	presents := rec.presents
	p.Play()
	if p.State().Playing {
		t.Error("player restarted at terminal position")
	}
	if sched.Step() {
		t.Error("tick scheduled at terminal position")
	}
	if rec.presents != presents {
		t.Error("terminal play touched the surface")
	}
}

// TestProgressMonotonic verifies progress never moves backwards during a run
func TestProgressMonotonic(t *testing.T) {
	p, _, sched, _ := newTestPlayer(t)
	p.Play()
	prev := -1
	for {
		done, total, info := p.Progress()
		if info.ID != "trial" {
			t.Fatalf("progress metadata = %+v, want trial pattern", info)
		}
		if done < prev {
			t.Fatalf("progress went backward: %d after %d", done, prev)
		}
		if done > total {
			t.Fatalf("progress %d exceeds total %d", done, total)
		}
		prev = done
		if !sched.Step() {
			break
		}
	}
	done, total, _ := p.Progress()
	if done != total {
		t.Errorf("final progress = %d/%d, want complete", done, total)
	}
}

// TestToggle verifies Toggle flips between playing and paused
func TestToggle(t *testing.T) {
	p, _, sched, _ := newTestPlayer(t)
	p.Toggle()
	if !p.State().Playing {
		t.Fatal("toggle from idle did not start playback")
	}
	sched.Step()
	p.Toggle()
	if p.State().Playing {
		t.Fatal("toggle while running did not pause")
	}
	if sched.Step() {
		t.Error("tick survived toggle pause")
	}
}

// TestEffectsAccompanyDrawing verifies scatter flecks land alongside drawn segments
func TestEffectsAccompanyDrawing(t *testing.T) {
	rec := &recorderRenderer{}
	sched := &ManualScheduler{}
	p, err := NewPlayer(testPatterns(), Config{
		Renderer:  rec,
		Scheduler: sched,
		Effects:   render.NewEffects(9),
	})
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	p.Play()
	for sched.Step() {
	}
	// Four lattice markers plus five segments, each with a fixed fleck
	// count.
	if want := 9 * 3; rec.scatters != want {
		t.Errorf("scatter calls = %d, want %d", rec.scatters, want)
	}
	if rec.textures > 5 {
		t.Errorf("texture calls = %d, want at most one per segment", rec.textures)
	}
}
