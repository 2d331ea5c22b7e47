// Command rangoli animates procedural rangoli floor art in the
// terminal, drawing each pattern stroke by stroke with powder scatter
// and completion chimes.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vellari/rangoli/audio"
	"github.com/vellari/rangoli/engine"
	"github.com/vellari/rangoli/gallery"
	"github.com/vellari/rangoli/pattern"
	"github.com/vellari/rangoli/render"
)

// statusRows is the height of the help and progress area under the
// drawing
const statusRows = 2

func main() {
	var (
		patternKey = flag.String("pattern", "", "pattern id or index to start with")
		speed      = flag.Float64("speed", 1.0, "playback speed factor")
		seed       = flag.Int64("seed", 0, "powder effect seed, 0 picks one from the clock")
		mute       = flag.Bool("mute", false, "disable audio cues")
		list       = flag.Bool("list", false, "list available patterns and exit")
		export     = flag.String("export", "", "render the pattern to a PNG file and exit")
		size       = flag.Int("size", 800, "PNG size in pixels for -export")
	)
	flag.Parse()

	patterns := gallery.Patterns()

	if *list {
		for i, p := range patterns {
			fmt.Printf("%d  %-14s %s\n", i, p.ID, p.Description)
		}
		return
	}

	start, err := findPattern(patterns, *patternKey)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *export != "" {
		if err := exportPNG(patterns, start, *export, *size, *seed); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := run(patterns, start, *speed, *seed, *mute); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// findPattern resolves the -pattern flag, either a table index or a
// pattern id, with empty selecting the first pattern
func findPattern(patterns []pattern.Pattern, key string) (int, error) {
	if key == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(key); err == nil {
		if n < 0 || n >= len(patterns) {
			return 0, fmt.Errorf("pattern index %d out of range, have %d patterns", n, len(patterns))
		}
		return n, nil
	}
	for i, p := range patterns {
		if strings.EqualFold(p.ID, key) {
			return i, nil
		}
	}
	ids := make([]string, len(patterns))
	for i, p := range patterns {
		ids[i] = p.ID
	}
	return 0, fmt.Errorf("unknown pattern %q, available: %s", key, strings.Join(ids, ", "))
}

// exportPNG draws the whole pattern offline by stepping the scheduler
// to exhaustion, then writes the finished frame
func exportPNG(patterns []pattern.Pattern, index int, path string, size int, seed int64) error {
	renderer := render.NewImageRenderer(size)
	sched := &engine.ManualScheduler{}
	player, err := engine.NewPlayer(patterns, engine.Config{
		Renderer:  renderer,
		Effects:   render.NewEffects(seed),
		Scheduler: sched,
	})
	if err != nil {
		return err
	}
	if err := player.SelectPattern(index); err != nil {
		return err
	}
	player.Play()
	for sched.Step() {
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := renderer.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func run(patterns []pattern.Pattern, start int, speed float64, seed int64, mute bool) error {
	cues := audio.NewCues()
	cues.SetMuted(mute)
	if err := cues.Initialize(); err != nil {
		// no audio device, the session runs silent
		cues.SetMuted(true)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "panic: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()

	renderer := render.NewScreenRenderer(screen, statusRows)

	player, err := engine.NewPlayer(patterns, engine.Config{
		Renderer: renderer,
		Effects:  render.NewEffects(seed),
		Notify: func(ev engine.Event) {
			switch ev.Kind {
			case engine.EventStrokeDone:
				cues.StrokeDone()
			case engine.EventPatternDone:
				cues.PatternDone()
			}
		},
	})
	if err != nil {
		return err
	}
	player.SetSpeed(speed)
	show(player, start)

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	status := time.NewTicker(150 * time.Millisecond)
	defer status.Stop()

	current := start
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					return nil
				case ev.Rune() == ' ':
					player.Toggle()
				case ev.Rune() == 'r':
					player.Reset()
					player.Play()
				case ev.Rune() == 'n' || ev.Rune() == ']':
					current = (current + 1) % player.PatternCount()
					show(player, current)
				case ev.Rune() == 'p' || ev.Rune() == '[':
					current = (current - 1 + player.PatternCount()) % player.PatternCount()
					show(player, current)
				case ev.Rune() == '+' || ev.Rune() == '=':
					faster := player.State().Speed * 1.5
					if faster > 16 {
						faster = 16
					}
					player.SetSpeed(faster)
				case ev.Rune() == '-':
					slower := player.State().Speed / 1.5
					if slower < 0.25 {
						slower = 0.25
					}
					player.SetSpeed(slower)
				case ev.Rune() == 'm':
					cues.ToggleMuted()
				}
			case *tcell.EventResize:
				// the canvas is thrown away with the old geometry, so
				// restart the drawing at the new size
				player.Pause()
				screen.Sync()
				renderer.Resize()
				player.Reset()
				player.Play()
			}
		case <-status.C:
			drawStatus(screen, player, cues)
		}
	}
}

// show switches the player to a known-valid pattern and starts it
func show(player *engine.Player, index int) {
	if err := player.SelectPattern(index); err == nil {
		player.Play()
	}
}

func drawStatus(screen tcell.Screen, player *engine.Player, cues *audio.Cues) {
	cols, rows := screen.Size()
	if rows < statusRows {
		return
	}
	done, total, info := player.Progress()
	st := player.State()
	mode := "paused"
	switch {
	case st.Playing:
		mode = "drawing"
	case done == total:
		mode = "finished"
	}
	sound := "sound on"
	if cues.Muted() {
		sound = "muted"
	}
	line := fmt.Sprintf(" %s  %s  stroke %d/%d  speed %.2gx  %s",
		info.Name, mode, done, total, st.Speed, sound)
	help := " space play/pause  n/p pattern  +/- speed  r restart  m mute  q quit"
	putLine(screen, rows-2, cols, line)
	putLine(screen, rows-1, cols, help)
	screen.Show()
}

func putLine(screen tcell.Screen, row, cols int, text string) {
	style := tcell.StyleDefault.
		Foreground(tcell.ColorWhite).
		Background(tcell.ColorBlack)
	runes := []rune(text)
	for col := 0; col < cols; col++ {
		ch := ' '
		if col < len(runes) {
			ch = runes[col]
		}
		screen.SetContent(col, row, ch, nil, style)
	}
}
