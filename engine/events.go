package engine

// EventKind identifies a playback milestone
type EventKind int

const (
	// EventStrokeDone fires when a stroke finishes drawing
	EventStrokeDone EventKind = iota
	// EventPatternDone fires when the last stroke of a pattern finishes
	EventPatternDone
	// EventCleared fires after a reset or pattern switch wipes the surface
	EventCleared
)

// String returns human-readable event name
func (k EventKind) String() string {
	switch k {
	case EventStrokeDone:
		return "stroke-done"
	case EventPatternDone:
		return "pattern-done"
	case EventCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Event reports a playback milestone to the host. StrokeIndex is the
// index of the stroke the event concerns, where that applies
type Event struct {
	Kind         EventKind
	PatternIndex int
	StrokeIndex  int
}
