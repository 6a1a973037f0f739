package model

const (
	// DefaultGame is the placeholder game title for a brand-new run.
	DefaultGame = "Game"
	// DefaultCategory is the placeholder category for a brand-new run.
	DefaultCategory = "Any%"
	// DefaultSegment names the segment synthesized for an empty run.
	DefaultSegment = "Split 1"
)

// Run is the ordered checkpoint definition for one activity.
// Segment order is significant: it defines both checkpoint order and
// display order.
type Run struct {
	Game     string
	Category string
	Segments []string
}

// NewDefaultRun returns the stock three-segment run used before any
// real run document is loaded.
func NewDefaultRun() *Run {
	return &Run{
		Game:     DefaultGame,
		Category: DefaultCategory,
		Segments: []string{"Split 1", "Split 2", "Split 3"},
	}
}

// Normalize fills missing fields with defaults and guarantees at least
// one segment.
func (run *Run) Normalize() {
	if run.Game == "" {
		run.Game = DefaultGame
	}
	if run.Category == "" {
		run.Category = DefaultCategory
	}
	if len(run.Segments) == 0 {
		run.Segments = []string{DefaultSegment}
	}
}

// SegmentCount reports the number of segments.
func (run *Run) SegmentCount() int {
	return len(run.Segments)
}

// Clone returns a deep copy of the run.
func (run *Run) Clone() *Run {
	segments := make([]string, len(run.Segments))
	copy(segments, run.Segments)
	return &Run{
		Game:     run.Game,
		Category: run.Category,
		Segments: segments,
	}
}
