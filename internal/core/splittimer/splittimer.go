package splittimer

import "time"

// Engine is the split timer state machine. It tracks elapsed time
// across start/pause/resume/split/reset transitions against an ordered
// list of checkpoints whose count is supplied by the active run.
//
// Engine is not safe for concurrent use: the control service funnels
// every mutation and query through a single dispatch goroutine.
type Engine struct {
	phase        phase
	currentSplit int
	splitCount   int
	now          func() time.Time
}

// New creates an idle engine sized for splitCount checkpoints. Counts
// below one are clamped to one.
func New(splitCount int) *Engine {
	engine := &Engine{
		phase: idlePhase{},
		now:   time.Now,
	}
	engine.ApplyRun(splitCount)
	return engine
}

// StartOrSplit starts the timer when idle and advances one checkpoint
// when running. Reaching the last checkpoint freezes the elapsed time
// and finishes the timer. In Paused or Finished the call is a no-op.
func (engine *Engine) StartOrSplit() {
	switch current := engine.phase.(type) {
	case idlePhase:
		engine.phase = runningPhase{startedAt: engine.now()}
		engine.currentSplit = 0
	case runningPhase:
		engine.currentSplit++
		if engine.currentSplit >= engine.splitCount {
			engine.phase = finishedPhase{frozen: engine.runningElapsed(current)}
		}
	}
}

// TogglePause pauses a running timer or resumes a paused one. Paused
// duration is excluded from the elapsed total. In Idle or Finished the
// call is a no-op.
func (engine *Engine) TogglePause() {
	switch current := engine.phase.(type) {
	case runningPhase:
		engine.phase = pausedPhase{
			resume:   current,
			frozen:   engine.runningElapsed(current),
			pausedAt: engine.now(),
		}
	case pausedPhase:
		resumed := current.resume
		resumed.pausedTotal += engine.now().Sub(current.pausedAt)
		engine.phase = resumed
	}
}

// Reset returns the engine to Idle from any state and clears all
// timestamps. It is the only way out of Finished.
func (engine *Engine) Reset() {
	engine.phase = idlePhase{}
	engine.currentSplit = 0
}

// ApplyRun resizes the engine for a newly loaded run. The split count
// is clamped to at least one; a current split beyond the new count is
// pulled back to zero.
func (engine *Engine) ApplyRun(segmentCount int) {
	if segmentCount < 1 {
		segmentCount = 1
	}
	engine.splitCount = segmentCount
	if engine.currentSplit > engine.splitCount {
		engine.currentSplit = 0
	}
}

// Elapsed reports the running duration since Start, excluding paused
// time. It is zero while Idle and frozen while Paused or Finished.
func (engine *Engine) Elapsed() time.Duration {
	switch current := engine.phase.(type) {
	case runningPhase:
		return engine.runningElapsed(current)
	case pausedPhase:
		return current.frozen
	case finishedPhase:
		return current.frozen
	default:
		return 0
	}
}

// State reports the current timer mode.
func (engine *Engine) State() State {
	return engine.phase.state()
}

// CurrentSplit reports the zero-based index of the next checkpoint.
func (engine *Engine) CurrentSplit() int {
	return engine.currentSplit
}

// SplitCount reports the checkpoint count of the active run.
func (engine *Engine) SplitCount() int {
	return engine.splitCount
}

// runningElapsed computes elapsed time for a running phase, clamped so
// a misbehaving clock can never yield a negative duration.
func (engine *Engine) runningElapsed(current runningPhase) time.Duration {
	elapsed := engine.now().Sub(current.startedAt) - current.pausedTotal
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
