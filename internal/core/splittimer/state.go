package splittimer

import "time"

// State represents the current timer mode.
type State string

const (
	StateIdle     State = "Idle"
	StateRunning  State = "Running"
	StatePaused   State = "Paused"
	StateFinished State = "Finished"
)

// phase is the internal tagged representation of the timer state. Each
// variant carries exactly the timestamps that are meaningful in that
// state, so stale fields cannot leak across transitions.
type phase interface {
	state() State
}

type idlePhase struct{}

type runningPhase struct {
	startedAt   time.Time
	pausedTotal time.Duration
}

type pausedPhase struct {
	resume   runningPhase
	frozen   time.Duration
	pausedAt time.Time
}

type finishedPhase struct {
	frozen time.Duration
}

func (idlePhase) state() State     { return StateIdle }
func (runningPhase) state() State  { return StateRunning }
func (pausedPhase) state() State   { return StatePaused }
func (finishedPhase) state() State { return StateFinished }
