package service

import (
	"log/slog"
	"sync"

	"livespiff/internal/core/model"
	"livespiff/internal/core/splittimer"
	"livespiff/internal/metrics"
	"livespiff/internal/storage"
)

// Options contains optional collaborators for the control service.
type Options struct {
	Logger   *slog.Logger
	Recorder metrics.Recorder
}

// Service is the control endpoint for the timer daemon. It owns the
// timer engine and the active run, and funnels every operation through
// a single dispatch goroutine so that mutation stays serialized no
// matter how concurrently the transport delivers calls.
type Service struct {
	engine   *splittimer.Engine
	run      *model.Run
	logger   *slog.Logger
	recorder metrics.Recorder

	commands chan func()
	stopCh   chan struct{}

	mu      sync.Mutex
	running bool
}

// New creates a control service around run. A nil run starts the
// daemon with the stock default run.
func New(run *model.Run, options Options) *Service {
	if run == nil {
		run = model.NewDefaultRun()
	}
	run.Normalize()
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	if options.Recorder == nil {
		options.Recorder = metrics.NopRecorder{}
	}

	return &Service{
		engine:   splittimer.New(run.SegmentCount()),
		run:      run,
		logger:   options.Logger,
		recorder: options.Recorder,
		commands: make(chan func()),
		stopCh:   make(chan struct{}),
	}
}

// Start launches the dispatch loop. A stopped service may be started
// again.
func (service *Service) Start() {
	service.mu.Lock()
	if service.running {
		service.mu.Unlock()
		return
	}
	service.running = true
	service.stopCh = make(chan struct{})
	stopCh := service.stopCh
	service.mu.Unlock()

	go service.loop(stopCh)
}

// Stop terminates the dispatch loop. Calls submitted after Stop return
// zero values without touching state until Start is called again.
func (service *Service) Stop() {
	service.mu.Lock()
	if !service.running {
		service.mu.Unlock()
		return
	}
	service.running = false
	stopCh := service.stopCh
	service.mu.Unlock()

	close(stopCh)
}

func (service *Service) loop(stopCh <-chan struct{}) {
	for {
		select {
		case <-stopCh:
			return
		case command := <-service.commands:
			command()
		}
	}
}

// dispatch runs fn on the dispatch goroutine and waits for it to
// complete, so a caller observes all effects of its own call.
func (service *Service) dispatch(fn func()) {
	service.mu.Lock()
	stopCh := service.stopCh
	service.mu.Unlock()

	done := make(chan struct{})
	select {
	case service.commands <- func() {
		fn()
		close(done)
	}:
		<-done
	case <-stopCh:
	}
}

// StartOrSplit starts the timer when idle and splits when running.
func (service *Service) StartOrSplit() {
	service.recorder.IncCall("StartOrSplit")
	service.dispatch(func() {
		service.engine.StartOrSplit()
	})
}

// TogglePause pauses a running timer or resumes a paused one.
func (service *Service) TogglePause() {
	service.recorder.IncCall("TogglePause")
	service.dispatch(func() {
		service.engine.TogglePause()
	})
}

// Reset returns the timer to Idle.
func (service *Service) Reset() {
	service.recorder.IncCall("Reset")
	service.dispatch(func() {
		service.engine.Reset()
	})
}

// ElapsedMs reports elapsed time in milliseconds.
func (service *Service) ElapsedMs() int64 {
	service.recorder.IncCall("ElapsedMs")
	var ms int64
	service.dispatch(func() {
		ms = service.engine.Elapsed().Milliseconds()
	})
	return ms
}

// State reports the timer state name.
func (service *Service) State() string {
	service.recorder.IncCall("State")
	var state string
	service.dispatch(func() {
		state = string(service.engine.State())
	})
	return state
}

// CurrentSplit reports the zero-based index of the next checkpoint.
func (service *Service) CurrentSplit() int32 {
	service.recorder.IncCall("CurrentSplit")
	var index int32
	service.dispatch(func() {
		index = int32(service.engine.CurrentSplit())
	})
	return index
}

// SplitCount reports the checkpoint count of the active run.
func (service *Service) SplitCount() int32 {
	service.recorder.IncCall("SplitCount")
	var count int32
	service.dispatch(func() {
		count = int32(service.engine.SplitCount())
	})
	return count
}

// LoadRun replaces the active run with the document at path and resets
// the timer. A failed load leaves the active run untouched.
func (service *Service) LoadRun(path string) (bool, string) {
	service.recorder.IncCall("LoadRun")

	ok := false
	message := ""
	service.dispatch(func() {
		loaded, err := storage.LoadRun(path)
		if err != nil {
			message = err.Error()
			service.logger.Warn("run load failed", "path", path, "error", err)
			return
		}
		service.run = loaded
		service.engine.ApplyRun(loaded.SegmentCount())
		service.engine.Reset()
		ok = true
		message = "Run loaded"
		service.logger.Info("run loaded", "path", path, "segments", loaded.SegmentCount())
	})

	if !ok {
		service.recorder.IncFailure("LoadRun")
	}
	return ok, message
}

// SaveRun writes the active run to path.
func (service *Service) SaveRun(path string) (bool, string) {
	service.recorder.IncCall("SaveRun")

	ok := false
	message := ""
	service.dispatch(func() {
		if err := storage.SaveRun(path, service.run); err != nil {
			message = err.Error()
			service.logger.Warn("run save failed", "path", path, "error", err)
			return
		}
		ok = true
		message = "Run saved"
		service.logger.Info("run saved", "path", path)
	})

	if !ok {
		service.recorder.IncFailure("SaveRun")
	}
	return ok, message
}

// RunJSON returns the active run as a pretty-printed JSON document.
func (service *Service) RunJSON() string {
	service.recorder.IncCall("GetRunJson")
	text := "{}"
	service.dispatch(func() {
		encoded, err := storage.RunJSON(service.run)
		if err != nil {
			service.logger.Warn("run encode failed", "error", err)
			return
		}
		text = encoded
	})
	return text
}
