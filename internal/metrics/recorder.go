package metrics

// Recorder defines observability hooks for the control service's RPC
// dispatch. Implementations may forward to Prometheus; the NopRecorder
// is used when metrics are not configured.
type Recorder interface {
	IncCall(method string)
	IncFailure(method string)
}

// NopRecorder is a Recorder that does nothing.
type NopRecorder struct{}

func (NopRecorder) IncCall(string)    {}
func (NopRecorder) IncFailure(string) {}
