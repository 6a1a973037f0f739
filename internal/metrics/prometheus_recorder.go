package metrics

import (
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus counters.
type PrometheusRecorder struct {
	registry *prom.Registry
	calls    *prom.CounterVec
	failures *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers the daemon's metrics
// on a fresh registry.
func NewPrometheusRecorder() *PrometheusRecorder {
	recorder := &PrometheusRecorder{registry: prom.NewRegistry()}

	recorder.calls = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "livespiff",
		Name:      "rpc_calls_total",
		Help:      "Control service calls by method",
	}, []string{"method"})
	recorder.failures = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "livespiff",
		Name:      "rpc_failures_total",
		Help:      "Control service calls that returned ok=false",
	}, []string{"method"})

	recorder.registry.MustRegister(recorder.calls, recorder.failures)
	return recorder
}

func (recorder *PrometheusRecorder) IncCall(method string) {
	recorder.calls.WithLabelValues(method).Inc()
}

func (recorder *PrometheusRecorder) IncFailure(method string) {
	recorder.failures.WithLabelValues(method).Inc()
}

// Handler returns an http.Handler serving the recorder's registry.
func (recorder *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(recorder.registry, promhttp.HandlerOpts{})
}
