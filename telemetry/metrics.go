// Package telemetry exposes simulation metrics and a live state stream over HTTP.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/cosmos/sim"
)

// Metrics records simulation activity on its own registry
// It is a sim.Observer; all methods are safe for concurrent use
type Metrics struct {
	registry *prometheus.Registry

	frames        prometheus.Counter
	frameDuration prometheus.Histogram
	commands      *prometheus.CounterVec
	focus         *prometheus.CounterVec
	streamClients prometheus.Gauge
	streamSent    prometheus.Counter
	httpRequests  *prometheus.CounterVec
}

// NewMetrics creates and registers every collector
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cosmos_frames_total",
			Help: "Total number of rendered frames.",
		}),
		frameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cosmos_frame_duration_seconds",
			Help:    "Interval between consecutive frames.",
			Buckets: []float64{0.008, 0.016, 0.025, 0.033, 0.05, 0.066, 0.1, 0.25, 0.5, 1},
		}),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cosmos_commands_total",
			Help: "Executed UI commands.",
		}, []string{"command"}),
		focus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cosmos_focus_total",
			Help: "Camera focus transitions per body.",
		}, []string{"body"}),
		streamClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cosmos_stream_clients",
			Help: "Connected state stream clients.",
		}),
		streamSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cosmos_stream_messages_total",
			Help: "Snapshots written to stream clients.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cosmos_http_requests_total",
			Help: "HTTP requests by path and status code.",
		}, []string{"path", "code"}),
	}

	m.registry.MustRegister(
		m.frames,
		m.frameDuration,
		m.commands,
		m.focus,
		m.streamClients,
		m.streamSent,
		m.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry backing Handler
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// OnCommand implements sim.Observer
func (m *Metrics) OnCommand(cmd sim.Command) {
	m.commands.WithLabelValues(cmd.String()).Inc()
}

// OnFocus implements sim.Observer
func (m *Metrics) OnFocus(name string) {
	m.focus.WithLabelValues(name).Inc()
}

// OnFrame implements sim.Observer, the first frame has no interval
func (m *Metrics) OnFrame(interval time.Duration) {
	m.frames.Inc()
	if interval > 0 {
		m.frameDuration.Observe(interval.Seconds())
	}
}

// statusWriter captures the response code
type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

// instrument counts requests on a fixed path label
func (m *Metrics) instrument(path string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(sw, r)
		m.httpRequests.WithLabelValues(path, strconv.Itoa(sw.code)).Inc()
	})
}
