package render

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Render outcomes used as the status label.
const (
	StatusRendered = "rendered"
	StatusSkipped  = "skipped"
	StatusFailed   = "failed"
)

// Metrics are the Prometheus collectors updated by a Runner.
type Metrics struct {
	Renders  *prometheus.CounterVec
	Duration *prometheus.HistogramVec
	Frames   *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := new(Metrics)
	m.Renders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docanim_renders_total",
			Help: "Render attempts by demo and outcome",
		},
		[]string{"demo", "status"},
	)
	m.Duration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "docanim_render_duration_seconds",
			Help:    "Wall time spent rendering a demo",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8),
		},
		[]string{"demo"},
	)
	m.Frames = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "docanim_gif_frames",
			Help: "Frames in the last GIF written for a demo",
		},
		[]string{"demo"},
	)
	reg.MustRegister(m.Renders, m.Duration, m.Frames)
	return m
}
