package status

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Metric names written by the simulation
const (
	Frames        = "frames"
	PaddleHits    = "contacts.paddle"
	WallHits      = "contacts.wall"
	Points        = "points"
	Serves        = "serves"
	DroppedEvents = "events.dropped"
	FPS           = "fps"
)

// Registry groups session counters and gauges
// The game loop writes, the UI and log reader from any goroutine
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[Gauge]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[Gauge](),
	}
}

// Inc adds one to the named counter
func (r *Registry) Inc(name string) {
	r.Counters.Get(name).Add(1)
}

// Count returns the named counter, 0 if never written
func (r *Registry) Count(name string) int64 {
	if !r.Counters.Has(name) {
		return 0
	}
	return r.Counters.Get(name).Load()
}

// MarshalLogObject lets the registry be logged as a single zap field
func (r *Registry) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	r.Counters.Range(func(k string, v *atomic.Int64) {
		enc.AddInt64(k, v.Load())
	})
	r.Gauges.Range(func(k string, v *Gauge) {
		enc.AddFloat64(k, v.Get())
	})
	return nil
}

// Field returns the registry as a zap field named "metrics"
func (r *Registry) Field() zap.Field {
	return zap.Object("metrics", r)
}
