package status

import (
	"sync"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMetricMapStablePointer(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	a := m.Get("x")
	a.Add(3)
	if b := m.Get("x"); b != a || b.Load() != 3 {
		t.Fatalf("Get returned a different metric")
	}
	if !m.Has("x") || m.Has("y") {
		t.Error("Has mismatch")
	}
	if m.Count() != 1 {
		t.Errorf("Count = %d, want 1", m.Count())
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[Gauge]()
	for _, k := range []string{"c", "a", "b"} {
		m.Get(k)
	}
	var got []string
	m.Range(func(k string, _ *Gauge) { got = append(got, k) })
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("Range order = %v", got)
	}
}

func TestRegistryConcurrentInc(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				r.Inc(Frames)
			}
		}()
	}
	wg.Wait()
	if got := r.Count(Frames); got != 8000 {
		t.Errorf("Count = %d, want 8000", got)
	}
	if r.Count(Points) != 0 || r.Counters.Has(Points) {
		t.Error("reading an unknown counter should not create it")
	}
}

func TestGauge(t *testing.T) {
	var g Gauge
	if g.Get() != 0 {
		t.Fatal("zero gauge should read 0")
	}
	g.Set(59.5)
	if g.Get() != 59.5 {
		t.Errorf("Get = %v", g.Get())
	}
}

func TestRegistryLogField(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := NewRegistry()
	r.Inc(Points)
	r.Gauges.Get(FPS).Set(60)

	zap.New(core).Info("summary", r.Field())

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("logged %d entries", len(entries))
	}
	m, ok := entries[0].ContextMap()["metrics"].(map[string]any)
	if !ok {
		t.Fatalf("metrics field = %#v", entries[0].ContextMap()["metrics"])
	}
	if m[Points] != int64(1) || m[FPS] != float64(60) {
		t.Errorf("metrics = %v", m)
	}
}
