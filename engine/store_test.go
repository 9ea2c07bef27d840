package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-pong/components"
)

func TestStoreSetGetRemove(t *testing.T) {
	s := NewStore[components.PositionComponent]()

	s.Set(1, components.PositionComponent{X: 1})
	s.Set(2, components.PositionComponent{X: 2})
	s.Set(3, components.PositionComponent{X: 3})
	s.Set(2, components.PositionComponent{X: 20})

	if s.Count() != 3 {
		t.Fatalf("Expected 3 entities, got %d", s.Count())
	}
	if pos, ok := s.Get(2); !ok || pos.X != 20 {
		t.Errorf("Expected updated X=20, got %v (ok=%v)", pos.X, ok)
	}

	s.Remove(1)
	s.Remove(99)
	all := s.All()
	if len(all) != 2 || all[0] != 2 || all[1] != 3 {
		t.Errorf("Expected insertion order [2 3] after removal, got %v", all)
	}
	if s.Has(1) {
		t.Error("Removed entity still present")
	}

	all[0] = 42
	if s.All()[0] != 2 {
		t.Error("All() must return a copy")
	}

	s.Clear()
	if s.Count() != 0 {
		t.Errorf("Expected empty store after Clear, got %d", s.Count())
	}
}

func TestWorldEntities(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	if a == b || a == 0 {
		t.Fatalf("Expected distinct non-zero IDs, got %d and %d", a, b)
	}

	w.Positions.Set(a, components.PositionComponent{})
	w.Balls.Set(a, components.BallComponent{})
	if !w.Exists(a) || w.Exists(b) {
		t.Errorf("Exists: a=%v b=%v", w.Exists(a), w.Exists(b))
	}

	w.DestroyEntity(a)
	if w.Exists(a) || w.Balls.Has(a) {
		t.Error("Destroyed entity still in stores")
	}
}

type recordingSystem struct {
	name     string
	priority int
	log      *[]string
}

func (s *recordingSystem) Update(time.Duration) { *s.log = append(*s.log, s.name) }
func (s *recordingSystem) Priority() int        { return s.priority }

func TestWorldSystemOrder(t *testing.T) {
	w := NewWorld()
	var log []string

	w.AddSystem(&recordingSystem{"dispatch", 50, &log})
	w.AddSystem(&recordingSystem{"input", 10, &log})
	w.AddSystem(&recordingSystem{"collision", 40, &log})
	w.AddSystem(&recordingSystem{"motion", 20, &log})
	w.AddSystem(&recordingSystem{"motion2", 20, &log})

	w.Update(time.Millisecond)

	want := []string{"input", "motion", "motion2", "collision", "dispatch"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], log[i])
		}
	}
}
