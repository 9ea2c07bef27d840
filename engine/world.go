package engine

import (
	"sort"
	"sync"
	"time"

	"github.com/lixenwraith/vi-pong/components"
)

// World contains all entities and their components using typed stores
// It is the single owner of Paddle, Ball and Wall records
type World struct {
	mu           sync.RWMutex
	nextEntityID Entity

	Paddles    *Store[components.PaddleComponent]
	Balls      *Store[components.BallComponent]
	Walls      *Store[components.WallComponent]
	Positions  *Store[components.PositionComponent]
	Sizes      *Store[components.SizeComponent]
	Velocities *Store[components.VelocityComponent]
	Intents    *Store[components.Intent]

	systems []System
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		Paddles:      NewStore[components.PaddleComponent](),
		Balls:        NewStore[components.BallComponent](),
		Walls:        NewStore[components.WallComponent](),
		Positions:    NewStore[components.PositionComponent](),
		Sizes:        NewStore[components.SizeComponent](),
		Velocities:   NewStore[components.VelocityComponent](),
		Intents:      NewStore[components.Intent](),
		systems:      make([]System, 0, 8),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e Entity) {
	w.Paddles.Remove(e)
	w.Balls.Remove(e)
	w.Walls.Remove(e)
	w.Positions.Remove(e)
	w.Sizes.Remove(e)
	w.Velocities.Remove(e)
	w.Intents.Remove(e)
}

// Exists reports whether any store holds the entity
func (w *World) Exists(e Entity) bool {
	return w.Positions.Has(e) || w.Paddles.Has(e) || w.Balls.Has(e) || w.Walls.Has(e)
}

// AddSystem adds a system to the world and keeps systems sorted by priority
// Systems with equal priority run in registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially in priority order
func (w *World) Update(dt time.Duration) {
	for _, system := range w.Systems() {
		system.Update(dt)
	}
}
