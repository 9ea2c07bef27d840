package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the simulation and render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the elapsed time fed into a single Step
	MaxFrameDelta = 100 * time.Millisecond
)

// Event Queue
const (
	// EventQueueCapacity is the initial capacity of the per-frame event slice
	EventQueueCapacity = 16

	// MaxDispatchRounds bounds re-dispatch of events pushed by handlers within one frame
	MaxDispatchRounds = 8
)

// System Execution Priorities (lower runs first)
// The order is the frame's concurrency control: every phase completes before the next reads its output
const (
	PriorityInput     = 10
	PriorityMotion    = 20
	PriorityPhysics   = 30
	PriorityCollision = 40
	PriorityDispatch  = 50
)

// Event handler systems have no per-frame work; their priorities only order registration
const (
	PriorityScore = 60
	PriorityServe = 61
	PriorityAudio = 70
)
