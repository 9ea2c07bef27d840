package engine

import "time"

// Entity is a stable identifier shared by the stores and the physics solver
type Entity uint64

// System is an interface that all systems must implement
type System interface {
	Update(dt time.Duration)
	Priority() int // Lower values run first
}
