// Package loadable implements the load lifecycle used by every screen:
// a resource is Idle until requested, Loading while fetches are in flight,
// then Success or Error. Each controller guarantees that only its most
// recently issued load can commit, so an out-of-order network response can
// never overwrite fresher state.
package loadable

import (
	"time"
)

// Status enumerates the lifecycle states of a loadable resource.
type Status string

// Exactly one status holds at a time per controller.
const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// State is a snapshot of a loadable resource.
// Data is meaningful only in StatusSuccess; Err only in StatusError.
type State[T any] struct {
	Status    Status
	Data      T
	FetchedAt time.Time
	Err       error
}

// Idle returns the initial state.
func Idle[T any]() State[T] {
	return State[T]{Status: StatusIdle}
}

// Loading reports whether a fetch is in flight.
func (s State[T]) Loading() bool { return s.Status == StatusLoading }

// Ready reports whether Data holds a committed result.
func (s State[T]) Ready() bool { return s.Status == StatusSuccess }

// Failed reports whether the last issued load committed an error.
func (s State[T]) Failed() bool { return s.Status == StatusError }
