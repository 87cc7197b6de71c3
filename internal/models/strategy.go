package models

// ProcessingStrategy selects which pending order a store hands out next.
// A closed set: new strategies (e.g. shortest-cook-time-first) get a new
// constant here without changing the dequeue signature.
type ProcessingStrategy int

const (
	// FirstComeFirstServe dequeues the earliest-arrived order, ties broken
	// by the order's natural ordering.
	FirstComeFirstServe ProcessingStrategy = iota
)

func (s ProcessingStrategy) String() string {
	switch s {
	case FirstComeFirstServe:
		return "first_come_first_serve"
	default:
		return "unknown"
	}
}
