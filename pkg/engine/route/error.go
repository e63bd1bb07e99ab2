package route

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange = errors.New("waypoint index out of range")
	// ErrDegenerateRoute marks queries that need at least two waypoints.
	ErrDegenerateRoute = errors.New("route has fewer than two waypoints")
	ErrNoSegmentNearby = errors.New("no route segment near point")
	ErrNotDragging     = errors.New("no drag in progress")
)

// IndexError reports which operation rejected which index.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range for route of %d waypoints", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

func indexErr(op string, index, length int) error {
	return &IndexError{Op: op, Index: index, Len: length}
}
