// Package route keeps the ordered waypoint list of one editing session.
package route

import (
	"lintang/flightpath/pkg/datastructure"
	"lintang/flightpath/pkg/engine/segment"
	"lintang/flightpath/pkg/geo"
)

// Editor owns a route. It is not safe for concurrent use; callers serialize
// access per session.
type Editor struct {
	waypoints []datastructure.Waypoint
}

func NewEditor() *Editor {
	return &Editor{waypoints: make([]datastructure.Waypoint, 0)}
}

func NewEditorFrom(wps []datastructure.Waypoint) *Editor {
	e := &Editor{waypoints: make([]datastructure.Waypoint, len(wps))}
	copy(e.waypoints, wps)
	return e
}

func (e *Editor) Len() int {
	return len(e.waypoints)
}

func (e *Editor) IsEmpty() bool {
	return len(e.waypoints) == 0
}

func (e *Editor) At(index int) (datastructure.Waypoint, error) {
	if !e.validIndex(index) {
		return datastructure.Waypoint{}, indexErr("at", index, e.Len())
	}
	return e.waypoints[index], nil
}

// Waypoints returns a copy.
func (e *Editor) Waypoints() []datastructure.Waypoint {
	out := make([]datastructure.Waypoint, len(e.waypoints))
	copy(out, e.waypoints)
	return out
}

func (e *Editor) Points() []geo.GeoPoint {
	return datastructure.Points(e.waypoints)
}

// Start is the first waypoint; false on an empty route.
func (e *Editor) Start() (datastructure.Waypoint, bool) {
	if e.IsEmpty() {
		return datastructure.Waypoint{}, false
	}
	return e.waypoints[0], true
}

// End is the last waypoint; false on an empty route.
func (e *Editor) End() (datastructure.Waypoint, bool) {
	if e.IsEmpty() {
		return datastructure.Waypoint{}, false
	}
	return e.waypoints[len(e.waypoints)-1], true
}

func (e *Editor) Append(p geo.GeoPoint, name, description string) int {
	e.waypoints = append(e.waypoints, datastructure.NewWaypoint(p, name, description))
	return len(e.waypoints) - 1
}

// InsertBetween places p right after afterIndex, which must be in [0, len-1).
// Returns the index of the new waypoint.
func (e *Editor) InsertBetween(p geo.GeoPoint, afterIndex int) (int, error) {
	if afterIndex < 0 || afterIndex >= e.Len()-1 {
		return 0, indexErr("insert", afterIndex, e.Len())
	}
	at := afterIndex + 1
	e.waypoints = append(e.waypoints, datastructure.Waypoint{})
	copy(e.waypoints[at+1:], e.waypoints[at:])
	e.waypoints[at] = datastructure.NewWaypoint(p, "", "")
	return at, nil
}

// InsertNearest inserts p into the segment closest to it. maxMeters <= 0
// accepts any distance.
func (e *Editor) InsertNearest(p geo.GeoPoint, maxMeters float64) (int, error) {
	idx, err := segment.NearestSegment(p, e.Points(), segment.WithMaxDistance(maxMeters))
	if err != nil {
		if e.Len() < 2 {
			return 0, ErrDegenerateRoute
		}
		return 0, ErrNoSegmentNearby
	}
	return e.InsertBetween(p, idx)
}

// MoveTo replaces the coordinate at index and returns the previous one so a
// cancelled drag can put it back.
func (e *Editor) MoveTo(index int, p geo.GeoPoint) (geo.GeoPoint, error) {
	if !e.validIndex(index) {
		return geo.GeoPoint{}, indexErr("move", index, e.Len())
	}
	prev := e.waypoints[index].Point
	e.waypoints[index].Point = p
	return prev, nil
}

func (e *Editor) RemoveAt(index int) (datastructure.Waypoint, error) {
	if !e.validIndex(index) {
		return datastructure.Waypoint{}, indexErr("remove", index, e.Len())
	}
	removed := e.waypoints[index]
	e.waypoints = append(e.waypoints[:index], e.waypoints[index+1:]...)
	return removed, nil
}

func (e *Editor) Rename(index int, name, description string) error {
	if !e.validIndex(index) {
		return indexErr("rename", index, e.Len())
	}
	e.waypoints[index].Name = name
	e.waypoints[index].Description = description
	return nil
}

func (e *Editor) Clear() {
	e.waypoints = e.waypoints[:0]
}

// TotalDistance in meters, 0 for routes shorter than two waypoints.
func (e *Editor) TotalDistance() float64 {
	return geo.PathDistance(e.Points())
}

// HeadingAt bearing of the segment starting at index.
func (e *Editor) HeadingAt(index int) (float64, error) {
	if index < 0 || index >= e.Len()-1 {
		return 0, indexErr("heading", index, e.Len())
	}
	return geo.Bearing(e.waypoints[index].Point, e.waypoints[index+1].Point), nil
}

func (e *Editor) Bounds() (geo.BoundingBox, bool) {
	return geo.Bounds(e.Points())
}

func (e *Editor) validIndex(index int) bool {
	return index >= 0 && index < len(e.waypoints)
}
