// Package tracking turns a stream of position fixes into the user marker:
// position, heading, ground speed and a heading line ahead of the aircraft.
package tracking

import (
	"errors"
	"sync"
	"time"

	"lintang/flightpath/pkg/geo"
)

type State int

const (
	Idle State = iota
	Tracking
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Tracking:
		return "tracking"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

var (
	ErrStopped     = errors.New("tracking session stopped")
	ErrNotTracking = errors.New("tracking session not started")
	ErrStaleFix    = errors.New("fix is older than the previous one")
)

// DefaultHeadingLineMeters 20 NM
var DefaultHeadingLineMeters = geo.NauticalMilesToMeters(20)

// Fix is one reading from the host's geolocation source. Heading is optional.
type Fix struct {
	Point      geo.GeoPoint
	Heading    float64
	HasHeading bool
	Time       time.Time
}

type Position struct {
	Point       geo.GeoPoint   `json:"point"`
	Heading     float64        `json:"heading"`
	GroundSpeed float64        `json:"ground_speed"` // m/s
	HeadingLine []geo.GeoPoint `json:"heading_line"`
	Time        time.Time      `json:"time"`
}

type Session struct {
	mu                sync.Mutex
	state             State
	headingLineMeters float64
	last              *Position
}

func NewSession(headingLineMeters float64) *Session {
	if headingLineMeters <= 0 {
		headingLineMeters = DefaultHeadingLineMeters
	}
	return &Session{headingLineMeters: headingLineMeters}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Stopped {
		return ErrStopped
	}
	s.state = Tracking
	return nil
}

func (s *Session) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Tracking {
		return ErrNotTracking
	}
	s.state = Stopped
	return nil
}

func (s *Session) Last() (Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return Position{}, false
	}
	return *s.last, true
}

// Update folds a fix into the session. Without a reported heading the bearing
// from the previous fix is used, and a stationary aircraft keeps its last
// heading.
func (s *Session) Update(fix Fix) (Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case Idle:
		return Position{}, ErrNotTracking
	case Stopped:
		return Position{}, ErrStopped
	}

	pos := Position{Point: fix.Point, Time: fix.Time}
	if s.last != nil {
		if fix.Time.Before(s.last.Time) {
			return Position{}, ErrStaleFix
		}
		dist := geo.HaversineDistance(s.last.Point, fix.Point)
		if elapsed := fix.Time.Sub(s.last.Time).Seconds(); elapsed > 0 {
			pos.GroundSpeed = dist / elapsed
		}
		pos.Heading = s.last.Heading
		if dist > 0 {
			pos.Heading = geo.Bearing(s.last.Point, fix.Point)
		}
	}
	if fix.HasHeading {
		pos.Heading = geo.NormalizeBearing(fix.Heading)
	}
	pos.HeadingLine = []geo.GeoPoint{
		fix.Point,
		geo.DestinationPoint(fix.Point, pos.Heading, s.headingLineMeters),
	}

	s.last = &pos
	return pos, nil
}
