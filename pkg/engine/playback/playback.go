// Package playback steps a plane marker along a route one waypoint per frame.
package playback

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"lintang/flightpath/pkg/geo"
)

type State int

const (
	Idle State = iota
	Running
	Paused
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

var (
	ErrEmptyPath      = errors.New("playback path is empty")
	ErrNotRunning     = errors.New("playback is not running")
	ErrNotPaused      = errors.New("playback is not paused")
	ErrAlreadyRunning = errors.New("playback already running")
	ErrAtStart        = errors.New("playback is at the first frame")
)

// Frame is what the host draws for one animation step.
type Frame struct {
	Index        int            `json:"index"`
	Point        geo.GeoPoint   `json:"point"`
	AltitudeFeet int            `json:"altitude_feet"`
	Heading      float64        `json:"heading"`
	Segment      []geo.GeoPoint `json:"segment,omitempty"` // from the previous point, nil on the first frame
	State        string         `json:"state"`
}

type Player struct {
	mu    sync.Mutex
	path  []geo.GeoPoint
	index int // next frame to emit
	state State
}

func NewPlayer(path []geo.GeoPoint) *Player {
	p := make([]geo.GeoPoint, len(path))
	copy(p, path)
	return &Player{path: p}
}

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.path) == 0 {
		return ErrEmptyPath
	}
	if p.state == Running {
		return ErrAlreadyRunning
	}
	p.index = 0
	p.state = Running
	return nil
}

// Step emits the next frame. The last frame moves the player to Finished.
func (p *Player) Step() (Frame, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Running {
		return Frame{}, ErrNotRunning
	}
	f := p.frame(p.index)
	p.index++
	if p.index >= len(p.path) {
		p.state = Finished
	}
	f.State = p.state.String()
	return f, nil
}

func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Running {
		return ErrNotRunning
	}
	p.state = Paused
	return nil
}

func (p *Player) Resume() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Paused {
		return ErrNotPaused
	}
	p.state = Running
	return nil
}

// Rewind moves the plane back one waypoint and returns the frame it now sits on.
func (p *Player) Rewind() (Frame, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.path) == 0 {
		return Frame{}, ErrEmptyPath
	}
	if p.index <= 1 {
		return Frame{}, ErrAtStart
	}
	p.index--
	if p.state == Finished {
		p.state = Paused
	}
	f := p.frame(p.index - 1)
	f.State = p.state.String()
	return f, nil
}

// Reset rewinds to the first waypoint and starts again.
func (p *Player) Reset() error {
	p.mu.Lock()
	p.state = Idle
	p.index = 0
	p.mu.Unlock()
	return p.Start()
}

// Run emits a frame every interval until the path ends, the player leaves
// Running, or ctx is done.
func (p *Player) Run(ctx context.Context, interval time.Duration, emit func(Frame)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		f, err := p.Step()
		if err != nil {
			return err
		}
		emit(f)
		if f.State == Finished.String() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (p *Player) frame(i int) Frame {
	pt := p.path[i]
	f := Frame{
		Index:        i,
		Point:        pt,
		AltitudeFeet: int(math.Round(geo.MetersToFeet(pt.Alt))),
	}
	if i+1 < len(p.path) {
		f.Heading = geo.Bearing(pt, p.path[i+1])
	} else if i > 0 {
		f.Heading = geo.Bearing(p.path[i-1], pt)
	}
	if i > 0 {
		f.Segment = []geo.GeoPoint{p.path[i-1], pt}
	}
	return f
}
