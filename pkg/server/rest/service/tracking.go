package service

import (
	"context"
	"errors"

	"lintang/flightpath/pkg/engine/tracking"
	"lintang/flightpath/pkg/server"

	"go.uber.org/zap"
)

var ErrTrackNotFound = errors.New("tracking session not found")

// TrackFix feeds a position fix into the named tracking session, starting it
// on the first fix.
func (s *NavigationService) TrackFix(ctx context.Context, name string, fix tracking.Fix) (tracking.Position, error) {
	s.mu.Lock()
	ts, ok := s.tracks[name]
	if !ok {
		ts = tracking.NewSession(s.opts.HeadingLineMeters)
		_ = ts.Start()
		s.tracks[name] = ts
	}
	s.mu.Unlock()

	if fix.Time.IsZero() {
		fix.Time = s.now()
	}
	pos, err := ts.Update(fix)
	switch {
	case errors.Is(err, tracking.ErrStaleFix):
		return tracking.Position{}, server.WrapErrorf(err, server.ErrBadParamInput, "fix is older than the last one")
	case errors.Is(err, tracking.ErrStopped), errors.Is(err, tracking.ErrNotTracking):
		return tracking.Position{}, server.WrapErrorf(err, server.ErrConflict, "tracking session %s is stopped", name)
	case err != nil:
		return tracking.Position{}, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}
	s.log.Debug("tracking fix", zap.String("session", name), zap.Float64("heading", pos.Heading), zap.Float64("ground_speed", pos.GroundSpeed))
	return pos, nil
}

// StopTracking ends the session and returns the last known position, if any.
func (s *NavigationService) StopTracking(ctx context.Context, name string) (*tracking.Position, error) {
	s.mu.Lock()
	ts, ok := s.tracks[name]
	s.mu.Unlock()
	if !ok {
		return nil, server.WrapErrorf(ErrTrackNotFound, server.ErrNotFound, "tracking session %s not found", name)
	}
	if err := ts.Stop(); err != nil {
		return nil, server.WrapErrorf(err, server.ErrConflict, "tracking session %s is not running", name)
	}
	s.log.Debug("tracking stopped", zap.String("session", name))
	if pos, ok := ts.Last(); ok {
		return &pos, nil
	}
	return nil, nil
}
