package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lintang/flightpath/pkg/engine/playback"
	"lintang/flightpath/pkg/server"

	"go.uber.org/zap"
)

const (
	PLAYBACK_START  = "start"
	PLAYBACK_STEP   = "step"
	PLAYBACK_PAUSE  = "pause"
	PLAYBACK_RESUME = "resume"
	PLAYBACK_REWIND = "rewind"
	PLAYBACK_RESET  = "reset"
)

var ErrUnknownPlaybackAction = errors.New("unknown playback action")

var playbackActions = map[string]bool{
	PLAYBACK_START:  true,
	PLAYBACK_STEP:   true,
	PLAYBACK_PAUSE:  true,
	PLAYBACK_RESUME: true,
	PLAYBACK_REWIND: true,
	PLAYBACK_RESET:  true,
}

// PlaybackResult Frame is nil for actions that only change state.
type PlaybackResult struct {
	State string
	Frame *playback.Frame
}

// Playback drives the route's flight replay. start snapshots the current
// waypoints, so later edits only show up after the next start or reset.
func (s *NavigationService) Playback(ctx context.Context, id string, action string) (PlaybackResult, error) {
	rs, err := s.session(ctx, id)
	if err != nil {
		return PlaybackResult{}, err
	}
	rs.mu.Lock()
	defer rs.mu.Unlock()

	var frame *playback.Frame
	step := func() error {
		f, err := rs.player.Step()
		if err != nil {
			return err
		}
		frame = &f
		return nil
	}

	if !playbackActions[action] {
		return PlaybackResult{}, server.WrapErrorf(ErrUnknownPlaybackAction, server.ErrBadParamInput, "unknown playback action %q", action)
	}
	if rs.player == nil && action != PLAYBACK_START && action != PLAYBACK_RESET {
		return PlaybackResult{}, server.WrapErrorf(playback.ErrNotRunning, server.ErrConflict, "playback has not been started")
	}

	switch action {
	case PLAYBACK_START:
		if rs.player != nil && rs.player.State() == playback.Running {
			err = playback.ErrAlreadyRunning
			break
		}
		rs.player = playback.NewPlayer(rs.editor.Points())
		if err = rs.player.Start(); err == nil {
			err = step()
		}
	case PLAYBACK_STEP:
		err = step()
	case PLAYBACK_PAUSE:
		err = rs.player.Pause()
	case PLAYBACK_RESUME:
		err = rs.player.Resume()
	case PLAYBACK_REWIND:
		var f playback.Frame
		if f, err = rs.player.Rewind(); err == nil {
			frame = &f
		}
	case PLAYBACK_RESET:
		rs.player = playback.NewPlayer(rs.editor.Points())
		if err = rs.player.Reset(); err == nil {
			err = step()
		}
	}
	if err != nil {
		return PlaybackResult{}, wrapPlaybackError(err, action)
	}

	s.log.Debug("playback", zap.String("route_id", id), zap.String("action", action), zap.Stringer("state", rs.player.State()))
	return PlaybackResult{State: rs.player.State().String(), Frame: frame}, nil
}

func wrapPlaybackError(err error, action string) error {
	msg := fmt.Sprintf("playback %s: %v", action, err)
	if errors.Is(err, playback.ErrEmptyPath) {
		return server.WrapErrorf(err, server.ErrBadParamInput, "%s", msg)
	}
	return server.WrapErrorf(err, server.ErrConflict, "%s", msg)
}

// Fly plays the route in real time, calling emit once per frame every
// interval. It picks up a running or paused replay and starts a new one
// otherwise. A pause from Playback ends the flight without error.
func (s *NavigationService) Fly(ctx context.Context, id string, interval time.Duration, emit func(playback.Frame)) error {
	rs, err := s.session(ctx, id)
	if err != nil {
		return err
	}

	rs.mu.Lock()
	player := rs.player
	switch {
	case player != nil && player.State() == playback.Running:
	case player != nil && player.State() == playback.Paused:
		err = player.Resume()
	default:
		player = playback.NewPlayer(rs.editor.Points())
		if err = player.Start(); err == nil {
			rs.player = player
		}
	}
	rs.mu.Unlock()
	if err != nil {
		return wrapPlaybackError(err, "fly")
	}

	s.log.Debug("fly", zap.String("route_id", id), zap.Duration("interval", interval))
	err = player.Run(ctx, interval, emit)
	if errors.Is(err, playback.ErrNotRunning) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
