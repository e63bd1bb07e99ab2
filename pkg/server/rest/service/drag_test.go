package service_test

import (
	"context"
	"testing"
	"time"

	"lintang/flightpath/pkg/datastructure"
	"lintang/flightpath/pkg/engine/playback"
	"lintang/flightpath/pkg/geo"
	"lintang/flightpath/pkg/server"
	"lintang/flightpath/pkg/server/rest/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func assertPoint(t *testing.T, want, got geo.GeoPoint) {
	t.Helper()
	assert.InDelta(t, want.Lat, got.Lat, 1e-9)
	assert.InDelta(t, want.Lon, got.Lon, 1e-9)
}

func storedPoint(t *testing.T, store service.RouteStore, id string, index int) geo.GeoPoint {
	t.Helper()
	fresh := service.NewNavigationService(store, nil, testOpts, zap.NewNop())
	snap, err := fresh.GetRoute(context.Background(), id)
	require.NoError(t, err)
	require.Greater(t, len(snap.Waypoints), index)
	return snap.Waypoints[index].Point
}

func TestDrag(t *testing.T) {
	ctx := context.Background()
	store := newTestKV(t)
	svc := service.NewNavigationService(store, nil, testOpts, zap.NewNop())
	snap := newGeorgeRoute(t, svc)

	t.Run("idle session conflicts", func(t *testing.T) {
		_, err := svc.DragTo(ctx, snap.ID, mosselBay)
		assert.Equal(t, server.ErrConflict, errCode(t, err))
		_, err = svc.EndDrag(ctx, snap.ID)
		assert.Equal(t, server.ErrConflict, errCode(t, err))
		_, err = svc.CancelDrag(ctx, snap.ID)
		assert.Equal(t, server.ErrConflict, errCode(t, err))

		_, err = svc.BeginDrag(ctx, snap.ID, 7)
		assert.Equal(t, server.ErrBadParamInput, errCode(t, err))
		_, err = svc.BeginDrag(ctx, "missing", 0)
		assert.Equal(t, server.ErrNotFound, errCode(t, err))
	})

	t.Run("end stores the last position", func(t *testing.T) {
		st, err := svc.BeginDrag(ctx, snap.ID, 1)
		require.NoError(t, err)
		assert.True(t, st.Dragging)
		assert.Equal(t, 1, st.Index)

		st, err = svc.DragTo(ctx, snap.ID, mosselBay)
		require.NoError(t, err)
		assertPoint(t, mosselBay, st.Route.Waypoints[1].Point)
		assertPoint(t, georgeAirport, storedPoint(t, store, snap.ID, 1))

		st, err = svc.EndDrag(ctx, snap.ID)
		require.NoError(t, err)
		assert.False(t, st.Dragging)
		assert.Equal(t, -1, st.Index)
		assertPoint(t, mosselBay, storedPoint(t, store, snap.ID, 1))
	})

	t.Run("cancel restores the start position", func(t *testing.T) {
		_, err := svc.BeginDrag(ctx, snap.ID, 0)
		require.NoError(t, err)
		_, err = svc.DragTo(ctx, snap.ID, georgeAirport)
		require.NoError(t, err)
		_, err = svc.DragTo(ctx, snap.ID, mosselBay)
		require.NoError(t, err)

		st, err := svc.CancelDrag(ctx, snap.ID)
		require.NoError(t, err)
		assert.False(t, st.Dragging)
		assertPoint(t, georgeTown, st.Route.Waypoints[0].Point)
		assertPoint(t, georgeTown, storedPoint(t, store, snap.ID, 0))
	})

	t.Run("begin commits the previous drag", func(t *testing.T) {
		_, err := svc.BeginDrag(ctx, snap.ID, 1)
		require.NoError(t, err)
		_, err = svc.DragTo(ctx, snap.ID, georgeAirport)
		require.NoError(t, err)

		st, err := svc.BeginDrag(ctx, snap.ID, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, st.Index)
		assertPoint(t, georgeAirport, storedPoint(t, store, snap.ID, 1))

		_, err = svc.EndDrag(ctx, snap.ID)
		require.NoError(t, err)
	})

	t.Run("other edits commit a drag in progress", func(t *testing.T) {
		_, err := svc.BeginDrag(ctx, snap.ID, 0)
		require.NoError(t, err)
		_, err = svc.DragTo(ctx, snap.ID, mosselBay)
		require.NoError(t, err)

		_, idx, err := svc.AppendWaypoint(ctx, snap.ID, datastructure.NewWaypoint(georgeTown, "back", ""))
		require.NoError(t, err)
		assert.Equal(t, 2, idx)
		assertPoint(t, mosselBay, storedPoint(t, store, snap.ID, 0))

		_, err = svc.CancelDrag(ctx, snap.ID)
		assert.Equal(t, server.ErrConflict, errCode(t, err))
	})
}

func TestFly(t *testing.T) {
	ctx := context.Background()
	svc := service.NewNavigationService(nil, nil, testOpts, zap.NewNop())
	snap := newGeorgeRoute(t, svc)

	flyEvery := func(ctx context.Context, id string, interval time.Duration) ([]playback.Frame, error) {
		var frames []playback.Frame
		err := svc.Fly(ctx, id, interval, func(f playback.Frame) {
			frames = append(frames, f)
		})
		return frames, err
	}
	fly := func(ctx context.Context, id string) ([]playback.Frame, error) {
		return flyEvery(ctx, id, time.Millisecond)
	}

	t.Run("plays to the end", func(t *testing.T) {
		frames, err := fly(ctx, snap.ID)
		require.NoError(t, err)
		require.Len(t, frames, 2)
		assert.Equal(t, 0, frames[0].Index)
		assert.Equal(t, playback.Finished.String(), frames[1].State)

		// a finished replay starts over
		frames, err = fly(ctx, snap.ID)
		require.NoError(t, err)
		assert.Len(t, frames, 2)
	})

	t.Run("resumes a paused replay", func(t *testing.T) {
		_, err := svc.Playback(ctx, snap.ID, service.PLAYBACK_RESET)
		require.NoError(t, err)
		_, err = svc.Playback(ctx, snap.ID, service.PLAYBACK_PAUSE)
		require.NoError(t, err)

		frames, err := fly(ctx, snap.ID)
		require.NoError(t, err)
		require.Len(t, frames, 1)
		assert.Equal(t, 1, frames[0].Index)
	})

	t.Run("stops when the client goes away", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		frames, err := flyEvery(cctx, snap.ID, time.Hour)
		require.NoError(t, err)
		assert.Len(t, frames, 1)

		res, err := svc.Playback(ctx, snap.ID, service.PLAYBACK_STEP)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Frame.Index)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := fly(ctx, "missing")
		assert.Equal(t, server.ErrNotFound, errCode(t, err))

		empty, err := svc.CreateRoute(ctx, "empty", nil)
		require.NoError(t, err)
		_, err = fly(ctx, empty.ID)
		assert.Equal(t, server.ErrBadParamInput, errCode(t, err))
	})
}
