package service_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"lintang/flightpath/pkg/datastructure"
	"lintang/flightpath/pkg/engine/playback"
	"lintang/flightpath/pkg/engine/tracking"
	"lintang/flightpath/pkg/geo"
	"lintang/flightpath/pkg/kv"
	"lintang/flightpath/pkg/poi"
	"lintang/flightpath/pkg/server"
	"lintang/flightpath/pkg/server/rest/service"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	georgeTown    = geo.MustGeoPoint(-33.9646, 22.4617)
	georgeAirport = geo.MustGeoPoint(-34.0056, 22.3789)
	mosselBay     = geo.MustGeoPoint(-34.1831, 22.1460)
)

var testOpts = service.Options{
	POIRadiusMeters:         9260,
	InsertMaxDistanceMeters: 5000,
	HeadingLineMeters:       tracking.DefaultHeadingLineMeters,
}

func newTestKV(t *testing.T) *kv.KVDB {
	t.Helper()
	db, err := pebble.Open("", &pebble.Options{FS: vfs.NewMem()})
	require.NoError(t, err)
	k := kv.NewKVDB(db, zap.NewNop())
	k.SetProgressWriter(io.Discard)
	t.Cleanup(func() { _ = k.Close() })
	return k
}

func errCode(t *testing.T, err error) error {
	t.Helper()
	var serr *server.Error
	require.True(t, errors.As(err, &serr), "expected *server.Error, got %v", err)
	return serr.Code()
}

func newGeorgeRoute(t *testing.T, svc *service.NavigationService) datastructure.RouteSnapshot {
	t.Helper()
	snap, err := svc.CreateRoute(context.Background(), "George", []datastructure.Waypoint{
		datastructure.NewWaypoint(georgeTown, "George", "town center"),
		datastructure.NewWaypoint(georgeAirport, "FAGG", "George Airport"),
	})
	require.NoError(t, err)
	return snap
}

func TestCreateAndReopenRoute(t *testing.T) {
	ctx := context.Background()
	store := newTestKV(t)
	svc := service.NewNavigationService(store, nil, testOpts, zap.NewNop())

	snap := newGeorgeRoute(t, svc)
	assert.NotEmpty(t, snap.ID)
	assert.Len(t, snap.Waypoints, 2)

	_, idx, err := svc.AppendWaypoint(ctx, snap.ID, datastructure.NewWaypoint(mosselBay, "Mossel Bay", ""))
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	// a fresh service over the same store reopens the route
	other := service.NewNavigationService(store, nil, testOpts, zap.NewNop())
	got, err := other.GetRoute(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, "George", got.Name)
	require.Len(t, got.Waypoints, 3)
	assert.Equal(t, "Mossel Bay", got.Waypoints[2].Name)

	list, err := other.ListRoutes(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, snap.ID, list[0].ID)
}

func TestRouteErrors(t *testing.T) {
	ctx := context.Background()
	svc := service.NewNavigationService(newTestKV(t), nil, testOpts, zap.NewNop())

	_, err := svc.GetRoute(ctx, "missing")
	assert.Equal(t, server.ErrNotFound, errCode(t, err))

	snap := newGeorgeRoute(t, svc)

	t.Run("index out of range", func(t *testing.T) {
		_, _, err := svc.InsertWaypoint(ctx, snap.ID, 1, mosselBay)
		assert.Equal(t, server.ErrBadParamInput, errCode(t, err))

		_, _, err = svc.MoveWaypoint(ctx, snap.ID, 5, mosselBay)
		assert.Equal(t, server.ErrBadParamInput, errCode(t, err))

		_, _, err = svc.RemoveWaypoint(ctx, snap.ID, -1)
		assert.Equal(t, server.ErrBadParamInput, errCode(t, err))

		_, err = svc.RenameWaypoint(ctx, snap.ID, 2, "x", "")
		assert.Equal(t, server.ErrBadParamInput, errCode(t, err))
	})

	t.Run("failed edit leaves route untouched", func(t *testing.T) {
		got, err := svc.GetRoute(ctx, snap.ID)
		require.NoError(t, err)
		assert.Equal(t, snap.Waypoints, got.Waypoints)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, svc.DeleteRoute(ctx, snap.ID))
		_, err := svc.GetRoute(ctx, snap.ID)
		assert.Equal(t, server.ErrNotFound, errCode(t, err))
		assert.Equal(t, server.ErrNotFound, errCode(t, svc.DeleteRoute(ctx, snap.ID)))
	})
}

func TestEditWaypoints(t *testing.T) {
	ctx := context.Background()
	svc := service.NewNavigationService(nil, nil, testOpts, zap.NewNop())
	snap := newGeorgeRoute(t, svc)

	mid := geo.MidPoint(georgeTown, georgeAirport)
	got, idx, err := svc.InsertNearestWaypoint(ctx, snap.ID, mid)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Len(t, got.Waypoints, 3)

	_, _, err = svc.InsertNearestWaypoint(ctx, snap.ID, geo.MustGeoPoint(-33.0, 24.0))
	assert.Equal(t, server.ErrBadParamInput, errCode(t, err))

	prev, got, err := svc.MoveWaypoint(ctx, snap.ID, 1, mosselBay)
	require.NoError(t, err)
	assert.Equal(t, mid, prev)
	assert.Equal(t, mosselBay, got.Waypoints[1].Point)

	got, err = svc.RenameWaypoint(ctx, snap.ID, 1, "Mossel Bay", "harbour")
	require.NoError(t, err)
	assert.Equal(t, "harbour", got.Waypoints[1].Description)

	removed, got, err := svc.RemoveWaypoint(ctx, snap.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Mossel Bay", removed.Name)
	assert.Len(t, got.Waypoints, 2)
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	svc := service.NewNavigationService(nil, nil, testOpts, zap.NewNop())
	snap := newGeorgeRoute(t, svc)

	sum, err := svc.Summary(ctx, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Waypoints)
	assert.InDelta(t, 8892, sum.TotalDistance, 50)
	require.Len(t, sum.Legs, 1)
	require.Len(t, sum.Instructions, 1)
	require.NotNil(t, sum.Bounds)
	assert.InDelta(t, -34.0056, sum.Bounds.MinLat, 1e-9)
	assert.Equal(t, "George", sum.Start.Name)
	assert.Equal(t, "FAGG", sum.End.Name)

	pts, err := datastructure.DecodePath(sum.Polyline)
	require.NoError(t, err)
	assert.Len(t, pts, 2)

	empty, err := svc.CreateRoute(ctx, "empty", nil)
	require.NoError(t, err)
	sum, err = svc.Summary(ctx, empty.ID)
	require.NoError(t, err)
	assert.Zero(t, sum.TotalDistance)
	assert.Empty(t, sum.Legs)
	assert.Nil(t, sum.Bounds)
	assert.Nil(t, sum.Start)
}

func TestNearbyPOIs(t *testing.T) {
	ctx := context.Background()
	idx := poi.NewIndex()
	idx.Insert(
		datastructure.POI{ID: "fagg", Point: georgeAirport, Description: "George Airport"},
		datastructure.POI{ID: "mossel", Point: mosselBay, Description: "Mossel Bay"},
	)
	svc := service.NewNavigationService(nil, idx, testOpts, zap.NewNop())
	snap := newGeorgeRoute(t, svc)

	got, radius, err := svc.NearbyPOIs(ctx, snap.ID, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, testOpts.POIRadiusMeters, radius)
	require.Len(t, got, 1)
	assert.Equal(t, "fagg", got[0].ID)
	assert.InDelta(t, 8892, got[0].Distance, 50)

	got, radius, err = svc.NearbyPOIs(ctx, snap.ID, 0, 60000)
	require.NoError(t, err)
	assert.Equal(t, 60000.0, radius)
	require.Len(t, got, 2)
	assert.Equal(t, "mossel", got[1].ID)

	_, _, err = svc.NearbyPOIs(ctx, snap.ID, 7, 0)
	assert.Equal(t, server.ErrBadParamInput, errCode(t, err))

	noPOIs := service.NewNavigationService(nil, nil, testOpts, zap.NewNop())
	other := newGeorgeRoute(t, noPOIs)
	got, radius, err = noPOIs.NearbyPOIs(ctx, other.ID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, testOpts.POIRadiusMeters, radius)
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	svc := service.NewNavigationService(nil, nil, testOpts, zap.NewNop())
	snap := newGeorgeRoute(t, svc)

	gj, err := svc.ExportGeoJSON(ctx, snap.ID)
	require.NoError(t, err)
	assert.Contains(t, string(gj), "LineString")

	k, err := svc.ExportKML(ctx, snap.ID)
	require.NoError(t, err)
	assert.Contains(t, string(k), "<kml")

	_, err = svc.ExportKML(ctx, "missing")
	assert.Equal(t, server.ErrNotFound, errCode(t, err))
}

func TestPlayback(t *testing.T) {
	ctx := context.Background()
	svc := service.NewNavigationService(nil, nil, testOpts, zap.NewNop())
	snap := newGeorgeRoute(t, svc)

	_, err := svc.Playback(ctx, snap.ID, service.PLAYBACK_STEP)
	assert.Equal(t, server.ErrConflict, errCode(t, err))

	_, err = svc.Playback(ctx, snap.ID, "fly")
	assert.Equal(t, server.ErrBadParamInput, errCode(t, err))

	res, err := svc.Playback(ctx, snap.ID, service.PLAYBACK_START)
	require.NoError(t, err)
	require.NotNil(t, res.Frame)
	assert.Equal(t, 0, res.Frame.Index)
	assert.Equal(t, playback.Running.String(), res.State)

	_, err = svc.Playback(ctx, snap.ID, service.PLAYBACK_START)
	assert.Equal(t, server.ErrConflict, errCode(t, err))

	res, err = svc.Playback(ctx, snap.ID, service.PLAYBACK_PAUSE)
	require.NoError(t, err)
	assert.Nil(t, res.Frame)
	assert.Equal(t, playback.Paused.String(), res.State)

	res, err = svc.Playback(ctx, snap.ID, service.PLAYBACK_RESUME)
	require.NoError(t, err)
	assert.Equal(t, playback.Running.String(), res.State)

	res, err = svc.Playback(ctx, snap.ID, service.PLAYBACK_STEP)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Frame.Index)
	assert.Equal(t, playback.Finished.String(), res.State)

	res, err = svc.Playback(ctx, snap.ID, service.PLAYBACK_REWIND)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Frame.Index)

	res, err = svc.Playback(ctx, snap.ID, service.PLAYBACK_RESET)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Frame.Index)
	assert.Equal(t, playback.Running.String(), res.State)

	empty, err := svc.CreateRoute(ctx, "empty", nil)
	require.NoError(t, err)
	_, err = svc.Playback(ctx, empty.ID, service.PLAYBACK_START)
	assert.Equal(t, server.ErrBadParamInput, errCode(t, err))
}

func TestTracking(t *testing.T) {
	ctx := context.Background()
	svc := service.NewNavigationService(nil, nil, testOpts, zap.NewNop())
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	pos, err := svc.TrackFix(ctx, "zs-abc", tracking.Fix{Point: georgeTown, Time: t0})
	require.NoError(t, err)
	assert.Zero(t, pos.Heading)
	require.Len(t, pos.HeadingLine, 2)

	pos, err = svc.TrackFix(ctx, "zs-abc", tracking.Fix{Point: georgeAirport, Time: t0.Add(time.Minute)})
	require.NoError(t, err)
	assert.InDelta(t, geo.Bearing(georgeTown, georgeAirport), pos.Heading, 1e-9)
	assert.InDelta(t, geo.HaversineDistance(georgeTown, georgeAirport)/60, pos.GroundSpeed, 1e-6)

	_, err = svc.TrackFix(ctx, "zs-abc", tracking.Fix{Point: georgeTown, Time: t0})
	assert.Equal(t, server.ErrBadParamInput, errCode(t, err))

	last, err := svc.StopTracking(ctx, "zs-abc")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, georgeAirport, last.Point)

	_, err = svc.TrackFix(ctx, "zs-abc", tracking.Fix{Point: georgeTown, Time: t0.Add(2 * time.Minute)})
	assert.Equal(t, server.ErrConflict, errCode(t, err))

	_, err = svc.StopTracking(ctx, "nobody")
	assert.Equal(t, server.ErrNotFound, errCode(t, err))
}
