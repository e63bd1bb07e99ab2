package kv_test

import (
	"context"
	"io"
	"testing"
	"time"

	"lintang/flightpath/pkg/datastructure"
	"lintang/flightpath/pkg/geo"
	"lintang/flightpath/pkg/kv"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestKV(t *testing.T) *kv.KVDB {
	t.Helper()
	db, err := pebble.Open("", &pebble.Options{FS: vfs.NewMem()})
	require.NoError(t, err)
	k := kv.NewKVDB(db, zap.NewNop())
	k.SetProgressWriter(io.Discard)
	t.Cleanup(func() { _ = k.Close() })
	return k
}

func sampleRoute(id string) datastructure.RouteSnapshot {
	alt, _ := geo.NewGeoPointAlt(-34.0056, 22.3789, 197)
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return datastructure.RouteSnapshot{
		ID:   id,
		Name: "George circuit",
		Waypoints: []datastructure.Waypoint{
			datastructure.NewWaypoint(geo.MustGeoPoint(-33.9646, 22.4617), "George", "town center"),
			datastructure.NewWaypoint(alt, "FAGG", ""),
		},
		CreatedAt: ts,
		UpdatedAt: ts.Add(time.Minute),
	}
}

func TestRouteCodec(t *testing.T) {
	r := sampleRoute("abc")
	bb, err := kv.EncodeRoute(r)
	require.NoError(t, err)
	got, err := kv.DecodeRoute(bb)
	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestKVDBRoutes(t *testing.T) {
	ctx := context.Background()
	k := newTestKV(t)

	_, err := k.GetRoute(ctx, "missing")
	assert.ErrorIs(t, err, kv.ErrRouteNotFound)

	require.NoError(t, k.SaveRoute(ctx, sampleRoute("r1")))
	require.NoError(t, k.SaveRoute(ctx, sampleRoute("r2")))

	updated := sampleRoute("r1")
	updated.Name = "renamed"
	require.NoError(t, k.SaveRoute(ctx, updated))

	got, err := k.GetRoute(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)

	all, err := k.ListRoutes(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "r1", all[0].ID)
	assert.Equal(t, "r2", all[1].ID)

	require.NoError(t, k.DeleteRoute(ctx, "r1"))
	assert.ErrorIs(t, k.DeleteRoute(ctx, "r1"), kv.ErrRouteNotFound)
	all, err = k.ListRoutes(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "r2", all[0].ID)
}

func TestKVDBPOIs(t *testing.T) {
	ctx := context.Background()
	k := newTestKV(t)

	pois := []datastructure.POI{
		{ID: "fagg", Point: geo.MustGeoPoint(-34.0056, 22.3789), Description: "George Airport"},
		{ID: "town", Point: geo.MustGeoPoint(-33.9646, 22.4617), Description: "George"},
		{ID: "oudtshoorn", Point: geo.MustGeoPoint(-33.6, 22.1), Description: "Oudtshoorn"},
	}
	require.NoError(t, k.CreatePOIKV(pois, 2))

	got, err := k.WithinRadius(ctx, geo.MustGeoPoint(-33.9646, 22.4617), geo.NauticalMilesToMeters(5))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "town", got[0].ID)
	assert.Equal(t, "fagg", got[1].ID)

	none, err := k.WithinRadius(ctx, geo.MustGeoPoint(10, 10), 1000)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestKVDBPOIsReimport(t *testing.T) {
	ctx := context.Background()
	k := newTestKV(t)
	center := geo.MustGeoPoint(-34.0056, 22.3789)

	fagg := datastructure.POI{ID: "fagg", Point: center, Description: "George Airport"}
	require.NoError(t, k.CreatePOIKV([]datastructure.POI{fagg}, 1))
	require.NoError(t, k.CreatePOIKV([]datastructure.POI{fagg}, 1))

	got, err := k.WithinRadius(ctx, center, 1000)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "fagg", got[0].ID)

	fagg.Description = "George Airport (FAGG)"
	require.NoError(t, k.CreatePOIKV([]datastructure.POI{fagg, fagg}, 1))

	got, err = k.WithinRadius(ctx, center, 1000)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "George Airport (FAGG)", got[0].Description)
}
