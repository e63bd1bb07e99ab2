package tracking_test

import (
	"testing"
	"time"

	"lintang/flightpath/pkg/engine/tracking"
	"lintang/flightpath/pkg/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("state machine", func(t *testing.T) {
		s := tracking.NewSession(0)
		assert.Equal(t, tracking.Idle, s.State())

		_, err := s.Update(tracking.Fix{Point: geo.MustGeoPoint(0, 0), Time: t0})
		assert.ErrorIs(t, err, tracking.ErrNotTracking)
		assert.ErrorIs(t, s.Stop(), tracking.ErrNotTracking)

		require.NoError(t, s.Start())
		assert.Equal(t, tracking.Tracking, s.State())
		require.NoError(t, s.Stop())
		assert.Equal(t, tracking.Stopped, s.State())

		_, err = s.Update(tracking.Fix{Point: geo.MustGeoPoint(0, 0), Time: t0})
		assert.ErrorIs(t, err, tracking.ErrStopped)
		assert.ErrorIs(t, s.Start(), tracking.ErrStopped)
	})

	t.Run("heading and speed from consecutive fixes", func(t *testing.T) {
		s := tracking.NewSession(0)
		require.NoError(t, s.Start())

		first, err := s.Update(tracking.Fix{Point: geo.MustGeoPoint(0, 0), Time: t0})
		require.NoError(t, err)
		assert.Equal(t, 0.0, first.Heading)
		assert.Equal(t, 0.0, first.GroundSpeed)

		second, err := s.Update(tracking.Fix{Point: geo.MustGeoPoint(0, 0.01), Time: t0.Add(10 * time.Second)})
		require.NoError(t, err)
		assert.InDelta(t, 90, second.Heading, 1e-9)
		want := geo.HaversineDistance(geo.MustGeoPoint(0, 0), geo.MustGeoPoint(0, 0.01)) / 10
		assert.Equal(t, want, second.GroundSpeed)

		require.Len(t, second.HeadingLine, 2)
		assert.InDelta(t, tracking.DefaultHeadingLineMeters, geo.HaversineDistance(second.HeadingLine[0], second.HeadingLine[1]), 1e-3)

		// stationary keeps the last heading
		third, err := s.Update(tracking.Fix{Point: geo.MustGeoPoint(0, 0.01), Time: t0.Add(20 * time.Second)})
		require.NoError(t, err)
		assert.InDelta(t, 90, third.Heading, 1e-9)
		assert.Equal(t, 0.0, third.GroundSpeed)

		last, ok := s.Last()
		require.True(t, ok)
		assert.Equal(t, third, last)
	})

	t.Run("reported heading wins", func(t *testing.T) {
		s := tracking.NewSession(1000)
		require.NoError(t, s.Start())
		pos, err := s.Update(tracking.Fix{Point: geo.MustGeoPoint(0, 0), Heading: -90, HasHeading: true, Time: t0})
		require.NoError(t, err)
		assert.Equal(t, 270.0, pos.Heading)
		assert.InDelta(t, 1000, geo.HaversineDistance(pos.HeadingLine[0], pos.HeadingLine[1]), 1e-6)
	})

	t.Run("stale fix", func(t *testing.T) {
		s := tracking.NewSession(0)
		require.NoError(t, s.Start())
		_, err := s.Update(tracking.Fix{Point: geo.MustGeoPoint(0, 0), Time: t0})
		require.NoError(t, err)
		_, err = s.Update(tracking.Fix{Point: geo.MustGeoPoint(0, 1), Time: t0.Add(-time.Second)})
		assert.ErrorIs(t, err, tracking.ErrStaleFix)
	})
}
