package export_test

import (
	"bytes"
	"encoding/xml"
	"testing"

	"lintang/flightpath/pkg/datastructure"
	"lintang/flightpath/pkg/export"
	"lintang/flightpath/pkg/geo"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func georgeRoute() datastructure.RouteSnapshot {
	return datastructure.RouteSnapshot{
		ID:   "r1",
		Name: "George circuit",
		Waypoints: []datastructure.Waypoint{
			datastructure.NewWaypoint(geo.MustGeoPoint(-33.9646, 22.4617), "George", "town center"),
			datastructure.NewWaypoint(geo.MustGeoPoint(-33.985, 22.42), "", ""),
			datastructure.NewWaypoint(geo.MustGeoPoint(-34.0056, 22.3789), "FAGG", ""),
		},
	}
}

func TestGeoJSON(t *testing.T) {
	bb, err := export.GeoJSON(georgeRoute())
	require.NoError(t, err)

	fc, err := geojson.UnmarshalFeatureCollection(bb)
	require.NoError(t, err)
	require.Len(t, fc.Features, 4)

	line, ok := fc.Features[0].Geometry.(orb.LineString)
	require.True(t, ok)
	require.Len(t, line, 3)
	assert.Equal(t, orb.Point{22.4617, -33.9646}, line[0])
	assert.Equal(t, "George circuit", fc.Features[0].Properties.MustString("name"))

	assert.Equal(t, "start", fc.Features[1].Properties.MustString("role"))
	assert.Equal(t, "waypoint", fc.Features[2].Properties.MustString("role"))
	assert.Equal(t, "end", fc.Features[3].Properties.MustString("role"))
	assert.Equal(t, "FAGG", fc.Features[3].Properties.MustString("name"))

	t.Run("single waypoint has no line", func(t *testing.T) {
		r := georgeRoute()
		r.Waypoints = r.Waypoints[:1]
		bb, err := export.GeoJSON(r)
		require.NoError(t, err)
		fc, err := geojson.UnmarshalFeatureCollection(bb)
		require.NoError(t, err)
		require.Len(t, fc.Features, 1)
		_, isPoint := fc.Features[0].Geometry.(orb.Point)
		assert.True(t, isPoint)
	})
}

func TestKML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.KML(&buf, georgeRoute()))

	var doc struct {
		Document struct {
			Name       string `xml:"name"`
			Placemarks []struct {
				Name string `xml:"name"`
			} `xml:"Placemark"`
		} `xml:"Document"`
	}
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "George circuit", doc.Document.Name)
	require.Len(t, doc.Document.Placemarks, 4)
	assert.Equal(t, "George", doc.Document.Placemarks[1].Name)
	assert.Equal(t, "waypoint 2", doc.Document.Placemarks[2].Name)
	assert.Contains(t, buf.String(), "22.4617")
	assert.Contains(t, buf.String(), "-33.9646")
}
