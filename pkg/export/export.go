// Package export writes a route in formats other map tools read.
package export

import (
	"fmt"
	"io"

	"lintang/flightpath/pkg/datastructure"
	"lintang/flightpath/pkg/geo"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	kml "github.com/twpayne/go-kml"
)

// GeoJSON FeatureCollection with the route as a LineString followed by one
// Point per waypoint. Routes with a single waypoint have no LineString.
func GeoJSON(r datastructure.RouteSnapshot) ([]byte, error) {
	fc := geojson.NewFeatureCollection()

	if len(r.Waypoints) >= 2 {
		line := make(orb.LineString, 0, len(r.Waypoints))
		for _, w := range r.Waypoints {
			line = append(line, orb.Point{w.Point.Lon, w.Point.Lat})
		}
		f := geojson.NewFeature(line)
		f.ID = r.ID
		f.Properties["name"] = r.Name
		f.Properties["distance"] = geo.PathDistance(datastructure.Points(r.Waypoints))
		fc.Append(f)
	}

	for i, w := range r.Waypoints {
		f := geojson.NewFeature(orb.Point{w.Point.Lon, w.Point.Lat})
		f.Properties["index"] = i
		f.Properties["role"] = role(i, len(r.Waypoints))
		if w.Name != "" {
			f.Properties["name"] = w.Name
		}
		if w.Description != "" {
			f.Properties["description"] = w.Description
		}
		if w.Point.HasAlt {
			f.Properties["altitude"] = w.Point.Alt
		}
		fc.Append(f)
	}
	return fc.MarshalJSON()
}

// KML document with a LineString placemark for the path and one point
// placemark per waypoint.
func KML(w io.Writer, r datastructure.RouteSnapshot) error {
	children := []kml.Element{kml.Name(r.Name)}

	if len(r.Waypoints) >= 2 {
		coords := make([]kml.Coordinate, 0, len(r.Waypoints))
		for _, wp := range r.Waypoints {
			coords = append(coords, kml.Coordinate{Lon: wp.Point.Lon, Lat: wp.Point.Lat, Alt: wp.Point.Alt})
		}
		children = append(children, kml.Placemark(
			kml.Name(r.Name),
			kml.LineString(kml.Coordinates(coords...)),
		))
	}

	for i, wp := range r.Waypoints {
		name := wp.Name
		if name == "" {
			name = fmt.Sprintf("%s %d", role(i, len(r.Waypoints)), i+1)
		}
		children = append(children, kml.Placemark(
			kml.Name(name),
			kml.Description(wp.Description),
			kml.Point(
				kml.Coordinates(kml.Coordinate{Lon: wp.Point.Lon, Lat: wp.Point.Lat, Alt: wp.Point.Alt}),
			),
		))
	}

	return kml.KML(kml.Document(children...)).WriteIndent(w, "", "  ")
}

// role start / end / waypoint, derived from position only.
func role(i, n int) string {
	switch {
	case i == 0:
		return "start"
	case i == n-1:
		return "end"
	default:
		return "waypoint"
	}
}
