package geo

import (
	"github.com/golang/geo/s2"
)

// ProjectToSegment closest point to snap on the great-circle arc a-b.
func ProjectToSegment(a, b, snap GeoPoint) GeoPoint {
	aS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(a.Lat, a.Lon))
	bS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(b.Lat, b.Lon))
	snapS2 := s2.PointFromLatLng(s2.LatLngFromDegrees(snap.Lat, snap.Lon))
	if aS2 == bS2 {
		return GeoPoint{Lat: a.Lat, Lon: a.Lon}
	}
	projection := s2.Project(snapS2, aS2, bS2)
	projectLatLng := s2.LatLngFromPoint(projection)
	return GeoPoint{Lat: projectLatLng.Lat.Degrees(), Lon: projectLatLng.Lng.Degrees()}
}

// PerpendicularDistance return in meter
func PerpendicularDistance(a, b, snap GeoPoint) float64 {
	projectionPoint := ProjectToSegment(a, b, snap)
	return HaversineDistance(snap, projectionPoint)
}
