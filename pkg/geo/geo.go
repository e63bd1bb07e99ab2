package geo

import "math"

// Bearing initial bearing from `from` to `to` in degrees, normalized to [0, 360).
// Coincident points have no defined bearing and return 0.
//
//	φ1,λ1 is the start point, φ2,λ2 the end point
//	 	φ is latitude, λ is longitude
//
// https://www.movable-type.co.uk/scripts/latlong.html
func Bearing(from, to GeoPoint) float64 {
	if from.SameLocation(to) {
		return 0
	}
	p1LatRad := degToRad(from.Lat)
	p2LatRad := degToRad(to.Lat)

	diffLon := degToRad(to.Lon - from.Lon)

	y := math.Sin(diffLon) * math.Cos(p2LatRad)
	x := math.Cos(p1LatRad)*math.Sin(p2LatRad) - math.Sin(p1LatRad)*math.Cos(p2LatRad)*math.Cos(diffLon)
	theta := math.Atan2(y, x)
	if math.IsNaN(theta) {
		return 0
	}

	return NormalizeBearing(radToDeg(theta))
}

// NormalizeBearing wraps any angle in degrees into [0, 360).
func NormalizeBearing(deg float64) float64 {
	b := math.Mod(deg, 360)
	if b < 0 {
		b += 360
	}
	if b >= 360 {
		b = 0
	}
	return b
}

// DestinationPoint travels distanceMeters from origin along the great circle
// with the given initial bearing. Altitude is carried over from origin.
//
// https://www.movable-type.co.uk/scripts/latlong.html
func DestinationPoint(origin GeoPoint, bearingDeg, distanceMeters float64) GeoPoint {
	if distanceMeters == 0 {
		return origin
	}
	delta := distanceMeters / EarthRadiusMeters
	theta := degToRad(bearingDeg)
	lat1 := degToRad(origin.Lat)
	lon1 := degToRad(origin.Lon)

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(delta) +
		math.Cos(lat1)*math.Sin(delta)*math.Cos(theta))
	lon2 := lon1 + math.Atan2(math.Sin(theta)*math.Sin(delta)*math.Cos(lat1),
		math.Cos(delta)-math.Sin(lat1)*math.Sin(lat2))
	lon2 = math.Mod(lon2+3*math.Pi, 2*math.Pi) - math.Pi

	dest := origin
	dest.Lat = radToDeg(lat2)
	dest.Lon = radToDeg(lon2)
	return dest
}

//	φ is latitude, λ is longitude
//
// https://www.movable-type.co.uk/scripts/latlong.html
func MidPoint(a, b GeoPoint) GeoPoint {
	p1LatRad := degToRad(a.Lat)
	p2LatRad := degToRad(b.Lat)

	diffLon := degToRad(b.Lon - a.Lon)

	bx := math.Cos(p2LatRad) * math.Cos(diffLon)
	by := math.Cos(p2LatRad) * math.Sin(diffLon)

	newLon := degToRad(a.Lon) + math.Atan2(by, math.Cos(p1LatRad)+bx)
	newLat := math.Atan2(math.Sin(p1LatRad)+math.Sin(p2LatRad), math.Sqrt((math.Cos(p1LatRad)+bx)*(math.Cos(p1LatRad)+bx)+by*by))

	return GeoPoint{Lat: radToDeg(newLat), Lon: radToDeg(newLon)}
}

// CalculateTurn signed change of heading from b1 to b2, in (-180, 180].
// Positive is a right turn.
func CalculateTurn(b1, b2 float64) float64 {
	turn := b2 - b1
	if turn > 180 {
		turn -= 360
	} else if turn <= -180 {
		turn += 360
	}
	return turn
}

// BoundingBox extent of a set of points.
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// Bounds returns false when points is empty.
func Bounds(points []GeoPoint) (BoundingBox, bool) {
	if len(points) == 0 {
		return BoundingBox{}, false
	}
	bb := BoundingBox{
		MinLat: math.Inf(1), MinLon: math.Inf(1),
		MaxLat: math.Inf(-1), MaxLon: math.Inf(-1),
	}
	for _, p := range points {
		bb.MinLat = math.Min(bb.MinLat, p.Lat)
		bb.MinLon = math.Min(bb.MinLon, p.Lon)
		bb.MaxLat = math.Max(bb.MaxLat, p.Lat)
		bb.MaxLon = math.Max(bb.MaxLon, p.Lon)
	}
	return bb, true
}

func (bb BoundingBox) Center() GeoPoint {
	return GeoPoint{Lat: (bb.MinLat + bb.MaxLat) / 2, Lon: (bb.MinLon + bb.MaxLon) / 2}
}
