package geo

import "math"

// mean earth radius
const EarthRadiusMeters = 6371000.0

const (
	metersPerNauticalMile = 1852.0
	feetPerMeter          = 3.28084
)

// HaversineDistance great-circle distance in meters.
//
// https://www.movable-type.co.uk/scripts/latlong.html
func HaversineDistance(a, b GeoPoint) float64 {
	lat1 := degToRad(a.Lat)
	lat2 := degToRad(b.Lat)
	diffLat := lat2 - lat1
	diffLon := degToRad(b.Lon - a.Lon)

	sinLat := math.Sin(diffLat / 2)
	sinLon := math.Sin(diffLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusMeters * c
}

// PathDistance sums HaversineDistance over consecutive points.
func PathDistance(path []GeoPoint) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		total += HaversineDistance(path[i], path[i+1])
	}
	return total
}

func NauticalMilesToMeters(nm float64) float64 {
	return nm * metersPerNauticalMile
}

func MetersToNauticalMiles(m float64) float64 {
	return m / metersPerNauticalMile
}

func MetersToFeet(m float64) float64 {
	return m * feetPerMeter
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180.0
}

func radToDeg(r float64) float64 {
	return 180.0 * r / math.Pi
}
