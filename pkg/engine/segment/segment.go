// Package segment answers nearest-segment queries over an ordered path.
//
// DistanceToSegment works in degree space: longitude is x, latitude is y, and
// the result is in degrees, for raw hit-testing. NearestSegment ranks segments
// in meters by the great-circle distance to the s2 projection of the query
// point, and its threshold is checked against that same distance.
package segment

import (
	"errors"
	"math"

	"lintang/flightpath/pkg/geo"
)

const NotFound = -1

var ErrNotFound = errors.New("no segment found")

// ProjectionParam position of the orthogonal projection of p on the line
// a-b, clamped to [0, 1]. Zero-length segments return 0.
func ProjectionParam(p, a, b geo.GeoPoint) float64 {
	abX, abY := b.Lon-a.Lon, b.Lat-a.Lat
	apX, apY := p.Lon-a.Lon, p.Lat-a.Lat

	lenSq := abX*abX + abY*abY
	if lenSq == 0 {
		return 0
	}
	t := (apX*abX + apY*abY) / lenSq
	return math.Max(0, math.Min(1, t))
}

// NearestPoint clamped projection of p on segment a-b.
func NearestPoint(p, a, b geo.GeoPoint) geo.GeoPoint {
	t := ProjectionParam(p, a, b)
	return geo.GeoPoint{
		Lat: a.Lat + t*(b.Lat-a.Lat),
		Lon: a.Lon + t*(b.Lon-a.Lon),
	}
}

// DistanceToSegment euclidean distance in degrees from p to segment a-b.
func DistanceToSegment(p, a, b geo.GeoPoint) float64 {
	n := NearestPoint(p, a, b)
	return math.Hypot(p.Lon-n.Lon, p.Lat-n.Lat)
}

type options struct {
	maxDistance float64
	hasMax      bool
}

type Option func(*options)

// WithMaxDistance rejects a match whose nearest point is farther than meters
// from the query point. Non-positive values disable the threshold.
func WithMaxDistance(meters float64) Option {
	return func(o *options) {
		if meters > 0 {
			o.maxDistance = meters
			o.hasMax = true
		}
	}
}

// distances closer than this are ties and keep the lower index
const tieMeters = 1e-6

// Match describes the winning segment of a NearestSegment query.
type Match struct {
	Index    int
	Nearest  geo.GeoPoint // great-circle projection on the segment
	Degrees  float64      // DistanceToSegment of the winner
	Distance float64      // meters
}

// NearestSegment index i of the pair (path[i], path[i+1]) closest to p.
// Ties go to the lower index.
func NearestSegment(p geo.GeoPoint, path []geo.GeoPoint, opts ...Option) (int, error) {
	m, err := Nearest(p, path, opts...)
	if err != nil {
		return NotFound, err
	}
	return m.Index, nil
}

func Nearest(p geo.GeoPoint, path []geo.GeoPoint, opts ...Option) (Match, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if len(path) < 2 {
		return Match{Index: NotFound}, ErrNotFound
	}

	best := Match{Index: NotFound, Distance: math.Inf(1)}
	for i := 0; i+1 < len(path); i++ {
		nearest := geo.ProjectToSegment(path[i], path[i+1], p)
		d := geo.HaversineDistance(p, nearest)
		if math.IsNaN(d) || math.IsInf(d, 0) {
			continue
		}
		if d < best.Distance-tieMeters {
			best.Index = i
			best.Nearest = nearest
			best.Distance = d
		}
	}
	if best.Index == NotFound {
		return Match{Index: NotFound}, ErrNotFound
	}

	best.Degrees = DistanceToSegment(p, path[best.Index], path[best.Index+1])
	if o.hasMax && best.Distance > o.maxDistance {
		return Match{Index: NotFound}, ErrNotFound
	}
	return best, nil
}
