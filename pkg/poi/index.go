// Package poi holds overlay markers (airfields, navaids, towns) and answers
// "which markers are within r meters of this waypoint".
package poi

import (
	"context"
	"math"
	"sort"
	"sync"

	"lintang/flightpath/pkg/datastructure"
	"lintang/flightpath/pkg/geo"

	"github.com/dhconnelly/rtreego"
)

const tol = 0.000001

var metersPerDegLat = geo.EarthRadiusMeters * math.Pi / 180

type poiRect struct {
	location rtreego.Point
	poi      datastructure.POI
}

func (p *poiRect) Bounds() rtreego.Rect {
	return p.location.ToRect(tol)
}

// Index in-memory r-tree over POIs. Points are stored as [lat, lon].
type Index struct {
	mu   sync.RWMutex
	tree *rtreego.Rtree
	size int
}

func NewIndex() *Index {
	return &Index{tree: rtreego.NewTree(2, 25, 50)} // 2 dimension, 25 min entries dan 50 max entries
}

func (idx *Index) Insert(pois ...datastructure.POI) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	for _, p := range pois {
		idx.tree.Insert(&poiRect{
			location: rtreego.Point{p.Point.Lat, p.Point.Lon},
			poi:      p,
		})
		idx.size++
	}
}

func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.size
}

// WithinRadius POIs no farther than radiusMeters from center, nearest first.
func (idx *Index) WithinRadius(ctx context.Context, center geo.GeoPoint, radiusMeters float64) ([]datastructure.POIWithDistance, error) {
	if radiusMeters <= 0 {
		return []datastructure.POIWithDistance{}, nil
	}
	box, err := searchBox(center, radiusMeters)
	if err != nil {
		return nil, err
	}

	idx.mu.RLock()
	candidates := idx.tree.SearchIntersect(box)
	idx.mu.RUnlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return filterByDistance(center, radiusMeters, candidates), nil
}

func filterByDistance(center geo.GeoPoint, radiusMeters float64, candidates []rtreego.Spatial) []datastructure.POIWithDistance {
	out := make([]datastructure.POIWithDistance, 0, len(candidates))
	for _, c := range candidates {
		r := c.(*poiRect)
		d := geo.HaversineDistance(center, r.poi.Point)
		if d <= radiusMeters {
			out = append(out, datastructure.POIWithDistance{POI: r.poi, Distance: d})
		}
	}
	SortByDistance(out)
	return out
}

// SortByDistance nearest first, ties by ID so results are stable.
func SortByDistance(pois []datastructure.POIWithDistance) {
	sort.SliceStable(pois, func(i, j int) bool {
		if pois[i].Distance != pois[j].Distance {
			return pois[i].Distance < pois[j].Distance
		}
		return pois[i].ID < pois[j].ID
	})
}

// searchBox degree rectangle enclosing the circle. Does not wrap the antimeridian.
func searchBox(center geo.GeoPoint, radiusMeters float64) (rtreego.Rect, error) {
	dLat := radiusMeters / metersPerDegLat
	cosLat := math.Max(math.Cos(center.Lat*math.Pi/180), 1e-6)
	dLon := math.Min(dLat/cosLat, 180)

	return rtreego.NewRect(
		rtreego.Point{center.Lat - dLat, center.Lon - dLon},
		[]float64{2 * dLat, 2 * dLon},
	)
}
