package datastructure

import (
	"lintang/flightpath/pkg/geo"

	"github.com/twpayne/go-polyline"
)

func RenderPath(path []geo.GeoPoint) string {
	coords := make([][]float64, 0, len(path))
	for _, p := range path {
		coords = append(coords, []float64{p.Lat, p.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}

func DecodePath(encoded string) ([]geo.GeoPoint, error) {
	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, err
	}
	path := make([]geo.GeoPoint, 0, len(coords))
	for _, c := range coords {
		p, err := geo.NewGeoPoint(c[0], c[1])
		if err != nil {
			return nil, err
		}
		path = append(path, p)
	}
	return path, nil
}
