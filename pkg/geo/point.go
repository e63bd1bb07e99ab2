package geo

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidCoordinate = errors.New("invalid coordinate")

// GeoPoint is a WGS84 position in degrees. Alt is meters and only meaningful
// when HasAlt is set.
type GeoPoint struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Alt    float64 `json:"alt,omitempty"`
	HasAlt bool    `json:"-"`
}

func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
	if err := ValidateLatLon(lat, lon); err != nil {
		return GeoPoint{}, err
	}
	return GeoPoint{Lat: lat, Lon: lon}, nil
}

func NewGeoPointAlt(lat, lon, alt float64) (GeoPoint, error) {
	p, err := NewGeoPoint(lat, lon)
	if err != nil {
		return GeoPoint{}, err
	}
	p.Alt = alt
	p.HasAlt = true
	return p, nil
}

// MustGeoPoint panics on invalid input. Only for literals in tests and fixtures.
func MustGeoPoint(lat, lon float64) GeoPoint {
	p, err := NewGeoPoint(lat, lon)
	if err != nil {
		panic(err)
	}
	return p
}

func ValidateLatLon(lat, lon float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v outside [-90, 90]", ErrInvalidCoordinate, lat)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return fmt.Errorf("%w: longitude %v outside [-180, 180]", ErrInvalidCoordinate, lon)
	}
	return nil
}

func (p GeoPoint) SameLocation(o GeoPoint) bool {
	return p.Lat == o.Lat && p.Lon == o.Lon
}

// LonLat returns [lon, lat], the axis order GeoJSON and KML use.
func (p GeoPoint) LonLat() []float64 {
	return []float64{p.Lon, p.Lat}
}

func (p GeoPoint) String() string {
	if p.HasAlt {
		return fmt.Sprintf("(%.6f, %.6f, %.1fm)", p.Lat, p.Lon, p.Alt)
	}
	return fmt.Sprintf("(%.6f, %.6f)", p.Lat, p.Lon)
}
