package datastructure

import (
	"time"

	"lintang/flightpath/pkg/geo"
)

type Waypoint struct {
	Point       geo.GeoPoint `json:"point"`
	Name        string       `json:"name,omitempty"`
	Description string       `json:"description,omitempty"`
}

func NewWaypoint(p geo.GeoPoint, name, description string) Waypoint {
	return Waypoint{
		Point:       p,
		Name:        name,
		Description: description,
	}
}

// RouteSnapshot is the persisted / transported form of a route.
type RouteSnapshot struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Waypoints []Waypoint `json:"waypoints"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Leg is one segment of a route with the heading change at its end waypoint.
type Leg struct {
	FromIndex          int     `json:"from_index"`
	ToIndex            int     `json:"to_index"`
	Distance           float64 `json:"distance"`
	Heading            float64 `json:"heading"`
	Turn               float64 `json:"turn"`
	CumulativeDistance float64 `json:"cumulative_distance"`
}

type POI struct {
	ID          string       `json:"id"`
	Point       geo.GeoPoint `json:"point"`
	Description string       `json:"description"`
	Layer       string       `json:"layer,omitempty"`
	Icon        string       `json:"icon,omitempty"`
}

type POIWithDistance struct {
	POI
	Distance float64 `json:"distance"`
}

func Points(wps []Waypoint) []geo.GeoPoint {
	pts := make([]geo.GeoPoint, len(wps))
	for i, w := range wps {
		pts[i] = w.Point
	}
	return pts
}
