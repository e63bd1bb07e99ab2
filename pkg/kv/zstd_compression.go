package kv

import (
	"time"

	"lintang/flightpath/pkg/datastructure"
	"lintang/flightpath/pkg/geo"

	"github.com/DataDog/zstd"
	"github.com/kelindar/binary"
)

type storedPoint struct {
	Lat    float64
	Lon    float64
	Alt    float64
	HasAlt bool
}

type storedWaypoint struct {
	Point       storedPoint
	Name        string
	Description string
}

type storedRoute struct {
	ID        string
	Name      string
	Waypoints []storedWaypoint
	CreatedAt int64
	UpdatedAt int64
}

type storedPOI struct {
	ID          string
	Point       storedPoint
	Description string
	Layer       string
	Icon        string
}

func toStoredPoint(p geo.GeoPoint) storedPoint {
	return storedPoint{Lat: p.Lat, Lon: p.Lon, Alt: p.Alt, HasAlt: p.HasAlt}
}

func (s storedPoint) toGeoPoint() geo.GeoPoint {
	return geo.GeoPoint{Lat: s.Lat, Lon: s.Lon, Alt: s.Alt, HasAlt: s.HasAlt}
}

func toStoredRoute(r datastructure.RouteSnapshot) storedRoute {
	wps := make([]storedWaypoint, len(r.Waypoints))
	for i, w := range r.Waypoints {
		wps[i] = storedWaypoint{Point: toStoredPoint(w.Point), Name: w.Name, Description: w.Description}
	}
	return storedRoute{
		ID:        r.ID,
		Name:      r.Name,
		Waypoints: wps,
		CreatedAt: r.CreatedAt.UnixNano(),
		UpdatedAt: r.UpdatedAt.UnixNano(),
	}
}

func (s storedRoute) toSnapshot() datastructure.RouteSnapshot {
	wps := make([]datastructure.Waypoint, len(s.Waypoints))
	for i, w := range s.Waypoints {
		wps[i] = datastructure.NewWaypoint(w.Point.toGeoPoint(), w.Name, w.Description)
	}
	return datastructure.RouteSnapshot{
		ID:        s.ID,
		Name:      s.Name,
		Waypoints: wps,
		CreatedAt: time.Unix(0, s.CreatedAt).UTC(),
		UpdatedAt: time.Unix(0, s.UpdatedAt).UTC(),
	}
}

func EncodeRoute(r datastructure.RouteSnapshot) ([]byte, error) {
	bb, err := binary.Marshal(toStoredRoute(r))
	if err != nil {
		return nil, err
	}
	return Compress(bb)
}

func DecodeRoute(bbCompressed []byte) (datastructure.RouteSnapshot, error) {
	bb, err := Decompress(bbCompressed)
	if err != nil {
		return datastructure.RouteSnapshot{}, err
	}
	var s storedRoute
	if err := binary.Unmarshal(bb, &s); err != nil {
		return datastructure.RouteSnapshot{}, err
	}
	return s.toSnapshot(), nil
}

func EncodePOIs(pois []datastructure.POI) ([]byte, error) {
	stored := make([]storedPOI, len(pois))
	for i, p := range pois {
		stored[i] = storedPOI{ID: p.ID, Point: toStoredPoint(p.Point), Description: p.Description, Layer: p.Layer, Icon: p.Icon}
	}
	bb, err := binary.Marshal(stored)
	if err != nil {
		return nil, err
	}
	return Compress(bb)
}

func DecodePOIs(bbCompressed []byte) ([]datastructure.POI, error) {
	bb, err := Decompress(bbCompressed)
	if err != nil {
		return nil, err
	}
	var stored []storedPOI
	if err := binary.Unmarshal(bb, &stored); err != nil {
		return nil, err
	}
	pois := make([]datastructure.POI, len(stored))
	for i, s := range stored {
		pois[i] = datastructure.POI{ID: s.ID, Point: s.Point.toGeoPoint(), Description: s.Description, Layer: s.Layer, Icon: s.Icon}
	}
	return pois, nil
}

func Compress(bb []byte) ([]byte, error) {
	var bbCompressed []byte
	bbCompressed, err := zstd.Compress(bbCompressed, bb)
	if err != nil {
		return []byte{}, err
	}
	return bbCompressed, nil
}

func Decompress(bbCompressed []byte) ([]byte, error) {
	var bb []byte
	bb, err := zstd.Decompress(bb, bbCompressed)
	if err != nil {
		return []byte{}, err
	}

	return bb, nil
}
