package service

import (
	"bytes"
	"context"
	"sort"

	"lintang/flightpath/pkg/datastructure"
	"lintang/flightpath/pkg/engine/route"
	"lintang/flightpath/pkg/export"
	"lintang/flightpath/pkg/geo"
	"lintang/flightpath/pkg/server"

	"go.uber.org/zap"
)

type RouteSummary struct {
	ID            string
	Name          string
	Waypoints     int
	TotalDistance float64 // meters
	Legs          []datastructure.Leg
	Instructions  []string
	Bounds        *geo.BoundingBox
	Start         *datastructure.Waypoint
	End           *datastructure.Waypoint
	Polyline      string
}

func (s *NavigationService) Summary(ctx context.Context, id string) (RouteSummary, error) {
	rs, err := s.session(ctx, id)
	if err != nil {
		return RouteSummary{}, err
	}
	rs.mu.Lock()
	defer rs.mu.Unlock()

	e := rs.editor
	wps := e.Waypoints()
	legs := e.Legs()
	sum := RouteSummary{
		ID:            rs.id,
		Name:          rs.name,
		Waypoints:     e.Len(),
		TotalDistance: e.TotalDistance(),
		Legs:          legs,
		Instructions:  route.Instructions(wps, legs),
		Polyline:      datastructure.RenderPath(e.Points()),
	}
	if b, ok := e.Bounds(); ok {
		sum.Bounds = &b
	}
	if start, ok := e.Start(); ok {
		sum.Start = &start
	}
	if end, ok := e.End(); ok {
		sum.End = &end
	}
	return sum, nil
}

// NearbyPOIs overlay points within radiusMeters of waypoint index, nearest
// first. radiusMeters <= 0 uses the configured radius.
func (s *NavigationService) NearbyPOIs(ctx context.Context, id string, index int, radiusMeters float64) ([]datastructure.POIWithDistance, float64, error) {
	rs, err := s.session(ctx, id)
	if err != nil {
		return nil, 0, err
	}
	rs.mu.Lock()
	wp, err := rs.editor.At(index)
	rs.mu.Unlock()
	if err != nil {
		return nil, 0, wrapRouteError(err)
	}

	if radiusMeters <= 0 {
		radiusMeters = s.opts.POIRadiusMeters
	}
	if s.pois == nil {
		return []datastructure.POIWithDistance{}, radiusMeters, nil
	}
	pois, err := s.pois.WithinRadius(ctx, wp.Point, radiusMeters)
	if err != nil {
		s.log.Error("nearby pois", zap.String("route_id", id), zap.Int("index", index), zap.Error(err))
		return nil, 0, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}
	return pois, radiusMeters, nil
}

func (s *NavigationService) ExportGeoJSON(ctx context.Context, id string) ([]byte, error) {
	snap, err := s.GetRoute(ctx, id)
	if err != nil {
		return nil, err
	}
	bb, err := export.GeoJSON(snap)
	if err != nil {
		s.log.Error("export geojson", zap.String("route_id", id), zap.Error(err))
		return nil, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}
	return bb, nil
}

func (s *NavigationService) ExportKML(ctx context.Context, id string) ([]byte, error) {
	snap, err := s.GetRoute(ctx, id)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := export.KML(&buf, snap); err != nil {
		s.log.Error("export kml", zap.String("route_id", id), zap.Error(err))
		return nil, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}
	return buf.Bytes(), nil
}

func sortSnapshots(rs []datastructure.RouteSnapshot) {
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].CreatedAt.Equal(rs[j].CreatedAt) {
			return rs[i].ID < rs[j].ID
		}
		return rs[i].CreatedAt.Before(rs[j].CreatedAt)
	})
}
