package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"lintang/flightpath/pkg/datastructure"
	"lintang/flightpath/pkg/engine/playback"
	"lintang/flightpath/pkg/engine/route"
	"lintang/flightpath/pkg/engine/tracking"
	"lintang/flightpath/pkg/geo"
	"lintang/flightpath/pkg/kv"
	"lintang/flightpath/pkg/server"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RouteStore interface {
	SaveRoute(ctx context.Context, r datastructure.RouteSnapshot) error
	GetRoute(ctx context.Context, id string) (datastructure.RouteSnapshot, error)
	DeleteRoute(ctx context.Context, id string) error
	ListRoutes(ctx context.Context) ([]datastructure.RouteSnapshot, error)
}

type POIFinder interface {
	WithinRadius(ctx context.Context, center geo.GeoPoint, radiusMeters float64) ([]datastructure.POIWithDistance, error)
}

type Options struct {
	POIRadiusMeters         float64
	InsertMaxDistanceMeters float64
	HeadingLineMeters       float64
}

// routeSession is one open route. editor, drag and player are guarded by mu.
type routeSession struct {
	mu        sync.Mutex
	id        string
	name      string
	createdAt time.Time
	updatedAt time.Time
	editor    *route.Editor
	drag      *route.DragSession
	player    *playback.Player
}

func (rs *routeSession) dragSession() *route.DragSession {
	if rs.drag == nil {
		rs.drag = route.NewDragSession(rs.editor)
	}
	return rs.drag
}

func (rs *routeSession) snapshot() datastructure.RouteSnapshot {
	return datastructure.RouteSnapshot{
		ID:        rs.id,
		Name:      rs.name,
		Waypoints: rs.editor.Waypoints(),
		CreatedAt: rs.createdAt,
		UpdatedAt: rs.updatedAt,
	}
}

type NavigationService struct {
	mu     sync.Mutex
	routes map[string]*routeSession
	tracks map[string]*tracking.Session

	store RouteStore
	pois  POIFinder
	opts  Options
	log   *zap.Logger
	now   func() time.Time
}

// NewNavigationService store and pois may be nil: routes then live only in
// memory and nearby lookups return nothing.
func NewNavigationService(store RouteStore, pois POIFinder, opts Options, log *zap.Logger) *NavigationService {
	if log == nil {
		log = zap.NewNop()
	}
	return &NavigationService{
		routes: make(map[string]*routeSession),
		tracks: make(map[string]*tracking.Session),
		store:  store,
		pois:   pois,
		opts:   opts,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *NavigationService) CreateRoute(ctx context.Context, name string, wps []datastructure.Waypoint) (datastructure.RouteSnapshot, error) {
	now := s.now()
	rs := &routeSession{
		id:        uuid.NewString(),
		name:      name,
		createdAt: now,
		updatedAt: now,
		editor:    route.NewEditorFrom(wps),
	}
	snap := rs.snapshot()
	if err := s.persist(ctx, snap); err != nil {
		return datastructure.RouteSnapshot{}, err
	}

	s.mu.Lock()
	s.routes[rs.id] = rs
	s.mu.Unlock()

	s.log.Debug("route created", zap.String("route_id", rs.id), zap.Int("waypoints", len(wps)))
	return snap, nil
}

func (s *NavigationService) GetRoute(ctx context.Context, id string) (datastructure.RouteSnapshot, error) {
	rs, err := s.session(ctx, id)
	if err != nil {
		return datastructure.RouteSnapshot{}, err
	}
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.snapshot(), nil
}

func (s *NavigationService) ListRoutes(ctx context.Context) ([]datastructure.RouteSnapshot, error) {
	seen := make(map[string]bool)
	out := []datastructure.RouteSnapshot{}

	s.mu.Lock()
	open := make([]*routeSession, 0, len(s.routes))
	for _, rs := range s.routes {
		open = append(open, rs)
	}
	s.mu.Unlock()

	for _, rs := range open {
		rs.mu.Lock()
		out = append(out, rs.snapshot())
		rs.mu.Unlock()
		seen[rs.id] = true
	}

	if s.store != nil {
		stored, err := s.store.ListRoutes(ctx)
		if err != nil {
			s.log.Error("list routes", zap.Error(err))
			return nil, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
		}
		for _, r := range stored {
			if !seen[r.ID] {
				out = append(out, r)
			}
		}
	}
	sortSnapshots(out)
	return out, nil
}

func (s *NavigationService) DeleteRoute(ctx context.Context, id string) error {
	if _, err := s.session(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.routes, id)
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.DeleteRoute(ctx, id); err != nil && !errors.Is(err, kv.ErrRouteNotFound) {
			s.log.Error("delete route", zap.String("route_id", id), zap.Error(err))
			return server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
		}
	}
	s.log.Debug("route deleted", zap.String("route_id", id))
	return nil
}

func (s *NavigationService) AppendWaypoint(ctx context.Context, id string, wp datastructure.Waypoint) (datastructure.RouteSnapshot, int, error) {
	var index int
	snap, err := s.mutate(ctx, id, func(e *route.Editor) error {
		index = e.Append(wp.Point, wp.Name, wp.Description)
		return nil
	})
	return snap, index, err
}

func (s *NavigationService) InsertWaypoint(ctx context.Context, id string, afterIndex int, p geo.GeoPoint) (datastructure.RouteSnapshot, int, error) {
	var index int
	snap, err := s.mutate(ctx, id, func(e *route.Editor) (err error) {
		index, err = e.InsertBetween(p, afterIndex)
		return err
	})
	return snap, index, err
}

// InsertNearestWaypoint click-to-insert: p goes into the closest segment if it
// lies within the configured insert distance.
func (s *NavigationService) InsertNearestWaypoint(ctx context.Context, id string, p geo.GeoPoint) (datastructure.RouteSnapshot, int, error) {
	var index int
	snap, err := s.mutate(ctx, id, func(e *route.Editor) (err error) {
		index, err = e.InsertNearest(p, s.opts.InsertMaxDistanceMeters)
		return err
	})
	return snap, index, err
}

func (s *NavigationService) MoveWaypoint(ctx context.Context, id string, index int, p geo.GeoPoint) (geo.GeoPoint, datastructure.RouteSnapshot, error) {
	var prev geo.GeoPoint
	snap, err := s.mutate(ctx, id, func(e *route.Editor) (err error) {
		prev, err = e.MoveTo(index, p)
		return err
	})
	return prev, snap, err
}

func (s *NavigationService) RenameWaypoint(ctx context.Context, id string, index int, name, description string) (datastructure.RouteSnapshot, error) {
	return s.mutate(ctx, id, func(e *route.Editor) error {
		return e.Rename(index, name, description)
	})
}

func (s *NavigationService) RemoveWaypoint(ctx context.Context, id string, index int) (datastructure.Waypoint, datastructure.RouteSnapshot, error) {
	var removed datastructure.Waypoint
	snap, err := s.mutate(ctx, id, func(e *route.Editor) (err error) {
		removed, err = e.RemoveAt(index)
		return err
	})
	return removed, snap, err
}

// mutate runs fn under the route lock, then stamps and persists the result.
// A failed fn leaves the route untouched.
func (s *NavigationService) mutate(ctx context.Context, id string, fn func(e *route.Editor) error) (datastructure.RouteSnapshot, error) {
	rs, err := s.session(ctx, id)
	if err != nil {
		return datastructure.RouteSnapshot{}, err
	}
	rs.mu.Lock()
	defer rs.mu.Unlock()

	// other edits shift indices, so a drag in progress is committed first
	if d := rs.dragSession(); d.Active() {
		_ = d.End()
	}
	if err := fn(rs.editor); err != nil {
		return datastructure.RouteSnapshot{}, wrapRouteError(err)
	}
	rs.updatedAt = s.now()
	snap := rs.snapshot()
	if err := s.persist(ctx, snap); err != nil {
		return datastructure.RouteSnapshot{}, err
	}
	s.log.Debug("route updated", zap.String("route_id", id), zap.Int("waypoints", len(snap.Waypoints)))
	return snap, nil
}

// session returns the open route, reopening it from the store when needed.
func (s *NavigationService) session(ctx context.Context, id string) (*routeSession, error) {
	s.mu.Lock()
	rs, ok := s.routes[id]
	s.mu.Unlock()
	if ok {
		return rs, nil
	}
	if s.store == nil {
		return nil, server.WrapErrorf(kv.ErrRouteNotFound, server.ErrNotFound, "route %s not found", id)
	}

	snap, err := s.store.GetRoute(ctx, id)
	if errors.Is(err, kv.ErrRouteNotFound) {
		return nil, server.WrapErrorf(err, server.ErrNotFound, "route %s not found", id)
	}
	if err != nil {
		s.log.Error("load route", zap.String("route_id", id), zap.Error(err))
		return nil, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if rs, ok := s.routes[id]; ok {
		return rs, nil
	}
	rs = &routeSession{
		id:        snap.ID,
		name:      snap.Name,
		createdAt: snap.CreatedAt,
		updatedAt: snap.UpdatedAt,
		editor:    route.NewEditorFrom(snap.Waypoints),
	}
	s.routes[id] = rs
	return rs, nil
}

func (s *NavigationService) persist(ctx context.Context, snap datastructure.RouteSnapshot) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.SaveRoute(ctx, snap); err != nil {
		s.log.Error("save route", zap.String("route_id", snap.ID), zap.Error(err))
		return server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}
	return nil
}

func wrapRouteError(err error) error {
	switch {
	case errors.Is(err, route.ErrIndexOutOfRange):
		return server.WrapErrorf(err, server.ErrBadParamInput, "%s", err.Error())
	case errors.Is(err, route.ErrDegenerateRoute):
		return server.WrapErrorf(err, server.ErrBadParamInput, "route needs at least two waypoints")
	case errors.Is(err, route.ErrNoSegmentNearby):
		return server.WrapErrorf(err, server.ErrBadParamInput, "point is too far from the route")
	case errors.Is(err, route.ErrNotDragging):
		return server.WrapErrorf(err, server.ErrConflict, "no drag in progress")
	default:
		return server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}
}
