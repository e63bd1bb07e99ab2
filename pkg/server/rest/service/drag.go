package service

import (
	"context"

	"lintang/flightpath/pkg/datastructure"
	"lintang/flightpath/pkg/engine/route"
	"lintang/flightpath/pkg/geo"

	"go.uber.org/zap"
)

// DragState Index is -1 when no drag is in progress.
type DragState struct {
	Dragging bool
	Index    int
	Route    datastructure.RouteSnapshot
}

type dragEffect int

const (
	dragUnchanged dragEffect = iota
	dragMoved                // route changed in memory only
	dragSettled              // route changed and must be stored
)

// BeginDrag grabs the waypoint at index. A drag already in progress on the
// route is committed first.
func (s *NavigationService) BeginDrag(ctx context.Context, id string, index int) (DragState, error) {
	return s.withDrag(ctx, id, func(d *route.DragSession) (dragEffect, error) {
		effect := dragUnchanged
		if d.Active() {
			s.log.Debug("drag committed", zap.String("route_id", id), zap.Int("index", d.Index()))
			if err := d.End(); err != nil {
				return dragUnchanged, err
			}
			effect = dragSettled
		}
		return effect, d.Begin(index)
	})
}

// DragTo moves the grabbed waypoint. Intermediate positions stay in memory
// and reach the store on EndDrag.
func (s *NavigationService) DragTo(ctx context.Context, id string, p geo.GeoPoint) (DragState, error) {
	return s.withDrag(ctx, id, func(d *route.DragSession) (dragEffect, error) {
		return dragMoved, d.Update(p)
	})
}

func (s *NavigationService) EndDrag(ctx context.Context, id string) (DragState, error) {
	return s.withDrag(ctx, id, func(d *route.DragSession) (dragEffect, error) {
		return dragSettled, d.End()
	})
}

// CancelDrag puts the waypoint back where the drag started.
func (s *NavigationService) CancelDrag(ctx context.Context, id string) (DragState, error) {
	return s.withDrag(ctx, id, func(d *route.DragSession) (dragEffect, error) {
		return dragSettled, d.Cancel()
	})
}

func (s *NavigationService) withDrag(ctx context.Context, id string, fn func(d *route.DragSession) (dragEffect, error)) (DragState, error) {
	rs, err := s.session(ctx, id)
	if err != nil {
		return DragState{}, err
	}
	rs.mu.Lock()
	defer rs.mu.Unlock()

	d := rs.dragSession()
	effect, err := fn(d)
	if err != nil {
		return DragState{}, wrapRouteError(err)
	}
	if effect != dragUnchanged {
		rs.updatedAt = s.now()
	}
	snap := rs.snapshot()
	if effect == dragSettled {
		if err := s.persist(ctx, snap); err != nil {
			return DragState{}, err
		}
	}
	return DragState{Dragging: d.Active(), Index: d.Index(), Route: snap}, nil
}
