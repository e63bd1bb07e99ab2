package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"lintang/flightpath/pkg/datastructure"
	"lintang/flightpath/pkg/engine/playback"
	"lintang/flightpath/pkg/engine/tracking"
	"lintang/flightpath/pkg/geo"
	"lintang/flightpath/pkg/server"
	"lintang/flightpath/pkg/server/rest/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type NavigationService interface {
	CreateRoute(ctx context.Context, name string, wps []datastructure.Waypoint) (datastructure.RouteSnapshot, error)
	GetRoute(ctx context.Context, id string) (datastructure.RouteSnapshot, error)
	ListRoutes(ctx context.Context) ([]datastructure.RouteSnapshot, error)
	DeleteRoute(ctx context.Context, id string) error

	AppendWaypoint(ctx context.Context, id string, wp datastructure.Waypoint) (datastructure.RouteSnapshot, int, error)
	InsertWaypoint(ctx context.Context, id string, afterIndex int, p geo.GeoPoint) (datastructure.RouteSnapshot, int, error)
	InsertNearestWaypoint(ctx context.Context, id string, p geo.GeoPoint) (datastructure.RouteSnapshot, int, error)
	MoveWaypoint(ctx context.Context, id string, index int, p geo.GeoPoint) (geo.GeoPoint, datastructure.RouteSnapshot, error)
	RenameWaypoint(ctx context.Context, id string, index int, name, description string) (datastructure.RouteSnapshot, error)
	RemoveWaypoint(ctx context.Context, id string, index int) (datastructure.Waypoint, datastructure.RouteSnapshot, error)

	BeginDrag(ctx context.Context, id string, index int) (service.DragState, error)
	DragTo(ctx context.Context, id string, p geo.GeoPoint) (service.DragState, error)
	EndDrag(ctx context.Context, id string) (service.DragState, error)
	CancelDrag(ctx context.Context, id string) (service.DragState, error)

	Summary(ctx context.Context, id string) (service.RouteSummary, error)
	NearbyPOIs(ctx context.Context, id string, index int, radiusMeters float64) ([]datastructure.POIWithDistance, float64, error)
	ExportGeoJSON(ctx context.Context, id string) ([]byte, error)
	ExportKML(ctx context.Context, id string) ([]byte, error)

	Playback(ctx context.Context, id string, action string) (service.PlaybackResult, error)
	Fly(ctx context.Context, id string, interval time.Duration, emit func(playback.Frame)) error
	TrackFix(ctx context.Context, name string, fix tracking.Fix) (tracking.Position, error)
	StopTracking(ctx context.Context, name string) (*tracking.Position, error)
}

type NavigationHandler struct {
	svc          NavigationService
	promeMetrics *metrics
}

func NavigatorRouter(r *chi.Mux, svc NavigationService, m *metrics) {
	handler := &NavigationHandler{svc, m}

	r.Group(func(r chi.Router) {
		r.Route("/api/routes", func(r chi.Router) {
			r.Post("/", handler.createRoute)
			r.Get("/", handler.listRoutes)
			r.Route("/{routeID}", func(r chi.Router) {
				r.Get("/", handler.getRoute)
				r.Delete("/", handler.deleteRoute)
				r.Get("/summary", handler.routeSummary)
				r.Get("/export/geojson", handler.exportGeoJSON)
				r.Get("/export/kml", handler.exportKML)
				r.Post("/playback/{action}", handler.playback)
				r.Get("/fly", handler.fly)

				r.Post("/waypoints", handler.appendWaypoint)
				r.Post("/waypoints/insert", handler.insertWaypoint)
				r.Post("/waypoints/nearest", handler.insertNearestWaypoint)
				r.Put("/waypoints/{index}", handler.moveWaypoint)
				r.Patch("/waypoints/{index}", handler.renameWaypoint)
				r.Delete("/waypoints/{index}", handler.removeWaypoint)
				r.Get("/waypoints/{index}/nearby", handler.nearbyPOIs)
				r.Post("/waypoints/{index}/drag", handler.beginDrag)
				r.Put("/drag", handler.dragTo)
				r.Post("/drag/end", handler.endDrag)
				r.Post("/drag/cancel", handler.cancelDrag)
			})
		})
		r.Route("/api/tracking/{session}", func(r chi.Router) {
			r.Post("/fix", handler.trackFix)
			r.Post("/stop", handler.stopTracking)
		})
	})
}

// PointRequest model info
//
//	@Description	koordinat WGS84, alt dalam meter (opsional)
type PointRequest struct {
	Lat *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lon *float64 `json:"lon" validate:"required,gte=-180,lte=180"`
	Alt *float64 `json:"alt,omitempty"`
}

func (p *PointRequest) Bind(r *http.Request) error {
	return nil
}

func (p PointRequest) point() (geo.GeoPoint, error) {
	if p.Lat == nil || p.Lon == nil {
		return geo.GeoPoint{}, geo.ErrInvalidCoordinate
	}
	if p.Alt != nil {
		return geo.NewGeoPointAlt(*p.Lat, *p.Lon, *p.Alt)
	}
	return geo.NewGeoPoint(*p.Lat, *p.Lon)
}

// WaypointRequest model info
//
//	@Description	request body untuk menambah waypoint di akhir route
type WaypointRequest struct {
	PointRequest
	Name        string `json:"name" validate:"max=128"`
	Description string `json:"description" validate:"max=1024"`
}

func (wr *WaypointRequest) Bind(r *http.Request) error {
	return nil
}

func (wr WaypointRequest) waypoint() (datastructure.Waypoint, error) {
	p, err := wr.point()
	if err != nil {
		return datastructure.Waypoint{}, err
	}
	return datastructure.NewWaypoint(p, wr.Name, wr.Description), nil
}

// CreateRouteRequest model info
//
//	@Description	request body untuk membuat route baru
type CreateRouteRequest struct {
	Name      string            `json:"name" validate:"required,max=128"`
	Waypoints []WaypointRequest `json:"waypoints" validate:"dive"`
}

func (c *CreateRouteRequest) Bind(r *http.Request) error {
	return nil
}

// InsertWaypointRequest model info
//
//	@Description	request body untuk menyisipkan waypoint setelah after_index
type InsertWaypointRequest struct {
	AfterIndex *int `json:"after_index" validate:"required,gte=0"`
	PointRequest
}

func (i *InsertWaypointRequest) Bind(r *http.Request) error {
	return nil
}

// RenameWaypointRequest model info
//
//	@Description	request body untuk mengganti nama dan deskripsi waypoint
type RenameWaypointRequest struct {
	Name        string `json:"name" validate:"max=128"`
	Description string `json:"description" validate:"max=1024"`
}

func (rw *RenameWaypointRequest) Bind(r *http.Request) error {
	return nil
}

// FixRequest model info
//
//	@Description	satu posisi dari sumber geolocation, heading dan time opsional
type FixRequest struct {
	PointRequest
	Heading *float64   `json:"heading,omitempty" validate:"omitempty,gte=0,lt=360"`
	Time    *time.Time `json:"time,omitempty"`
}

func (f *FixRequest) Bind(r *http.Request) error {
	return nil
}

// RouteResponse model info
//
//	@Description	route beserta index waypoint yang baru diubah
type RouteResponse struct {
	Route datastructure.RouteSnapshot `json:"route"`
	Index *int                        `json:"index,omitempty"`
}

func NewRouteResponse(snap datastructure.RouteSnapshot) *RouteResponse {
	return &RouteResponse{Route: snap}
}

func NewRouteIndexResponse(snap datastructure.RouteSnapshot, index int) *RouteResponse {
	return &RouteResponse{Route: snap, Index: &index}
}

// RoutesResponse model info
//
//	@Description	semua route yang tersimpan
type RoutesResponse struct {
	Routes []datastructure.RouteSnapshot `json:"routes"`
}

// MoveWaypointResponse model info
//
//	@Description	posisi lama waypoint (untuk undo) dan route terbaru
type MoveWaypointResponse struct {
	Previous geo.GeoPoint                `json:"previous"`
	Route    datastructure.RouteSnapshot `json:"route"`
}

// RemoveWaypointResponse model info
//
//	@Description	waypoint yang dihapus dan route terbaru
type RemoveWaypointResponse struct {
	Removed datastructure.Waypoint      `json:"removed"`
	Route   datastructure.RouteSnapshot `json:"route"`
}

// DragResponse model info
//
//	@Description	status drag marker dan route terbaru, index -1 kalau tidak sedang drag
type DragResponse struct {
	Dragging bool                        `json:"dragging"`
	Index    int                         `json:"index"`
	Route    datastructure.RouteSnapshot `json:"route"`
}

func NewDragResponse(st service.DragState) *DragResponse {
	return &DragResponse{Dragging: st.Dragging, Index: st.Index, Route: st.Route}
}

// RouteSummaryResponse model info
//
//	@Description	total jarak, leg, bounds dan polyline dari route
type RouteSummaryResponse struct {
	ID              string                  `json:"id"`
	Name            string                  `json:"name"`
	Waypoints       int                     `json:"waypoints"`
	TotalDistance   float64                 `json:"total_distance"`
	TotalDistanceNM float64                 `json:"total_distance_nm"`
	Legs            []datastructure.Leg     `json:"legs"`
	Instructions    []string                `json:"instructions"`
	Bounds          *geo.BoundingBox        `json:"bounds,omitempty"`
	Start           *datastructure.Waypoint `json:"start,omitempty"`
	End             *datastructure.Waypoint `json:"end,omitempty"`
	Polyline        string                  `json:"polyline"`
}

func NewRouteSummaryResponse(sum service.RouteSummary) *RouteSummaryResponse {
	legs := make([]datastructure.Leg, len(sum.Legs))
	for i, l := range sum.Legs {
		l.Distance = roundFloat(l.Distance, 2)
		l.Heading = roundFloat(l.Heading, 2)
		l.Turn = roundFloat(l.Turn, 2)
		l.CumulativeDistance = roundFloat(l.CumulativeDistance, 2)
		legs[i] = l
	}
	return &RouteSummaryResponse{
		ID:              sum.ID,
		Name:            sum.Name,
		Waypoints:       sum.Waypoints,
		TotalDistance:   roundFloat(sum.TotalDistance, 2),
		TotalDistanceNM: roundFloat(geo.MetersToNauticalMiles(sum.TotalDistance), 2),
		Legs:            legs,
		Instructions:    sum.Instructions,
		Bounds:          sum.Bounds,
		Start:           sum.Start,
		End:             sum.End,
		Polyline:        sum.Polyline,
	}
}

// NearbyPOIsResponse model info
//
//	@Description	POI overlay dalam radius dari waypoint, urut dari yang terdekat
type NearbyPOIsResponse struct {
	RadiusMeters float64                         `json:"radius"`
	POIs         []datastructure.POIWithDistance `json:"pois"`
}

// PlaybackResponse model info
//
//	@Description	state playback dan frame yang harus digambar
type PlaybackResponse struct {
	State string          `json:"state"`
	Frame *playback.Frame `json:"frame,omitempty"`
}

// TrackingResponse model info
//
//	@Description	posisi pesawat, heading, ground speed dan heading line
type TrackingResponse struct {
	Session  string             `json:"session"`
	Position *tracking.Position `json:"position,omitempty"`
}

// createRoute
//
//	@Summary		membuat route baru.
//	@Description	membuat route baru, waypoints opsional
//	@Tags			routes
//	@Param			body	body	CreateRouteRequest	true	"request body route baru"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes [post]
//	@Success		201	{object}	RouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) createRoute(w http.ResponseWriter, r *http.Request) {
	data := &CreateRouteRequest{}
	if !bindAndValidate(w, r, data) {
		return
	}

	wps := make([]datastructure.Waypoint, 0, len(data.Waypoints))
	for _, wr := range data.Waypoints {
		wp, err := wr.waypoint()
		if err != nil {
			render.Render(w, r, ErrInvalidRequest(err))
			return
		}
		wps = append(wps, wp)
	}

	snap, err := h.svc.CreateRoute(r.Context(), data.Name, wps)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	h.promeMetrics.RouteEditCount.WithLabelValues("create").Inc()

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, NewRouteResponse(snap))
}

// listRoutes
//
//	@Summary		semua route.
//	@Tags			routes
//	@Produce		application/json
//	@Router			/routes [get]
//	@Success		200	{object}	RoutesResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) listRoutes(w http.ResponseWriter, r *http.Request) {
	routes, err := h.svc.ListRoutes(r.Context())
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &RoutesResponse{Routes: routes})
}

// getRoute
//
//	@Summary		ambil route berdasarkan id.
//	@Tags			routes
//	@Param			routeID	path	string	true	"route id"
//	@Produce		application/json
//	@Router			/routes/{routeID} [get]
//	@Success		200	{object}	RouteResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) getRoute(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.GetRoute(r.Context(), chi.URLParam(r, "routeID"))
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewRouteResponse(snap))
}

// deleteRoute
//
//	@Summary		hapus route.
//	@Tags			routes
//	@Param			routeID	path	string	true	"route id"
//	@Router			/routes/{routeID} [delete]
//	@Success		204
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) deleteRoute(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteRoute(r.Context(), chi.URLParam(r, "routeID")); err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	h.promeMetrics.RouteEditCount.WithLabelValues("delete").Inc()
	render.NoContent(w, r)
}

// appendWaypoint
//
//	@Summary		tambah waypoint di akhir route.
//	@Tags			waypoints
//	@Param			routeID	path	string			true	"route id"
//	@Param			body	body	WaypointRequest	true	"waypoint baru"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/{routeID}/waypoints [post]
//	@Success		200	{object}	RouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) appendWaypoint(w http.ResponseWriter, r *http.Request) {
	data := &WaypointRequest{}
	if !bindAndValidate(w, r, data) {
		return
	}
	wp, err := data.waypoint()
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	snap, index, err := h.svc.AppendWaypoint(r.Context(), chi.URLParam(r, "routeID"), wp)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	h.promeMetrics.RouteEditCount.WithLabelValues("append").Inc()

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewRouteIndexResponse(snap, index))
}

// insertWaypoint
//
//	@Summary		sisipkan waypoint di antara after_index dan after_index+1.
//	@Tags			waypoints
//	@Param			routeID	path	string					true	"route id"
//	@Param			body	body	InsertWaypointRequest	true	"posisi waypoint baru"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/{routeID}/waypoints/insert [post]
//	@Success		200	{object}	RouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) insertWaypoint(w http.ResponseWriter, r *http.Request) {
	data := &InsertWaypointRequest{}
	if !bindAndValidate(w, r, data) {
		return
	}
	p, err := data.point()
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	snap, index, err := h.svc.InsertWaypoint(r.Context(), chi.URLParam(r, "routeID"), *data.AfterIndex, p)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	h.promeMetrics.RouteEditCount.WithLabelValues("insert").Inc()

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewRouteIndexResponse(snap, index))
}

// insertNearestWaypoint
//
//	@Summary		klik di dekat route untuk menyisipkan waypoint di segment terdekat.
//	@Tags			waypoints
//	@Param			routeID	path	string			true	"route id"
//	@Param			body	body	PointRequest	true	"titik yang diklik"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/{routeID}/waypoints/nearest [post]
//	@Success		200	{object}	RouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) insertNearestWaypoint(w http.ResponseWriter, r *http.Request) {
	data := &PointRequest{}
	if !bindAndValidate(w, r, data) {
		return
	}
	p, err := data.point()
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	snap, index, err := h.svc.InsertNearestWaypoint(r.Context(), chi.URLParam(r, "routeID"), p)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	h.promeMetrics.RouteEditCount.WithLabelValues("insert_nearest").Inc()

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewRouteIndexResponse(snap, index))
}

// moveWaypoint
//
//	@Summary		pindahkan waypoint (drag).
//	@Tags			waypoints
//	@Param			routeID	path	string			true	"route id"
//	@Param			index	path	int				true	"index waypoint"
//	@Param			body	body	PointRequest	true	"posisi baru"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/{routeID}/waypoints/{index} [put]
//	@Success		200	{object}	MoveWaypointResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) moveWaypoint(w http.ResponseWriter, r *http.Request) {
	index, ok := waypointIndex(w, r)
	if !ok {
		return
	}
	data := &PointRequest{}
	if !bindAndValidate(w, r, data) {
		return
	}
	p, err := data.point()
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	prev, snap, err := h.svc.MoveWaypoint(r.Context(), chi.URLParam(r, "routeID"), index, p)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	h.promeMetrics.RouteEditCount.WithLabelValues("move").Inc()

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &MoveWaypointResponse{Previous: prev, Route: snap})
}

// renameWaypoint
//
//	@Summary		ganti nama dan deskripsi waypoint.
//	@Tags			waypoints
//	@Param			routeID	path	string					true	"route id"
//	@Param			index	path	int						true	"index waypoint"
//	@Param			body	body	RenameWaypointRequest	true	"nama dan deskripsi"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/{routeID}/waypoints/{index} [patch]
//	@Success		200	{object}	RouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) renameWaypoint(w http.ResponseWriter, r *http.Request) {
	index, ok := waypointIndex(w, r)
	if !ok {
		return
	}
	data := &RenameWaypointRequest{}
	if !bindAndValidate(w, r, data) {
		return
	}

	snap, err := h.svc.RenameWaypoint(r.Context(), chi.URLParam(r, "routeID"), index, data.Name, data.Description)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	h.promeMetrics.RouteEditCount.WithLabelValues("rename").Inc()

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewRouteIndexResponse(snap, index))
}

// removeWaypoint
//
//	@Summary		hapus waypoint.
//	@Tags			waypoints
//	@Param			routeID	path	string	true	"route id"
//	@Param			index	path	int		true	"index waypoint"
//	@Produce		application/json
//	@Router			/routes/{routeID}/waypoints/{index} [delete]
//	@Success		200	{object}	RemoveWaypointResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) removeWaypoint(w http.ResponseWriter, r *http.Request) {
	index, ok := waypointIndex(w, r)
	if !ok {
		return
	}

	removed, snap, err := h.svc.RemoveWaypoint(r.Context(), chi.URLParam(r, "routeID"), index)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	h.promeMetrics.RouteEditCount.WithLabelValues("remove").Inc()

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &RemoveWaypointResponse{Removed: removed, Route: snap})
}

// beginDrag
//
//	@Summary		mulai drag marker waypoint.
//	@Description	drag lain yang masih berjalan di route yang sama di-commit dulu
//	@Tags			drag
//	@Param			routeID	path	string	true	"route id"
//	@Param			index	path	int		true	"index waypoint"
//	@Produce		application/json
//	@Router			/routes/{routeID}/waypoints/{index}/drag [post]
//	@Success		200	{object}	DragResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) beginDrag(w http.ResponseWriter, r *http.Request) {
	index, ok := waypointIndex(w, r)
	if !ok {
		return
	}
	st, err := h.svc.BeginDrag(r.Context(), chi.URLParam(r, "routeID"), index)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewDragResponse(st))
}

// dragTo
//
//	@Summary		geser marker yang sedang di-drag.
//	@Tags			drag
//	@Param			routeID	path	string			true	"route id"
//	@Param			body	body	PointRequest	true	"posisi marker"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/{routeID}/drag [put]
//	@Success		200	{object}	DragResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		409	{object}	ErrResponse
func (h *NavigationHandler) dragTo(w http.ResponseWriter, r *http.Request) {
	data := &PointRequest{}
	if !bindAndValidate(w, r, data) {
		return
	}
	p, err := data.point()
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	st, err := h.svc.DragTo(r.Context(), chi.URLParam(r, "routeID"), p)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewDragResponse(st))
}

// endDrag
//
//	@Summary		lepas marker, posisi terakhir disimpan.
//	@Tags			drag
//	@Param			routeID	path	string	true	"route id"
//	@Produce		application/json
//	@Router			/routes/{routeID}/drag/end [post]
//	@Success		200	{object}	DragResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		409	{object}	ErrResponse
func (h *NavigationHandler) endDrag(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.EndDrag(r.Context(), chi.URLParam(r, "routeID"))
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	h.promeMetrics.RouteEditCount.WithLabelValues("drag").Inc()

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewDragResponse(st))
}

// cancelDrag
//
//	@Summary		batalkan drag, marker kembali ke posisi awal.
//	@Tags			drag
//	@Param			routeID	path	string	true	"route id"
//	@Produce		application/json
//	@Router			/routes/{routeID}/drag/cancel [post]
//	@Success		200	{object}	DragResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		409	{object}	ErrResponse
func (h *NavigationHandler) cancelDrag(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.CancelDrag(r.Context(), chi.URLParam(r, "routeID"))
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewDragResponse(st))
}

// routeSummary
//
//	@Summary		total jarak, leg, bounds dan polyline route.
//	@Tags			routes
//	@Param			routeID	path	string	true	"route id"
//	@Produce		application/json
//	@Router			/routes/{routeID}/summary [get]
//	@Success		200	{object}	RouteSummaryResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) routeSummary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Summary(r.Context(), chi.URLParam(r, "routeID"))
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewRouteSummaryResponse(sum))
}

// nearbyPOIs
//
//	@Summary		POI overlay di sekitar waypoint.
//	@Description	radius dalam meter, default dari konfigurasi (5 NM)
//	@Tags			waypoints
//	@Param			routeID	path	string	true	"route id"
//	@Param			index	path	int		true	"index waypoint"
//	@Param			radius	query	number	false	"radius meter"
//	@Produce		application/json
//	@Router			/routes/{routeID}/waypoints/{index}/nearby [get]
//	@Success		200	{object}	NearbyPOIsResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) nearbyPOIs(w http.ResponseWriter, r *http.Request) {
	index, ok := waypointIndex(w, r)
	if !ok {
		return
	}
	radius := 0.0
	if q := r.URL.Query().Get("radius"); q != "" {
		v, err := strconv.ParseFloat(q, 64)
		if err != nil || v <= 0 {
			render.Render(w, r, ErrInvalidRequest(fmt.Errorf("radius must be a positive number of meters, got %q", q)))
			return
		}
		radius = v
	}

	pois, used, err := h.svc.NearbyPOIs(r.Context(), chi.URLParam(r, "routeID"), index, radius)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	h.promeMetrics.POIQueryCount.Inc()

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &NearbyPOIsResponse{RadiusMeters: used, POIs: pois})
}

// exportGeoJSON
//
//	@Summary		export route sebagai GeoJSON FeatureCollection.
//	@Tags			export
//	@Param			routeID	path	string	true	"route id"
//	@Produce		application/geo+json
//	@Router			/routes/{routeID}/export/geojson [get]
//	@Success		200
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) exportGeoJSON(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "routeID")
	bb, err := h.svc.ExportGeoJSON(r.Context(), id)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	writeAttachment(w, "application/geo+json", id+".geojson", bb)
}

// exportKML
//
//	@Summary		export route sebagai KML.
//	@Tags			export
//	@Param			routeID	path	string	true	"route id"
//	@Produce		application/vnd.google-earth.kml+xml
//	@Router			/routes/{routeID}/export/kml [get]
//	@Success		200
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) exportKML(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "routeID")
	bb, err := h.svc.ExportKML(r.Context(), id)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	writeAttachment(w, "application/vnd.google-earth.kml+xml", id+".kml", bb)
}

// playback
//
//	@Summary		kontrol playback penerbangan sepanjang route.
//	@Description	action: start, step, pause, resume, rewind, reset
//	@Tags			playback
//	@Param			routeID	path	string	true	"route id"
//	@Param			action	path	string	true	"playback action"
//	@Produce		application/json
//	@Router			/routes/{routeID}/playback/{action} [post]
//	@Success		200	{object}	PlaybackResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		409	{object}	ErrResponse
func (h *NavigationHandler) playback(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Playback(r.Context(), chi.URLParam(r, "routeID"), chi.URLParam(r, "action"))
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &PlaybackResponse{State: res.State, Frame: res.Frame})
}

const (
	FLY_DEFAULT_INTERVAL = 500 * time.Millisecond
	FLY_MAX_INTERVAL_MS  = 60000
)

// fly
//
//	@Summary		stream frame playback secara real time (server-sent events).
//	@Description	satu event "frame" per interval sampai route selesai, playback di-pause, atau client putus
//	@Tags			playback
//	@Param			routeID		path	string	true	"route id"
//	@Param			interval_ms	query	int		false	"jeda antar frame, default 500"
//	@Produce		text/event-stream
//	@Router			/routes/{routeID}/fly [get]
//	@Success		200	{object}	playback.Frame
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) fly(w http.ResponseWriter, r *http.Request) {
	interval := FLY_DEFAULT_INTERVAL
	if q := r.URL.Query().Get("interval_ms"); q != "" {
		ms, err := strconv.Atoi(q)
		if err != nil || ms < 1 || ms > FLY_MAX_INTERVAL_MS {
			render.Render(w, r, ErrInvalidRequest(fmt.Errorf("interval_ms must be between 1 and %d, got %q", FLY_MAX_INTERVAL_MS, q)))
			return
		}
		interval = time.Duration(ms) * time.Millisecond
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		render.Render(w, r, ErrChi(errors.New("streaming unsupported")))
		return
	}

	started := false
	err := h.svc.Fly(r.Context(), chi.URLParam(r, "routeID"), interval, func(f playback.Frame) {
		if !started {
			w.Header().Set("Content-Type", "text/event-stream")
			w.Header().Set("Cache-Control", "no-cache")
			w.WriteHeader(http.StatusOK)
			started = true
		}
		b, _ := json.Marshal(f)
		fmt.Fprintf(w, "event: frame\ndata: %s\n\n", b)
		flusher.Flush()
	})
	if err != nil && !started {
		render.Render(w, r, ErrChi(err))
		return
	}
	if !started {
		w.WriteHeader(http.StatusNoContent)
	}
}

// trackFix
//
//	@Summary		kirim posisi pesawat ke sesi tracking.
//	@Tags			tracking
//	@Param			session	path	string		true	"nama sesi"
//	@Param			body	body	FixRequest	true	"posisi"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/tracking/{session}/fix [post]
//	@Success		200	{object}	TrackingResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		409	{object}	ErrResponse
func (h *NavigationHandler) trackFix(w http.ResponseWriter, r *http.Request) {
	data := &FixRequest{}
	if !bindAndValidate(w, r, data) {
		return
	}
	p, err := data.point()
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	fix := tracking.Fix{Point: p}
	if data.Heading != nil {
		fix.Heading, fix.HasHeading = *data.Heading, true
	}
	if data.Time != nil {
		fix.Time = *data.Time
	}

	session := chi.URLParam(r, "session")
	pos, err := h.svc.TrackFix(r.Context(), session, fix)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &TrackingResponse{Session: session, Position: &pos})
}

// stopTracking
//
//	@Summary		hentikan sesi tracking.
//	@Tags			tracking
//	@Param			session	path	string	true	"nama sesi"
//	@Produce		application/json
//	@Router			/tracking/{session}/stop [post]
//	@Success		200	{object}	TrackingResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		409	{object}	ErrResponse
func (h *NavigationHandler) stopTracking(w http.ResponseWriter, r *http.Request) {
	session := chi.URLParam(r, "session")
	pos, err := h.svc.StopTracking(r.Context(), session)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &TrackingResponse{Session: session, Position: pos})
}

func roundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

func bindAndValidate(w http.ResponseWriter, r *http.Request, data render.Binder) bool {
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return false
	}

	validate := validator.New()
	if err := validate.Struct(data); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		render.Render(w, r, ErrValidation(err, vv))
		return false
	}
	return true
}

func waypointIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(fmt.Errorf("waypoint index must be an integer, got %q", raw)))
		return 0, false
	}
	return index, true
}

func writeAttachment(w http.ResponseWriter, contentType, filename string, bb []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(bb)
}

// ErrResponse model info
//
//	@Description	model untuk error response
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrChi(err error) render.Renderer {
	statusText := ""
	switch getStatusCode(err) {
	case http.StatusNotFound:
		statusText = "Resource not found."
	case http.StatusInternalServerError:
		statusText = "Internal server error."
	case http.StatusConflict:
		statusText = "Resource conflict."
	case http.StatusBadRequest:
		statusText = "Bad request."
	default:
		statusText = "Error."
	}

	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: getStatusCode(err),
		StatusText:     statusText,
		ErrorText:      err.Error(),
	}
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var ierr *server.Error
	if !errors.As(err, &ierr) {
		return http.StatusInternalServerError
	} else {
		switch ierr.Code() {
		case server.ErrInternalServerError:
			return http.StatusInternalServerError
		case server.ErrNotFound:
			return http.StatusNotFound
		case server.ErrConflict:
			return http.StatusConflict
		case server.ErrBadParamInput:
			return http.StatusBadRequest
		default:
			return http.StatusInternalServerError
		}
	}

}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}
