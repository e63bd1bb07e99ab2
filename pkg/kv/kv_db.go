package kv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	"lintang/flightpath/pkg/concurrent"
	"lintang/flightpath/pkg/datastructure"
	"lintang/flightpath/pkg/geo"
	"lintang/flightpath/pkg/poi"

	"github.com/cockroachdb/pebble"
	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
	"github.com/uber/h3-go/v4"
	"go.uber.org/zap"
)

const (
	routePrefix   = "route/"
	routeIndexKey = "index/routes"
	poiPrefix     = "poi/"
	h3Resolution  = 7
)

var ErrRouteNotFound = errors.New("route not found")

type KVDB struct {
	db       *pebble.DB
	log      *zap.Logger
	progress io.Writer
	indexMu  sync.Mutex // serializes updates of routeIndexKey
}

func NewKVDB(db *pebble.DB, log *zap.Logger) *KVDB {
	return &KVDB{db: db, log: log, progress: ansi.NewAnsiStdout()}
}

// SetProgressWriter redirects import progress bars, io.Discard silences them.
func (k *KVDB) SetProgressWriter(w io.Writer) {
	k.progress = w
}

func (k *KVDB) SaveRoute(ctx context.Context, r datastructure.RouteSnapshot) error {
	val, err := EncodeRoute(r)
	if err != nil {
		return err
	}
	k.indexMu.Lock()
	defer k.indexMu.Unlock()
	ids, err := k.routeIDs()
	if err != nil {
		return err
	}
	if !contains(ids, r.ID) {
		ids = append(ids, r.ID)
	}

	b := k.db.NewBatch()
	defer b.Close()
	if err := b.Set([]byte(routePrefix+r.ID), val, nil); err != nil {
		return err
	}
	if err := b.Set([]byte(routeIndexKey), []byte(strings.Join(ids, "\n")), nil); err != nil {
		return err
	}
	return b.Commit(pebble.Sync)
}

func (k *KVDB) GetRoute(ctx context.Context, id string) (datastructure.RouteSnapshot, error) {
	val, closer, err := k.db.Get([]byte(routePrefix + id))
	if errors.Is(err, pebble.ErrNotFound) {
		return datastructure.RouteSnapshot{}, ErrRouteNotFound
	}
	if err != nil {
		return datastructure.RouteSnapshot{}, err
	}
	defer closer.Close()
	return DecodeRoute(val)
}

func (k *KVDB) DeleteRoute(ctx context.Context, id string) error {
	k.indexMu.Lock()
	defer k.indexMu.Unlock()
	ids, err := k.routeIDs()
	if err != nil {
		return err
	}
	if !contains(ids, id) {
		return ErrRouteNotFound
	}
	kept := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			kept = append(kept, v)
		}
	}

	b := k.db.NewBatch()
	defer b.Close()
	if err := b.Delete([]byte(routePrefix+id), nil); err != nil {
		return err
	}
	if err := b.Set([]byte(routeIndexKey), []byte(strings.Join(kept, "\n")), nil); err != nil {
		return err
	}
	return b.Commit(pebble.Sync)
}

func (k *KVDB) ListRoutes(ctx context.Context) ([]datastructure.RouteSnapshot, error) {
	ids, err := k.routeIDs()
	if err != nil {
		return nil, err
	}
	routes := make([]datastructure.RouteSnapshot, 0, len(ids))
	for _, id := range ids {
		r, err := k.GetRoute(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load route %s: %w", id, err)
		}
		routes = append(routes, r)
	}
	return routes, nil
}

func (k *KVDB) routeIDs() ([]string, error) {
	val, closer, err := k.db.Get([]byte(routeIndexKey))
	if errors.Is(err, pebble.ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	if len(val) == 0 {
		return []string{}, nil
	}
	return strings.Split(string(val), "\n"), nil
}

// CreatePOIKV buckets POIs by h3 cell and writes one compressed value per cell.
func (k *KVDB) CreatePOIKV(pois []datastructure.POI, workers int) error {
	bar := k.newBar(len(pois), "[cyan][1/2][reset] building h3 index for overlay markers...")
	cells := make(map[string][]datastructure.POI)
	for _, p := range pois {
		cell := h3.LatLngToCell(h3.NewLatLng(p.Point.Lat, p.Point.Lon), h3Resolution)
		cells[cell.String()] = append(cells[cell.String()], p)
		bar.Add(1)
	}

	bar = k.newBar(len(cells), "[cyan][2/2][reset] saving h3 indexed markers to pebble db...")
	if workers < 1 {
		workers = 1
	}
	wp := concurrent.NewWorkerPool[concurrent.SavePOIJobItem, error](workers, len(cells))
	for keyStr, valArr := range cells {
		existing, err := k.poisInCell(keyStr)
		if err != nil {
			return err
		}
		wp.AddJob(concurrent.SavePOIJobItem{KeyStr: keyStr, ValArr: mergePOIs(existing, valArr)})
	}
	wp.Close()

	wp.Start(func(job concurrent.SavePOIJobItem) error {
		err := k.SavePOIs(job)
		bar.Add(1)
		return err
	})
	wp.Wait()

	var errs []error
	for err := range wp.CollectResults() {
		if err != nil {
			errs = append(errs, err)
		}
	}
	k.log.Info("overlay markers stored", zap.Int("markers", len(pois)), zap.Int("cells", len(cells)))
	return errors.Join(errs...)
}

// mergePOIs keeps one entry per ID. Later entries replace earlier ones in place.
func mergePOIs(existing, incoming []datastructure.POI) []datastructure.POI {
	merged := make([]datastructure.POI, 0, len(existing)+len(incoming))
	pos := make(map[string]int, len(existing)+len(incoming))
	for _, batch := range [][]datastructure.POI{existing, incoming} {
		for _, p := range batch {
			if i, ok := pos[p.ID]; ok {
				merged[i] = p
				continue
			}
			pos[p.ID] = len(merged)
			merged = append(merged, p)
		}
	}
	return merged
}

func (k *KVDB) SavePOIs(item concurrent.SavePOIJobItem) error {
	val, err := EncodePOIs(item.ValArr)
	if err != nil {
		return err
	}
	return k.db.Set([]byte(poiPrefix+item.KeyStr), val, pebble.Sync)
}

// WithinRadius POIs around center using the h3 cells covering the radius.
func (k *KVDB) WithinRadius(ctx context.Context, center geo.GeoPoint, radiusMeters float64) ([]datastructure.POIWithDistance, error) {
	if radiusMeters <= 0 {
		return []datastructure.POIWithDistance{}, nil
	}
	out := []datastructure.POIWithDistance{}
	for _, cell := range kRingIndexesArea(center.Lat, center.Lon, radiusMeters/1000) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pois, err := k.poisInCell(cell.String())
		if err != nil {
			return nil, err
		}
		for _, p := range pois {
			d := geo.HaversineDistance(center, p.Point)
			if d <= radiusMeters {
				out = append(out, datastructure.POIWithDistance{POI: p, Distance: d})
			}
		}
	}
	poi.SortByDistance(out)
	return out, nil
}

func (k *KVDB) poisInCell(cell string) ([]datastructure.POI, error) {
	val, closer, err := k.db.Get([]byte(poiPrefix + cell))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return DecodePOIs(val)
}

/*
*
  - https://observablehq.com/@nrabinowitz/h3-radius-lookup?collection=@nrabinowitz/h3
    cells of the grid disk around lat,lon whose area covers searchRadiusKm. One extra
    ring so markers near a cell edge are not missed.
*/
func kRingIndexesArea(lat, lon, searchRadiusKm float64) []h3.Cell {
	home := h3.NewLatLng(lat, lon)
	origin := h3.LatLngToCell(home, h3Resolution)
	originArea := h3.CellAreaKm2(origin)
	searchArea := math.Pi * searchRadiusKm * searchRadiusKm

	radius := 0
	diskArea := originArea

	for diskArea < searchArea {
		radius++
		cellCount := float64(3*radius*(radius+1) + 1)
		diskArea = cellCount * originArea
	}

	return h3.GridDisk(origin, radius+1)
}

func (k *KVDB) newBar(max int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(max,
		progressbar.OptionSetWriter(k.progress),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

func (k *KVDB) Close() error {
	return k.db.Close()
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
