package poi

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"lintang/flightpath/pkg/datastructure"
	"lintang/flightpath/pkg/geo"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
)

// Layer is one overlay file and the icon its markers are drawn with.
type Layer struct {
	Name string `mapstructure:"name"`
	File string `mapstructure:"file"`
	Icon string `mapstructure:"icon"`
}

const unknownDescription = "Unknown"

// LoadGeoJSON reads the point features of a FeatureCollection. Non-point
// geometries and points with invalid coordinates are skipped.
func LoadGeoJSON(r io.Reader, layer Layer) ([]datastructure.POI, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse geojson %s: %w", layer.Name, err)
	}

	pois := make([]datastructure.POI, 0, len(fc.Features))
	for i, f := range fc.Features {
		pt, ok := f.Geometry.(orb.Point)
		if !ok {
			continue
		}
		p, err := geo.NewGeoPoint(pt.Lat(), pt.Lon())
		if err != nil {
			continue
		}
		pois = append(pois, datastructure.POI{
			ID:          featureID(layer.Name, f, i),
			Point:       p,
			Description: f.Properties.MustString("description", unknownDescription),
			Layer:       layer.Name,
			Icon:        layer.Icon,
		})
	}
	return pois, nil
}

func LoadGeoJSONFile(layer Layer) ([]datastructure.POI, error) {
	f, err := os.Open(layer.File)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadGeoJSON(f, layer)
}

// LoadLayer reads a .geojson / .json overlay or an .osm.pbf extract, picked
// by file extension.
func LoadLayer(ctx context.Context, layer Layer, osmTags []string) ([]datastructure.POI, error) {
	switch {
	case strings.HasSuffix(layer.File, ".pbf"):
		f, err := os.Open(layer.File)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return LoadOSM(ctx, f, layer, osmTags)
	case strings.HasSuffix(layer.File, ".geojson"), strings.HasSuffix(layer.File, ".json"):
		return LoadGeoJSONFile(layer)
	default:
		return nil, fmt.Errorf("layer %s: unsupported overlay file %s", layer.Name, layer.File)
	}
}

func featureID(layer string, f *geojson.Feature, i int) string {
	if f.ID != nil {
		return fmt.Sprintf("%s/%v", layer, f.ID)
	}
	if name := f.Properties.MustString("name", ""); name != "" {
		return layer + "/" + name
	}
	return fmt.Sprintf("%s/%d", layer, i)
}

// LoadOSM collects named nodes carrying any of tagKeys (e.g. "aeroway") from an
// .osm.pbf extract.
func LoadOSM(ctx context.Context, r io.Reader, layer Layer, tagKeys []string) ([]datastructure.POI, error) {
	scanner := osmpbf.New(ctx, r, 3)
	defer scanner.Close()
	scanner.SkipWays = true
	scanner.SkipRelations = true

	pois := []datastructure.POI{}
	for scanner.Scan() {
		n, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		name := n.Tags.Find("name")
		if name == "" || !hasAnyTag(n.Tags, tagKeys) {
			continue
		}
		p, err := geo.NewGeoPoint(n.Lat, n.Lon)
		if err != nil {
			continue
		}
		pois = append(pois, datastructure.POI{
			ID:          fmt.Sprintf("%s/%d", layer.Name, n.ID),
			Point:       p,
			Description: describeNode(n.Tags, name, tagKeys),
			Layer:       layer.Name,
			Icon:        layer.Icon,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pois, nil
}

func hasAnyTag(tags osm.Tags, keys []string) bool {
	for _, k := range keys {
		if tags.HasTag(k) {
			return true
		}
	}
	return false
}

func describeNode(tags osm.Tags, name string, keys []string) string {
	parts := []string{name}
	for _, k := range keys {
		if v := tags.Find(k); v != "" {
			parts = append(parts, k+"="+v)
		}
	}
	if icao := tags.Find("icao"); icao != "" {
		parts = append(parts, icao)
	}
	return strings.Join(parts, " ")
}
