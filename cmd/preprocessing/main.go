package main

import (
	"context"
	"flag"
	"log"

	"lintang/flightpath/pkg/config"
	"lintang/flightpath/pkg/datastructure"
	"lintang/flightpath/pkg/kv"
	"lintang/flightpath/pkg/logger"
	"lintang/flightpath/pkg/poi"

	"github.com/cockroachdb/pebble"
	"go.uber.org/zap"
)

var (
	configFile = flag.String("config", "", "path ke file konfigurasi yaml (opsional)")
	overlay    = flag.String("f", "", "satu file overlay (.geojson / .osm.pbf), kalau kosong pakai poi.layers dari konfigurasi")
	layerName  = flag.String("layer", "overlay", "nama layer untuk -f")
	icon       = flag.String("icon", "", "icon untuk -f")
	workers    = flag.Int("workers", 8, "jumlah worker yang menulis POI ke pebble")
)

// import overlay POIs into pebble, bucketed by h3 cell, for poi.source=kv
func main() {
	flag.Parse()
	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	lg, err := logger.NewNamed(cfg.Env, "preprocessing")
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	layers := cfg.POI.Layers
	if *overlay != "" {
		layers = []poi.Layer{{Name: *layerName, File: *overlay, Icon: *icon}}
	}
	if len(layers) == 0 {
		lg.Fatal("no overlay layers, pass -f or set poi.layers")
	}

	ctx := context.Background()
	pois := []datastructure.POI{}
	for _, layer := range layers {
		lp, err := poi.LoadLayer(ctx, layer, cfg.POI.OSMTags)
		if err != nil {
			lg.Fatal("load overlay", zap.String("layer", layer.Name), zap.Error(err))
		}
		lg.Info("overlay loaded", zap.String("layer", layer.Name), zap.Int("pois", len(lp)))
		pois = append(pois, lp...)
	}

	db, err := pebble.Open(cfg.DBPath, &pebble.Options{})
	if err != nil {
		lg.Fatal("open pebble", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	kvDB := kv.NewKVDB(db, lg.Named("kv"))

	if err := kvDB.CreatePOIKV(pois, *workers); err != nil {
		kvDB.Close()
		lg.Fatal("create poi kv", zap.Error(err))
	}
	if err := kvDB.Close(); err != nil {
		lg.Fatal("close pebble", zap.Error(err))
	}
	lg.Info("poi kv ready", zap.Int("pois", len(pois)), zap.String("db", cfg.DBPath))
}
