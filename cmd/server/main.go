package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "lintang/flightpath/docs"
	"lintang/flightpath/pkg/config"
	"lintang/flightpath/pkg/kv"
	"lintang/flightpath/pkg/logger"
	"lintang/flightpath/pkg/poi"
	"lintang/flightpath/pkg/server/rest"
	"lintang/flightpath/pkg/server/rest/service"

	"github.com/cockroachdb/pebble"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

var (
	configFile = flag.String("config", "", "path ke file konfigurasi yaml (opsional)")
)

//	@title			flightpath API
//	@version		1.0
//	@description	waypoint route planner: edit routes, query nearby overlay POIs, export, playback and tracking

//	@contact.name	lintang birda saputra

//	@license.name	GNU Affero General Public License v3.0
//	@license.url	https://www.gnu.org/licenses/gpl-3.0.en.html

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	flag.Parse()
	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.NewNamed(cfg.Env, "flightpath")
	if err != nil {
		log.Fatal(err)
	}
	defer lg.Sync()

	db, err := pebble.Open(cfg.DBPath, &pebble.Options{})
	if err != nil {
		lg.Fatal("open pebble", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	kvDB := kv.NewKVDB(db, lg.Named("kv"))
	defer kvDB.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var finder service.POIFinder = kvDB
	if cfg.POI.Source == config.POISourceMemory {
		idx := poi.NewIndex()
		for _, layer := range cfg.POI.Layers {
			pois, err := poi.LoadLayer(ctx, layer, cfg.POI.OSMTags)
			if err != nil {
				lg.Fatal("load overlay", zap.String("layer", layer.Name), zap.Error(err))
			}
			idx.Insert(pois...)
			lg.Info("overlay loaded", zap.String("layer", layer.Name), zap.Int("pois", len(pois)))
		}
		finder = idx
	}

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), //The url pointing to API definition
	))

	navigatorSvc := service.NewNavigationService(kvDB, finder, service.Options{
		POIRadiusMeters:         cfg.POI.RadiusMeters,
		InsertMaxDistanceMeters: cfg.Route.InsertMaxDistanceMeters,
		HeadingLineMeters:       cfg.Tracking.HeadingLineMeters,
	}, lg.Named("service"))
	rest.NavigatorRouter(r, navigatorSvc, m)

	srv := &http.Server{Addr: cfg.ListenAddr, Handler: r}
	go func() {
		lg.Info("server started", zap.String("addr", cfg.ListenAddr), zap.String("poi_source", cfg.POI.Source))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("shutdown", zap.Error(err))
	}
	lg.Info("server stopped")
}
