package config

import (
	"errors"
	"fmt"
	"strings"

	"lintang/flightpath/pkg/poi"

	"github.com/spf13/viper"
)

const (
	POISourceMemory = "memory"
	POISourceKV     = "kv"
)

type Config struct {
	ListenAddr string         `mapstructure:"listen_addr"`
	DBPath     string         `mapstructure:"db_path"`
	Env        string         `mapstructure:"env"`
	POI        POIConfig      `mapstructure:"poi"`
	Route      RouteConfig    `mapstructure:"route"`
	Tracking   TrackingConfig `mapstructure:"tracking"`
}

type POIConfig struct {
	// memory: load Layers into an r-tree at startup, kv: query cells written by cmd/preprocessing
	Source       string      `mapstructure:"source"`
	RadiusMeters float64     `mapstructure:"radius_meters"`
	Layers       []poi.Layer `mapstructure:"layers"`
	// node tags that make an OSM node a POI when a layer is an .osm.pbf
	OSMTags []string `mapstructure:"osm_tags"`
}

type RouteConfig struct {
	// click-to-insert ignores clicks farther than this from the route
	InsertMaxDistanceMeters float64 `mapstructure:"insert_max_distance_meters"`
}

type TrackingConfig struct {
	HeadingLineMeters float64 `mapstructure:"heading_line_meters"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen_addr", ":5000")
	v.SetDefault("db_path", "flightpathDB")
	v.SetDefault("env", "development")
	v.SetDefault("poi.source", POISourceMemory)
	v.SetDefault("poi.radius_meters", 9260.0) // 5 NM
	v.SetDefault("poi.osm_tags", []string{"aeroway"})
	v.SetDefault("route.insert_max_distance_meters", 5000.0)
	v.SetDefault("tracking.heading_line_meters", 37040.0) // 20 NM
}

// Load reads defaults, then the optional YAML file at path, then FLIGHTPATH_*
// environment variables (FLIGHTPATH_POI_RADIUS_METERS etc).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("FLIGHTPATH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.ListenAddr == "" {
		errs = append(errs, errors.New("listen_addr is empty"))
	}
	if c.POI.Source != POISourceMemory && c.POI.Source != POISourceKV {
		errs = append(errs, fmt.Errorf("poi.source must be %q or %q, got %q", POISourceMemory, POISourceKV, c.POI.Source))
	}
	if c.POI.RadiusMeters <= 0 {
		errs = append(errs, errors.New("poi.radius_meters must be positive"))
	}
	if c.Route.InsertMaxDistanceMeters < 0 {
		errs = append(errs, errors.New("route.insert_max_distance_meters must not be negative"))
	}
	if c.Tracking.HeadingLineMeters <= 0 {
		errs = append(errs, errors.New("tracking.heading_line_meters must be positive"))
	}
	for i, l := range c.POI.Layers {
		if l.Name == "" || l.File == "" {
			errs = append(errs, fmt.Errorf("poi.layers[%d] needs name and file", i))
		}
	}
	return errors.Join(errs...)
}
