// Package config loads service configuration from a YAML file plus
// environment overrides, replacing the original ConfigParser/config.ini
// approach with github.com/spf13/viper.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// GAConfig mirrors the GA section of the original config.ini.
type GAConfig struct {
	PopulationSize       int     `yaml:"population_size"`
	TournamentSize       int     `yaml:"tournament_size"`
	MinGenerations       int     `yaml:"min_generations"`
	MaxGenerations       int     `yaml:"max_generations"`
	TerminationThreshold float64 `yaml:"termination_threshold"`
	MaxRuntimeMs         int     `yaml:"max_runtime_ms"`
}

// MaxRuntime returns the configured runtime budget as a time.Duration.
func (g GAConfig) MaxRuntime() time.Duration {
	return time.Duration(g.MaxRuntimeMs) * time.Millisecond
}

// RoutingConfig mirrors the original ROUTING/OSRM sections.
type RoutingConfig struct {
	OSRMBaseURL        string  `yaml:"osrm_base_url"`
	CorrectionFactor   float64 `yaml:"correction_factor"`
	WalkingSpeedKmH    float64 `yaml:"walking_speed_km_h"`
	StayPenaltySeconds float64 `yaml:"stay_penalty_seconds"`
}

// CacheConfig configures the routing cache (internal/routing.CachedClient).
type CacheConfig struct {
	RedisAddr string `yaml:"redis_addr"`
	LocalSize int    `yaml:"local_size"`
}

// POIConfig carries credentials and endpoints for the configured point of
// interest providers (internal/poi).
type POIConfig struct {
	Provider  string `yaml:"provider"`
	BaseURL   string `yaml:"base_url"`
	APIKey    string `yaml:"api_key"`
	OSMBaseURL string `yaml:"osm_base_url"`
}

// ServerConfig configures cmd/server's HTTP listener and log level.
type ServerConfig struct {
	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"log_level"`
}

// Config is the top-level on-disk configuration shape.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	GA      GAConfig      `yaml:"ga"`
	Routing RoutingConfig `yaml:"routing"`
	Cache   CacheConfig   `yaml:"cache"`
	POI     POIConfig     `yaml:"poi"`
}

// Default returns the configuration used when no file is supplied,
// matching the GA defaults in internal/stsp.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080", LogLevel: "info"},
		GA: GAConfig{
			PopulationSize:       1000,
			TournamentSize:       5,
			MinGenerations:       5,
			MaxGenerations:       200,
			TerminationThreshold: 0.01,
			MaxRuntimeMs:         10_000,
		},
		Routing: RoutingConfig{
			OSRMBaseURL:      "http://localhost:5000",
			CorrectionFactor: 1.0,
			WalkingSpeedKmH:  5.0,
		},
		Cache: CacheConfig{LocalSize: 1024},
		POI:   POIConfig{Provider: "osmtag"},
	}
}

// Load reads path with viper, applies PTOUR_* environment overrides, and
// unmarshals the result through yaml.v3 so the struct tags above (not
// viper's own mapstructure tags) govern the shape.
func Load(path string) (Config, error) {
	cfg := Default()

	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))
	vp.SetEnvPrefix("PTOUR")
	vp.AutomaticEnv()

	if err := vp.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	raw, err := yaml.Marshal(vp.AllSettings())
	if err != nil {
		return Config{}, fmt.Errorf("config: remarshal settings: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.GA.PopulationSize <= 0 {
		return fmt.Errorf("config: ga.population_size must be positive")
	}
	if c.GA.MaxGenerations <= 0 {
		return fmt.Errorf("config: ga.max_generations must be positive")
	}
	if c.Routing.OSRMBaseURL == "" {
		return fmt.Errorf("config: routing.osrm_base_url is required")
	}
	return nil
}
