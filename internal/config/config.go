// Package config loads the server configuration from YAML
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
	"github.com/KirkDiggler/general-configurator/internal/errors"
)

// Storage backends for saved builds
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds all configuration for the configurator server
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Catalog    CatalogConfig    `yaml:"catalog"`
	Storage    StorageConfig    `yaml:"storage"`
	Redis      RedisConfig      `yaml:"redis"`
	Postgres   PostgresConfig   `yaml:"postgres"`
	Comparison ComparisonConfig `yaml:"comparison"`
	Engine     EngineConfig     `yaml:"engine"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig holds listener settings
type ServerConfig struct {
	GRPCPort int `yaml:"grpc_port"`
	// HTTPPort serves the live websocket endpoint, 0 disables it
	HTTPPort        int           `yaml:"http_port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// CatalogConfig points at the equipment catalog
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// StorageConfig selects where saved builds live
type StorageConfig struct {
	Backend string `yaml:"backend"`
}

// RedisConfig holds Redis connection parameters. A master name selects sentinel
// failover and more than one endpoint selects cluster mode.
type RedisConfig struct {
	MasterName   string   `yaml:"master_name"`
	Endpoints    []string `yaml:"endpoints"`
	PoolSize     int      `yaml:"pool_size"`
	MinIdleConns int      `yaml:"min_idle_conns"`
	MaxRetries   int      `yaml:"max_retries"`
	UseTLS       bool     `yaml:"use_tls"`
}

// PostgresConfig holds PostgreSQL connection parameters
type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
	// Migrate applies pending migrations on server start
	Migrate bool `yaml:"migrate"`
}

// DSN returns the PostgreSQL connection string
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.DBName, p.SSLMode,
	)
}

// ComparisonConfig tunes the comparison set of new sessions
type ComparisonConfig struct {
	Capacity int `yaml:"capacity"`
}

// EngineConfig tunes build evaluation
type EngineConfig struct {
	// ExcludedTroops are left out of the totals by default
	ExcludedTroops   []string `yaml:"excluded_troops"`
	RecommendWorkers int      `yaml:"recommend_workers"`
}

// Troops converts the excluded troop names
func (e EngineConfig) Troops() []equipment.Troop {
	out := make([]equipment.Troop, 0, len(e.ExcludedTroops))
	for _, s := range e.ExcludedTroops {
		if t, ok := equipment.TroopFromString(s); ok {
			out = append(out, t)
		}
	}
	return out
}

// LogConfig selects the slog handler
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SlogLevel parses the configured level, info when unrecognized
func (l LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Default returns the configuration with sensible defaults
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			GRPCPort:        50051,
			HTTPPort:        8080,
			ShutdownTimeout: 30 * time.Second,
		},
		Catalog: CatalogConfig{
			Path: "data/catalog.json",
		},
		Storage: StorageConfig{
			Backend: StorageMemory,
		},
		Redis: RedisConfig{
			Endpoints:    []string{"localhost:6379"},
			PoolSize:     10,
			MinIdleConns: 2,
			MaxRetries:   3,
		},
		Postgres: PostgresConfig{
			Host:    "127.0.0.1",
			Port:    5432,
			User:    "generals",
			DBName:  "generals",
			SSLMode: "disable",
			Migrate: true,
		},
		Comparison: ComparisonConfig{
			Capacity: 3,
		},
		Engine: EngineConfig{
			RecommendWorkers: 4,
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatText,
		},
	}
}

// Load reads the configuration from a YAML file over the defaults.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Validate checks the configuration
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Server.GRPCPort <= 0 || c.Server.GRPCPort > 65535 {
		vb.Field("server.grpc_port", "must be between 1 and 65535")
	}
	if c.Server.HTTPPort < 0 || c.Server.HTTPPort > 65535 {
		vb.Field("server.http_port", "must be between 0 and 65535")
	}
	if c.Catalog.Path == "" {
		vb.RequiredField("catalog.path")
	}

	switch c.Storage.Backend {
	case StorageMemory:
	case StorageRedis:
		if len(c.Redis.Endpoints) == 0 {
			vb.RequiredField("redis.endpoints")
		}
	case StoragePostgres:
		if c.Postgres.Host == "" {
			vb.RequiredField("postgres.host")
		}
		if c.Postgres.DBName == "" {
			vb.RequiredField("postgres.dbname")
		}
	default:
		vb.Fieldf("storage.backend", "must be one of %s, %s, %s", StorageMemory, StorageRedis, StoragePostgres)
	}

	if c.Comparison.Capacity < 1 {
		vb.Field("comparison.capacity", "must be at least 1")
	}
	if c.Engine.RecommendWorkers < 0 {
		vb.Field("engine.recommend_workers", "cannot be negative")
	}
	for _, s := range c.Engine.ExcludedTroops {
		if _, ok := equipment.TroopFromString(s); !ok {
			vb.Fieldf("engine.excluded_troops", "is not recognized: %s", s)
		}
	}

	switch c.Log.Format {
	case LogFormatText, LogFormatJSON:
	default:
		vb.Fieldf("log.format", "must be %s or %s", LogFormatText, LogFormatJSON)
	}

	return vb.Build()
}

// NewLogger builds the slog logger described by the log section
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if l.Format == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
