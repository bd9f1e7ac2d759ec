package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/general-configurator/internal/config"
	"github.com/KirkDiggler/general-configurator/internal/entities/equipment"
	"github.com/KirkDiggler/general-configurator/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) write(body string) string {
	path := filepath.Join(s.dir, "config.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefaultsAreValid() {
	cfg := config.Default()
	s.NoError(cfg.Validate())
	s.Equal(50051, cfg.Server.GRPCPort)
	s.Equal(config.StorageMemory, cfg.Storage.Backend)
	s.Equal(3, cfg.Comparison.Capacity)
}

func (s *ConfigTestSuite) TestMissingFileYieldsDefaults() {
	cfg, err := config.Load(filepath.Join(s.dir, "absent.yaml"))
	s.Require().NoError(err)
	s.Equal(config.Default(), cfg)

	cfg, err = config.Load("")
	s.Require().NoError(err)
	s.Equal(config.Default(), cfg)
}

func (s *ConfigTestSuite) TestLoadOverridesDefaults() {
	path := s.write(`
server:
  grpc_port: 6000
  shutdown_timeout: 5s
catalog:
  path: /srv/catalog.yaml
storage:
  backend: redis
redis:
  master_name: primary
  endpoints: [sentinel-a:26379, sentinel-b:26379]
engine:
  excluded_troops: [siege]
log:
  level: debug
  format: json
`)

	cfg, err := config.Load(path)
	s.Require().NoError(err)
	s.Equal(6000, cfg.Server.GRPCPort)
	s.Equal(8080, cfg.Server.HTTPPort, "untouched fields keep defaults")
	s.Equal(5*time.Second, cfg.Server.ShutdownTimeout)
	s.Equal("/srv/catalog.yaml", cfg.Catalog.Path)
	s.Equal("primary", cfg.Redis.MasterName)
	s.Equal([]string{"sentinel-a:26379", "sentinel-b:26379"}, cfg.Redis.Endpoints)
	s.Equal([]equipment.Troop{equipment.TroopSiege}, cfg.Engine.Troops())
	s.Equal(slog.LevelDebug, cfg.Log.SlogLevel())
}

func (s *ConfigTestSuite) TestLoadRejectsInvalid() {
	testCases := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "unknown backend",
			body:  "storage:\n  backend: sqlite\n",
			field: "storage.backend",
		},
		{
			name:  "zero capacity",
			body:  "comparison:\n  capacity: 0\n",
			field: "comparison.capacity",
		},
		{
			name:  "unknown troop",
			body:  "engine:\n  excluded_troops: [navy]\n",
			field: "engine.excluded_troops",
		},
		{
			name:  "postgres without database",
			body:  "storage:\n  backend: postgres\npostgres:\n  dbname: \"\"\n",
			field: "postgres.dbname",
		},
		{
			name:  "bad log format",
			body:  "log:\n  format: xml\n",
			field: "log.format",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := config.Load(s.write(tc.body))
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.field)
		})
	}
}

func (s *ConfigTestSuite) TestLoadRejectsMalformedYAML() {
	_, err := config.Load(s.write("server: [unclosed"))
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestDSN() {
	pg := config.PostgresConfig{
		Host:     "db",
		Port:     5433,
		User:     "u",
		Password: "p",
		DBName:   "generals",
		SSLMode:  "require",
	}
	s.Equal("postgres://u:p@db:5433/generals?sslmode=require", pg.DSN())
}

func (s *ConfigTestSuite) TestNewLogger() {
	var buf bytes.Buffer
	logger := config.LogConfig{Level: "warn", Format: config.LogFormatJSON}.NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")
	s.NotContains(buf.String(), "hidden")
	s.Contains(buf.String(), `"msg":"shown"`)

	s.Equal(slog.LevelInfo, config.LogConfig{Level: "loud"}.SlogLevel())
}
