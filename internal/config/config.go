// Package config loads application configuration from file and environment
// and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/worldfacts/archive-cli/internal/canonical"
)

// Config holds the full application configuration.
type Config struct {
	Store    StoreConfig    `yaml:"store" mapstructure:"store"`
	Pipeline PipelineConfig `yaml:"pipeline" mapstructure:"pipeline"`
	Mapping  MappingConfig  `yaml:"mapping" mapstructure:"mapping"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
	MaxConns    int32  `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns    int32  `yaml:"min_conns" mapstructure:"min_conns"`
}

// PipelineConfig tunes the extraction run.
type PipelineConfig struct {
	Workers    int `yaml:"workers" mapstructure:"workers"`
	ModernSpan int `yaml:"modern_span" mapstructure:"modern_span"`
}

// MappingConfig exposes the canonicalizer's heuristic thresholds. The
// defaults are calibrated against the archive corpus; override with care.
type MappingConfig struct {
	LegacyLastYear     int `yaml:"legacy_last_year" mapstructure:"legacy_last_year"`
	LegacyFirstYear    int `yaml:"legacy_first_year" mapstructure:"legacy_first_year"`
	GovBodyMaxUseCount int `yaml:"gov_body_max_use_count" mapstructure:"gov_body_max_use_count"`
	LowUseCount        int `yaml:"low_use_count" mapstructure:"low_use_count"`
	VeryLowUseCount    int `yaml:"very_low_use_count" mapstructure:"very_low_use_count"`
	TinyUseCount       int `yaml:"tiny_use_count" mapstructure:"tiny_use_count"`
}

// Thresholds converts the mapping section into canonicalizer thresholds.
func (m MappingConfig) Thresholds() canonical.Thresholds {
	return canonical.Thresholds{
		LegacyLastYear:     m.LegacyLastYear,
		LegacyFirstYear:    m.LegacyFirstYear,
		GovBodyMaxUseCount: m.GovBodyMaxUseCount,
		LowUseCount:        m.LowUseCount,
		VeryLowUseCount:    m.VeryLowUseCount,
		TinyUseCount:       m.TinyUseCount,
	}
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("ARCHIVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "archive.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("pipeline.workers", 4)
	v.SetDefault("pipeline.modern_span", 2)

	defaults := canonical.DefaultThresholds()
	v.SetDefault("mapping.legacy_last_year", defaults.LegacyLastYear)
	v.SetDefault("mapping.legacy_first_year", defaults.LegacyFirstYear)
	v.SetDefault("mapping.gov_body_max_use_count", defaults.GovBodyMaxUseCount)
	v.SetDefault("mapping.low_use_count", defaults.LowUseCount)
	v.SetDefault("mapping.very_low_use_count", defaults.VeryLowUseCount)
	v.SetDefault("mapping.tiny_use_count", defaults.TinyUseCount)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks configuration consistency before a command runs.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "sqlite", "postgres":
	default:
		return eris.Errorf("config: unknown store driver %q", c.Store.Driver)
	}
	if c.Store.DatabaseURL == "" {
		return eris.New("config: store.database_url is required")
	}
	if c.Pipeline.Workers < 1 {
		return eris.New("config: pipeline.workers must be at least 1")
	}
	if c.Pipeline.ModernSpan < 1 {
		return eris.New("config: pipeline.modern_span must be at least 1")
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
