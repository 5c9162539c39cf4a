package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis" mapstructure:"analysis"`
	Ingest   IngestConfig   `yaml:"ingest" mapstructure:"ingest"`
	Batch    BatchConfig    `yaml:"batch" mapstructure:"batch"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// AnalysisConfig tunes the statistics layers.
type AnalysisConfig struct {
	// Aggregate is the central-tendency statistic: "mean" or "median".
	// Applied uniformly across every analyzer.
	Aggregate string `yaml:"aggregate" mapstructure:"aggregate"`
	// PriceFloor is the plausibility floor below which a price is treated
	// as non-sale noise.
	PriceFloor float64 `yaml:"price_floor" mapstructure:"price_floor"`
	// SqftTolerance is the living-area tolerance for exact-match cohorts.
	SqftTolerance float64 `yaml:"sqft_tolerance" mapstructure:"sqft_tolerance"`
}

// IngestConfig configures document intake.
type IngestConfig struct {
	// SynonymsFile optionally overrides the built-in header synonym table
	// with a YAML file, for county exports with unusual column names.
	SynonymsFile string `yaml:"synonyms_file" mapstructure:"synonyms_file"`
}

// BatchConfig configures multi-file processing.
type BatchConfig struct {
	Concurrency int `yaml:"concurrency" mapstructure:"concurrency"`
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
	v.SetEnvPrefix("COMPS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("analysis.aggregate", "mean")
	v.SetDefault("analysis.price_floor", 1000)
	v.SetDefault("analysis.sqft_tolerance", 5)
	v.SetDefault("batch.concurrency", 4)

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
