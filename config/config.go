package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstbench/builder"
	"github.com/katalvlaran/mstbench/core"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environments accepted in Config.Environment.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds all driver configuration
type Config struct {
	// Seed drives every random draw; 0 selects the generator's default seed.
	Seed int64 `yaml:"seed"`

	// Workers bounds concurrent graph solving within a category.
	Workers int `yaml:"workers" validate:"min=1,max=256"`

	// DataDir holds input_<category> and output_<category> files.
	DataDir string `yaml:"data_dir" validate:"required"`

	// Format is the interchange encoding: json or yaml.
	Format string `yaml:"format" validate:"oneof=json yaml"`

	// Densities are generated, in order, for every category slot.
	Densities []string `yaml:"densities" validate:"min=1,unique,dive,oneof=sparse medium dense"`

	// Categories are the size tiers, processed in order.
	Categories []builder.Category `yaml:"categories" validate:"min=1,unique=Name,dive"`

	// Weights bounds generated edge weights.
	Weights WeightRange `yaml:"weights"`

	// ValidateInput runs core.Graph.Validate on every decoded graph before solving.
	ValidateInput bool `yaml:"validate_input"`

	// SQLitePath enables the result archive when non-empty.
	SQLitePath string `yaml:"sqlite_path"`

	// Logging
	LogLevel    string `yaml:"log_level" validate:"oneof=debug info warn error"`
	Environment string `yaml:"environment" validate:"oneof=development production"`
}

// WeightRange is an inclusive edge-weight interval.
type WeightRange struct {
	Min int64 `yaml:"min" validate:"min=1,max=100"`
	Max int64 `yaml:"max" validate:"gtefield=Min,max=100"`
}

// DefaultConfig returns the stock benchmark setup.
func DefaultConfig() *Config {
	densities := make([]string, 0, 3)
	for _, d := range builder.Densities() {
		densities = append(densities, string(d))
	}

	return &Config{
		Seed:        0,
		Workers:     4,
		DataDir:     ".",
		Format:      "json",
		Densities:   densities,
		Categories:  builder.DefaultCategories(),
		Weights:     WeightRange{Min: core.MinWeight, Max: core.MaxWeight},
		LogLevel:    "info",
		Environment: EnvDevelopment,
	}
}

// Load returns DefaultConfig when path is empty and LoadFromPath(path) otherwise.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// applyDefaults fills zero-valued fields from DefaultConfig.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Workers == 0 {
		c.Workers = def.Workers
	}
	if c.DataDir == "" {
		c.DataDir = def.DataDir
	}
	if c.Format == "" {
		c.Format = def.Format
	}
	if len(c.Densities) == 0 {
		c.Densities = def.Densities
	}
	if len(c.Categories) == 0 {
		c.Categories = def.Categories
	}
	if c.Weights == (WeightRange{}) {
		c.Weights = def.Weights
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Environment == "" {
		c.Environment = def.Environment
	}
}

// ApplyEnv overrides fields from MSTBENCH_* environment variables.
// Unparseable numeric values are ignored.
func (c *Config) ApplyEnv() {
	c.Seed = getEnvInt64("MSTBENCH_SEED", c.Seed)
	c.Workers = getEnvInt("MSTBENCH_WORKERS", c.Workers)
	c.DataDir = getEnv("MSTBENCH_DATA_DIR", c.DataDir)
	c.Format = getEnv("MSTBENCH_FORMAT", c.Format)
	c.SQLitePath = getEnv("MSTBENCH_SQLITE_PATH", c.SQLitePath)
	c.ValidateInput = getEnvBool("MSTBENCH_VALIDATE_INPUT", c.ValidateInput)
	c.LogLevel = getEnv("MSTBENCH_LOG_LEVEL", c.LogLevel)
	c.Environment = getEnv("MSTBENCH_ENVIRONMENT", c.Environment)
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// DensityTiers returns Densities as builder.Density values.
func (c *Config) DensityTiers() ([]builder.Density, error) {
	out := make([]builder.Density, 0, len(c.Densities))
	for _, s := range c.Densities {
		d, err := builder.ParseDensity(s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, nil
}
