// Package config loads the settings of a generation run: defaults, then a
// YAML file, then GAMEGRAPH_* environment variables (optionally read from a
// .env file), then command line flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gamegraph/meta"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const envPrefix = "GAMEGRAPH_"

var ErrInvalidConfig = errors.New("invalid config")

var validate = validator.New(validator.WithRequiredStructEnabled())

type Config struct {
	// Game selects the adapter to run.
	Game string `yaml:"game" validate:"required"`
	// OutputDir receives the grammar and replies files.
	OutputDir string `yaml:"output_dir" validate:"required"`
	// Name prefixes the artifact files; the game name if empty.
	Name string `yaml:"name" validate:"omitempty,excludesall=/\\ "`
	// ShuffleSeed extracts frontier states in seeded random order when nonzero.
	ShuffleSeed uint64 `yaml:"shuffle_seed"`
	// WinMagnitude is the terminal value of a won game.
	WinMagnitude int `yaml:"win_magnitude" validate:"gt=1"`
	LogLevel     string `yaml:"log_level" validate:"oneof=trace debug info warn error"`
	// MetricsFile receives the run's Prometheus metrics in text format.
	MetricsFile string `yaml:"metrics_file"`
	// ReportDir receives the CSV solution report of solved games.
	ReportDir  string `yaml:"report_dir"`
	CircleSize int    `yaml:"circle_size" validate:"gte=1"`
}

func Default() Config {
	return Config{
		Game:         "xo",
		OutputDir:    ".",
		WinMagnitude: meta.WinMagnitude,
		LogLevel:     "info",
		CircleSize:   meta.CircleSize,
	}
}

// Load merges the file at path (skipped if empty or missing) and the
// environment into the defaults. Variables in envFile are added to the
// environment first without overriding it.
func Load(path string, envFile string) (Config, error) {
	config := Default()

	if path != "" {
		if err := loadFile(path, &config); err != nil {
			return config, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return config, fmt.Errorf("failed to load env file: %w", err)
		}
	}
	if err := loadEnv(&config); err != nil {
		return config, err
	}

	return config, config.Validate()
}

func loadFile(path string, config *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, config)
}

func loadEnv(config *Config) error {
	texts := map[string]*string{
		"GAME":         &config.Game,
		"OUTPUT_DIR":   &config.OutputDir,
		"NAME":         &config.Name,
		"LOG_LEVEL":    &config.LogLevel,
		"METRICS_FILE": &config.MetricsFile,
		"REPORT_DIR":   &config.ReportDir,
	}
	for key, field := range texts {
		if v := os.Getenv(envPrefix + key); v != "" {
			*field = v
		}
	}

	ints := map[string]*int{
		"WIN_MAGNITUDE": &config.WinMagnitude,
		"CIRCLE_SIZE":   &config.CircleSize,
	}
	for key, field := range ints {
		if v := os.Getenv(envPrefix + key); v != "" {
			i, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("failed to parse %s%s: %w", envPrefix, key, err)
			}
			*field = i
		}
	}

	if v := os.Getenv(envPrefix + "SHUFFLE_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse %sSHUFFLE_SEED: %w", envPrefix, err)
		}
		config.ShuffleSeed = seed
	}
	return nil
}

// Validate checks field constraints. The game name is checked against the
// registry by the caller.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ArtifactName is the file name prefix of the run's artifacts.
func (c Config) ArtifactName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Game
}
