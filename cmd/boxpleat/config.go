package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/foldkit/boxpleat/fold"
)

// appConfig carries the user-tunable defaults. Flags override config
// values, config values override the built-in defaults, and every key
// can also come from the environment as BOXPLEAT_<KEY> (dots become
// underscores, e.g. BOXPLEAT_RENDER_CELL_SIZE).
type appConfig struct {
	// Creator is stamped into file_creator on every write.
	Creator string `mapstructure:"creator"`

	Render struct {
		// CellSize is the pixel size of one grid unit.
		CellSize float64 `mapstructure:"cell_size"`
		// Margin is the pixel border around the paper.
		Margin float64 `mapstructure:"margin"`
		// Labels draws vertex coordinates next to each vertex.
		Labels bool `mapstructure:"labels"`
	} `mapstructure:"render"`

	Watch struct {
		// DebounceMs batches rapid write events before revalidating.
		DebounceMs int `mapstructure:"debounce_ms"`
	} `mapstructure:"watch"`
}

// loadConfig reads the TOML config file and environment overrides.
// A missing file on the default search path is not an error; a missing
// or broken file named via --config is.
func loadConfig() (*appConfig, error) {
	v := viper.New()

	v.SetDefault("creator", fold.DefaultCreator)
	v.SetDefault("render.cell_size", 64)
	v.SetDefault("render.margin", 32)
	v.SetDefault("render.labels", false)
	v.SetDefault("watch.debounce_ms", 300)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := os.UserConfigDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(dir, "boxpleat"))
		}
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	v.SetEnvPrefix("BOXPLEAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Only the default search path tolerates a missing file. An
		// explicit --config path must load.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	var cfg appConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}
