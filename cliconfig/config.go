package cliconfig

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the command-line layer's runtime tunables.
type Config struct {
	Engine EngineConfig `mapstructure:"engine"`
	Log    LogConfig    `mapstructure:"log"`
}

// EngineConfig configures the frontier/parallel runtime.
type EngineConfig struct {
	// ThresholdDivisor overrides digraph.Graph's default push/pull
	// divisor (rel_count / ThresholdDivisor). Zero means "use the
	// digraph package's own default".
	ThresholdDivisor uint64 `mapstructure:"threshold_divisor"`
	// Workers overrides parallel.Workers(). Zero means
	// "runtime.GOMAXPROCS(0)".
	Workers int `mapstructure:"workers"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from configPath if non-empty, otherwise from
// the standard locations (./ligra.yaml, ./configs/ligra.yaml,
// /etc/ligra/ligra.yaml), falling back to defaults when no file is
// found. Environment variables (LIGRA_ENGINE_WORKERS, etc.) override
// file values.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("ligra")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/ligra")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// fall through to defaults
		} else if os.IsNotExist(err) {
			// fall through to defaults
		} else {
			return nil, fmt.Errorf("cliconfig: reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("LIGRA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("cliconfig: unmarshal: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("engine.threshold_divisor", 0)
	v.SetDefault("engine.workers", runtime.GOMAXPROCS(0))
	v.SetDefault("log.level", "info")
}
