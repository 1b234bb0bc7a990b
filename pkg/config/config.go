// Package config loads the fmtrun CLI configuration.
//
// Configuration is merged in order of increasing precedence: built-in
// defaults, the XDG config dir, the current working directory, FMTRUN_*
// environment variables, then an explicit --config file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	log "github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/fmtrun/fmtrun/pkg/format"
)

const (
	configName = "fmtrun"
	envPrefix  = "FMTRUN"

	// workDirConfigFileName is the per-project config file.
	workDirConfigFileName = ".fmtrun.yaml"
)

// Configuration is the merged CLI configuration.
type Configuration struct {
	// Tool is the toolchain component invoked to format files.
	Tool string `mapstructure:"tool"`

	// SearchPaths are extra directories searched for the tool before the
	// toolchain directories.
	SearchPaths []string `mapstructure:"search_paths"`

	Logs Logs `mapstructure:"logs"`
}

// Logs configures CLI logging.
type Logs struct {
	Level string `mapstructure:"level"`
}

// Load merges configuration from all sources. explicitPath, when non-empty,
// is merged last and must exist; the other config files are optional.
func Load(explicitPath string) (Configuration, error) {
	var cfg Configuration

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	if err := mergeOptionalFile(v, filepath.Join(xdg.ConfigHome, configName, configName+".yaml")); err != nil {
		return cfg, err
	}

	wd, err := os.Getwd()
	if err != nil {
		return cfg, errors.Wrap(err, "resolve working directory")
	}
	if err := mergeOptionalFile(v, filepath.Join(wd, workDirConfigFileName)); err != nil {
		return cfg, err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		if err := v.MergeInConfig(); err != nil {
			return cfg, errors.Wrapf(err, "load config file %q", explicitPath)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "unmarshal configuration")
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tool", format.DefaultTool)
	v.SetDefault("search_paths", []string{})
	v.SetDefault("logs.level", "warn")
}

// mergeOptionalFile merges file into v, tolerating its absence.
func mergeOptionalFile(v *viper.Viper, file string) error {
	v.SetConfigFile(file)
	if err := v.MergeInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("config not found", "file", file)
			return nil
		}
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Debug("config not found", "file", file)
			return nil
		}
		return errors.Wrapf(err, "load config file %q", file)
	}
	return nil
}
