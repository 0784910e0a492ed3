// SPDX-License-Identifier: MPL-2.0

// Package config loads the engine's content-layer configuration.
//
// Settings live in a CUE file (config.cue) in the per-user configuration
// directory. The file is validated against an embedded schema before being
// merged over built-in defaults via Viper. A missing file is not an error;
// defaults apply.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"

	"github.com/shadowed-pilgrims/shadow-of-the-west/internal/issue"
	"github.com/shadowed-pilgrims/shadow-of-the-west/internal/paths"
)

const (
	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"

	// maxConfigFileSize guards against accidentally pointing the loader at a
	// huge file (e.g. a save or an archive).
	maxConfigFileSize = 1 << 20
)

//go:embed config_schema.cue
var configSchema string

// Load reads the configuration from the config directory (or the file set via
// SetConfigFilePathOverride) and returns it merged over defaults.
func Load() (*Config, error) {
	cfg, _, err := loadResolved()
	return cfg, err
}

// LoadResolved is Load plus the path of the config file actually used.
// The path is empty when defaults applied.
func LoadResolved() (*Config, string, error) {
	return loadResolved()
}

func loadResolved() (*Config, string, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("language", defaults.Language)
	v.SetDefault("unpacked_assets", defaults.UnpackedAssets)
	v.SetDefault("headless", defaults.Headless)
	v.SetDefault("skip_bonus", defaults.SkipBonus)
	v.SetDefault("data_dirs", defaults.DataDirs)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	resolvedPath := ""

	switch {
	case configFileOverride != "":
		// An explicit --config flag must name an existing file.
		if !fileExists(configFileOverride) {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(configFileOverride).
				WithSuggestion("Verify the file path is correct").
				Wrap(fmt.Errorf("config file not found")).
				BuildError()
		}
		if err := loadCUEIntoViper(v, configFileOverride); err != nil {
			return nil, "", wrapSchemaError(configFileOverride, err)
		}
		resolvedPath = configFileOverride
	default:
		cuePath := filepath.Join(configDir(), ConfigFileName+"."+ConfigFileExt)
		if fileExists(cuePath) {
			if err := loadCUEIntoViper(v, cuePath); err != nil {
				return nil, "", wrapSchemaError(cuePath, err)
			}
			resolvedPath = cuePath
		}
		// No config file found: defaults apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, resolvedPath, nil
}

func wrapSchemaError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithSuggestion("Check that the file contains valid CUE syntax").
		WithSuggestion("Verify the values match the config schema").
		Wrap(err).
		BuildError()
}

// loadCUEIntoViper parses a CUE file, validates it against the #Config
// schema, and merges its contents into Viper. Decoding goes through a plain
// map so Viper keeps precedence over defaults.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if len(data) > maxConfigFileSize {
		return fmt.Errorf("config file %s exceeds %d bytes", path, maxConfigFileSize)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return fmt.Errorf("%s: %w", path, userValue.Err())
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Config"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	var configMap map[string]any
	if err := unified.Decode(&configMap); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

func configDir() string {
	if configDirOverride != "" {
		return configDirOverride
	}
	return paths.ConfigPath()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
