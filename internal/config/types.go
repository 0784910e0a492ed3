// SPDX-License-Identifier: MPL-2.0

package config

// DefaultLanguage is the locale the base content ships in. No language
// archive is loaded when the active language matches it.
const DefaultLanguage = "en"

type (
	// Config holds the engine's content-layer settings.
	Config struct {
		// Language is the active locale code (e.g. "en", "pt_BR"). Non-default
		// values cause a locale-named archive to be resolved.
		Language string `mapstructure:"language"`

		// UnpackedAssets selects directory-backed content sources instead of
		// packed archives. Used with repackaged installs that ship plain
		// asset trees.
		UnpackedAssets bool `mapstructure:"unpacked_assets"`

		// Headless disables the title-screen liveness probe and all
		// interactive recovery prompts.
		Headless bool `mapstructure:"headless"`

		// SkipBonus skips the bonus-content archive in the core phase, for
		// platforms whose packaging embeds it.
		SkipBonus bool `mapstructure:"skip_bonus"`

		// DataDirs lists extra directories to probe for archives, between the
		// per-user roots and the platform data directories.
		DataDirs []string `mapstructure:"data_dirs"`

		// UI groups presentation settings.
		UI UIConfig `mapstructure:"ui"`
	}

	// UIConfig holds presentation settings.
	UIConfig struct {
		// Verbose enables per-candidate probe logging.
		Verbose bool `mapstructure:"verbose"`
	}
)

// DefaultConfig returns the built-in settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Language: DefaultLanguage,
	}
}
