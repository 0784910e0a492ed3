// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride allows tests to point the loader at a scratch directory
// without touching the real per-user configuration.
var configDirOverride string

// configFileOverride holds an explicit config file path (the --config flag).
// When set, it is used exclusively and must exist.
var configFileOverride string

// SetConfigDirOverride overrides the configuration directory.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetConfigFilePathOverride sets an explicit config file path.
func SetConfigFilePathOverride(path string) {
	configFileOverride = path
}

// Reset clears all overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
	configFileOverride = ""
}
