// SPDX-License-Identifier: MPL-2.0

// Command sotw is the content-layer front end for Shadow of the West.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/shadowed-pilgrims/shadow-of-the-west/internal/config"
	"github.com/shadowed-pilgrims/shadow-of-the-west/internal/issue"
	"github.com/shadowed-pilgrims/shadow-of-the-west/internal/paths"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables per-candidate probe logging
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// basePath overrides the install directory
	basePath string
	// prefPath overrides the per-user writable directory
	prefPath string
	// headless disables recovery prompts and the title-screen probe
	headless bool
	// language overrides the configured locale
	language string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "sotw",
		Short: "Content loader for the Shadow of the West engine",
		Long: TitleStyle.Render("sotw") + SubtitleStyle.Render(" - Content loader for the Shadow of the West engine") + `

sotw resolves and mounts the game's content archives: the base game
data, the expansion and its class, music, and voice packs, plus the
locale and font archives. Archives are searched across the install
directory, the per-user directories, and the platform data directories.

` + SubtitleStyle.Render("Examples:") + `
  sotw run                  Mount all content and report what loaded
  sotw verify               Check archive presence without prompting
  sotw paths                Show the directories searched for archives
  sotw config show          Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable per-candidate probe logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/shadow-of-the-west/config.cue)")
	rootCmd.PersistentFlags().StringVar(&basePath, "base-path", "", "override the install directory searched for archives")
	rootCmd.PersistentFlags().StringVar(&prefPath, "pref-path", "", "override the per-user writable directory")
	rootCmd.PersistentFlags().BoolVar(&headless, "headless", false, "disable recovery prompts and the title-screen probe")
	rootCmd.PersistentFlags().StringVar(&language, "lang", "", "locale code (overrides the configured language)")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig applies path overrides and tunes logging before any command runs.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}
	if basePath != "" {
		paths.SetBasePath(basePath)
	}
	if prefPath != "" {
		paths.SetPrefPath(prefPath)
	}

	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// loadConfig reads the configuration and folds the command-line overrides in.
// Load errors are surfaced as a warning; the defaults still apply.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	if !verbose && cfg.UI.Verbose {
		verbose = true
		log.SetLevel(log.DebugLevel)
	}
	if headless {
		cfg.Headless = true
	}
	if language != "" {
		cfg.Language = language
	}
	return cfg
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
