// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shadowed-pilgrims/shadow-of-the-west/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage engine configuration",
	Long: `Manage engine configuration.

Configuration is stored in:
  - Linux: ~/.config/shadow-of-the-west/config.cue
  - macOS: ~/Library/Application Support/shadow-of-the-west/config.cue
  - Windows: %APPDATA%\shadow-of-the-west\config.cue`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})
}

func showConfig() error {
	cfg, cfgPath, err := config.LoadResolved()
	if err != nil {
		return err
	}

	keyStyle := ItemStyle
	valueStyle := SuccessStyle

	fmt.Println(TitleStyle.Render("Current Configuration"))
	fmt.Println()

	if cfgPath != "" {
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), cfgPath)
	} else {
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	fmt.Printf("%s: %s\n", keyStyle.Render("language"), valueStyle.Render(cfg.Language))
	fmt.Printf("%s: %s\n", keyStyle.Render("unpacked_assets"), valueStyle.Render(fmt.Sprintf("%v", cfg.UnpackedAssets)))
	fmt.Printf("%s: %s\n", keyStyle.Render("headless"), valueStyle.Render(fmt.Sprintf("%v", cfg.Headless)))
	fmt.Printf("%s: %s\n", keyStyle.Render("skip_bonus"), valueStyle.Render(fmt.Sprintf("%v", cfg.SkipBonus)))

	fmt.Printf("%s:", keyStyle.Render("data_dirs"))
	if len(cfg.DataDirs) == 0 {
		fmt.Printf(" %s\n", SubtitleStyle.Render("(none configured)"))
	} else {
		fmt.Println()
		for _, dir := range cfg.DataDirs {
			fmt.Printf("  - %s\n", valueStyle.Render(dir))
		}
	}

	fmt.Println()
	fmt.Printf("%s:\n", keyStyle.Render("ui"))
	fmt.Printf("  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))
	return nil
}
