// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shadowed-pilgrims/shadow-of-the-west/internal/content"
	"github.com/shadowed-pilgrims/shadow-of-the-west/internal/paths"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show the directories searched for archives",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showPaths()
	},
}

func showPaths() error {
	cfg := loadConfig()

	fmt.Println(TitleStyle.Render("Directories"))
	fmt.Println()
	fmt.Printf("%s: %s\n", ItemStyle.Render("Install"), paths.BasePath())
	fmt.Printf("%s: %s\n", ItemStyle.Render("Per-user data"), paths.PrefPath())
	fmt.Printf("%s: %s\n", ItemStyle.Render("Configuration"), paths.ConfigPath())
	fmt.Printf("%s: %s\n", ItemStyle.Render("Assets"), paths.AssetsPath())

	fmt.Println()
	fmt.Println(TitleStyle.Render("Archive search order"))
	fmt.Println()
	for i, dir := range content.SearchPaths(cfg) {
		if dir == "" {
			fmt.Printf("  %2d. %s\n", i+1, SubtitleStyle.Render("(current directory)"))
			continue
		}
		fmt.Printf("  %2d. %s\n", i+1, dir)
	}
	return nil
}
