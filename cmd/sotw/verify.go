// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shadowed-pilgrims/shadow-of-the-west/internal/content"
	"github.com/shadowed-pilgrims/shadow-of-the-west/internal/save"
	"github.com/shadowed-pilgrims/shadow-of-the-west/internal/tui"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check archive presence without prompting",
	Long: `Check archive presence without prompting.

Runs the same three load phases as 'run' but never shows a recovery
dialog and never probes the title screen. Exits nonzero when a required
archive is missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerify()
	},
}

func runVerify() (retErr error) {
	cfg := loadConfig()
	cfg.Headless = true

	reg := content.NewRegistry(cfg, content.Options{
		Prompter: tui.HeadlessPrompter{},
		Saver:    save.Noop{},
	})
	defer func() {
		if err := reg.Teardown(); err != nil && retErr == nil {
			retErr = err
		}
	}()

	reg.LoadCoreArchives()
	reg.LoadLanguageArchive()
	loadErr := reg.LoadGameArchives()

	printStatuses(reg)

	if loadErr != nil {
		fmt.Println()
		fmt.Println(ErrorStyle.Render("Missing required content:"))
		for _, name := range missingRequired(reg) {
			fmt.Printf("  - %s\n", name)
		}
		return &ExitError{Code: 1, Err: loadErr}
	}

	fmt.Println()
	fmt.Println(SuccessStyle.Render("All required content present"))
	return nil
}

// missingRequired reports which required slots are empty after a load.
func missingRequired(reg *content.Registry) []content.LogicalName {
	required := []content.LogicalName{
		content.BaseContent,
		content.ExpansionContent,
		content.ClassPackMonk,
		content.ExpansionMusic,
		content.ExpansionVoice,
	}
	var missing []content.LogicalName
	for _, name := range required {
		if _, ok := reg.Lookup(name); !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
