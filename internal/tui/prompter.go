// SPDX-License-Identifier: MPL-2.0

// Package tui renders the blocking recovery dialogs the content loader needs
// before the game window exists. Everything here suspends the calling
// goroutine until the user answers; the load phases are single-threaded and
// wait on the result.
package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	dialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#EF4444"))

	dialogBodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF"))
)

// TerminalPrompter asks the user through interactive terminal dialogs.
type TerminalPrompter struct{}

// RequestMedia shows the blocking "insert media" dialog for the named
// archive. A true result means the user wants resolution retried.
func (TerminalPrompter) RequestMedia(archiveName string) bool {
	retry := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Insert the game media containing %s", archiveName)).
			Description("The archive was not found in any search path.\nInsert the disc or copy the file, then choose Retry.").
			Affirmative("Retry").
			Negative("Cancel").
			Value(&retry),
	))
	if err := form.Run(); err != nil {
		return false
	}
	return retry
}

// ShowMissingFiles renders the blocking "missing required files" dialog.
// The caller is expected to terminate with a nonzero status afterwards.
func ShowMissingFiles(title, message string) {
	done := true
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(dialogTitleStyle.Render(title)).
			Description(dialogBodyStyle.Render(message)).
			Affirmative("OK").
			Negative("").
			Value(&done),
	))
	// Nothing to recover from if the dialog itself fails; the caller exits
	// either way.
	_ = form.Run()
}

// HeadlessPrompter never retries. Used when no interactive terminal is
// available.
type HeadlessPrompter struct{}

// RequestMedia implements the prompter contract by declining retry.
func (HeadlessPrompter) RequestMedia(string) bool { return false }
