// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/shadowed-pilgrims/shadow-of-the-west/internal/config"
	"github.com/shadowed-pilgrims/shadow-of-the-west/internal/content"
	"github.com/shadowed-pilgrims/shadow-of-the-west/internal/issue"
	"github.com/shadowed-pilgrims/shadow-of-the-west/internal/tui"
)

func TestExitErrorMessage(t *testing.T) {
	e := &ExitError{Code: 1}
	if got := e.Error(); got != "exit status 1" {
		t.Errorf("Error() = %q, want %q", got, "exit status 1")
	}

	wrapped := errors.New("missing archive")
	e = &ExitError{Code: 1, Err: wrapped}
	if got := e.Error(); got != "missing archive" {
		t.Errorf("Error() = %q, want %q", got, "missing archive")
	}
	if !errors.Is(e, wrapped) {
		t.Error("ExitError should unwrap to its cause")
	}
}

func TestFormatErrorForDisplay(t *testing.T) {
	plain := errors.New("boom")
	if got := formatErrorForDisplay(plain, false); got != "boom" {
		t.Errorf("plain error formatted as %q", got)
	}

	actionable := issue.NewErrorContext().
		WithOperation("load game archives").
		WithResource("hfvoice.mpq").
		WithSuggestion("Copy the archive into the data directory").
		BuildError()
	got := formatErrorForDisplay(actionable, false)
	if !strings.Contains(got, "hfvoice.mpq") {
		t.Errorf("actionable format missing resource: %q", got)
	}
	if !strings.Contains(got, "Copy the archive") {
		t.Errorf("actionable format missing suggestion: %q", got)
	}
}

func TestSelectPrompter(t *testing.T) {
	cfg := config.DefaultConfig()

	cfg.Headless = true
	if _, ok := selectPrompter(cfg).(tui.HeadlessPrompter); !ok {
		t.Error("headless config should select the headless prompter")
	}

	cfg.Headless = false
	waitMedia = 0
	if _, ok := selectPrompter(cfg).(tui.TerminalPrompter); !ok {
		t.Error("default config should select the terminal prompter")
	}
}

func TestMissingRequiredListsEmptySlots(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := content.NewRegistry(cfg, content.Options{SearchPaths: []string{t.TempDir()}})

	missing := missingRequired(reg)
	if len(missing) != 5 {
		t.Fatalf("empty registry reported %d missing slots, want 5", len(missing))
	}
}
