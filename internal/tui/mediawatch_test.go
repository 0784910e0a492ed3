// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchPrompterDetectsAppearingArchive(t *testing.T) {
	dir := t.TempDir()
	p := WatchPrompter{Roots: []string{dir}, Timeout: 5 * time.Second}

	go func() {
		time.Sleep(100 * time.Millisecond)
		if err := os.WriteFile(filepath.Join(dir, "hfvoice.mpq"), []byte("x"), 0o644); err != nil {
			t.Errorf("failed to write archive: %v", err)
		}
	}()

	if !p.RequestMedia("hfvoice.mpq") {
		t.Error("RequestMedia() = false, want true once the archive appears")
	}
}

func TestWatchPrompterTimesOut(t *testing.T) {
	p := WatchPrompter{Roots: []string{t.TempDir()}, Timeout: 150 * time.Millisecond}

	start := time.Now()
	if p.RequestMedia("hfvoice.mpq") {
		t.Error("RequestMedia() = true, want false on timeout")
	}
	if elapsed := time.Since(start); elapsed < 100*time.Millisecond {
		t.Errorf("returned after %v, want the full timeout wait", elapsed)
	}
}

func TestWatchPrompterArchiveAlreadyPresent(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hellfire.mpq"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	p := WatchPrompter{Roots: []string{dir}, Timeout: 5 * time.Second}

	if !p.RequestMedia("hellfire.mpq") {
		t.Error("RequestMedia() = false for an archive that is already present")
	}
}

func TestWatchPrompterNoWatchableRoots(t *testing.T) {
	p := WatchPrompter{
		Roots:   []string{filepath.Join(t.TempDir(), "does-not-exist")},
		Timeout: 5 * time.Second,
	}
	if p.RequestMedia("hellfire.mpq") {
		t.Error("RequestMedia() = true with no watchable roots")
	}
}
