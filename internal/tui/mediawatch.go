// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// defaultMediaWait bounds how long WatchPrompter waits for an archive to
// appear before giving up.
const defaultMediaWait = 2 * time.Minute

// WatchPrompter answers media requests by watching the search roots for the
// archive to appear, instead of asking a person. Useful for unattended runs
// where an installer or mount is expected to provide the file shortly.
type WatchPrompter struct {
	// Roots are the directories to watch. Nonexistent roots are skipped.
	Roots []string
	// Timeout bounds the wait; zero or negative uses defaultMediaWait.
	Timeout time.Duration
}

// RequestMedia blocks until the named archive appears under one of the
// watched roots or the timeout elapses. True means the file showed up and
// resolution should be retried.
func (p WatchPrompter) RequestMedia(archiveName string) bool {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = defaultMediaWait
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Error("failed to create media watcher", "error", err)
		return false
	}
	defer watcher.Close() //nolint:errcheck

	watched := 0
	for _, root := range p.Roots {
		if root == "" {
			root = "."
		}
		if info, err := os.Stat(root); err != nil || !info.IsDir() {
			continue
		}
		if err := watcher.Add(root); err != nil {
			log.Debug("cannot watch search root", "root", root, "error", err)
			continue
		}
		watched++
	}
	if watched == 0 {
		return false
	}

	// The file may have appeared between resolution failing and the watch
	// starting.
	if p.present(archiveName) {
		return true
	}

	log.Info("waiting for archive to appear", "name", archiveName, "timeout", timeout)
	deadline := time.After(timeout)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return false
			}
			if event.Op&(fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if strings.EqualFold(filepath.Base(event.Name), archiveName) {
				return true
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return false
			}
			log.Debug("media watcher error", "error", err)
		case <-deadline:
			log.Debug("gave up waiting for archive", "name", archiveName)
			return false
		}
	}
}

func (p WatchPrompter) present(archiveName string) bool {
	for _, root := range p.Roots {
		if _, err := os.Stat(filepath.Join(root, archiveName)); err == nil {
			return true
		}
	}
	return false
}
