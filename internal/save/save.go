// SPDX-License-Identifier: MPL-2.0

// Package save defines the collaborator that persists in-progress session
// state. The content layer calls it during teardown, before archive handles
// are released, because serializing player state may still resolve asset
// references. The on-disk format lives with the gameplay code, not here.
package save

// Saver persists the pieces of session state that survive a teardown.
type Saver interface {
	// WriteHero persists the player character. writeGameData also flushes
	// the in-dungeon game state; teardown passes false.
	WriteHero(writeGameData bool) error
	// WriteStash persists the shared stash.
	WriteStash() error
}

// Noop is a Saver that persists nothing. Used by tooling (verify, paths)
// that never starts a session.
type Noop struct{}

// WriteHero implements Saver.
func (Noop) WriteHero(bool) error { return nil }

// WriteStash implements Saver.
func (Noop) WriteStash() error { return nil }
