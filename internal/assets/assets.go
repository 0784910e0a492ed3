// SPDX-License-Identifier: MPL-2.0

// Package assets resolves asset names against the mounted content packages.
// Gameplay and UI code goes through a Locator instead of touching the
// registry's slots, so asset precedence (localized content over expansion
// over base) lives in one place.
package assets

import (
	"fmt"
	"io/fs"

	"github.com/shadowed-pilgrims/shadow-of-the-west/internal/content"
)

// Ref is a resolved asset: the source that holds it and the name to read it
// under.
type Ref struct {
	// Source is the content package the asset resolved in.
	Source content.Source
	// Name is the asset name as requested.
	Name string
}

// OK reports whether the reference points at an existing asset.
func (r Ref) OK() bool { return r.Source != nil }

// Locator resolves asset names through a registry.
type Locator struct {
	reg *content.Registry
}

// NewLocator wires a Locator to the given registry.
func NewLocator(reg *content.Registry) *Locator {
	return &Locator{reg: reg}
}

// Find returns a reference to the named asset, or a zero Ref when no mounted
// source has it.
func (l *Locator) Find(name string) Ref {
	src, ok := l.reg.FindAsset(name)
	if !ok {
		return Ref{Name: name}
	}
	return Ref{Source: src, Name: name}
}

// Read resolves and reads the named asset in one step.
func (l *Locator) Read(name string) ([]byte, error) {
	ref := l.Find(name)
	if !ref.OK() {
		return nil, fmt.Errorf("asset %s: %w", name, fs.ErrNotExist)
	}
	return ref.Source.ReadFile(ref.Name)
}
