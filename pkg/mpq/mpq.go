// SPDX-License-Identifier: MPL-2.0

// Package mpq reads the game's content archives.
//
// An archive is a zip-compatible container whose entries are asset paths.
// Asset lookups are case-insensitive and accept both '/' and '\' separators,
// matching the naming used inside the original CD-ROM archives.
//
// Open distinguishes two failure modes that callers treat very differently:
// a missing file (ErrNotExist, expected for optional packs) and a present but
// unreadable file (StructuralError, always worth reporting).
package mpq

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// ErrNotExist reports that no file exists at the archive path.
var ErrNotExist = errors.New("archive does not exist")

// StructuralError reports a file that exists but cannot be opened as an
// archive (truncated, corrupt, or not an archive at all).
type StructuralError struct {
	// Path is the filesystem path of the unreadable file.
	Path string
	// Err is the underlying open/parse error.
	Err error
}

// Error implements the error interface.
func (e *StructuralError) Error() string {
	return fmt.Sprintf("invalid archive %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *StructuralError) Unwrap() error { return e.Err }

// IsStructural reports whether err indicates a corrupt or unreadable archive
// rather than an absent one.
func IsStructural(err error) bool {
	var se *StructuralError
	return errors.As(err, &se)
}

// Archive is an opened content archive. The zero value is not usable; obtain
// one from Open. Close releases the underlying file handle and is safe to
// call more than once.
type Archive struct {
	path    string
	rc      *zip.ReadCloser
	entries map[string]*zip.File
}

// Open opens the archive at path. It returns ErrNotExist when no file is
// present there, and a *StructuralError when a file is present but cannot be
// parsed as an archive.
func Open(path string) (*Archive, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotExist)
		}
		return nil, &StructuralError{Path: path, Err: err}
	}

	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, &StructuralError{Path: path, Err: err}
	}

	a := &Archive{
		path:    path,
		rc:      rc,
		entries: make(map[string]*zip.File, len(rc.File)),
	}
	for _, f := range rc.File {
		a.entries[normalizeName(f.Name)] = f
	}
	return a, nil
}

// Path returns the filesystem path the archive was opened from.
func (a *Archive) Path() string { return a.path }

// Len returns the number of entries in the archive.
func (a *Archive) Len() int { return len(a.entries) }

// Has reports whether the archive contains the named asset.
func (a *Archive) Has(name string) bool {
	if a == nil || a.rc == nil {
		return false
	}
	_, ok := a.entries[normalizeName(name)]
	return ok
}

// ReadFile returns the contents of the named asset, or fs.ErrNotExist if the
// archive has no such entry.
func (a *Archive) ReadFile(name string) ([]byte, error) {
	if a == nil || a.rc == nil {
		return nil, fmt.Errorf("%s: %w", name, fs.ErrNotExist)
	}
	f, ok := a.entries[normalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("%s: asset %s: %w", a.path, name, fs.ErrNotExist)
	}
	r, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%s: asset %s: %w", a.path, name, err)
	}
	defer r.Close() //nolint:errcheck // read-only handle
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: asset %s: %w", a.path, name, err)
	}
	return data, nil
}

// Close releases the archive's file handle. Calling Close on an already
// closed (or nil) archive is a no-op.
func (a *Archive) Close() error {
	if a == nil || a.rc == nil {
		return nil
	}
	rc := a.rc
	a.rc = nil
	a.entries = nil
	return rc.Close()
}

// normalizeName maps an asset path to its canonical lookup key: lower case
// with forward slashes. Archive producers historically used '\' separators
// and inconsistent casing.
func normalizeName(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, `\`, "/"))
}
