// SPDX-License-Identifier: MPL-2.0

package content

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"

	"github.com/shadowed-pilgrims/shadow-of-the-west/pkg/mpq"
)

// Source is a mounted content package: something assets can be read from.
// Both packed archives and unpacked directory trees satisfy it, so callers
// above the registry never branch on the install layout.
type Source interface {
	// Location describes where the content was found (archive path or
	// directory root).
	Location() string
	// Has reports whether the named asset exists.
	Has(name string) bool
	// ReadFile returns the named asset's contents.
	ReadFile(name string) ([]byte, error)
	// Close releases any underlying handle. Must be safe to call twice.
	Close() error
}

// ArchiveSource adapts an opened archive to the Source interface.
type ArchiveSource struct {
	archive *mpq.Archive
}

// NewArchiveSource wraps a (non-nil) opened archive.
func NewArchiveSource(a *mpq.Archive) *ArchiveSource {
	return &ArchiveSource{archive: a}
}

// Location returns the archive's filesystem path.
func (s *ArchiveSource) Location() string { return s.archive.Path() }

// Has reports whether the archive contains the named asset.
func (s *ArchiveSource) Has(name string) bool { return s.archive.Has(name) }

// ReadFile returns the named asset's contents.
func (s *ArchiveSource) ReadFile(name string) ([]byte, error) {
	return s.archive.ReadFile(name)
}

// Close closes the underlying archive.
func (s *ArchiveSource) Close() error { return s.archive.Close() }

// DirSource is an unpacked content tree on disk. Asset names use the same
// '/'-or-'\' separated convention as archive entries.
type DirSource struct {
	root string
}

// NewDirSource wraps an existing directory root.
func NewDirSource(root string) *DirSource {
	return &DirSource{root: root}
}

// Location returns the tree's root directory.
func (s *DirSource) Location() string { return s.root }

// Has reports whether the named asset file exists under the tree.
func (s *DirSource) Has(name string) bool {
	info, err := os.Stat(s.assetPath(name))
	return err == nil && !info.IsDir()
}

// HasGlob reports whether any file under the tree matches the doublestar
// pattern (e.g. "music/dlvlf.*" matches either a .wav or .mp3 rip).
func (s *DirSource) HasGlob(pattern string) bool {
	matches, err := doublestar.Glob(os.DirFS(s.root), normalizeAssetName(pattern))
	if err != nil {
		return false
	}
	return len(matches) > 0
}

// ReadFile returns the named asset's contents.
func (s *DirSource) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(s.assetPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fs.ErrNotExist
		}
		return nil, err
	}
	return data, nil
}

// Close is a no-op; directory trees hold no handle.
func (s *DirSource) Close() error { return nil }

func (s *DirSource) assetPath(name string) string {
	return filepath.Join(s.root, filepath.FromSlash(normalizeAssetName(name)))
}

// normalizeAssetName maps archive-style names ('\' separators) to slash form.
func normalizeAssetName(name string) string {
	return strings.ReplaceAll(name, `\`, "/")
}

// FindDir locates an unpacked content tree by directory name across the
// search paths, returning the first hit. Absence returns nil; like archive
// resolution, it is expected for optional packs.
func FindDir(searchPaths []string, name string) *DirSource {
	for _, dir := range searchPaths {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err == nil && info.IsDir() {
			log.Debug("found unpacked content tree", "name", name, "dir", dir)
			return NewDirSource(candidate)
		}
	}
	log.Debug("missing unpacked content tree", "name", name)
	return nil
}
