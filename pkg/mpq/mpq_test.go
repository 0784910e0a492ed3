// SPDX-License-Identifier: MPL-2.0

package mpq

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/shadowed-pilgrims/shadow-of-the-west/internal/testutil"
)

func TestOpenMissingFileReturnsErrNotExist(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.mpq"))
	if !errors.Is(err, ErrNotExist) {
		t.Fatalf("Open() error = %v, want ErrNotExist", err)
	}
	if IsStructural(err) {
		t.Error("missing file must not be reported as structural")
	}
}

func TestOpenCorruptFileReturnsStructuralError(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteCorruptArchive(t, dir, "broken.mpq")

	_, err := Open(path)
	if err == nil {
		t.Fatal("Open() succeeded on a corrupt archive")
	}
	if !IsStructural(err) {
		t.Fatalf("Open() error = %v, want structural", err)
	}
	var se *StructuralError
	if !errors.As(err, &se) || se.Path != path {
		t.Errorf("structural error path = %v, want %s", err, path)
	}
}

func TestArchiveLookupIsCaseAndSeparatorInsensitive(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteArchive(t, dir, "data.mpq", map[string]string{
		"ui_art/title.pcx": "title-bytes",
	})

	a, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer a.Close() //nolint:errcheck

	for _, name := range []string{
		"ui_art/title.pcx",
		`ui_art\title.pcx`,
		`UI_ART\TITLE.PCX`,
	} {
		if !a.Has(name) {
			t.Errorf("Has(%q) = false, want true", name)
		}
		data, err := a.ReadFile(name)
		if err != nil {
			t.Errorf("ReadFile(%q) error = %v", name, err)
			continue
		}
		if string(data) != "title-bytes" {
			t.Errorf("ReadFile(%q) = %q", name, data)
		}
	}
}

func TestReadFileMissingEntry(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteArchive(t, dir, "data.mpq", map[string]string{"a.txt": "a"})

	a, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer a.Close() //nolint:errcheck

	if _, err := a.ReadFile("missing.txt"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile(missing) error = %v, want fs.ErrNotExist", err)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteArchive(t, dir, "data.mpq", map[string]string{"a.txt": "a"})

	a, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
	if a.Has("a.txt") {
		t.Error("Has() = true after Close")
	}
}

func TestOpenDirectoryIsStructural(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "data.mpq")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	_, err := Open(sub)
	if !IsStructural(err) {
		t.Fatalf("Open(directory) error = %v, want structural", err)
	}
}
