// SPDX-License-Identifier: MPL-2.0

package content

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/shadowed-pilgrims/shadow-of-the-west/internal/testutil"
	"github.com/shadowed-pilgrims/shadow-of-the-west/pkg/mpq"
)

func TestArchiveSourceDelegates(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteArchive(t, dir, "data.mpq", map[string]string{
		"ui_art/title.pcx": "title",
	})
	a, err := mpq.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	src := NewArchiveSource(a)
	defer src.Close() //nolint:errcheck

	if src.Location() != path {
		t.Errorf("Location() = %q, want %q", src.Location(), path)
	}
	if !src.Has(`ui_art\title.pcx`) {
		t.Error("Has() = false for an existing asset")
	}
	data, err := src.ReadFile("ui_art/title.pcx")
	if err != nil || string(data) != "title" {
		t.Errorf("ReadFile() = %q, %v", data, err)
	}
}

func TestDirSourceHasAndRead(t *testing.T) {
	root := testutil.WriteAssetTree(t, t.TempDir(), "diabdat", map[string]string{
		"ui_art/title.clx": "title",
	})
	src := NewDirSource(root)

	if !src.Has("ui_art/title.clx") {
		t.Error("Has() = false for an existing asset")
	}
	if !src.Has(`ui_art\title.clx`) {
		t.Error("Has() must accept backslash-separated names")
	}
	if src.Has("ui_art") {
		t.Error("Has() must be false for a directory")
	}
	if _, err := src.ReadFile("nope.clx"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile(missing) error = %v, want fs.ErrNotExist", err)
	}
}

func TestDirSourceHasGlob(t *testing.T) {
	root := testutil.WriteAssetTree(t, t.TempDir(), "hellfire", map[string]string{
		"music/dlvlf.mp3": "audio",
	})
	src := NewDirSource(root)

	if !src.HasGlob("music/dlvlf.*") {
		t.Error("HasGlob() = false, want match on the mp3 rip")
	}
	if src.HasGlob("sfx/hellfire/cowsut1.*") {
		t.Error("HasGlob() matched a nonexistent asset")
	}
}

func TestFindDirSearchesInPriorityOrder(t *testing.T) {
	p1 := t.TempDir()
	p2 := t.TempDir()
	want := testutil.WriteAssetTree(t, p1, "diabdat", nil)
	testutil.WriteAssetTree(t, p2, "diabdat", nil)

	src := FindDir([]string{p1, p2}, "diabdat")
	if src == nil {
		t.Fatal("FindDir() = nil")
	}
	if src.Location() != want {
		t.Errorf("FindDir() = %q, want %q", src.Location(), want)
	}
}

func TestFindDirAbsent(t *testing.T) {
	if src := FindDir([]string{t.TempDir()}, "diabdat"); src != nil {
		t.Errorf("FindDir() = %v, want nil", src)
	}
}
