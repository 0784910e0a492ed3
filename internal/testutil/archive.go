// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

// WriteArchive creates a content archive at dir/name containing the given
// entries (asset path -> contents) and returns its absolute path.
func WriteArchive(t testing.TB, dir, name string, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create archive %s: %v", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			t.Fatalf("failed to close archive %s: %v", path, err)
		}
	}()

	zw := zip.NewWriter(f)
	for entry, contents := range entries {
		w, err := zw.Create(entry)
		if err != nil {
			t.Fatalf("failed to add entry %s: %v", entry, err)
		}
		if _, err := w.Write([]byte(contents)); err != nil {
			t.Fatalf("failed to write entry %s: %v", entry, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to finalize archive %s: %v", path, err)
	}
	return path
}

// WriteCorruptArchive creates a file at dir/name that exists but is not a
// valid archive, for exercising structural-error paths.
func WriteCorruptArchive(t testing.TB, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("this is not an archive"), 0o644); err != nil {
		t.Fatalf("failed to write corrupt archive %s: %v", path, err)
	}
	return path
}

// WriteAssetTree materializes an unpacked content tree rooted at dir/name,
// creating each asset file (asset path -> contents) under it. It returns the
// tree root.
func WriteAssetTree(t testing.TB, dir, name string, entries map[string]string) string {
	t.Helper()

	root := filepath.Join(dir, name)
	for entry, contents := range entries {
		full := filepath.Join(root, filepath.FromSlash(entry))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", entry, err)
		}
		if err := os.WriteFile(full, []byte(contents), 0o644); err != nil {
			t.Fatalf("failed to write asset %s: %v", entry, err)
		}
	}
	if len(entries) == 0 {
		if err := os.MkdirAll(root, 0o755); err != nil {
			t.Fatalf("failed to create tree root %s: %v", root, err)
		}
	}
	return root
}
