// SPDX-License-Identifier: MPL-2.0

package content

import (
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/shadowed-pilgrims/shadow-of-the-west/internal/paths"
	"github.com/shadowed-pilgrims/shadow-of-the-west/internal/testutil"
)

func TestSearchRootsOrdering(t *testing.T) {
	roots := SearchRoots{
		Base:     "/opt/game",
		Pref:     "/home/p/.local/share/game",
		Config:   "/home/p/.config/game",
		Extra:    []string{"/mnt/cdrom"},
		Platform: []string{"/usr/share/game"},
	}
	want := []string{
		"/opt/game",
		"/home/p/.local/share/game",
		"/home/p/.config/game",
		"/mnt/cdrom",
		"/usr/share/game",
		"",
	}
	if got := roots.List(); !slices.Equal(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestSearchRootsFirstOccurrenceWins(t *testing.T) {
	// [A, A, B] must yield [A, B]: the later duplicate is dropped, the
	// earlier position is kept.
	roots := SearchRoots{Base: "A", Pref: "A", Config: "B"}
	want := []string{"A", "B", ""}
	if got := roots.List(); !slices.Equal(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestSearchRootsNeverContainsDuplicates(t *testing.T) {
	tests := []struct {
		name  string
		roots SearchRoots
	}{
		{"all equal", SearchRoots{Base: "X", Pref: "X", Config: "X", Extra: []string{"X"}, Platform: []string{"X"}}},
		{"extras repeat roots", SearchRoots{Base: "A", Pref: "B", Config: "C", Extra: []string{"B", "C", "D"}}},
		{"platform repeats extras", SearchRoots{Base: "A", Extra: []string{"E"}, Platform: []string{"E", "A"}}},
		{"empty roots collapse with cwd", SearchRoots{Base: "", Pref: "", Config: "A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := tt.roots.List()
			seen := make(map[string]bool, len(list))
			for _, p := range list {
				if seen[p] {
					t.Fatalf("List() = %v contains duplicate %q", list, p)
				}
				seen[p] = true
			}
		})
	}
}

func TestSearchRootsWorkingDirectoryIsLast(t *testing.T) {
	list := SearchRoots{Base: "A", Pref: "B"}.List()
	if list[len(list)-1] != "" {
		t.Errorf("List() = %v, want trailing empty entry for the working directory", list)
	}
}

func TestPlatformDataDirsFromEnv(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("environment search roots are only read on Linux-like platforms")
	}

	sep := string(filepath.ListSeparator)
	t.Cleanup(testutil.MustSetenv(t, EnvDataDirs, "/data/a"+sep+sep+"/data/b"))

	dirs := platformDataDirs()
	if len(dirs) != 2 {
		t.Fatalf("platformDataDirs() = %v, want 2 entries", dirs)
	}
	suffix := filepath.Join(paths.AppVendor, paths.AppName)
	for _, d := range dirs {
		if !strings.HasSuffix(d, suffix) {
			t.Errorf("entry %q missing vendor/app suffix", d)
		}
	}
	if !strings.HasPrefix(dirs[0], "/data/a") || !strings.HasPrefix(dirs[1], "/data/b") {
		t.Errorf("platformDataDirs() = %v, want env order preserved", dirs)
	}
}

func TestPlatformDataDirsFallbackWhenEnvUnset(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("environment search roots are only read on Linux-like platforms")
	}

	t.Cleanup(testutil.MustUnsetenv(t, EnvDataDirs))
	t.Cleanup(testutil.MustUnsetenv(t, "XDG_DATA_DIRS"))

	dirs := platformDataDirs()
	if len(dirs) != 2 {
		t.Fatalf("platformDataDirs() = %v, want the two system fallbacks", dirs)
	}
	if !strings.HasPrefix(dirs[0], "/usr/local/share") || !strings.HasPrefix(dirs[1], "/usr/share") {
		t.Errorf("platformDataDirs() = %v", dirs)
	}
}

func TestPlatformDataDirsEmptyEnvYieldsFallbacks(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("environment search roots are only read on Linux-like platforms")
	}

	// An empty variable is treated as unset, never as an error.
	t.Cleanup(testutil.MustSetenv(t, EnvDataDirs, ""))
	t.Cleanup(testutil.MustUnsetenv(t, "XDG_DATA_DIRS"))

	if dirs := platformDataDirs(); len(dirs) != 2 {
		t.Errorf("platformDataDirs() = %v, want the two system fallbacks", dirs)
	}
}
