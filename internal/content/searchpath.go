// SPDX-License-Identifier: MPL-2.0

package content

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/shadowed-pilgrims/shadow-of-the-west/internal/config"
	"github.com/shadowed-pilgrims/shadow-of-the-west/internal/paths"
)

// EnvDataDirs names the environment variable supplying extra search roots,
// separated by the platform list separator. When unset, XDG_DATA_DIRS is
// consulted instead on Linux-like platforms.
const EnvDataDirs = "SOTW_DATA_DIRS"

// storeInstallDirs returns roots discovered from a platform game store
// install, if any. Overridable so platform builds can plug in detection
// without the resolver knowing about it.
var storeInstallDirs = func() []string { return nil }

// SearchRoots holds the inputs to search-path construction. Ordering is
// most-authoritative-first; the working directory is always appended last.
type SearchRoots struct {
	// Base is the install directory.
	Base string
	// Pref is the per-user preference directory.
	Pref string
	// Config is the per-user configuration directory.
	Config string
	// Extra lists directories configured by the user.
	Extra []string
	// Platform lists platform data directories (XDG data dirs, store installs).
	Platform []string
}

// List builds the ordered, de-duplicated search-path list. Duplicates are
// detected by exact string equality; the first occurrence wins. The empty
// string, meaning the current working directory, is always last.
func (r SearchRoots) List() []string {
	out := make([]string, 0, 4+len(r.Extra)+len(r.Platform))
	add := func(dir string) {
		for _, seen := range out {
			if seen == dir {
				return
			}
		}
		out = append(out, dir)
	}

	add(r.Base)
	add(r.Pref)
	add(r.Config)
	for _, dir := range r.Extra {
		add(dir)
	}
	for _, dir := range r.Platform {
		add(dir)
	}
	add("") // working directory, lowest priority

	return out
}

// SearchPaths builds the archive search-path list for the current process:
// the path-provider roots, the configured extra directories, and the
// platform data directories.
func SearchPaths(cfg *config.Config) []string {
	roots := SearchRoots{
		Base:     paths.BasePath(),
		Pref:     paths.PrefPath(),
		Config:   paths.ConfigPath(),
		Extra:    cfg.DataDirs,
		Platform: platformDataDirs(),
	}
	list := roots.List()

	var sb strings.Builder
	for i, p := range list {
		fmt.Fprintf(&sb, "\n%6d. %q", i+1, p)
	}
	log.Debug("archive search paths" + sb.String())

	return list
}

// platformDataDirs contributes system data directories on Linux-like
// platforms and store-detected install directories elsewhere. A missing or
// empty environment variable contributes nothing; it is never an error.
func platformDataDirs() []string {
	var dirs []string

	if runtime.GOOS != "windows" && runtime.GOOS != "darwin" {
		env := os.Getenv(EnvDataDirs)
		if env == "" {
			env = os.Getenv("XDG_DATA_DIRS")
		}
		if env != "" {
			for _, dir := range filepath.SplitList(env) {
				if dir == "" {
					continue
				}
				dirs = append(dirs, filepath.Join(dir, paths.AppVendor, paths.AppName))
			}
		} else {
			dirs = append(dirs,
				filepath.Join("/usr/local/share", paths.AppVendor, paths.AppName),
				filepath.Join("/usr/share", paths.AppVendor, paths.AppName),
			)
		}
	}

	dirs = append(dirs, storeInstallDirs()...)
	return dirs
}
