// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"runtime"
	"testing"
)

// SetHomeDir points the platform home-directory variable at dir and returns
// a cleanup function restoring the original value. Tests that exercise the
// per-user preference or configuration directories use this to avoid reading
// the real user profile.
//
// Platform handling:
//   - Windows: sets USERPROFILE
//   - Linux/macOS: sets HOME
func SetHomeDir(t testing.TB, dir string) func() {
	t.Helper()

	switch runtime.GOOS {
	case "windows":
		return MustSetenv(t, "USERPROFILE", dir)
	default:
		return MustSetenv(t, "HOME", dir)
	}
}
