// SPDX-License-Identifier: MPL-2.0

package content

import (
	"testing"

	"github.com/shadowed-pilgrims/shadow-of-the-west/internal/testutil"
)

func TestLoadArchiveFirstMatchWins(t *testing.T) {
	p1 := t.TempDir()
	p2 := t.TempDir()

	// Only (V2, P1) and (V1, P2) exist. With the variant loop outermost,
	// (V1, P1) fails, (V1, P2) succeeds, so (V1, P2) must win even though
	// (V2, P1) sits in a higher-priority path.
	testutil.WriteArchive(t, p1, "DATA.MPQ", map[string]string{"who": "v2-p1"})
	wantPath := testutil.WriteArchive(t, p2, "data.mpq", map[string]string{"who": "v1-p2"})

	res := LoadArchive([]string{p1, p2}, "data.mpq", "DATA.MPQ")
	if !res.Found() {
		t.Fatal("LoadArchive() found nothing")
	}
	defer res.Archive.Close() //nolint:errcheck

	if res.Archive.Path() != wantPath {
		t.Errorf("resolved %s, want %s", res.Archive.Path(), wantPath)
	}
}

func TestLoadArchivePathPriorityWithinVariant(t *testing.T) {
	p1 := t.TempDir()
	p2 := t.TempDir()

	wantPath := testutil.WriteArchive(t, p1, "data.mpq", map[string]string{"who": "p1"})
	testutil.WriteArchive(t, p2, "data.mpq", map[string]string{"who": "p2"})

	res := LoadArchive([]string{p1, p2}, "data.mpq")
	if !res.Found() {
		t.Fatal("LoadArchive() found nothing")
	}
	defer res.Archive.Close() //nolint:errcheck

	if res.Archive.Path() != wantPath {
		t.Errorf("resolved %s, want higher-priority %s", res.Archive.Path(), wantPath)
	}
}

func TestLoadArchiveCorruptCopyDoesNotHideValidCopy(t *testing.T) {
	p1 := t.TempDir()
	p2 := t.TempDir()

	testutil.WriteCorruptArchive(t, p1, "data.mpq")
	wantPath := testutil.WriteArchive(t, p2, "data.mpq", map[string]string{"a": "a"})

	res := LoadArchive([]string{p1, p2}, "data.mpq")
	if !res.Found() {
		t.Fatal("LoadArchive() found nothing despite a valid copy in a later path")
	}
	defer res.Archive.Close() //nolint:errcheck

	if res.Archive.Path() != wantPath {
		t.Errorf("resolved %s, want %s", res.Archive.Path(), wantPath)
	}
	if got := structuralCount(res.Diagnostics); got != 1 {
		t.Errorf("structural diagnostics = %d, want exactly 1", got)
	}
}

func TestLoadArchiveNotFoundYieldsSingleWarning(t *testing.T) {
	res := LoadArchive([]string{t.TempDir(), t.TempDir()}, "data.mpq", "DATA.MPQ")
	if res.Found() {
		t.Fatal("LoadArchive() found a nonexistent archive")
	}
	if len(res.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %v, want exactly one", res.Diagnostics)
	}
	d := res.Diagnostics[0]
	if d.Severity != SeverityWarning || d.Code != CodeArchiveMissing {
		t.Errorf("diagnostic = %+v, want low-severity %s", d, CodeArchiveMissing)
	}
}

func TestLoadArchiveAllCorruptYieldsErrorsOnly(t *testing.T) {
	p1 := t.TempDir()
	p2 := t.TempDir()
	testutil.WriteCorruptArchive(t, p1, "data.mpq")
	testutil.WriteCorruptArchive(t, p2, "data.mpq")

	res := LoadArchive([]string{p1, p2}, "data.mpq")
	if res.Found() {
		t.Fatal("LoadArchive() opened a corrupt archive")
	}
	if got := structuralCount(res.Diagnostics); got != 2 {
		t.Errorf("structural diagnostics = %d, want 2", got)
	}
	// Structural errors were seen, so no extra "missing" warning is added.
	for _, d := range res.Diagnostics {
		if d.Code == CodeArchiveMissing {
			t.Errorf("unexpected missing-archive warning alongside structural errors: %+v", d)
		}
	}
}

func TestLoadArchiveStopsAtFirstSuccess(t *testing.T) {
	p1 := t.TempDir()
	p2 := t.TempDir()

	wantPath := testutil.WriteArchive(t, p1, "data.mpq", map[string]string{"a": "a"})
	// A corrupt copy in a later path must not be probed once p1 succeeds.
	testutil.WriteCorruptArchive(t, p2, "data.mpq")

	res := LoadArchive([]string{p1, p2}, "data.mpq")
	if !res.Found() || res.Archive.Path() != wantPath {
		t.Fatalf("resolved %+v, want %s", res, wantPath)
	}
	defer res.Archive.Close() //nolint:errcheck

	if len(res.Diagnostics) != 0 {
		t.Errorf("diagnostics = %v, want none (search stops at first success)", res.Diagnostics)
	}
}
