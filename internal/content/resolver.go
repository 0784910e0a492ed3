// SPDX-License-Identifier: MPL-2.0

package content

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/shadowed-pilgrims/shadow-of-the-west/pkg/mpq"
)

// Resolution is the outcome of resolving one logical archive across the
// search paths. Archive is nil when every candidate was absent or corrupt.
type Resolution struct {
	// Archive is the opened archive, or nil when not found.
	Archive *mpq.Archive
	// Diagnostics records every corrupt candidate seen, plus a single
	// warning entry when the archive was not found anywhere.
	Diagnostics []Diagnostic
}

// Found reports whether an archive was opened.
func (r Resolution) Found() bool { return r.Archive != nil }

// LoadArchive tries to open one archive, probing every filename variant
// against every search path. Variants are tried most-canonical first and the
// variant loop is outermost, so the first variant that exists anywhere wins
// over a later variant in an earlier path. The first successful open ends
// the search.
//
// A candidate that exists but fails to open is recorded as an error
// diagnostic and the search continues; a corrupt copy in one root must not
// hide a valid copy in another. Exhausting every candidate without seeing a
// corrupt copy yields a single warning diagnostic, since absence is the
// normal case for optional packs.
func LoadArchive(searchPaths []string, variants ...string) Resolution {
	var diags []Diagnostic

	for _, name := range variants {
		for _, dir := range searchPaths {
			candidate := filepath.Join(dir, name)
			archive, err := mpq.Open(candidate)
			if err == nil {
				log.Debug("found archive", "name", name, "dir", dir)
				return Resolution{Archive: archive, Diagnostics: diags}
			}
			if mpq.IsStructural(err) {
				log.Error("invalid archive", "path", candidate, "error", err)
				diags = append(diags, Diagnostic{
					Severity: SeverityError,
					Code:     CodeArchiveInvalid,
					Message:  fmt.Sprintf("archive %s exists but cannot be opened", candidate),
					Path:     candidate,
					Cause:    err,
				})
			}
			// Absent at this candidate: keep probing.
		}
	}

	if structuralCount(diags) == 0 {
		log.Debug("missing archive", "name", variants[0])
		diags = append(diags, Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeArchiveMissing,
			Message:  fmt.Sprintf("archive %s not found in any search path", variants[0]),
		})
	}
	return Resolution{Diagnostics: diags}
}
