// SPDX-License-Identifier: MPL-2.0

package content

const (
	// SeverityWarning marks an expected condition worth surfacing, such as an
	// optional pack that was not found anywhere.
	SeverityWarning Severity = "warning"
	// SeverityError marks a real problem, such as a corrupt archive copy.
	SeverityError Severity = "error"
)

// Diagnostic codes.
const (
	// CodeArchiveMissing reports that no candidate opened for a logical
	// archive after exhausting every variant and search path.
	CodeArchiveMissing = "archive_missing"
	// CodeArchiveInvalid reports a candidate that exists but failed to open.
	CodeArchiveInvalid = "archive_invalid"
)

type (
	// Severity represents resolution diagnostic severity.
	Severity string

	// Diagnostic is a structured record of one resolution problem. Phases
	// return diagnostics to callers instead of writing to stderr so rendering
	// policy stays in one place.
	Diagnostic struct {
		// Severity is the diagnostic level (warning or error).
		Severity Severity
		// Code is a machine-readable identifier.
		Code string
		// Message is the human-readable description.
		Message string
		// Path is the candidate path involved (optional).
		Path string
		// Cause is the underlying error (optional).
		Cause error
	}
)

// structuralCount returns how many diagnostics report corrupt candidates.
func structuralCount(diags []Diagnostic) int {
	n := 0
	for _, d := range diags {
		if d.Code == CodeArchiveInvalid {
			n++
		}
	}
	return n
}
