// SPDX-License-Identifier: MPL-2.0

// Package content locates and mounts the game's data archives.
//
// A Registry owns one slot per logical content package (base content,
// expansion content, class packs, music, voice, bonus, language, fonts) and
// fills them in three independent phases: core archives, the language
// archive, and the game archives. Resolution probes an ordered list of
// search directories for each acceptable filename variant and keeps the
// first copy that opens; corrupt copies are reported and skipped.
//
// The resolver itself never talks to the user. Phases that can recover from
// a missing required archive call back through a Prompter, and unrecoverable
// absence is returned upward as an error for the caller to render.
package content
