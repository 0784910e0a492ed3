// SPDX-License-Identifier: MPL-2.0

package content

import (
	"github.com/charmbracelet/log"

	"github.com/shadowed-pilgrims/shadow-of-the-west/internal/config"
	"github.com/shadowed-pilgrims/shadow-of-the-west/internal/issue"
	"github.com/shadowed-pilgrims/shadow-of-the-west/internal/save"
)

// LogicalName identifies a content package independently of the on-disk
// filename variant that satisfied it.
type LogicalName string

// The fixed set of logical content packages. Exactly one slot exists per
// name; absence is an empty slot, never a nil-source surprise.
const (
	BaseContent        LogicalName = "base content"
	ExpansionContent   LogicalName = "expansion content"
	ClassPackMonk      LogicalName = "monk class pack"
	ClassPackBard      LogicalName = "bard class pack"
	ClassPackBarbarian LogicalName = "barbarian class pack"
	ExpansionMusic     LogicalName = "expansion music"
	ExpansionVoice     LogicalName = "expansion voice"
	BonusContent       LogicalName = "bonus content"
	LanguagePack       LogicalName = "language pack"
	FontPack           LogicalName = "font pack"
)

// Archive filename variants. The base archive is uppercase on the original
// CD-ROM pressing; repackaged installs use lowercase.
const (
	baseArchiveCD    = "DIABDAT.MPQ"
	baseArchive      = "diabdat.mpq"
	expansionArchive = "hellfire.mpq"
	monkArchive      = "hfmonk.mpq"
	bardArchive      = "hfbard.mpq"
	barbarianArchive = "hfbarb.mpq"
	musicArchive     = "hfmusic.mpq"
	voiceArchive     = "hfvoice.mpq"
	bonusArchive     = "sotw.mpq"
	fontArchive      = "fonts.mpq"
)

// Unpacked-mode tree names and probe assets.
const (
	baseTree      = "diabdat"
	expansionTree = "hellfire"

	monkProbeAsset = "plrgfx/monk/mha/mhaas.clx"
	musicProbeGlob = "music/dlvlf.*"
	voiceProbeGlob = "sfx/hellfire/cowsut1.*"
)

// Title-screen assets probed as a liveness check for the base content.
const (
	TitleScreenPacked   = `ui_art\title.pcx`
	TitleScreenUnpacked = "ui_art/title.clx"
)

// assetSearchOrder is the precedence for asset lookups across mounted
// sources: localized content first, then expansion packs, then base.
var assetSearchOrder = []LogicalName{
	LanguagePack,
	BonusContent,
	ClassPackBard,
	ClassPackBarbarian,
	ClassPackMonk,
	ExpansionVoice,
	ExpansionMusic,
	ExpansionContent,
	BaseContent,
	FontPack,
}

type (
	// Prompter is the recovery callback for missing required archives. It
	// blocks the calling goroutine; resolution is single-threaded and a load
	// phase waits on the answer before continuing.
	Prompter interface {
		// RequestMedia asks the user to make the named archive available
		// (insert the game media or copy the file). A true result means
		// "retry resolution once".
		RequestMedia(archiveName string) bool
	}

	// Options configures a Registry beyond its Config.
	Options struct {
		// SearchPaths overrides search-path construction, mainly for tests.
		// Nil means "build from the path provider and config".
		SearchPaths []string
		// Prompter handles missing required archives. Nil never retries.
		Prompter Prompter
		// Saver persists in-progress session state during teardown. Nil
		// skips persistence.
		Saver save.Saver
	}

	// Flags are the feature toggles derived from optional pack resolution.
	Flags struct {
		// Bard is true when the bard class pack resolved.
		Bard bool
		// Barbarian is true when the barbarian class pack resolved.
		Barbarian bool
	}

	// Registry owns the process-wide archive slots. All mutation happens
	// through the load phases and Teardown; callers must not invoke phases
	// concurrently (single-threaded-caller discipline, no internal locking).
	Registry struct {
		cfg   *config.Config
		opts  Options
		slots map[LogicalName]Source
		flags Flags

		// Session state consulted by Teardown.
		multiplayer bool
		gameStarted bool
	}
)

// NewRegistry returns an empty registry. No archives are resolved until a
// load phase runs.
func NewRegistry(cfg *config.Config, opts Options) *Registry {
	return &Registry{
		cfg:   cfg,
		opts:  opts,
		slots: make(map[LogicalName]Source),
	}
}

// Lookup returns the mounted source for a logical name, if present.
func (r *Registry) Lookup(name LogicalName) (Source, bool) {
	src, ok := r.slots[name]
	return src, ok
}

// Flags returns the feature toggles set by the game-archive phase.
func (r *Registry) Flags() Flags { return r.flags }

// SetSessionState records whether a multiplayer session is active and whether
// gameplay has started. Teardown persists player state only when both hold.
func (r *Registry) SetSessionState(multiplayer, gameStarted bool) {
	r.multiplayer = multiplayer
	r.gameStarted = gameStarted
}

// FindAsset probes the mounted sources in precedence order for the named
// asset and returns the first source that has it.
func (r *Registry) FindAsset(name string) (Source, bool) {
	for _, logical := range assetSearchOrder {
		if src, ok := r.slots[logical]; ok && src.Has(name) {
			return src, true
		}
	}
	return nil, false
}

// Status describes one slot for display.
type Status struct {
	// Name is the logical package name.
	Name LogicalName
	// Location is where the package was found; empty when absent.
	Location string
	// Present is true when the slot holds a source.
	Present bool
}

// Statuses returns every slot's state in a stable order.
func (r *Registry) Statuses() []Status {
	order := []LogicalName{
		BaseContent, ExpansionContent,
		ClassPackMonk, ClassPackBard, ClassPackBarbarian,
		ExpansionMusic, ExpansionVoice,
		BonusContent, LanguagePack, FontPack,
	}
	out := make([]Status, 0, len(order))
	for _, name := range order {
		s := Status{Name: name}
		if src, ok := r.slots[name]; ok {
			s.Present = true
			s.Location = src.Location()
		}
		out = append(out, s)
	}
	return out
}

func (r *Registry) searchPaths() []string {
	if r.opts.SearchPaths != nil {
		return r.opts.SearchPaths
	}
	return SearchPaths(r.cfg)
}

// setSlot mounts src under name, releasing any previous occupant first so a
// logical name never holds two live handles.
func (r *Registry) setSlot(name LogicalName, src Source) {
	r.releaseSlot(name)
	if src != nil {
		r.slots[name] = src
	}
}

func (r *Registry) releaseSlot(name LogicalName) {
	if prev, ok := r.slots[name]; ok {
		if err := prev.Close(); err != nil {
			log.Error("failed to release content source", "name", name, "error", err)
		}
		delete(r.slots, name)
	}
}

// mountResolution stores a resolution result, if found, under name.
func (r *Registry) mountResolution(name LogicalName, res Resolution) bool {
	if !res.Found() {
		r.releaseSlot(name)
		return false
	}
	r.setSlot(name, NewArchiveSource(res.Archive))
	return true
}

// LoadCoreArchives resolves the always-needed support archives: the bonus
// content (loaded first so its font file can render early error text) and
// the extra fonts. Absence is non-fatal at this layer; missing fonts only
// degrade error-message rendering.
func (r *Registry) LoadCoreArchives() {
	searchPaths := r.searchPaths()

	if r.cfg.UnpackedAssets {
		r.setSlot(FontPack, dirOrNil(FindDir(searchPaths, "fonts")))
		return
	}

	if !r.cfg.SkipBonus {
		r.mountResolution(BonusContent, LoadArchive(searchPaths, bonusArchive))
	}
	r.mountResolution(FontPack, LoadArchive(searchPaths, fontArchive))
}

// LoadLanguageArchive resolves the locale-named archive for the active
// language. It always releases the previous language handle first, so it can
// be re-invoked whenever the user changes locale. The default locale needs
// no archive.
func (r *Registry) LoadLanguageArchive() {
	r.releaseSlot(LanguagePack)

	code := r.cfg.Language
	if code == "" || code == config.DefaultLanguage {
		return
	}

	searchPaths := r.searchPaths()
	if r.cfg.UnpackedAssets {
		r.setSlot(LanguagePack, dirOrNil(FindDir(searchPaths, code)))
		return
	}
	r.mountResolution(LanguagePack, LoadArchive(searchPaths, code+".mpq"))
}

// LoadGameArchives resolves the mandatory base and expansion content plus
// the expansion sub-packs. The bard and barbarian packs are optional feature
// toggles; the monk, music, and voice packs are mandatory expansion
// components. A missing mandatory archive gets one media-insert retry via
// the Prompter before the phase reports failure. The returned error is the
// only failure channel; no slot is left half-mounted.
func (r *Registry) LoadGameArchives() error {
	searchPaths := r.searchPaths()

	// Re-invocation starts from a clean slate.
	for _, name := range []LogicalName{
		BaseContent, ExpansionContent,
		ClassPackMonk, ClassPackBard, ClassPackBarbarian,
		ExpansionMusic, ExpansionVoice,
	} {
		r.releaseSlot(name)
	}
	r.flags = Flags{}

	if r.cfg.UnpackedAssets {
		return r.loadGameTrees(searchPaths)
	}
	return r.loadGameArchives(searchPaths)
}

func (r *Registry) loadGameArchives(searchPaths []string) error {
	r.mountResolution(BaseContent, LoadArchive(searchPaths, baseArchiveCD, baseArchive))

	// The title screen doubles as a liveness check: a base archive that
	// opened but lacks it is as useless as a missing one.
	if !r.baseContentAlive() {
		if r.retry(baseArchive) {
			r.mountResolution(BaseContent, LoadArchive(searchPaths, baseArchiveCD, baseArchive))
		}
		if !r.baseContentAlive() {
			return missingArchiveError("load game archives", baseArchive,
				"Copy DIABDAT.MPQ from the game media next to the binary or into the data directory")
		}
	}

	if !r.mountResolution(ExpansionContent, LoadArchive(searchPaths, expansionArchive)) {
		if r.retry(expansionArchive) {
			r.mountResolution(ExpansionContent, LoadArchive(searchPaths, expansionArchive))
		}
		if _, ok := r.slots[ExpansionContent]; !ok {
			return missingArchiveError("load game archives", expansionArchive,
				"Copy hellfire.mpq from the expansion media")
		}
	}

	r.flags.Bard = r.mountResolution(ClassPackBard, LoadArchive(searchPaths, bardArchive))
	r.flags.Barbarian = r.mountResolution(ClassPackBarbarian, LoadArchive(searchPaths, barbarianArchive))

	for _, pack := range []struct {
		logical LogicalName
		name    string
	}{
		{ClassPackMonk, monkArchive},
		{ExpansionMusic, musicArchive},
		{ExpansionVoice, voiceArchive},
	} {
		if r.mountResolution(pack.logical, LoadArchive(searchPaths, pack.name)) {
			continue
		}
		if r.retry(pack.name) && r.mountResolution(pack.logical, LoadArchive(searchPaths, pack.name)) {
			continue
		}
		return missingArchiveError("load expansion archives", pack.name,
			"Copy all the hf*.mpq files from the expansion media")
	}

	return nil
}

// loadGameTrees is the unpacked-directory rendition of the game phase. The
// expansion sub-packs have no separate trees; their presence is probed with
// known asset files inside the expansion tree.
func (r *Registry) loadGameTrees(searchPaths []string) error {
	base := FindDir(searchPaths, baseTree)
	r.setSlot(BaseContent, dirOrNil(base))

	if !r.baseContentAlive() {
		if r.retry(baseArchive) {
			r.setSlot(BaseContent, dirOrNil(FindDir(searchPaths, baseTree)))
		}
		if !r.baseContentAlive() {
			return missingArchiveError("load game archives", baseTree,
				"Copy the unpacked diabdat tree next to the binary or into the data directory")
		}
	}

	expansion := FindDir(searchPaths, expansionTree)
	if expansion == nil && r.retry(expansionTree) {
		expansion = FindDir(searchPaths, expansionTree)
	}
	if expansion == nil {
		return missingArchiveError("load game archives", expansionTree,
			"Copy the unpacked hellfire tree from the expansion media")
	}
	r.setSlot(ExpansionContent, expansion)

	hasMonk := expansion.Has(monkProbeAsset)
	hasMusic := expansion.HasGlob(musicProbeGlob)
	hasVoice := expansion.HasGlob(voiceProbeGlob)

	// The bard and barbarian packs share asset paths with the base classes,
	// so unpacked trees cannot carry them; the toggles stay off in this mode.
	r.flags.Bard = false
	r.flags.Barbarian = false

	if !hasMonk || !hasMusic || !hasVoice {
		return issue.NewErrorContext().
			WithOperation("load expansion archives").
			WithResource(expansion.Location()).
			WithSuggestion("Copy the complete unpacked hellfire tree, including plrgfx, music and sfx").
			BuildError()
	}
	return nil
}

// baseContentAlive reports whether the base slot holds a source that can
// serve the title screen. The probe is skipped in headless mode, where a
// mounted slot is taken at face value.
func (r *Registry) baseContentAlive() bool {
	src, ok := r.slots[BaseContent]
	if !ok {
		return false
	}
	if r.cfg.Headless {
		return true
	}
	if r.cfg.UnpackedAssets {
		return src.Has(TitleScreenUnpacked)
	}
	return src.Has(TitleScreenPacked)
}

// retry gives the user one chance to provide the named archive.
func (r *Registry) retry(archiveName string) bool {
	if r.opts.Prompter == nil {
		return false
	}
	return r.opts.Prompter.RequestMedia(archiveName)
}

// Teardown persists in-progress session state (when a multiplayer game had
// started) and then releases every slot and resets the feature flags. The
// save runs first because serializing player state may still resolve asset
// references through the mounted sources. Calling Teardown again after a
// completed teardown is a no-op.
func (r *Registry) Teardown() error {
	if len(r.slots) == 0 && r.flags == (Flags{}) {
		return nil
	}

	var saveErr error
	if r.multiplayer && r.gameStarted && r.opts.Saver != nil {
		if err := r.opts.Saver.WriteHero(false); err != nil {
			log.Error("failed to persist hero state", "error", err)
			saveErr = err
		}
		if err := r.opts.Saver.WriteStash(); err != nil {
			log.Error("failed to persist stash state", "error", err)
			if saveErr == nil {
				saveErr = err
			}
		}
	}

	for name := range r.slots {
		r.releaseSlot(name)
	}
	r.flags = Flags{}
	return saveErr
}

// dirOrNil converts a possibly-nil *DirSource to the Source interface
// without producing a non-nil interface around a nil pointer.
func dirOrNil(d *DirSource) Source {
	if d == nil {
		return nil
	}
	return d
}

func missingArchiveError(operation, resource, suggestion string) error {
	return issue.NewErrorContext().
		WithOperation(operation).
		WithResource(resource).
		WithSuggestion(suggestion).
		BuildError()
}
