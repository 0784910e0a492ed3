// SPDX-License-Identifier: MPL-2.0

package objdat

import (
	"slices"
	"testing"
)

func TestAllObjectsGraphicsValid(t *testing.T) {
	for id, data := range AllObjects {
		if data.Graphic < 0 || data.Graphic > GfxLast {
			t.Errorf("object %d: graphic %d out of range", id, data.Graphic)
			continue
		}
		if GraphicFile(data.Graphic) == "" {
			t.Errorf("object %d: graphic %d has no sprite file", id, data.Graphic)
		}
	}
}

func TestMasterLoadListComplete(t *testing.T) {
	files := MasterLoadList()
	if len(files) != int(GfxLast)+1 {
		t.Fatalf("load list has %d entries, want %d", len(files), int(GfxLast)+1)
	}
	seen := map[string]GraphicID{}
	for g, f := range files {
		if f == "" {
			t.Errorf("graphic %d has no sprite file", g)
			continue
		}
		if prev, ok := seen[f]; ok {
			t.Errorf("graphics %d and %d share sprite file %q", prev, g, f)
		}
		seen[f] = GraphicID(g)
	}
}

func TestGraphicFileOutOfRange(t *testing.T) {
	if got := GraphicFile(GfxNone); got != "" {
		t.Errorf("GraphicFile(GfxNone) = %q, want empty", got)
	}
	if got := GraphicFile(GfxLast + 1); got != "" {
		t.Errorf("GraphicFile(GfxLast+1) = %q, want empty", got)
	}
}

func TestThemeLinkageSymmetric(t *testing.T) {
	for id, data := range AllObjects {
		if data.Theme == ThemeNone {
			continue
		}
		if !slices.Contains(ThemeObjects(data.Theme), id) {
			t.Errorf("object %d has theme %d but is missing from ThemeObjects", id, data.Theme)
		}
	}
	for _, id := range ThemeObjects(ThemeShrine) {
		if AllObjects[id].Theme != ThemeShrine {
			t.Errorf("ThemeObjects(ThemeShrine) returned object %d with theme %d", id, AllObjects[id].Theme)
		}
	}
}

func TestQuestLinkageSymmetric(t *testing.T) {
	for id, data := range AllObjects {
		if data.Quest == QuestNone {
			continue
		}
		if !slices.Contains(QuestObjects(data.Quest), id) {
			t.Errorf("object %d has quest %d but is missing from QuestObjects", id, data.Quest)
		}
	}
}

func TestObjectsForLevel(t *testing.T) {
	cathedral := ObjectsForLevel(3, LevelCathedral)
	if !slices.Contains(cathedral, ObjChest1) {
		t.Error("chest missing from cathedral level 3")
	}
	if !slices.Contains(cathedral, ObjBarrel) {
		t.Error("barrel missing from cathedral level 3")
	}
	if slices.Contains(cathedral, ObjSarcophagus) {
		t.Error("catacombs sarcophagus spawned in the cathedral")
	}
	if slices.Contains(cathedral, ObjBannerMiddle) {
		t.Error("quest banner spawned organically")
	}

	for _, id := range ObjectsForLevel(14, LevelCrypt) {
		data := AllObjects[id]
		if data.Level != LevelAny && data.Level != LevelCrypt {
			t.Errorf("object %d with tileset %d spawned in the crypt", id, data.Level)
		}
		if 14 < data.MinLevel || 14 > data.MaxLevel {
			t.Errorf("object %d with range [%d,%d] spawned on level 14", id, data.MinLevel, data.MaxLevel)
		}
	}
}

func TestThemePlacedObjectsDoNotSpawnOrganically(t *testing.T) {
	// Fountains and shrine-room fixtures have no level range; they must
	// never appear in the organic spawn list.
	for lvl := int8(1); lvl <= 16; lvl++ {
		for _, tileset := range []LevelType{LevelCathedral, LevelCatacombs, LevelCaves, LevelHell, LevelNest, LevelCrypt} {
			for _, id := range ObjectsForLevel(lvl, tileset) {
				if id == ObjBloodFountain || id == ObjGoatShrine {
					t.Fatalf("theme-only object %d spawned on level %d tileset %d", id, lvl, tileset)
				}
			}
		}
	}
}

func TestFlagPredicates(t *testing.T) {
	brazier := AllObjects[ObjL1Light]
	if !brazier.IsAnimated() || !brazier.EmitsLight() || !brazier.MissilesPass() {
		t.Error("brazier should animate, emit light, and pass missiles")
	}
	if brazier.IsSolid() {
		t.Error("brazier should not block movement")
	}

	barrel := AllObjects[ObjBarrel]
	if !barrel.IsBreakable() || !barrel.IsSolid() {
		t.Error("barrel should be solid and breakable")
	}

	door := AllObjects[ObjL1DoorLeft]
	if !door.IsTrap() {
		t.Error("cathedral door should accept traps")
	}
}
