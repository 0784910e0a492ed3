// SPDX-License-Identifier: MPL-2.0

package objdat

// graphicFiles maps each graphic to its sprite file base name under
// "object_gfx". The index order is the master load order.
var graphicFiles = [GfxLast + 1]string{
	GfxL1Brazier:         "l1braz",
	GfxL1Doors:           "l1doors",
	GfxLever:             "lever",
	GfxChest1:            "chest1",
	GfxChest2:            "chest2",
	GfxBanner:            "banner",
	GfxSkullPile:         "skulpile",
	GfxSkullFire:         "skulfire",
	GfxSkullStick:        "skulstik",
	GfxCruxSkeleton1:     "cruxsk1",
	GfxCruxSkeleton2:     "cruxsk2",
	GfxCruxSkeleton3:     "cruxsk3",
	GfxBook1:             "book1",
	GfxBook2:             "book2",
	GfxRockStand:         "rockstan",
	GfxAngel:             "angel",
	GfxChest3:            "chest3",
	GfxBurningCross:      "burncros",
	GfxCandle:            "candle2",
	GfxNude:              "nude2",
	GfxSwitch:            "switch4",
	GfxTorturedMale:      "tnudem",
	GfxTorturedFemale:    "tnudew",
	GfxTorturedSoul:      "tsoul",
	GfxL2Doors:           "l2doors",
	GfxWallTorch4:        "wtorch4",
	GfxWallTorch3:        "wtorch3",
	GfxSarcophagus:       "sarc",
	GfxFlame:             "flame1",
	GfxPressurePlate:     "prsrplt1",
	GfxTrapHole:          "traphole",
	GfxMiniWater:         "miniwatr",
	GfxWallTorch2:        "wtorch2",
	GfxWallTorch1:        "wtorch1",
	GfxBookcase:          "bcase",
	GfxBookshelf:         "bshelf",
	GfxWeaponStand:       "weapstnd",
	GfxBarrel:            "barrel",
	GfxBarrelExploding:   "barrelex",
	GfxLeftShrine:        "lshrineg",
	GfxRightShrine:       "rshrineg",
	GfxBloodFountain:     "bloodfnt",
	GfxDecapitated:       "decap",
	GfxPedestal:          "pedistl",
	GfxL3Doors:           "l3doors",
	GfxPurifyingFountain: "pfountn",
	GfxArmorStand:        "armstand",
	GfxGoatShrine:        "goatshrn",
	GfxCauldron:          "cauldren",
	GfxMurkyFountain:     "mfountn",
	GfxTearFountain:      "tfountn",
	GfxAltarBoy:          "altboy",
	GfxMagicCircle:       "mcirl",
	GfxBurntBookSlab:     "bkslbrnt",
	GfxMushroomPatch:     "mushptch",
	GfxLazarusStand:      "lzstand",
	GfxPod:               "pod",
	GfxPodExploding:      "podex",
	GfxL5Doors:           "l5doors",
	GfxL5Lever:           "l5lever",
	GfxL5Candle:          "l5candle",
	GfxL5Sarcophagus:     "l5sarc",
	GfxUrn:               "urn",
	GfxUrnExploding:      "urnex",
	GfxL5Books:           "l5books",
}

// GraphicFile returns the sprite file base name for a graphic, or "" for
// GfxNone.
func GraphicFile(g GraphicID) string {
	if g < 0 || int(g) >= len(graphicFiles) {
		return ""
	}
	return graphicFiles[g]
}

// MasterLoadList returns the sprite file names in load order.
func MasterLoadList() []string {
	out := make([]string, len(graphicFiles))
	copy(out, graphicFiles[:])
	return out
}

// AllObjects is the static object table, indexed by ObjectID.
var AllObjects = map[ObjectID]ObjectData{
	ObjL1Light: {
		Graphic: GfxL1Brazier, Level: LevelCathedral,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagAnimated | FlagMissilesPass | FlagLight,
		AnimDelay: 1, AnimLen: 26, AnimWidth: 64,
	},
	ObjL1DoorLeft: {
		Graphic: GfxL1Doors, MinLevel: 1, MaxLevel: 4, Level: LevelCathedral,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagSolid | FlagTrap,
		AnimDelay: 1, AnimLen: 1, AnimWidth: 64, Selectable: 3,
	},
	ObjL1DoorRight: {
		Graphic: GfxL1Doors, MinLevel: 1, MaxLevel: 4, Level: LevelCathedral,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagSolid | FlagTrap,
		AnimDelay: 2, AnimLen: 1, AnimWidth: 64, Selectable: 3,
	},
	ObjSkullFire: {
		Graphic: GfxSkullFire, Level: LevelCathedral,
		Theme: ThemeSkeletonRoom, Quest: QuestNone,
		Flags:     FlagAnimated | FlagSolid | FlagLight,
		AnimDelay: 2, AnimLen: 11, AnimWidth: 96,
	},
	ObjLever: {
		Graphic: GfxLever, MinLevel: 1, MaxLevel: 4, Level: LevelCathedral,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagSolid,
		AnimDelay: 1, AnimLen: 1, AnimWidth: 96, Selectable: 1,
	},
	ObjChest1: {
		Graphic: GfxChest1, MinLevel: 1, MaxLevel: 6,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagSolid | FlagTrap,
		AnimDelay: 1, AnimLen: 1, AnimWidth: 96, Selectable: 1,
	},
	ObjChest2: {
		Graphic: GfxChest2, MinLevel: 1, MaxLevel: 6,
		Theme: ThemeTreasure, Quest: QuestNone,
		Flags:     FlagSolid | FlagTrap,
		AnimDelay: 1, AnimLen: 1, AnimWidth: 96, Selectable: 1,
	},
	ObjChest3: {
		Graphic: GfxChest3, MinLevel: 1, MaxLevel: 6,
		Theme: ThemeTreasure, Quest: QuestNone,
		Flags:     FlagSolid | FlagTrap,
		AnimDelay: 1, AnimLen: 1, AnimWidth: 96, Selectable: 1,
	},
	ObjCandle: {
		Graphic: GfxCandle, MinLevel: 2, MaxLevel: 6, Level: LevelCathedral,
		Theme: ThemeShrine, Quest: QuestNone,
		Flags:     FlagAnimated | FlagSolid | FlagLight,
		AnimDelay: 2, AnimLen: 4, AnimWidth: 96,
	},
	ObjBannerLeft: {
		Graphic: GfxBanner, Level: LevelCathedral,
		Theme: ThemeNone, Quest: QuestBanner,
		Flags:     FlagSolid,
		AnimDelay: 2, AnimLen: 1, AnimWidth: 96,
	},
	ObjBannerMiddle: {
		Graphic: GfxBanner, Level: LevelCathedral,
		Theme: ThemeNone, Quest: QuestBanner,
		Flags:     FlagSolid,
		AnimDelay: 1, AnimLen: 1, AnimWidth: 96, Selectable: 1,
	},
	ObjBannerRight: {
		Graphic: GfxBanner, Level: LevelCathedral,
		Theme: ThemeNone, Quest: QuestBanner,
		Flags:     FlagSolid,
		AnimDelay: 3, AnimLen: 1, AnimWidth: 96,
	},
	ObjSkullPile: {
		Graphic: GfxSkullPile, Level: LevelCathedral,
		Theme: ThemeSkeletonRoom, Quest: QuestNone,
		Flags:     FlagSolid,
		AnimDelay: 1, AnimLen: 1, AnimWidth: 96,
	},
	ObjCruxSkeleton1: {
		Graphic: GfxCruxSkeleton1, Level: LevelCathedral,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagSolid | FlagBreakable,
		AnimDelay: 1, AnimLen: 15, AnimWidth: 96, Selectable: 3,
	},
	ObjCruxSkeleton2: {
		Graphic: GfxCruxSkeleton2, Level: LevelCathedral,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagSolid | FlagBreakable,
		AnimDelay: 1, AnimLen: 15, AnimWidth: 96, Selectable: 3,
	},
	ObjCruxSkeleton3: {
		Graphic: GfxCruxSkeleton3, Level: LevelCathedral,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagSolid | FlagBreakable,
		AnimDelay: 1, AnimLen: 15, AnimWidth: 96, Selectable: 3,
	},
	ObjAngelStand: {
		Graphic: GfxAngel, Level: LevelCathedral,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagSolid,
		AnimDelay: 1, AnimLen: 1, AnimWidth: 96,
	},
	ObjBookLectern: {
		Graphic: GfxBook2, MinLevel: 2, MaxLevel: 6,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagSolid,
		AnimDelay: 4, AnimLen: 1, AnimWidth: 96, Selectable: 3,
	},
	ObjBurningCross: {
		Graphic: GfxBurningCross, Level: LevelCathedral,
		Theme: ThemeBurningCross, Quest: QuestNone,
		Flags:     FlagAnimated | FlagSolid | FlagLight,
		AnimDelay: 1, AnimLen: 10, AnimWidth: 160,
	},
	ObjSkullSwitch: {
		Graphic: GfxSwitch, MinLevel: 9, MaxLevel: 12, Level: LevelCaves,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagSolid,
		AnimDelay: 1, AnimLen: 1, AnimWidth: 96, Selectable: 1,
	},
	ObjL2DoorLeft: {
		Graphic: GfxL2Doors, MinLevel: 5, MaxLevel: 8, Level: LevelCatacombs,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagSolid | FlagTrap,
		AnimDelay: 1, AnimLen: 1, AnimWidth: 64, Selectable: 3,
	},
	ObjL2DoorRight: {
		Graphic: GfxL2Doors, MinLevel: 5, MaxLevel: 8, Level: LevelCatacombs,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagSolid | FlagTrap,
		AnimDelay: 2, AnimLen: 1, AnimWidth: 64, Selectable: 3,
	},
	ObjWallTorchLeft: {
		Graphic: GfxWallTorch1, MinLevel: 5, MaxLevel: 8, Level: LevelCatacombs,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagAnimated | FlagMissilesPass | FlagLight,
		AnimDelay: 1, AnimLen: 9, AnimWidth: 96,
	},
	ObjWallTorchRight: {
		Graphic: GfxWallTorch2, MinLevel: 5, MaxLevel: 8, Level: LevelCatacombs,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagAnimated | FlagMissilesPass | FlagLight,
		AnimDelay: 1, AnimLen: 9, AnimWidth: 96,
	},
	ObjSarcophagus: {
		Graphic: GfxSarcophagus, MinLevel: 5, MaxLevel: 8, Level: LevelCatacombs,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagSolid | FlagTrap,
		AnimDelay: 3, AnimLen: 5, AnimWidth: 128, Selectable: 3,
	},
	ObjFlameHole: {
		Graphic: GfxFlame, MinLevel: 5, MaxLevel: 8, Level: LevelCatacombs,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagMissilesPass,
		AnimDelay: 1, AnimLen: 20, AnimWidth: 96,
	},
	ObjTrapLeft: {
		Graphic: GfxTrapHole, MinLevel: 5, MaxLevel: 8,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagMissilesPass | FlagTrap,
		AnimDelay: 1, AnimLen: 1, AnimWidth: 64,
	},
	ObjTrapRight: {
		Graphic: GfxTrapHole, MinLevel: 5, MaxLevel: 8,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagMissilesPass | FlagTrap,
		AnimDelay: 2, AnimLen: 1, AnimWidth: 64,
	},
	ObjBookshelf: {
		Graphic: GfxBookshelf, MinLevel: 5, MaxLevel: 8,
		Theme: ThemeLibrary, Quest: QuestNone,
		Flags:     FlagSolid,
		AnimDelay: 1, AnimLen: 1, AnimWidth: 96,
	},
	ObjBarrel: {
		Graphic: GfxBarrel, MinLevel: 1, MaxLevel: 15,
		Theme: ThemeBarrel, Quest: QuestNone,
		Flags:     FlagSolid | FlagBreakable,
		AnimDelay: 1, AnimLen: 9, AnimWidth: 96, Selectable: 1,
	},
	ObjBarrelExploding: {
		Graphic: GfxBarrelExploding, MinLevel: 1, MaxLevel: 15,
		Theme: ThemeBarrel, Quest: QuestNone,
		Flags:     FlagSolid | FlagBreakable,
		AnimDelay: 1, AnimLen: 10, AnimWidth: 96, Selectable: 1,
	},
	ObjShrineLeft: {
		Graphic: GfxLeftShrine, MinLevel: 1, MaxLevel: 15,
		Theme: ThemeShrine, Quest: QuestNone,
		Flags:     FlagSolid,
		AnimDelay: 1, AnimLen: 11, AnimWidth: 128, Selectable: 3,
	},
	ObjShrineRight: {
		Graphic: GfxRightShrine, MinLevel: 1, MaxLevel: 15,
		Theme: ThemeShrine, Quest: QuestNone,
		Flags:     FlagSolid,
		AnimDelay: 1, AnimLen: 11, AnimWidth: 128, Selectable: 3,
	},
	ObjBloodFountain: {
		Graphic: GfxBloodFountain,
		Theme:   ThemeBloodFountain, Quest: QuestNone,
		Flags:     FlagAnimated | FlagSolid,
		AnimDelay: 2, AnimLen: 10, AnimWidth: 96, Selectable: 3,
	},
	ObjDecapitated: {
		Graphic: GfxDecapitated,
		Theme:   ThemeDecapitated, Quest: QuestNone,
		Flags:     FlagSolid,
		AnimDelay: 1, AnimLen: 1, AnimWidth: 96, Selectable: 1,
	},
	ObjBlindBook: {
		Graphic: GfxBook1, Level: LevelCatacombs,
		Theme: ThemeNone, Quest: QuestBlind,
		Flags:     FlagSolid,
		AnimDelay: 1, AnimLen: 1, AnimWidth: 96, Selectable: 3,
	},
	ObjBloodBook: {
		Graphic: GfxBook1, Level: LevelCatacombs,
		Theme: ThemeNone, Quest: QuestBlood,
		Flags:     FlagSolid,
		AnimDelay: 4, AnimLen: 1, AnimWidth: 96, Selectable: 3,
	},
	ObjPedestal: {
		Graphic: GfxPedestal, Level: LevelCatacombs,
		Theme: ThemeNone, Quest: QuestBlood,
		Flags:     FlagSolid,
		AnimDelay: 1, AnimLen: 1, AnimWidth: 96, Selectable: 3,
	},
	ObjL3DoorLeft: {
		Graphic: GfxL3Doors, MinLevel: 9, MaxLevel: 12, Level: LevelCaves,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagSolid | FlagTrap,
		AnimDelay: 1, AnimLen: 2, AnimWidth: 64, Selectable: 3,
	},
	ObjL3DoorRight: {
		Graphic: GfxL3Doors, MinLevel: 9, MaxLevel: 12, Level: LevelCaves,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagSolid | FlagTrap,
		AnimDelay: 2, AnimLen: 2, AnimWidth: 64, Selectable: 3,
	},
	ObjPurifyingFountain: {
		Graphic: GfxPurifyingFountain,
		Theme:   ThemePurifyingFountain, Quest: QuestNone,
		Flags:     FlagAnimated | FlagSolid,
		AnimDelay: 2, AnimLen: 10, AnimWidth: 128, Selectable: 3,
	},
	ObjArmorStand: {
		Graphic: GfxArmorStand, MinLevel: 5, MaxLevel: 8,
		Theme: ThemeArmorStand, Quest: QuestNone,
		Flags:     FlagSolid,
		AnimDelay: 1, AnimLen: 1, AnimWidth: 96, Selectable: 1,
	},
	ObjGoatShrine: {
		Graphic: GfxGoatShrine,
		Theme:   ThemeGoatShrine, Quest: QuestNone,
		Flags:     FlagAnimated | FlagSolid,
		AnimDelay: 2, AnimLen: 10, AnimWidth: 96, Selectable: 3,
	},
	ObjCauldron: {
		Graphic: GfxCauldron, Level: LevelHell,
		Theme: ThemeCauldron, Quest: QuestNone,
		Flags:     FlagSolid,
		AnimDelay: 1, AnimLen: 1, AnimWidth: 96, Selectable: 3,
	},
	ObjMurkyFountain: {
		Graphic: GfxMurkyFountain,
		Theme:   ThemeMurkyFountain, Quest: QuestNone,
		Flags:     FlagAnimated | FlagSolid,
		AnimDelay: 2, AnimLen: 10, AnimWidth: 128, Selectable: 3,
	},
	ObjTearFountain: {
		Graphic: GfxTearFountain,
		Theme:   ThemeTearFountain, Quest: QuestNone,
		Flags:     FlagAnimated | FlagSolid,
		AnimDelay: 2, AnimLen: 4, AnimWidth: 96, Selectable: 3,
	},
	ObjMushroomPatch: {
		Graphic: GfxMushroomPatch, Level: LevelCaves,
		Theme: ThemeNone, Quest: QuestMushroom,
		Flags:     FlagSolid,
		AnimDelay: 1, AnimLen: 1, AnimWidth: 96, Selectable: 3,
	},
	ObjLazarusStand: {
		Graphic: GfxLazarusStand, Level: LevelHell,
		Theme: ThemeNone, Quest: QuestBetrayer,
		Flags:     FlagSolid,
		AnimDelay: 1, AnimLen: 1, AnimWidth: 128, Selectable: 1,
	},
	ObjPod: {
		Graphic: GfxPod, MinLevel: 1, MaxLevel: 15, Level: LevelNest,
		Theme: ThemeBarrel, Quest: QuestNone,
		Flags:     FlagSolid | FlagBreakable,
		AnimDelay: 1, AnimLen: 9, AnimWidth: 96, Selectable: 1,
	},
	ObjPodExploding: {
		Graphic: GfxPodExploding, MinLevel: 1, MaxLevel: 15, Level: LevelNest,
		Theme: ThemeBarrel, Quest: QuestNone,
		Flags:     FlagSolid | FlagBreakable,
		AnimDelay: 1, AnimLen: 10, AnimWidth: 96, Selectable: 1,
	},
	ObjUrn: {
		Graphic: GfxUrn, MinLevel: 1, MaxLevel: 15, Level: LevelCrypt,
		Theme: ThemeBarrel, Quest: QuestNone,
		Flags:     FlagSolid | FlagBreakable,
		AnimDelay: 1, AnimLen: 9, AnimWidth: 96, Selectable: 1,
	},
	ObjUrnExploding: {
		Graphic: GfxUrnExploding, MinLevel: 1, MaxLevel: 15, Level: LevelCrypt,
		Theme: ThemeBarrel, Quest: QuestNone,
		Flags:     FlagSolid | FlagBreakable,
		AnimDelay: 1, AnimLen: 10, AnimWidth: 96, Selectable: 1,
	},
	ObjL5DoorLeft: {
		Graphic: GfxL5Doors, MinLevel: 13, MaxLevel: 16, Level: LevelCrypt,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagSolid | FlagTrap,
		AnimDelay: 1, AnimLen: 2, AnimWidth: 64, Selectable: 3,
	},
	ObjL5DoorRight: {
		Graphic: GfxL5Doors, MinLevel: 13, MaxLevel: 16, Level: LevelCrypt,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagSolid | FlagTrap,
		AnimDelay: 2, AnimLen: 2, AnimWidth: 64, Selectable: 3,
	},
	ObjL5Lever: {
		Graphic: GfxL5Lever, MinLevel: 13, MaxLevel: 16, Level: LevelCrypt,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagSolid,
		AnimDelay: 1, AnimLen: 1, AnimWidth: 96, Selectable: 1,
	},
	ObjL5Sarcophagus: {
		Graphic: GfxL5Sarcophagus, MinLevel: 13, MaxLevel: 16, Level: LevelCrypt,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagSolid | FlagTrap,
		AnimDelay: 3, AnimLen: 5, AnimWidth: 128, Selectable: 3,
	},
	ObjL5Candle: {
		Graphic: GfxL5Candle, MinLevel: 13, MaxLevel: 16, Level: LevelCrypt,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagAnimated | FlagSolid | FlagLight,
		AnimDelay: 2, AnimLen: 4, AnimWidth: 96,
	},
	ObjL5Books: {
		Graphic: GfxL5Books, MinLevel: 13, MaxLevel: 16, Level: LevelCrypt,
		Theme: ThemeNone, Quest: QuestNone,
		Flags:     FlagSolid,
		AnimDelay: 4, AnimLen: 1, AnimWidth: 96, Selectable: 3,
	},
}

// ObjectsForLevel returns the identifiers of objects that may spawn
// organically on the given dungeon level and tileset, excluding quest- and
// theme-only placements.
func ObjectsForLevel(level int8, tileset LevelType) []ObjectID {
	var out []ObjectID
	for id, data := range AllObjects {
		if data.MinLevel == 0 && data.MaxLevel == 0 {
			continue
		}
		if level < data.MinLevel || level > data.MaxLevel {
			continue
		}
		if data.Level != LevelAny && data.Level != tileset {
			continue
		}
		if data.Quest != QuestNone {
			continue
		}
		out = append(out, id)
	}
	return out
}

// ThemeObjects returns the identifiers of objects placed by the given themed
// room.
func ThemeObjects(theme ThemeID) []ObjectID {
	var out []ObjectID
	for id, data := range AllObjects {
		if data.Theme == theme {
			out = append(out, id)
		}
	}
	return out
}

// QuestObjects returns the identifiers of objects tied to the given quest.
func QuestObjects(quest QuestID) []ObjectID {
	var out []ObjectID
	for id, data := range AllObjects {
		if data.Quest == quest {
			out = append(out, id)
		}
	}
	return out
}
