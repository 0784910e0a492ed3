// SPDX-License-Identifier: MPL-2.0

// Package objdat holds the static tables describing interactive dungeon
// objects: which graphic and animation each object uses, which dungeon
// levels and themes it may spawn in, which quest it belongs to, and how it
// interacts with movement, missiles, light, and traps. The tables are plain
// configuration consumed by level generation and rendering; no simulation
// logic lives here.
package objdat

// ThemeID identifies a themed room an object can belong to.
type ThemeID int8

// Themed room identifiers.
const (
	ThemeBarrel ThemeID = iota
	ThemeShrine
	ThemeMonsterPit
	ThemeSkeletonRoom
	ThemeTreasure
	ThemeLibrary
	ThemeTorture
	ThemeBloodFountain
	ThemeDecapitated
	ThemePurifyingFountain
	ThemeArmorStand
	ThemeGoatShrine
	ThemeCauldron
	ThemeMurkyFountain
	ThemeTearFountain
	ThemeBurningCross
	ThemeWeaponRack

	ThemeNone ThemeID = -1
)

// GraphicID indexes the object sprite sheets.
type GraphicID int8

// Object graphic identifiers. The order matches the master load list.
const (
	GfxL1Brazier GraphicID = iota
	GfxL1Doors
	GfxLever
	GfxChest1
	GfxChest2
	GfxBanner
	GfxSkullPile
	GfxSkullFire
	GfxSkullStick
	GfxCruxSkeleton1
	GfxCruxSkeleton2
	GfxCruxSkeleton3
	GfxBook1
	GfxBook2
	GfxRockStand
	GfxAngel
	GfxChest3
	GfxBurningCross
	GfxCandle
	GfxNude
	GfxSwitch
	GfxTorturedMale
	GfxTorturedFemale
	GfxTorturedSoul
	GfxL2Doors
	GfxWallTorch4
	GfxWallTorch3
	GfxSarcophagus
	GfxFlame
	GfxPressurePlate
	GfxTrapHole
	GfxMiniWater
	GfxWallTorch2
	GfxWallTorch1
	GfxBookcase
	GfxBookshelf
	GfxWeaponStand
	GfxBarrel
	GfxBarrelExploding
	GfxLeftShrine
	GfxRightShrine
	GfxBloodFountain
	GfxDecapitated
	GfxPedestal
	GfxL3Doors
	GfxPurifyingFountain
	GfxArmorStand
	GfxGoatShrine
	GfxCauldron
	GfxMurkyFountain
	GfxTearFountain
	GfxAltarBoy
	GfxMagicCircle
	GfxBurntBookSlab
	GfxMushroomPatch
	GfxLazarusStand
	GfxPod
	GfxPodExploding
	GfxL5Doors
	GfxL5Lever
	GfxL5Candle
	GfxL5Sarcophagus
	GfxUrn
	GfxUrnExploding
	GfxL5Books

	GfxLast = GfxL5Books
	GfxNone GraphicID = -1
)

// ObjectID identifies an interactive dungeon object type.
type ObjectID int8

// Object identifiers.
const (
	ObjL1Light ObjectID = iota
	ObjL1DoorLeft
	ObjL1DoorRight
	ObjSkullFire
	ObjLever
	ObjChest1
	ObjChest2
	ObjChest3
	ObjCandle
	ObjBannerLeft
	ObjBannerMiddle
	ObjBannerRight
	ObjSkullPile
	ObjCruxSkeleton1
	ObjCruxSkeleton2
	ObjCruxSkeleton3
	ObjAngelStand
	ObjBookLectern
	ObjBurningCross
	ObjTorturedNude
	ObjSkullSwitch
	ObjL2DoorLeft
	ObjL2DoorRight
	ObjWallTorchLeft
	ObjWallTorchRight
	ObjSarcophagus
	ObjFlameHole
	ObjFlameLever
	ObjWater
	ObjBookLever
	ObjTrapLeft
	ObjTrapRight
	ObjBookshelf
	ObjWeaponRackStand
	ObjBarrel
	ObjBarrelExploding
	ObjShrineLeft
	ObjShrineRight
	ObjSkeletonBook
	ObjBloodFountain
	ObjDecapitated
	ObjTreasureChest1
	ObjTreasureChest2
	ObjTreasureChest3
	ObjBlindBook
	ObjBloodBook
	ObjPedestal
	ObjL3DoorLeft
	ObjL3DoorRight
	ObjPurifyingFountain
	ObjArmorStand
	ObjGoatShrine
	ObjCauldron
	ObjMurkyFountain
	ObjTearFountain
	ObjAltarBoy
	ObjMagicCircle
	ObjStoryBook
	ObjStoryCandle
	ObjWarArmorStand
	ObjWarWeaponRack
	ObjMushroomPatch
	ObjLazarusStand
	ObjSlainHero
	ObjPod
	ObjPodExploding
	ObjUrn
	ObjUrnExploding
	ObjL5Books
	ObjL5Candle
	ObjL5DoorLeft
	ObjL5DoorRight
	ObjL5Lever
	ObjL5Sarcophagus

	ObjNone ObjectID = -1
)

// QuestID links an object to the quest that spawns it.
type QuestID int8

// Quest identifiers.
const (
	QuestRock QuestID = iota
	QuestMushroom
	QuestGarbud
	QuestZhar
	QuestVeil
	QuestDiablo
	QuestButcher
	QuestBanner
	QuestBlind
	QuestBlood
	QuestAnvil
	QuestWarlord
	QuestSkeletonKing
	QuestPoisonWater
	QuestBoneChamber
	QuestBetrayer
	QuestGrave
	QuestFarmer
	QuestGirl
	QuestTrader
	QuestDefiler
	QuestNaKrul
	QuestCornerstone
	QuestJersey

	QuestNone QuestID = -1
)

// LevelType identifies a dungeon tileset.
type LevelType int8

// Dungeon tileset identifiers.
const (
	LevelAny LevelType = iota // spawnable in every tileset
	LevelCathedral
	LevelCatacombs
	LevelCaves
	LevelHell
	LevelNest
	LevelCrypt
)

// Flag describes an object's interaction properties.
type Flag uint8

// Object flags.
const (
	FlagAnimated Flag = 1 << iota
	FlagSolid
	FlagMissilesPass
	FlagLight
	FlagTrap
	FlagBreakable
)

// ObjectData is one row of the static object table.
type ObjectData struct {
	// Graphic selects the sprite sheet.
	Graphic GraphicID
	// MinLevel and MaxLevel bound the dungeon levels the object spawns on;
	// zero on both means quest- or theme-placed only.
	MinLevel int8
	MaxLevel int8
	// Level restricts the object to one tileset.
	Level LevelType
	// Theme places the object in a themed room, or ThemeNone.
	Theme ThemeID
	// Quest ties the object to a quest, or QuestNone.
	Quest QuestID
	// Flags are the interaction properties.
	Flags Flag
	// AnimDelay is the tick length of each animation frame.
	AnimDelay uint8
	// AnimLen is the number of frames in the animation.
	AnimLen uint8
	// AnimWidth is the sprite width in pixels.
	AnimWidth uint8
	// Selectable marks the cursor regions that can target the object.
	Selectable int8
}

// IsAnimated reports whether the object cycles its animation.
func (o ObjectData) IsAnimated() bool { return o.Flags&FlagAnimated != 0 }

// IsSolid reports whether the object blocks movement.
func (o ObjectData) IsSolid() bool { return o.Flags&FlagSolid != 0 }

// MissilesPass reports whether missiles fly through the object.
func (o ObjectData) MissilesPass() bool { return o.Flags&FlagMissilesPass != 0 }

// EmitsLight reports whether the object emits light.
func (o ObjectData) EmitsLight() bool { return o.Flags&FlagLight != 0 }

// IsTrap reports whether the object can be trapped.
func (o ObjectData) IsTrap() bool { return o.Flags&FlagTrap != 0 }

// IsBreakable reports whether the object can be destroyed.
func (o ObjectData) IsBreakable() bool { return o.Flags&FlagBreakable != 0 }
