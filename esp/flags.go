package esp

import (
	"fmt"
	"strings"
)

type flagName struct {
	bit  uint32
	name string
}

// formatFlags renders set bits as "A | B". Bits without a name are rendered
// as a hexadecimal remainder so that no information is lost.
func formatFlags(v uint32, names []flagName) string {
	if v == 0 {
		return "NONE"
	}

	parts := make([]string, 0, 4)
	rest := v
	for _, n := range names {
		if v&n.bit == n.bit {
			parts = append(parts, n.name)
			rest &^= n.bit
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("%#x", rest))
	}

	return strings.Join(parts, " | ")
}

// ObjectFlags are the record-level flags stored in every record header.
type ObjectFlags uint32

const (
	ObjectModified   ObjectFlags = 0x0002
	ObjectDeleted    ObjectFlags = 0x0020
	ObjectPersistent ObjectFlags = 0x0400
	ObjectIgnored    ObjectFlags = 0x1000
	ObjectBlocked    ObjectFlags = 0x2000
)

var objectFlagNames = []flagName{
	{0x0002, "MODIFIED"},
	{0x0020, "DELETED"},
	{0x0400, "PERSISTENT"},
	{0x1000, "IGNORED"},
	{0x2000, "BLOCKED"},
}

func (f ObjectFlags) String() string { return formatFlags(uint32(f), objectFlagNames) }

// Has reports whether every bit of mask is set.
func (f ObjectFlags) Has(mask ObjectFlags) bool { return f&mask == mask }

// ServiceFlags lists the services an actor or class offers.
type ServiceFlags uint32

const (
	ServiceBuysWeapons        ServiceFlags = 0x00001
	ServiceBuysArmor          ServiceFlags = 0x00002
	ServiceBuysClothing       ServiceFlags = 0x00004
	ServiceBuysBooks          ServiceFlags = 0x00008
	ServiceBuysIngredients    ServiceFlags = 0x00010
	ServiceBuysPicks          ServiceFlags = 0x00020
	ServiceBuysProbes         ServiceFlags = 0x00040
	ServiceBuysLights         ServiceFlags = 0x00080
	ServiceBuysApparatus      ServiceFlags = 0x00100
	ServiceBuysRepairItems    ServiceFlags = 0x00200
	ServiceBuysMiscItems      ServiceFlags = 0x00400
	ServiceOffersSpells       ServiceFlags = 0x00800
	ServiceBuysEnchantedItems ServiceFlags = 0x01000
	ServiceBuysPotions        ServiceFlags = 0x02000
	ServiceOffersTraining     ServiceFlags = 0x04000
	ServiceOffersSpellmaking  ServiceFlags = 0x08000
	ServiceOffersEnchanting   ServiceFlags = 0x10000
	ServiceOffersRepairs      ServiceFlags = 0x20000
)

var serviceFlagNames = []flagName{
	{0x00001, "BUYS_WEAPONS"},
	{0x00002, "BUYS_ARMOR"},
	{0x00004, "BUYS_CLOTHING"},
	{0x00008, "BUYS_BOOKS"},
	{0x00010, "BUYS_INGREDIENTS"},
	{0x00020, "BUYS_PICKS"},
	{0x00040, "BUYS_PROBES"},
	{0x00080, "BUYS_LIGHTS"},
	{0x00100, "BUYS_APPARATUS"},
	{0x00200, "BUYS_REPAIR_ITEMS"},
	{0x00400, "BUYS_MISC_ITEMS"},
	{0x00800, "OFFERS_SPELLS"},
	{0x01000, "BUYS_ENCHANTED_ITEMS"},
	{0x02000, "BUYS_POTIONS"},
	{0x04000, "OFFERS_TRAINING"},
	{0x08000, "OFFERS_SPELLMAKING"},
	{0x10000, "OFFERS_ENCHANTING"},
	{0x20000, "OFFERS_REPAIRS"},
}

func (f ServiceFlags) String() string { return formatFlags(uint32(f), serviceFlagNames) }

type ClassFlags uint32

const ClassPlayable ClassFlags = 0x1

func (f ClassFlags) String() string { return formatFlags(uint32(f), []flagName{{0x1, "PLAYABLE"}}) }

type FactionFlags uint32

const FactionHiddenFromPlayer FactionFlags = 0x1

func (f FactionFlags) String() string {
	return formatFlags(uint32(f), []flagName{{0x1, "HIDDEN_FROM_PLAYER"}})
}

type RaceFlags uint32

const (
	RacePlayable RaceFlags = 0x1
	RaceBeast    RaceFlags = 0x2
)

func (f RaceFlags) String() string {
	return formatFlags(uint32(f), []flagName{{0x1, "PLAYABLE"}, {0x2, "BEAST_RACE"}})
}

type ContainerFlags uint32

const (
	ContainerOrganic  ContainerFlags = 0x1
	ContainerRespawns ContainerFlags = 0x2
	ContainerDefault  ContainerFlags = 0x8
)

func (f ContainerFlags) String() string {
	return formatFlags(uint32(f), []flagName{{0x1, "ORGANIC"}, {0x2, "RESPAWNS"}, {0x8, "DEFAULT"}})
}

// bloodTypeShift and bloodTypeMask locate the blood type packed into actor flags.
const (
	bloodTypeShift = 10
	bloodTypeMask  = 0b111 << bloodTypeShift
)

func unpackActorFlags(v uint32) (uint32, uint8) {
	return v &^ bloodTypeMask, uint8((v & bloodTypeMask) >> bloodTypeShift)
}

func packActorFlags(flags uint32, blood uint8) uint32 {
	return (flags &^ bloodTypeMask) | (uint32(blood&0b111) << bloodTypeShift)
}

type CreatureFlags uint32

const (
	CreatureBiped           CreatureFlags = 0x01
	CreatureRespawn         CreatureFlags = 0x02
	CreatureWeaponAndShield CreatureFlags = 0x04
	CreatureIsBase          CreatureFlags = 0x08
	CreatureSwims           CreatureFlags = 0x10
	CreatureFlies           CreatureFlags = 0x20
	CreatureWalks           CreatureFlags = 0x40
	CreatureEssential       CreatureFlags = 0x80
)

var creatureFlagNames = []flagName{
	{0x01, "BIPED"},
	{0x02, "RESPAWN"},
	{0x04, "WEAPON_AND_SHIELD"},
	{0x08, "IS_BASE"},
	{0x10, "SWIMS"},
	{0x20, "FLIES"},
	{0x40, "WALKS"},
	{0x80, "ESSENTIAL"},
}

func (f CreatureFlags) String() string { return formatFlags(uint32(f), creatureFlagNames) }

type NpcFlags uint32

const (
	NpcFemale    NpcFlags = 0x01
	NpcEssential NpcFlags = 0x02
	NpcRespawn   NpcFlags = 0x04
	NpcIsBase    NpcFlags = 0x08
	NpcAutoCalc  NpcFlags = 0x10
)

var npcFlagNames = []flagName{
	{0x01, "FEMALE"},
	{0x02, "ESSENTIAL"},
	{0x04, "RESPAWN"},
	{0x08, "IS_BASE"},
	{0x10, "AUTO_CALCULATE"},
}

func (f NpcFlags) String() string { return formatFlags(uint32(f), npcFlagNames) }

type LightFlags uint32

const (
	LightDynamic      LightFlags = 0x001
	LightCanCarry     LightFlags = 0x002
	LightNegative     LightFlags = 0x004
	LightFlicker      LightFlags = 0x008
	LightFire         LightFlags = 0x010
	LightOffByDefault LightFlags = 0x020
	LightFlickerSlow  LightFlags = 0x040
	LightPulse        LightFlags = 0x080
	LightPulseSlow    LightFlags = 0x100
)

var lightFlagNames = []flagName{
	{0x001, "DYNAMIC"},
	{0x002, "CAN_CARRY"},
	{0x004, "NEGATIVE"},
	{0x008, "FLICKER"},
	{0x010, "FIRE"},
	{0x020, "OFF_BY_DEFAULT"},
	{0x040, "FLICKER_SLOW"},
	{0x080, "PULSE"},
	{0x100, "PULSE_SLOW"},
}

func (f LightFlags) String() string { return formatFlags(uint32(f), lightFlagNames) }

type MagicEffectFlags uint32

const (
	EffectTargetSkill     MagicEffectFlags = 0x00001
	EffectTargetAttribute MagicEffectFlags = 0x00002
	EffectNoDuration      MagicEffectFlags = 0x00004
	EffectNoMagnitude     MagicEffectFlags = 0x00008
	EffectHarmful         MagicEffectFlags = 0x00010
	EffectContinuousVfx   MagicEffectFlags = 0x00020
	EffectCastSelf        MagicEffectFlags = 0x00040
	EffectCastTouch       MagicEffectFlags = 0x00080
	EffectCastTarget      MagicEffectFlags = 0x00100
	EffectSpellmaking     MagicEffectFlags = 0x00200
	EffectEnchanting      MagicEffectFlags = 0x00400
	EffectNegative        MagicEffectFlags = 0x00800
	EffectAppliedOnce     MagicEffectFlags = 0x01000
	EffectStealth         MagicEffectFlags = 0x02000
	EffectNonRecastable   MagicEffectFlags = 0x04000
	EffectIllegalDaedra   MagicEffectFlags = 0x08000
	EffectUnreflectable   MagicEffectFlags = 0x10000
	EffectCasterLinked    MagicEffectFlags = 0x20000
)

var magicEffectFlagNames = []flagName{
	{0x00001, "TARGET_SKILL"},
	{0x00002, "TARGET_ATTRIBUTE"},
	{0x00004, "NO_DURATION"},
	{0x00008, "NO_MAGNITUDE"},
	{0x00010, "HARMFUL"},
	{0x00020, "CONTINUOUS_VFX"},
	{0x00040, "CAST_SELF"},
	{0x00080, "CAST_TOUCH"},
	{0x00100, "CAST_TARGET"},
	{0x00200, "SPELLMAKING"},
	{0x00400, "ENCHANTING"},
	{0x00800, "NEGATIVE"},
	{0x01000, "APPLIED_ONCE"},
	{0x02000, "STEALTH"},
	{0x04000, "NON_RECASTABLE"},
	{0x08000, "ILLEGAL_DAEDRA"},
	{0x10000, "UNREFLECTABLE"},
	{0x20000, "CASTER_LINKED"},
}

func (f MagicEffectFlags) String() string { return formatFlags(uint32(f), magicEffectFlagNames) }

type SpellFlags uint32

const (
	SpellAutoCalc       SpellFlags = 0x1
	SpellStartSpell     SpellFlags = 0x2
	SpellAlwaysSucceeds SpellFlags = 0x4
)

func (f SpellFlags) String() string {
	return formatFlags(uint32(f), []flagName{{0x1, "AUTO_CALCULATE"}, {0x2, "START_SPELL"}, {0x4, "ALWAYS_SUCCEEDS"}})
}

type EnchantFlags uint32

const EnchantAutoCalc EnchantFlags = 0x1

func (f EnchantFlags) String() string {
	return formatFlags(uint32(f), []flagName{{0x1, "AUTO_CALCULATE"}})
}

type AlchemyFlags uint32

const AlchemyAutoCalc AlchemyFlags = 0x1

func (f AlchemyFlags) String() string {
	return formatFlags(uint32(f), []flagName{{0x1, "AUTO_CALCULATE"}})
}

type LeveledFlags uint32

const (
	LeveledCalculateFromAllLevels LeveledFlags = 0x1
	LeveledCalculateForEachItem   LeveledFlags = 0x2
)

func (f LeveledFlags) String() string {
	return formatFlags(uint32(f), []flagName{{0x1, "CALCULATE_FROM_ALL_LEVELS"}, {0x2, "CALCULATE_FOR_EACH_ITEM"}})
}

type WeaponFlags uint32

const (
	WeaponSilver           WeaponFlags = 0x1
	WeaponIgnoreResistance WeaponFlags = 0x2
)

func (f WeaponFlags) String() string {
	return formatFlags(uint32(f), []flagName{{0x1, "SILVER"}, {0x2, "IGNORE_RESISTANCE"}})
}

type MiscItemFlags uint32

const MiscItemKey MiscItemFlags = 0x1

func (f MiscItemFlags) String() string { return formatFlags(uint32(f), []flagName{{0x1, "KEY"}}) }

type BodypartFlags uint8

const (
	BodypartFemale   BodypartFlags = 0x1
	BodypartPlayable BodypartFlags = 0x2
)

func (f BodypartFlags) String() string {
	return formatFlags(uint32(f), []flagName{{0x1, "FEMALE"}, {0x2, "PLAYABLE"}})
}

type CellFlags uint32

const (
	CellInterior           CellFlags = 0x01
	CellHasWater           CellFlags = 0x02
	CellIllegalToSleep     CellFlags = 0x04
	CellBehaveLikeExterior CellFlags = 0x80
)

func (f CellFlags) String() string {
	return formatFlags(uint32(f), []flagName{
		{0x01, "IS_INTERIOR"},
		{0x02, "HAS_WATER"},
		{0x04, "ILLEGAL_TO_SLEEP"},
		{0x80, "BEHAVE_LIKE_EXTERIOR"},
	})
}

type LandscapeFlags uint32

const (
	LandscapeUsesVertexHeightsAndNormals LandscapeFlags = 0x1
	LandscapeUsesVertexColors            LandscapeFlags = 0x2
	LandscapeUsesTextures                LandscapeFlags = 0x4
)

func (f LandscapeFlags) String() string {
	return formatFlags(uint32(f), []flagName{
		{0x1, "USES_VERTEX_HEIGHTS_AND_NORMALS"},
		{0x2, "USES_VERTEX_COLORS"},
		{0x4, "USES_TEXTURES"},
	})
}
