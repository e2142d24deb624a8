package esp

import "strconv"

func enumName(names []string, v int64) string {
	if v >= 0 && v < int64(len(names)) {
		return names[v]
	}

	return "Unknown(" + strconv.FormatInt(v, 10) + ")"
}

// optionalName renders -1 as "None" and other values from names.
func optionalName(names []string, v int64) string {
	if v == -1 {
		return "None"
	}

	return enumName(names, v)
}

// FileType is the kind of plugin declared in the TES3 header.
type FileType uint32

const (
	FileTypeEsp FileType = 0
	FileTypeEsm FileType = 1
	FileTypeEss FileType = 32
)

func (t FileType) Valid() bool { return t == FileTypeEsp || t == FileTypeEsm || t == FileTypeEss }

func (t FileType) String() string {
	switch t {
	case FileTypeEsp:
		return "Esp"
	case FileTypeEsm:
		return "Esm"
	case FileTypeEss:
		return "Ess"
	default:
		return enumName(nil, int64(t))
	}
}

// GlobalType is the declared type of a global variable.
type GlobalType uint8

const (
	GlobalShort GlobalType = 's'
	GlobalLong  GlobalType = 'l'
	GlobalFloat GlobalType = 'f'
)

func (t GlobalType) Valid() bool { return t == GlobalShort || t == GlobalLong || t == GlobalFloat }

func (t GlobalType) String() string {
	switch t {
	case GlobalShort:
		return "Short"
	case GlobalLong:
		return "Long"
	case GlobalFloat:
		return "Float"
	default:
		return enumName(nil, int64(t))
	}
}

type SoundGenType uint32

const (
	SoundGenLeftFoot SoundGenType = iota
	SoundGenRightFoot
	SoundGenSwimLeft
	SoundGenSwimRight
	SoundGenMoan
	SoundGenRoar
	SoundGenScream
	SoundGenLand
)

var soundGenTypeNames = []string{"LeftFoot", "RightFoot", "SwimLeft", "SwimRight", "Moan", "Roar", "Scream", "Land"}

func (t SoundGenType) Valid() bool    { return int(t) < len(soundGenTypeNames) }
func (t SoundGenType) String() string { return enumName(soundGenTypeNames, int64(t)) }

// SkillID identifies one of the 27 skills. SkillNone (-1) marks an unused slot.
type SkillID int32

const (
	SkillNone SkillID = iota - 1
	SkillBlock
	SkillArmorer
	SkillMediumArmor
	SkillHeavyArmor
	SkillBluntWeapon
	SkillLongBlade
	SkillAxe
	SkillSpear
	SkillAthletics
	SkillEnchant
	SkillDestruction
	SkillAlteration
	SkillIllusion
	SkillConjuration
	SkillMysticism
	SkillRestoration
	SkillAlchemy
	SkillUnarmored
	SkillSecurity
	SkillSneak
	SkillAcrobatics
	SkillLightArmor
	SkillShortBlade
	SkillMarksman
	SkillMercantile
	SkillSpeechcraft
	SkillHandToHand
)

var skillNames = []string{
	"Block", "Armorer", "MediumArmor", "HeavyArmor", "BluntWeapon", "LongBlade", "Axe", "Spear", "Athletics",
	"Enchant", "Destruction", "Alteration", "Illusion", "Conjuration", "Mysticism", "Restoration", "Alchemy",
	"Unarmored", "Security", "Sneak", "Acrobatics", "LightArmor", "ShortBlade", "Marksman", "Mercantile",
	"Speechcraft", "HandToHand",
}

func (s SkillID) Valid() bool    { return s >= SkillNone && int(s) < len(skillNames) }
func (s SkillID) String() string { return optionalName(skillNames, int64(s)) }

// AttributeID identifies one of the 8 attributes. AttributeNone (-1) marks an unused slot.
type AttributeID int32

const (
	AttributeNone AttributeID = iota - 1
	AttributeStrength
	AttributeIntelligence
	AttributeWillpower
	AttributeAgility
	AttributeSpeed
	AttributeEndurance
	AttributePersonality
	AttributeLuck
)

var attributeNames = []string{
	"Strength", "Intelligence", "Willpower", "Agility", "Speed", "Endurance", "Personality", "Luck",
}

func (a AttributeID) Valid() bool    { return a >= AttributeNone && int(a) < len(attributeNames) }
func (a AttributeID) String() string { return optionalName(attributeNames, int64(a)) }

type Specialization uint32

const (
	SpecializationCombat Specialization = iota
	SpecializationMagic
	SpecializationStealth
)

var specializationNames = []string{"Combat", "Magic", "Stealth"}

func (s Specialization) Valid() bool    { return int(s) < len(specializationNames) }
func (s Specialization) String() string { return enumName(specializationNames, int64(s)) }

type MagicSchool uint32

const (
	SchoolAlteration MagicSchool = iota
	SchoolConjuration
	SchoolDestruction
	SchoolIllusion
	SchoolMysticism
	SchoolRestoration
)

var magicSchoolNames = []string{"Alteration", "Conjuration", "Destruction", "Illusion", "Mysticism", "Restoration"}

func (s MagicSchool) Valid() bool    { return int(s) < len(magicSchoolNames) }
func (s MagicSchool) String() string { return enumName(magicSchoolNames, int64(s)) }

type EffectRange uint32

const (
	RangeOnSelf EffectRange = iota
	RangeOnTouch
	RangeOnTarget
)

var effectRangeNames = []string{"OnSelf", "OnTouch", "OnTarget"}

func (r EffectRange) Valid() bool    { return int(r) < len(effectRangeNames) }
func (r EffectRange) String() string { return enumName(effectRangeNames, int64(r)) }

type SpellType uint32

const (
	SpellTypeSpell SpellType = iota
	SpellTypeAbility
	SpellTypeBlight
	SpellTypeDisease
	SpellTypeCurse
	SpellTypePower
)

var spellTypeNames = []string{"Spell", "Ability", "Blight", "Disease", "Curse", "Power"}

func (t SpellType) Valid() bool    { return int(t) < len(spellTypeNames) }
func (t SpellType) String() string { return enumName(spellTypeNames, int64(t)) }

type EnchantType uint32

const (
	EnchantCastOnce EnchantType = iota
	EnchantCastOnStrike
	EnchantCastWhenUsed
	EnchantConstantEffect
)

var enchantTypeNames = []string{"CastOnce", "CastOnStrike", "CastWhenUsed", "ConstantEffect"}

func (t EnchantType) Valid() bool    { return int(t) < len(enchantTypeNames) }
func (t EnchantType) String() string { return enumName(enchantTypeNames, int64(t)) }

type WeaponType uint16

const (
	WeaponShortBladeOneHand WeaponType = iota
	WeaponLongBladeOneHand
	WeaponLongBladeTwoClose
	WeaponBluntOneHand
	WeaponBluntTwoClose
	WeaponBluntTwoWide
	WeaponSpearTwoWide
	WeaponAxeOneHand
	WeaponAxeTwoHand
	WeaponMarksmanBow
	WeaponMarksmanCrossbow
	WeaponMarksmanThrown
	WeaponArrow
	WeaponBolt
)

var weaponTypeNames = []string{
	"ShortBladeOneHand", "LongBladeOneHand", "LongBladeTwoClose", "BluntOneHand", "BluntTwoClose",
	"BluntTwoWide", "SpearTwoWide", "AxeOneHand", "AxeTwoHand", "MarksmanBow", "MarksmanCrossbow",
	"MarksmanThrown", "Arrow", "Bolt",
}

func (t WeaponType) Valid() bool    { return int(t) < len(weaponTypeNames) }
func (t WeaponType) String() string { return enumName(weaponTypeNames, int64(t)) }

type ArmorType uint32

const (
	ArmorHelmet ArmorType = iota
	ArmorCuirass
	ArmorLeftPauldron
	ArmorRightPauldron
	ArmorGreaves
	ArmorBoots
	ArmorLeftGauntlet
	ArmorRightGauntlet
	ArmorShield
	ArmorLeftBracer
	ArmorRightBracer
)

var armorTypeNames = []string{
	"Helmet", "Cuirass", "LeftPauldron", "RightPauldron", "Greaves", "Boots",
	"LeftGauntlet", "RightGauntlet", "Shield", "LeftBracer", "RightBracer",
}

func (t ArmorType) Valid() bool    { return int(t) < len(armorTypeNames) }
func (t ArmorType) String() string { return enumName(armorTypeNames, int64(t)) }

type ClothingType uint32

const (
	ClothingPants ClothingType = iota
	ClothingShoes
	ClothingShirt
	ClothingBelt
	ClothingRobe
	ClothingRightGlove
	ClothingLeftGlove
	ClothingSkirt
	ClothingRing
	ClothingAmulet
)

var clothingTypeNames = []string{
	"Pants", "Shoes", "Shirt", "Belt", "Robe", "RightGlove", "LeftGlove", "Skirt", "Ring", "Amulet",
}

func (t ClothingType) Valid() bool    { return int(t) < len(clothingTypeNames) }
func (t ClothingType) String() string { return enumName(clothingTypeNames, int64(t)) }

// BipedObjectType is the body slot covered by a piece of armor or clothing.
type BipedObjectType uint8

const (
	BipedHead BipedObjectType = iota
	BipedHair
	BipedNeck
	BipedChest
	BipedGroin
	BipedSkirt
	BipedRightHand
	BipedLeftHand
	BipedRightWrist
	BipedLeftWrist
	BipedShield
	BipedRightForearm
	BipedLeftForearm
	BipedRightUpperArm
	BipedLeftUpperArm
	BipedRightFoot
	BipedLeftFoot
	BipedRightAnkle
	BipedLeftAnkle
	BipedRightKnee
	BipedLeftKnee
	BipedRightUpperLeg
	BipedLeftUpperLeg
	BipedRightPauldron
	BipedLeftPauldron
	BipedWeapon
	BipedTail
)

var bipedObjectTypeNames = []string{
	"Head", "Hair", "Neck", "Chest", "Groin", "Skirt", "RightHand", "LeftHand", "RightWrist", "LeftWrist",
	"Shield", "RightForearm", "LeftForearm", "RightUpperArm", "LeftUpperArm", "RightFoot", "LeftFoot",
	"RightAnkle", "LeftAnkle", "RightKnee", "LeftKnee", "RightUpperLeg", "LeftUpperLeg", "RightPauldron",
	"LeftPauldron", "Weapon", "Tail",
}

func (t BipedObjectType) Valid() bool    { return int(t) < len(bipedObjectTypeNames) }
func (t BipedObjectType) String() string { return enumName(bipedObjectTypeNames, int64(t)) }

type ApparatusType uint32

const (
	ApparatusMortarPestle ApparatusType = iota
	ApparatusAlembic
	ApparatusCalcinator
	ApparatusRetort
)

var apparatusTypeNames = []string{"MortarPestle", "Alembic", "Calcinator", "Retort"}

func (t ApparatusType) Valid() bool    { return int(t) < len(apparatusTypeNames) }
func (t ApparatusType) String() string { return enumName(apparatusTypeNames, int64(t)) }

type BodypartID uint8

const (
	BodypartHead BodypartID = iota
	BodypartHair
	BodypartNeck
	BodypartChest
	BodypartGroin
	BodypartHand
	BodypartWrist
	BodypartForearm
	BodypartUpperArm
	BodypartFoot
	BodypartAnkle
	BodypartKnee
	BodypartUpperLeg
	BodypartClavicle
	BodypartTail
)

var bodypartIDNames = []string{
	"Head", "Hair", "Neck", "Chest", "Groin", "Hand", "Wrist", "Forearm", "UpperArm", "Foot", "Ankle",
	"Knee", "UpperLeg", "Clavicle", "Tail",
}

func (b BodypartID) Valid() bool    { return int(b) < len(bodypartIDNames) }
func (b BodypartID) String() string { return enumName(bodypartIDNames, int64(b)) }

type BodypartType uint8

const (
	BodypartSkin BodypartType = iota
	BodypartClothing
	BodypartArmor
)

var bodypartTypeNames = []string{"Skin", "Clothing", "Armor"}

func (t BodypartType) Valid() bool    { return int(t) < len(bodypartTypeNames) }
func (t BodypartType) String() string { return enumName(bodypartTypeNames, int64(t)) }

type BookType uint32

const (
	BookTypeBook BookType = iota
	BookTypeScroll
)

var bookTypeNames = []string{"Book", "Scroll"}

func (t BookType) Valid() bool    { return int(t) < len(bookTypeNames) }
func (t BookType) String() string { return enumName(bookTypeNames, int64(t)) }

type CreatureType uint32

const (
	CreatureTypeCreature CreatureType = iota
	CreatureTypeDaedra
	CreatureTypeUndead
	CreatureTypeHumanoid
)

var creatureTypeNames = []string{"Creature", "Daedra", "Undead", "Humanoid"}

func (t CreatureType) Valid() bool    { return int(t) < len(creatureTypeNames) }
func (t CreatureType) String() string { return enumName(creatureTypeNames, int64(t)) }

type DialogueType uint8

const (
	DialogueTopic DialogueType = iota
	DialogueVoice
	DialogueGreeting
	DialoguePersuasion
	DialogueJournal
)

var dialogueTypeNames = []string{"Topic", "Voice", "Greeting", "Persuasion", "Journal"}

func (t DialogueType) Valid() bool    { return int(t) < len(dialogueTypeNames) }
func (t DialogueType) String() string { return enumName(dialogueTypeNames, int64(t)) }

// Sex filters a dialogue response by speaker sex. SexAny (-1) matches both.
type Sex int8

const (
	SexAny Sex = iota - 1
	SexMale
	SexFemale
)

func (s Sex) Valid() bool { return s >= SexAny && s <= SexFemale }

func (s Sex) String() string {
	switch s {
	case SexAny:
		return "Any"
	case SexMale:
		return "Male"
	case SexFemale:
		return "Female"
	default:
		return enumName(nil, int64(s))
	}
}

// QuestState marks a journal response as naming, finishing or restarting a quest.
type QuestState uint8

const (
	QuestNone QuestState = iota
	QuestName
	QuestFinished
	QuestRestart
)

var questStateNames = []string{"None", "Name", "Finished", "Restart"}

func (q QuestState) Valid() bool    { return int(q) < len(questStateNames) }
func (q QuestState) String() string { return enumName(questStateNames, int64(q)) }
