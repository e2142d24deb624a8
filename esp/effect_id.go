package esp

// EffectID identifies one of the built-in magic effects. EffectNone (-1)
// marks an unused effect slot.
type EffectID int32

const (
	EffectNone EffectID = iota - 1
	EffectWaterBreathing
	EffectSwiftSwim
	EffectWaterWalking
	EffectShield
	EffectFireShield
	EffectLightningShield
	EffectFrostShield
	EffectBurden
	EffectFeather
	EffectJump
	EffectLevitate
	EffectSlowFall
	EffectLock
	EffectOpen
	EffectFireDamage
	EffectShockDamage
	EffectFrostDamage
	EffectDrainAttribute
	EffectDrainHealth
	EffectDrainMagicka
	EffectDrainFatigue
	EffectDrainSkill
	EffectDamageAttribute
	EffectDamageHealth
	EffectDamageMagicka
	EffectDamageFatigue
	EffectDamageSkill
	EffectPoison
	EffectWeaknessToFire
	EffectWeaknessToFrost
	EffectWeaknessToShock
	EffectWeaknessToMagicka
	EffectWeaknessToCommonDisease
	EffectWeaknessToBlightDisease
	EffectWeaknessToCorprusDisease
	EffectWeaknessToPoison
	EffectWeaknessToNormalWeapons
	EffectDisintegrateWeapon
	EffectDisintegrateArmor
	EffectInvisibility
	EffectChameleon
	EffectLight
	EffectSanctuary
	EffectNightEye
	EffectCharm
	EffectParalyze
	EffectSilence
	EffectBlind
	EffectSound
	EffectCalmHumanoid
	EffectCalmCreature
	EffectFrenzyHumanoid
	EffectFrenzyCreature
	EffectDemoralizeHumanoid
	EffectDemoralizeCreature
	EffectRallyHumanoid
	EffectRallyCreature
	EffectDispel
	EffectSoultrap
	EffectTelekinesis
	EffectMark
	EffectRecall
	EffectDivineIntervention
	EffectAlmsiviIntervention
	EffectDetectAnimal
	EffectDetectEnchantment
	EffectDetectKey
	EffectSpellAbsorption
	EffectReflect
	EffectCureCommonDisease
	EffectCureBlightDisease
	EffectCureCorprusDisease
	EffectCurePoison
	EffectCureParalyzation
	EffectRestoreAttribute
	EffectRestoreHealth
	EffectRestoreMagicka
	EffectRestoreFatigue
	EffectRestoreSkill
	EffectFortifyAttribute
	EffectFortifyHealth
	EffectFortifyMagicka
	EffectFortifyFatigue
	EffectFortifySkill
	EffectFortifyMaximumMagicka
	EffectAbsorbAttribute
	EffectAbsorbHealth
	EffectAbsorbMagicka
	EffectAbsorbFatigue
	EffectAbsorbSkill
	EffectResistFire
	EffectResistFrost
	EffectResistShock
	EffectResistMagicka
	EffectResistCommonDisease
	EffectResistBlightDisease
	EffectResistCorprusDisease
	EffectResistPoison
	EffectResistNormalWeapons
	EffectResistParalysis
	EffectRemoveCurse
	EffectTurnUndead
	EffectSummonScamp
	EffectSummonClannfear
	EffectSummonDaedroth
	EffectSummonDremora
	EffectSummonAncestralGhost
	EffectSummonSkeletalMinion
	EffectSummonBonewalker
	EffectSummonGreaterBonewalker
	EffectSummonBonelord
	EffectSummonWingedTwilight
	EffectSummonHunger
	EffectSummonGoldenSaint
	EffectSummonFlameAtronach
	EffectSummonFrostAtronach
	EffectSummonStormAtronach
	EffectFortifyAttack
	EffectCommandCreature
	EffectCommandHumanoid
	EffectBoundDagger
	EffectBoundLongsword
	EffectBoundMace
	EffectBoundBattleAxe
	EffectBoundSpear
	EffectBoundLongbow
	EffectExtraSpell
	EffectBoundCuirass
	EffectBoundHelm
	EffectBoundBoots
	EffectBoundShield
	EffectBoundGloves
	EffectCorprus
	EffectVampirism
	EffectSummonCenturionSphere
	EffectSunDamage
	EffectStuntedMagicka
	EffectSummonFabricant
	EffectSummonWolf
	EffectSummonBear
	EffectSummonBonewolf
	EffectSummonCreature04
	EffectSummonCreature05
)

var effectNames = []string{
	"WaterBreathing", "SwiftSwim", "WaterWalking", "Shield", "FireShield", "LightningShield", "FrostShield",
	"Burden", "Feather", "Jump", "Levitate", "SlowFall", "Lock", "Open", "FireDamage", "ShockDamage",
	"FrostDamage", "DrainAttribute", "DrainHealth", "DrainMagicka", "DrainFatigue", "DrainSkill",
	"DamageAttribute", "DamageHealth", "DamageMagicka", "DamageFatigue", "DamageSkill", "Poison",
	"WeaknessToFire", "WeaknessToFrost", "WeaknessToShock", "WeaknessToMagicka", "WeaknessToCommonDisease",
	"WeaknessToBlightDisease", "WeaknessToCorprusDisease", "WeaknessToPoison", "WeaknessToNormalWeapons",
	"DisintegrateWeapon", "DisintegrateArmor", "Invisibility", "Chameleon", "Light", "Sanctuary", "NightEye",
	"Charm", "Paralyze", "Silence", "Blind", "Sound", "CalmHumanoid", "CalmCreature", "FrenzyHumanoid",
	"FrenzyCreature", "DemoralizeHumanoid", "DemoralizeCreature", "RallyHumanoid", "RallyCreature", "Dispel",
	"Soultrap", "Telekinesis", "Mark", "Recall", "DivineIntervention", "AlmsiviIntervention", "DetectAnimal",
	"DetectEnchantment", "DetectKey", "SpellAbsorption", "Reflect", "CureCommonDisease", "CureBlightDisease",
	"CureCorprusDisease", "CurePoison", "CureParalyzation", "RestoreAttribute", "RestoreHealth",
	"RestoreMagicka", "RestoreFatigue", "RestoreSkill", "FortifyAttribute", "FortifyHealth", "FortifyMagicka",
	"FortifyFatigue", "FortifySkill", "FortifyMaximumMagicka", "AbsorbAttribute", "AbsorbHealth",
	"AbsorbMagicka", "AbsorbFatigue", "AbsorbSkill", "ResistFire", "ResistFrost", "ResistShock",
	"ResistMagicka", "ResistCommonDisease", "ResistBlightDisease", "ResistCorprusDisease", "ResistPoison",
	"ResistNormalWeapons", "ResistParalysis", "RemoveCurse", "TurnUndead", "SummonScamp", "SummonClannfear",
	"SummonDaedroth", "SummonDremora", "SummonAncestralGhost", "SummonSkeletalMinion", "SummonBonewalker",
	"SummonGreaterBonewalker", "SummonBonelord", "SummonWingedTwilight", "SummonHunger", "SummonGoldenSaint",
	"SummonFlameAtronach", "SummonFrostAtronach", "SummonStormAtronach", "FortifyAttack", "CommandCreature",
	"CommandHumanoid", "BoundDagger", "BoundLongsword", "BoundMace", "BoundBattleAxe", "BoundSpear",
	"BoundLongbow", "ExtraSpell", "BoundCuirass", "BoundHelm", "BoundBoots", "BoundShield", "BoundGloves",
	"Corprus", "Vampirism", "SummonCenturionSphere", "SunDamage", "StuntedMagicka", "SummonFabricant",
	"SummonWolf", "SummonBear", "SummonBonewolf", "SummonCreature04", "SummonCreature05",
}

func (e EffectID) Valid() bool    { return e >= EffectNone && int(e) < len(effectNames) }
func (e EffectID) String() string { return optionalName(effectNames, int64(e)) }
