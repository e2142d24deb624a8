package esp

import (
	"encoding/binary"
	"math"

	"github.com/arloliu/tes3/format"
)

func ptr[T any](v T) *T {
	return &v
}

// rawChunk frames payload as a chunk.
func rawChunk(tag string, payload []byte) []byte {
	b := append([]byte(tag), binary.LittleEndian.AppendUint32(nil, uint32(len(payload)))...)
	return append(b, payload...)
}

// rawRecord frames chunks as a record with the given header flags.
func rawRecord(tag string, flags uint32, chunks ...[]byte) []byte {
	var body []byte
	for _, c := range chunks {
		body = append(body, c...)
	}

	b := []byte(tag)
	b = binary.LittleEndian.AppendUint32(b, uint32(len(body)))
	b = binary.LittleEndian.AppendUint32(b, 0)
	b = binary.LittleEndian.AppendUint32(b, flags)

	return append(b, body...)
}

func zstr(s string) []byte {
	return append([]byte(s), 0)
}

func u32(v uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, v)
}

func f32(v float32) []byte {
	return binary.LittleEndian.AppendUint32(nil, math.Float32bits(v))
}

func concat(parts ...[]byte) []byte {
	var b []byte
	for _, p := range parts {
		b = append(b, p...)
	}

	return b
}

func sampleEffects() []Effect {
	return []Effect{
		{MagicEffect: EffectFireDamage, Skill: SkillNone, Attribute: AttributeNone, Range: RangeOnTarget, Area: 5, Duration: 1, MinMagnitude: 10, MaxMagnitude: 20},
		{MagicEffect: EffectDrainSkill, Skill: SkillLongBlade, Attribute: AttributeNone, Range: RangeOnTouch, Duration: 30, MinMagnitude: 5, MaxMagnitude: 5},
		{MagicEffect: EffectFortifyAttribute, Skill: SkillNone, Attribute: AttributeAgility, Range: RangeOnSelf, Duration: 60, MinMagnitude: 1, MaxMagnitude: 3},
	}
}

// sampleRecord returns the populated sample of the given kind.
func sampleRecord(tag format.Tag) Record {
	for _, rec := range sampleRecords() {
		if rec.Tag() == tag {
			return rec
		}
	}

	return nil
}

func sampleAi() (AiData, []TravelDestination, []AiPackage) {
	data := AiData{Hello: 30, Fight: 40, Flee: 50, Alarm: 60, Unknown: [3]uint8{1, 2, 3}, Services: ServiceBuysWeapons | ServiceOffersTraining}
	dests := []TravelDestination{
		{Position: [3]float32{1024, -2048, 512}, Rotation: [3]float32{0, 0, 1.5}, Cell: "Balmora, Guild of Mages"},
		{Position: [3]float32{-8192, 4096, 128}},
	}
	packages := []AiPackage{
		&AiWander{Distance: 512, Duration: 5, GameHour: 12, Idle: [8]uint8{60, 20, 10, 0, 0, 0, 0, 0}, Reset: true},
		&AiTravel{Location: [3]float32{10, 20, 30}},
		&AiEscort{Location: [3]float32{1, 2, 3}, Duration: 24, Target: "player", Cell: "Vivec, Arena"},
		&AiFollow{Location: [3]float32{4, 5, 6}, Duration: 48, Target: "fargoth", Reset: true},
		&AiActivate{Target: "ex_door_01", Reset: true},
	}

	return data, dests, packages
}

// sampleRecords returns one populated record of every kind in format order.
func sampleRecords() []Record {
	aiData, dests, packages := sampleAi()

	return []Record{
		&Header{
			Version:     1.3,
			FileType:    FileTypeEsp,
			Author:      "modder",
			Description: "A test plugin",
			NumObjects:  42,
			Masters:     []Master{{Name: "Morrowind.esm", Size: 79837557}, {Name: "Tribunal.esm", Size: 4565686}},
		},
		&GameSetting{ID: "sMagicSkillFail", Value: GameSettingString("You failed.")},
		&GlobalVariable{ID: "DaysPassed", Type: GlobalShort, Value: 12},
		&Class{
			ID: "Battlemage", Name: "Battlemage", Description: "Wizard warriors.",
			Data: ClassData{
				Attributes:     [2]AttributeID{AttributeStrength, AttributeAgility},
				Specialization: SpecializationMagic,
				MinorSkills:    [5]SkillID{1, 2, 3, 4, 5},
				MajorSkills:    [5]SkillID{10, 11, 12, 13, 14},
				Flags:          ClassPlayable,
				Services:       ServiceOffersSpells,
			},
		},
		&Faction{
			ID: "Mages Guild", Name: "Mages Guild",
			RankNames: []string{"Associate", "Apprentice", "Journeyman"},
			Reactions: []FactionReaction{{Faction: "Fighters Guild", Reaction: 1}, {Faction: "Thieves Guild", Reaction: -1}},
			Data: FactionData{
				FavoredAttributes: [2]AttributeID{AttributeStrength, AttributeAgility},
				Requirements:      [10]FactionRequirement{{Attributes: [2]int32{30, 30}, PrimarySkill: 10, FavoredSkill: 5, Reputation: 1}},
				FavoredSkills:     [7]SkillID{9, 10, 11, 12, 13, 14, 15},
				Flags:             FactionHiddenFromPlayer,
			},
		},
		&Race{
			ID: "Dark Elf", Name: "Dark Elf", Spells: []string{"ancestor guardian", "resist fire_75"},
			Description: "Dunmer.",
			Data: RaceData{
				SkillBonuses: [7]SkillBonus{{Skill: SkillLongBlade, Bonus: 5}, {Skill: SkillNone, Bonus: 0}},
				Strength:     [2]int32{40, 40},
				Luck:         [2]int32{40, 40},
				Height:       [2]float32{1, 1},
				Weight:       [2]float32{1, 1},
				Flags:        RacePlayable,
			},
		},
		&Sound{ID: "Door Open", FileName: "Fx\\door_open.wav", Data: SoundData{Volume: 255, MinRange: 1, MaxRange: 10}},
		&SoundGen{ID: "scamp_roar", Type: SoundGenRoar, Creature: "scamp", Sound: "scamp roar"},
		&Skill{Skill: SkillAlchemy, Description: "Brew potions.", Data: SkillData{GoverningAttribute: 1, Specialization: SpecializationMagic, Actions: [4]float32{1, 2, 0, 0}}},
		&MagicEffect{
			Effect: EffectFireDamage, Icon: "s\\tx_s_fire.dds", Texture: "vfx_firealpha00a.tga",
			CastSound: "destruction cast", HitVisual: "VFX_DestructHit", Description: "Burns the target.",
			Data: MagicEffectData{School: SchoolDestruction, BaseCost: 5, Flags: EffectHarmful | EffectSpellmaking, Color: [3]int32{255, 128, 0}, Speed: 1, Size: 1, SizeCap: 50},
		},
		&Script{
			Header:    ScriptHeader{ID: "TestScript", NumShorts: 1, NumLongs: 0, NumFloats: 1, BytecodeLength: 4, VariablesLength: 10},
			Variables: []byte("doOnce\x00t\x00\x00"),
			Bytecode:  []byte{0x24, 0x01, 0x01, 0x00},
			Text:      "Begin TestScript\r\nshort doOnce\r\nEnd",
		},
		&Region{
			ID: "Ascadian Isles Region", Name: "Ascadian Isles",
			WeatherChances: WeatherChances{Clear: 50, Cloudy: 30, Rain: 20},
			SleepCreature:  "ex_ascadianisles_sleep",
			MapColor:       [4]uint8{40, 120, 60, 0},
			Sounds:         []RegionSound{{Sound: "Bird 1", Chance: 10}, {Sound: "Bird 2", Chance: 5}},
		},
		&Birthsign{ID: "Lady's Favor", Name: "The Lady", Texture: "birthsigns\\lady.tga", Description: "Favored.", Spells: []string{"lady's favor", "lady's grace"}},
		&StartScript{ID: "TestStart", Script: "TestScript"},
		&LandscapeTexture{ID: "Grass", Index: 3, FileName: "tx_grass_01.tga"},
		&Spell{ID: "fireball", Name: "Fireball", Effects: sampleEffects(), Data: SpellData{Type: SpellTypeSpell, Cost: 24, Flags: SpellAutoCalc}},
		&Static{ID: "ex_rock_01", Mesh: "x\\ex_rock_01.nif"},
		&Door{ID: "in_door_01", Name: "Door", Mesh: "d\\in_door.nif", Script: "DoorScript", OpenSound: "Door Open", CloseSound: "Door Close"},
		&MiscItem{ID: "misc_key_01", Name: "Key", Mesh: "m\\key.nif", Script: "KeyScript", Icon: "m\\key.dds", Data: MiscItemData{Weight: 0.25, Value: 10, Flags: MiscItemKey}},
		&Weapon{
			ID: "iron longsword", Name: "Iron Longsword", Mesh: "w\\longsword.nif", Icon: "w\\longsword.dds", Enchanting: "fire_en",
			Data: WeaponData{Weight: 20, Value: 50, Type: WeaponLongBladeOneHand, Health: 400, Speed: 1.25, Reach: 1, Enchantment: 30, ChopMin: 1, ChopMax: 12, SlashMin: 1, SlashMax: 10, ThrustMin: 1, ThrustMax: 8, Flags: WeaponSilver},
		},
		&Container{ID: "chest_small", Name: "Chest", Mesh: "o\\chest.nif", Encumbrance: 100, ContainerFlags: ContainerRespawns | ContainerDefault, Inventory: []InventoryItem{{Count: 5, ID: "Gold_001"}, {Count: -1, ID: "p_restore_health_s"}}},
		&Creature{
			ID: "scamp", Name: "Scamp", Mesh: "r\\scamp.nif", Script: "ScampScript", Sound: "scamp",
			Scale: ptr(float32(1.5)), CreatureFlags: CreatureWalks | CreatureRespawn, BloodType: 2,
			Inventory: []InventoryItem{{Count: 3, ID: "Gold_001"}}, Spells: []string{"fireball"},
			AiData: aiData, TravelDestinations: dests, AiPackages: packages,
			Data: CreatureData{Type: CreatureTypeDaedra, Level: 5, Strength: 50, Health: 40, Soul: 100, Attacks: [3][2]uint32{{1, 5}, {2, 6}, {3, 7}}, Gold: 10},
		},
		&Bodypart{ID: "b_n_dark elf_m_head_01", Race: "Dark Elf", Mesh: "b\\head.nif", Data: BodypartData{Part: BodypartHead, Vampire: true, Flags: BodypartPlayable, Type: BodypartSkin}},
		&Light{ID: "light_torch", Name: "Torch", Mesh: "l\\torch.nif", Icon: "l\\torch.dds", Sound: "Fire", Data: LightData{Weight: 1, Value: 2, Time: 600, Radius: 256, Color: [4]uint8{255, 200, 100, 0}, Flags: LightCanCarry | LightFire | LightFlicker}},
		&Enchanting{ID: "fire_en", Effects: sampleEffects()[:1], Data: EnchantingData{Type: EnchantCastOnStrike, Cost: 10, MaxCharge: 100, Flags: EnchantAutoCalc}},
		&Npc{
			ID: "fargoth", Name: "Fargoth", Race: "Wood Elf", Class: "Commoner", Faction: "Census and Excise", Head: "b_n_wood elf_m_head_01", Hair: "b_n_wood elf_m_hair_01", Script: "FargothScript",
			NpcFlags: NpcRespawn, BloodType: 1,
			Inventory: []InventoryItem{{Count: 1, ID: "fargoth's ring"}}, Spells: []string{"wood elf ability"},
			AiData: aiData, TravelDestinations: dests, AiPackages: packages,
			Data: NpcData{Level: 2, Disposition: 50, Reputation: 1, Rank: 0, Gold: 20, Stats: &NpcStats{Attributes: [8]uint8{30, 30, 30, 40, 40, 30, 30, 40}, Skills: [27]uint8{5: 10, 26: 25}, Health: 35, Magicka: 60, Fatigue: 150}},
		},
		&Armor{
			ID: "iron_cuirass", Name: "Iron Cuirass", Mesh: "a\\cuirass.nif", Icon: "a\\cuirass.dds",
			BipedObjects: []BipedObject{{Type: BipedChest, MaleBodypart: "a_iron_chest", FemaleBodypart: "a_iron_chest_f"}, {Type: BipedLeftHand, MaleBodypart: "a_iron_gauntlet"}},
			Data:         ArmorData{Type: ArmorCuirass, Weight: 30, Value: 50, Health: 600, ArmorRating: 20},
		},
		&Clothing{
			ID: "common_shirt_01", Name: "Common Shirt", Mesh: "c\\shirt.nif", Icon: "c\\shirt.dds", Enchanting: "fire_en",
			BipedObjects: []BipedObject{{Type: BipedChest, MaleBodypart: "c_shirt"}},
			Data:         ClothingData{Type: ClothingShirt, Weight: 1, Value: 2, Enchantment: 5},
		},
		&RepairItem{ID: "hammer_repair", Name: "Apprentice's Armorer's Hammer", Mesh: "m\\hammer.nif", Icon: "m\\hammer.dds", Data: RepairItemData{Weight: 3, Value: 10, Uses: 10, Quality: 0.5}},
		&Activator{ID: "act_sign", Name: "Sign", Mesh: "x\\sign.nif", Script: "SignScript"},
		&Apparatus{ID: "apparatus_a_alembic_01", Name: "Apprentice's Alembic", Mesh: "m\\alembic.nif", Icon: "m\\alembic.dds", Data: ApparatusData{Type: ApparatusAlembic, Quality: 0.5, Weight: 5, Value: 20}},
		&Lockpick{ID: "pick_apprentice_01", Name: "Apprentice's Lockpick", Mesh: "m\\pick.nif", Icon: "m\\pick.dds", Data: ToolData{Weight: 0.25, Value: 10, Quality: 1, Uses: 25}},
		&Probe{ID: "probe_apprentice_01", Name: "Apprentice's Probe", Mesh: "m\\probe.nif", Icon: "m\\probe.dds", Data: ToolData{Weight: 0.25, Value: 10, Quality: 0.5, Uses: 25}},
		&Ingredient{
			ID: "ingred_ash_salts_01", Name: "Ash Salts", Mesh: "n\\ash_salts.nif", Icon: "n\\ash_salts.dds",
			Data: IngredientData{
				Weight: 0.25, Value: 25,
				Effects:    [4]EffectID{EffectFortifyAttribute, EffectRestoreHealth, EffectNone, EffectNone},
				Skills:     [4]SkillID{SkillNone, SkillNone, SkillNone, SkillNone},
				Attributes: [4]AttributeID{AttributeAgility, AttributeNone, AttributeNone, AttributeNone},
			},
		},
		&Book{
			ID: "bk_test", Name: "Test Book", Mesh: "m\\book.nif", Icon: "m\\book.dds", Text: "<DIV ALIGN=\"CENTER\">Once upon a time.<BR>",
			Data: BookData{Weight: 3, Value: 25, Type: BookTypeBook, Skill: SkillAlchemy},
		},
		&Alchemy{ID: "p_fire_resist", Name: "Potion of Fire Resistance", Mesh: "m\\potion.nif", Icon: "m\\potion.dds", Effects: sampleEffects()[2:], Data: AlchemyData{Weight: 1, Value: 40, Flags: AlchemyAutoCalc}},
		&LeveledItem{ID: "random_gold", LeveledFlags: LeveledCalculateFromAllLevels, ChanceNone: 25, Items: []LeveledEntry{{ID: "Gold_001", Level: 1}, {ID: "Gold_005", Level: 5}, {ID: "Gold_010", Level: 10}}},
		&LeveledCreature{ID: "ex_default", LeveledFlags: LeveledCalculateFromAllLevels, ChanceNone: 10, Creatures: []LeveledEntry{{ID: "rat", Level: 1}, {ID: "scamp", Level: 3}}},
		&Cell{
			Name: "Seyda Neen, Census and Excise Office", Region: "Bitter Coast Region",
			WaterHeight: ptr(float32(-256)),
			Atmosphere:  &AtmosphereData{Ambient: [4]uint8{50, 50, 50, 0}, Sunlight: [4]uint8{100, 100, 100, 0}, Fog: [4]uint8{0, 0, 0, 0}, FogDensity: 0.75},
			Data:        CellData{Flags: CellInterior | CellHasWater},
			PersistentReferences: []Reference{
				{RefIndex: 1, ID: "fargoth", Scale: ptr(float32(1.25)), Translation: [3]float32{10, 20, 30}, Rotation: [3]float32{0, 0, 3}},
				{
					MasterIndex: 1, RefIndex: 0x123456, ID: "ex_door_01",
					Moved:       &MovedReference{RefNumber: 77, Cell: "Balmora"},
					Destination: &TravelDestination{Position: [3]float32{1, 2, 3}, Cell: "Seyda Neen"},
					LockLevel:   ptr(uint32(50)), Key: "key_01", Trap: "trap_fire",
				},
			},
			TemporaryReferences: []Reference{
				{RefIndex: 3, ID: "Gold_001", Count: ptr(uint32(25)), Owner: "fargoth", OwnerFaction: "Mages Guild", OwnerFactionRank: ptr(int32(2))},
				{RefIndex: 4, ID: "misc_soulgem", Soul: "scamp", Charge: ptr(float32(100)), Health: ptr(int32(10)), Blocked: ptr(uint8(1)), OwnerGlobal: "DaysPassed", Deleted: true},
				{RefIndex: 5, ID: "ex_rock_01", Moved: &MovedReference{RefNumber: 5, Grid: &[2]int32{-2, -9}}},
			},
		},
		&Landscape{
			Grid: [2]int32{-2, -9}, LandscapeFlags: LandscapeUsesVertexHeightsAndNormals | LandscapeUsesTextures,
			VertexNormals:   &[landVertexCount][3]int8{0: {0, 0, 127}, 4224: {1, -1, 126}},
			VertexHeights:   &VertexHeights{Offset: -512, Deltas: [landVertexCount]int8{1: 4, 2: -4}},
			WorldMapHeights: &[worldMapHeightsSize]int8{0: -10, 80: 10},
			VertexColors:    &[landVertexCount][3]uint8{7: {255, 0, 0}},
			TextureIndices:  &[16][16]uint16{{1, 2, 3}, 15: {15: 4}},
		},
		&PathGrid{
			Cell: "Seyda Neen", Data: PathGridData{Grid: [2]int32{-2, -9}, Granularity: 1024, PointCount: 2},
			Points:      []PathGridPoint{{Location: [3]int32{1, 2, 3}, AutoGenerated: 1, ConnectionCount: 1}, {Location: [3]int32{-4, 5, -6}, ConnectionCount: 1}},
			Connections: []uint32{1, 0},
		},
		&Dialogue{ID: "latest rumors", Type: DialogueTopic},
		&DialogueInfo{
			ID: "19511310302976825065", Prev: "", Next: "4042824481232328101",
			Data:        InfoData{Type: DialogueJournal, Disposition: 30, SpeakerRank: -1, SpeakerSex: SexFemale, PlayerRank: 2},
			SpeakerID:   "fargoth",
			SpeakerRace: "Wood Elf", SpeakerClass: "Commoner", SpeakerFaction: "Census and Excise", SpeakerCell: "Seyda Neen",
			PlayerFaction: "Mages Guild", SoundPath: "vo\\w\\m\\hlo_wm001.mp3",
			Text: "Hello, outlander.",
			Filters: []Filter{
				{Condition: "01JX0fargoth_ring", Value: FilterInt(100)},
				{Condition: "12sX3DaysPassed", Value: FilterFloat(2.5)},
			},
			Script: "Journal \"MS_Fargoth\" 10",
			Quest:  QuestFinished,
		},
	}
}
