package catalog

import "github.com/ironvale/bountyhall/internal/domain"

// DefaultDocument returns the built-in catalog content at the current
// schema version. Written whenever the stored document is missing,
// corrupt or outdated.
func DefaultDocument() Document {
	return Document{
		SchemaVersion: CurrentSchemaVersion,
		Bounties:      defaultBounties(),
	}
}

func defaultBounties() []domain.BountyDefinition {
	return []domain.BountyDefinition{
		// Stage 1 - Verdant Reach, always unlocked.
		{ID: "kill_thicket_boar", Title: "Boar Trouble", Description: "Thicket boars are rooting up the east fields.", Kind: domain.BountyKindKill, TargetID: "ThicketBoar", Amount: 8, BaseReward: 40, DifficultyTier: domain.TierEasy},
		{ID: "kill_mire_rat", Title: "Rat Catcher", Description: "The granary crawls with mire rats.", Kind: domain.BountyKindKill, TargetID: "MireRat", Amount: 10, BaseReward: 35, DifficultyTier: domain.TierEasy},
		{ID: "kill_timber_sprite", Title: "Restless Timber", Description: "Timber sprites haunt the logging trail.", Kind: domain.BountyKindKill, TargetID: "TimberSprite", Amount: 8, BaseReward: 45, DifficultyTier: domain.TierEasy},
		{ID: "kill_moss_crawler", Title: "Under the Stones", Description: "Moss crawlers nest beneath the old cairns.", Kind: domain.BountyKindKill, TargetID: "MossCrawler", Amount: 6, BaseReward: 50, DifficultyTier: domain.TierEasy},
		{ID: "kill_river_lurker", Title: "Fouled Waters", Description: "Something drags fishermen from the ford.", Kind: domain.BountyKindKill, TargetID: "RiverLurker", Amount: 5, BaseReward: 55, DifficultyTier: domain.TierEasy},
		{ID: "gather_bramblewood", Title: "Bramblewood Cord", Description: "The bowyer needs seasoned bramblewood.", Kind: domain.BountyKindGather, TargetID: "Bramblewood", Amount: 20, BaseReward: 30, DifficultyTier: domain.TierEasy},
		{ID: "gather_flintstone", Title: "Sparking Stone", Description: "Gather flintstone from the river bank.", Kind: domain.BountyKindGather, TargetID: "Flintstone", Amount: 15, BaseReward: 30, DifficultyTier: domain.TierEasy},
		{ID: "mb_elder_timber_sprite", Title: "The Old One of the Grove", Description: "An elder sprite has claimed the grove.", Kind: domain.BountyKindKill, TargetID: "ElderTimberSprite", Amount: 1, BaseReward: 150, SpawnLevel: 2, DifficultyTier: domain.TierMiniboss, GenderTag: domain.GenderMale},
		{ID: "raid_thicket_boars", Title: "A Sounder Roused", Description: "A whole sounder of boars, stirred to fury.", Kind: domain.BountyKindKill, TargetID: "ThicketBoar", Amount: 6, BaseReward: 220, SpawnLevel: 1, DifficultyTier: domain.TierRaid, GenderTag: domain.GenderAny},

		// Stage 2 - Mirkfen.
		{ID: "kill_fen_stalker", Title: "Eyes in the Reeds", Description: "Fen stalkers shadow the causeway at dusk.", Kind: domain.BountyKindKill, TargetID: "FenStalker", Amount: 7, BaseReward: 65, UnlockRequirement: "defeated_thicket_warden", DifficultyTier: domain.TierEasy},
		{ID: "kill_bog_shambler", Title: "Walking Mud", Description: "Shamblers rise where the peat runs deep.", Kind: domain.BountyKindKill, TargetID: "BogShambler", Amount: 6, BaseReward: 70, UnlockRequirement: "defeated_thicket_warden", DifficultyTier: domain.TierEasy},
		{ID: "kill_marshwing", Title: "Wings over Mirkfen", Description: "Marshwings snatch anything that glitters.", Kind: domain.BountyKindKill, TargetID: "Marshwing", Amount: 8, BaseReward: 60, UnlockRequirement: "defeated_thicket_warden", DifficultyTier: domain.TierEasy},
		{ID: "kill_venom_creeper", Title: "Creeping Venom", Description: "Venom creepers choke the old boardwalk.", Kind: domain.BountyKindKill, TargetID: "VenomCreeper", Amount: 6, BaseReward: 70, UnlockRequirement: "defeated_thicket_warden", DifficultyTier: domain.TierMedium},
		{ID: "kill_dusk_wolf", Title: "The Dusk Pack", Description: "Dusk wolves hunt the fen's edge by night.", Kind: domain.BountyKindKill, TargetID: "DuskWolf", Amount: 5, BaseReward: 75, UnlockRequirement: "defeated_thicket_warden", DifficultyTier: domain.TierMedium},
		{ID: "gather_fen_iron", Title: "Bog Iron", Description: "Dredge fen iron for the smithy.", Kind: domain.BountyKindGather, TargetID: "FenIron", Amount: 12, BaseReward: 50, UnlockRequirement: "defeated_thicket_warden", DifficultyTier: domain.TierEasy},
		{ID: "gather_glowcap", Title: "Lantern Fungus", Description: "Glowcaps light the healer's stillroom.", Kind: domain.BountyKindGather, TargetID: "Glowcap", Amount: 10, BaseReward: 45, UnlockRequirement: "defeated_thicket_warden", DifficultyTier: domain.TierEasy},
		{ID: "mb_fen_stalker_alpha", Title: "The Causeway Killer", Description: "The stalkers follow one cunning alpha.", Kind: domain.BountyKindKill, TargetID: "FenStalkerAlpha", Amount: 1, BaseReward: 240, UnlockRequirement: "defeated_thicket_warden", SpawnLevel: 2, DifficultyTier: domain.TierMiniboss, GenderTag: domain.GenderFemale},
		{ID: "raid_bog_shamblers", Title: "The Peat Rises", Description: "The bog gives up its dead all at once.", Kind: domain.BountyKindKill, TargetID: "BogShambler", Amount: 6, BaseReward: 340, UnlockRequirement: "defeated_thicket_warden", SpawnLevel: 1, DifficultyTier: domain.TierRaid, GenderTag: domain.GenderAny},

		// Stage 3 - Frosthelm Peaks.
		{ID: "kill_frost_wolf", Title: "White Fangs", Description: "Frost wolves raid the shepherd camps.", Kind: domain.BountyKindKill, TargetID: "FrostWolf", Amount: 6, BaseReward: 95, UnlockRequirement: "defeated_fen_mother", DifficultyTier: domain.TierMedium},
		{ID: "kill_crag_golem", Title: "Stone That Walks", Description: "Crag golems block the high pass.", Kind: domain.BountyKindKill, TargetID: "CragGolem", Amount: 4, BaseReward: 110, UnlockRequirement: "defeated_fen_mother", DifficultyTier: domain.TierMedium},
		{ID: "kill_ice_wraith", Title: "Cold Shades", Description: "Ice wraiths drift among the cairns.", Kind: domain.BountyKindKill, TargetID: "IceWraith", Amount: 5, BaseReward: 105, UnlockRequirement: "defeated_fen_mother", DifficultyTier: domain.TierMedium},
		{ID: "kill_snow_harpy", Title: "Shriek on the Wind", Description: "Snow harpies nest above the quarry.", Kind: domain.BountyKindKill, TargetID: "SnowHarpy", Amount: 7, BaseReward: 90, UnlockRequirement: "defeated_fen_mother", DifficultyTier: domain.TierMedium},
		{ID: "gather_silverore", Title: "Vein of Silver", Description: "Cut silverore from the exposed vein.", Kind: domain.BountyKindGather, TargetID: "Silverore", Amount: 10, BaseReward: 70, UnlockRequirement: "defeated_fen_mother", DifficultyTier: domain.TierMedium},
		{ID: "gather_frostbloom", Title: "Flowers of the High Snow", Description: "Frostbloom only opens above the treeline.", Kind: domain.BountyKindGather, TargetID: "Frostbloom", Amount: 8, BaseReward: 65, UnlockRequirement: "defeated_fen_mother", DifficultyTier: domain.TierMedium},
		{ID: "mb_frost_wolf_matriarch", Title: "Mother of the White Pack", Description: "The pack answers to a scarred matriarch.", Kind: domain.BountyKindKill, TargetID: "FrostWolfMatriarch", Amount: 1, BaseReward: 360, UnlockRequirement: "defeated_fen_mother", SpawnLevel: 3, DifficultyTier: domain.TierMiniboss, GenderTag: domain.GenderFemale},
		{ID: "raid_snow_harpies", Title: "The Nesting Cliffs", Description: "The whole aerie takes wing at once.", Kind: domain.BountyKindKill, TargetID: "SnowHarpy", Amount: 8, BaseReward: 500, UnlockRequirement: "defeated_fen_mother", SpawnLevel: 1, DifficultyTier: domain.TierRaid, GenderTag: domain.GenderFemale},

		// Stage 4 - Sunscour Dunes.
		{ID: "kill_dune_prowler", Title: "Prowlers at the Wells", Description: "Dune prowlers stalk the caravan wells.", Kind: domain.BountyKindKill, TargetID: "DuneProwler", Amount: 6, BaseReward: 130, UnlockRequirement: "defeated_frost_jarl", DifficultyTier: domain.TierMedium},
		{ID: "kill_sand_wurm", Title: "Under the Dunes", Description: "Sand wurms swallow pack animals whole.", Kind: domain.BountyKindKill, TargetID: "SandWurm", Amount: 4, BaseReward: 150, UnlockRequirement: "defeated_frost_jarl", DifficultyTier: domain.TierHard},
		{ID: "kill_ash_hyena", Title: "Laughter at Night", Description: "Ash hyenas circle the salt camps.", Kind: domain.BountyKindKill, TargetID: "AshHyena", Amount: 7, BaseReward: 125, UnlockRequirement: "defeated_frost_jarl", DifficultyTier: domain.TierMedium},
		{ID: "kill_glass_scarab", Title: "Glittering Plague", Description: "Glass scarabs strip the date groves bare.", Kind: domain.BountyKindKill, TargetID: "GlassScarab", Amount: 9, BaseReward: 115, UnlockRequirement: "defeated_frost_jarl", DifficultyTier: domain.TierMedium},
		{ID: "gather_duneglass", Title: "Storm Glass", Description: "Lightning leaves duneglass in the sand.", Kind: domain.BountyKindGather, TargetID: "Duneglass", Amount: 10, BaseReward: 90, UnlockRequirement: "defeated_frost_jarl", DifficultyTier: domain.TierMedium},
		{ID: "gather_saltcrystal", Title: "The Salt Pans", Description: "Cut salt crystal for the curing houses.", Kind: domain.BountyKindGather, TargetID: "Saltcrystal", Amount: 12, BaseReward: 85, UnlockRequirement: "defeated_frost_jarl", DifficultyTier: domain.TierMedium},
		{ID: "mb_sand_wurm_broodlord", Title: "The Old Hunger", Description: "A broodlord wurm feeds beneath the trade road.", Kind: domain.BountyKindKill, TargetID: "SandWurmBroodlord", Amount: 1, BaseReward: 520, UnlockRequirement: "defeated_frost_jarl", SpawnLevel: 3, DifficultyTier: domain.TierMiniboss, GenderTag: domain.GenderMale},
		{ID: "raid_dune_prowlers", Title: "The Hunting Dark", Description: "The prowlers hunt as one tonight.", Kind: domain.BountyKindKill, TargetID: "DuneProwler", Amount: 7, BaseReward: 700, UnlockRequirement: "defeated_frost_jarl", SpawnLevel: 2, DifficultyTier: domain.TierRaid, GenderTag: domain.GenderAny},

		// Stage 5 - Emberfall Wastes.
		{ID: "kill_cinder_fiend", Title: "Sparks in the Ash", Description: "Cinder fiends set the scrub alight.", Kind: domain.BountyKindKill, TargetID: "CinderFiend", Amount: 6, BaseReward: 180, UnlockRequirement: "defeated_dune_tyrant", DifficultyTier: domain.TierHard},
		{ID: "kill_lava_hound", Title: "Hounds of the Vent", Description: "Lava hounds den in the old vents.", Kind: domain.BountyKindKill, TargetID: "LavaHound", Amount: 5, BaseReward: 195, UnlockRequirement: "defeated_dune_tyrant", DifficultyTier: domain.TierHard},
		{ID: "kill_ash_revenant", Title: "What the Fire Left", Description: "Revenants walk the burned-out holds.", Kind: domain.BountyKindKill, TargetID: "AshRevenant", Amount: 5, BaseReward: 200, UnlockRequirement: "defeated_dune_tyrant", DifficultyTier: domain.TierHard},
		{ID: "kill_ember_drake", Title: "Low Flames", Description: "Ember drakes roost in the caldera rim.", Kind: domain.BountyKindKill, TargetID: "EmberDrake", Amount: 4, BaseReward: 220, UnlockRequirement: "defeated_dune_tyrant", DifficultyTier: domain.TierHard},
		{ID: "gather_embercore", Title: "Hearts of the Waste", Description: "Embercores still burn days after a kill.", Kind: domain.BountyKindGather, TargetID: "Embercore", Amount: 8, BaseReward: 120, UnlockRequirement: "defeated_dune_tyrant", DifficultyTier: domain.TierHard},
		{ID: "gather_charbone", Title: "Charbone Ash", Description: "The alchemist pays well for charbone.", Kind: domain.BountyKindGather, TargetID: "Charbone", Amount: 10, BaseReward: 110, UnlockRequirement: "defeated_dune_tyrant", DifficultyTier: domain.TierHard},
		{ID: "mb_lava_hound_alpha", Title: "The Vent Tyrant", Description: "One hound rules every den in the waste.", Kind: domain.BountyKindKill, TargetID: "LavaHoundAlpha", Amount: 1, BaseReward: 720, UnlockRequirement: "defeated_dune_tyrant", SpawnLevel: 3, DifficultyTier: domain.TierMiniboss, GenderTag: domain.GenderMale},
		{ID: "raid_cinder_fiends", Title: "Firestorm", Description: "The ash is thick with burning shapes.", Kind: domain.BountyKindKill, TargetID: "CinderFiend", Amount: 8, BaseReward: 950, UnlockRequirement: "defeated_dune_tyrant", SpawnLevel: 2, DifficultyTier: domain.TierRaid, GenderTag: domain.GenderAny},

		// Stage 6 - Hollowdeep.
		{ID: "kill_deep_lurker", Title: "Below the Roots", Description: "Deep lurkers drag miners into the dark.", Kind: domain.BountyKindKill, TargetID: "DeepLurker", Amount: 5, BaseReward: 260, UnlockRequirement: "defeated_ember_king", DifficultyTier: domain.TierHard},
		{ID: "kill_shadow_thrall", Title: "Hollow Men", Description: "Thralls wander the abandoned galleries.", Kind: domain.BountyKindKill, TargetID: "ShadowThrall", Amount: 7, BaseReward: 240, UnlockRequirement: "defeated_ember_king", DifficultyTier: domain.TierHard},
		{ID: "kill_gloom_maw", Title: "The Toothed Dark", Description: "Gloom maws wait where the lamplight fails.", Kind: domain.BountyKindKill, TargetID: "GloomMaw", Amount: 4, BaseReward: 290, UnlockRequirement: "defeated_ember_king", DifficultyTier: domain.TierHard},
		{ID: "kill_pale_widow", Title: "Silk and Bone", Description: "Pale widows web the lower stairs.", Kind: domain.BountyKindKill, TargetID: "PaleWidow", Amount: 5, BaseReward: 270, UnlockRequirement: "defeated_ember_king", DifficultyTier: domain.TierHard},
		{ID: "gather_voidpearl", Title: "Pearls of the Deep", Description: "Voidpearls grow in the blind pools.", Kind: domain.BountyKindGather, TargetID: "Voidpearl", Amount: 6, BaseReward: 160, UnlockRequirement: "defeated_ember_king", DifficultyTier: domain.TierHard},
		{ID: "gather_nightshard", Title: "Shards of Night", Description: "Nightshards hum faintly in the dark.", Kind: domain.BountyKindGather, TargetID: "Nightshard", Amount: 8, BaseReward: 150, UnlockRequirement: "defeated_ember_king", DifficultyTier: domain.TierHard},
		{ID: "mb_gloom_maw_sovereign", Title: "Sovereign of the Hollow", Description: "The maws bow to something older.", Kind: domain.BountyKindKill, TargetID: "GloomMawSovereign", Amount: 1, BaseReward: 1000, UnlockRequirement: "defeated_ember_king", SpawnLevel: 3, DifficultyTier: domain.TierMiniboss, GenderTag: domain.GenderFemale},
		{ID: "raid_shadow_thralls", Title: "The Galleries Wake", Description: "Every gallery empties toward the light.", Kind: domain.BountyKindKill, TargetID: "ShadowThrall", Amount: 10, BaseReward: 1300, UnlockRequirement: "defeated_ember_king", SpawnLevel: 2, DifficultyTier: domain.TierRaid, GenderTag: domain.GenderAny},
	}
}
