package reward

import "github.com/ironvale/bountyhall/internal/domain"

// PoolItem is one reward candidate: an item id with a stack range and
// the quality it is delivered at.
type PoolItem struct {
	ItemID   string
	MinStack int
	MaxStack int
	Quality  int
}

// Pools holds reward candidates per category per progression stage.
// Index matches catalog.StageKeys; a stage with no candidates for a
// category falls back to stage 0 during resolution.
type Pools map[domain.RewardCategory][][]PoolItem

// DefaultPools returns the built-in reward tables. Stack ranges are
// pre-multiplier; resolution scales them by difficulty.
func DefaultPools() Pools {
	return Pools{
		domain.RewardMaterials: {
			{{ItemID: "TannedHide", MinStack: 2, MaxStack: 4, Quality: 1}, {ItemID: "BramblewoodPlank", MinStack: 4, MaxStack: 8, Quality: 1}},
			{{ItemID: "FenIronIngot", MinStack: 2, MaxStack: 5, Quality: 1}, {ItemID: "StalkerLeather", MinStack: 2, MaxStack: 4, Quality: 1}},
			{{ItemID: "SilverIngot", MinStack: 2, MaxStack: 4, Quality: 1}, {ItemID: "WolfPelt", MinStack: 2, MaxStack: 4, Quality: 1}},
			{{ItemID: "DuneglassShard", MinStack: 2, MaxStack: 4, Quality: 1}, {ItemID: "HyenaLeather", MinStack: 2, MaxStack: 4, Quality: 1}},
			{{ItemID: "EmberforgedPlate", MinStack: 1, MaxStack: 3, Quality: 2}, {ItemID: "DrakeScale", MinStack: 2, MaxStack: 4, Quality: 2}},
			{{ItemID: "NightforgedBar", MinStack: 1, MaxStack: 3, Quality: 2}, {ItemID: "WidowSilkBolt", MinStack: 2, MaxStack: 4, Quality: 2}},
		},
		domain.RewardResources: {
			{{ItemID: "Bramblewood", MinStack: 8, MaxStack: 15, Quality: 1}, {ItemID: "Flintstone", MinStack: 6, MaxStack: 10, Quality: 1}},
			{{ItemID: "FenIron", MinStack: 6, MaxStack: 10, Quality: 1}, {ItemID: "Glowcap", MinStack: 5, MaxStack: 8, Quality: 1}},
			{{ItemID: "Silverore", MinStack: 5, MaxStack: 9, Quality: 1}, {ItemID: "Frostbloom", MinStack: 4, MaxStack: 7, Quality: 1}},
			{{ItemID: "Duneglass", MinStack: 4, MaxStack: 8, Quality: 1}, {ItemID: "Saltcrystal", MinStack: 6, MaxStack: 10, Quality: 1}},
			{{ItemID: "Embercore", MinStack: 3, MaxStack: 6, Quality: 1}, {ItemID: "Charbone", MinStack: 5, MaxStack: 8, Quality: 1}},
			{{ItemID: "Voidpearl", MinStack: 2, MaxStack: 5, Quality: 1}, {ItemID: "Nightshard", MinStack: 4, MaxStack: 7, Quality: 1}},
		},
		domain.RewardConsumables: {
			{{ItemID: "RoastBoar", MinStack: 3, MaxStack: 5, Quality: 1}, {ItemID: "HoneyTonic", MinStack: 2, MaxStack: 4, Quality: 1}},
			{{ItemID: "FenStew", MinStack: 3, MaxStack: 5, Quality: 1}, {ItemID: "AntidotePhial", MinStack: 2, MaxStack: 3, Quality: 1}},
			{{ItemID: "FrostbloomTea", MinStack: 2, MaxStack: 4, Quality: 1}, {ItemID: "HuntersMead", MinStack: 3, MaxStack: 5, Quality: 1}},
			{{ItemID: "SaltedJerky", MinStack: 4, MaxStack: 6, Quality: 1}, {ItemID: "CactusDraught", MinStack: 2, MaxStack: 4, Quality: 1}},
			{{ItemID: "EmberBalm", MinStack: 2, MaxStack: 3, Quality: 1}, {ItemID: "FirewardPhial", MinStack: 2, MaxStack: 3, Quality: 1}},
			{{ItemID: "GloomElixir", MinStack: 1, MaxStack: 3, Quality: 1}, {ItemID: "DeepwardDraught", MinStack: 2, MaxStack: 3, Quality: 1}},
		},
	}
}
