package domain

// RewardCategory identifies one of the four reward menu slots.
type RewardCategory string

const (
	RewardCurrency    RewardCategory = "currency"
	RewardMaterials   RewardCategory = "materials"
	RewardResources   RewardCategory = "resources"
	RewardConsumables RewardCategory = "consumables"
)

// RewardCategories lists the menu slots in display order. Resolution
// always produces exactly one option per category.
var RewardCategories = []RewardCategory{
	RewardCurrency,
	RewardMaterials,
	RewardResources,
	RewardConsumables,
}

// RewardOption is one resolved entry of a bounty's reward menu.
// For the currency category CoinAmount is set and ItemID is empty;
// for item categories ItemID/Stack/Quality describe the delivery.
// A placeholder option (empty ItemID, DisplayText "???") fills a slot
// whose pool had no candidates so the menu always has four entries.
type RewardOption struct {
	Category    RewardCategory `json:"category"`
	ItemID      string         `json:"item_id,omitempty"`
	Stack       int            `json:"stack"`
	Quality     int            `json:"quality"`
	CoinAmount  int            `json:"coin_amount,omitempty"`
	DisplayText string         `json:"display_text"`
}

// IsPlaceholder reports whether the option is a filler slot that cannot
// be delivered.
func (r RewardOption) IsPlaceholder() bool {
	return r.Category != RewardCurrency && r.ItemID == ""
}
