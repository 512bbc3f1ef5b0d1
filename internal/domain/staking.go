package domain

// StakedFarmingItem records a farming item staked by an owner together with
// the producing items currently attached to its slots. The staked set is
// append-only and bounded by the farming item's slots attribute.
type StakedFarmingItem struct {
	Owner       string   `json:"owner" db:"owner"`
	AssetID     uint64   `json:"asset_id" db:"asset_id"`
	StakedItems []uint64 `json:"staked_items" db:"staked_items"`
}

// Contains reports whether the producing item is attached to this farming item.
func (s *StakedFarmingItem) Contains(assetID uint64) bool {
	for _, id := range s.StakedItems {
		if id == assetID {
			return true
		}
	}
	return false
}
