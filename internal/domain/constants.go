package domain

// Attribute keys on mutable asset data
const (
	AttrSlots       = "slots"
	AttrLevel       = "level"
	AttrLastClaim   = "lastClaim"
	AttrMiningBoost = "miningBoost"
)

// Attribute keys on immutable template data
const (
	AttrMaxSlots           = "maxSlots"
	AttrMaxLevel           = "maxLevel"
	AttrFarmResource       = "farmResource"
	AttrMiningRate         = "miningRate"
	AttrStakeableResources = "stakeableResources"
)

// Deposit memo grammar
const (
	MemoStakeFarmingItem = "stake farming item"
	MemoPrefixStakeItems = "stake items:"
	MemoPrefixBlend      = "blend:"
)
