package domain

// ResourceBalance is one (owner, resource) row of the resource ledger.
// Amount is always positive: a balance debited to exactly zero is deleted,
// never kept as a zero row.
type ResourceBalance struct {
	Owner    string  `json:"owner" db:"owner"`
	Resource string  `json:"resource" db:"resource"`
	Amount   float64 `json:"amount" db:"amount"`
}

// ResourceCost prices a resource in fungible-currency terms.
// If a user swaps 100 wood and the ratio is 25, the user receives 4 tokens.
type ResourceCost struct {
	Resource string  `json:"resource" db:"resource"`
	Ratio    float64 `json:"ratio" db:"ratio"`
}
