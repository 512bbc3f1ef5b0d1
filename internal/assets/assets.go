// Package assets talks to the external asset-ownership ledger. The ledger
// owns asset custody, burns, and mints; this system only reads and writes
// typed attributes and stages irrevocable calls until its own transaction
// commits.
package assets

import (
	"context"

	"github.com/dapplicaio/FarmGame/internal/domain"
)

// Asset is the resolved view of a unique asset held by the ledger.
type Asset struct {
	ID         uint64 `json:"asset_id"`
	Collection string `json:"collection"`
	Schema     string `json:"schema"`
	TemplateID int32  `json:"template_id"`
	Owner      string `json:"owner"` // current custody
}

// Template is the immutable shared definition backing assets minted from it.
type Template struct {
	ID         int32               `json:"template_id"`
	Collection string              `json:"collection"`
	Schema     string              `json:"schema"`
	Immutable  domain.AttributeMap `json:"immutable_data"`
}

// Ledger is the asset-ownership collaborator. Implementations resolve assets
// and templates, expose typed attribute maps, and execute burns and mints.
// Burn and Mint are irrevocable once executed; callers must only invoke them
// through an Outbox flushed after their own transaction commits.
type Ledger interface {
	ResolveAsset(ctx context.Context, assetID uint64) (*Asset, error)
	MutableData(ctx context.Context, assetID uint64) (domain.AttributeMap, error)
	SetMutableData(ctx context.Context, assetID uint64, owner string, data domain.AttributeMap) error
	ResolveTemplate(ctx context.Context, collection string, templateID int32) (*Template, error)
	Burn(ctx context.Context, assetID uint64) error
	Mint(ctx context.Context, collection, schema string, templateID int32, owner string, immutable, mutable domain.AttributeMap) error
}

// TokenTransferor is the currency collaborator issuing fungible transfers
// out of this system's account.
type TokenTransferor interface {
	Transfer(ctx context.Context, to string, quantity domain.TokenAmount, memo string) error
}
