package repository

import (
	"context"

	"github.com/dapplicaio/FarmGame/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	// Resource balances. GetBalanceForUpdate locks the row for the rest of
	// the transaction; the bool reports whether the row exists.
	GetBalanceForUpdate(ctx context.Context, owner, resource string) (float64, bool, error)
	UpsertBalance(ctx context.Context, owner, resource string, amount float64) error
	DeleteBalance(ctx context.Context, owner, resource string) error

	// Staked farming items
	GetStakedFarmingItem(ctx context.Context, owner string, assetID uint64) (*domain.StakedFarmingItem, error)
	CreateStakedFarmingItem(ctx context.Context, owner string, assetID uint64) error
	UpdateStakedItems(ctx context.Context, owner string, assetID uint64, items []uint64) error

	// Blend recipes
	GetRecipe(ctx context.Context, blendID int64) (*domain.BlendRecipe, error)
	CreateRecipe(ctx context.Context, components []int32, outputTemplate int32) (int64, error)

	// Swap ratios
	GetRatio(ctx context.Context, resource string) (float64, error)
	UpsertRatio(ctx context.Context, resource string, ratio float64) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
