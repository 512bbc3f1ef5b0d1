package repository

import (
	"context"

	"github.com/dapplicaio/FarmGame/internal/domain"
)

// Game defines the data access surface shared by all game services.
// Reads outside a transaction serve queries; every state mutation goes
// through a Tx so a failing action leaves no partial effect.
type Game interface {
	BeginTx(ctx context.Context) (Tx, error)

	GetBalances(ctx context.Context, owner string) ([]domain.ResourceBalance, error)
	GetRecipe(ctx context.Context, blendID int64) (*domain.BlendRecipe, error)
	GetRatio(ctx context.Context, resource string) (float64, error)
	GetStakedFarmingItem(ctx context.Context, owner string, assetID uint64) (*domain.StakedFarmingItem, error)
}
