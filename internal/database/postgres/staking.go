package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dapplicaio/FarmGame/internal/domain"
)

func getStakedFarmingItem(ctx context.Context, q dbtx, owner string, assetID uint64) (*domain.StakedFarmingItem, error) {
	var staked []int64
	err := q.QueryRow(ctx,
		`SELECT staked_items FROM staked_farming_items WHERE owner = $1 AND asset_id = $2`,
		owner, int64(assetID)).Scan(&staked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStakedItemNotFound
		}
		return nil, fmt.Errorf("failed to get staked farming item: %w", err)
	}
	return &domain.StakedFarmingItem{
		Owner:       owner,
		AssetID:     assetID,
		StakedItems: toUint64Slice(staked),
	}, nil
}

// GetStakedFarmingItem retrieves the staked record inside the transaction
func (t *gameTx) GetStakedFarmingItem(ctx context.Context, owner string, assetID uint64) (*domain.StakedFarmingItem, error) {
	return getStakedFarmingItem(ctx, t.tx, owner, assetID)
}

// CreateStakedFarmingItem records a farming item under the owner's staked set
func (t *gameTx) CreateStakedFarmingItem(ctx context.Context, owner string, assetID uint64) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO staked_farming_items (owner, asset_id, staked_items) VALUES ($1, $2, '{}')`,
		owner, int64(assetID))
	if err != nil {
		return fmt.Errorf("failed to create staked farming item: %w", err)
	}
	return nil
}

// UpdateStakedItems overwrites the staked producing-item set
func (t *gameTx) UpdateStakedItems(ctx context.Context, owner string, assetID uint64, items []uint64) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE staked_farming_items SET staked_items = $3 WHERE owner = $1 AND asset_id = $2`,
		owner, int64(assetID), toInt64Slice(items))
	if err != nil {
		return fmt.Errorf("failed to update staked items: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStakedItemNotFound
	}
	return nil
}

func toUint64Slice(in []int64) []uint64 {
	out := make([]uint64, len(in))
	for i, v := range in {
		out[i] = uint64(v)
	}
	return out
}

func toInt64Slice(in []uint64) []int64 {
	out := make([]int64, len(in))
	for i, v := range in {
		out[i] = int64(v)
	}
	return out
}
