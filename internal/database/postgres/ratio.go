package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dapplicaio/FarmGame/internal/domain"
)

func getRatio(ctx context.Context, q dbtx, resource string) (float64, error) {
	var ratio float64
	err := q.QueryRow(ctx,
		`SELECT ratio FROM resource_costs WHERE resource = $1`,
		resource).Scan(&ratio)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrRatioNotFound
		}
		return 0, fmt.Errorf("failed to get swap ratio: %w", err)
	}
	return ratio, nil
}

// GetRatio retrieves the swap ratio inside the transaction
func (t *gameTx) GetRatio(ctx context.Context, resource string) (float64, error) {
	return getRatio(ctx, t.tx, resource)
}

// UpsertRatio sets the swap ratio for a resource, overwriting any existing one
func (t *gameTx) UpsertRatio(ctx context.Context, resource string, ratio float64) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO resource_costs (resource, ratio)
		 VALUES ($1, $2)
		 ON CONFLICT (resource) DO UPDATE SET ratio = EXCLUDED.ratio`,
		resource, ratio)
	if err != nil {
		return fmt.Errorf("failed to upsert swap ratio: %w", err)
	}
	return nil
}
