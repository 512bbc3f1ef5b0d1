package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dapplicaio/FarmGame/internal/domain"
)

func getRecipe(ctx context.Context, q dbtx, blendID int64) (*domain.BlendRecipe, error) {
	recipe := &domain.BlendRecipe{BlendID: blendID}
	err := q.QueryRow(ctx,
		`SELECT components, output_template FROM blend_recipes WHERE blend_id = $1`,
		blendID).Scan(&recipe.Components, &recipe.OutputTemplate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get blend recipe: %w", err)
	}
	return recipe, nil
}

// GetRecipe retrieves a blend recipe inside the transaction
func (t *gameTx) GetRecipe(ctx context.Context, blendID int64) (*domain.BlendRecipe, error) {
	return getRecipe(ctx, t.tx, blendID)
}

// CreateRecipe inserts a new blend recipe and returns its assigned id
func (t *gameTx) CreateRecipe(ctx context.Context, components []int32, outputTemplate int32) (int64, error) {
	var blendID int64
	err := t.tx.QueryRow(ctx,
		`INSERT INTO blend_recipes (components, output_template) VALUES ($1, $2) RETURNING blend_id`,
		components, outputTemplate).Scan(&blendID)
	if err != nil {
		return 0, fmt.Errorf("failed to create blend recipe: %w", err)
	}
	return blendID, nil
}
