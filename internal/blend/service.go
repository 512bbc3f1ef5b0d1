// Package blend consumes deposited component assets and mints the recipe
// output.
package blend

import (
	"context"
	"fmt"

	"github.com/dapplicaio/FarmGame/internal/assets"
	"github.com/dapplicaio/FarmGame/internal/concurrency"
	"github.com/dapplicaio/FarmGame/internal/domain"
	"github.com/dapplicaio/FarmGame/internal/logger"
	"github.com/dapplicaio/FarmGame/internal/metrics"
	"github.com/dapplicaio/FarmGame/internal/repository"
)

// Service manages blend recipes and executes blends.
type Service interface {
	// AddRecipe registers a recipe and returns its assigned id.
	AddRecipe(ctx context.Context, components []int32, outputTemplate int32) (int64, error)

	// Blend consumes the deposited assets as the recipe's components and
	// mints one output asset to the owner. The submitted assets must cover
	// the component template list exactly, as a multiset.
	Blend(ctx context.Context, owner string, assetIDs []uint64, blendID int64) error
}

type service struct {
	repo        repository.Game
	assetLedger assets.Ledger
	locks       *concurrency.LockManager
	collection  string
}

// NewService creates a blend service scoped to the given collection.
func NewService(repo repository.Game, assetLedger assets.Ledger, locks *concurrency.LockManager, collection string) Service {
	return &service{
		repo:        repo,
		assetLedger: assetLedger,
		locks:       locks,
		collection:  collection,
	}
}

func (s *service) AddRecipe(ctx context.Context, components []int32, outputTemplate int32) (int64, error) {
	log := logger.FromContext(ctx)

	if len(components) == 0 {
		return 0, fmt.Errorf("%w: recipe needs at least one component", domain.ErrInvalidInput)
	}
	if _, err := s.assetLedger.ResolveTemplate(ctx, s.collection, outputTemplate); err != nil {
		return 0, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	defer repository.SafeRollback(ctx, tx)

	blendID, err := tx.CreateRecipe(ctx, components, outputTemplate)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit recipe: %w", err)
	}

	log.Info("Added blend recipe", "blend_id", blendID, "components", len(components), "output_template", outputTemplate)
	return blendID, nil
}

func (s *service) Blend(ctx context.Context, owner string, assetIDs []uint64, blendID int64) error {
	log := logger.FromContext(ctx)

	lock := s.locks.GetLock(owner)
	lock.Lock()
	defer lock.Unlock()

	recipe, err := s.repo.GetRecipe(ctx, blendID)
	if err != nil {
		return err
	}
	if len(assetIDs) != len(recipe.Components) {
		return fmt.Errorf("%w: recipe %d takes %d components, got %d",
			domain.ErrComponentCountMismatch, blendID, len(recipe.Components), len(assetIDs))
	}

	required := make(map[int32]int, len(recipe.Components))
	for _, templateID := range recipe.Components {
		required[templateID]++
	}

	// Burns stage as each component matches; a later mismatch aborts before
	// anything flushes, so the deposited assets survive a failed blend.
	outbox := assets.NewOutbox(s.assetLedger, nil)
	for _, assetID := range assetIDs {
		asset, err := s.assetLedger.ResolveAsset(ctx, assetID)
		if err != nil {
			return err
		}
		if asset.Collection != s.collection {
			return fmt.Errorf("%w: asset %d belongs to collection %s", domain.ErrForgedAsset, assetID, asset.Collection)
		}
		if required[asset.TemplateID] == 0 {
			return fmt.Errorf("%w: template %d is not an open component of recipe %d",
				domain.ErrInvalidComponents, asset.TemplateID, blendID)
		}
		required[asset.TemplateID]--
		outbox.Burn(assetID)
	}

	outTmpl, err := s.assetLedger.ResolveTemplate(ctx, s.collection, recipe.OutputTemplate)
	if err != nil {
		return err
	}
	outbox.Mint(outTmpl.Collection, outTmpl.Schema, outTmpl.ID, owner)

	if err := outbox.Flush(ctx); err != nil {
		return err
	}

	metrics.BlendsTotal.Inc()
	log.Info("Blended assets", "owner", owner, "blend_id", blendID, "burned", len(assetIDs))
	return nil
}
