package blend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dapplicaio/FarmGame/internal/assets"
	"github.com/dapplicaio/FarmGame/internal/concurrency"
	"github.com/dapplicaio/FarmGame/internal/domain"
	"github.com/dapplicaio/FarmGame/internal/repository/memory"
)

const (
	templateA      = int32(601)
	templateB      = int32(602)
	templateOutput = int32(650)
)

type fixture struct {
	repo   *memory.Repository
	ledger *assets.MemoryLedger
	svc    Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := memory.NewRepository()
	assetLedger := assets.NewMemoryLedger()
	for _, id := range []int32{templateA, templateB, templateOutput} {
		assetLedger.AddTemplate(assets.Template{
			ID:         id,
			Collection: "collname",
			Schema:     "items",
			Immutable:  domain.AttributeMap{},
		})
	}
	svc := NewService(repo, assetLedger, concurrency.NewLockManager(), "collname")
	return &fixture{repo: repo, ledger: assetLedger, svc: svc}
}

func (f *fixture) addAsset(t *testing.T, templateID int32) uint64 {
	t.Helper()
	return f.ledger.AddAsset(assets.Asset{
		Collection: "collname",
		Schema:     "items",
		TemplateID: templateID,
		Owner:      "farmgame",
	})
}

func (f *fixture) addRecipe(t *testing.T, components []int32) int64 {
	t.Helper()
	blendID, err := f.svc.AddRecipe(context.Background(), components, templateOutput)
	require.NoError(t, err)
	return blendID
}

func TestAddRecipe(t *testing.T) {
	ctx := context.Background()

	t.Run("registers and retrieves a recipe", func(t *testing.T) {
		f := newFixture(t)
		blendID := f.addRecipe(t, []int32{templateA, templateA, templateB})

		recipe, err := f.repo.GetRecipe(ctx, blendID)
		require.NoError(t, err)
		assert.Equal(t, []int32{templateA, templateA, templateB}, recipe.Components)
		assert.Equal(t, templateOutput, recipe.OutputTemplate)
	})

	t.Run("rejects an empty component list", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.AddRecipe(ctx, nil, templateOutput)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects an unknown output template", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.AddRecipe(ctx, []int32{templateA}, 999)
		assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
	})
}

func TestBlend(t *testing.T) {
	ctx := context.Background()

	t.Run("burns the components and mints the output", func(t *testing.T) {
		f := newFixture(t)
		blendID := f.addRecipe(t, []int32{templateA, templateA, templateB})
		first := f.addAsset(t, templateA)
		second := f.addAsset(t, templateA)
		third := f.addAsset(t, templateB)

		require.NoError(t, f.svc.Blend(ctx, "alice", []uint64{first, second, third}, blendID))

		for _, id := range []uint64{first, second, third} {
			_, err := f.ledger.ResolveAsset(ctx, id)
			assert.ErrorIs(t, err, domain.ErrAssetNotFound)
		}

		minted := f.ledger.AssetsOwnedBy("alice")
		require.Len(t, minted, 1)
		output, err := f.ledger.ResolveAsset(ctx, minted[0])
		require.NoError(t, err)
		assert.Equal(t, templateOutput, output.TemplateID)
	})

	t.Run("rejects the wrong multiset and keeps the inputs", func(t *testing.T) {
		f := newFixture(t)
		blendID := f.addRecipe(t, []int32{templateA, templateA, templateB})
		first := f.addAsset(t, templateA)
		second := f.addAsset(t, templateB)
		third := f.addAsset(t, templateB)

		err := f.svc.Blend(ctx, "alice", []uint64{first, second, third}, blendID)
		assert.ErrorIs(t, err, domain.ErrInvalidComponents)

		// nothing flushed, every input still exists
		for _, id := range []uint64{first, second, third} {
			_, rerr := f.ledger.ResolveAsset(ctx, id)
			assert.NoError(t, rerr)
		}
		assert.Empty(t, f.ledger.AssetsOwnedBy("alice"))
	})

	t.Run("rejects a component count mismatch", func(t *testing.T) {
		f := newFixture(t)
		blendID := f.addRecipe(t, []int32{templateA, templateB})
		first := f.addAsset(t, templateA)

		err := f.svc.Blend(ctx, "alice", []uint64{first}, blendID)
		assert.ErrorIs(t, err, domain.ErrComponentCountMismatch)
	})

	t.Run("rejects an asset from another collection", func(t *testing.T) {
		f := newFixture(t)
		blendID := f.addRecipe(t, []int32{templateA})
		forged := f.ledger.AddAsset(assets.Asset{
			Collection: "othercoll",
			Schema:     "items",
			TemplateID: templateA,
			Owner:      "farmgame",
		})

		err := f.svc.Blend(ctx, "alice", []uint64{forged}, blendID)
		assert.ErrorIs(t, err, domain.ErrForgedAsset)
	})

	t.Run("rejects an unknown recipe", func(t *testing.T) {
		f := newFixture(t)
		first := f.addAsset(t, templateA)
		err := f.svc.Blend(ctx, "alice", []uint64{first}, 99)
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})
}
