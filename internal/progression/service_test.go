package progression

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dapplicaio/FarmGame/internal/accrual"
	"github.com/dapplicaio/FarmGame/internal/assets"
	"github.com/dapplicaio/FarmGame/internal/concurrency"
	"github.com/dapplicaio/FarmGame/internal/config"
	"github.com/dapplicaio/FarmGame/internal/domain"
	"github.com/dapplicaio/FarmGame/internal/ledger"
	"github.com/dapplicaio/FarmGame/internal/repository/memory"
)

type fixture struct {
	repo      *memory.Repository
	ledger    *assets.MemoryLedger
	balances  ledger.Service
	svc       *service
	farmingID uint64
	itemID    uint64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	repo := memory.NewRepository()
	assetLedger := assets.NewMemoryLedger()
	balances := ledger.NewService(repo)
	balanceCfg := config.DefaultBalance()

	assetLedger.AddTemplate(assets.Template{
		ID:         500,
		Collection: "collname",
		Schema:     "farms",
		Immutable: domain.AttributeMap{
			domain.AttrMaxSlots:           domain.Uint8Value(3),
			domain.AttrStakeableResources: domain.StringListValue([]string{"wood"}),
		},
	})
	assetLedger.AddTemplate(assets.Template{
		ID:         601,
		Collection: "collname",
		Schema:     "items",
		Immutable: domain.AttributeMap{
			domain.AttrFarmResource: domain.StringValue("wood"),
			domain.AttrMiningRate:   domain.Float32Value(0.1),
			domain.AttrMaxLevel:     domain.Uint8Value(25),
		},
	})

	farmingID := assetLedger.AddAsset(assets.Asset{
		Collection: "collname",
		Schema:     "farms",
		TemplateID: 500,
		Owner:      "farmgame",
	})
	require.NoError(t, assetLedger.SetMutableData(ctx, farmingID, "farmgame", domain.AttributeMap{
		domain.AttrSlots: domain.Uint8Value(1),
		domain.AttrLevel: domain.Uint8Value(1),
	}))

	itemID := assetLedger.AddAsset(assets.Asset{
		Collection: "collname",
		Schema:     "items",
		TemplateID: 601,
		Owner:      "farmgame",
	})
	require.NoError(t, assetLedger.SetMutableData(ctx, itemID, "farmgame", domain.AttributeMap{
		domain.AttrLevel:     domain.Uint8Value(1),
		domain.AttrLastClaim: domain.Uint32Value(1000),
	}))

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.CreateStakedFarmingItem(ctx, "alice", farmingID))
	require.NoError(t, tx.UpdateStakedItems(ctx, "alice", farmingID, []uint64{itemID}))
	require.NoError(t, tx.Commit(ctx))

	engine := accrual.NewEngine(assetLedger, balanceCfg.RatePercentPerLevel)
	svc := NewService(repo, balances, engine, assetLedger, concurrency.NewLockManager(), balanceCfg).(*service)
	svc.now = func() int64 { return 2000 }

	return &fixture{
		repo:      repo,
		ledger:    assetLedger,
		balances:  balances,
		svc:       svc,
		farmingID: farmingID,
		itemID:    itemID,
	}
}

func (f *fixture) seedBalance(t *testing.T, owner, resource string, amount float64) {
	t.Helper()
	ctx := context.Background()
	tx, err := f.repo.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, f.balances.Credit(ctx, tx, owner, resource, amount))
	require.NoError(t, tx.Commit(ctx))
}

func TestUpgradeItem(t *testing.T) {
	ctx := context.Background()

	t.Run("settles accrual, charges the cost, and time-locks the item", func(t *testing.T) {
		f := newFixture(t)
		f.seedBalance(t, "alice", "wood", 50)

		require.NoError(t, f.svc.UpgradeItem(ctx, "alice", f.itemID, 2, f.farmingID))

		mdata, err := f.ledger.MutableData(ctx, f.itemID)
		require.NoError(t, err)
		level, err := mdata.Uint8(domain.AttrLevel)
		require.NoError(t, err)
		assert.Equal(t, uint8(2), level)
		lastClaim, err := mdata.Uint32(domain.AttrLastClaim)
		require.NoError(t, err)
		assert.Equal(t, uint32(2320), lastClaim)

		// 1000s at the level-1 rate accrued, 320s at the level-2 rate charged
		balances, err := f.balances.Balances(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, balances, 1)
		assert.InDelta(t, 50+100-32.64, balances[0].Amount, 1e-2)
	})

	t.Run("upgrades across multiple levels in one jump", func(t *testing.T) {
		f := newFixture(t)
		f.seedBalance(t, "alice", "wood", 50)

		require.NoError(t, f.svc.UpgradeItem(ctx, "alice", f.itemID, 3, f.farmingID))

		mdata, err := f.ledger.MutableData(ctx, f.itemID)
		require.NoError(t, err)
		level, err := mdata.Uint8(domain.AttrLevel)
		require.NoError(t, err)
		assert.Equal(t, uint8(3), level)
		lastClaim, err := mdata.Uint32(domain.AttrLastClaim)
		require.NoError(t, err)
		assert.Equal(t, uint32(2640), lastClaim)

		// the whole 640s span is charged at the level-3 rate
		balances, err := f.balances.Balances(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, balances, 1)
		assert.InDelta(t, 50+100-66.5856, balances[0].Amount, 1e-2)
	})

	t.Run("applies the farming item's mining boost to the settled accrual", func(t *testing.T) {
		f := newFixture(t)
		f.seedBalance(t, "alice", "wood", 50)
		require.NoError(t, f.ledger.SetMutableData(ctx, f.farmingID, "farmgame", domain.AttributeMap{
			domain.AttrSlots:       domain.Uint8Value(1),
			domain.AttrLevel:       domain.Uint8Value(1),
			domain.AttrMiningBoost: domain.Float32Value(2),
		}))

		require.NoError(t, f.svc.UpgradeItem(ctx, "alice", f.itemID, 2, f.farmingID))

		balances, err := f.balances.Balances(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, balances, 1)
		assert.InDelta(t, 50+200-32.64, balances[0].Amount, 1e-2)
	})

	t.Run("rejects a target at or below the current level", func(t *testing.T) {
		f := newFixture(t)
		err := f.svc.UpgradeItem(ctx, "alice", f.itemID, 1, f.farmingID)
		assert.ErrorIs(t, err, domain.ErrInvalidLevel)
	})

	t.Run("rejects going past the template cap", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.AddTemplate(assets.Template{
			ID:         601,
			Collection: "collname",
			Schema:     "items",
			Immutable: domain.AttributeMap{
				domain.AttrFarmResource: domain.StringValue("wood"),
				domain.AttrMiningRate:   domain.Float32Value(0.1),
				domain.AttrMaxLevel:     domain.Uint8Value(1),
			},
		})
		err := f.svc.UpgradeItem(ctx, "alice", f.itemID, 2, f.farmingID)
		assert.ErrorIs(t, err, domain.ErrLevelCapExceeded)
	})

	t.Run("rejects an item still locked by a previous upgrade", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.ledger.SetMutableData(ctx, f.itemID, "farmgame", domain.AttributeMap{
			domain.AttrLevel:     domain.Uint8Value(1),
			domain.AttrLastClaim: domain.Uint32Value(3000),
		}))
		err := f.svc.UpgradeItem(ctx, "alice", f.itemID, 2, f.farmingID)
		assert.ErrorIs(t, err, domain.ErrAlreadyUpgrading)
	})

	t.Run("rejects an item whose lock expires this very second", func(t *testing.T) {
		f := newFixture(t)
		f.seedBalance(t, "alice", "wood", 50)
		require.NoError(t, f.ledger.SetMutableData(ctx, f.itemID, "farmgame", domain.AttributeMap{
			domain.AttrLevel:     domain.Uint8Value(1),
			domain.AttrLastClaim: domain.Uint32Value(2000),
		}))
		err := f.svc.UpgradeItem(ctx, "alice", f.itemID, 2, f.farmingID)
		assert.ErrorIs(t, err, domain.ErrAlreadyUpgrading)
	})

	t.Run("rejects an item that is not staked at the farming item", func(t *testing.T) {
		f := newFixture(t)
		tx, err := f.repo.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.UpdateStakedItems(ctx, "alice", f.farmingID, []uint64{}))
		require.NoError(t, tx.Commit(ctx))

		err = f.svc.UpgradeItem(ctx, "alice", f.itemID, 2, f.farmingID)
		assert.ErrorIs(t, err, domain.ErrItemNotStaked)
	})

	t.Run("rejects an unknown farming item", func(t *testing.T) {
		f := newFixture(t)
		err := f.svc.UpgradeItem(ctx, "alice", f.itemID, 2, 999)
		assert.ErrorIs(t, err, domain.ErrStakedItemNotFound)
	})

	t.Run("an unaffordable upgrade leaves balances and the item untouched", func(t *testing.T) {
		f := newFixture(t)
		// one second of accrual cannot cover the cost, no seeded balance
		require.NoError(t, f.ledger.SetMutableData(ctx, f.itemID, "farmgame", domain.AttributeMap{
			domain.AttrLevel:     domain.Uint8Value(1),
			domain.AttrLastClaim: domain.Uint32Value(1999),
		}))

		err := f.svc.UpgradeItem(ctx, "alice", f.itemID, 2, f.farmingID)
		assert.ErrorIs(t, err, domain.ErrOverdrawn)

		mdata, merr := f.ledger.MutableData(ctx, f.itemID)
		require.NoError(t, merr)
		level, lerr := mdata.Uint8(domain.AttrLevel)
		require.NoError(t, lerr)
		assert.Equal(t, uint8(1), level)

		balances, berr := f.balances.Balances(ctx, "alice")
		require.NoError(t, berr)
		assert.Empty(t, balances)
	})
}

func TestUpgradeFarmingItem(t *testing.T) {
	ctx := context.Background()

	t.Run("grows a staked farming item by one slot", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.svc.UpgradeFarmingItem(ctx, "alice", f.farmingID, true))

		mdata, err := f.ledger.MutableData(ctx, f.farmingID)
		require.NoError(t, err)
		slots, err := mdata.Uint8(domain.AttrSlots)
		require.NoError(t, err)
		assert.Equal(t, uint8(2), slots)
	})

	t.Run("rejects growth past the template cap", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.ledger.SetMutableData(ctx, f.farmingID, "farmgame", domain.AttributeMap{
			domain.AttrSlots: domain.Uint8Value(3),
			domain.AttrLevel: domain.Uint8Value(1),
		}))
		err := f.svc.UpgradeFarmingItem(ctx, "alice", f.farmingID, true)
		assert.ErrorIs(t, err, domain.ErrSlotCapExceeded)
	})

	t.Run("rejects an unstaked farming item held by someone else", func(t *testing.T) {
		f := newFixture(t)
		err := f.svc.UpgradeFarmingItem(ctx, "alice", f.farmingID, false)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("rejects a staked flag without a staked record", func(t *testing.T) {
		f := newFixture(t)
		err := f.svc.UpgradeFarmingItem(ctx, "bob", f.farmingID, true)
		assert.ErrorIs(t, err, domain.ErrStakedItemNotFound)
	})
}
