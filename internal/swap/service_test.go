package swap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dapplicaio/FarmGame/internal/assets"
	"github.com/dapplicaio/FarmGame/internal/concurrency"
	"github.com/dapplicaio/FarmGame/internal/config"
	"github.com/dapplicaio/FarmGame/internal/domain"
	"github.com/dapplicaio/FarmGame/internal/ledger"
	"github.com/dapplicaio/FarmGame/internal/repository/memory"
)

type fixture struct {
	repo       *memory.Repository
	balances   ledger.Service
	transferor *assets.MemoryTransferor
	svc        Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := memory.NewRepository()
	balances := ledger.NewService(repo)
	transferor := assets.NewMemoryTransferor()
	svc := NewService(repo, balances, assets.NewMemoryLedger(), transferor, concurrency.NewLockManager(), config.DefaultBalance())
	return &fixture{repo: repo, balances: balances, transferor: transferor, svc: svc}
}

func (f *fixture) seedBalance(t *testing.T, owner, resource string, amount float64) {
	t.Helper()
	ctx := context.Background()
	tx, err := f.repo.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, f.balances.Credit(ctx, tx, owner, resource, amount))
	require.NoError(t, tx.Commit(ctx))
}

func TestSetRatio(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and overwrites the ratio", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.svc.SetRatio(ctx, "wood", 25))
		require.NoError(t, f.svc.SetRatio(ctx, "wood", 30))

		ratio, err := f.repo.GetRatio(ctx, "wood")
		require.NoError(t, err)
		assert.InDelta(t, 30, ratio, 1e-9)
	})

	t.Run("rejects a non-positive ratio", func(t *testing.T) {
		f := newFixture(t)
		assert.ErrorIs(t, f.svc.SetRatio(ctx, "wood", 0), domain.ErrInvalidInput)
		assert.ErrorIs(t, f.svc.SetRatio(ctx, "wood", -5), domain.ErrInvalidInput)
	})
}

func TestSwap(t *testing.T) {
	ctx := context.Background()

	t.Run("pays out at the ratio and debits the balance", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.svc.SetRatio(ctx, "wood", 25))
		f.seedBalance(t, "alice", "wood", 150)

		quantity, err := f.svc.Swap(ctx, "alice", "wood", 100)
		require.NoError(t, err)
		assert.Equal(t, int64(40000), quantity.Amount)
		assert.Equal(t, "4.0000 GAME", quantity.String())

		balances, err := f.balances.Balances(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, balances, 1)
		assert.InDelta(t, 50, balances[0].Amount, 1e-9)

		transfers := f.transferor.Transfers()
		require.Len(t, transfers, 1)
		assert.Equal(t, "alice", transfers[0].To)
		assert.Equal(t, quantity, transfers[0].Quantity)
	})

	t.Run("truncates to the token precision", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.svc.SetRatio(ctx, "wood", 3))
		f.seedBalance(t, "alice", "wood", 1)

		quantity, err := f.svc.Swap(ctx, "alice", "wood", 1)
		require.NoError(t, err)
		assert.Equal(t, int64(3333), quantity.Amount)
	})

	t.Run("fails without a ratio", func(t *testing.T) {
		f := newFixture(t)
		f.seedBalance(t, "alice", "wood", 100)

		_, err := f.svc.Swap(ctx, "alice", "wood", 100)
		assert.ErrorIs(t, err, domain.ErrRatioNotFound)
	})

	t.Run("fails on an overdraw and sends nothing", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.svc.SetRatio(ctx, "wood", 25))
		f.seedBalance(t, "alice", "wood", 10)

		_, err := f.svc.Swap(ctx, "alice", "wood", 100)
		assert.ErrorIs(t, err, domain.ErrOverdrawn)
		assert.Empty(t, f.transferor.Transfers())

		balances, berr := f.balances.Balances(ctx, "alice")
		require.NoError(t, berr)
		require.Len(t, balances, 1)
		assert.InDelta(t, 10, balances[0].Amount, 1e-9)
	})

	t.Run("rejects an amount below the smallest payout", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, f.svc.SetRatio(ctx, "wood", 1000000))
		f.seedBalance(t, "alice", "wood", 1)

		_, err := f.svc.Swap(ctx, "alice", "wood", 0.5)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Swap(ctx, "alice", "wood", 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
