package staking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dapplicaio/FarmGame/internal/domain"
)

type mockStaking struct {
	mock.Mock
}

func (m *mockStaking) StakeFarmingItem(ctx context.Context, owner string, assetID uint64) error {
	args := m.Called(ctx, owner, assetID)
	return args.Error(0)
}

func (m *mockStaking) StakeItems(ctx context.Context, owner string, farmingItemID uint64, itemIDs []uint64) error {
	args := m.Called(ctx, owner, farmingItemID, itemIDs)
	return args.Error(0)
}

func (m *mockStaking) Claim(ctx context.Context, owner string, farmingItemID uint64) (map[string]float64, error) {
	args := m.Called(ctx, owner, farmingItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}

type mockBlender struct {
	mock.Mock
}

func (m *mockBlender) Blend(ctx context.Context, owner string, assetIDs []uint64, blendID int64) error {
	args := m.Called(ctx, owner, assetIDs, blendID)
	return args.Error(0)
}

func TestReceiveDeposit(t *testing.T) {
	ctx := context.Background()

	t.Run("routes a farming item stake", func(t *testing.T) {
		staking := &mockStaking{}
		staking.On("StakeFarmingItem", ctx, "alice", uint64(10)).Return(nil)
		router := NewRouter(staking, &mockBlender{}, "farmgame")

		err := router.ReceiveDeposit(ctx, "alice", []uint64{10}, domain.MemoStakeFarmingItem)
		assert.NoError(t, err)
		staking.AssertExpectations(t)
	})

	t.Run("routes an item stake with the farming item id", func(t *testing.T) {
		staking := &mockStaking{}
		staking.On("StakeItems", ctx, "alice", uint64(10), []uint64{20, 21}).Return(nil)
		router := NewRouter(staking, &mockBlender{}, "farmgame")

		err := router.ReceiveDeposit(ctx, "alice", []uint64{20, 21}, "stake items:10")
		assert.NoError(t, err)
		staking.AssertExpectations(t)
	})

	t.Run("routes a blend", func(t *testing.T) {
		blender := &mockBlender{}
		blender.On("Blend", ctx, "alice", []uint64{20, 21}, int64(3)).Return(nil)
		router := NewRouter(&mockStaking{}, blender, "farmgame")

		err := router.ReceiveDeposit(ctx, "alice", []uint64{20, 21}, "blend:3")
		assert.NoError(t, err)
		blender.AssertExpectations(t)
	})

	t.Run("ignores deposits from the system account", func(t *testing.T) {
		staking := &mockStaking{}
		router := NewRouter(staking, &mockBlender{}, "farmgame")

		err := router.ReceiveDeposit(ctx, "farmgame", []uint64{10}, domain.MemoStakeFarmingItem)
		assert.NoError(t, err)
		staking.AssertNotCalled(t, "StakeFarmingItem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects multiple assets under a farming item stake", func(t *testing.T) {
		router := NewRouter(&mockStaking{}, &mockBlender{}, "farmgame")
		err := router.ReceiveDeposit(ctx, "alice", []uint64{10, 11}, domain.MemoStakeFarmingItem)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects an unknown memo", func(t *testing.T) {
		router := NewRouter(&mockStaking{}, &mockBlender{}, "farmgame")
		err := router.ReceiveDeposit(ctx, "alice", []uint64{10}, "do something")
		assert.ErrorIs(t, err, domain.ErrInvalidMemo)
	})

	t.Run("rejects a malformed id", func(t *testing.T) {
		router := NewRouter(&mockStaking{}, &mockBlender{}, "farmgame")
		err := router.ReceiveDeposit(ctx, "alice", []uint64{10}, "stake items:abc")
		assert.ErrorIs(t, err, domain.ErrInvalidMemo)
	})

	t.Run("rejects an empty deposit", func(t *testing.T) {
		router := NewRouter(&mockStaking{}, &mockBlender{}, "farmgame")
		err := router.ReceiveDeposit(ctx, "alice", nil, domain.MemoStakeFarmingItem)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
