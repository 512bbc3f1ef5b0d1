// Package staking manages farming item stakes, producing item attachment,
// and reward claims.
package staking

import (
	"context"
	"fmt"
	"time"

	"github.com/dapplicaio/FarmGame/internal/accrual"
	"github.com/dapplicaio/FarmGame/internal/assets"
	"github.com/dapplicaio/FarmGame/internal/concurrency"
	"github.com/dapplicaio/FarmGame/internal/config"
	"github.com/dapplicaio/FarmGame/internal/domain"
	"github.com/dapplicaio/FarmGame/internal/ledger"
	"github.com/dapplicaio/FarmGame/internal/logger"
	"github.com/dapplicaio/FarmGame/internal/metrics"
	"github.com/dapplicaio/FarmGame/internal/repository"
)

// Service handles the staking lifecycle and reward claims.
type Service interface {
	// StakeFarmingItem registers a deposited farming item under the owner,
	// initializing its slots and level on first stake.
	StakeFarmingItem(ctx context.Context, owner string, assetID uint64) error

	// StakeItems attaches deposited producing items to the owner's staked
	// farming item, bounded by its slot capacity.
	StakeItems(ctx context.Context, owner string, farmingItemID uint64, itemIDs []uint64) error

	// Claim settles accrual for every item attached to the farming item and
	// credits the owner's balances. It returns the credited amounts by
	// resource.
	Claim(ctx context.Context, owner string, farmingItemID uint64) (map[string]float64, error)
}

type service struct {
	repo        repository.Game
	balances    ledger.Service
	engine      *accrual.Engine
	assetLedger assets.Ledger
	locks       *concurrency.LockManager
	balance     config.Balance
	now         func() int64
}

// NewService creates a staking service.
func NewService(repo repository.Game, balances ledger.Service, engine *accrual.Engine, assetLedger assets.Ledger, locks *concurrency.LockManager, balance config.Balance) Service {
	return &service{
		repo:        repo,
		balances:    balances,
		engine:      engine,
		assetLedger: assetLedger,
		locks:       locks,
		balance:     balance,
		now:         func() int64 { return time.Now().Unix() },
	}
}

func (s *service) StakeFarmingItem(ctx context.Context, owner string, assetID uint64) error {
	log := logger.FromContext(ctx)

	lock := s.locks.GetLock(owner)
	lock.Lock()
	defer lock.Unlock()

	asset, err := s.assetLedger.ResolveAsset(ctx, assetID)
	if err != nil {
		return err
	}
	mdata, err := s.assetLedger.MutableData(ctx, assetID)
	if err != nil {
		return err
	}

	outbox := assets.NewOutbox(s.assetLedger, nil)
	if !mdata.Has(domain.AttrSlots) {
		// The template is only validated on first stake; an already
		// initialized item carries its slots regardless of the template.
		tmpl, err := s.assetLedger.ResolveTemplate(ctx, asset.Collection, asset.TemplateID)
		if err != nil {
			return err
		}
		if _, err := tmpl.Immutable.Uint8(domain.AttrMaxSlots); err != nil {
			return fmt.Errorf("%w: template %d: %v", domain.ErrTemplateMisconfigured, asset.TemplateID, err)
		}
		if _, err := tmpl.Immutable.StringList(domain.AttrStakeableResources); err != nil {
			return fmt.Errorf("%w: template %d: %v", domain.ErrTemplateMisconfigured, asset.TemplateID, err)
		}
		mdata[domain.AttrSlots] = domain.Uint8Value(1)
		mdata[domain.AttrLevel] = domain.Uint8Value(1)
		outbox.SetMutableData(assetID, asset.Owner, mdata)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.CreateStakedFarmingItem(ctx, owner, assetID); err != nil {
		return fmt.Errorf("failed to stake farming item: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit stake: %w", err)
	}
	if err := outbox.Flush(ctx); err != nil {
		return err
	}

	metrics.StakesTotal.WithLabelValues(metrics.StakeKindFarmingItem).Inc()
	log.Info("Staked farming item", "owner", owner, "asset_id", assetID)
	return nil
}

func (s *service) StakeItems(ctx context.Context, owner string, farmingItemID uint64, itemIDs []uint64) error {
	log := logger.FromContext(ctx)

	if len(itemIDs) == 0 {
		return fmt.Errorf("%w: no items to stake", domain.ErrInvalidInput)
	}

	lock := s.locks.GetLock(owner)
	lock.Lock()
	defer lock.Unlock()

	now := s.now()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer repository.SafeRollback(ctx, tx)

	staked, err := tx.GetStakedFarmingItem(ctx, owner, farmingItemID)
	if err != nil {
		return err
	}

	farmAsset, err := s.assetLedger.ResolveAsset(ctx, farmingItemID)
	if err != nil {
		return err
	}
	farmData, err := s.assetLedger.MutableData(ctx, farmingItemID)
	if err != nil {
		return err
	}
	slots, err := farmData.Uint8(domain.AttrSlots)
	if err != nil {
		return fmt.Errorf("farming item %d: %w", farmingItemID, err)
	}
	farmTmpl, err := s.assetLedger.ResolveTemplate(ctx, farmAsset.Collection, farmAsset.TemplateID)
	if err != nil {
		return err
	}
	stakeable, err := farmTmpl.Immutable.StringList(domain.AttrStakeableResources)
	if err != nil {
		return fmt.Errorf("%w: template %d: %v", domain.ErrTemplateMisconfigured, farmAsset.TemplateID, err)
	}

	if len(staked.StakedItems)+len(itemIDs) > int(slots) {
		return fmt.Errorf("%w: farming item %d has %d slots, %d staked, %d incoming",
			domain.ErrCapacityExceeded, farmingItemID, slots, len(staked.StakedItems), len(itemIDs))
	}

	outbox := assets.NewOutbox(s.assetLedger, nil)
	items := staked.StakedItems
	for _, itemID := range itemIDs {
		if s.balance.RejectDuplicateStake && contains(items, itemID) {
			return fmt.Errorf("%w: item %d", domain.ErrDuplicateStake, itemID)
		}

		asset, err := s.assetLedger.ResolveAsset(ctx, itemID)
		if err != nil {
			return err
		}
		tmpl, err := s.assetLedger.ResolveTemplate(ctx, asset.Collection, asset.TemplateID)
		if err != nil {
			return err
		}
		resource, err := tmpl.Immutable.Text(domain.AttrFarmResource)
		if err != nil {
			return fmt.Errorf("%w: template %d: %v", domain.ErrTemplateMisconfigured, asset.TemplateID, err)
		}
		if _, err := tmpl.Immutable.Float32(domain.AttrMiningRate); err != nil {
			return fmt.Errorf("%w: template %d: %v", domain.ErrTemplateMisconfigured, asset.TemplateID, err)
		}
		if _, err := tmpl.Immutable.Uint8(domain.AttrMaxLevel); err != nil {
			return fmt.Errorf("%w: template %d: %v", domain.ErrTemplateMisconfigured, asset.TemplateID, err)
		}
		if !containsString(stakeable, resource) {
			return fmt.Errorf("%w: farming item %d does not accept %s producers",
				domain.ErrIneligibleResource, farmingItemID, resource)
		}

		mdata, err := s.assetLedger.MutableData(ctx, itemID)
		if err != nil {
			return err
		}
		if !mdata.Has(domain.AttrLevel) {
			mdata[domain.AttrLevel] = domain.Uint8Value(1)
		}
		// The cursor resets on every stake, including re-stakes.
		mdata[domain.AttrLastClaim] = domain.Uint32Value(uint32(now))
		outbox.SetMutableData(itemID, asset.Owner, mdata)

		items = append(items, itemID)
	}

	if err := tx.UpdateStakedItems(ctx, owner, farmingItemID, items); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit item stake: %w", err)
	}
	if err := outbox.Flush(ctx); err != nil {
		return err
	}

	metrics.StakesTotal.WithLabelValues(metrics.StakeKindItems).Add(float64(len(itemIDs)))
	log.Info("Staked items", "owner", owner, "farming_item", farmingItemID, "count", len(itemIDs))
	return nil
}

func (s *service) Claim(ctx context.Context, owner string, farmingItemID uint64) (map[string]float64, error) {
	log := logger.FromContext(ctx)

	lock := s.locks.GetLock(owner)
	lock.Lock()
	defer lock.Unlock()

	now := s.now()

	staked, err := s.repo.GetStakedFarmingItem(ctx, owner, farmingItemID)
	if err != nil {
		return nil, err
	}

	farmData, err := s.assetLedger.MutableData(ctx, farmingItemID)
	if err != nil {
		return nil, err
	}
	boost := accrual.BoostOf(farmData)

	outbox := assets.NewOutbox(s.assetLedger, nil)
	totals := make(map[string]float64)
	for _, itemID := range staked.StakedItems {
		reward, err := s.engine.Accrue(ctx, outbox, itemID, boost, now)
		if err != nil {
			return nil, err
		}
		if reward != nil {
			totals[reward.Resource] += reward.Amount
		}
	}
	if len(totals) == 0 {
		return nil, fmt.Errorf("%w: farming item %d", domain.ErrNothingToClaim, farmingItemID)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	if err := s.balances.CreditAll(ctx, tx, owner, totals); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	if err := outbox.Flush(ctx); err != nil {
		return nil, err
	}

	metrics.ClaimsTotal.Inc()
	for resource, amount := range totals {
		metrics.ResourcesAccrued.WithLabelValues(resource).Add(amount)
	}
	log.Info("Claimed rewards", "owner", owner, "farming_item", farmingItemID, "resources", len(totals))
	return totals, nil
}

func contains(items []uint64, id uint64) bool {
	for _, v := range items {
		if v == id {
			return true
		}
	}
	return false
}

func containsString(items []string, s string) bool {
	for _, v := range items {
		if v == s {
			return true
		}
	}
	return false
}
