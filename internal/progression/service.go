package progression

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

// Service upgrades staked producing items and grows farming item slots.
type Service interface {
	// UpgradeItem raises a staked item to targetLevel, settling its pending
	// accrual, charging the upgrade cost in the item's farmed resource, and
	// time-locking the item until the upgrade completes.
	UpgradeItem(ctx context.Context, owner string, itemID uint64, targetLevel uint8, farmingItemID uint64) error

	// UpgradeFarmingItem grows a farming item's staking capacity by one slot.
	UpgradeFarmingItem(ctx context.Context, owner string, assetID uint64, staked bool) error
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

// NewService creates a progression service.
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

func (s *service) UpgradeItem(ctx context.Context, owner string, itemID uint64, targetLevel uint8, farmingItemID uint64) error {
	log := logger.FromContext(ctx)

	lock := s.locks.GetLock(owner)
	lock.Lock()
	defer lock.Unlock()

	now := s.now()

	staked, err := s.repo.GetStakedFarmingItem(ctx, owner, farmingItemID)
	if err != nil {
		return err
	}
	if !staked.Contains(itemID) {
		return fmt.Errorf("%w: item %d is not staked at farming item %d", domain.ErrItemNotStaked, itemID, farmingItemID)
	}

	asset, err := s.assetLedger.ResolveAsset(ctx, itemID)
	if err != nil {
		return err
	}
	mdata, err := s.assetLedger.MutableData(ctx, itemID)
	if err != nil {
		return err
	}
	level, err := mdata.Uint8(domain.AttrLevel)
	if err != nil {
		return fmt.Errorf("asset %d: %w", itemID, err)
	}
	lastClaim, err := mdata.Uint32(domain.AttrLastClaim)
	if err != nil {
		return fmt.Errorf("asset %d: %w", itemID, err)
	}
	if int64(lastClaim) >= now {
		return fmt.Errorf("%w: item %d is locked until %d", domain.ErrAlreadyUpgrading, itemID, lastClaim)
	}
	// Multi-level jumps are allowed; the cost and lock cover the whole span.
	if targetLevel <= level {
		return fmt.Errorf("%w: item is level %d, requested %d", domain.ErrInvalidLevel, level, targetLevel)
	}

	tmpl, err := s.assetLedger.ResolveTemplate(ctx, asset.Collection, asset.TemplateID)
	if err != nil {
		return err
	}
	maxLevel, err := tmpl.Immutable.Uint8(domain.AttrMaxLevel)
	if err != nil {
		return fmt.Errorf("%w: template %d: %v", domain.ErrTemplateMisconfigured, asset.TemplateID, err)
	}
	if targetLevel > maxLevel {
		return fmt.Errorf("%w: template caps at level %d", domain.ErrLevelCapExceeded, maxLevel)
	}
	resource, err := tmpl.Immutable.Text(domain.AttrFarmResource)
	if err != nil {
		return fmt.Errorf("%w: template %d: %v", domain.ErrTemplateMisconfigured, asset.TemplateID, err)
	}
	baseRate, err := tmpl.Immutable.Float32(domain.AttrMiningRate)
	if err != nil {
		return fmt.Errorf("%w: template %d: %v", domain.ErrTemplateMisconfigured, asset.TemplateID, err)
	}

	farmData, err := s.assetLedger.MutableData(ctx, farmingItemID)
	if err != nil {
		return err
	}

	outbox := assets.NewOutbox(s.assetLedger, nil)
	reward, err := s.engine.Accrue(ctx, outbox, itemID, accrual.BoostOf(farmData), now)
	if err != nil {
		return err
	}

	upgradeTime := UpgradeTime(level, targetLevel, s.balance.UpgradeStepSeconds)
	cost := float64(float32(upgradeTime) * accrual.RateAtLevel(baseRate, targetLevel, s.balance.RatePercentPerLevel))

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer repository.SafeRollback(ctx, tx)

	if reward != nil {
		if err := s.balances.Credit(ctx, tx, owner, reward.Resource, reward.Amount); err != nil {
			return err
		}
	}
	if err := s.balances.Debit(ctx, tx, owner, resource, cost); err != nil {
		return err
	}

	mdata[domain.AttrLevel] = domain.Uint8Value(targetLevel)
	mdata[domain.AttrLastClaim] = domain.Uint32Value(uint32(now + upgradeTime))
	outbox.SetMutableData(itemID, asset.Owner, mdata)

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit upgrade: %w", err)
	}
	if err := outbox.Flush(ctx); err != nil {
		return err
	}

	metrics.ItemUpgradesTotal.Inc()
	log.Info("Upgraded item",
		"owner", owner,
		"asset_id", itemID,
		"level", targetLevel,
		"cost", cost,
		"locked_until", now+upgradeTime)
	return nil
}

func (s *service) UpgradeFarmingItem(ctx context.Context, owner string, assetID uint64, staked bool) error {
	log := logger.FromContext(ctx)

	lock := s.locks.GetLock(owner)
	lock.Lock()
	defer lock.Unlock()

	asset, err := s.assetLedger.ResolveAsset(ctx, assetID)
	if err != nil {
		return err
	}
	if staked {
		if _, err := s.repo.GetStakedFarmingItem(ctx, owner, assetID); err != nil {
			return err
		}
	} else if asset.Owner != owner {
		return fmt.Errorf("%w: asset %d is held by %s", domain.ErrUnauthorized, assetID, asset.Owner)
	}

	mdata, err := s.assetLedger.MutableData(ctx, assetID)
	if err != nil {
		return err
	}
	slots, err := mdata.Uint8(domain.AttrSlots)
	if err != nil {
		return fmt.Errorf("asset %d: %w", assetID, err)
	}

	tmpl, err := s.assetLedger.ResolveTemplate(ctx, asset.Collection, asset.TemplateID)
	if err != nil {
		return err
	}
	maxSlots, err := tmpl.Immutable.Uint8(domain.AttrMaxSlots)
	if err != nil {
		return fmt.Errorf("%w: template %d: %v", domain.ErrTemplateMisconfigured, asset.TemplateID, err)
	}
	if slots >= maxSlots {
		return fmt.Errorf("%w: farming item %d already has %d slots", domain.ErrSlotCapExceeded, assetID, slots)
	}

	outbox := assets.NewOutbox(s.assetLedger, nil)
	mdata[domain.AttrSlots] = domain.Uint8Value(slots + 1)
	outbox.SetMutableData(assetID, asset.Owner, mdata)
	if err := outbox.Flush(ctx); err != nil {
		return err
	}

	metrics.SlotUpgradesTotal.Inc()
	log.Info("Grew farming item slots", "owner", owner, "asset_id", assetID, "slots", slots+1)
	return nil
}
