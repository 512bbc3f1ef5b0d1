// Package swap converts resource balances into currency payouts at
// configured per-resource ratios.
package swap

import (
	"context"
	"fmt"
	"math"

	"github.com/dapplicaio/FarmGame/internal/assets"
	"github.com/dapplicaio/FarmGame/internal/concurrency"
	"github.com/dapplicaio/FarmGame/internal/config"
	"github.com/dapplicaio/FarmGame/internal/domain"
	"github.com/dapplicaio/FarmGame/internal/ledger"
	"github.com/dapplicaio/FarmGame/internal/logger"
	"github.com/dapplicaio/FarmGame/internal/metrics"
	"github.com/dapplicaio/FarmGame/internal/repository"
)

const transferMemo = "swap payout"

// Service exchanges resources for the game currency.
type Service interface {
	// SetRatio sets how many resource units buy one whole token.
	SetRatio(ctx context.Context, resource string, ratio float64) error

	// Swap debits the owner's resource balance and pays out tokens at the
	// configured ratio. The payout truncates to the token precision.
	Swap(ctx context.Context, owner, resource string, amount float64) (domain.TokenAmount, error)
}

type service struct {
	repo        repository.Game
	balances    ledger.Service
	assetLedger assets.Ledger
	transferor  assets.TokenTransferor
	locks       *concurrency.LockManager
	balance     config.Balance
}

// NewService creates a swap service.
func NewService(repo repository.Game, balances ledger.Service, assetLedger assets.Ledger, transferor assets.TokenTransferor, locks *concurrency.LockManager, balance config.Balance) Service {
	return &service{
		repo:        repo,
		balances:    balances,
		assetLedger: assetLedger,
		transferor:  transferor,
		locks:       locks,
		balance:     balance,
	}
}

func (s *service) SetRatio(ctx context.Context, resource string, ratio float64) error {
	log := logger.FromContext(ctx)

	if resource == "" || ratio <= 0 {
		return fmt.Errorf("%w: ratio must be positive", domain.ErrInvalidInput)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.UpsertRatio(ctx, resource, ratio); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit ratio: %w", err)
	}

	log.Info("Set swap ratio", "resource", resource, "ratio", ratio)
	return nil
}

func (s *service) Swap(ctx context.Context, owner, resource string, amount float64) (domain.TokenAmount, error) {
	log := logger.FromContext(ctx)

	var zero domain.TokenAmount
	if amount <= 0 {
		return zero, fmt.Errorf("%w: swap amount must be positive", domain.ErrInvalidInput)
	}

	lock := s.locks.GetLock(owner)
	lock.Lock()
	defer lock.Unlock()

	ratio, err := s.repo.GetRatio(ctx, resource)
	if err != nil {
		return zero, err
	}

	scale := math.Pow10(int(s.balance.CurrencyPrecision))
	payout := int64(amount / ratio * scale)
	if payout <= 0 {
		return zero, fmt.Errorf("%w: %f %s is below the smallest payout", domain.ErrInvalidInput, amount, resource)
	}
	quantity := domain.TokenAmount{
		Amount:    payout,
		Symbol:    s.balance.CurrencySymbol,
		Precision: s.balance.CurrencyPrecision,
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return zero, err
	}
	defer repository.SafeRollback(ctx, tx)

	if err := s.balances.Debit(ctx, tx, owner, resource, amount); err != nil {
		return zero, err
	}

	outbox := assets.NewOutbox(s.assetLedger, s.transferor)
	outbox.Transfer(owner, quantity, transferMemo)

	if err := tx.Commit(ctx); err != nil {
		return zero, fmt.Errorf("failed to commit swap: %w", err)
	}
	if err := outbox.Flush(ctx); err != nil {
		return zero, err
	}

	metrics.SwapsTotal.WithLabelValues(resource).Inc()
	log.Info("Swapped resources", "owner", owner, "resource", resource, "amount", amount, "payout", quantity.String())
	return quantity, nil
}
