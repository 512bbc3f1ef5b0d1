// Package ledger maintains per-owner fungible resource balances.
package ledger

import (
	"context"
	"fmt"
	"sort"

	"github.com/dapplicaio/FarmGame/internal/domain"
	"github.com/dapplicaio/FarmGame/internal/repository"
)

// Service adjusts and reads owner resource balances. All writes run inside
// a caller-owned transaction so multi-resource adjustments commit or abort
// as one.
type Service interface {
	Credit(ctx context.Context, tx repository.Tx, owner, resource string, amount float64) error
	CreditAll(ctx context.Context, tx repository.Tx, owner string, amounts map[string]float64) error
	Debit(ctx context.Context, tx repository.Tx, owner, resource string, amount float64) error
	DebitAll(ctx context.Context, tx repository.Tx, owner string, amounts map[string]float64) error
	Balances(ctx context.Context, owner string) ([]domain.ResourceBalance, error)
}

type service struct {
	repo repository.Game
}

// NewService creates a balance service over the repository.
func NewService(repo repository.Game) Service {
	return &service{repo: repo}
}

// Credit adds amount to the owner's balance, creating the row when absent.
func (s *service) Credit(ctx context.Context, tx repository.Tx, owner, resource string, amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: credit amount must be positive", domain.ErrInvalidInput)
	}
	current, _, err := tx.GetBalanceForUpdate(ctx, owner, resource)
	if err != nil {
		return err
	}
	return tx.UpsertBalance(ctx, owner, resource, current+amount)
}

// CreditAll credits several resources at once. Zero and negative entries
// are skipped so accrual rounding never materializes empty rows.
func (s *service) CreditAll(ctx context.Context, tx repository.Tx, owner string, amounts map[string]float64) error {
	for _, resource := range sortedKeys(amounts) {
		if amounts[resource] <= 0 {
			continue
		}
		if err := s.Credit(ctx, tx, owner, resource, amounts[resource]); err != nil {
			return err
		}
	}
	return nil
}

// Debit removes amount from the owner's balance. Draining a balance to
// exactly zero removes the row.
func (s *service) Debit(ctx context.Context, tx repository.Tx, owner, resource string, amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: debit amount must be positive", domain.ErrInvalidInput)
	}
	current, exists, err := tx.GetBalanceForUpdate(ctx, owner, resource)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s has no %s", domain.ErrBalanceNotFound, owner, resource)
	}
	if amount > current {
		return fmt.Errorf("%w: %s has %f %s, need %f", domain.ErrOverdrawn, owner, current, resource, amount)
	}
	remaining := current - amount
	if remaining == 0 {
		return tx.DeleteBalance(ctx, owner, resource)
	}
	return tx.UpsertBalance(ctx, owner, resource, remaining)
}

// DebitAll debits several resources at once. The first failure aborts;
// the caller's rollback undoes the earlier debits.
func (s *service) DebitAll(ctx context.Context, tx repository.Tx, owner string, amounts map[string]float64) error {
	for _, resource := range sortedKeys(amounts) {
		if err := s.Debit(ctx, tx, owner, resource, amounts[resource]); err != nil {
			return err
		}
	}
	return nil
}

// Balances lists the owner's balances.
func (s *service) Balances(ctx context.Context, owner string) ([]domain.ResourceBalance, error) {
	return s.repo.GetBalances(ctx, owner)
}

func sortedKeys(amounts map[string]float64) []string {
	keys := make([]string, 0, len(amounts))
	for k := range amounts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
