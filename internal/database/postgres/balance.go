package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dapplicaio/FarmGame/internal/domain"
)

func getBalances(ctx context.Context, q dbtx, owner string) ([]domain.ResourceBalance, error) {
	rows, err := q.Query(ctx,
		`SELECT resource, amount FROM resource_balances WHERE owner = $1 ORDER BY resource`,
		owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query balances: %w", err)
	}
	defer rows.Close()

	var balances []domain.ResourceBalance
	for rows.Next() {
		b := domain.ResourceBalance{Owner: owner}
		if err := rows.Scan(&b.Resource, &b.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan balance row: %w", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read balance rows: %w", err)
	}
	return balances, nil
}

// GetBalanceForUpdate locks the balance row for the rest of the transaction.
// The bool reports whether a row exists.
func (t *gameTx) GetBalanceForUpdate(ctx context.Context, owner, resource string) (float64, bool, error) {
	var amount float64
	err := t.tx.QueryRow(ctx,
		`SELECT amount FROM resource_balances WHERE owner = $1 AND resource = $2 FOR UPDATE`,
		owner, resource).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get balance: %w", err)
	}
	return amount, true, nil
}

// UpsertBalance writes the absolute amount for (owner, resource)
func (t *gameTx) UpsertBalance(ctx context.Context, owner, resource string, amount float64) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO resource_balances (owner, resource, amount)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (owner, resource) DO UPDATE SET amount = EXCLUDED.amount`,
		owner, resource, amount)
	if err != nil {
		return fmt.Errorf("failed to upsert balance: %w", err)
	}
	return nil
}

// DeleteBalance removes the (owner, resource) row entirely
func (t *gameTx) DeleteBalance(ctx context.Context, owner, resource string) error {
	_, err := t.tx.Exec(ctx,
		`DELETE FROM resource_balances WHERE owner = $1 AND resource = $2`,
		owner, resource)
	if err != nil {
		return fmt.Errorf("failed to delete balance: %w", err)
	}
	return nil
}
