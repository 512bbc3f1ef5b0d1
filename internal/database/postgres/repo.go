// Package postgres implements the game repository over pgx. All writes run
// inside a single transaction per player action; the service layer owns the
// commit/rollback decision.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dapplicaio/FarmGame/internal/domain"
	"github.com/dapplicaio/FarmGame/internal/repository"
)

// dbtx is satisfied by both *pgxpool.Pool and pgx.Tx, letting the query
// helpers serve reads on the pool and writes inside a transaction.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// GameRepository implements repository.Game for PostgreSQL
type GameRepository struct {
	db *pgxpool.Pool
}

// NewGameRepository creates a new GameRepository
func NewGameRepository(db *pgxpool.Pool) *GameRepository {
	return &GameRepository{db: db}
}

// BeginTx starts a new transaction
func (r *GameRepository) BeginTx(ctx context.Context) (repository.Tx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &gameTx{tx: tx}, nil
}

// GetBalances retrieves all resource balances for an owner
func (r *GameRepository) GetBalances(ctx context.Context, owner string) ([]domain.ResourceBalance, error) {
	return getBalances(ctx, r.db, owner)
}

// GetRecipe retrieves a blend recipe by id
func (r *GameRepository) GetRecipe(ctx context.Context, blendID int64) (*domain.BlendRecipe, error) {
	return getRecipe(ctx, r.db, blendID)
}

// GetRatio retrieves the swap ratio configured for a resource
func (r *GameRepository) GetRatio(ctx context.Context, resource string) (float64, error) {
	return getRatio(ctx, r.db, resource)
}

// GetStakedFarmingItem retrieves an owner's staked farming item record
func (r *GameRepository) GetStakedFarmingItem(ctx context.Context, owner string, assetID uint64) (*domain.StakedFarmingItem, error) {
	return getStakedFarmingItem(ctx, r.db, owner, assetID)
}

// gameTx implements repository.Tx
type gameTx struct {
	tx pgx.Tx
}

// Commit commits the transaction
func (t *gameTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *gameTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
