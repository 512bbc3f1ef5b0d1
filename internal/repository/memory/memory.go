// Package memory is an in-process repository.Game used by service tests and
// local runs. BeginTx snapshots the whole state; Commit swaps the snapshot
// back in, so an aborted transaction leaves no partial effect - the same
// all-or-nothing contract the postgres implementation gets from pgx.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/dapplicaio/FarmGame/internal/domain"
	"github.com/dapplicaio/FarmGame/internal/repository"
)

type balanceKey struct {
	owner    string
	resource string
}

type stakedKey struct {
	owner   string
	assetID uint64
}

type state struct {
	balances     map[balanceKey]float64
	staked       map[stakedKey][]uint64
	recipes      map[int64]domain.BlendRecipe
	ratios       map[string]float64
	nextRecipeID int64
}

func newState() *state {
	return &state{
		balances:     make(map[balanceKey]float64),
		staked:       make(map[stakedKey][]uint64),
		recipes:      make(map[int64]domain.BlendRecipe),
		ratios:       make(map[string]float64),
		nextRecipeID: 1,
	}
}

func (s *state) clone() *state {
	out := newState()
	out.nextRecipeID = s.nextRecipeID
	for k, v := range s.balances {
		out.balances[k] = v
	}
	for k, v := range s.staked {
		items := make([]uint64, len(v))
		copy(items, v)
		out.staked[k] = items
	}
	for k, v := range s.recipes {
		components := make([]int32, len(v.Components))
		copy(components, v.Components)
		v.Components = components
		out.recipes[k] = v
	}
	for k, v := range s.ratios {
		out.ratios[k] = v
	}
	return out
}

// Repository implements repository.Game in memory.
type Repository struct {
	mu    sync.Mutex
	state *state
}

// NewRepository creates an empty in-memory repository.
func NewRepository() *Repository {
	return &Repository{state: newState()}
}

// BeginTx starts a transaction over a snapshot of the current state.
func (r *Repository) BeginTx(_ context.Context) (repository.Tx, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &memTx{repo: r, state: r.state.clone()}, nil
}

// GetBalances retrieves all balances for an owner, sorted by resource.
func (r *Repository) GetBalances(_ context.Context, owner string) ([]domain.ResourceBalance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var balances []domain.ResourceBalance
	for k, amount := range r.state.balances {
		if k.owner == owner {
			balances = append(balances, domain.ResourceBalance{Owner: owner, Resource: k.resource, Amount: amount})
		}
	}
	sort.Slice(balances, func(i, j int) bool { return balances[i].Resource < balances[j].Resource })
	return balances, nil
}

// GetRecipe retrieves a blend recipe by id.
func (r *Repository) GetRecipe(_ context.Context, blendID int64) (*domain.BlendRecipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return getRecipe(r.state, blendID)
}

// GetRatio retrieves the swap ratio for a resource.
func (r *Repository) GetRatio(_ context.Context, resource string) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return getRatio(r.state, resource)
}

// GetStakedFarmingItem retrieves an owner's staked farming item record.
func (r *Repository) GetStakedFarmingItem(_ context.Context, owner string, assetID uint64) (*domain.StakedFarmingItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return getStaked(r.state, owner, assetID)
}

func getRecipe(s *state, blendID int64) (*domain.BlendRecipe, error) {
	recipe, ok := s.recipes[blendID]
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}
	components := make([]int32, len(recipe.Components))
	copy(components, recipe.Components)
	recipe.Components = components
	return &recipe, nil
}

func getRatio(s *state, resource string) (float64, error) {
	ratio, ok := s.ratios[resource]
	if !ok {
		return 0, domain.ErrRatioNotFound
	}
	return ratio, nil
}

func getStaked(s *state, owner string, assetID uint64) (*domain.StakedFarmingItem, error) {
	items, ok := s.staked[stakedKey{owner: owner, assetID: assetID}]
	if !ok {
		return nil, domain.ErrStakedItemNotFound
	}
	copied := make([]uint64, len(items))
	copy(copied, items)
	return &domain.StakedFarmingItem{Owner: owner, AssetID: assetID, StakedItems: copied}, nil
}

// memTx implements repository.Tx over the snapshot.
type memTx struct {
	repo   *Repository
	state  *state
	closed bool
}

func (t *memTx) Commit(_ context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.repo.mu.Lock()
	t.repo.state = t.state
	t.repo.mu.Unlock()
	t.closed = true
	return nil
}

func (t *memTx) Rollback(_ context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.closed = true
	return nil
}

func (t *memTx) GetBalanceForUpdate(_ context.Context, owner, resource string) (float64, bool, error) {
	amount, ok := t.state.balances[balanceKey{owner: owner, resource: resource}]
	return amount, ok, nil
}

func (t *memTx) UpsertBalance(_ context.Context, owner, resource string, amount float64) error {
	t.state.balances[balanceKey{owner: owner, resource: resource}] = amount
	return nil
}

func (t *memTx) DeleteBalance(_ context.Context, owner, resource string) error {
	delete(t.state.balances, balanceKey{owner: owner, resource: resource})
	return nil
}

func (t *memTx) GetStakedFarmingItem(_ context.Context, owner string, assetID uint64) (*domain.StakedFarmingItem, error) {
	return getStaked(t.state, owner, assetID)
}

func (t *memTx) CreateStakedFarmingItem(_ context.Context, owner string, assetID uint64) error {
	key := stakedKey{owner: owner, assetID: assetID}
	if _, ok := t.state.staked[key]; ok {
		return errors.New("staked farming item already exists")
	}
	t.state.staked[key] = []uint64{}
	return nil
}

func (t *memTx) UpdateStakedItems(_ context.Context, owner string, assetID uint64, items []uint64) error {
	key := stakedKey{owner: owner, assetID: assetID}
	if _, ok := t.state.staked[key]; !ok {
		return domain.ErrStakedItemNotFound
	}
	copied := make([]uint64, len(items))
	copy(copied, items)
	t.state.staked[key] = copied
	return nil
}

func (t *memTx) GetRecipe(_ context.Context, blendID int64) (*domain.BlendRecipe, error) {
	return getRecipe(t.state, blendID)
}

func (t *memTx) CreateRecipe(_ context.Context, components []int32, outputTemplate int32) (int64, error) {
	blendID := t.state.nextRecipeID
	t.state.nextRecipeID++
	copied := make([]int32, len(components))
	copy(copied, components)
	t.state.recipes[blendID] = domain.BlendRecipe{
		BlendID:        blendID,
		Components:     copied,
		OutputTemplate: outputTemplate,
	}
	return blendID, nil
}

func (t *memTx) GetRatio(_ context.Context, resource string) (float64, error) {
	return getRatio(t.state, resource)
}

func (t *memTx) UpsertRatio(_ context.Context, resource string, ratio float64) error {
	t.state.ratios[resource] = ratio
	return nil
}
