package assets

import (
	"context"
	"fmt"
	"sync"

	"github.com/dapplicaio/FarmGame/internal/domain"
)

// MemoryLedger is an in-process Ledger. It backs tests and local runs where
// the real ownership ledger is not reachable; the production binary swaps in
// the chain gateway adapter behind the same interface.
type MemoryLedger struct {
	mu        sync.Mutex
	assets    map[uint64]*Asset
	mutable   map[uint64]domain.AttributeMap
	templates map[string]*Template
	nextID    uint64
}

// NewMemoryLedger creates an empty in-memory ledger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		assets:    make(map[uint64]*Asset),
		mutable:   make(map[uint64]domain.AttributeMap),
		templates: make(map[string]*Template),
		nextID:    1,
	}
}

// AddTemplate registers a template definition.
func (l *MemoryLedger) AddTemplate(tmpl Template) {
	l.mu.Lock()
	defer l.mu.Unlock()
	copied := tmpl
	copied.Immutable = tmpl.Immutable.Clone()
	l.templates[templateKey(tmpl.Collection, tmpl.ID)] = &copied
}

// AddAsset registers an asset and returns its identifier.
func (l *MemoryLedger) AddAsset(asset Asset) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if asset.ID == 0 {
		asset.ID = l.nextID
	}
	if asset.ID >= l.nextID {
		l.nextID = asset.ID + 1
	}
	copied := asset
	l.assets[asset.ID] = &copied
	if _, ok := l.mutable[asset.ID]; !ok {
		l.mutable[asset.ID] = domain.AttributeMap{}
	}
	return asset.ID
}

func (l *MemoryLedger) ResolveAsset(_ context.Context, assetID uint64) (*Asset, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	asset, ok := l.assets[assetID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrAssetNotFound, assetID)
	}
	copied := *asset
	return &copied, nil
}

func (l *MemoryLedger) MutableData(_ context.Context, assetID uint64) (domain.AttributeMap, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.assets[assetID]; !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrAssetNotFound, assetID)
	}
	return l.mutable[assetID].Clone(), nil
}

func (l *MemoryLedger) SetMutableData(_ context.Context, assetID uint64, _ string, data domain.AttributeMap) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.assets[assetID]; !ok {
		return fmt.Errorf("%w: %d", domain.ErrAssetNotFound, assetID)
	}
	l.mutable[assetID] = data.Clone()
	return nil
}

func (l *MemoryLedger) ResolveTemplate(_ context.Context, collection string, templateID int32) (*Template, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	tmpl, ok := l.templates[templateKey(collection, templateID)]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%d", domain.ErrTemplateNotFound, collection, templateID)
	}
	copied := *tmpl
	copied.Immutable = tmpl.Immutable.Clone()
	return &copied, nil
}

func (l *MemoryLedger) Burn(_ context.Context, assetID uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.assets[assetID]; !ok {
		return fmt.Errorf("%w: %d", domain.ErrAssetNotFound, assetID)
	}
	delete(l.assets, assetID)
	delete(l.mutable, assetID)
	return nil
}

func (l *MemoryLedger) Mint(_ context.Context, collection, schema string, templateID int32, owner string, _, mutable domain.AttributeMap) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	id := l.nextID
	l.nextID++
	l.assets[id] = &Asset{
		ID:         id,
		Collection: collection,
		Schema:     schema,
		TemplateID: templateID,
		Owner:      owner,
	}
	l.mutable[id] = mutable.Clone()
	return nil
}

// AssetsOwnedBy lists the identifiers currently held by owner.
func (l *MemoryLedger) AssetsOwnedBy(owner string) []uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	var ids []uint64
	for id, asset := range l.assets {
		if asset.Owner == owner {
			ids = append(ids, id)
		}
	}
	return ids
}

// TokenTransfer records one transfer issued through the MemoryTransferor.
type TokenTransfer struct {
	To       string
	Quantity domain.TokenAmount
	Memo     string
}

// MemoryTransferor records transfers instead of dispatching them.
type MemoryTransferor struct {
	mu        sync.Mutex
	transfers []TokenTransfer
}

// NewMemoryTransferor creates an empty recording transferor.
func NewMemoryTransferor() *MemoryTransferor {
	return &MemoryTransferor{}
}

func (t *MemoryTransferor) Transfer(_ context.Context, to string, quantity domain.TokenAmount, memo string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.transfers = append(t.transfers, TokenTransfer{To: to, Quantity: quantity, Memo: memo})
	return nil
}

// Transfers returns a copy of the recorded transfers.
func (t *MemoryTransferor) Transfers() []TokenTransfer {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]TokenTransfer, len(t.transfers))
	copy(out, t.transfers)
	return out
}
