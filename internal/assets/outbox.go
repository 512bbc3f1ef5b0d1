package assets

import (
	"context"
	"fmt"

	"github.com/dapplicaio/FarmGame/internal/domain"
	"github.com/dapplicaio/FarmGame/internal/logger"
)

type opKind int

const (
	opSetMutableData opKind = iota
	opBurn
	opMint
	opTransfer
)

type op struct {
	kind opKind

	assetID uint64
	owner   string
	data    domain.AttributeMap

	collection string
	schema     string
	templateID int32

	to       string
	quantity domain.TokenAmount
	memo     string
}

// Outbox stages ledger and currency calls issued during an action. Nothing
// reaches the collaborators until Flush, so an aborted action (failed
// validation, rolled-back transaction) never leaks a burn, mint, attribute
// write, or transfer. Staged calls flush in issue order.
type Outbox struct {
	ledger     Ledger
	transferor TokenTransferor
	ops        []op
}

// NewOutbox creates an outbox over the given collaborators. The transferor
// may be nil when the action cannot stage transfers.
func NewOutbox(ledger Ledger, transferor TokenTransferor) *Outbox {
	return &Outbox{ledger: ledger, transferor: transferor}
}

// SetMutableData stages an attribute overwrite of an asset's mutable data.
func (o *Outbox) SetMutableData(assetID uint64, owner string, data domain.AttributeMap) {
	o.ops = append(o.ops, op{
		kind:    opSetMutableData,
		assetID: assetID,
		owner:   owner,
		data:    data.Clone(),
	})
}

// Burn stages an irrevocable burn of an asset.
func (o *Outbox) Burn(assetID uint64) {
	o.ops = append(o.ops, op{kind: opBurn, assetID: assetID})
}

// Mint stages a mint of one asset under the template, owned by owner, with
// empty attribute payloads.
func (o *Outbox) Mint(collection, schema string, templateID int32, owner string) {
	o.ops = append(o.ops, op{
		kind:       opMint,
		collection: collection,
		schema:     schema,
		templateID: templateID,
		owner:      owner,
	})
}

// Transfer stages a fungible currency transfer.
func (o *Outbox) Transfer(to string, quantity domain.TokenAmount, memo string) {
	o.ops = append(o.ops, op{kind: opTransfer, to: to, quantity: quantity, memo: memo})
}

// Len returns the number of staged calls.
func (o *Outbox) Len() int { return len(o.ops) }

// Flush dispatches all staged calls in order. Call only after the enclosing
// transaction committed. A dispatch failure here cannot be rolled back
// anymore; it is logged and returned so the operator can reconcile.
func (o *Outbox) Flush(ctx context.Context) error {
	log := logger.FromContext(ctx)
	for i, staged := range o.ops {
		var err error
		switch staged.kind {
		case opSetMutableData:
			err = o.ledger.SetMutableData(ctx, staged.assetID, staged.owner, staged.data)
		case opBurn:
			err = o.ledger.Burn(ctx, staged.assetID)
		case opMint:
			err = o.ledger.Mint(ctx, staged.collection, staged.schema, staged.templateID, staged.owner, domain.AttributeMap{}, domain.AttributeMap{})
		case opTransfer:
			if o.transferor == nil {
				err = fmt.Errorf("no token transferor configured")
			} else {
				err = o.transferor.Transfer(ctx, staged.to, staged.quantity, staged.memo)
			}
		}
		if err != nil {
			log.Error("Failed to flush staged ledger call", "error", err, "op_index", i)
			return fmt.Errorf("failed to flush staged ledger call %d: %w", i, err)
		}
	}
	o.ops = nil
	return nil
}
