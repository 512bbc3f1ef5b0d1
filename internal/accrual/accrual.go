// Package accrual computes time-based resource yield for staked
// producing items and advances their claim cursor.
package accrual

import (
	"context"
	"fmt"

	"github.com/dapplicaio/FarmGame/internal/assets"
	"github.com/dapplicaio/FarmGame/internal/domain"
)

// Reward is the resource yield accrued by one item since its last claim.
type Reward struct {
	Resource string
	Amount   float64
}

// RateAtLevel compounds the template base rate by percent once per level
// step above one. The compounding runs in float32 step by step; callers
// depend on the exact sequence of roundings, so this must not be replaced
// with a pow formula.
func RateAtLevel(base float32, level uint8, percent uint8) float32 {
	rate := base
	for i := uint8(1); i < level; i++ {
		rate = rate + rate*float32(percent)/100
	}
	return rate
}

// BoostOf reads a farming item's mining boost from its mutable data. The
// attribute is optional; unset means no boost.
func BoostOf(mdata domain.AttributeMap) float32 {
	boost, err := mdata.Float32(domain.AttrMiningBoost)
	if err != nil {
		return 0
	}
	return boost
}

// Engine resolves an item's level, rate, and claim cursor from the asset
// ledger and turns elapsed time into resource rewards.
type Engine struct {
	ledger  assets.Ledger
	percent uint8
}

// NewEngine creates an engine over the ledger with the given per-level
// rate increase percentage.
func NewEngine(ledger assets.Ledger, percent uint8) *Engine {
	return &Engine{ledger: ledger, percent: percent}
}

// Accrue computes the reward an item earned between its lastClaim and now
// and stages lastClaim = now on the outbox. A positive boost multiplies the
// yield; callers read it from the farming item the asset is staked under.
// It returns nil when nothing accrued. The cursor never moves backwards: an
// item whose lastClaim lies in the future (an upgrade in progress) is left
// untouched.
func (e *Engine) Accrue(ctx context.Context, outbox *assets.Outbox, assetID uint64, boost float32, now int64) (*Reward, error) {
	asset, err := e.ledger.ResolveAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	mdata, err := e.ledger.MutableData(ctx, assetID)
	if err != nil {
		return nil, err
	}

	level, err := mdata.Uint8(domain.AttrLevel)
	if err != nil {
		return nil, fmt.Errorf("asset %d: %w", assetID, err)
	}
	lastClaim, err := mdata.Uint32(domain.AttrLastClaim)
	if err != nil {
		return nil, fmt.Errorf("asset %d: %w", assetID, err)
	}

	tmpl, err := e.ledger.ResolveTemplate(ctx, asset.Collection, asset.TemplateID)
	if err != nil {
		return nil, err
	}
	resource, err := tmpl.Immutable.Text(domain.AttrFarmResource)
	if err != nil {
		return nil, fmt.Errorf("%w: template %d: %v", domain.ErrTemplateMisconfigured, asset.TemplateID, err)
	}
	baseRate, err := tmpl.Immutable.Float32(domain.AttrMiningRate)
	if err != nil {
		return nil, fmt.Errorf("%w: template %d: %v", domain.ErrTemplateMisconfigured, asset.TemplateID, err)
	}

	if now <= int64(lastClaim) {
		return nil, nil
	}

	rate := RateAtLevel(baseRate, level, e.percent)
	amount := float32(now-int64(lastClaim)) * rate
	if boost > 0 {
		amount *= boost
	}

	mdata[domain.AttrLastClaim] = domain.Uint32Value(uint32(now))
	outbox.SetMutableData(assetID, asset.Owner, mdata)

	if amount <= 0 {
		return nil, nil
	}
	return &Reward{Resource: resource, Amount: float64(amount)}, nil
}
