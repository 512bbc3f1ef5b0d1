package staking

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dapplicaio/FarmGame/internal/domain"
	"github.com/dapplicaio/FarmGame/internal/logger"
)

// Blender consumes deposited assets as blend components.
type Blender interface {
	Blend(ctx context.Context, owner string, assetIDs []uint64, blendID int64) error
}

// Router dispatches incoming asset deposits by their memo. The memo grammar
// is fixed:
//
//	"stake farming item"      stake the single deposited farming item
//	"stake items:<asset_id>"  attach the deposited items to that farming item
//	"blend:<blend_id>"        consume the deposited items as blend components
//
// Deposits from the system's own account are acknowledged and ignored; they
// are change from mints and payouts, not player actions.
type Router struct {
	staking     Service
	blender     Blender
	selfAccount string
}

// NewRouter creates a deposit router.
func NewRouter(staking Service, blender Blender, selfAccount string) *Router {
	return &Router{staking: staking, blender: blender, selfAccount: selfAccount}
}

// ReceiveDeposit handles one deposit notification.
func (r *Router) ReceiveDeposit(ctx context.Context, from string, assetIDs []uint64, memo string) error {
	if from == r.selfAccount {
		return nil
	}
	if len(assetIDs) == 0 {
		return fmt.Errorf("%w: deposit carries no assets", domain.ErrInvalidInput)
	}

	log := logger.FromContext(ctx)
	log.Info("Received deposit", "from", from, "assets", len(assetIDs), "memo", memo)

	switch {
	case memo == domain.MemoStakeFarmingItem:
		if len(assetIDs) != 1 {
			return fmt.Errorf("%w: staking a farming item takes exactly one asset", domain.ErrInvalidInput)
		}
		return r.staking.StakeFarmingItem(ctx, from, assetIDs[0])

	case strings.HasPrefix(memo, domain.MemoPrefixStakeItems):
		farmingItemID, err := parseUintSuffix(memo, domain.MemoPrefixStakeItems)
		if err != nil {
			return err
		}
		return r.staking.StakeItems(ctx, from, farmingItemID, assetIDs)

	case strings.HasPrefix(memo, domain.MemoPrefixBlend):
		blendID, err := parseUintSuffix(memo, domain.MemoPrefixBlend)
		if err != nil {
			return err
		}
		return r.blender.Blend(ctx, from, assetIDs, int64(blendID))

	default:
		return fmt.Errorf("%w: %q", domain.ErrInvalidMemo, memo)
	}
}

func parseUintSuffix(memo, prefix string) (uint64, error) {
	raw := strings.TrimSpace(strings.TrimPrefix(memo, prefix))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidMemo, memo)
	}
	return id, nil
}
