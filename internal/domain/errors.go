package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Balance errors
	ErrMsgBalanceNotFound = "balance not found"
	ErrMsgOverdrawn       = "overdrawn balance"

	// Accrual / upgrade errors
	ErrMsgInvalidLevel     = "new level must be higher than current level"
	ErrMsgLevelCapExceeded = "new level can not be higher than max level"
	ErrMsgAlreadyUpgrading = "item is upgrading"
	ErrMsgNothingToClaim   = "nothing to claim"

	// Staking errors
	ErrMsgStakedItemNotFound = "could not find staked farming item"
	ErrMsgItemNotStaked      = "item is not staked at farming item"
	ErrMsgCapacityExceeded   = "not enough empty slots on farming item"
	ErrMsgSlotCapExceeded    = "farming item has max slots"
	ErrMsgIneligibleResource = "item can not be staked at current farming item"
	ErrMsgDuplicateStake     = "item is already staked"

	// Template/content errors
	ErrMsgTemplateMisconfigured = "template attribute was not initialized"
	ErrMsgAttributeType         = "attribute type mismatch"
	ErrMsgAttributeMissing      = "attribute missing"

	// Blend errors
	ErrMsgRecipeNotFound         = "could not find blend id"
	ErrMsgComponentCountMismatch = "blend components count mismatch"
	ErrMsgInvalidComponents      = "invalid blend components"
	ErrMsgForgedAsset            = "collection of asset mismatch"

	// Swap errors
	ErrMsgRatioNotFound = "could not find resource cost config"

	// Asset ledger errors
	ErrMsgAssetNotFound    = "asset not found"
	ErrMsgTemplateNotFound = "template not found"

	// Input / auth errors
	ErrMsgInvalidMemo  = "invalid memo"
	ErrMsgInvalidInput = "invalid input"
	ErrMsgUnauthorized = "unauthorized"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Balance errors
	ErrBalanceNotFound = errors.New(ErrMsgBalanceNotFound)
	ErrOverdrawn       = errors.New(ErrMsgOverdrawn)

	// Accrual / upgrade errors
	ErrInvalidLevel     = errors.New(ErrMsgInvalidLevel)
	ErrLevelCapExceeded = errors.New(ErrMsgLevelCapExceeded)
	ErrAlreadyUpgrading = errors.New(ErrMsgAlreadyUpgrading)
	ErrNothingToClaim   = errors.New(ErrMsgNothingToClaim)

	// Staking errors
	ErrStakedItemNotFound = errors.New(ErrMsgStakedItemNotFound)
	ErrItemNotStaked      = errors.New(ErrMsgItemNotStaked)
	ErrCapacityExceeded   = errors.New(ErrMsgCapacityExceeded)
	ErrSlotCapExceeded    = errors.New(ErrMsgSlotCapExceeded)
	ErrIneligibleResource = errors.New(ErrMsgIneligibleResource)
	ErrDuplicateStake     = errors.New(ErrMsgDuplicateStake)

	// Template/content errors
	ErrTemplateMisconfigured = errors.New(ErrMsgTemplateMisconfigured)
	ErrAttributeType         = errors.New(ErrMsgAttributeType)
	ErrAttributeMissing      = errors.New(ErrMsgAttributeMissing)

	// Blend errors
	ErrRecipeNotFound         = errors.New(ErrMsgRecipeNotFound)
	ErrComponentCountMismatch = errors.New(ErrMsgComponentCountMismatch)
	ErrInvalidComponents      = errors.New(ErrMsgInvalidComponents)
	ErrForgedAsset            = errors.New(ErrMsgForgedAsset)

	// Swap errors
	ErrRatioNotFound = errors.New(ErrMsgRatioNotFound)

	// Asset ledger errors
	ErrAssetNotFound    = errors.New(ErrMsgAssetNotFound)
	ErrTemplateNotFound = errors.New(ErrMsgTemplateNotFound)

	// Input / auth errors
	ErrInvalidMemo  = errors.New(ErrMsgInvalidMemo)
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
	ErrUnauthorized = errors.New(ErrMsgUnauthorized)
)
