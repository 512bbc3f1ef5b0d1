package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"

	ErrMsgDepositFailed     = "Failed to process deposit"
	ErrMsgClaimFailed       = "Failed to claim rewards"
	ErrMsgUpgradeFailed     = "Failed to upgrade item"
	ErrMsgGrowSlotsFailed   = "Failed to grow slots"
	ErrMsgSwapFailed        = "Failed to swap resources"
	ErrMsgGetBalancesFailed = "Failed to get balances"
	ErrMsgAddRecipeFailed   = "Failed to add recipe"
	ErrMsgSetRatioFailed    = "Failed to set ratio"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgBalanceNotFound     = "You don't have that resource"
	ErrMsgOverdrawn           = "Not enough resources"
	ErrMsgInvalidLevel        = "Target level must be higher than the current level"
	ErrMsgLevelCapExceeded    = "Item is already at its maximum level"
	ErrMsgAlreadyUpgrading    = "Item is still upgrading"
	ErrMsgNothingToClaim      = "Nothing to claim yet"
	ErrMsgStakedItemNotFound  = "Farming item is not staked"
	ErrMsgItemNotStaked       = "Item is not staked at that farming item"
	ErrMsgCapacityExceeded    = "Not enough free slots"
	ErrMsgSlotCapExceeded     = "Farming item is already at its maximum slots"
	ErrMsgIneligibleResource  = "That farming item does not accept this item"
	ErrMsgDuplicateStake      = "Item is already staked"
	ErrMsgTemplateBroken      = "Asset template is misconfigured"
	ErrMsgRecipeNotFound      = "Recipe not found"
	ErrMsgWrongComponents     = "Submitted assets do not match the recipe"
	ErrMsgForgedAsset         = "Asset does not belong to the game collection"
	ErrMsgRatioNotFound       = "That resource cannot be swapped"
	ErrMsgAssetNotFound       = "Asset not found"
	ErrMsgTemplateNotFound    = "Template not found"
	ErrMsgInvalidMemoError    = "Unrecognized deposit memo"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgUnauthorizedError   = "Not allowed"
)

// Success messages for API responses
const (
	MsgDepositAccepted = "Deposit accepted"
	MsgSlotsGrown      = "Slot added successfully"
	MsgUpgradeStarted  = "Upgrade started"
	MsgRecipeAdded     = "Recipe added successfully"
	MsgRatioSet        = "Ratio set successfully"
)
