package item

// ==================== Configuration File Names ====================

// ConfigName identifies the items file in sync metadata
const ConfigName = "items.json"

// ==================== Item Rules ====================

const (
	// MaxItemWeight is the largest weight NUMERIC(5,2) can hold
	MaxItemWeight = "999.99"
	// WeightDecimalPlaces is the precision of item weights
	WeightDecimalPlaces  = 2
	DefaultRequiredLevel = 1
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgStatConfigFileFailed = "failed to stat config file: %w"
	ErrMsgReadForHashFailed    = "failed to read config file: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// Database operation error messages
const (
	ErrMsgCheckFileChangeFailed  = "failed to check if file changed: %w"
	ErrMsgGetExistingItemsFailed = "failed to get existing items: %w"
	ErrMsgUpdateItemFailed       = "failed to update item '%s': %w"
	ErrMsgInsertItemFailed       = "failed to insert item '%s': %w"
)

// ==================== Log Messages ====================

const (
	LogMsgConfigUnchanged      = "Items config file unchanged, skipping sync"
	LogMsgSyncCompleted        = "Items sync completed"
	LogMsgUpdatedItem          = "Updated item"
	LogMsgInsertedItem         = "Inserted item"
	LogMsgUpdateMetadataFailed = "Failed to update sync metadata"
	LogMsgCacheInvalidated     = "Item cache invalidated"
)

// ==================== Format Strings for Error Construction ====================

const (
	ErrFmtItemAtIndexEmpty    = "%w: item at index %d has empty name"
	ErrFmtItemBadWeight       = "%w: item '%s' has invalid weight %q"
	ErrFmtItemWeightRange     = "%w: item '%s' weight must be between 0 and %s"
	ErrFmtItemWeightPrecision = "%w: item '%s' weight has more than %d decimal places"
	ErrFmtItemBadStacksize    = "%w: item '%s' stacksize must be at least 1"
	ErrFmtItemNegativeValue   = "%w: item '%s' has negative value"
	ErrFmtItemNegativeDur     = "%w: item '%s' has negative max_durability"
	ErrFmtItemBadSlot         = "%w: item '%s' has unknown slot %q"
	ErrFmtItemBadRarity       = "%w: item '%s' has unknown rarity %q"
	ErrFmtItemBadType         = "%w: item '%s' has unknown item_type %q"
	ErrFmtItemBadLevel        = "%w: item '%s' required_level must be at least 1"
)
