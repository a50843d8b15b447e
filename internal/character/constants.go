package character

// Experience sources, used as metric labels
const (
	SourcePlayer = "play"
	SourceAdmin  = "admin"
	SourceQuest  = "quest"
)

// Log messages
const (
	LogMsgCharacterCreated   = "Character created"
	LogMsgCharacterDeleted   = "Character deleted"
	LogMsgCharacterActivated = "Character activated"
	LogMsgExperienceAwarded  = "Experience awarded"
	LogMsgLevelUpCapReached  = "Level-up cap reached; remaining experience kept"
	LogMsgItemAdded          = "Item added to inventory"
	LogMsgItemRemoved        = "Item removed from inventory"
	LogMsgCapacityRejected   = "Inventory capacity exceeded"
	LogMsgGrantItemSkipped   = "Reward item skipped; inventory full"
)
