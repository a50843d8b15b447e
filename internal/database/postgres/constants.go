package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"

	// PgErrorCodeForeignKeyViolation is the PostgreSQL error code for foreign key violations
	PgErrorCodeForeignKeyViolation = "23503"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
)

// Error Messages - User Operations
const (
	ErrMsgFailedToCreateUser     = "failed to create user"
	ErrMsgFailedToGetUser        = "failed to get user"
	ErrMsgFailedToUpdatePassword = "failed to update password"
)

// Error Messages - Character Operations
const (
	ErrMsgFailedToCreateCharacter = "failed to create character"
	ErrMsgFailedToGetCharacter    = "failed to get character"
	ErrMsgFailedToListCharacters  = "failed to list characters"
	ErrMsgFailedToUpdateCharacter = "failed to update character"
	ErrMsgFailedToDeleteCharacter = "failed to delete character"
	ErrMsgFailedToActivate        = "failed to set active character"
	ErrMsgFailedToGetInventory    = "failed to get inventory"
	ErrMsgFailedToApplyInventory  = "failed to apply inventory changes"
)

// Error Messages - Item Operations
const (
	ErrMsgFailedToGetItems         = "failed to get items"
	ErrMsgFailedToGetItem          = "failed to get item"
	ErrMsgFailedToInsertItem       = "failed to insert item"
	ErrMsgFailedToUpdateItem       = "failed to update item"
	ErrMsgFailedToGetSyncMetadata  = "failed to get sync metadata"
	ErrMsgFailedToSaveSyncMetadata = "failed to upsert sync metadata"
)

// Error Messages - Quest Operations
const (
	ErrMsgFailedToGetQuests          = "failed to get quests"
	ErrMsgFailedToGetQuest           = "failed to get quest"
	ErrMsgFailedToCreateQuest        = "failed to create quest"
	ErrMsgFailedToGetQuestLoot       = "failed to get quest loot"
	ErrMsgFailedToGetCharacterQuests = "failed to get character quests"
	ErrMsgFailedToSaveCharacterQuest = "failed to save character quest"
)
