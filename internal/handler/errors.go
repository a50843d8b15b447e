package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidPathParam      = "Invalid %s"
	ErrMsgUnauthenticated       = "Authentication required"

	// Operation names, also used as log messages
	OpRegister          = "Register"
	OpLogin             = "Login"
	OpRefreshToken      = "Refresh token"
	OpForgotPassword    = "Forgot password"
	OpResetPassword     = "Reset password"
	OpCreateCharacter   = "Create character"
	OpListCharacters    = "List characters"
	OpGetCharacter      = "Get character"
	OpDeleteCharacter   = "Delete character"
	OpActivateCharacter = "Activate character"
	OpAddExperience     = "Add experience"
	OpGetInventory      = "Get inventory"
	OpAddItem           = "Add item"
	OpRemoveItem        = "Remove item"
	OpListItems         = "List items"
	OpGetItem           = "Get item"
	OpListQuests        = "List quests"
	OpGetQuest          = "Get quest"
	OpCreateQuest       = "Create quest"
	OpCharacterQuests   = "List character quests"
	OpAcceptQuest       = "Accept quest"
	OpUpdateProgress    = "Update quest progress"
	OpCompleteQuest     = "Complete quest"
	OpSyncItems         = "Sync items"
)

// Success messages for API responses
const (
	MsgRegistrationSuccess = "Registration successful!"
	MsgPasswordResetSent   = "Password reset email sent."
	MsgPasswordResetDone   = "Password has been reset."
	MsgCharacterDeleted    = "Character deleted"
	MsgCacheInvalidated    = "Item cache invalidated"
)

// Path parameter names
const (
	ParamCharacterID = "characterID"
	ParamQuestID     = "questID"
	ParamItemName    = "name"
)
