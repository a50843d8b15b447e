package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Account errors
	ErrMsgUserNotFound       = "user not found"
	ErrMsgUserAlreadyExists  = "a user with that username or email already exists"
	ErrMsgInvalidCredentials = "Invalid username or password"
	ErrMsgAccountDisabled    = "account is disabled"
	ErrMsgEmailNotRegistered = "No user is associated with this email address."
	ErrMsgPasswordMismatch   = "Passwords do not match."
	ErrMsgPasswordTooShort   = "Password must be at least 8 characters."
	ErrMsgPasswordTooLong    = "Password must be at most 72 bytes."
	ErrMsgInvalidToken       = "invalid or expired token"

	// Character errors
	ErrMsgCharacterNotFound  = "character not found"
	ErrMsgCharacterNameTaken = "character name is already taken"
	ErrMsgInvalidExperience  = "experience points must not be negative"

	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Inventory errors. The three ledger messages are user-facing verbatim.
	ErrMsgInsufficientCapacity = "Not enough space or weight capacity in inventory."
	ErrMsgItemNotInInventory   = "Item not found in inventory."
	ErrMsgInsufficientQuantity = "Not enough items to remove."
	ErrMsgInvalidQuantity      = "quantity must be positive"

	// Quest errors
	ErrMsgQuestNotFound        = "quest not found"
	ErrMsgQuestAlreadyExists   = "a quest with that name already exists"
	ErrMsgQuestInactive        = "quest is not active"
	ErrMsgQuestOverdue         = "quest is overdue"
	ErrMsgQuestAlreadyAccepted = "quest already accepted"
	ErrMsgQuestNotAccepted     = "quest has not been accepted"
	ErrMsgInvalidProgress      = "progress must be between 0 and 100"
	ErrMsgLootTableNotFound    = "loot table not found"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Account errors
	ErrUserNotFound       = errors.New(ErrMsgUserNotFound)
	ErrUserAlreadyExists  = errors.New(ErrMsgUserAlreadyExists)
	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)
	ErrAccountDisabled    = errors.New(ErrMsgAccountDisabled)
	ErrEmailNotRegistered = errors.New(ErrMsgEmailNotRegistered)
	ErrPasswordMismatch   = errors.New(ErrMsgPasswordMismatch)
	ErrPasswordTooShort   = errors.New(ErrMsgPasswordTooShort)
	ErrPasswordTooLong    = errors.New(ErrMsgPasswordTooLong)
	ErrInvalidToken       = errors.New(ErrMsgInvalidToken)

	// Character errors
	ErrCharacterNotFound  = errors.New(ErrMsgCharacterNotFound)
	ErrCharacterNameTaken = errors.New(ErrMsgCharacterNameTaken)
	ErrInvalidExperience  = errors.New(ErrMsgInvalidExperience)

	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Inventory errors
	ErrInsufficientCapacity = errors.New(ErrMsgInsufficientCapacity)
	ErrItemNotInInventory   = errors.New(ErrMsgItemNotInInventory)
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrInvalidQuantity      = errors.New(ErrMsgInvalidQuantity)

	// Quest errors
	ErrQuestNotFound        = errors.New(ErrMsgQuestNotFound)
	ErrQuestAlreadyExists   = errors.New(ErrMsgQuestAlreadyExists)
	ErrQuestInactive        = errors.New(ErrMsgQuestInactive)
	ErrQuestOverdue         = errors.New(ErrMsgQuestOverdue)
	ErrQuestAlreadyAccepted = errors.New(ErrMsgQuestAlreadyAccepted)
	ErrQuestNotAccepted     = errors.New(ErrMsgQuestNotAccepted)
	ErrInvalidProgress      = errors.New(ErrMsgInvalidProgress)
	ErrLootTableNotFound    = errors.New(ErrMsgLootTableNotFound)

	// Database errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
