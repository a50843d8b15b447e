package loot

// Error message contexts
const (
	ErrContextFailedToReadLootFile  = "failed to read loot tables file"
	ErrContextFailedToParseLootFile = "failed to parse loot tables"
)

// Log messages
const (
	LogMsgTablesLoaded = "Loot tables loaded"
	LogMsgTableTooHigh = "Loot table above character level"
)
