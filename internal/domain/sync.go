package domain

import "time"

// SyncMetadata tracks the last sync of a JSON config file into the database
type SyncMetadata struct {
	ConfigName   string    `json:"config_name" db:"config_name"`
	LastSyncTime time.Time `json:"last_sync_time" db:"last_sync_time"`
	FileHash     string    `json:"file_hash" db:"file_hash"`
	FileModTime  time.Time `json:"file_mod_time" db:"file_mod_time"`
}
