package domain

import "time"

// QuestStatus is the lifecycle state of a character's quest
type QuestStatus string

const (
	QuestStatusOpen      QuestStatus = "open"
	QuestStatusAccepted  QuestStatus = "accepted"
	QuestStatusCompleted QuestStatus = "completed"
)

// Quest progress bounds
const (
	QuestProgressMin = 0
	QuestProgressMax = 100
)

// QuestItemLoot is an item a quest may drop on completion.
type QuestItemLoot struct {
	ItemID      int     `json:"item_id"`
	ItemName    string  `json:"item_name"`
	Quantity    int     `json:"quantity"`
	Probability float64 `json:"probability"`
}

// Quest is a quest definition
type Quest struct {
	ID               int             `json:"quest_id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	DueDate          *time.Time      `json:"due_date,omitempty"`
	IsActive         bool            `json:"is_active"`
	ExperiencePoints int             `json:"experience_points"`
	Gold             int             `json:"gold"`
	LootTable        string          `json:"loot_table,omitempty"`
	ItemLoot         []QuestItemLoot `json:"item_loot"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// IsOverdue reports whether the quest has a due date before now.
func (q Quest) IsOverdue(now time.Time) bool {
	return q.DueDate != nil && q.DueDate.Before(now)
}

// CharacterQuest tracks one character's progress on one quest.
type CharacterQuest struct {
	CharacterID int64       `json:"character_id"`
	QuestID     int         `json:"quest_id"`
	Status      QuestStatus `json:"status"`
	Progress    int         `json:"progress"`
	AcceptedAt  *time.Time  `json:"accepted_at,omitempty"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`

	// Joined fields
	QuestName string `json:"quest_name,omitempty"`
}

// ItemGrant is a quantity of a named item awarded to a character.
type ItemGrant struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// Reward bundles everything granted by a single event.
type Reward struct {
	Experience int         `json:"experience"`
	Gold       int         `json:"gold"`
	Items      []ItemGrant `json:"items"`
}

// RewardResult reports what a reward actually granted.
type RewardResult struct {
	Experience *ExperienceResult `json:"experience,omitempty"`
	Gold       int               `json:"gold"`
	Granted    []ItemGrant       `json:"granted"`
	Skipped    []ItemGrant       `json:"skipped"`
}

// QuestCompletion is returned when a character completes a quest.
type QuestCompletion struct {
	CharacterQuest CharacterQuest `json:"character_quest"`
	Reward         RewardResult   `json:"reward"`
}
