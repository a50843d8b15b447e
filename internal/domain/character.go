package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Character defaults applied on creation
const (
	DefaultCharacterLevel        = 1
	DefaultExperienceToNextLevel = 100
	DefaultAttributeValue        = 10
	DefaultHitpoints             = 10
	DefaultMana                  = 10
	DefaultMaxInventorySlots     = 20
	DefaultMaxCarryWeight        = "50.00"
	CharacterNameMinLength       = 3
	CharacterNameMaxLength       = 100
)

// Attributes are the six base stats of a character.
type Attributes struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Intelligence int `json:"intelligence"`
	Constitution int `json:"constitution"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Character is the progression-bearing entity owned by a user.
type Character struct {
	ID                    int64           `json:"character_id"`
	UserID                string          `json:"user_id"`
	Name                  string          `json:"name"`
	Level                 int             `json:"level"`
	ExperiencePoints      int             `json:"experience_points"`
	ExperienceToNextLevel int             `json:"experience_points_to_next_level"`
	Hitpoints             int             `json:"hitpoints"`
	HitpointsMax          int             `json:"hitpoints_max"`
	Mana                  int             `json:"mana"`
	ManaMax               int             `json:"mana_max"`
	Attributes            Attributes      `json:"attributes"`
	Gold                  int             `json:"gold"`
	MaxInventorySlots     int             `json:"max_inventory_slots"`
	MaxCarryWeight        decimal.Decimal `json:"max_carry_weight"`
	IsActive              bool            `json:"is_active"`
	CreatedAt             time.Time       `json:"date_created"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// NewCharacter returns a character with creation defaults.
func NewCharacter(userID, name string) *Character {
	return &Character{
		UserID:                userID,
		Name:                  name,
		Level:                 DefaultCharacterLevel,
		ExperienceToNextLevel: DefaultExperienceToNextLevel,
		Hitpoints:             DefaultHitpoints,
		HitpointsMax:          DefaultHitpoints,
		Mana:                  DefaultMana,
		ManaMax:               DefaultMana,
		Attributes: Attributes{
			Strength:     DefaultAttributeValue,
			Dexterity:    DefaultAttributeValue,
			Intelligence: DefaultAttributeValue,
			Constitution: DefaultAttributeValue,
			Wisdom:       DefaultAttributeValue,
			Charisma:     DefaultAttributeValue,
		},
		MaxInventorySlots: DefaultMaxInventorySlots,
		MaxCarryWeight:    decimal.RequireFromString(DefaultMaxCarryWeight),
	}
}

// ExperienceResult describes the outcome of an experience award.
type ExperienceResult struct {
	CharacterID           int64 `json:"character_id"`
	Awarded               int   `json:"awarded"`
	PreviousLevel         int   `json:"previous_level"`
	Level                 int   `json:"level"`
	LevelsGained          int   `json:"levels_gained"`
	ExperiencePoints      int   `json:"experience_points"`
	ExperienceToNextLevel int   `json:"experience_points_to_next_level"`
	HitpointsMax          int   `json:"hitpoints_max"`
	ManaMax               int   `json:"mana_max"`
}
