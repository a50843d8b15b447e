package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Slot is the equipment slot an item occupies when worn.
type Slot string

const (
	SlotHead     Slot = "head"
	SlotChest    Slot = "chest"
	SlotLegs     Slot = "legs"
	SlotWeapon   Slot = "weapon"
	SlotShield   Slot = "shield"
	SlotRing     Slot = "ring"
	SlotNecklace Slot = "necklace"
	SlotBoots    Slot = "boots"
	SlotGloves   Slot = "gloves"
	SlotNone     Slot = "none"
)

// Rarity of a catalog item
type Rarity string

const (
	RarityTrash     Rarity = "trash"
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Item types
const (
	ItemTypeConsumable = "consumable"
	ItemTypeEquipment  = "equipment"
	ItemTypeQuest      = "quest"
)

// ItemBonuses are the flat attribute bonuses granted by an item.
type ItemBonuses struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Intelligence int `json:"intelligence"`
	Constitution int `json:"constitution"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
	Hitpoints    int `json:"hitpoints"`
	Mana         int `json:"mana"`
}

// DefaultMaxDurability applies when a definition omits max_durability.
const DefaultMaxDurability = 100

// Item is a catalog entry. Inventory operations treat it as read-only.
type Item struct {
	ID            int             `json:"item_id" db:"item_id"`
	Name          string          `json:"name" db:"name"`
	Slot          Slot            `json:"slot" db:"slot"`
	ItemType      string          `json:"item_type" db:"item_type"`
	Rarity        Rarity          `json:"rarity" db:"rarity"`
	Description   string          `json:"description" db:"description"`
	Weight        decimal.Decimal `json:"weight" db:"weight"`
	Value         int             `json:"value" db:"value"`
	Stacksize     int             `json:"stacksize" db:"stacksize"`
	MaxDurability int             `json:"max_durability" db:"max_durability"`
	IsRepairable  bool            `json:"is_repairable" db:"is_repairable"`
	Bonuses       ItemBonuses     `json:"bonuses"`
	RequiredLevel int             `json:"required_level" db:"required_level"`
	Icon          string          `json:"icon,omitempty" db:"icon"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}
