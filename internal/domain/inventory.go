package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryStack is one held stack of a single item. A stack never persists at quantity zero.
// ID is assigned by the store on insert and orders a character's stacks.
type InventoryStack struct {
	ID                int64     `json:"inventory_item_id"`
	CharacterID       int64     `json:"character_id"`
	Item              Item      `json:"item"`
	Quantity          int       `json:"quantity"`
	CurrentDurability *int      `json:"current_durability,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// Weight returns item weight times quantity.
func (s InventoryStack) Weight() decimal.Decimal {
	return s.Item.Weight.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// InventoryChanges is the set of row mutations produced by a ledger operation.
// Created stacks have ID 0 until the store assigns one.
type InventoryChanges struct {
	Updated []InventoryStack
	Created []InventoryStack
	Deleted []int64
}

// IsEmpty reports whether the operation changed nothing.
func (c InventoryChanges) IsEmpty() bool {
	return len(c.Updated) == 0 && len(c.Created) == 0 && len(c.Deleted) == 0
}

// InventoryView is the read model returned to clients.
type InventoryView struct {
	CharacterID    int64            `json:"character_id"`
	Stacks         []InventoryStack `json:"stacks"`
	SlotsUsed      int              `json:"slots_used"`
	MaxSlots       int              `json:"max_slots"`
	CurrentWeight  decimal.Decimal  `json:"current_weight"`
	MaxCarryWeight decimal.Decimal  `json:"max_carry_weight"`
}
