// Package inventory implements the stack-aware inventory ledger for a single character.
//
// A Ledger holds the character's stacks in store order (ascending stack ID) plus an
// index from item ID to that item's stacks. Operations mutate the in-memory state and
// record the row changes; callers persist Changes() atomically.
package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/ChoreQuest_Go/internal/domain"
)

type entry struct {
	stack domain.InventoryStack
	isNew bool
	dirty bool
}

// Ledger is not safe for concurrent use. One ledger serves one operation on one character.
type Ledger struct {
	characterID    int64
	maxSlots       int
	maxCarryWeight decimal.Decimal

	stacks  []*entry
	byItem  map[int][]*entry
	deleted []int64
}

// New builds a ledger over stacks, which must already be in store order.
func New(characterID int64, maxSlots int, maxCarryWeight decimal.Decimal, stacks []domain.InventoryStack) *Ledger {
	l := &Ledger{
		characterID:    characterID,
		maxSlots:       maxSlots,
		maxCarryWeight: maxCarryWeight,
		stacks:         make([]*entry, 0, len(stacks)),
		byItem:         make(map[int][]*entry),
	}
	for _, s := range stacks {
		l.append(&entry{stack: s})
	}
	return l
}

// ForCharacter builds a ledger using the character's capacity limits.
func ForCharacter(c *domain.Character, stacks []domain.InventoryStack) *Ledger {
	return New(c.ID, c.MaxInventorySlots, c.MaxCarryWeight, stacks)
}

func (l *Ledger) append(e *entry) {
	l.stacks = append(l.stacks, e)
	l.byItem[e.stack.Item.ID] = append(l.byItem[e.stack.Item.ID], e)
}

// StackCount returns the number of stacks (occupied slots).
func (l *Ledger) StackCount() int {
	return len(l.stacks)
}

// Stacks returns a copy of the stacks in order.
func (l *Ledger) Stacks() []domain.InventoryStack {
	out := make([]domain.InventoryStack, len(l.stacks))
	for i, e := range l.stacks {
		out[i] = e.stack
	}
	return out
}

// StacksOf returns a copy of the stacks holding itemID, in order.
func (l *Ledger) StacksOf(itemID int) []domain.InventoryStack {
	entries := l.byItem[itemID]
	out := make([]domain.InventoryStack, len(entries))
	for i, e := range entries {
		out[i] = e.stack
	}
	return out
}

// CurrentWeight sums item weight times quantity over all stacks.
func (l *Ledger) CurrentWeight() decimal.Decimal {
	total := decimal.Zero
	for _, e := range l.stacks {
		total = total.Add(e.stack.Weight())
	}
	return total
}

// HasSpace reports whether quantity units of item may be added.
// The slot check looks only at the current stack count: it rejects when the count is at or
// over the limit even if the units would merge into existing stacks, and it does not count the
// new stacks the addition may create.
func (l *Ledger) HasSpace(item domain.Item, quantity int) bool {
	if len(l.stacks) >= l.maxSlots {
		return false
	}
	incoming := item.Weight.Mul(decimal.NewFromInt(int64(quantity)))
	return !l.CurrentWeight().Add(incoming).GreaterThan(l.maxCarryWeight)
}

// AddItem tops up existing under-full stacks of item in order, then opens new stacks of at
// most item.Stacksize units. Capacity is checked once, up front, for the whole quantity.
func (l *Ledger) AddItem(item domain.Item, quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	if item.Stacksize < 1 {
		return fmt.Errorf("%w: item %q has stacksize %d", domain.ErrInvalidInput, item.Name, item.Stacksize)
	}
	if !l.HasSpace(item, quantity) {
		return domain.ErrInsufficientCapacity
	}

	remaining := quantity
	for _, e := range l.byItem[item.ID] {
		available := item.Stacksize - e.stack.Quantity
		if available <= 0 {
			continue
		}
		add := min(available, remaining)
		e.stack.Quantity += add
		e.dirty = true
		remaining -= add
		if remaining == 0 {
			return nil
		}
	}

	for remaining > 0 {
		size := min(item.Stacksize, remaining)
		s := domain.InventoryStack{
			CharacterID: l.characterID,
			Item:        item,
			Quantity:    size,
		}
		// items without durability carry none
		if item.MaxDurability > 0 {
			durability := item.MaxDurability
			s.CurrentDurability = &durability
		}
		l.append(&entry{stack: s, isNew: true})
		remaining -= size
	}
	return nil
}

// RemoveItem takes quantity units from the first stack of item only. A stack that reaches
// zero is deleted.
func (l *Ledger) RemoveItem(item domain.Item, quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	entries := l.byItem[item.ID]
	if len(entries) == 0 {
		return domain.ErrItemNotInInventory
	}
	first := entries[0]
	if first.stack.Quantity < quantity {
		return domain.ErrInsufficientQuantity
	}

	first.stack.Quantity -= quantity
	if first.stack.Quantity > 0 {
		first.dirty = true
		return nil
	}

	l.remove(first)
	return nil
}

func (l *Ledger) remove(e *entry) {
	itemID := e.stack.Item.ID
	l.byItem[itemID] = deleteEntry(l.byItem[itemID], e)
	if len(l.byItem[itemID]) == 0 {
		delete(l.byItem, itemID)
	}
	l.stacks = deleteEntry(l.stacks, e)
	if !e.isNew {
		l.deleted = append(l.deleted, e.stack.ID)
	}
}

func deleteEntry(entries []*entry, target *entry) []*entry {
	for i, e := range entries {
		if e == target {
			return append(entries[:i], entries[i+1:]...)
		}
	}
	return entries
}

// Changes returns the row mutations accumulated so far. Created stacks keep ledger order.
func (l *Ledger) Changes() domain.InventoryChanges {
	var changes domain.InventoryChanges
	for _, e := range l.stacks {
		switch {
		case e.isNew:
			changes.Created = append(changes.Created, e.stack)
		case e.dirty:
			changes.Updated = append(changes.Updated, e.stack)
		}
	}
	if len(l.deleted) > 0 {
		changes.Deleted = append([]int64(nil), l.deleted...)
	}
	return changes
}

// View returns the read model for the current state.
func (l *Ledger) View() domain.InventoryView {
	return domain.InventoryView{
		CharacterID:    l.characterID,
		Stacks:         l.Stacks(),
		SlotsUsed:      len(l.stacks),
		MaxSlots:       l.maxSlots,
		CurrentWeight:  l.CurrentWeight(),
		MaxCarryWeight: l.maxCarryWeight,
	}
}
