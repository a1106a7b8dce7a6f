package inventory

import (
	"errors"
	"fmt"
)

// ErrSlotOutOfRange is returned for slot indices outside the inventory.
var ErrSlotOutOfRange = errors.New("inventory: slot index out of range")

// Inventory is a fixed-length ordered sequence of slots. Slot 0 is by
// convention the equipped item.
//
// Inventory is not safe for concurrent use; callers serialize access.
type Inventory struct {
	ID    string
	slots []Slot

	listeners    []listenerEntry
	nextListener int
}

// New creates an inventory with size empty slots.
func New(id string, size int) *Inventory {
	if size < 0 {
		size = 0
	}
	inv := &Inventory{
		ID:    id,
		slots: make([]Slot, size),
	}
	for i := range inv.slots {
		inv.slots[i].index = i
	}
	return inv
}

// SlotCount returns the fixed number of slots.
func (inv *Inventory) SlotCount() int { return len(inv.slots) }

// Slot returns the slot at index, or nil when out of range. The returned
// slot reflects later changes.
func (inv *Inventory) Slot(index int) *Slot {
	if index < 0 || index >= len(inv.slots) {
		return nil
	}
	return &inv.slots[index]
}

// Equipped returns slot 0, or nil for a zero-size inventory.
func (inv *Inventory) Equipped() *Slot { return inv.Slot(0) }

// AddItem places up to qty units of item. Stackable items first top up
// existing stacks left to right, then any remainder fills empty slots left
// to right. It returns the amount placed and whether that equals qty.
// Placed units are kept even when the request was not fully satisfied.
func (inv *Inventory) AddItem(item *ItemDefinition, qty int) (added int, full bool) {
	if item == nil || qty <= 0 {
		return 0, false
	}
	limit := item.StackLimit()
	remaining := qty

	if item.Stackable {
		for i := range inv.slots {
			if remaining == 0 {
				break
			}
			s := &inv.slots[i]
			if !s.holds(item) || s.qty >= limit {
				continue
			}
			n := min(remaining, limit-s.qty)
			s.qty += n
			remaining -= n
		}
	}

	for i := range inv.slots {
		if remaining == 0 {
			break
		}
		s := &inv.slots[i]
		if !s.IsEmpty() {
			continue
		}
		n := min(remaining, limit)
		s.fill(item, n)
		remaining -= n
	}

	added = qty - remaining
	if added > 0 {
		inv.notify()
	}
	return added, remaining == 0
}

// RemoveItem drains qty units of item, scanning slots from the last to the
// first. It reports whether the full amount was removed; a partial removal
// is not undone.
func (inv *Inventory) RemoveItem(item *ItemDefinition, qty int) bool {
	if item == nil || qty <= 0 {
		return false
	}
	remaining := qty
	for i := len(inv.slots) - 1; i >= 0 && remaining > 0; i-- {
		s := &inv.slots[i]
		if !s.holds(item) {
			continue
		}
		n := min(remaining, s.qty)
		s.take(n)
		remaining -= n
	}
	if remaining < qty {
		inv.notify()
	}
	return remaining == 0
}

// HasItem reports whether at least qty units of item are held.
func (inv *Inventory) HasItem(item *ItemDefinition, qty int) bool {
	if item == nil || qty <= 0 {
		return false
	}
	return inv.Count(item) >= qty
}

// Count sums the quantity of item across all slots.
func (inv *Inventory) Count(item *ItemDefinition) int {
	total := 0
	for i := range inv.slots {
		if inv.slots[i].holds(item) {
			total += inv.slots[i].qty
		}
	}
	return total
}

// SetSlot writes item into the slot at index, replacing whatever it held.
// qty is clamped to the stack limit. A nil item or non-positive qty clears
// the slot.
func (inv *Inventory) SetSlot(index int, item *ItemDefinition, qty int) error {
	s := inv.Slot(index)
	if s == nil {
		return fmt.Errorf("%w: %d", ErrSlotOutOfRange, index)
	}
	if item == nil || qty <= 0 {
		return inv.ClearSlot(index)
	}
	qty = min(qty, item.StackLimit())
	if s.holds(item) && s.qty == qty {
		return nil
	}
	s.clear()
	s.fill(item, qty)
	inv.notify()
	return nil
}

// ClearSlot empties the slot at index.
func (inv *Inventory) ClearSlot(index int) error {
	s := inv.Slot(index)
	if s == nil {
		return fmt.Errorf("%w: %d", ErrSlotOutOfRange, index)
	}
	if s.IsEmpty() {
		return nil
	}
	s.clear()
	inv.notify()
	return nil
}

// Swap exchanges the contents of two slots.
func (inv *Inventory) Swap(i, j int) error {
	a, b := inv.Slot(i), inv.Slot(j)
	if a == nil || b == nil {
		return fmt.Errorf("%w: %d<->%d", ErrSlotOutOfRange, i, j)
	}
	if i == j || (a.IsEmpty() && b.IsEmpty()) {
		return nil
	}
	a.item, b.item = b.item, a.item
	a.qty, b.qty = b.qty, a.qty
	inv.notify()
	return nil
}

// SlotState is a read-only copy of one slot.
type SlotState struct {
	Index    int
	Item     *ItemDefinition
	Quantity int
}

// Slots copies the current slot contents.
func (inv *Inventory) Slots() []SlotState {
	out := make([]SlotState, len(inv.slots))
	for i := range inv.slots {
		out[i] = SlotState{Index: i, Item: inv.slots[i].item, Quantity: inv.slots[i].qty}
	}
	return out
}
