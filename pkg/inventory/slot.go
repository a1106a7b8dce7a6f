package inventory

// Slot is a single storage cell. An empty slot has no item and zero
// quantity; an occupied slot never exceeds its item's stack limit. Slots are
// mutated only through their Inventory.
type Slot struct {
	index int
	item  *ItemDefinition
	qty   int
}

// Index returns the slot position inside its inventory.
func (s *Slot) Index() int { return s.index }

// Item returns the held definition, or nil when empty.
func (s *Slot) Item() *ItemDefinition { return s.item }

// Quantity returns the held amount.
func (s *Slot) Quantity() int { return s.qty }

// IsEmpty reports whether the slot holds nothing.
func (s *Slot) IsEmpty() bool { return s.item == nil }

// Space returns how many more units of the held item fit.
func (s *Slot) Space() int {
	if s.item == nil {
		return 0
	}
	return s.item.StackLimit() - s.qty
}

func (s *Slot) holds(item *ItemDefinition) bool {
	return s.item != nil && s.item.Same(item)
}

func (s *Slot) fill(item *ItemDefinition, qty int) {
	s.item = item
	s.qty = qty
}

func (s *Slot) take(qty int) {
	s.qty -= qty
	if s.qty <= 0 {
		s.clear()
	}
}

func (s *Slot) clear() {
	s.item = nil
	s.qty = 0
}
