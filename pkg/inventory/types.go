// Package inventory provides the item catalog and the slot-based player
// inventory. Item definitions are immutable once registered; slots only hold
// references to them and never copy metadata.
package inventory

// ItemID identifies an item definition. Ids are compared verbatim.
type ItemID string

// ItemDefinition is an immutable catalog record. Definitions are owned by a
// Catalog and shared by pointer with slots and shop entries.
type ItemDefinition struct {
	ID          ItemID `json:"id" yaml:"id"`
	Name        string `json:"name,omitempty" yaml:"name"`
	Category    string `json:"category,omitempty" yaml:"category"`
	Description string `json:"description,omitempty" yaml:"description"`
	Stackable   bool   `json:"stackable" yaml:"stackable"`
	// MaxStack is the per-slot limit for stackable items. Values below 1 are
	// treated as 1.
	MaxStack  int `json:"maxStack,omitempty" yaml:"max_stack"`
	BuyPrice  int `json:"buyPrice" yaml:"buy_price"`
	SellPrice int `json:"sellPrice" yaml:"sell_price"`
}

// StackLimit returns how many units of the item fit in one slot.
func (d *ItemDefinition) StackLimit() int {
	if d == nil {
		return 0
	}
	if !d.Stackable || d.MaxStack < 1 {
		return 1
	}
	return d.MaxStack
}

// Same reports whether both definitions carry the same id.
func (d *ItemDefinition) Same(other *ItemDefinition) bool {
	if d == nil || other == nil {
		return false
	}
	return d.ID == other.ID
}
